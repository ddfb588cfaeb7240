package service

import (
	"context"

	"github.com/elpotrillo/pos/internal/core/domain"
	"github.com/elpotrillo/pos/internal/core/logger"
	"github.com/elpotrillo/pos/internal/core/port"
	"github.com/elpotrillo/pos/internal/core/serviceerrors"
)

const SALE_MAX_LINES = 100

type SaleService struct {
	saleRepository port.SalePort
	catalogService *CatalogService
	txManager      port.TransactionManager
}

func NewSaleService(
	saleRepository port.SalePort,
	catalogService *CatalogService,
	txManager port.TransactionManager,
) *SaleService {
	return &SaleService{
		saleRepository: saleRepository,
		catalogService: catalogService,
		txManager:      txManager,
	}
}

// RegisterSale validates the whole batch against current stock and, only
// if every line passes, persists the sale header, its lines and the stock
// decrements as one transaction. On any failure nothing is written.
//
// Quantities are aggregated per product before the stock check, so a batch
// that lists the same product twice cannot oversell it.
func (s *SaleService) RegisterSale(ctx context.Context, lines []domain.CartLine) (*domain.Sale, error) {
	if len(lines) == 0 {
		return nil, serviceerrors.NewInvalidRequestError("cart is empty")
	}
	if len(lines) > SALE_MAX_LINES {
		return nil, serviceerrors.NewUnprocessableEntityError("cart line limit exceeded")
	}
	for _, line := range lines {
		if !domain.ValidateID(line.ProductID) {
			return nil, serviceerrors.NewInvalidRequestError("invalid product id")
		}
		if line.Quantity <= 0 {
			return nil, serviceerrors.NewInvalidRequestError("quantity must be positive")
		}
	}

	requested := make(map[domain.ID]int, len(lines))
	productIDs := make([]domain.ID, 0, len(lines))
	for _, line := range lines {
		if _, seen := requested[line.ProductID]; !seen {
			productIDs = append(productIDs, line.ProductID)
		}
		requested[line.ProductID] += line.Quantity
	}

	var sale *domain.Sale
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		// phase 1: read prices and stock, no writes
		products := make(map[domain.ID]*domain.Product, len(productIDs))
		for _, id := range productIDs {
			product, err := s.catalogService.GetByID(txCtx, id)
			if err != nil {
				if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
					return &serviceerrors.ProductNotFoundError{ProductID: int64(id)}
				}
				return err
			}
			if requested[id] > product.Stock {
				return &serviceerrors.InsufficientStockError{
					ProductID: int64(id),
					Available: product.Stock,
					Requested: requested[id],
				}
			}
			products[id] = product
		}

		saleLines := make([]domain.SaleLine, len(lines))
		for i, line := range lines {
			saleLines[i] = *domain.NewSaleLine(line.ProductID, line.Quantity, products[line.ProductID].Price)
		}
		sale = domain.NewSale(saleLines)

		// phase 2: header, lines, stock decrements
		if err := s.saleRepository.Create(txCtx, sale); err != nil {
			return err
		}
		for _, line := range lines {
			if err := s.catalogService.DeductStock(txCtx, line.ProductID, line.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "transaction: register sale failed", err, map[string]any{
			"lines": len(lines),
		})
		return nil, err
	}

	logger.Info(ctx, "Sale registered", map[string]any{
		"sale_id": sale.ID,
		"total":   sale.Total.Float64(),
	})
	return sale, nil
}

func (s *SaleService) GetProductReport(ctx context.Context) ([]domain.ReportRow, error) {
	return s.saleRepository.GetProductReport(ctx)
}
