package service

import (
	"context"
	"strings"

	"github.com/elpotrillo/pos/internal/core/domain"
	"github.com/elpotrillo/pos/internal/core/dto"
	"github.com/elpotrillo/pos/internal/core/logger"
	"github.com/elpotrillo/pos/internal/core/port"
	"github.com/elpotrillo/pos/internal/core/serviceerrors"
)

type CatalogService struct {
	catalogRepository port.CatalogPort
}

func NewCatalogService(catalogRepository port.CatalogPort) *CatalogService {
	return &CatalogService{catalogRepository: catalogRepository}
}

func (s *CatalogService) CreateProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, serviceerrors.NewInvalidRequestError("product name must not be empty")
	}
	if request.Price < 0 {
		return nil, serviceerrors.NewInvalidRequestError("product price must not be negative")
	}
	if request.Stock < 0 {
		return nil, serviceerrors.NewInvalidRequestError("product stock must not be negative")
	}

	product := domain.NewProduct(name, domain.NewAmountFromFloat(request.Price), request.Stock)

	if err := s.catalogRepository.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"name":  name,
			"price": request.Price,
			"stock": request.Stock,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID})
	return product, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	return s.catalogRepository.GetByID(ctx, id)
}

func (s *CatalogService) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return s.catalogRepository.GetAll(ctx)
}

// SetStock overwrites a product's stock. Negative values are rejected
// here so that no caller can drive stock below zero; the sale path has
// its own pre-check and uses DeductStock instead.
func (s *CatalogService) SetStock(ctx context.Context, id domain.ID, stock int) error {
	if stock < 0 {
		return serviceerrors.NewInvalidRequestError("stock must not be negative")
	}
	return s.catalogRepository.SetStock(ctx, id, stock)
}

// ReplenishStock adds quantity units on top of the current stock.
func (s *CatalogService) ReplenishStock(ctx context.Context, id domain.ID, quantity int) (*domain.Product, error) {
	if quantity <= 0 {
		return nil, serviceerrors.NewInvalidRequestError("replenish quantity must be positive")
	}

	product, err := s.catalogRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.catalogRepository.SetStock(ctx, id, product.Stock+quantity); err != nil {
		return nil, err
	}

	product.Stock += quantity
	logger.Info(ctx, "Stock replenished", map[string]any{
		"product_id": id,
		"added":      quantity,
		"stock":      product.Stock,
	})
	return product, nil
}

// SetPrice affects future sales only; subtotals of already registered
// sales keep the price captured at their registration time.
func (s *CatalogService) SetPrice(ctx context.Context, id domain.ID, price domain.Amount) error {
	if price.IsNegative() {
		return serviceerrors.NewInvalidRequestError("price must not be negative")
	}
	if err := s.catalogRepository.SetPrice(ctx, id, price); err != nil {
		return err
	}

	logger.Info(ctx, "Price updated", map[string]any{
		"product_id": id,
		"price":      price.Float64(),
	})
	return nil
}

func (s *CatalogService) DeductStock(ctx context.Context, id domain.ID, quantity int) error {
	return s.catalogRepository.DeductStock(ctx, id, quantity)
}
