package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/elpotrillo/pos/internal/core/domain"
	"github.com/elpotrillo/pos/internal/core/port/mock"
	"github.com/elpotrillo/pos/internal/core/serviceerrors"
)

type saleMocks struct {
	saleRepo    *mock.MockSalePort
	catalogRepo *mock.MockCatalogPort
	txManager   *mock.MockTransactionManager
}

func setupSaleService(t *testing.T) (*SaleService, *saleMocks) {
	ctrl := gomock.NewController(t)

	saleRepo := mock.NewMockSalePort(ctrl)
	catalogRepo := mock.NewMockCatalogPort(ctrl)
	txManager := mock.NewMockTransactionManager(ctrl)

	svc := NewSaleService(saleRepo, NewCatalogService(catalogRepo), txManager)

	return svc, &saleMocks{
		saleRepo:    saleRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
	}
}

// runTransaction makes the transaction manager mock execute the
// registration body the way the real manager would.
func runTransaction(m *saleMocks) {
	m.txManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestSaleService_RegisterSale(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, m := setupSaleService(t)
		runTransaction(m)

		m.catalogRepo.EXPECT().
			GetByID(gomock.Any(), domain.ID(1)).
			Return(&domain.Product{ID: 1, Name: "Taco", Price: 1000, Stock: 5}, nil)
		m.saleRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sale *domain.Sale) error {
				sale.ID = 7
				return nil
			})
		m.catalogRepo.EXPECT().DeductStock(gomock.Any(), domain.ID(1), 3).Return(nil)

		sale, err := svc.RegisterSale(context.Background(), []domain.CartLine{{ProductID: 1, Quantity: 3}})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if sale.ID != 7 {
			t.Fatalf("expected sale id 7, got %d", sale.ID)
		}
		if sale.Total != 3000 {
			t.Fatalf("expected total 3000 cents, got %d", sale.Total)
		}
		if len(sale.Lines) != 1 || sale.Lines[0].Subtotal != 3000 {
			t.Fatalf("expected one line with subtotal 3000, got %+v", sale.Lines)
		}
	})

	t.Run("multiple products keep line order and total", func(t *testing.T) {
		svc, m := setupSaleService(t)
		runTransaction(m)

		m.catalogRepo.EXPECT().
			GetByID(gomock.Any(), domain.ID(1)).
			Return(&domain.Product{ID: 1, Name: "Taco", Price: 1000, Stock: 5}, nil)
		m.catalogRepo.EXPECT().
			GetByID(gomock.Any(), domain.ID(2)).
			Return(&domain.Product{ID: 2, Name: "Agua", Price: 550, Stock: 10}, nil)
		m.saleRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sale *domain.Sale) error {
				sale.ID = 8
				return nil
			})
		m.catalogRepo.EXPECT().DeductStock(gomock.Any(), domain.ID(1), 2).Return(nil)
		m.catalogRepo.EXPECT().DeductStock(gomock.Any(), domain.ID(2), 1).Return(nil)

		sale, err := svc.RegisterSale(context.Background(), []domain.CartLine{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if sale.Total != 2550 {
			t.Fatalf("expected total 2550, got %d", sale.Total)
		}
		if sale.Lines[0].ProductID != 1 || sale.Lines[1].ProductID != 2 {
			t.Fatalf("expected line order preserved, got %+v", sale.Lines)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		svc, _ := setupSaleService(t)

		_, err := svc.RegisterSale(context.Background(), nil)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		svc, _ := setupSaleService(t)

		_, err := svc.RegisterSale(context.Background(), []domain.CartLine{{ProductID: 1, Quantity: 0}})
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("unknown product aborts before any write", func(t *testing.T) {
		svc, m := setupSaleService(t)
		runTransaction(m)

		m.catalogRepo.EXPECT().
			GetByID(gomock.Any(), domain.ID(9)).
			Return(nil, serviceerrors.NewNotFoundError("product 9 not found"))

		_, err := svc.RegisterSale(context.Background(), []domain.CartLine{{ProductID: 9, Quantity: 1}})

		var nfErr *serviceerrors.ProductNotFoundError
		if !errors.As(err, &nfErr) {
			t.Fatalf("expected ProductNotFoundError, got %v", err)
		}
		if nfErr.ProductID != 9 {
			t.Fatalf("expected missing id 9, got %d", nfErr.ProductID)
		}
	})

	t.Run("insufficient stock aborts before any write", func(t *testing.T) {
		svc, m := setupSaleService(t)
		runTransaction(m)

		m.catalogRepo.EXPECT().
			GetByID(gomock.Any(), domain.ID(1)).
			Return(&domain.Product{ID: 1, Name: "Taco", Price: 1000, Stock: 2}, nil)

		_, err := svc.RegisterSale(context.Background(), []domain.CartLine{{ProductID: 1, Quantity: 5}})

		var stockErr *serviceerrors.InsufficientStockError
		if !errors.As(err, &stockErr) {
			t.Fatalf("expected InsufficientStockError, got %v", err)
		}
		if stockErr.ProductID != 1 || stockErr.Available != 2 || stockErr.Requested != 5 {
			t.Fatalf("expected (1, available=2, requested=5), got %+v", stockErr)
		}
	})

	t.Run("duplicate lines are aggregated for the stock check", func(t *testing.T) {
		svc, m := setupSaleService(t)
		runTransaction(m)

		// stock fits each line individually but not their sum
		m.catalogRepo.EXPECT().
			GetByID(gomock.Any(), domain.ID(1)).
			Return(&domain.Product{ID: 1, Name: "Taco", Price: 1000, Stock: 5}, nil)

		_, err := svc.RegisterSale(context.Background(), []domain.CartLine{
			{ProductID: 1, Quantity: 3},
			{ProductID: 1, Quantity: 3},
		})

		var stockErr *serviceerrors.InsufficientStockError
		if !errors.As(err, &stockErr) {
			t.Fatalf("expected InsufficientStockError, got %v", err)
		}
		if stockErr.Available != 5 || stockErr.Requested != 6 {
			t.Fatalf("expected available=5 requested=6, got %+v", stockErr)
		}
	})

	t.Run("duplicate lines that fit are written per line", func(t *testing.T) {
		svc, m := setupSaleService(t)
		runTransaction(m)

		m.catalogRepo.EXPECT().
			GetByID(gomock.Any(), domain.ID(1)).
			Return(&domain.Product{ID: 1, Name: "Taco", Price: 1000, Stock: 6}, nil)
		m.saleRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sale *domain.Sale) error {
				sale.ID = 9
				return nil
			})
		m.catalogRepo.EXPECT().DeductStock(gomock.Any(), domain.ID(1), 3).Return(nil).Times(2)

		sale, err := svc.RegisterSale(context.Background(), []domain.CartLine{
			{ProductID: 1, Quantity: 3},
			{ProductID: 1, Quantity: 3},
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(sale.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(sale.Lines))
		}
		if sale.Total != 6000 {
			t.Fatalf("expected total 6000, got %d", sale.Total)
		}
	})

	t.Run("storage failure surfaces and yields no sale", func(t *testing.T) {
		svc, m := setupSaleService(t)
		runTransaction(m)

		m.catalogRepo.EXPECT().
			GetByID(gomock.Any(), domain.ID(1)).
			Return(&domain.Product{ID: 1, Name: "Taco", Price: 1000, Stock: 5}, nil)
		m.saleRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("storage unavailable"))

		sale, err := svc.RegisterSale(context.Background(), []domain.CartLine{{ProductID: 1, Quantity: 1}})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if sale != nil {
			t.Fatalf("expected no sale on failure, got %+v", sale)
		}
	})
}

func TestSaleService_GetProductReport(t *testing.T) {
	svc, m := setupSaleService(t)
	expected := []domain.ReportRow{
		{ProductName: "Taco", QuantitySold: 4, Revenue: 4000},
	}

	m.saleRepo.EXPECT().GetProductReport(gomock.Any()).Return(expected, nil)

	report, err := svc.GetProductReport(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report) != 1 || report[0] != expected[0] {
		t.Fatalf("expected %+v, got %+v", expected, report)
	}
}
