package port

import (
	"context"

	"github.com/elpotrillo/pos/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type CatalogPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	SetStock(ctx context.Context, id domain.ID, stock int) error
	SetPrice(ctx context.Context, id domain.ID, price domain.Amount) error
	DeductStock(ctx context.Context, id domain.ID, quantity int) error
}
