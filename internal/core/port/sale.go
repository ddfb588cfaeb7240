package port

import (
	"context"

	"github.com/elpotrillo/pos/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type SalePort interface {
	Create(ctx context.Context, sale *domain.Sale) error
	GetProductReport(ctx context.Context) ([]domain.ReportRow, error)
}
