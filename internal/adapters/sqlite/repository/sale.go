package repository

import (
	"context"
	"errors"
	"time"

	"github.com/elpotrillo/pos/internal/adapters/sqlite"
	"github.com/elpotrillo/pos/internal/core/domain"
	"github.com/elpotrillo/pos/internal/core/port"
)

type SaleRepository struct {
	store *sqlite.Store
}

func NewSaleRepository(store *sqlite.Store) port.SalePort {
	return &SaleRepository{store: store}
}

// Create inserts the sale header and every line. The caller is expected
// to run it inside a transaction scope together with the stock
// decrements; this method does not commit anything by itself.
func (r *SaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	if sale.ID != 0 {
		return errors.New("cannot create sale with existing ID")
	}

	q := r.store.Querier(ctx)

	result, err := q.ExecContext(ctx, "INSERT INTO sales (total) VALUES (?)", sale.Total.Float64())
	if err != nil {
		return err
	}
	saleID, err := result.LastInsertId()
	if err != nil {
		return err
	}
	sale.ID = domain.ID(saleID)

	// the timestamp is store-assigned (DEFAULT CURRENT_TIMESTAMP)
	var stamp string
	if err := q.QueryRowContext(ctx, "SELECT timestamp FROM sales WHERE id = ?", saleID).Scan(&stamp); err != nil {
		return err
	}
	ts, err := time.ParseInLocation(time.DateTime, stamp, time.UTC)
	if err != nil {
		return err
	}
	sale.Timestamp = ts

	for i := range sale.Lines {
		line := &sale.Lines[i]
		line.SaleID = sale.ID

		result, err := q.ExecContext(ctx,
			"INSERT INTO sale_lines (sale_id, product_id, quantity, subtotal) VALUES (?, ?, ?, ?)",
			line.SaleID, line.ProductID, line.Quantity, line.Subtotal.Float64(),
		)
		if err != nil {
			return err
		}
		lineID, err := result.LastInsertId()
		if err != nil {
			return err
		}
		line.ID = domain.ID(lineID)
	}
	return nil
}

// GetProductReport aggregates quantity and revenue per product name over
// all sale lines. Products that never sold are omitted.
func (r *SaleRepository) GetProductReport(ctx context.Context) ([]domain.ReportRow, error) {
	rows, err := r.store.Querier(ctx).QueryContext(ctx, `
		SELECT p.name, SUM(l.quantity), SUM(l.subtotal)
		FROM sale_lines l
		JOIN products p ON l.product_id = p.id
		GROUP BY p.name
		ORDER BY p.name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []domain.ReportRow
	for rows.Next() {
		var row domain.ReportRow
		var revenue float64
		if err := rows.Scan(&row.ProductName, &row.QuantitySold, &revenue); err != nil {
			return nil, err
		}
		row.Revenue = domain.NewAmountFromFloat(revenue)
		report = append(report, row)
	}
	return report, rows.Err()
}
