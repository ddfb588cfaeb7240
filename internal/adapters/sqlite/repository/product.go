package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/elpotrillo/pos/internal/adapters/sqlite"
	"github.com/elpotrillo/pos/internal/core/domain"
	"github.com/elpotrillo/pos/internal/core/port"
	"github.com/elpotrillo/pos/internal/core/serviceerrors"
)

type ProductRepository struct {
	store *sqlite.Store
}

func NewProductRepository(store *sqlite.Store) port.CatalogPort {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	result, err := r.store.Querier(ctx).ExecContext(ctx,
		"INSERT INTO products (name, price, stock) VALUES (?, ?, ?)",
		product.Name, product.Price.Float64(), product.Stock,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	product.ID = domain.ID(id)
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	row := r.store.Querier(ctx).QueryRowContext(ctx,
		"SELECT id, name, price, stock FROM products WHERE id = ?", id,
	)

	var product domain.Product
	var price float64
	if err := row.Scan(&product.ID, &product.Name, &price, &product.Stock); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("product %d not found", id))
		}
		return nil, err
	}
	product.Price = domain.NewAmountFromFloat(price)
	return &product, nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	rows, err := r.store.Querier(ctx).QueryContext(ctx,
		"SELECT id, name, price, stock FROM products ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		var product domain.Product
		var price float64
		if err := rows.Scan(&product.ID, &product.Name, &price, &product.Stock); err != nil {
			return nil, err
		}
		product.Price = domain.NewAmountFromFloat(price)
		products = append(products, &product)
	}
	return products, rows.Err()
}

func (r *ProductRepository) SetStock(ctx context.Context, id domain.ID, stock int) error {
	result, err := r.store.Querier(ctx).ExecContext(ctx,
		"UPDATE products SET stock = ? WHERE id = ?", stock, id,
	)
	if err != nil {
		return err
	}
	return requireRow(result, id)
}

func (r *ProductRepository) SetPrice(ctx context.Context, id domain.ID, price domain.Amount) error {
	result, err := r.store.Querier(ctx).ExecContext(ctx,
		"UPDATE products SET price = ? WHERE id = ?", price.Float64(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(result, id)
}

// DeductStock decrements stock only when enough units remain. The guard
// in the WHERE clause keeps stock non-negative even if a caller skipped
// its own validation.
func (r *ProductRepository) DeductStock(ctx context.Context, id domain.ID, quantity int) error {
	result, err := r.store.Querier(ctx).ExecContext(ctx,
		"UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?",
		quantity, id, quantity,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return serviceerrors.NewUnprocessableEntityError(fmt.Sprintf("insufficient stock for product %d", id))
	}
	return nil
}

func requireRow(result sql.Result, id domain.ID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return serviceerrors.NewNotFoundError(fmt.Sprintf("product %d not found", id))
	}
	return nil
}
