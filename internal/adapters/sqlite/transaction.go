package sqlite

import (
	"context"
	"database/sql"

	"github.com/elpotrillo/pos/internal/core/logger"
	"github.com/elpotrillo/pos/internal/core/port"
)

type txContextKey struct{}

func txFromContext(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txContextKey{}).(*sql.Tx)
	return tx
}

type TransactionManager struct {
	store *Store
}

func NewTransactionManager(store *Store) port.TransactionManager {
	return &TransactionManager{store: store}
}

// WithTransaction runs fn with a transaction bound to the context, so
// repository calls inside fn go through it. Any error from fn rolls the
// whole transaction back.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := tm.store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error(ctx, "transaction: rollback failed", rbErr, nil)
		}
		return err
	}

	return tx.Commit()
}
