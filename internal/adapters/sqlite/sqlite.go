package sqlite

import (
	"context"
	"database/sql"

	"github.com/elpotrillo/pos/internal/adapters/config"

	_ "modernc.org/sqlite"
)

// Store wraps the embedded sqlite database. The schema is created on
// open, so a fresh store file is usable immediately.
type Store struct {
	db *sql.DB
}

func NewStore(cfg config.DBConfig) (*Store, error) {
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, err
	}

	// one writer at a time; also keeps an in-memory store on a single
	// connection so every operation sees the same database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}

	store := &Store{db: db}
	if err := store.createSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) createSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			price REAL NOT NULL,
			stock INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			total REAL
		)`,
		`CREATE TABLE IF NOT EXISTS sale_lines (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sale_id INTEGER,
			product_id INTEGER,
			quantity INTEGER,
			subtotal REAL,
			FOREIGN KEY(sale_id) REFERENCES sales(id),
			FOREIGN KEY(product_id) REFERENCES products(id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Querier returns the transaction bound to ctx when one is active,
// otherwise the plain database handle.
func (s *Store) Querier(ctx context.Context) Querier {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return s.db
}
