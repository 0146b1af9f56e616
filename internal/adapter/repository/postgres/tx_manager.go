package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/execsec/backoffice/internal/usecase"
)

// TxManager implements usecase.TransactionManager.
type pgxPool interface {
	Begin(context.Context) (pgx.Tx, error)
}

type TxManager struct {
	pool    pgxPool
	retrier *Retrier
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool, logger zerolog.Logger) *TxManager {
	return newTxManagerWithPool(pool, NewRetrier(logger))
}

func newTxManagerWithPool(pool pgxPool, retrier *Retrier) *TxManager {
	return &TxManager{pool: pool, retrier: retrier}
}

// Begin starts a new transaction.
func (m *TxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}

	return &Tx{tx: tx}, nil
}

// WithinTransaction runs fn inside a transaction. Serialization failures
// and deadlocks abort the transaction and rerun the whole unit.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(tx usecase.Transaction) error) error {
	return m.retrier.Retry(ctx, func() error {
		tx, err := m.Begin(ctx)
		if err != nil {
			return err
		}
		if err := fn(tx); err != nil {
			_ = tx.Rollback(ctx)
			return err
		}
		return tx.Commit(ctx)
	})
}

// Tx wraps a pgx transaction.
type Tx struct {
	tx pgx.Tx
}

// Commit commits the transaction.
func (t *Tx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction.
func (t *Tx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// PgxTx returns the underlying pgx.Tx.
func (t *Tx) PgxTx() pgx.Tx {
	return t.tx
}
