package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Transactor interface {
	WithinTransaction(ctx context.Context, tFunc func(ctx context.Context) error) error
}

type txKey struct{}

// txBeginner is the slice of pgxpool.Pool the manager needs.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type TxManager struct {
	pool txBeginner
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// WithinTransaction runs tFunc inside one transaction, injecting the
// tx into the context so repositories pick it up. Rollback on error
// or panic, commit otherwise. The result must be named: the deferred
// commit assigns to err, and a failed COMMIT has to reach the caller.
func (tm *TxManager) WithinTransaction(ctx context.Context, tFunc func(ctx context.Context) error) (err error) {
	tx, err := tm.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			_ = tx.Rollback(ctx)
		} else if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("commit transaction: %w", commitErr)
		}
	}()

	err = tFunc(context.WithValue(ctx, txKey{}, tx))
	return err
}

// GetTx retrieves the transaction from context, or nil if not present.
// Repositories fall back to the pool when no transaction is open.
func GetTx(ctx context.Context) pgx.Tx {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return nil
}
