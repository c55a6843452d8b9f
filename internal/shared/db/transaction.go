// Package db carries the transaction plumbing shared by the openfare
// repositories. Multi-write operations (cancel + refund, complaint + first
// message, sweep penalties) must land atomically, so use cases run inside
// RunInTransaction and repositories pick the tx up from the context.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey keys the active *gorm.DB transaction in a request context.
type txKey struct{}

// TransactionManager wraps a gorm handle and threads transactions through
// context so repositories stay unaware of transaction boundaries.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction executes fn inside a single transaction. Any error from fn
// rolls the whole transaction back; nil commits it.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTx returns the transaction carried by ctx, or the base handle when the
// caller is not inside RunInTransaction.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return tm.db.WithContext(ctx)
}

// GetTxFromContext is the repository-side accessor: it resolves the active
// transaction from ctx, falling back to defaultDB for standalone reads.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
