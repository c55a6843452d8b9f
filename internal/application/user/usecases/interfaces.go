package usecases

import "context"

// TransactionManager runs a function within a database transaction carried
// on the context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
