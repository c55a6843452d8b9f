package operator

import "context"

type Repository interface {
	Save(ctx context.Context, op *Operator) error
	Update(ctx context.Context, op *Operator) error
	GetByID(ctx context.Context, id uint) (*Operator, error)
	GetByName(ctx context.Context, name string) (*Operator, error)
	List(ctx context.Context) ([]*Operator, error)
}
