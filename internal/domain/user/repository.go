package user

import "context"

// Repository defines persistence operations for the user aggregate.
// GetByEmail returns (nil, nil) when no user matches, so callers can
// distinguish "not found" from storage failures.
type Repository interface {
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
