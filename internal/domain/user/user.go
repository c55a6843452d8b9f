package user

import (
	"fmt"
	"time"

	vo "openfare/internal/domain/user/valueobjects"
	"openfare/internal/shared/authorization"
)

// PasswordHasher abstracts the password hashing scheme used by the aggregate.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User represents the user aggregate root (pure domain model without persistence concerns)
type User struct {
	id           uint
	email        *vo.Email
	name         *vo.Name
	role         authorization.UserRole
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user aggregate. Self-service signup always produces
// a USER; admin accounts exist only through seeding.
func NewUser(email *vo.Email, name *vo.Name, passwordHash string) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		email:        email,
		name:         name,
		role:         authorization.RoleUser,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(
	id uint,
	email *vo.Email,
	name *vo.Name,
	role authorization.UserRole,
	passwordHash string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		email:        email,
		name:         name,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) Name() *vo.Name {
	return u.name
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// VerifyPassword checks the given plaintext password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("user has no password set")
	}
	return hasher.Verify(password, u.passwordHash)
}
