package usecases

import (
	"context"
	"fmt"

	"openfare/internal/domain/user"
	"openfare/internal/shared/authorization"
	"openfare/internal/shared/logger"
)

type mockUserRepo struct {
	saveFunc       func(ctx context.Context, u *user.User) error
	getByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	getByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, nil
}

type mockHasher struct{}

func (m *mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type mockTokenService struct {
	generateFunc func(userID uint, email string, role authorization.UserRole) (string, int64, error)
	validateFunc func(token string) (*TokenClaims, error)
}

func (m *mockTokenService) Generate(userID uint, email string, role authorization.UserRole) (string, int64, error) {
	if m.generateFunc != nil {
		return m.generateFunc(userID, email, role)
	}
	return "token", 3600, nil
}

func (m *mockTokenService) Validate(token string) (*TokenClaims, error) {
	if m.validateFunc != nil {
		return m.validateFunc(token)
	}
	return nil, fmt.Errorf("invalid token")
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
