package usecases

import (
	"context"
	"fmt"

	"openfare/internal/domain/user"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

type SignInCommand struct {
	Email    string
	Password string
}

type SignInResult struct {
	User      *user.User
	Token     string
	ExpiresIn int64
}

type SignInUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokenService   TokenService
	logger         logger.Interface
}

func NewSignInUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	tokenService TokenService,
	logger logger.Interface,
) *SignInUseCase {
	return &SignInUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokenService:   tokenService,
		logger:         logger,
	}
}

func (uc *SignInUseCase) Execute(ctx context.Context, cmd SignInCommand) (*SignInResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Same error for unknown email and wrong password so the response does
	// not reveal which emails are registered.
	if existing == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := existing.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.tokenService.Generate(existing.ID(), existing.Email().String(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "error", err, "user_id", existing.ID())
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Infow("user signed in", "user_id", existing.ID())

	return &SignInResult{
		User:      existing,
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}
