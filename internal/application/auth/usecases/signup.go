package usecases

import (
	"context"
	"fmt"

	"openfare/internal/domain/user"
	vo "openfare/internal/domain/user/valueobjects"
	"openfare/internal/shared/config"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

type SignUpCommand struct {
	Name     string
	Email    string
	Password string
}

type SignUpResult struct {
	User *user.User
}

type SignUpUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	passwordConfig config.PasswordConfig
	logger         logger.Interface
}

func NewSignUpUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	passwordConfig config.PasswordConfig,
	logger logger.Interface,
) *SignUpUseCase {
	return &SignUpUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		passwordConfig: passwordConfig,
		logger:         logger,
	}
}

func (uc *SignUpUseCase) Execute(ctx context.Context, cmd SignUpCommand) (*SignUpResult, error) {
	if len(cmd.Password) < uc.passwordConfig.MinLength {
		return nil, errors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters", uc.passwordConfig.MinLength),
		)
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	name, err := vo.NewName(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check existing email", "error", err)
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(email, name, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	uc.logger.Infow("user signed up", "user_id", newUser.ID(), "email", email.String())

	return &SignUpResult{User: newUser}, nil
}
