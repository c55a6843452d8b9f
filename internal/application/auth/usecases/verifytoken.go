package usecases

import (
	"context"
	"fmt"

	"openfare/internal/domain/user"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

type VerifyTokenCommand struct {
	Token string
}

type VerifyTokenResult struct {
	User *user.User
}

// VerifyTokenUseCase validates a session token and re-reads the user from
// the store, so a deleted account cannot keep an authenticated session.
type VerifyTokenUseCase struct {
	userRepo     user.Repository
	tokenService TokenService
	logger       logger.Interface
}

func NewVerifyTokenUseCase(
	userRepo user.Repository,
	tokenService TokenService,
	logger logger.Interface,
) *VerifyTokenUseCase {
	return &VerifyTokenUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

func (uc *VerifyTokenUseCase) Execute(ctx context.Context, cmd VerifyTokenCommand) (*VerifyTokenResult, error) {
	if cmd.Token == "" {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	claims, err := uc.tokenService.Validate(cmd.Token)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}

	existing, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", claims.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &VerifyTokenResult{User: existing}, nil
}
