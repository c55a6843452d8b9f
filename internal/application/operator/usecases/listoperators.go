package usecases

import (
	"context"
	"fmt"

	"openfare/internal/domain/operator"
	"openfare/internal/shared/logger"
)

type ListOperatorsResult struct {
	Operators []*operator.Operator
}

// ListOperatorsUseCase serves the public transparency board of operators
// and their trust scores.
type ListOperatorsUseCase struct {
	operatorRepo operator.Repository
	logger       logger.Interface
}

func NewListOperatorsUseCase(operatorRepo operator.Repository, logger logger.Interface) *ListOperatorsUseCase {
	return &ListOperatorsUseCase{operatorRepo: operatorRepo, logger: logger}
}

func (uc *ListOperatorsUseCase) Execute(ctx context.Context) (*ListOperatorsResult, error) {
	operators, err := uc.operatorRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list operators", "error", err)
		return nil, fmt.Errorf("failed to list operators: %w", err)
	}
	return &ListOperatorsResult{Operators: operators}, nil
}
