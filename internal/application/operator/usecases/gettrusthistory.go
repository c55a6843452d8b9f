package usecases

import (
	"context"
	"fmt"

	"openfare/internal/domain/operator"
	"openfare/internal/domain/sla"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

type GetTrustHistoryQuery struct {
	OperatorID uint
}

type GetTrustHistoryResult struct {
	Operator *operator.Operator
	History  []*sla.TrustScoreLog
}

// GetTrustHistoryUseCase returns an operator with its trust score trail,
// newest adjustment first.
type GetTrustHistoryUseCase struct {
	operatorRepo operator.Repository
	trustLogRepo sla.TrustScoreLogRepository
	logger       logger.Interface
}

func NewGetTrustHistoryUseCase(
	operatorRepo operator.Repository,
	trustLogRepo sla.TrustScoreLogRepository,
	logger logger.Interface,
) *GetTrustHistoryUseCase {
	return &GetTrustHistoryUseCase{
		operatorRepo: operatorRepo,
		trustLogRepo: trustLogRepo,
		logger:       logger,
	}
}

func (uc *GetTrustHistoryUseCase) Execute(ctx context.Context, query GetTrustHistoryQuery) (*GetTrustHistoryResult, error) {
	op, err := uc.operatorRepo.GetByID(ctx, query.OperatorID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("operator not found")
		}
		uc.logger.Errorw("failed to get operator", "error", err, "operator_id", query.OperatorID)
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}

	history, err := uc.trustLogRepo.ListByOperator(ctx, query.OperatorID)
	if err != nil {
		uc.logger.Errorw("failed to list trust score logs", "error", err, "operator_id", query.OperatorID)
		return nil, fmt.Errorf("failed to list trust score logs: %w", err)
	}

	return &GetTrustHistoryResult{Operator: op, History: history}, nil
}
