package usecases

import (
	"context"
	"fmt"

	"openfare/internal/domain/sla"
	"openfare/internal/shared/logger"
)

type ListConfigsResult struct {
	Configs []*sla.Config
}

type ListConfigsUseCase struct {
	slaConfigRepo sla.ConfigRepository
	logger        logger.Interface
}

func NewListConfigsUseCase(slaConfigRepo sla.ConfigRepository, logger logger.Interface) *ListConfigsUseCase {
	return &ListConfigsUseCase{slaConfigRepo: slaConfigRepo, logger: logger}
}

func (uc *ListConfigsUseCase) Execute(ctx context.Context) (*ListConfigsResult, error) {
	configs, err := uc.slaConfigRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list SLA configs", "error", err)
		return nil, fmt.Errorf("failed to list SLA configs: %w", err)
	}
	return &ListConfigsResult{Configs: configs}, nil
}
