package usecases

import (
	"context"
	"fmt"

	"openfare/internal/domain/audit"
	"openfare/internal/shared/logger"
	"openfare/internal/shared/utils"
)

type ListAuditLogsQuery struct {
	Pagination utils.Pagination
}

type ListAuditLogsResult struct {
	Logs  []*audit.AuditLog
	Total int64
}

type ListAuditLogsUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewListAuditLogsUseCase(auditRepo audit.Repository, logger logger.Interface) *ListAuditLogsUseCase {
	return &ListAuditLogsUseCase{auditRepo: auditRepo, logger: logger}
}

func (uc *ListAuditLogsUseCase) Execute(ctx context.Context, query ListAuditLogsQuery) (*ListAuditLogsResult, error) {
	logs, total, err := uc.auditRepo.List(ctx, query.Pagination.Page, query.Pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list audit logs", "error", err)
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return &ListAuditLogsResult{Logs: logs, Total: total}, nil
}
