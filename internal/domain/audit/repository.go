package audit

import "context"

type Repository interface {
	Save(ctx context.Context, log *AuditLog) error
	List(ctx context.Context, page, pageSize int) ([]*AuditLog, int64, error)
}
