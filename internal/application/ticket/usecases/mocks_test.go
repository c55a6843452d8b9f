package usecases

import (
	"context"
	"time"

	"openfare/internal/domain/audit"
	"openfare/internal/domain/operator"
	"openfare/internal/domain/sla"
	"openfare/internal/domain/ticket"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

type mockTicketRepo struct {
	saveFunc     func(ctx context.Context, t *ticket.Ticket) error
	updateFunc   func(ctx context.Context, t *ticket.Ticket) error
	getByIDFunc  func(ctx context.Context, id uint) (*ticket.Ticket, error)
	getByPNRFunc func(ctx context.Context, pnr string) (*ticket.Ticket, error)
}

func (m *mockTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepo) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepo) GetByPNR(ctx context.Context, pnr string) (*ticket.Ticket, error) {
	if m.getByPNRFunc != nil {
		return m.getByPNRFunc(ctx, pnr)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepo) ExistsByPNR(ctx context.Context, pnr string) (bool, error) {
	return false, nil
}

func (m *mockTicketRepo) GetUserTickets(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	return nil, nil
}

type mockRefundRepo struct {
	saveFunc          func(ctx context.Context, r *ticket.Refund) error
	updateFunc        func(ctx context.Context, r *ticket.Refund) error
	getByIDFunc       func(ctx context.Context, id uint) (*ticket.Refund, error)
	getByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Refund, error)
}

func (m *mockRefundRepo) Save(ctx context.Context, r *ticket.Refund) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, r)
	}
	return nil
}

func (m *mockRefundRepo) Update(ctx context.Context, r *ticket.Refund) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, r)
	}
	return nil
}

func (m *mockRefundRepo) GetByID(ctx context.Context, id uint) (*ticket.Refund, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("refund not found")
}

func (m *mockRefundRepo) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Refund, error) {
	if m.getByTicketIDFunc != nil {
		return m.getByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockRefundRepo) ListExceedingThreshold(ctx context.Context, threshold time.Duration, now time.Time) ([]*ticket.Refund, error) {
	return nil, nil
}

type mockOperatorRepo struct {
	getByIDFunc func(ctx context.Context, id uint) (*operator.Operator, error)
}

func (m *mockOperatorRepo) Save(ctx context.Context, op *operator.Operator) error   { return nil }
func (m *mockOperatorRepo) Update(ctx context.Context, op *operator.Operator) error { return nil }

func (m *mockOperatorRepo) GetByID(ctx context.Context, id uint) (*operator.Operator, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return operator.ReconstructOperator(id, "SwiftBus Travels", 98.5, 1, 24, time.Now(), time.Now())
}

func (m *mockOperatorRepo) GetByName(ctx context.Context, name string) (*operator.Operator, error) {
	return nil, errors.NewNotFoundError("operator not found")
}

func (m *mockOperatorRepo) List(ctx context.Context) ([]*operator.Operator, error) {
	return nil, nil
}

type mockSLAConfigRepo struct {
	getByTypeFunc func(ctx context.Context, slaType sla.SLAType) (*sla.Config, error)
}

func (m *mockSLAConfigRepo) GetByType(ctx context.Context, slaType sla.SLAType) (*sla.Config, error) {
	if m.getByTypeFunc != nil {
		return m.getByTypeFunc(ctx, slaType)
	}
	return nil, errors.NewNotFoundError("sla config not found")
}

func (m *mockSLAConfigRepo) Upsert(ctx context.Context, config *sla.Config) error { return nil }
func (m *mockSLAConfigRepo) List(ctx context.Context) ([]*sla.Config, error)      { return nil, nil }

type mockAuditRepo struct {
	saved []*audit.AuditLog
}

func (m *mockAuditRepo) Save(ctx context.Context, entry *audit.AuditLog) error {
	m.saved = append(m.saved, entry)
	return nil
}

func (m *mockAuditRepo) List(ctx context.Context, page, pageSize int) ([]*audit.AuditLog, int64, error) {
	return m.saved, int64(len(m.saved)), nil
}

// passthroughTxManager runs the function directly without a transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
