package usecases

import (
	"context"
	"time"

	"openfare/internal/domain/complaint"
	"openfare/internal/domain/operator"
	"openfare/internal/domain/sla"
	"openfare/internal/domain/ticket"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

// memSLAConfigRepo holds configs by type.
type memSLAConfigRepo struct {
	configs map[sla.SLAType]*sla.Config
}

func (m *memSLAConfigRepo) GetByType(ctx context.Context, slaType sla.SLAType) (*sla.Config, error) {
	cfg, ok := m.configs[slaType]
	if !ok {
		return nil, errors.NewNotFoundError("sla config not found")
	}
	return cfg, nil
}

func (m *memSLAConfigRepo) Upsert(ctx context.Context, cfg *sla.Config) error {
	if m.configs == nil {
		m.configs = map[sla.SLAType]*sla.Config{}
	}
	m.configs[cfg.Type()] = cfg
	return nil
}

func (m *memSLAConfigRepo) List(ctx context.Context) ([]*sla.Config, error) {
	var out []*sla.Config
	for _, cfg := range m.configs {
		out = append(out, cfg)
	}
	return out, nil
}

// memTrustLogRepo enforces source_id uniqueness like the real table.
type memTrustLogRepo struct {
	logs []*sla.TrustScoreLog
}

func (m *memTrustLogRepo) SaveIfAbsent(ctx context.Context, entry *sla.TrustScoreLog) (bool, error) {
	for _, l := range m.logs {
		if l.SourceID() == entry.SourceID() {
			return false, nil
		}
	}
	entry.SetID(uint(len(m.logs) + 1))
	m.logs = append(m.logs, entry)
	return true, nil
}

func (m *memTrustLogRepo) ExistsBySourceID(ctx context.Context, sourceID string) (bool, error) {
	for _, l := range m.logs {
		if l.SourceID() == sourceID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memTrustLogRepo) ListByOperator(ctx context.Context, operatorID uint) ([]*sla.TrustScoreLog, error) {
	var out []*sla.TrustScoreLog
	for _, l := range m.logs {
		if l.OperatorID() == operatorID {
			out = append(out, l)
		}
	}
	return out, nil
}

// memOperatorRepo keeps live aggregates so score changes survive reloads.
type memOperatorRepo struct {
	operators map[uint]*operator.Operator
}

func (m *memOperatorRepo) Save(ctx context.Context, op *operator.Operator) error   { return nil }
func (m *memOperatorRepo) Update(ctx context.Context, op *operator.Operator) error { return nil }

func (m *memOperatorRepo) GetByID(ctx context.Context, id uint) (*operator.Operator, error) {
	op, ok := m.operators[id]
	if !ok {
		return nil, errors.NewNotFoundError("operator not found")
	}
	return op, nil
}

func (m *memOperatorRepo) GetByName(ctx context.Context, name string) (*operator.Operator, error) {
	return nil, errors.NewNotFoundError("operator not found")
}

func (m *memOperatorRepo) List(ctx context.Context) ([]*operator.Operator, error) {
	var out []*operator.Operator
	for _, op := range m.operators {
		out = append(out, op)
	}
	return out, nil
}

type memRefundRepo struct {
	refunds map[uint]*ticket.Refund
}

func (m *memRefundRepo) Save(ctx context.Context, r *ticket.Refund) error   { return nil }
func (m *memRefundRepo) Update(ctx context.Context, r *ticket.Refund) error { return nil }

func (m *memRefundRepo) GetByID(ctx context.Context, id uint) (*ticket.Refund, error) {
	r, ok := m.refunds[id]
	if !ok {
		return nil, errors.NewNotFoundError("refund not found")
	}
	return r, nil
}

func (m *memRefundRepo) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Refund, error) {
	var out []*ticket.Refund
	for _, r := range m.refunds {
		if r.TicketID() == ticketID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRefundRepo) ListExceedingThreshold(ctx context.Context, threshold time.Duration, now time.Time) ([]*ticket.Refund, error) {
	var out []*ticket.Refund
	for _, r := range m.refunds {
		end := now
		if r.ProcessedAt() != nil {
			end = *r.ProcessedAt()
		}
		if end.Sub(r.CreatedAt()) > threshold {
			out = append(out, r)
		}
	}
	return out, nil
}

type memTicketRepo struct {
	tickets map[uint]*ticket.Ticket
}

func (m *memTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *memTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *memTicketRepo) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	t, ok := m.tickets[id]
	if !ok {
		return nil, errors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

func (m *memTicketRepo) GetByPNR(ctx context.Context, pnr string) (*ticket.Ticket, error) {
	for _, t := range m.tickets {
		if t.PNR() == pnr {
			return t, nil
		}
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *memTicketRepo) ExistsByPNR(ctx context.Context, pnr string) (bool, error) {
	for _, t := range m.tickets {
		if t.PNR() == pnr {
			return true, nil
		}
	}
	return false, nil
}

func (m *memTicketRepo) GetUserTickets(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	return nil, nil
}

type memComplaintRepo struct {
	complaints map[uint]*complaint.Complaint
}

func (m *memComplaintRepo) Save(ctx context.Context, c *complaint.Complaint) error   { return nil }
func (m *memComplaintRepo) Update(ctx context.Context, c *complaint.Complaint) error { return nil }

func (m *memComplaintRepo) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	c, ok := m.complaints[id]
	if !ok {
		return nil, errors.NewNotFoundError("complaint not found")
	}
	return c, nil
}

func (m *memComplaintRepo) GetUserComplaints(ctx context.Context, userID uint) ([]*complaint.Complaint, error) {
	return nil, nil
}

func (m *memComplaintRepo) ExistsByPNR(ctx context.Context, pnr string) (bool, error) {
	for _, c := range m.complaints {
		if c.PNR() == pnr {
			return true, nil
		}
	}
	return false, nil
}

func (m *memComplaintRepo) List(ctx context.Context, filter complaint.ComplaintFilter) ([]*complaint.Complaint, int64, error) {
	return nil, 0, nil
}

func (m *memComplaintRepo) ListOlderThan(ctx context.Context, cutoff time.Time) ([]*complaint.Complaint, error) {
	var out []*complaint.Complaint
	for _, c := range m.complaints {
		if c.CreatedAt().Before(cutoff) {
			out = append(out, c)
		}
	}
	return out, nil
}

type memMessageRepo struct {
	firstAdminReply map[uint]*time.Time
}

func (m *memMessageRepo) Save(ctx context.Context, msg *complaint.Message) error { return nil }

func (m *memMessageRepo) GetByComplaintID(ctx context.Context, complaintID uint) ([]*complaint.Message, error) {
	return nil, nil
}

func (m *memMessageRepo) FirstAdminReplyAt(ctx context.Context, complaintID uint) (*time.Time, error) {
	return m.firstAdminReply[complaintID], nil
}

func (m *memMessageRepo) MarkRead(ctx context.Context, complaintID uint, readerID uint) error {
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
