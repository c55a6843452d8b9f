package usecases

import (
	"context"
	"time"

	"openfare/internal/domain/complaint"
	"openfare/internal/domain/operator"
	"openfare/internal/domain/ticket"
	"openfare/internal/domain/user"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

type mockUserRepo struct {
	getByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

type mockTicketRepo struct {
	getByPNRFunc       func(ctx context.Context, pnr string) (*ticket.Ticket, error)
	getUserTicketsFunc func(ctx context.Context, userID uint) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepo) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
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
	if m.getUserTicketsFunc != nil {
		return m.getUserTicketsFunc(ctx, userID)
	}
	return nil, nil
}

type mockRefundRepo struct {
	getByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Refund, error)
}

func (m *mockRefundRepo) Save(ctx context.Context, r *ticket.Refund) error   { return nil }
func (m *mockRefundRepo) Update(ctx context.Context, r *ticket.Refund) error { return nil }

func (m *mockRefundRepo) GetByID(ctx context.Context, id uint) (*ticket.Refund, error) {
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

type mockComplaintRepo struct {
	saveFunc              func(ctx context.Context, c *complaint.Complaint) error
	getUserComplaintsFunc func(ctx context.Context, userID uint) ([]*complaint.Complaint, error)
}

func (m *mockComplaintRepo) Save(ctx context.Context, c *complaint.Complaint) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockComplaintRepo) Update(ctx context.Context, c *complaint.Complaint) error { return nil }

func (m *mockComplaintRepo) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	return nil, errors.NewNotFoundError("complaint not found")
}

func (m *mockComplaintRepo) GetUserComplaints(ctx context.Context, userID uint) ([]*complaint.Complaint, error) {
	if m.getUserComplaintsFunc != nil {
		return m.getUserComplaintsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockComplaintRepo) ExistsByPNR(ctx context.Context, pnr string) (bool, error) {
	return false, nil
}

func (m *mockComplaintRepo) List(ctx context.Context, filter complaint.ComplaintFilter) ([]*complaint.Complaint, int64, error) {
	return nil, 0, nil
}

func (m *mockComplaintRepo) ListOlderThan(ctx context.Context, cutoff time.Time) ([]*complaint.Complaint, error) {
	return nil, nil
}

type mockMessageRepo struct {
	saved []*complaint.Message
}

func (m *mockMessageRepo) Save(ctx context.Context, msg *complaint.Message) error {
	m.saved = append(m.saved, msg)
	return msg.SetID(uint(len(m.saved)))
}

func (m *mockMessageRepo) GetByComplaintID(ctx context.Context, complaintID uint) ([]*complaint.Message, error) {
	return m.saved, nil
}

func (m *mockMessageRepo) FirstAdminReplyAt(ctx context.Context, complaintID uint) (*time.Time, error) {
	return nil, nil
}

func (m *mockMessageRepo) MarkRead(ctx context.Context, complaintID uint, readerID uint) error {
	return nil
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

type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
