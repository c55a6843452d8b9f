package usecases

import (
	"context"
	"time"

	"openfare/internal/domain/audit"
	"openfare/internal/domain/complaint"
	"openfare/internal/domain/operator"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

type mockComplaintRepo struct {
	getByIDFunc func(ctx context.Context, id uint) (*complaint.Complaint, error)
	updateFunc  func(ctx context.Context, c *complaint.Complaint) error
	listFunc    func(ctx context.Context, filter complaint.ComplaintFilter) ([]*complaint.Complaint, int64, error)
}

func (m *mockComplaintRepo) Save(ctx context.Context, c *complaint.Complaint) error { return nil }

func (m *mockComplaintRepo) Update(ctx context.Context, c *complaint.Complaint) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepo) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("complaint not found")
}

func (m *mockComplaintRepo) GetUserComplaints(ctx context.Context, userID uint) ([]*complaint.Complaint, error) {
	return nil, nil
}

func (m *mockComplaintRepo) ExistsByPNR(ctx context.Context, pnr string) (bool, error) {
	return false, nil
}

func (m *mockComplaintRepo) List(ctx context.Context, filter complaint.ComplaintFilter) ([]*complaint.Complaint, int64, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockComplaintRepo) ListOlderThan(ctx context.Context, cutoff time.Time) ([]*complaint.Complaint, error) {
	return nil, nil
}

type mockMessageRepo struct {
	saved      []*complaint.Message
	markedRead bool
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
	m.markedRead = true
	return nil
}

type mockOperatorRepo struct{}

func (m *mockOperatorRepo) Save(ctx context.Context, op *operator.Operator) error   { return nil }
func (m *mockOperatorRepo) Update(ctx context.Context, op *operator.Operator) error { return nil }

func (m *mockOperatorRepo) GetByID(ctx context.Context, id uint) (*operator.Operator, error) {
	return operator.ReconstructOperator(id, "SwiftBus Travels", 98.5, 1, 24, time.Now(), time.Now())
}

func (m *mockOperatorRepo) GetByName(ctx context.Context, name string) (*operator.Operator, error) {
	return nil, errors.NewNotFoundError("operator not found")
}

func (m *mockOperatorRepo) List(ctx context.Context) ([]*operator.Operator, error) {
	return nil, nil
}

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

type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
