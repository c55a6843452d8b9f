package complaint

import (
	"context"
	"time"
)

type ComplaintFilter struct {
	Status   *ComplaintStatus
	Page     int
	PageSize int
}

type ComplaintRepository interface {
	Save(ctx context.Context, c *Complaint) error
	Update(ctx context.Context, c *Complaint) error
	GetByID(ctx context.Context, id uint) (*Complaint, error)
	GetUserComplaints(ctx context.Context, userID uint) ([]*Complaint, error)
	ExistsByPNR(ctx context.Context, pnr string) (bool, error)
	List(ctx context.Context, filter ComplaintFilter) ([]*Complaint, int64, error)
	// ListOlderThan returns complaints created before the cutoff, regardless
	// of status. The SLA sweep narrows them by first-response time.
	ListOlderThan(ctx context.Context, cutoff time.Time) ([]*Complaint, error)
}

type MessageRepository interface {
	Save(ctx context.Context, m *Message) error
	GetByComplaintID(ctx context.Context, complaintID uint) ([]*Message, error)
	// FirstAdminReplyAt returns the creation time of the earliest message on
	// the complaint sent by an ADMIN user, or nil if no admin has replied.
	FirstAdminReplyAt(ctx context.Context, complaintID uint) (*time.Time, error)
	MarkRead(ctx context.Context, complaintID uint, readerID uint) error
}
