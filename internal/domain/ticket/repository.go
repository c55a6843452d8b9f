package ticket

import (
	"context"
	"time"
)

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByPNR(ctx context.Context, pnr string) (*Ticket, error)
	// ExistsByPNR is a cheap existence probe used by complaint filing.
	ExistsByPNR(ctx context.Context, pnr string) (bool, error)
	GetUserTickets(ctx context.Context, userID uint) ([]*Ticket, error)
}

type RefundRepository interface {
	Save(ctx context.Context, r *Refund) error
	Update(ctx context.Context, r *Refund) error
	GetByID(ctx context.Context, id uint) (*Refund, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Refund, error)
	// ListExceedingThreshold returns refunds whose processing time exceeds
	// the threshold as of now: INITIATED refunds older than the threshold
	// plus COMPLETED refunds that took longer than the threshold.
	ListExceedingThreshold(ctx context.Context, threshold time.Duration, now time.Time) ([]*Refund, error)
}
