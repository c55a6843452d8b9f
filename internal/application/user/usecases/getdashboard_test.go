package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openfare/internal/domain/complaint"
	"openfare/internal/domain/ticket"
	"openfare/internal/domain/user"
	vo "openfare/internal/domain/user/valueobjects"
	"openfare/internal/shared/authorization"
	"openfare/internal/shared/errors"
)

func dashboardUser(t *testing.T) *user.User {
	t.Helper()
	email, err := vo.NewEmail("priya@example.com")
	require.NoError(t, err)
	name, err := vo.NewName("Priya Patel")
	require.NoError(t, err)
	u, err := user.ReconstructUser(7, email, name, authorization.RoleUser, "hash", time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func dashboardTicket(t *testing.T, id uint, pnr string, hoursAgo int) *ticket.Ticket {
	t.Helper()
	uid := uint(7)
	created := time.Now().Add(-time.Duration(hoursAgo) * time.Hour)
	tk, err := ticket.ReconstructTicket(
		id, pnr, 3, &uid, ticket.StatusBooked, 850,
		nil, nil, []byte(standardPolicy), created, created,
	)
	require.NoError(t, err)
	return tk
}

// TestGetDashboard_OrdersNewestFirst verifies tickets and complaints come
// back sorted by creation time, newest first.
func TestGetDashboard_OrdersNewestFirst(t *testing.T) {
	users := &mockUserRepo{
		getByIDFunc: func(context.Context, uint) (*user.User, error) { return dashboardUser(t), nil },
	}
	tickets := &mockTicketRepo{
		getUserTicketsFunc: func(context.Context, uint) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{
				dashboardTicket(t, 1, "RB101", 72),
				dashboardTicket(t, 2, "RB102", 2),
			}, nil
		},
	}
	uid := uint(7)
	old, err := complaint.ReconstructComplaint(1, "RB101", 3, &uid, "Late refund",
		complaint.StatusPending, time.Now().Add(-48*time.Hour), time.Now())
	require.NoError(t, err)
	recent, err := complaint.ReconstructComplaint(2, "RB102", 3, &uid, "Rude staff",
		complaint.StatusOpen, time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)
	complaints := &mockComplaintRepo{
		getUserComplaintsFunc: func(context.Context, uint) ([]*complaint.Complaint, error) {
			return []*complaint.Complaint{old, recent}, nil
		},
	}
	uc := NewGetDashboardUseCase(users, tickets, &mockRefundRepo{}, complaints, &mockOperatorRepo{}, testLogger())

	result, err := uc.Execute(context.Background(), GetDashboardQuery{UserID: 7})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.User.ID())
	require.Len(t, result.Tickets, 2)
	assert.Equal(t, "RB102", result.Tickets[0].Ticket.PNR())
	assert.Equal(t, "SwiftBus Travels", result.Tickets[0].Operator.Name())
	require.Len(t, result.Complaints, 2)
	assert.Equal(t, uint(2), result.Complaints[0].Complaint.ID())
}

// TestGetDashboard_UnknownUser verifies a missing account yields not found.
func TestGetDashboard_UnknownUser(t *testing.T) {
	uc := NewGetDashboardUseCase(&mockUserRepo{}, &mockTicketRepo{}, &mockRefundRepo{}, &mockComplaintRepo{}, &mockOperatorRepo{}, testLogger())

	result, err := uc.Execute(context.Background(), GetDashboardQuery{UserID: 404})

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
