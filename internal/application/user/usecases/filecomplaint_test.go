package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openfare/internal/domain/complaint"
	"openfare/internal/domain/ticket"
	"openfare/internal/shared/errors"
)

const standardPolicy = `{"0-12h": "100% Refund", "12-24h": "50% Refund", ">24h": "No Refund"}`

func ticketForPNR(t *testing.T, pnr string, operatorID uint) *ticket.Ticket {
	t.Helper()
	uid := uint(7)
	created := time.Now().Add(-24 * time.Hour)
	tk, err := ticket.ReconstructTicket(
		1, pnr, operatorID, &uid, ticket.StatusBooked, 850,
		nil, nil, []byte(standardPolicy), created, created,
	)
	require.NoError(t, err)
	return tk
}

// TestFileComplaint_Success verifies filing creates a PENDING complaint
// against the ticket's operator with the description as first message.
func TestFileComplaint_Success(t *testing.T) {
	tickets := &mockTicketRepo{
		getByPNRFunc: func(_ context.Context, pnr string) (*ticket.Ticket, error) {
			return ticketForPNR(t, pnr, 3), nil
		},
	}
	messages := &mockMessageRepo{}
	uc := NewFileComplaintUseCase(&mockComplaintRepo{}, messages, tickets, passthroughTxManager{}, testLogger())

	result, err := uc.Execute(context.Background(), FileComplaintCommand{
		UserID:      7,
		PNR:         "RB104",
		Reason:      "Refund not received",
		Description: "Cancelled five days ago, still waiting for the refund.",
	})

	require.NoError(t, err)
	assert.Equal(t, complaint.StatusPending, result.Complaint.Status())
	assert.Equal(t, uint(3), result.Complaint.OperatorID())
	require.Len(t, messages.saved, 1)
	assert.Equal(t, uint(7), messages.saved[0].SenderID())
	assert.Equal(t, "Cancelled five days ago, still waiting for the refund.", messages.saved[0].Content())
}

// TestFileComplaint_UnknownPNR verifies a complaint against an unknown
// booking is rejected with not found.
func TestFileComplaint_UnknownPNR(t *testing.T) {
	uc := NewFileComplaintUseCase(&mockComplaintRepo{}, &mockMessageRepo{}, &mockTicketRepo{}, passthroughTxManager{}, testLogger())

	result, err := uc.Execute(context.Background(), FileComplaintCommand{
		UserID:      7,
		PNR:         "NOPE",
		Reason:      "Refund not received",
		Description: "No such booking.",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

// TestFileComplaint_HTMLStripped verifies markup in free text is removed
// before storage.
func TestFileComplaint_HTMLStripped(t *testing.T) {
	tickets := &mockTicketRepo{
		getByPNRFunc: func(_ context.Context, pnr string) (*ticket.Ticket, error) {
			return ticketForPNR(t, pnr, 3), nil
		},
	}
	messages := &mockMessageRepo{}
	uc := NewFileComplaintUseCase(&mockComplaintRepo{}, messages, tickets, passthroughTxManager{}, testLogger())

	result, err := uc.Execute(context.Background(), FileComplaintCommand{
		UserID:      7,
		PNR:         "RB104",
		Reason:      "<b>Refund</b> not received",
		Description: "<script>alert(1)</script>Still waiting.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Refund not received", result.Complaint.Reason())
	require.Len(t, messages.saved, 1)
	assert.Equal(t, "Still waiting.", messages.saved[0].Content())
}

// TestFileComplaint_EmptyDescription verifies the description is mandatory,
// including when sanitization leaves nothing behind.
func TestFileComplaint_EmptyDescription(t *testing.T) {
	uc := NewFileComplaintUseCase(&mockComplaintRepo{}, &mockMessageRepo{}, &mockTicketRepo{}, passthroughTxManager{}, testLogger())

	result, err := uc.Execute(context.Background(), FileComplaintCommand{
		UserID:      7,
		PNR:         "RB104",
		Reason:      "Refund not received",
		Description: "<img src=x>",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
