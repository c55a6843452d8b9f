package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openfare/internal/domain/ticket"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

var generousPolicy = []byte(`{"0-24h":"100% Refund","24-48h":"75% Refund",">48h":"50% Refund"}`)

func newTestTicket(t *testing.T, pnr string, userID *uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(pnr, 1, userID, 1200, generousPolicy)
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("save assigns ID", func(t *testing.T) {
		tk := newTestTicket(t, "RB201", nil)

		err := repo.Save(ctx, tk)
		require.NoError(t, err)
		assert.NotZero(t, tk.ID())
	})

	t.Run("duplicate pnr fails", func(t *testing.T) {
		first := newTestTicket(t, "RB202", nil)
		require.NoError(t, repo.Save(ctx, first))

		second := newTestTicket(t, "RB202", nil)
		err := repo.Save(ctx, second)
		assert.Error(t, err)
	})
}

func TestTicketRepository_GetByPNR(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, logger.NewLogger())
	ctx := context.Background()

	userID := uint(3)
	tk := newTestTicket(t, "RB203", &userID)
	require.NoError(t, repo.Save(ctx, tk))

	t.Run("policy document round-trips unchanged", func(t *testing.T) {
		found, err := repo.GetByPNR(ctx, "RB203")
		require.NoError(t, err)

		assert.Equal(t, tk.ID(), found.ID())
		assert.Equal(t, "RB203", found.PNR())
		assert.Equal(t, string(generousPolicy), string(found.PolicyRaw()))
		require.NotNil(t, found.UserID())
		assert.Equal(t, userID, *found.UserID())
	})

	t.Run("unknown pnr returns not found", func(t *testing.T) {
		_, err := repo.GetByPNR(ctx, "RB999")
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestTicketRepository_ExistsByPNR(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, logger.NewLogger())
	ctx := context.Background()

	tk := newTestTicket(t, "RB204", nil)
	require.NoError(t, repo.Save(ctx, tk))

	exists, err := repo.ExistsByPNR(ctx, "RB204")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByPNR(ctx, "RB777")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTicketRepository_GetUserTickets(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, logger.NewLogger())
	ctx := context.Background()

	owner := uint(10)
	other := uint(11)

	for _, pnr := range []string{"RB210", "RB211"} {
		require.NoError(t, repo.Save(ctx, newTestTicket(t, pnr, &owner)))
	}
	require.NoError(t, repo.Save(ctx, newTestTicket(t, "RB212", &other)))
	require.NoError(t, repo.Save(ctx, newTestTicket(t, "RB213", nil)))

	tickets, err := repo.GetUserTickets(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, tickets, 2)
	for _, tk := range tickets {
		require.NotNil(t, tk.UserID())
		assert.Equal(t, owner, *tk.UserID())
	}
}

func TestTicketRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, logger.NewLogger())
	ctx := context.Background()

	tk := newTestTicket(t, "RB220", nil)
	require.NoError(t, repo.Save(ctx, tk))

	require.NoError(t, tk.Cancel(900, time.Now().Add(48*time.Hour)))
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByPNR(ctx, "RB220")
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusCancelled, found.Status())
	require.NotNil(t, found.RefundAmount())
	assert.Equal(t, 900.0, *found.RefundAmount())
}
