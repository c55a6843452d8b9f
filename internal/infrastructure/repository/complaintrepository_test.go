package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openfare/internal/domain/complaint"
	"openfare/internal/infrastructure/persistence/models"
	"openfare/internal/shared/logger"
)

func newTestComplaint(t *testing.T, pnr string, operatorID uint, userID *uint) *complaint.Complaint {
	t.Helper()
	c, err := complaint.NewComplaint(pnr, operatorID, userID, "Refund not received")
	require.NoError(t, err)
	return c
}

func TestComplaintRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewComplaintRepository(db, logger.NewLogger())
	ctx := context.Background()

	userID := uint(4)
	c := newTestComplaint(t, "RB105", 2, &userID)

	require.NoError(t, repo.Save(ctx, c))
	assert.NotZero(t, c.ID())

	found, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, "RB105", found.PNR())
	assert.Equal(t, complaint.StatusPending, found.Status())
}

func TestComplaintRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewComplaintRepository(db, logger.NewLogger())
	ctx := context.Background()

	for i, pnr := range []string{"RB101", "RB102", "RB103"} {
		c := newTestComplaint(t, pnr, uint(i+1), nil)
		require.NoError(t, repo.Save(ctx, c))
	}

	resolved := newTestComplaint(t, "RB104", 4, nil)
	require.NoError(t, repo.Save(ctx, resolved))
	require.NoError(t, resolved.ChangeStatus(complaint.StatusResolved))
	require.NoError(t, repo.Update(ctx, resolved))

	t.Run("unfiltered returns everything", func(t *testing.T) {
		items, total, err := repo.List(ctx, complaint.ComplaintFilter{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
		assert.Len(t, items, 4)
	})

	t.Run("status filter narrows", func(t *testing.T) {
		status := complaint.StatusResolved
		items, total, err := repo.List(ctx, complaint.ComplaintFilter{Status: &status, Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "RB104", items[0].PNR())
	})

	t.Run("pagination bounds the page", func(t *testing.T) {
		items, total, err := repo.List(ctx, complaint.ComplaintFilter{Page: 2, PageSize: 3})
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
		assert.Len(t, items, 1)
	})
}

func TestComplaintRepository_ListOlderThan(t *testing.T) {
	db := setupTestDB(t)
	repo := NewComplaintRepository(db, logger.NewLogger())
	ctx := context.Background()

	now := time.Now()

	old := models.ComplaintModel{PNR: "RB110", OperatorID: 1, Reason: "Stale", Status: "PENDING", CreatedAt: now.Add(-30 * time.Hour), UpdatedAt: now.Add(-30 * time.Hour)}
	require.NoError(t, db.Create(&old).Error)

	fresh := models.ComplaintModel{PNR: "RB111", OperatorID: 1, Reason: "Fresh", Status: "PENDING", CreatedAt: now.Add(-2 * time.Hour), UpdatedAt: now.Add(-2 * time.Hour)}
	require.NoError(t, db.Create(&fresh).Error)

	complaints, err := repo.ListOlderThan(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, complaints, 1)
	assert.Equal(t, "RB110", complaints[0].PNR())
}

func TestComplaintRepository_ExistsByPNR(t *testing.T) {
	db := setupTestDB(t)
	repo := NewComplaintRepository(db, logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestComplaint(t, "RB120", 1, nil)))

	exists, err := repo.ExistsByPNR(ctx, "RB120")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByPNR(ctx, "RB121")
	require.NoError(t, err)
	assert.False(t, exists)
}
