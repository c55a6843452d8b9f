package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openfare/internal/domain/user"
	vo "openfare/internal/domain/user/valueobjects"
	"openfare/internal/shared/errors"
	"openfare/internal/shared/logger"
)

func newTestUser(t *testing.T, email string) *user.User {
	t.Helper()
	emailVO, err := vo.NewEmail(email)
	require.NoError(t, err)
	nameVO, err := vo.NewName("Rajesh Kumar")
	require.NoError(t, err)
	u, err := user.NewUser(emailVO, nameVO, "$2a$12$fakehash")
	require.NoError(t, err)
	return u
}

func TestUserRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	t.Run("save assigns ID", func(t *testing.T) {
		u := newTestUser(t, "rajesh@example.com")
		require.NoError(t, repo.Save(ctx, u))
		assert.NotZero(t, u.ID())
	})

	t.Run("duplicate email fails", func(t *testing.T) {
		first := newTestUser(t, "priya@example.com")
		require.NoError(t, repo.Save(ctx, first))

		second := newTestUser(t, "priya@example.com")
		err := repo.Save(ctx, second)
		assert.Error(t, err)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	u := newTestUser(t, "amit@example.com")
	require.NoError(t, repo.Save(ctx, u))

	t.Run("existing user", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "amit@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("unknown email returns nil without error", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db, logger.NewLogger())
	ctx := context.Background()

	u := newTestUser(t, "sneha@example.com")
	require.NoError(t, repo.Save(ctx, u))

	found, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "sneha@example.com", found.Email().String())

	_, err = repo.GetByID(ctx, 9999)
	assert.True(t, errors.IsNotFoundError(err))
}
