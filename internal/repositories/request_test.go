package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRequestWriteRepository_UpsertPending(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	gameWrite := NewGameWriteRepository(db, nil)
	writeRepo := NewRequestWriteRepository(db, nil)
	readRepo := NewRequestReadRepository(db)
	ctx := context.Background()

	gameID := uuid.New()
	userID := uuid.New()
	assert.NoError(t, gameWrite.Save(ctx, gameID, uuid.New(), "quiz"))

	t.Run("CreatesPending", func(t *testing.T) {
		req, err := writeRepo.UpsertPending(ctx, uuid.New(), gameID, userID)
		assert.NoError(t, err)
		assert.NotNil(t, req)
		assert.Equal(t, models.RequestStatusPending, req.Status)
	})

	t.Run("PendingStaysPending", func(t *testing.T) {
		req, err := writeRepo.UpsertPending(ctx, uuid.New(), gameID, userID)
		assert.NoError(t, err)
		assert.NotNil(t, req)
		assert.Equal(t, models.RequestStatusPending, req.Status)

		reqs, err := readRepo.ListByGame(ctx, gameID)
		assert.NoError(t, err)
		assert.Len(t, reqs, 1)
	})

	t.Run("RejectedResetsToPending", func(t *testing.T) {
		swapped, err := writeRepo.UpdateStatus(ctx, gameID, userID, models.RequestStatusPending, models.RequestStatusRejected)
		assert.NoError(t, err)
		assert.True(t, swapped)

		req, err := writeRepo.UpsertPending(ctx, uuid.New(), gameID, userID)
		assert.NoError(t, err)
		assert.NotNil(t, req)
		assert.Equal(t, models.RequestStatusPending, req.Status)
	})

	t.Run("ApprovedIsNotTouched", func(t *testing.T) {
		swapped, err := writeRepo.UpdateStatus(ctx, gameID, userID, models.RequestStatusPending, models.RequestStatusApproved)
		assert.NoError(t, err)
		assert.True(t, swapped)

		req, err := writeRepo.UpsertPending(ctx, uuid.New(), gameID, userID)
		assert.NoError(t, err)
		assert.Nil(t, req)

		existing, err := readRepo.Get(ctx, gameID, userID)
		assert.NoError(t, err)
		assert.Equal(t, models.RequestStatusApproved, existing.Status)
	})

	t.Run("NoInsertOnceGameStarted", func(t *testing.T) {
		startedID := uuid.New()
		assert.NoError(t, gameWrite.Save(ctx, startedID, uuid.New(), "started"))
		swapped, err := gameWrite.UpdateStatus(ctx, startedID, models.GameStatusWaiting, models.GameStatusStarted)
		assert.NoError(t, err)
		assert.True(t, swapped)

		req, err := writeRepo.UpsertPending(ctx, uuid.New(), startedID, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, req)
	})
}

func TestRequestWriteRepository_UpdateStatus(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	gameWrite := NewGameWriteRepository(db, nil)
	writeRepo := NewRequestWriteRepository(db, nil)
	readRepo := NewRequestReadRepository(db)
	ctx := context.Background()

	gameID := uuid.New()
	userID := uuid.New()
	assert.NoError(t, gameWrite.Save(ctx, gameID, uuid.New(), "quiz"))

	req, err := writeRepo.UpsertPending(ctx, uuid.New(), gameID, userID)
	assert.NoError(t, err)
	assert.NotNil(t, req)

	swapped, err := writeRepo.UpdateStatus(ctx, gameID, userID, models.RequestStatusPending, models.RequestStatusApproved)
	assert.NoError(t, err)
	assert.True(t, swapped)

	t.Run("CASLosesOnWrongStatus", func(t *testing.T) {
		swapped, err := writeRepo.UpdateStatus(ctx, gameID, userID, models.RequestStatusPending, models.RequestStatusRejected)
		assert.NoError(t, err)
		assert.False(t, swapped)

		existing, err := readRepo.Get(ctx, gameID, userID)
		assert.NoError(t, err)
		assert.Equal(t, models.RequestStatusApproved, existing.Status)
	})

	t.Run("NoRowForUnknownPair", func(t *testing.T) {
		swapped, err := writeRepo.UpdateStatus(ctx, gameID, uuid.New(), models.RequestStatusPending, models.RequestStatusApproved)
		assert.NoError(t, err)
		assert.False(t, swapped)
	})
}
