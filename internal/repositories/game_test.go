package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGameRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewGameWriteRepository(db, nil)
	readRepo := NewGameReadRepository(db)
	ctx := context.Background()

	gameID := uuid.New()
	hostID := uuid.New()

	err := writeRepo.Save(ctx, gameID, hostID, "friday quiz")
	assert.NoError(t, err)

	game, err := readRepo.Get(ctx, gameID)
	assert.NoError(t, err)
	assert.NotNil(t, game)
	assert.Equal(t, gameID, game.GameID)
	assert.Equal(t, hostID, game.HostUserID)
	assert.Equal(t, "friday quiz", game.Title)
	assert.Equal(t, models.GameStatusWaiting, game.Status)

	t.Run("NotFound", func(t *testing.T) {
		game, err := readRepo.Get(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, game)
	})
}

func TestGameWriteRepository_UpdateStatus(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewGameWriteRepository(db, nil)
	readRepo := NewGameReadRepository(db)
	ctx := context.Background()

	gameID := uuid.New()
	assert.NoError(t, writeRepo.Save(ctx, gameID, uuid.New(), "quiz"))

	swapped, err := writeRepo.UpdateStatus(ctx, gameID, models.GameStatusWaiting, models.GameStatusStarted)
	assert.NoError(t, err)
	assert.True(t, swapped)

	game, err := readRepo.Get(ctx, gameID)
	assert.NoError(t, err)
	assert.Equal(t, models.GameStatusStarted, game.Status)

	t.Run("LosesWhenStatusMoved", func(t *testing.T) {
		swapped, err := writeRepo.UpdateStatus(ctx, gameID, models.GameStatusWaiting, models.GameStatusStarted)
		assert.NoError(t, err)
		assert.False(t, swapped)
	})

	t.Run("OnlyOneConcurrentStartWins", func(t *testing.T) {
		raceID := uuid.New()
		assert.NoError(t, writeRepo.Save(ctx, raceID, uuid.New(), "race"))

		const workers = 8
		results := make(chan bool, workers)
		for i := 0; i < workers; i++ {
			go func() {
				swapped, err := writeRepo.UpdateStatus(ctx, raceID, models.GameStatusWaiting, models.GameStatusStarted)
				assert.NoError(t, err)
				results <- swapped
			}()
		}

		wins := 0
		for i := 0; i < workers; i++ {
			if <-results {
				wins++
			}
		}
		assert.Equal(t, 1, wins)
	})
}

func TestGameWriteRepository_UpdateTitle(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewGameWriteRepository(db, nil)
	readRepo := NewGameReadRepository(db)
	ctx := context.Background()

	gameID := uuid.New()
	assert.NoError(t, writeRepo.Save(ctx, gameID, uuid.New(), "old"))

	updated, err := writeRepo.UpdateTitle(ctx, gameID, "new")
	assert.NoError(t, err)
	assert.True(t, updated)

	game, _ := readRepo.Get(ctx, gameID)
	assert.Equal(t, "new", game.Title)

	updated, err = writeRepo.UpdateTitle(ctx, uuid.New(), "whatever")
	assert.NoError(t, err)
	assert.False(t, updated)
}

func TestGameReadRepository_ListByUser(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	gameWrite := NewGameWriteRepository(db, nil)
	playerWrite := NewPlayerWriteRepository(db, nil)
	requestWrite := NewRequestWriteRepository(db, nil)
	readRepo := NewGameReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	hostedID := uuid.New()
	assert.NoError(t, gameWrite.Save(ctx, hostedID, userID, "hosted"))

	playingID := uuid.New()
	assert.NoError(t, gameWrite.Save(ctx, playingID, uuid.New(), "playing"))
	_, err := playerWrite.SaveIfAbsent(ctx, uuid.New(), userID, playingID)
	assert.NoError(t, err)

	requestedID := uuid.New()
	assert.NoError(t, gameWrite.Save(ctx, requestedID, uuid.New(), "requested"))
	_, err = requestWrite.UpsertPending(ctx, uuid.New(), requestedID, userID)
	assert.NoError(t, err)

	// A game the user has nothing to do with.
	assert.NoError(t, gameWrite.Save(ctx, uuid.New(), uuid.New(), "unrelated"))

	games, err := readRepo.ListByUser(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, games, 3)

	ids := make(map[uuid.UUID]bool, len(games))
	for _, g := range games {
		ids[g.GameID] = true
	}
	assert.True(t, ids[hostedID])
	assert.True(t, ids[playingID])
	assert.True(t, ids[requestedID])
}
