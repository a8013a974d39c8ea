package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mcqbattle/backend/internal/logger"
	"github.com/mcqbattle/backend/internal/models"
)

// GameReadRepository handles game read operations
type GameReadRepository struct {
	db *sqlx.DB
}

func NewGameReadRepository(db *sqlx.DB) *GameReadRepository {
	return &GameReadRepository{db: db}
}

// Get returns the game with the given id, or nil when it does not exist.
func (r *GameReadRepository) Get(ctx context.Context, gameID uuid.UUID) (*models.GameDB, error) {
	const query = `
		SELECT game_id, title, host_user_id, status, created_at, updated_at
		FROM games
		WHERE game_id = $1
	`

	var game models.GameDB
	err := r.db.GetContext(ctx, &game, query, gameID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &game, nil
}

// ListByUser returns every game the user hosts, plays in, or has a join
// request for, regardless of the request's status.
func (r *GameReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.GameDB, error) {
	const query = `
		SELECT g.game_id, g.title, g.host_user_id, g.status, g.created_at, g.updated_at
		FROM games g
		WHERE g.host_user_id = $1
		   OR EXISTS (SELECT 1 FROM players p WHERE p.game_id = g.game_id AND p.user_id = $1)
		   OR EXISTS (SELECT 1 FROM player_requests pr WHERE pr.game_id = g.game_id AND pr.user_id = $1)
		ORDER BY g.created_at DESC
	`

	var games []models.GameDB
	err := r.db.SelectContext(ctx, &games, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(games),
		"error", err,
	)

	return games, err
}

// GameWriteRepository handles game write operations
type GameWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewGameWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *GameWriteRepository {
	return &GameWriteRepository{db: db, txGetter: txGetter}
}

func (r *GameWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new game in WAITING status.
func (r *GameWriteRepository) Save(ctx context.Context, gameID, hostUserID uuid.UUID, title string) error {
	query := `
		INSERT INTO games (game_id, title, host_user_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	args := []any{gameID, title, hostUserID, models.GameStatusWaiting}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// UpdateStatus transitions the game from one status to another in a single
// compare-and-swap statement. It returns false when the game is not in the
// expected status, which is how racing transitions lose cleanly.
func (r *GameWriteRepository) UpdateStatus(ctx context.Context, gameID uuid.UUID, from, to models.GameStatus) (bool, error) {
	query := `
		UPDATE games
		SET status = $3, updated_at = NOW()
		WHERE game_id = $1 AND status = $2
	`
	args := []any{gameID, from, to}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// UpdateTitle changes the game title. Returns false when the game does not exist.
func (r *GameWriteRepository) UpdateTitle(ctx context.Context, gameID uuid.UUID, title string) (bool, error) {
	query := `
		UPDATE games
		SET title = $2, updated_at = NOW()
		WHERE game_id = $1
	`
	args := []any{gameID, title}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
