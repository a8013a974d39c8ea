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

// RequestReadRepository handles join-request read operations
type RequestReadRepository struct {
	db *sqlx.DB
}

func NewRequestReadRepository(db *sqlx.DB) *RequestReadRepository {
	return &RequestReadRepository{db: db}
}

// Get returns the join request for (gameID, userID), or nil when none exists.
func (r *RequestReadRepository) Get(ctx context.Context, gameID, userID uuid.UUID) (*models.PlayerRequestDB, error) {
	const query = `
		SELECT request_id, game_id, user_id, status, created_at, updated_at
		FROM player_requests
		WHERE game_id = $1 AND user_id = $2
	`

	var req models.PlayerRequestDB
	err := r.db.GetContext(ctx, &req, query, gameID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID, userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &req, nil
}

// ListByGame returns all join requests of a game, newest first.
func (r *RequestReadRepository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.PlayerRequestDB, error) {
	const query = `
		SELECT request_id, game_id, user_id, status, created_at, updated_at
		FROM player_requests
		WHERE game_id = $1
		ORDER BY created_at DESC
	`

	var reqs []models.PlayerRequestDB
	err := r.db.SelectContext(ctx, &reqs, query, gameID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID},
		"result", len(reqs),
		"error", err,
	)

	return reqs, err
}

// RequestWriteRepository handles join-request write operations
type RequestWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRequestWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RequestWriteRepository {
	return &RequestWriteRepository{db: db, txGetter: txGetter}
}

func (r *RequestWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// UpsertPending creates a PENDING request, or resets an existing
// non-APPROVED request of the same (game_id, user_id) pair back to PENDING.
// The insert only fires while the game is still WAITING. Returns the row, or
// nil when nothing was written (game not WAITING, or request already APPROVED).
func (r *RequestWriteRepository) UpsertPending(ctx context.Context, requestID, gameID, userID uuid.UUID) (*models.PlayerRequestDB, error) {
	query := `
		INSERT INTO player_requests (request_id, game_id, user_id, status, created_at, updated_at)
		SELECT $1, $2, $3, $4, NOW(), NOW()
		FROM games g
		WHERE g.game_id = $2 AND g.status = $5
		ON CONFLICT (game_id, user_id) DO UPDATE
		SET status = $4, updated_at = NOW()
		WHERE player_requests.status <> $6
		RETURNING request_id, game_id, user_id, status, created_at, updated_at
	`
	args := []any{requestID, gameID, userID, models.RequestStatusPending, models.GameStatusWaiting, models.RequestStatusApproved}

	var req models.PlayerRequestDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &req, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID, userID},
		"result", req.Status,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &req, nil
}

// UpdateStatus transitions a request from one status to another in a single
// compare-and-swap statement. Returns false when the request is not in the
// expected status.
func (r *RequestWriteRepository) UpdateStatus(ctx context.Context, gameID, userID uuid.UUID, from, to models.RequestStatus) (bool, error) {
	query := `
		UPDATE player_requests
		SET status = $4, updated_at = NOW()
		WHERE game_id = $1 AND user_id = $2 AND status = $3
	`
	args := []any{gameID, userID, from, to}

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
