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

// PlayerReadRepository handles roster read operations
type PlayerReadRepository struct {
	db *sqlx.DB
}

func NewPlayerReadRepository(db *sqlx.DB) *PlayerReadRepository {
	return &PlayerReadRepository{db: db}
}

// Get returns the roster entry for (userID, gameID), or nil when the user is
// not on the roster.
func (r *PlayerReadRepository) Get(ctx context.Context, userID, gameID uuid.UUID) (*models.PlayerDB, error) {
	const query = `
		SELECT player_id, user_id, game_id, score, joined_at
		FROM players
		WHERE user_id = $1 AND game_id = $2
	`

	var player models.PlayerDB
	err := r.db.GetContext(ctx, &player, query, userID, gameID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, gameID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &player, nil
}

// ListByGame returns the full roster of a game ordered by score.
func (r *PlayerReadRepository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.PlayerDB, error) {
	const query = `
		SELECT player_id, user_id, game_id, score, joined_at
		FROM players
		WHERE game_id = $1
		ORDER BY score DESC, joined_at ASC
	`

	var players []models.PlayerDB
	err := r.db.SelectContext(ctx, &players, query, gameID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID},
		"result", len(players),
		"error", err,
	)

	return players, err
}

// CountByGame returns the roster size of a game.
func (r *PlayerReadRepository) CountByGame(ctx context.Context, gameID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM players WHERE game_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, gameID)

	logger.Log.Infow(
		"query", query,
		"args", []any{gameID},
		"result", count,
		"error", err,
	)

	return count, err
}

// PlayerWriteRepository handles roster write operations
type PlayerWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPlayerWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PlayerWriteRepository {
	return &PlayerWriteRepository{db: db, txGetter: txGetter}
}

func (r *PlayerWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SaveIfAbsent inserts a roster entry with score 0 in a single guarded
// statement: the insert only fires while the game is still WAITING, and the
// compound unique key on (user_id, game_id) makes the loser of a double
// accept a no-op. Returns true when this call created the row; false means
// either a duplicate or a game past WAITING, which the caller disambiguates
// by reading back.
func (r *PlayerWriteRepository) SaveIfAbsent(ctx context.Context, playerID, userID, gameID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO players (player_id, user_id, game_id, score, joined_at)
		SELECT $1, $2, $3, 0, NOW()
		FROM games g
		WHERE g.game_id = $3 AND g.status = $4
		ON CONFLICT (user_id, game_id) DO NOTHING
	`
	args := []any{playerID, userID, gameID, models.GameStatusWaiting}

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

// IncrementScore adds points to a player's score and returns the new value.
func (r *PlayerWriteRepository) IncrementScore(ctx context.Context, userID, gameID uuid.UUID, points int) (int, error) {
	query := `
		UPDATE players
		SET score = score + $3
		WHERE user_id = $1 AND game_id = $2
		RETURNING score
	`
	args := []any{userID, gameID, points}

	var score int
	err := sqlx.GetContext(ctx, r.executor(ctx), &score, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", score,
		"error", err,
	)

	return score, err
}

// Delete removes a roster entry. Returns false when no entry existed.
func (r *PlayerWriteRepository) Delete(ctx context.Context, userID, gameID uuid.UUID) (bool, error) {
	query := `DELETE FROM players WHERE user_id = $1 AND game_id = $2`
	args := []any{userID, gameID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
