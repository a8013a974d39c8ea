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

// AnswerReadRepository handles answer read operations
type AnswerReadRepository struct {
	db *sqlx.DB
}

func NewAnswerReadRepository(db *sqlx.DB) *AnswerReadRepository {
	return &AnswerReadRepository{db: db}
}

// Get returns the answer of a user for a question, or nil when none exists.
func (r *AnswerReadRepository) Get(ctx context.Context, userID, questionID uuid.UUID) (*models.UserAnswerDB, error) {
	const query = `
		SELECT answer_id, user_id, game_id, question_id, option_id, is_correct, created_at
		FROM user_answers
		WHERE user_id = $1 AND question_id = $2
	`

	var answer models.UserAnswerDB
	err := r.db.GetContext(ctx, &answer, query, userID, questionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, questionID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &answer, nil
}

// ListByGame returns all answers recorded in a game.
func (r *AnswerReadRepository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.UserAnswerDB, error) {
	const query = `
		SELECT answer_id, user_id, game_id, question_id, option_id, is_correct, created_at
		FROM user_answers
		WHERE game_id = $1
		ORDER BY created_at ASC
	`

	var answers []models.UserAnswerDB
	err := r.db.SelectContext(ctx, &answers, query, gameID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID},
		"result", len(answers),
		"error", err,
	)

	return answers, err
}

// AllAnswered reports whether every current roster member of the game has
// answered every question. Players who left keep their recorded answers, so
// the check walks the live roster only.
func (r *AnswerReadRepository) AllAnswered(ctx context.Context, gameID uuid.UUID) (bool, error) {
	const query = `
		SELECT NOT EXISTS (
			SELECT 1
			FROM players p
			CROSS JOIN questions q
			WHERE p.game_id = $1 AND q.game_id = $1
			  AND NOT EXISTS (
				SELECT 1 FROM user_answers a
				WHERE a.user_id = p.user_id AND a.question_id = q.question_id
			  )
		)
	`

	var done bool
	err := r.db.GetContext(ctx, &done, query, gameID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID},
		"result", done,
		"error", err,
	)

	return done, err
}

// AnswerWriteRepository handles answer write operations
type AnswerWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAnswerWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AnswerWriteRepository {
	return &AnswerWriteRepository{db: db, txGetter: txGetter}
}

func (r *AnswerWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SaveIfAbsent records an answer in a single guarded statement: the insert
// only fires while the game is still STARTED, and the unique key on
// (user_id, question_id) swallows duplicates. Returns true when this call
// recorded the answer; false means either a duplicate or a game that is no
// longer active, which the caller disambiguates by reading back.
func (r *AnswerWriteRepository) SaveIfAbsent(ctx context.Context, answer models.UserAnswerDB) (bool, error) {
	query := `
		INSERT INTO user_answers (answer_id, user_id, game_id, question_id, option_id, is_correct, created_at)
		SELECT $1, $2, $3, $4, $5, $6, NOW()
		FROM games g
		WHERE g.game_id = $3 AND g.status = $7
		ON CONFLICT (user_id, question_id) DO NOTHING
	`
	args := []any{answer.AnswerID, answer.UserID, answer.GameID, answer.QuestionID, answer.OptionID, answer.IsCorrect, models.GameStatusStarted}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{answer.UserID, answer.GameID, answer.QuestionID, answer.OptionID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
