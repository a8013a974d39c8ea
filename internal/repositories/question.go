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

// QuestionReadRepository handles question and option read operations
type QuestionReadRepository struct {
	db *sqlx.DB
}

func NewQuestionReadRepository(db *sqlx.DB) *QuestionReadRepository {
	return &QuestionReadRepository{db: db}
}

// Get returns the question with the given id, or nil when it does not exist.
func (r *QuestionReadRepository) Get(ctx context.Context, questionID uuid.UUID) (*models.QuestionDB, error) {
	const query = `
		SELECT question_id, game_id, text, explanation, created_at
		FROM questions
		WHERE question_id = $1
	`

	var question models.QuestionDB
	err := r.db.GetContext(ctx, &question, query, questionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{questionID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &question, nil
}

// ListByGame returns all questions of a game in creation order.
func (r *QuestionReadRepository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.QuestionDB, error) {
	const query = `
		SELECT question_id, game_id, text, explanation, created_at
		FROM questions
		WHERE game_id = $1
		ORDER BY created_at ASC
	`

	var questions []models.QuestionDB
	err := r.db.SelectContext(ctx, &questions, query, gameID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID},
		"result", len(questions),
		"error", err,
	)

	return questions, err
}

// CountByGame returns the number of questions in a game.
func (r *QuestionReadRepository) CountByGame(ctx context.Context, gameID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM questions WHERE game_id = $1`

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

// GetOption returns the option with the given id, or nil when it does not exist.
func (r *QuestionReadRepository) GetOption(ctx context.Context, optionID uuid.UUID) (*models.OptionDB, error) {
	const query = `
		SELECT option_id, question_id, text, is_correct, created_at
		FROM options
		WHERE option_id = $1
	`

	var option models.OptionDB
	err := r.db.GetContext(ctx, &option, query, optionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{optionID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &option, nil
}

// ListOptionsByQuestion returns all options of a question in creation order.
func (r *QuestionReadRepository) ListOptionsByQuestion(ctx context.Context, questionID uuid.UUID) ([]models.OptionDB, error) {
	const query = `
		SELECT option_id, question_id, text, is_correct, created_at
		FROM options
		WHERE question_id = $1
		ORDER BY created_at ASC
	`

	var options []models.OptionDB
	err := r.db.SelectContext(ctx, &options, query, questionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{questionID},
		"result", len(options),
		"error", err,
	)

	return options, err
}

// ListOptionsByGame returns all options of all questions of a game.
func (r *QuestionReadRepository) ListOptionsByGame(ctx context.Context, gameID uuid.UUID) ([]models.OptionDB, error) {
	const query = `
		SELECT o.option_id, o.question_id, o.text, o.is_correct, o.created_at
		FROM options o
		JOIN questions q ON q.question_id = o.question_id
		WHERE q.game_id = $1
		ORDER BY o.created_at ASC
	`

	var options []models.OptionDB
	err := r.db.SelectContext(ctx, &options, query, gameID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{gameID},
		"result", len(options),
		"error", err,
	)

	return options, err
}

// QuestionWriteRepository handles question and option write operations
type QuestionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewQuestionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *QuestionWriteRepository {
	return &QuestionWriteRepository{db: db, txGetter: txGetter}
}

func (r *QuestionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SaveQuestion inserts a new question.
func (r *QuestionWriteRepository) SaveQuestion(ctx context.Context, questionID, gameID uuid.UUID, text, explanation string) error {
	query := `
		INSERT INTO questions (question_id, game_id, text, explanation, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{questionID, gameID, text, explanation}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// UpdateQuestion changes a question's text and explanation. Returns false
// when the question does not exist.
func (r *QuestionWriteRepository) UpdateQuestion(ctx context.Context, questionID uuid.UUID, text, explanation string) (bool, error) {
	query := `
		UPDATE questions
		SET text = $2, explanation = $3
		WHERE question_id = $1
	`
	args := []any{questionID, text, explanation}

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

// DeleteQuestion removes a question and its options.
func (r *QuestionWriteRepository) DeleteQuestion(ctx context.Context, questionID uuid.UUID) (bool, error) {
	ex := r.executor(ctx)

	if _, err := ex.ExecContext(ctx, `DELETE FROM options WHERE question_id = $1`, questionID); err != nil {
		logger.Log.Infow("query", "DELETE FROM options WHERE question_id = $1", "args", []any{questionID}, "error", err)
		return false, err
	}

	query := `DELETE FROM questions WHERE question_id = $1`
	res, err := ex.ExecContext(ctx, query, questionID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{questionID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}

// SaveOption inserts a new option.
func (r *QuestionWriteRepository) SaveOption(ctx context.Context, optionID, questionID uuid.UUID, text string, isCorrect bool) error {
	query := `
		INSERT INTO options (option_id, question_id, text, is_correct, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{optionID, questionID, text, isCorrect}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// UpdateOption changes an option's text and correctness. Returns false when
// the option does not exist.
func (r *QuestionWriteRepository) UpdateOption(ctx context.Context, optionID uuid.UUID, text string, isCorrect bool) (bool, error) {
	query := `
		UPDATE options
		SET text = $2, is_correct = $3
		WHERE option_id = $1
	`
	args := []any{optionID, text, isCorrect}

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

// DeleteOption removes an option. Returns false when it did not exist.
func (r *QuestionWriteRepository) DeleteOption(ctx context.Context, optionID uuid.UUID) (bool, error) {
	query := `DELETE FROM options WHERE option_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, optionID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{optionID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
