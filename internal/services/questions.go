package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/logger"
	"github.com/mcqbattle/backend/internal/models"
)

// QuestionReader defines question and option read operations.
type QuestionReader interface {
	Get(ctx context.Context, questionID uuid.UUID) (*models.QuestionDB, error)
	ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.QuestionDB, error)
	CountByGame(ctx context.Context, gameID uuid.UUID) (int, error)
	GetOption(ctx context.Context, optionID uuid.UUID) (*models.OptionDB, error)
	ListOptionsByQuestion(ctx context.Context, questionID uuid.UUID) ([]models.OptionDB, error)
	ListOptionsByGame(ctx context.Context, gameID uuid.UUID) ([]models.OptionDB, error)
}

// QuestionWriter defines question and option write operations.
type QuestionWriter interface {
	SaveQuestion(ctx context.Context, questionID, gameID uuid.UUID, text, explanation string) error
	UpdateQuestion(ctx context.Context, questionID uuid.UUID, text, explanation string) (bool, error)
	DeleteQuestion(ctx context.Context, questionID uuid.UUID) (bool, error)
	SaveOption(ctx context.Context, optionID, questionID uuid.UUID, text string, isCorrect bool) error
	UpdateOption(ctx context.Context, optionID uuid.UUID, text string, isCorrect bool) (bool, error)
	DeleteOption(ctx context.Context, optionID uuid.UUID) (bool, error)
}

// QuestionService is the host-only CRUD over quiz content. All mutations are
// blocked once the game leaves WAITING, and every mutation must leave each
// question with at least two options and exactly one correct one.
type QuestionService struct {
	gameRead      GameReader
	questionRead  QuestionReader
	questionWrite QuestionWriter
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(gameRead GameReader, questionRead QuestionReader, questionWrite QuestionWriter) *QuestionService {
	return &QuestionService{
		gameRead:      gameRead,
		questionRead:  questionRead,
		questionWrite: questionWrite,
	}
}

// guardGame loads the game and checks the host-only, WAITING-only rules that
// protect answer integrity.
func (s *QuestionService) guardGame(ctx context.Context, gameID, requesterUserID uuid.UUID) (*models.GameDB, error) {
	game, err := s.gameRead.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	if game.HostUserID != requesterUserID {
		return nil, ErrNotHost
	}
	if game.Status != models.GameStatusWaiting {
		return nil, ErrGameNotWaiting
	}
	return game, nil
}

// guardQuestion resolves a question to its game and applies guardGame.
func (s *QuestionService) guardQuestion(ctx context.Context, questionID, requesterUserID uuid.UUID) (*models.QuestionDB, error) {
	question, err := s.questionRead.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	if _, err := s.guardGame(ctx, question.GameID, requesterUserID); err != nil {
		return nil, err
	}
	return question, nil
}

// CreateQuestion adds a question with its options to a WAITING game.
func (s *QuestionService) CreateQuestion(ctx context.Context, gameID, requesterUserID uuid.UUID, text, explanation string, options []OptionInput) (*QuestionWithOptions, error) {
	if _, err := s.guardGame(ctx, gameID, requesterUserID); err != nil {
		return nil, err
	}
	if err := validateOptions(options); err != nil {
		return nil, err
	}

	questionID := uuid.New()
	if err := s.questionWrite.SaveQuestion(ctx, questionID, gameID, text, explanation); err != nil {
		logger.Log.Errorw("failed to save question", "gameID", gameID, "error", err)
		return nil, err
	}
	for _, o := range options {
		if err := s.questionWrite.SaveOption(ctx, uuid.New(), questionID, o.Text, o.IsCorrect); err != nil {
			logger.Log.Errorw("failed to save option", "questionID", questionID, "error", err)
			return nil, err
		}
	}

	question, err := s.questionRead.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}
	saved, err := s.questionRead.ListOptionsByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		question = &models.QuestionDB{QuestionID: questionID, GameID: gameID, Text: text, Explanation: explanation}
	}

	return &QuestionWithOptions{Question: *question, Options: saved}, nil
}

// UpdateQuestion edits a question's text and explanation.
func (s *QuestionService) UpdateQuestion(ctx context.Context, questionID, requesterUserID uuid.UUID, text, explanation string) (*models.QuestionDB, error) {
	question, err := s.guardQuestion(ctx, questionID, requesterUserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.questionWrite.UpdateQuestion(ctx, questionID, text, explanation); err != nil {
		return nil, err
	}

	question.Text = text
	question.Explanation = explanation
	return question, nil
}

// DeleteQuestion removes a question and its options from a WAITING game.
func (s *QuestionService) DeleteQuestion(ctx context.Context, questionID, requesterUserID uuid.UUID) error {
	if _, err := s.guardQuestion(ctx, questionID, requesterUserID); err != nil {
		return err
	}

	deleted, err := s.questionWrite.DeleteQuestion(ctx, questionID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrQuestionNotFound
	}
	return nil
}

// CreateOption adds an option to a question. Adding a second correct option
// is rejected; adding incorrect options is always allowed.
func (s *QuestionService) CreateOption(ctx context.Context, questionID, requesterUserID uuid.UUID, text string, isCorrect bool) (*models.OptionDB, error) {
	if _, err := s.guardQuestion(ctx, questionID, requesterUserID); err != nil {
		return nil, err
	}

	if isCorrect {
		existing, err := s.questionRead.ListOptionsByQuestion(ctx, questionID)
		if err != nil {
			return nil, err
		}
		for _, o := range existing {
			if o.IsCorrect {
				return nil, ErrCorrectCount
			}
		}
	}

	optionID := uuid.New()
	if err := s.questionWrite.SaveOption(ctx, optionID, questionID, text, isCorrect); err != nil {
		logger.Log.Errorw("failed to save option", "questionID", questionID, "error", err)
		return nil, err
	}

	option, err := s.questionRead.GetOption(ctx, optionID)
	if err != nil {
		return nil, err
	}
	if option == nil {
		option = &models.OptionDB{OptionID: optionID, QuestionID: questionID, Text: text, IsCorrect: isCorrect}
	}
	return option, nil
}

// UpdateOption edits an option. The question must still have exactly one
// correct option afterwards.
func (s *QuestionService) UpdateOption(ctx context.Context, optionID, requesterUserID uuid.UUID, text string, isCorrect bool) (*models.OptionDB, error) {
	option, err := s.questionRead.GetOption(ctx, optionID)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, ErrOptionNotFound
	}
	if _, err := s.guardQuestion(ctx, option.QuestionID, requesterUserID); err != nil {
		return nil, err
	}

	siblings, err := s.questionRead.ListOptionsByQuestion(ctx, option.QuestionID)
	if err != nil {
		return nil, err
	}
	correct := 0
	for _, o := range siblings {
		if o.OptionID == optionID {
			continue
		}
		if o.IsCorrect {
			correct++
		}
	}
	if isCorrect {
		correct++
	}
	if correct != 1 {
		return nil, ErrCorrectCount
	}

	if _, err := s.questionWrite.UpdateOption(ctx, optionID, text, isCorrect); err != nil {
		return nil, err
	}

	option.Text = text
	option.IsCorrect = isCorrect
	return option, nil
}

// DeleteOption removes an option. The question must keep at least two
// options and its single correct one.
func (s *QuestionService) DeleteOption(ctx context.Context, optionID, requesterUserID uuid.UUID) error {
	option, err := s.questionRead.GetOption(ctx, optionID)
	if err != nil {
		return err
	}
	if option == nil {
		return ErrOptionNotFound
	}
	if _, err := s.guardQuestion(ctx, option.QuestionID, requesterUserID); err != nil {
		return err
	}

	siblings, err := s.questionRead.ListOptionsByQuestion(ctx, option.QuestionID)
	if err != nil {
		return err
	}
	if len(siblings)-1 < 2 {
		return ErrTooFewOptions
	}
	if option.IsCorrect {
		return ErrCorrectCount
	}

	deleted, err := s.questionWrite.DeleteOption(ctx, optionID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOptionNotFound
	}
	return nil
}
