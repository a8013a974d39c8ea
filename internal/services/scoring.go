package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/logger"
	"github.com/mcqbattle/backend/internal/models"
)

// AnswerReader defines answer read operations.
type AnswerReader interface {
	Get(ctx context.Context, userID, questionID uuid.UUID) (*models.UserAnswerDB, error) // Prior answer, nil when absent
	AllAnswered(ctx context.Context, gameID uuid.UUID) (bool, error)                     // Whether the whole roster has answered everything
}

// AnswerWriter defines answer write operations.
type AnswerWriter interface {
	SaveIfAbsent(ctx context.Context, answer models.UserAnswerDB) (bool, error) // Guarded insert, false on duplicate or inactive game
}

// ScoringService validates and records answer submissions against a STARTED
// game and keeps player scores current.
type ScoringService struct {
	gameRead     GameReader
	gameWrite    GameWriter
	playerRead   PlayerReader
	playerWrite  PlayerWriter
	questionRead QuestionReader
	answerRead   AnswerReader
	answerWrite  AnswerWriter
	leaderboard  Leaderboard
	kafkaWriter  KafkaWriter

	pointsPerCorrect int
	autoComplete     bool
}

// NewScoringService creates a new ScoringService. pointsPerCorrect is the
// fixed score awarded per correct answer; autoComplete controls whether a
// game completes itself once every roster member has answered everything.
func NewScoringService(
	gameRead GameReader,
	gameWrite GameWriter,
	playerRead PlayerReader,
	playerWrite PlayerWriter,
	questionRead QuestionReader,
	answerRead AnswerReader,
	answerWrite AnswerWriter,
	leaderboard Leaderboard,
	kafkaWriter KafkaWriter,
	pointsPerCorrect int,
	autoComplete bool,
) *ScoringService {
	if pointsPerCorrect <= 0 {
		pointsPerCorrect = 1
	}
	return &ScoringService{
		gameRead:         gameRead,
		gameWrite:        gameWrite,
		playerRead:       playerRead,
		playerWrite:      playerWrite,
		questionRead:     questionRead,
		answerRead:       answerRead,
		answerWrite:      answerWrite,
		leaderboard:      leaderboard,
		kafkaWriter:      kafkaWriter,
		pointsPerCorrect: pointsPerCorrect,
		autoComplete:     autoComplete,
	}
}

// SubmitAnswer records the caller's answer to a question of a STARTED game
// and returns the correctness and the running score. Each user answers a
// question at most once; the insert is atomic against duplicates and against
// a concurrent completion.
func (s *ScoringService) SubmitAnswer(ctx context.Context, gameID, userID, questionID, optionID uuid.UUID) (correct bool, score int, err error) {
	game, err := s.gameRead.Get(ctx, gameID)
	if err != nil {
		return false, 0, err
	}
	if game == nil {
		return false, 0, ErrGameNotFound
	}
	if game.Status != models.GameStatusStarted {
		return false, 0, ErrGameNotStarted
	}

	player, err := s.playerRead.Get(ctx, userID, gameID)
	if err != nil {
		return false, 0, err
	}
	if player == nil {
		return false, 0, ErrNotPlayer
	}

	question, err := s.questionRead.Get(ctx, questionID)
	if err != nil {
		return false, 0, err
	}
	if question == nil {
		return false, 0, ErrQuestionNotFound
	}
	if question.GameID != gameID {
		return false, 0, ErrAnswerMismatch
	}

	option, err := s.questionRead.GetOption(ctx, optionID)
	if err != nil {
		return false, 0, err
	}
	if option == nil {
		return false, 0, ErrOptionNotFound
	}
	if option.QuestionID != questionID {
		return false, 0, ErrAnswerMismatch
	}

	answer := models.UserAnswerDB{
		AnswerID:   uuid.New(),
		UserID:     userID,
		GameID:     gameID,
		QuestionID: questionID,
		OptionID:   optionID,
		IsCorrect:  option.IsCorrect,
	}

	inserted, err := s.answerWrite.SaveIfAbsent(ctx, answer)
	if err != nil {
		logger.Log.Errorw("failed to save answer", "gameID", gameID, "userID", userID, "questionID", questionID, "error", err)
		return false, 0, err
	}
	if !inserted {
		// Either this user already answered, or the game completed while the
		// submission was in flight. The re-read decides which.
		prior, err := s.answerRead.Get(ctx, userID, questionID)
		if err != nil {
			return false, 0, err
		}
		if prior != nil {
			return false, 0, ErrAlreadyAnswered
		}
		return false, 0, ErrGameNotStarted
	}

	score = player.Score
	if option.IsCorrect {
		score, err = s.playerWrite.IncrementScore(ctx, userID, gameID, s.pointsPerCorrect)
		if err != nil {
			logger.Log.Errorw("failed to increment score", "gameID", gameID, "userID", userID, "error", err)
			return true, 0, err
		}
		if s.leaderboard != nil {
			if _, err := s.leaderboard.IncrementScore(ctx, gameID, userID, s.pointsPerCorrect); err != nil {
				logger.Log.Warnw("failed to update leaderboard cache", "gameID", gameID, "userID", userID, "error", err)
			}
		}
	}

	event := newEvent(models.EventAnswerSubmitted, gameID, userID)
	isCorrect := option.IsCorrect
	event.Correct = &isCorrect
	event.Score = &score
	publishEvent(ctx, s.kafkaWriter, event)

	if s.autoComplete {
		s.maybeComplete(ctx, gameID)
	}

	return option.IsCorrect, score, nil
}

// maybeComplete completes the game once every roster member has answered
// every question. Best effort: a failed check never fails the submission.
func (s *ScoringService) maybeComplete(ctx context.Context, gameID uuid.UUID) {
	done, err := s.answerRead.AllAnswered(ctx, gameID)
	if err != nil {
		logger.Log.Warnw("auto-complete check failed", "gameID", gameID, "error", err)
		return
	}
	if !done {
		return
	}

	swapped, err := s.gameWrite.UpdateStatus(ctx, gameID, models.GameStatusStarted, models.GameStatusCompleted)
	if err != nil {
		logger.Log.Warnw("auto-complete transition failed", "gameID", gameID, "error", err)
		return
	}
	if swapped {
		publishEvent(ctx, s.kafkaWriter, newEvent(models.EventGameCompleted, gameID, uuid.Nil))
	}
}
