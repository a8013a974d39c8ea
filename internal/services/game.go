package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/logger"
	"github.com/mcqbattle/backend/internal/models"
	"github.com/segmentio/kafka-go"
)

// GameReader defines game read operations.
type GameReader interface {
	Get(ctx context.Context, gameID uuid.UUID) (*models.GameDB, error)                // Returns a game by id, nil when absent
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.GameDB, error)        // Games the user hosts, plays in, or requested to join
}

// GameWriter defines game write operations.
type GameWriter interface {
	Save(ctx context.Context, gameID, hostUserID uuid.UUID, title string) error                              // Inserts a WAITING game
	UpdateStatus(ctx context.Context, gameID uuid.UUID, from, to models.GameStatus) (bool, error)            // Compare-and-swap status transition
	UpdateTitle(ctx context.Context, gameID uuid.UUID, title string) (bool, error)                           // Host title edit
}

// Leaderboard defines the cached score projection.
type Leaderboard interface {
	IncrementScore(ctx context.Context, gameID, userID uuid.UUID, points int) (int, error)
	Top(ctx context.Context, gameID uuid.UUID, n int) ([]models.LeaderboardEntry, error)
	RemovePlayer(ctx context.Context, gameID, userID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// OptionInput is one answer option supplied when creating quiz content.
type OptionInput struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// QuestionInput is one question supplied when creating a game.
type QuestionInput struct {
	Text        string        `json:"text"`
	Explanation string        `json:"explanation"`
	Options     []OptionInput `json:"options"`
}

// QuestionWithOptions is a question together with its options.
type QuestionWithOptions struct {
	Question models.QuestionDB `json:"question"`
	Options  []models.OptionDB `json:"options"`
}

// GameDetail is the full projection of a single game.
type GameDetail struct {
	Game        models.GameDB             `json:"game"`
	Players     []models.PlayerDB         `json:"players"`
	Questions   []QuestionWithOptions     `json:"questions"`
	Requests    []models.PlayerRequestDB  `json:"requests,omitempty"`
	Leaderboard []models.LeaderboardEntry `json:"leaderboard,omitempty"`
}

// validateOptions enforces the content invariant: at least two options with
// exactly one marked correct.
func validateOptions(options []OptionInput) error {
	if len(options) < 2 {
		return ErrTooFewOptions
	}
	correct := 0
	for _, o := range options {
		if o.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return ErrCorrectCount
	}
	return nil
}

// publishEvent publishes a game event to Kafka. A nil writer or a publish
// failure is logged and otherwise ignored; events are best-effort.
func publishEvent(ctx context.Context, w KafkaWriter, event models.GameEvent) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", event.Type)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal game event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.GameID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish game event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Game event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}

// newEvent builds a game event with a fresh id and current timestamp.
func newEvent(eventType string, gameID, userID uuid.UUID) models.GameEvent {
	e := models.GameEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		GameID:    gameID.String(),
	}
	if userID != uuid.Nil {
		e.UserID = userID.String()
	}
	return e
}

// GameService owns the WAITING -> STARTED -> COMPLETED lifecycle.
type GameService struct {
	gameRead      GameReader
	gameWrite     GameWriter
	playerRead    PlayerReader
	playerWrite   PlayerWriter
	questionRead  QuestionReader
	questionWrite QuestionWriter
	requestRead   RequestReader
	leaderboard   Leaderboard
	kafkaWriter   KafkaWriter
}

// NewGameService creates a new GameService.
func NewGameService(
	gameRead GameReader,
	gameWrite GameWriter,
	playerRead PlayerReader,
	playerWrite PlayerWriter,
	questionRead QuestionReader,
	questionWrite QuestionWriter,
	requestRead RequestReader,
	leaderboard Leaderboard,
	kafkaWriter KafkaWriter,
) *GameService {
	return &GameService{
		gameRead:      gameRead,
		gameWrite:     gameWrite,
		playerRead:    playerRead,
		playerWrite:   playerWrite,
		questionRead:  questionRead,
		questionWrite: questionWrite,
		requestRead:   requestRead,
		leaderboard:   leaderboard,
		kafkaWriter:   kafkaWriter,
	}
}

// CreateGame creates a WAITING game with its initial questions and puts the
// host on the roster.
func (s *GameService) CreateGame(ctx context.Context, hostUserID uuid.UUID, title string, questions []QuestionInput) (*models.GameDB, error) {
	for _, q := range questions {
		if err := validateOptions(q.Options); err != nil {
			logger.Log.Warnw("invalid question in create game", "host", hostUserID, "error", err)
			return nil, err
		}
	}

	gameID := uuid.New()
	if err := s.gameWrite.Save(ctx, gameID, hostUserID, title); err != nil {
		logger.Log.Errorw("failed to save game", "host", hostUserID, "error", err)
		return nil, err
	}

	for _, q := range questions {
		questionID := uuid.New()
		if err := s.questionWrite.SaveQuestion(ctx, questionID, gameID, q.Text, q.Explanation); err != nil {
			logger.Log.Errorw("failed to save question", "gameID", gameID, "error", err)
			return nil, err
		}
		for _, o := range q.Options {
			if err := s.questionWrite.SaveOption(ctx, uuid.New(), questionID, o.Text, o.IsCorrect); err != nil {
				logger.Log.Errorw("failed to save option", "questionID", questionID, "error", err)
				return nil, err
			}
		}
	}

	// The host joins their own roster at creation.
	if _, err := s.playerWrite.SaveIfAbsent(ctx, uuid.New(), hostUserID, gameID); err != nil {
		logger.Log.Errorw("failed to add host to roster", "gameID", gameID, "error", err)
		return nil, err
	}

	game, err := s.gameRead.Get(ctx, gameID)
	if err != nil {
		logger.Log.Errorw("failed to read back game", "gameID", gameID, "error", err)
		return nil, err
	}
	if game == nil {
		// Read-back raced a concurrent delete path that does not exist; the
		// game was just written inside this transaction.
		game = &models.GameDB{GameID: gameID, Title: title, HostUserID: hostUserID, Status: models.GameStatusWaiting}
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventGameCreated, gameID, hostUserID))

	return game, nil
}

// StartGame transitions a WAITING game to STARTED. Host only; requires at
// least one approved player besides the auto-joined host, and one question.
func (s *GameService) StartGame(ctx context.Context, gameID, requesterUserID uuid.UUID) (*models.GameDB, error) {
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

	players, err := s.playerRead.ListByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	// The host is on the roster from creation; they alone are not a game.
	joined := 0
	for _, p := range players {
		if p.UserID != game.HostUserID {
			joined++
		}
	}
	if joined < 1 {
		return nil, ErrNoPlayers
	}

	questionCount, err := s.questionRead.CountByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if questionCount < 1 {
		return nil, ErrNoQuestions
	}

	swapped, err := s.gameWrite.UpdateStatus(ctx, gameID, models.GameStatusWaiting, models.GameStatusStarted)
	if err != nil {
		return nil, err
	}
	if !swapped {
		// Lost a race with another start; the earlier status check already
		// passed, so the game moved on concurrently.
		return nil, ErrGameNotWaiting
	}

	game.Status = models.GameStatusStarted
	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventGameStarted, gameID, requesterUserID))

	return game, nil
}

// CompleteGame transitions a STARTED game to COMPLETED. Host only.
func (s *GameService) CompleteGame(ctx context.Context, gameID, requesterUserID uuid.UUID) (*models.GameDB, error) {
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
	if game.Status != models.GameStatusStarted {
		return nil, ErrGameNotStarted
	}

	swapped, err := s.gameWrite.UpdateStatus(ctx, gameID, models.GameStatusStarted, models.GameStatusCompleted)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, ErrGameNotStarted
	}

	game.Status = models.GameStatusCompleted
	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventGameCompleted, gameID, requesterUserID))

	return game, nil
}

// UpdateTitle changes the game title. Host only; allowed in any status since
// the title does not affect answer integrity.
func (s *GameService) UpdateTitle(ctx context.Context, gameID, requesterUserID uuid.UUID, title string) (*models.GameDB, error) {
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

	if _, err := s.gameWrite.UpdateTitle(ctx, gameID, title); err != nil {
		return nil, err
	}

	game.Title = title
	return game, nil
}

// GetGame returns the game with roster and questions. Option correctness and
// explanations are only revealed to the host, or to everyone once the game
// is COMPLETED.
func (s *GameService) GetGame(ctx context.Context, gameID, requesterUserID uuid.UUID) (*GameDetail, error) {
	game, err := s.gameRead.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}

	players, err := s.playerRead.ListByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRead.ListByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	options, err := s.questionRead.ListOptionsByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	revealAnswers := requesterUserID == game.HostUserID || game.Status == models.GameStatusCompleted

	optionsByQuestion := make(map[uuid.UUID][]models.OptionDB, len(questions))
	for _, o := range options {
		if !revealAnswers {
			o.IsCorrect = false
		}
		optionsByQuestion[o.QuestionID] = append(optionsByQuestion[o.QuestionID], o)
	}

	detail := &GameDetail{
		Game:      *game,
		Players:   players,
		Questions: make([]QuestionWithOptions, 0, len(questions)),
	}
	for _, q := range questions {
		if !revealAnswers {
			q.Explanation = ""
		}
		detail.Questions = append(detail.Questions, QuestionWithOptions{
			Question: q,
			Options:  optionsByQuestion[q.QuestionID],
		})
	}

	if requesterUserID == game.HostUserID {
		requests, err := s.requestRead.ListByGame(ctx, gameID)
		if err != nil {
			return nil, err
		}
		detail.Requests = requests
	}

	if s.leaderboard != nil {
		entries, err := s.leaderboard.Top(ctx, gameID, len(players))
		if err != nil {
			logger.Log.Warnw("failed to read leaderboard cache", "gameID", gameID, "error", err)
		} else {
			detail.Leaderboard = entries
		}
	}

	return detail, nil
}

// ListGames returns the games the user hosts, plays in, or has requested to join.
func (s *GameService) ListGames(ctx context.Context, userID uuid.UUID) ([]models.GameDB, error) {
	games, err := s.gameRead.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list games", "userID", userID, "error", err)
		return nil, err
	}
	return games, nil
}
