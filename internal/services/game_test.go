package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/models"
	"github.com/mcqbattle/backend/internal/services"
	"github.com/stretchr/testify/assert"
)

type gameServiceMocks struct {
	gameRead      *services.MockGameReader
	gameWrite     *services.MockGameWriter
	playerRead    *services.MockPlayerReader
	playerWrite   *services.MockPlayerWriter
	questionRead  *services.MockQuestionReader
	questionWrite *services.MockQuestionWriter
	requestRead   *services.MockRequestReader
	leaderboard   *services.MockLeaderboard
}

func newGameService(ctrl *gomock.Controller) (*services.GameService, gameServiceMocks) {
	m := gameServiceMocks{
		gameRead:      services.NewMockGameReader(ctrl),
		gameWrite:     services.NewMockGameWriter(ctrl),
		playerRead:    services.NewMockPlayerReader(ctrl),
		playerWrite:   services.NewMockPlayerWriter(ctrl),
		questionRead:  services.NewMockQuestionReader(ctrl),
		questionWrite: services.NewMockQuestionWriter(ctrl),
		requestRead:   services.NewMockRequestReader(ctrl),
		leaderboard:   services.NewMockLeaderboard(ctrl),
	}
	svc := services.NewGameService(
		m.gameRead, m.gameWrite,
		m.playerRead, m.playerWrite,
		m.questionRead, m.questionWrite,
		m.requestRead, m.leaderboard,
		nil,
	)
	return svc, m
}

func validQuestions() []services.QuestionInput {
	return []services.QuestionInput{
		{
			Text:        "Capital of France?",
			Explanation: "Paris has been the capital since 987.",
			Options: []services.OptionInput{
				{Text: "Paris", IsCorrect: true},
				{Text: "Lyon"},
				{Text: "Marseille"},
			},
		},
	}
}

func TestGameService_CreateGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGameService(ctrl)

	hostID := uuid.New()
	title := "friday quiz"

	m.gameWrite.EXPECT().
		Save(gomock.Any(), gomock.Any(), hostID, title).
		Return(nil)
	m.questionWrite.EXPECT().
		SaveQuestion(gomock.Any(), gomock.Any(), gomock.Any(), "Capital of France?", gomock.Any()).
		Return(nil)
	m.questionWrite.EXPECT().
		SaveOption(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(3)
	m.playerWrite.EXPECT().
		SaveIfAbsent(gomock.Any(), gomock.Any(), hostID, gomock.Any()).
		Return(true, nil)
	m.gameRead.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, gameID uuid.UUID) (*models.GameDB, error) {
			return &models.GameDB{GameID: gameID, HostUserID: hostID, Title: title, Status: models.GameStatusWaiting}, nil
		})

	game, err := svc.CreateGame(context.Background(), hostID, title, validQuestions())
	assert.NoError(t, err)
	assert.Equal(t, models.GameStatusWaiting, game.Status)
	assert.Equal(t, hostID, game.HostUserID)
	assert.Equal(t, title, game.Title)
}

func TestGameService_CreateGame_InvalidQuestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newGameService(ctrl)
	hostID := uuid.New()

	tests := []struct {
		name    string
		options []services.OptionInput
		wantErr error
	}{
		{
			name:    "single option",
			options: []services.OptionInput{{Text: "Paris", IsCorrect: true}},
			wantErr: services.ErrTooFewOptions,
		},
		{
			name:    "no correct option",
			options: []services.OptionInput{{Text: "Paris"}, {Text: "Lyon"}},
			wantErr: services.ErrCorrectCount,
		},
		{
			name: "two correct options",
			options: []services.OptionInput{
				{Text: "Paris", IsCorrect: true},
				{Text: "Lyon", IsCorrect: true},
			},
			wantErr: services.ErrCorrectCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := []services.QuestionInput{{Text: "Capital of France?", Options: tt.options}}
			game, err := svc.CreateGame(context.Background(), hostID, "quiz", questions)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, game)
		})
	}
}

func TestGameService_StartGame(t *testing.T) {
	hostID := uuid.New()
	otherID := uuid.New()
	gameID := uuid.New()

	waiting := func() *models.GameDB {
		return &models.GameDB{GameID: gameID, HostUserID: hostID, Status: models.GameStatusWaiting}
	}

	fullRoster := []models.PlayerDB{
		{UserID: hostID, GameID: gameID},
		{UserID: otherID, GameID: gameID},
	}
	hostOnly := []models.PlayerDB{{UserID: hostID, GameID: gameID}}

	tests := []struct {
		name      string
		requester uuid.UUID
		game      *models.GameDB
		roster    []models.PlayerDB
		questions int
		swapped   bool
		wantErr   error
	}{
		{
			name:      "successful start",
			requester: hostID,
			game:      waiting(),
			roster:    fullRoster,
			questions: 3,
			swapped:   true,
		},
		{
			name:      "game not found",
			requester: hostID,
			wantErr:   services.ErrGameNotFound,
		},
		{
			name:      "not the host",
			requester: otherID,
			game:      waiting(),
			wantErr:   services.ErrNotHost,
		},
		{
			name:      "already started",
			requester: hostID,
			game:      &models.GameDB{GameID: gameID, HostUserID: hostID, Status: models.GameStatusStarted},
			wantErr:   services.ErrGameNotWaiting,
		},
		{
			name:      "no players",
			requester: hostID,
			game:      waiting(),
			roster:    nil,
			wantErr:   services.ErrNoPlayers,
		},
		{
			name:      "host alone does not satisfy the player precondition",
			requester: hostID,
			game:      waiting(),
			roster:    hostOnly,
			wantErr:   services.ErrNoPlayers,
		},
		{
			name:      "no questions",
			requester: hostID,
			game:      waiting(),
			roster:    fullRoster,
			questions: 0,
			wantErr:   services.ErrNoQuestions,
		},
		{
			name:      "lost start race",
			requester: hostID,
			game:      waiting(),
			roster:    fullRoster,
			questions: 1,
			swapped:   false,
			wantErr:   services.ErrGameNotWaiting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newGameService(ctrl)

			m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(tt.game, nil)

			hostAndWaiting := tt.game != nil &&
				tt.game.HostUserID == tt.requester &&
				tt.game.Status == models.GameStatusWaiting
			if hostAndWaiting {
				m.playerRead.EXPECT().ListByGame(gomock.Any(), gameID).Return(tt.roster, nil)
				if len(tt.roster) > 1 {
					m.questionRead.EXPECT().CountByGame(gomock.Any(), gameID).Return(tt.questions, nil)
					if tt.questions > 0 {
						m.gameWrite.EXPECT().
							UpdateStatus(gomock.Any(), gameID, models.GameStatusWaiting, models.GameStatusStarted).
							Return(tt.swapped, nil)
					}
				}
			}

			game, err := svc.StartGame(context.Background(), gameID, tt.requester)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, game)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, models.GameStatusStarted, game.Status)
			}
		})
	}
}

func TestGameService_CompleteGame(t *testing.T) {
	hostID := uuid.New()
	gameID := uuid.New()

	tests := []struct {
		name      string
		requester uuid.UUID
		game      *models.GameDB
		swapped   bool
		wantErr   error
	}{
		{
			name:      "successful complete",
			requester: hostID,
			game:      &models.GameDB{GameID: gameID, HostUserID: hostID, Status: models.GameStatusStarted},
			swapped:   true,
		},
		{
			name:      "not started",
			requester: hostID,
			game:      &models.GameDB{GameID: gameID, HostUserID: hostID, Status: models.GameStatusWaiting},
			wantErr:   services.ErrGameNotStarted,
		},
		{
			name:      "not the host",
			requester: uuid.New(),
			game:      &models.GameDB{GameID: gameID, HostUserID: hostID, Status: models.GameStatusStarted},
			wantErr:   services.ErrNotHost,
		},
		{
			name:      "completed concurrently",
			requester: hostID,
			game:      &models.GameDB{GameID: gameID, HostUserID: hostID, Status: models.GameStatusStarted},
			swapped:   false,
			wantErr:   services.ErrGameNotStarted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newGameService(ctrl)

			m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(tt.game, nil)
			if tt.game != nil && tt.game.HostUserID == tt.requester && tt.game.Status == models.GameStatusStarted {
				m.gameWrite.EXPECT().
					UpdateStatus(gomock.Any(), gameID, models.GameStatusStarted, models.GameStatusCompleted).
					Return(tt.swapped, nil)
			}

			game, err := svc.CompleteGame(context.Background(), gameID, tt.requester)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, game)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, models.GameStatusCompleted, game.Status)
			}
		})
	}
}

func TestGameService_UpdateTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGameService(ctrl)

	hostID := uuid.New()
	gameID := uuid.New()
	game := &models.GameDB{GameID: gameID, HostUserID: hostID, Title: "old", Status: models.GameStatusWaiting}

	m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(game, nil)
	m.gameWrite.EXPECT().UpdateTitle(gomock.Any(), gameID, "new").Return(true, nil)

	updated, err := svc.UpdateTitle(context.Background(), gameID, hostID, "new")
	assert.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
}

func TestGameService_GetGame_HidesAnswersFromPlayers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGameService(ctrl)

	hostID := uuid.New()
	playerID := uuid.New()
	gameID := uuid.New()
	questionID := uuid.New()

	game := &models.GameDB{GameID: gameID, HostUserID: hostID, Status: models.GameStatusStarted}
	questions := []models.QuestionDB{{QuestionID: questionID, GameID: gameID, Text: "Q1", Explanation: "because"}}
	options := []models.OptionDB{
		{OptionID: uuid.New(), QuestionID: questionID, Text: "A", IsCorrect: true},
		{OptionID: uuid.New(), QuestionID: questionID, Text: "B"},
	}

	m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(game, nil)
	m.playerRead.EXPECT().ListByGame(gomock.Any(), gameID).Return([]models.PlayerDB{{UserID: playerID, GameID: gameID}}, nil)
	m.questionRead.EXPECT().ListByGame(gomock.Any(), gameID).Return(questions, nil)
	m.questionRead.EXPECT().ListOptionsByGame(gomock.Any(), gameID).Return(options, nil)
	m.leaderboard.EXPECT().Top(gomock.Any(), gameID, 1).Return(nil, nil)

	detail, err := svc.GetGame(context.Background(), gameID, playerID)
	assert.NoError(t, err)
	assert.Len(t, detail.Questions, 1)
	assert.Empty(t, detail.Questions[0].Question.Explanation)
	for _, o := range detail.Questions[0].Options {
		assert.False(t, o.IsCorrect)
	}
	// Pending requests are host-only.
	assert.Nil(t, detail.Requests)
}

func TestGameService_GetGame_RevealsAnswersToHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGameService(ctrl)

	hostID := uuid.New()
	gameID := uuid.New()
	questionID := uuid.New()

	game := &models.GameDB{GameID: gameID, HostUserID: hostID, Status: models.GameStatusWaiting}
	questions := []models.QuestionDB{{QuestionID: questionID, GameID: gameID, Text: "Q1", Explanation: "because"}}
	options := []models.OptionDB{
		{OptionID: uuid.New(), QuestionID: questionID, Text: "A", IsCorrect: true},
		{OptionID: uuid.New(), QuestionID: questionID, Text: "B"},
	}
	requests := []models.PlayerRequestDB{{GameID: gameID, UserID: uuid.New(), Status: models.RequestStatusPending}}

	m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(game, nil)
	m.playerRead.EXPECT().ListByGame(gomock.Any(), gameID).Return(nil, nil)
	m.questionRead.EXPECT().ListByGame(gomock.Any(), gameID).Return(questions, nil)
	m.questionRead.EXPECT().ListOptionsByGame(gomock.Any(), gameID).Return(options, nil)
	m.requestRead.EXPECT().ListByGame(gomock.Any(), gameID).Return(requests, nil)
	m.leaderboard.EXPECT().Top(gomock.Any(), gameID, 0).Return(nil, nil)

	detail, err := svc.GetGame(context.Background(), gameID, hostID)
	assert.NoError(t, err)
	assert.Equal(t, "because", detail.Questions[0].Question.Explanation)
	assert.True(t, detail.Questions[0].Options[0].IsCorrect)
	assert.Len(t, detail.Requests, 1)
}

func TestGameService_GetGame_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGameService(ctrl)
	gameID := uuid.New()

	m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(nil, nil)

	detail, err := svc.GetGame(context.Background(), gameID, uuid.New())
	assert.ErrorIs(t, err, services.ErrGameNotFound)
	assert.Nil(t, detail)
}

func TestGameService_ListGames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGameService(ctrl)
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		games := []models.GameDB{{GameID: uuid.New()}, {GameID: uuid.New()}}
		m.gameRead.EXPECT().ListByUser(gomock.Any(), userID).Return(games, nil)

		got, err := svc.ListGames(context.Background(), userID)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("repository error", func(t *testing.T) {
		m.gameRead.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, errors.New("db error"))

		got, err := svc.ListGames(context.Background(), userID)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}
