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

type scoringServiceMocks struct {
	gameRead     *services.MockGameReader
	gameWrite    *services.MockGameWriter
	playerRead   *services.MockPlayerReader
	playerWrite  *services.MockPlayerWriter
	questionRead *services.MockQuestionReader
	answerRead   *services.MockAnswerReader
	answerWrite  *services.MockAnswerWriter
	leaderboard  *services.MockLeaderboard
}

func newScoringService(ctrl *gomock.Controller, autoComplete bool) (*services.ScoringService, scoringServiceMocks) {
	m := scoringServiceMocks{
		gameRead:     services.NewMockGameReader(ctrl),
		gameWrite:    services.NewMockGameWriter(ctrl),
		playerRead:   services.NewMockPlayerReader(ctrl),
		playerWrite:  services.NewMockPlayerWriter(ctrl),
		questionRead: services.NewMockQuestionReader(ctrl),
		answerRead:   services.NewMockAnswerReader(ctrl),
		answerWrite:  services.NewMockAnswerWriter(ctrl),
		leaderboard:  services.NewMockLeaderboard(ctrl),
	}
	svc := services.NewScoringService(
		m.gameRead, m.gameWrite,
		m.playerRead, m.playerWrite,
		m.questionRead,
		m.answerRead, m.answerWrite,
		m.leaderboard,
		nil,
		1, autoComplete,
	)
	return svc, m
}

type scoringFixture struct {
	gameID     uuid.UUID
	userID     uuid.UUID
	questionID uuid.UUID
	optionID   uuid.UUID
	game       *models.GameDB
	player     *models.PlayerDB
	question   *models.QuestionDB
	option     *models.OptionDB
}

func newScoringFixture(correct bool) scoringFixture {
	f := scoringFixture{
		gameID:     uuid.New(),
		userID:     uuid.New(),
		questionID: uuid.New(),
		optionID:   uuid.New(),
	}
	f.game = &models.GameDB{GameID: f.gameID, HostUserID: uuid.New(), Status: models.GameStatusStarted}
	f.player = &models.PlayerDB{UserID: f.userID, GameID: f.gameID, Score: 0}
	f.question = &models.QuestionDB{QuestionID: f.questionID, GameID: f.gameID}
	f.option = &models.OptionDB{OptionID: f.optionID, QuestionID: f.questionID, IsCorrect: correct}
	return f
}

func TestScoringService_SubmitAnswer_Correct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newScoringService(ctrl, false)
	f := newScoringFixture(true)

	m.gameRead.EXPECT().Get(gomock.Any(), f.gameID).Return(f.game, nil)
	m.playerRead.EXPECT().Get(gomock.Any(), f.userID, f.gameID).Return(f.player, nil)
	m.questionRead.EXPECT().Get(gomock.Any(), f.questionID).Return(f.question, nil)
	m.questionRead.EXPECT().GetOption(gomock.Any(), f.optionID).Return(f.option, nil)
	m.answerWrite.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any()).Return(true, nil)
	m.playerWrite.EXPECT().IncrementScore(gomock.Any(), f.userID, f.gameID, 1).Return(1, nil)
	m.leaderboard.EXPECT().IncrementScore(gomock.Any(), f.gameID, f.userID, 1).Return(1, nil)

	correct, score, err := svc.SubmitAnswer(context.Background(), f.gameID, f.userID, f.questionID, f.optionID)
	assert.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, 1, score)
}

func TestScoringService_SubmitAnswer_Incorrect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newScoringService(ctrl, false)
	f := newScoringFixture(false)
	f.player.Score = 3

	m.gameRead.EXPECT().Get(gomock.Any(), f.gameID).Return(f.game, nil)
	m.playerRead.EXPECT().Get(gomock.Any(), f.userID, f.gameID).Return(f.player, nil)
	m.questionRead.EXPECT().Get(gomock.Any(), f.questionID).Return(f.question, nil)
	m.questionRead.EXPECT().GetOption(gomock.Any(), f.optionID).Return(f.option, nil)
	m.answerWrite.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any()).Return(true, nil)

	correct, score, err := svc.SubmitAnswer(context.Background(), f.gameID, f.userID, f.questionID, f.optionID)
	assert.NoError(t, err)
	assert.False(t, correct)
	assert.Equal(t, 3, score)
}

func TestScoringService_SubmitAnswer_Validation(t *testing.T) {
	f := newScoringFixture(true)
	otherGame := uuid.New()

	tests := []struct {
		name    string
		setup   func(m scoringServiceMocks)
		wantErr error
	}{
		{
			name: "game not found",
			setup: func(m scoringServiceMocks) {
				m.gameRead.EXPECT().Get(gomock.Any(), f.gameID).Return(nil, nil)
			},
			wantErr: services.ErrGameNotFound,
		},
		{
			name: "game not started",
			setup: func(m scoringServiceMocks) {
				m.gameRead.EXPECT().Get(gomock.Any(), f.gameID).
					Return(&models.GameDB{GameID: f.gameID, Status: models.GameStatusWaiting}, nil)
			},
			wantErr: services.ErrGameNotStarted,
		},
		{
			name: "caller not on the roster",
			setup: func(m scoringServiceMocks) {
				m.gameRead.EXPECT().Get(gomock.Any(), f.gameID).Return(f.game, nil)
				m.playerRead.EXPECT().Get(gomock.Any(), f.userID, f.gameID).Return(nil, nil)
			},
			wantErr: services.ErrNotPlayer,
		},
		{
			name: "question not found",
			setup: func(m scoringServiceMocks) {
				m.gameRead.EXPECT().Get(gomock.Any(), f.gameID).Return(f.game, nil)
				m.playerRead.EXPECT().Get(gomock.Any(), f.userID, f.gameID).Return(f.player, nil)
				m.questionRead.EXPECT().Get(gomock.Any(), f.questionID).Return(nil, nil)
			},
			wantErr: services.ErrQuestionNotFound,
		},
		{
			name: "question from another game",
			setup: func(m scoringServiceMocks) {
				m.gameRead.EXPECT().Get(gomock.Any(), f.gameID).Return(f.game, nil)
				m.playerRead.EXPECT().Get(gomock.Any(), f.userID, f.gameID).Return(f.player, nil)
				m.questionRead.EXPECT().Get(gomock.Any(), f.questionID).
					Return(&models.QuestionDB{QuestionID: f.questionID, GameID: otherGame}, nil)
			},
			wantErr: services.ErrAnswerMismatch,
		},
		{
			name: "option not found",
			setup: func(m scoringServiceMocks) {
				m.gameRead.EXPECT().Get(gomock.Any(), f.gameID).Return(f.game, nil)
				m.playerRead.EXPECT().Get(gomock.Any(), f.userID, f.gameID).Return(f.player, nil)
				m.questionRead.EXPECT().Get(gomock.Any(), f.questionID).Return(f.question, nil)
				m.questionRead.EXPECT().GetOption(gomock.Any(), f.optionID).Return(nil, nil)
			},
			wantErr: services.ErrOptionNotFound,
		},
		{
			name: "option from another question",
			setup: func(m scoringServiceMocks) {
				m.gameRead.EXPECT().Get(gomock.Any(), f.gameID).Return(f.game, nil)
				m.playerRead.EXPECT().Get(gomock.Any(), f.userID, f.gameID).Return(f.player, nil)
				m.questionRead.EXPECT().Get(gomock.Any(), f.questionID).Return(f.question, nil)
				m.questionRead.EXPECT().GetOption(gomock.Any(), f.optionID).
					Return(&models.OptionDB{OptionID: f.optionID, QuestionID: uuid.New()}, nil)
			},
			wantErr: services.ErrAnswerMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newScoringService(ctrl, false)
			tt.setup(m)

			_, _, err := svc.SubmitAnswer(context.Background(), f.gameID, f.userID, f.questionID, f.optionID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestScoringService_SubmitAnswer_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newScoringService(ctrl, false)
	f := newScoringFixture(true)

	m.gameRead.EXPECT().Get(gomock.Any(), f.gameID).Return(f.game, nil)
	m.playerRead.EXPECT().Get(gomock.Any(), f.userID, f.gameID).Return(f.player, nil)
	m.questionRead.EXPECT().Get(gomock.Any(), f.questionID).Return(f.question, nil)
	m.questionRead.EXPECT().GetOption(gomock.Any(), f.optionID).Return(f.option, nil)
	m.answerWrite.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil)
	m.answerRead.EXPECT().Get(gomock.Any(), f.userID, f.questionID).
		Return(&models.UserAnswerDB{UserID: f.userID, QuestionID: f.questionID}, nil)

	_, _, err := svc.SubmitAnswer(context.Background(), f.gameID, f.userID, f.questionID, f.optionID)
	assert.ErrorIs(t, err, services.ErrAlreadyAnswered)
}

func TestScoringService_SubmitAnswer_GameCompletedMidFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newScoringService(ctrl, false)
	f := newScoringFixture(true)

	m.gameRead.EXPECT().Get(gomock.Any(), f.gameID).Return(f.game, nil)
	m.playerRead.EXPECT().Get(gomock.Any(), f.userID, f.gameID).Return(f.player, nil)
	m.questionRead.EXPECT().Get(gomock.Any(), f.questionID).Return(f.question, nil)
	m.questionRead.EXPECT().GetOption(gomock.Any(), f.optionID).Return(f.option, nil)
	m.answerWrite.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil)
	// No prior answer, so the guarded insert failed on the status check.
	m.answerRead.EXPECT().Get(gomock.Any(), f.userID, f.questionID).Return(nil, nil)

	_, _, err := svc.SubmitAnswer(context.Background(), f.gameID, f.userID, f.questionID, f.optionID)
	assert.ErrorIs(t, err, services.ErrGameNotStarted)
}

func TestScoringService_SubmitAnswer_AutoCompletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newScoringService(ctrl, true)
	f := newScoringFixture(true)

	m.gameRead.EXPECT().Get(gomock.Any(), f.gameID).Return(f.game, nil)
	m.playerRead.EXPECT().Get(gomock.Any(), f.userID, f.gameID).Return(f.player, nil)
	m.questionRead.EXPECT().Get(gomock.Any(), f.questionID).Return(f.question, nil)
	m.questionRead.EXPECT().GetOption(gomock.Any(), f.optionID).Return(f.option, nil)
	m.answerWrite.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any()).Return(true, nil)
	m.playerWrite.EXPECT().IncrementScore(gomock.Any(), f.userID, f.gameID, 1).Return(1, nil)
	m.leaderboard.EXPECT().IncrementScore(gomock.Any(), f.gameID, f.userID, 1).Return(1, nil)
	m.answerRead.EXPECT().AllAnswered(gomock.Any(), f.gameID).Return(true, nil)
	m.gameWrite.EXPECT().
		UpdateStatus(gomock.Any(), f.gameID, models.GameStatusStarted, models.GameStatusCompleted).
		Return(true, nil)

	correct, score, err := svc.SubmitAnswer(context.Background(), f.gameID, f.userID, f.questionID, f.optionID)
	assert.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, 1, score)
}

func TestScoringService_SubmitAnswer_AutoCompleteFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newScoringService(ctrl, true)
	f := newScoringFixture(false)

	m.gameRead.EXPECT().Get(gomock.Any(), f.gameID).Return(f.game, nil)
	m.playerRead.EXPECT().Get(gomock.Any(), f.userID, f.gameID).Return(f.player, nil)
	m.questionRead.EXPECT().Get(gomock.Any(), f.questionID).Return(f.question, nil)
	m.questionRead.EXPECT().GetOption(gomock.Any(), f.optionID).Return(f.option, nil)
	m.answerWrite.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any()).Return(true, nil)
	m.answerRead.EXPECT().AllAnswered(gomock.Any(), f.gameID).Return(false, errors.New("db error"))

	_, _, err := svc.SubmitAnswer(context.Background(), f.gameID, f.userID, f.questionID, f.optionID)
	assert.NoError(t, err)
}
