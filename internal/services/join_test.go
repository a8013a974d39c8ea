package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/models"
	"github.com/mcqbattle/backend/internal/services"
	"github.com/stretchr/testify/assert"
)

type joinServiceMocks struct {
	gameRead     *services.MockGameReader
	playerRead   *services.MockPlayerReader
	playerWrite  *services.MockPlayerWriter
	requestRead  *services.MockRequestReader
	requestWrite *services.MockRequestWriter
	leaderboard  *services.MockLeaderboard
}

func newJoinService(ctrl *gomock.Controller) (*services.JoinService, joinServiceMocks) {
	m := joinServiceMocks{
		gameRead:     services.NewMockGameReader(ctrl),
		playerRead:   services.NewMockPlayerReader(ctrl),
		playerWrite:  services.NewMockPlayerWriter(ctrl),
		requestRead:  services.NewMockRequestReader(ctrl),
		requestWrite: services.NewMockRequestWriter(ctrl),
		leaderboard:  services.NewMockLeaderboard(ctrl),
	}
	svc := services.NewJoinService(m.gameRead, m.playerRead, m.playerWrite, m.requestRead, m.requestWrite, m.leaderboard)
	return svc, m
}

func TestJoinService_RequestJoin(t *testing.T) {
	gameID := uuid.New()
	userID := uuid.New()
	hostID := uuid.New()

	t.Run("files a pending request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).
			Return(&models.GameDB{GameID: gameID, HostUserID: hostID, Status: models.GameStatusWaiting}, nil)
		m.requestWrite.EXPECT().UpsertPending(gomock.Any(), gomock.Any(), gameID, userID).
			Return(&models.PlayerRequestDB{GameID: gameID, UserID: userID, Status: models.RequestStatusPending}, nil)

		req, err := svc.RequestJoin(context.Background(), gameID, userID)
		assert.NoError(t, err)
		assert.Equal(t, models.RequestStatusPending, req.Status)
	})

	t.Run("game not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(nil, nil)

		_, err := svc.RequestJoin(context.Background(), gameID, userID)
		assert.ErrorIs(t, err, services.ErrGameNotFound)
	})

	t.Run("game already started", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).
			Return(&models.GameDB{GameID: gameID, Status: models.GameStatusStarted}, nil)

		_, err := svc.RequestJoin(context.Background(), gameID, userID)
		assert.ErrorIs(t, err, services.ErrGameNotWaiting)
	})

	t.Run("already approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).
			Return(&models.GameDB{GameID: gameID, Status: models.GameStatusWaiting}, nil)
		m.requestWrite.EXPECT().UpsertPending(gomock.Any(), gomock.Any(), gameID, userID).Return(nil, nil)
		m.requestRead.EXPECT().Get(gomock.Any(), gameID, userID).
			Return(&models.PlayerRequestDB{GameID: gameID, UserID: userID, Status: models.RequestStatusApproved}, nil)

		_, err := svc.RequestJoin(context.Background(), gameID, userID)
		assert.ErrorIs(t, err, services.ErrAlreadyJoined)
	})

	t.Run("game left waiting mid-flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).
			Return(&models.GameDB{GameID: gameID, Status: models.GameStatusWaiting}, nil)
		m.requestWrite.EXPECT().UpsertPending(gomock.Any(), gomock.Any(), gameID, userID).Return(nil, nil)
		m.requestRead.EXPECT().Get(gomock.Any(), gameID, userID).Return(nil, nil)

		_, err := svc.RequestJoin(context.Background(), gameID, userID)
		assert.ErrorIs(t, err, services.ErrGameNotWaiting)
	})
}

func TestJoinService_AcceptRequest(t *testing.T) {
	gameID := uuid.New()
	hostID := uuid.New()
	targetID := uuid.New()
	game := &models.GameDB{GameID: gameID, HostUserID: hostID, Status: models.GameStatusWaiting}

	t.Run("approves a pending request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(game, nil)
		m.requestRead.EXPECT().Get(gomock.Any(), gameID, targetID).
			Return(&models.PlayerRequestDB{GameID: gameID, UserID: targetID, Status: models.RequestStatusPending}, nil)
		m.requestWrite.EXPECT().
			UpdateStatus(gomock.Any(), gameID, targetID, models.RequestStatusPending, models.RequestStatusApproved).
			Return(true, nil)
		m.playerWrite.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any(), targetID, gameID).Return(true, nil)

		req, err := svc.AcceptRequest(context.Background(), gameID, hostID, targetID)
		assert.NoError(t, err)
		assert.Equal(t, models.RequestStatusApproved, req.Status)
	})

	t.Run("idempotent on approved request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(game, nil)
		m.requestRead.EXPECT().Get(gomock.Any(), gameID, targetID).
			Return(&models.PlayerRequestDB{GameID: gameID, UserID: targetID, Status: models.RequestStatusApproved}, nil)
		m.playerWrite.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any(), targetID, gameID).Return(false, nil)
		m.playerRead.EXPECT().Get(gomock.Any(), targetID, gameID).
			Return(&models.PlayerDB{UserID: targetID, GameID: gameID}, nil)

		req, err := svc.AcceptRequest(context.Background(), gameID, hostID, targetID)
		assert.NoError(t, err)
		assert.Equal(t, models.RequestStatusApproved, req.Status)
	})

	t.Run("not the host", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(game, nil)

		_, err := svc.AcceptRequest(context.Background(), gameID, uuid.New(), targetID)
		assert.ErrorIs(t, err, services.ErrNotHost)
	})

	t.Run("no request on record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(game, nil)
		m.requestRead.EXPECT().Get(gomock.Any(), gameID, targetID).Return(nil, nil)

		_, err := svc.AcceptRequest(context.Background(), gameID, hostID, targetID)
		assert.ErrorIs(t, err, services.ErrRequestNotFound)
	})

	t.Run("cancelled request cannot be approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(game, nil)
		m.requestRead.EXPECT().Get(gomock.Any(), gameID, targetID).
			Return(&models.PlayerRequestDB{GameID: gameID, UserID: targetID, Status: models.RequestStatusCancelled}, nil)

		_, err := svc.AcceptRequest(context.Background(), gameID, hostID, targetID)
		assert.ErrorIs(t, err, services.ErrRequestNotFound)
	})

	t.Run("lost race but approved concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(game, nil)
		m.requestRead.EXPECT().Get(gomock.Any(), gameID, targetID).
			Return(&models.PlayerRequestDB{GameID: gameID, UserID: targetID, Status: models.RequestStatusPending}, nil)
		m.requestWrite.EXPECT().
			UpdateStatus(gomock.Any(), gameID, targetID, models.RequestStatusPending, models.RequestStatusApproved).
			Return(false, nil)
		m.requestRead.EXPECT().Get(gomock.Any(), gameID, targetID).
			Return(&models.PlayerRequestDB{GameID: gameID, UserID: targetID, Status: models.RequestStatusApproved}, nil)
		m.playerWrite.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any(), targetID, gameID).Return(false, nil)
		m.playerRead.EXPECT().Get(gomock.Any(), targetID, gameID).
			Return(&models.PlayerDB{UserID: targetID, GameID: gameID}, nil)

		req, err := svc.AcceptRequest(context.Background(), gameID, hostID, targetID)
		assert.NoError(t, err)
		assert.Equal(t, models.RequestStatusApproved, req.Status)
	})

	t.Run("started game rejects a lingering pending request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).
			Return(&models.GameDB{GameID: gameID, HostUserID: hostID, Status: models.GameStatusStarted}, nil)

		_, err := svc.AcceptRequest(context.Background(), gameID, hostID, targetID)
		assert.ErrorIs(t, err, services.ErrGameNotWaiting)
	})

	t.Run("completed game rejects accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).
			Return(&models.GameDB{GameID: gameID, HostUserID: hostID, Status: models.GameStatusCompleted}, nil)

		_, err := svc.AcceptRequest(context.Background(), gameID, hostID, targetID)
		assert.ErrorIs(t, err, services.ErrGameNotWaiting)
	})

	t.Run("game starts between check and roster write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(game, nil)
		m.requestRead.EXPECT().Get(gomock.Any(), gameID, targetID).
			Return(&models.PlayerRequestDB{GameID: gameID, UserID: targetID, Status: models.RequestStatusPending}, nil)
		m.requestWrite.EXPECT().
			UpdateStatus(gomock.Any(), gameID, targetID, models.RequestStatusPending, models.RequestStatusApproved).
			Return(true, nil)
		m.playerWrite.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any(), targetID, gameID).Return(false, nil)
		m.playerRead.EXPECT().Get(gomock.Any(), targetID, gameID).Return(nil, nil)

		_, err := svc.AcceptRequest(context.Background(), gameID, hostID, targetID)
		assert.ErrorIs(t, err, services.ErrGameNotWaiting)
	})
}

func TestJoinService_RejectRequest(t *testing.T) {
	gameID := uuid.New()
	hostID := uuid.New()
	targetID := uuid.New()
	game := &models.GameDB{GameID: gameID, HostUserID: hostID, Status: models.GameStatusWaiting}

	t.Run("rejects a pending request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(game, nil)
		m.requestWrite.EXPECT().
			UpdateStatus(gomock.Any(), gameID, targetID, models.RequestStatusPending, models.RequestStatusRejected).
			Return(true, nil)
		m.requestRead.EXPECT().Get(gomock.Any(), gameID, targetID).
			Return(&models.PlayerRequestDB{GameID: gameID, UserID: targetID, Status: models.RequestStatusRejected}, nil)

		req, err := svc.RejectRequest(context.Background(), gameID, hostID, targetID)
		assert.NoError(t, err)
		assert.Equal(t, models.RequestStatusRejected, req.Status)
	})

	t.Run("nothing pending to reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.gameRead.EXPECT().Get(gomock.Any(), gameID).Return(game, nil)
		m.requestWrite.EXPECT().
			UpdateStatus(gomock.Any(), gameID, targetID, models.RequestStatusPending, models.RequestStatusRejected).
			Return(false, nil)

		_, err := svc.RejectRequest(context.Background(), gameID, hostID, targetID)
		assert.ErrorIs(t, err, services.ErrRequestNotFound)
	})
}

func TestJoinService_CancelRequest(t *testing.T) {
	gameID := uuid.New()
	userID := uuid.New()

	t.Run("cancels a pending request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.requestRead.EXPECT().Get(gomock.Any(), gameID, userID).
			Return(&models.PlayerRequestDB{GameID: gameID, UserID: userID, Status: models.RequestStatusPending}, nil)
		m.requestWrite.EXPECT().
			UpdateStatus(gomock.Any(), gameID, userID, models.RequestStatusPending, models.RequestStatusCancelled).
			Return(true, nil)

		req, err := svc.CancelRequest(context.Background(), gameID, userID)
		assert.NoError(t, err)
		assert.Equal(t, models.RequestStatusCancelled, req.Status)
	})

	t.Run("approved request must leave instead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.requestRead.EXPECT().Get(gomock.Any(), gameID, userID).
			Return(&models.PlayerRequestDB{GameID: gameID, UserID: userID, Status: models.RequestStatusApproved}, nil)

		_, err := svc.CancelRequest(context.Background(), gameID, userID)
		assert.ErrorIs(t, err, services.ErrAlreadyJoined)
	})

	t.Run("rejected request is left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.requestRead.EXPECT().Get(gomock.Any(), gameID, userID).
			Return(&models.PlayerRequestDB{GameID: gameID, UserID: userID, Status: models.RequestStatusRejected}, nil)

		req, err := svc.CancelRequest(context.Background(), gameID, userID)
		assert.NoError(t, err)
		assert.Equal(t, models.RequestStatusRejected, req.Status)
	})

	t.Run("no request on record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.requestRead.EXPECT().Get(gomock.Any(), gameID, userID).Return(nil, nil)

		_, err := svc.CancelRequest(context.Background(), gameID, userID)
		assert.ErrorIs(t, err, services.ErrRequestNotFound)
	})
}

func TestJoinService_LeaveGame(t *testing.T) {
	gameID := uuid.New()
	userID := uuid.New()

	t.Run("removes a roster member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.playerWrite.EXPECT().Delete(gomock.Any(), userID, gameID).Return(true, nil)
		m.requestWrite.EXPECT().
			UpdateStatus(gomock.Any(), gameID, userID, models.RequestStatusApproved, models.RequestStatusCancelled).
			Return(true, nil)
		m.leaderboard.EXPECT().RemovePlayer(gomock.Any(), gameID, userID).Return(nil)

		err := svc.LeaveGame(context.Background(), gameID, userID)
		assert.NoError(t, err)
	})

	t.Run("withdraws a pending request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.playerWrite.EXPECT().Delete(gomock.Any(), userID, gameID).Return(false, nil)
		m.requestWrite.EXPECT().
			UpdateStatus(gomock.Any(), gameID, userID, models.RequestStatusPending, models.RequestStatusCancelled).
			Return(true, nil)

		err := svc.LeaveGame(context.Background(), gameID, userID)
		assert.NoError(t, err)
	})

	t.Run("no membership at all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newJoinService(ctrl)

		m.playerWrite.EXPECT().Delete(gomock.Any(), userID, gameID).Return(false, nil)
		m.requestWrite.EXPECT().
			UpdateStatus(gomock.Any(), gameID, userID, models.RequestStatusPending, models.RequestStatusCancelled).
			Return(false, nil)

		err := svc.LeaveGame(context.Background(), gameID, userID)
		assert.ErrorIs(t, err, services.ErrMembershipNotFound)
	})
}
