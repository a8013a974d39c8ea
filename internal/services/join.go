package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/logger"
	"github.com/mcqbattle/backend/internal/models"
)

// PlayerReader defines roster read operations.
type PlayerReader interface {
	Get(ctx context.Context, userID, gameID uuid.UUID) (*models.PlayerDB, error)   // Roster entry, nil when absent
	ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.PlayerDB, error)   // Full roster, ordered by score
	CountByGame(ctx context.Context, gameID uuid.UUID) (int, error)                // Roster size
}

// PlayerWriter defines roster write operations.
type PlayerWriter interface {
	SaveIfAbsent(ctx context.Context, playerID, userID, gameID uuid.UUID) (bool, error)      // Insert guarded by the (user_id, game_id) unique key
	IncrementScore(ctx context.Context, userID, gameID uuid.UUID, points int) (int, error)   // Adds points, returns the new score
	Delete(ctx context.Context, userID, gameID uuid.UUID) (bool, error)                      // Removes a roster entry
}

// RequestReader defines join-request read operations.
type RequestReader interface {
	Get(ctx context.Context, gameID, userID uuid.UUID) (*models.PlayerRequestDB, error)
	ListByGame(ctx context.Context, gameID uuid.UUID) ([]models.PlayerRequestDB, error)
}

// RequestWriter defines join-request write operations.
type RequestWriter interface {
	UpsertPending(ctx context.Context, requestID, gameID, userID uuid.UUID) (*models.PlayerRequestDB, error)
	UpdateStatus(ctx context.Context, gameID, userID uuid.UUID, from, to models.RequestStatus) (bool, error)
}

// JoinService manages the PENDING -> APPROVED/REJECTED/CANCELLED join
// workflow and converts approvals into roster membership.
type JoinService struct {
	gameRead     GameReader
	playerRead   PlayerReader
	playerWrite  PlayerWriter
	requestRead  RequestReader
	requestWrite RequestWriter
	leaderboard  Leaderboard
}

// NewJoinService creates a new JoinService.
func NewJoinService(
	gameRead GameReader,
	playerRead PlayerReader,
	playerWrite PlayerWriter,
	requestRead RequestReader,
	requestWrite RequestWriter,
	leaderboard Leaderboard,
) *JoinService {
	return &JoinService{
		gameRead:     gameRead,
		playerRead:   playerRead,
		playerWrite:  playerWrite,
		requestRead:  requestRead,
		requestWrite: requestWrite,
		leaderboard:  leaderboard,
	}
}

// RequestJoin files a PENDING join request for a WAITING game. A PENDING
// request already on record is an idempotent success; a REJECTED or
// CANCELLED one is reset back to PENDING.
func (s *JoinService) RequestJoin(ctx context.Context, gameID, userID uuid.UUID) (*models.PlayerRequestDB, error) {
	game, err := s.gameRead.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	if game.Status != models.GameStatusWaiting {
		return nil, ErrGameNotWaiting
	}

	req, err := s.requestWrite.UpsertPending(ctx, uuid.New(), gameID, userID)
	if err != nil {
		logger.Log.Errorw("failed to upsert join request", "gameID", gameID, "userID", userID, "error", err)
		return nil, err
	}
	if req != nil {
		return req, nil
	}

	// The guarded upsert wrote nothing: either the request is APPROVED, or
	// the game left WAITING between the status check and the write.
	existing, err := s.requestRead.Get(ctx, gameID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == models.RequestStatusApproved {
		return nil, ErrAlreadyJoined
	}
	return nil, ErrGameNotWaiting
}

// AcceptRequest approves a PENDING request and creates the roster entry.
// Host only, and only while the game is still WAITING; a lingering request
// on a STARTED or COMPLETED game can no longer be approved. A concurrent
// accept losing the compare-and-swap is treated as a no-op success as long
// as the roster entry exists.
func (s *JoinService) AcceptRequest(ctx context.Context, gameID, requesterUserID, targetUserID uuid.UUID) (*models.PlayerRequestDB, error) {
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

	req, err := s.requestRead.Get(ctx, gameID, targetUserID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}

	switch req.Status {
	case models.RequestStatusPending:
		swapped, err := s.requestWrite.UpdateStatus(ctx, gameID, targetUserID, models.RequestStatusPending, models.RequestStatusApproved)
		if err != nil {
			return nil, err
		}
		if !swapped {
			// Lost a race; re-read to see where the request ended up.
			req, err = s.requestRead.Get(ctx, gameID, targetUserID)
			if err != nil {
				return nil, err
			}
			if req == nil || req.Status != models.RequestStatusApproved {
				return nil, ErrRequestNotFound
			}
		}
	case models.RequestStatusApproved:
		// Idempotent accept: fall through to ensure the roster entry exists.
	default:
		return nil, ErrRequestNotFound
	}

	created, err := s.playerWrite.SaveIfAbsent(ctx, uuid.New(), targetUserID, gameID)
	if err != nil {
		logger.Log.Errorw("failed to create roster entry", "gameID", gameID, "userID", targetUserID, "error", err)
		return nil, err
	}
	if !created {
		// The guarded insert wrote nothing: either the player is already on
		// the roster, or the game left WAITING between the check and the write.
		player, err := s.playerRead.Get(ctx, targetUserID, gameID)
		if err != nil {
			return nil, err
		}
		if player == nil {
			return nil, ErrGameNotWaiting
		}
	}

	req.Status = models.RequestStatusApproved
	return req, nil
}

// RejectRequest declines a PENDING request. Host only.
func (s *JoinService) RejectRequest(ctx context.Context, gameID, requesterUserID, targetUserID uuid.UUID) (*models.PlayerRequestDB, error) {
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

	swapped, err := s.requestWrite.UpdateStatus(ctx, gameID, targetUserID, models.RequestStatusPending, models.RequestStatusRejected)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, ErrRequestNotFound
	}

	req, err := s.requestRead.Get(ctx, gameID, targetUserID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	return req, nil
}

// CancelRequest withdraws the caller's own PENDING request. Cancelling an
// APPROVED request is a conflict; leaving the game is the way out of an
// approved roster spot.
func (s *JoinService) CancelRequest(ctx context.Context, gameID, userID uuid.UUID) (*models.PlayerRequestDB, error) {
	req, err := s.requestRead.Get(ctx, gameID, userID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}

	switch req.Status {
	case models.RequestStatusApproved:
		return nil, ErrAlreadyJoined
	case models.RequestStatusPending:
		if _, err := s.requestWrite.UpdateStatus(ctx, gameID, userID, models.RequestStatusPending, models.RequestStatusCancelled); err != nil {
			return nil, err
		}
		req.Status = models.RequestStatusCancelled
	}
	// REJECTED and CANCELLED requests are left as they are.
	return req, nil
}

// LeaveGame removes the caller from the roster, or cancels their PENDING
// request when they never made it onto the roster. Recorded answers survive
// a leave; the forfeited score only disappears from the cached leaderboard.
func (s *JoinService) LeaveGame(ctx context.Context, gameID, userID uuid.UUID) error {
	removed, err := s.playerWrite.Delete(ctx, userID, gameID)
	if err != nil {
		return err
	}

	if removed {
		// Reset the approval so a later re-join starts a fresh request.
		if _, err := s.requestWrite.UpdateStatus(ctx, gameID, userID, models.RequestStatusApproved, models.RequestStatusCancelled); err != nil {
			logger.Log.Warnw("failed to reset approved request on leave", "gameID", gameID, "userID", userID, "error", err)
		}
		if s.leaderboard != nil {
			if err := s.leaderboard.RemovePlayer(ctx, gameID, userID); err != nil {
				logger.Log.Warnw("failed to drop player from leaderboard cache", "gameID", gameID, "userID", userID, "error", err)
			}
		}
		return nil
	}

	swapped, err := s.requestWrite.UpdateStatus(ctx, gameID, userID, models.RequestStatusPending, models.RequestStatusCancelled)
	if err != nil {
		return err
	}
	if !swapped {
		return ErrMembershipNotFound
	}
	return nil
}
