package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/logger"
	"github.com/mcqbattle/backend/internal/models"
	"github.com/mcqbattle/backend/internal/services"
)

// RequestAccepter defines the interface that the service must implement.
type RequestAccepter interface {
	AcceptRequest(ctx context.Context, gameID, requesterUserID, targetUserID uuid.UUID) (*models.PlayerRequestDB, error)
}

// AcceptRequestRequest represents the JSON body for approving a join request
// swagger:model AcceptRequestRequest
type AcceptRequestRequest struct {
	// Game identifier
	// required: true
	GameID uuid.UUID `json:"gameId"`
	// User whose request is being approved
	// required: true
	PlayerID uuid.UUID `json:"playerId"`
}

// NewAcceptRequestHandler returns an HTTP handler for approving a join request.
// @Summary Approve a join request
// @Description Host approves a PENDING request, enrolling the player on the roster with score 0. Approving an already APPROVED request is an idempotent success.
// @Tags games
// @Accept json
// @Produce json
// @Param acceptRequestRequest body handlers.AcceptRequestRequest true "Request to approve"
// @Success 200 {object} models.PlayerRequestDB "Approved request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the host"
// @Failure 404 {object} handlers.ErrorResponse "Game or request not found"
// @Failure 409 {object} handlers.ErrorResponse "Game is no longer accepting players"
// @Router /games/accept [post]
// @Security BearerAuth
func NewAcceptRequestHandler(svc RequestAccepter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}
		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req AcceptRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == uuid.Nil || req.PlayerID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		request, err := svc.AcceptRequest(ctx, req.GameID, claims.UserID, req.PlayerID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game not found"})
			case errors.Is(err, services.ErrRequestNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Join request not found"})
			case errors.Is(err, services.ErrNotHost):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Only the host may approve requests"})
			case errors.Is(err, services.ErrGameNotWaiting):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game is no longer accepting players"})
			default:
				logger.Log.Errorw("failed to accept join request", "gameID", req.GameID, "playerID", req.PlayerID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(request)
	}
}
