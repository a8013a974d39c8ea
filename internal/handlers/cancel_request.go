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

// RequestCanceller defines the interface that the service must implement.
type RequestCanceller interface {
	CancelRequest(ctx context.Context, gameID, userID uuid.UUID) (*models.PlayerRequestDB, error)
}

// CancelRequestRequest represents the JSON body for cancelling a join request
// swagger:model CancelRequestRequest
type CancelRequestRequest struct {
	// Game identifier
	// required: true
	GameID uuid.UUID `json:"gameId"`
}

// NewCancelRequestHandler returns an HTTP handler for cancelling one's own join request.
// @Summary Cancel a join request
// @Description Requester withdraws their PENDING request. Cancelling an already settled request is an idempotent success; an APPROVED one must be left via /games/leave instead.
// @Tags games
// @Accept json
// @Produce json
// @Param cancelRequestRequest body handlers.CancelRequestRequest true "Request to cancel"
// @Success 200 {object} models.PlayerRequestDB "Request after cancellation"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Failure 409 {object} handlers.ErrorResponse "Request already approved"
// @Router /games/cancel [post]
// @Security BearerAuth
func NewCancelRequestHandler(svc RequestCanceller, tokenGetter Tokener) http.HandlerFunc {
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

		var req CancelRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		request, err := svc.CancelRequest(ctx, req.GameID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRequestNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Join request not found"})
			case errors.Is(err, services.ErrAlreadyJoined):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Request already approved, leave the game instead"})
			default:
				logger.Log.Errorw("failed to cancel join request", "gameID", req.GameID, "userID", claims.UserID, "error", err)
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
