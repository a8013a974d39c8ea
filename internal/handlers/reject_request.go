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

// RequestRejecter defines the interface that the service must implement.
type RequestRejecter interface {
	RejectRequest(ctx context.Context, gameID, requesterUserID, targetUserID uuid.UUID) (*models.PlayerRequestDB, error)
}

// RejectRequestRequest represents the JSON body for rejecting a join request
// swagger:model RejectRequestRequest
type RejectRequestRequest struct {
	// Game identifier
	// required: true
	GameID uuid.UUID `json:"gameId"`
	// User whose request is being rejected
	// required: true
	PlayerID uuid.UUID `json:"playerId"`
}

// NewRejectRequestHandler returns an HTTP handler for rejecting a join request.
// @Summary Reject a join request
// @Description Host rejects a PENDING request. The requester may file again later.
// @Tags games
// @Accept json
// @Produce json
// @Param rejectRequestRequest body handlers.RejectRequestRequest true "Request to reject"
// @Success 200 {object} models.PlayerRequestDB "Rejected request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the host"
// @Failure 404 {object} handlers.ErrorResponse "Game or pending request not found"
// @Router /games/reject [post]
// @Security BearerAuth
func NewRejectRequestHandler(svc RequestRejecter, tokenGetter Tokener) http.HandlerFunc {
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

		var req RejectRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == uuid.Nil || req.PlayerID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		request, err := svc.RejectRequest(ctx, req.GameID, claims.UserID, req.PlayerID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game not found"})
			case errors.Is(err, services.ErrRequestNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Pending join request not found"})
			case errors.Is(err, services.ErrNotHost):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Only the host may reject requests"})
			default:
				logger.Log.Errorw("failed to reject join request", "gameID", req.GameID, "playerID", req.PlayerID, "error", err)
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
