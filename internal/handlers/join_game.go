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

// GameJoiner defines the interface that the service must implement.
type GameJoiner interface {
	RequestJoin(ctx context.Context, gameID, userID uuid.UUID) (*models.PlayerRequestDB, error)
}

// JoinGameRequest represents the JSON body for requesting to join a game
// swagger:model JoinGameRequest
type JoinGameRequest struct {
	// Game identifier
	// required: true
	GameID uuid.UUID `json:"gameId"`
}

// NewJoinGameHandler returns an HTTP handler for filing a join request.
// @Summary Request to join a game
// @Description Files a PENDING join request for a WAITING game. A request already pending is an idempotent success; a rejected or cancelled one is reset to PENDING.
// @Tags games
// @Accept json
// @Produce json
// @Param joinGameRequest body handlers.JoinGameRequest true "Join request"
// @Success 200 {object} models.PlayerRequestDB "Join request on record"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Game not found"
// @Failure 409 {object} handlers.ErrorResponse "Game already started / already joined"
// @Router /games/join [post]
// @Security BearerAuth
func NewJoinGameHandler(svc GameJoiner, tokenGetter Tokener) http.HandlerFunc {
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

		var req JoinGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		request, err := svc.RequestJoin(ctx, req.GameID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game not found"})
			case errors.Is(err, services.ErrGameNotWaiting):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game is no longer accepting join requests"})
			case errors.Is(err, services.ErrAlreadyJoined):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Already joined"})
			default:
				logger.Log.Errorw("failed to request join", "gameID", req.GameID, "userID", claims.UserID, "error", err)
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
