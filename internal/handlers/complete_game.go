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

// GameCompleter defines the interface that the service must implement.
type GameCompleter interface {
	CompleteGame(ctx context.Context, gameID, requesterUserID uuid.UUID) (*models.GameDB, error)
}

// CompleteGameRequest represents the JSON body for completing a game
// swagger:model CompleteGameRequest
type CompleteGameRequest struct {
	// Game identifier
	// required: true
	GameID uuid.UUID `json:"gameId"`
}

// NewCompleteGameHandler returns an HTTP handler for completing a game.
// @Summary Complete a game
// @Description Host moves a STARTED game to COMPLETED, freezing scores.
// @Tags games
// @Accept json
// @Produce json
// @Param completeGameRequest body handlers.CompleteGameRequest true "Game to complete"
// @Success 200 {object} models.GameDB "Completed game"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the host"
// @Failure 404 {object} handlers.ErrorResponse "Game not found"
// @Failure 409 {object} handlers.ErrorResponse "Game is not in STARTED"
// @Router /games/complete [post]
// @Security BearerAuth
func NewCompleteGameHandler(svc GameCompleter, tokenGetter Tokener) http.HandlerFunc {
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

		var req CompleteGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		game, err := svc.CompleteGame(ctx, req.GameID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game not found"})
			case errors.Is(err, services.ErrNotHost):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Only the host may complete the game"})
			case errors.Is(err, services.ErrGameNotStarted):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game is not active"})
			default:
				logger.Log.Errorw("failed to complete game", "gameID", req.GameID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(game)
	}
}
