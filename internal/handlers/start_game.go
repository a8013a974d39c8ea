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

// GameStarter defines the interface that the service must implement.
type GameStarter interface {
	StartGame(ctx context.Context, gameID, requesterUserID uuid.UUID) (*models.GameDB, error)
}

// StartGameRequest represents the JSON body for starting a game
// swagger:model StartGameRequest
type StartGameRequest struct {
	// Game identifier
	// required: true
	GameID uuid.UUID `json:"gameId"`
}

// NewStartGameHandler returns an HTTP handler for starting a game.
// @Summary Start a game
// @Description Host moves a WAITING game with at least one player and one question to STARTED.
// @Tags games
// @Accept json
// @Produce json
// @Param startGameRequest body handlers.StartGameRequest true "Game to start"
// @Success 200 {object} models.GameDB "Started game"
// @Failure 400 {object} handlers.ErrorResponse "No players or no questions"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the host"
// @Failure 404 {object} handlers.ErrorResponse "Game not found"
// @Failure 409 {object} handlers.ErrorResponse "Game is not in WAITING"
// @Router /games/start [post]
// @Security BearerAuth
func NewStartGameHandler(svc GameStarter, tokenGetter Tokener) http.HandlerFunc {
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

		var req StartGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		game, err := svc.StartGame(ctx, req.GameID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game not found"})
			case errors.Is(err, services.ErrNotHost):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Only the host may start the game"})
			case errors.Is(err, services.ErrNoPlayers), errors.Is(err, services.ErrNoQuestions):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrGameNotWaiting):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game has already started"})
			default:
				logger.Log.Errorw("failed to start game", "gameID", req.GameID, "error", err)
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
