package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/logger"
	"github.com/mcqbattle/backend/internal/services"
)

// GameGetter defines the interface that the service must implement.
type GameGetter interface {
	GetGame(ctx context.Context, gameID, requesterUserID uuid.UUID) (*services.GameDetail, error)
}

// NewGetGameHandler returns an HTTP handler for fetching a single game.
// @Summary Get a game
// @Description Returns the game with its roster, questions and leaderboard. Option correctness and explanations are visible only to the host or once the game is COMPLETED.
// @Tags games
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} services.GameDetail "Game detail"
// @Failure 400 {object} handlers.ErrorResponse "Invalid game id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Game not found"
// @Router /games/{gameId} [get]
// @Security BearerAuth
func NewGetGameHandler(svc GameGetter, tokenGetter Tokener) http.HandlerFunc {
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

		gameID, err := uuid.Parse(chi.URLParam(r, "gameId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid game id"})
			return
		}

		detail, err := svc.GetGame(ctx, gameID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game not found"})
			default:
				logger.Log.Errorw("failed to get game", "gameID", gameID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}
