package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/logger"
	"github.com/mcqbattle/backend/internal/models"
)

// GameLister defines the interface that the service must implement.
type GameLister interface {
	ListGames(ctx context.Context, userID uuid.UUID) ([]models.GameDB, error)
}

// NewListGamesHandler returns an HTTP handler listing the caller's games.
// @Summary List games for the current user
// @Description Returns every game the caller hosts, plays in, or has requested to join.
// @Tags games
// @Produce json
// @Success 200 {array} models.GameDB "Games"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /games [get]
// @Security BearerAuth
func NewListGamesHandler(svc GameLister, tokenGetter Tokener) http.HandlerFunc {
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

		games, err := svc.ListGames(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list games", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(games)
	}
}
