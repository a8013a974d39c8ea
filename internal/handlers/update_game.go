package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/logger"
	"github.com/mcqbattle/backend/internal/models"
	"github.com/mcqbattle/backend/internal/services"
)

// GameUpdater defines the interface that the service must implement.
type GameUpdater interface {
	UpdateTitle(ctx context.Context, gameID, requesterUserID uuid.UUID, title string) (*models.GameDB, error)
}

// UpdateGameRequest represents the JSON body for updating a game
// swagger:model UpdateGameRequest
type UpdateGameRequest struct {
	// New title
	// required: true
	Title string `json:"title"`
}

// NewUpdateGameHandler returns an HTTP handler for updating game fields.
// @Summary Update a game
// @Description Host-only title update.
// @Tags games
// @Accept json
// @Produce json
// @Param gameId path string true "Game ID"
// @Param updateGameRequest body handlers.UpdateGameRequest true "Fields to update"
// @Success 200 {object} models.GameDB "Updated game"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the host"
// @Failure 404 {object} handlers.ErrorResponse "Game not found"
// @Router /games/{gameId} [put]
// @Security BearerAuth
func NewUpdateGameHandler(svc GameUpdater, tokenGetter Tokener) http.HandlerFunc {
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

		var req UpdateGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Title) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		game, err := svc.UpdateTitle(ctx, gameID, claims.UserID, req.Title)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game not found"})
			case errors.Is(err, services.ErrNotHost):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Only the host may update the game"})
			default:
				logger.Log.Errorw("failed to update game", "gameID", gameID, "error", err)
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
