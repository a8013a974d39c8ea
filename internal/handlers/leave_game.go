package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/logger"
	"github.com/mcqbattle/backend/internal/services"
)

// GameLeaver defines the interface that the service must implement.
type GameLeaver interface {
	LeaveGame(ctx context.Context, gameID, userID uuid.UUID) error
}

// LeaveGameRequest represents the JSON body for leaving a game
// swagger:model LeaveGameRequest
type LeaveGameRequest struct {
	// Game identifier
	// required: true
	GameID uuid.UUID `json:"gameId"`
}

// NewLeaveGameHandler returns an HTTP handler for leaving a game.
// @Summary Leave a game
// @Description Removes the caller from the roster, or withdraws their pending join request.
// @Tags games
// @Accept json
// @Param leaveGameRequest body handlers.LeaveGameRequest true "Game to leave"
// @Success 204 "Left the game"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Caller has no membership in the game"
// @Router /games/leave [post]
// @Security BearerAuth
func NewLeaveGameHandler(svc GameLeaver, tokenGetter Tokener) http.HandlerFunc {
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

		var req LeaveGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.LeaveGame(ctx, req.GameID, claims.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrMembershipNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "No membership in this game"})
			default:
				logger.Log.Errorw("failed to leave game", "gameID", req.GameID, "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
