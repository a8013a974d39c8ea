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

// GameCreator defines the interface that the service must implement.
type GameCreator interface {
	CreateGame(ctx context.Context, hostUserID uuid.UUID, title string, questions []services.QuestionInput) (*models.GameDB, error)
}

// CreateGameRequest represents the JSON body for creating a game
// swagger:model CreateGameRequest
type CreateGameRequest struct {
	// Game title
	// required: true
	// default: Friday quiz
	Title string `json:"title"`

	// Initial questions, each with at least two options and exactly one correct
	Questions []services.QuestionInput `json:"questions"`
}

// NewCreateGameHandler returns an HTTP handler for creating a game.
// @Summary Create a game
// @Description Creates a new game in WAITING status with its initial questions. The caller becomes the host and joins the roster.
// @Tags games
// @Accept json
// @Produce json
// @Param createGameRequest body handlers.CreateGameRequest true "Create game request"
// @Success 201 {object} models.GameDB "Game created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid question or option set"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /games/create [post]
// @Security BearerAuth
func NewCreateGameHandler(svc GameCreator, tokenGetter Tokener) http.HandlerFunc {
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

		var req CreateGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.Title == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Title is required"})
			return
		}

		game, err := svc.CreateGame(ctx, claims.UserID, req.Title, req.Questions)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTooFewOptions), errors.Is(err, services.ErrCorrectCount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("failed to create game", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(game)
	}
}
