package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/logger"
	"github.com/mcqbattle/backend/internal/services"
)

// QuestionCreator defines the interface that the service must implement.
type QuestionCreator interface {
	CreateQuestion(ctx context.Context, gameID, requesterUserID uuid.UUID, text, explanation string, options []services.OptionInput) (*services.QuestionWithOptions, error)
}

// CreateQuestionRequest represents the JSON body for adding a question
// swagger:model CreateQuestionRequest
type CreateQuestionRequest struct {
	// Game identifier
	// required: true
	GameID uuid.UUID `json:"gameId"`
	// Question text
	// required: true
	Text string `json:"text"`
	// Explanation shown after the game completes
	Explanation string `json:"explanation"`
	// Options, at least two with exactly one correct
	// required: true
	Options []services.OptionInput `json:"options"`
}

// NewCreateQuestionHandler returns an HTTP handler for adding a question to a game.
// @Summary Add a question
// @Description Host adds a question with its options to a WAITING game.
// @Tags questions
// @Accept json
// @Produce json
// @Param createQuestionRequest body handlers.CreateQuestionRequest true "Question with options"
// @Success 201 {object} services.QuestionWithOptions "Created question"
// @Failure 400 {object} handlers.ErrorResponse "Invalid question payload"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the host"
// @Failure 404 {object} handlers.ErrorResponse "Game not found"
// @Failure 409 {object} handlers.ErrorResponse "Game is not in WAITING"
// @Router /questions/create [post]
// @Security BearerAuth
func NewCreateQuestionHandler(svc QuestionCreator, tokenGetter Tokener) http.HandlerFunc {
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

		var req CreateQuestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
			req.GameID == uuid.Nil || strings.TrimSpace(req.Text) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		question, err := svc.CreateQuestion(ctx, req.GameID, claims.UserID, req.Text, req.Explanation, req.Options)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game not found"})
			case errors.Is(err, services.ErrNotHost):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Only the host may edit questions"})
			case errors.Is(err, services.ErrTooFewOptions), errors.Is(err, services.ErrCorrectCount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrGameNotWaiting):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game has already started"})
			default:
				logger.Log.Errorw("failed to create question", "gameID", req.GameID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(question)
	}
}
