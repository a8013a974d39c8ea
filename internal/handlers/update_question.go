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

// QuestionUpdater defines the interface that the service must implement.
type QuestionUpdater interface {
	UpdateQuestion(ctx context.Context, questionID, requesterUserID uuid.UUID, text, explanation string) (*models.QuestionDB, error)
}

// UpdateQuestionRequest represents the JSON body for editing a question
// swagger:model UpdateQuestionRequest
type UpdateQuestionRequest struct {
	// Question text
	// required: true
	Text string `json:"text"`
	// Explanation shown after the game completes
	Explanation string `json:"explanation"`
}

// NewUpdateQuestionHandler returns an HTTP handler for editing a question.
// @Summary Update a question
// @Description Host edits question text or explanation while the game is WAITING.
// @Tags questions
// @Accept json
// @Produce json
// @Param questionId path string true "Question ID"
// @Param updateQuestionRequest body handlers.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} models.QuestionDB "Updated question"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the host"
// @Failure 404 {object} handlers.ErrorResponse "Question not found"
// @Failure 409 {object} handlers.ErrorResponse "Game is not in WAITING"
// @Router /questions/{questionId} [put]
// @Security BearerAuth
func NewUpdateQuestionHandler(svc QuestionUpdater, tokenGetter Tokener) http.HandlerFunc {
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

		questionID, err := uuid.Parse(chi.URLParam(r, "questionId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid question id"})
			return
		}

		var req UpdateQuestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		question, err := svc.UpdateQuestion(ctx, questionID, claims.UserID, req.Text, req.Explanation)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQuestionNotFound), errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Question not found"})
			case errors.Is(err, services.ErrNotHost):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Only the host may edit questions"})
			case errors.Is(err, services.ErrGameNotWaiting):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game has already started"})
			default:
				logger.Log.Errorw("failed to update question", "questionID", questionID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(question)
	}
}
