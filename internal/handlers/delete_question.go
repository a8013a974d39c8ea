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

// QuestionDeleter defines the interface that the service must implement.
type QuestionDeleter interface {
	DeleteQuestion(ctx context.Context, questionID, requesterUserID uuid.UUID) error
}

// NewDeleteQuestionHandler returns an HTTP handler for removing a question.
// @Summary Delete a question
// @Description Host removes a question and its options while the game is WAITING.
// @Tags questions
// @Param questionId path string true "Question ID"
// @Success 204 "Question deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the host"
// @Failure 404 {object} handlers.ErrorResponse "Question not found"
// @Failure 409 {object} handlers.ErrorResponse "Game is not in WAITING"
// @Router /questions/{questionId} [delete]
// @Security BearerAuth
func NewDeleteQuestionHandler(svc QuestionDeleter, tokenGetter Tokener) http.HandlerFunc {
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

		if err := svc.DeleteQuestion(ctx, questionID, claims.UserID); err != nil {
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
				logger.Log.Errorw("failed to delete question", "questionID", questionID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
