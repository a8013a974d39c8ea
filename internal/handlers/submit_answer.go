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

// AnswerSubmitter defines the interface that the service must implement.
type AnswerSubmitter interface {
	SubmitAnswer(ctx context.Context, gameID, userID, questionID, optionID uuid.UUID) (correct bool, score int, err error)
}

// SubmitAnswerRequest represents the JSON body for submitting an answer
// swagger:model SubmitAnswerRequest
type SubmitAnswerRequest struct {
	// Game identifier
	// required: true
	GameID uuid.UUID `json:"gameId"`
	// Question identifier
	// required: true
	QuestionID uuid.UUID `json:"questionId"`
	// Chosen option identifier
	// required: true
	OptionID uuid.UUID `json:"optionId"`
}

// SubmitAnswerResponse represents the scoring outcome
// swagger:model SubmitAnswerResponse
type SubmitAnswerResponse struct {
	// Whether the chosen option was the correct one
	Correct bool `json:"correct"`
	// Player score after this submission
	Score int `json:"score"`
}

// NewSubmitAnswerHandler returns an HTTP handler for submitting an answer.
// @Summary Submit an answer
// @Description Records a roster player's single answer to a question of a STARTED game and awards points if correct.
// @Tags answers
// @Accept json
// @Produce json
// @Param submitAnswerRequest body handlers.SubmitAnswerRequest true "Answer"
// @Success 200 {object} handlers.SubmitAnswerResponse "Scoring outcome"
// @Failure 400 {object} handlers.ErrorResponse "Question or option does not belong to the game"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not on the roster"
// @Failure 404 {object} handlers.ErrorResponse "Game, question or option not found"
// @Failure 409 {object} handlers.ErrorResponse "Game not active / question already answered"
// @Router /answers/submit [post]
// @Security BearerAuth
func NewSubmitAnswerHandler(svc AnswerSubmitter, tokenGetter Tokener) http.HandlerFunc {
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

		var req SubmitAnswerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
			req.GameID == uuid.Nil || req.QuestionID == uuid.Nil || req.OptionID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		correct, score, err := svc.SubmitAnswer(ctx, req.GameID, claims.UserID, req.QuestionID, req.OptionID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game not found"})
			case errors.Is(err, services.ErrQuestionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Question not found"})
			case errors.Is(err, services.ErrOptionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Option not found"})
			case errors.Is(err, services.ErrAnswerMismatch):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Question or option does not belong to the game"})
			case errors.Is(err, services.ErrNotPlayer):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Caller is not on the roster"})
			case errors.Is(err, services.ErrGameNotStarted):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game is not active"})
			case errors.Is(err, services.ErrAlreadyAnswered):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Question already answered"})
			default:
				logger.Log.Errorw("failed to submit answer",
					"gameID", req.GameID, "questionID", req.QuestionID, "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SubmitAnswerResponse{Correct: correct, Score: score})
	}
}
