package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/logger"
	"github.com/mcqbattle/backend/internal/models"
	"github.com/mcqbattle/backend/internal/services"
)

// OptionCreator defines the interface that the service must implement.
type OptionCreator interface {
	CreateOption(ctx context.Context, questionID, requesterUserID uuid.UUID, text string, isCorrect bool) (*models.OptionDB, error)
}

// CreateOptionRequest represents the JSON body for adding an option
// swagger:model CreateOptionRequest
type CreateOptionRequest struct {
	// Option text
	// required: true
	Option string `json:"option"`
	// Whether this is the correct option
	IsCorrect bool `json:"isCorrect"`
	// Owning question identifier
	// required: true
	QuestionID uuid.UUID `json:"questionId"`
	// Owning game identifier
	GameID uuid.UUID `json:"gameId"`
}

// NewCreateOptionHandler returns an HTTP handler for adding an option to a question.
// @Summary Add an option
// @Description Host adds an incorrect option to a question of a WAITING game. Adding a second correct option is rejected.
// @Tags options
// @Accept json
// @Produce json
// @Param createOptionRequest body handlers.CreateOptionRequest true "Option"
// @Success 201 {object} models.OptionDB "Created option"
// @Failure 400 {object} handlers.ErrorResponse "Would break the single-correct-option rule"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the host"
// @Failure 404 {object} handlers.ErrorResponse "Question not found"
// @Failure 409 {object} handlers.ErrorResponse "Game is not in WAITING"
// @Router /options/create [post]
// @Security BearerAuth
func NewCreateOptionHandler(svc OptionCreator, tokenGetter Tokener) http.HandlerFunc {
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

		var req CreateOptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
			req.QuestionID == uuid.Nil || strings.TrimSpace(req.Option) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		option, err := svc.CreateOption(ctx, req.QuestionID, claims.UserID, req.Option, req.IsCorrect)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQuestionNotFound), errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Question not found"})
			case errors.Is(err, services.ErrNotHost):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Only the host may edit options"})
			case errors.Is(err, services.ErrCorrectCount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrGameNotWaiting):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game has already started"})
			default:
				logger.Log.Errorw("failed to create option", "questionID", req.QuestionID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(option)
	}
}
