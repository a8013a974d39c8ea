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

// OptionUpdater defines the interface that the service must implement.
type OptionUpdater interface {
	UpdateOption(ctx context.Context, optionID, requesterUserID uuid.UUID, text string, isCorrect bool) (*models.OptionDB, error)
}

// UpdateOptionRequest represents the JSON body for editing an option
// swagger:model UpdateOptionRequest
type UpdateOptionRequest struct {
	// Option text
	// required: true
	Option string `json:"option"`
	// Whether this is the correct option
	IsCorrect bool `json:"isCorrect"`
}

// NewUpdateOptionHandler returns an HTTP handler for editing an option.
// @Summary Update an option
// @Description Host edits an option of a WAITING game. Edits that would leave the question with more or fewer than one correct option are rejected.
// @Tags options
// @Accept json
// @Produce json
// @Param optionId path string true "Option ID"
// @Param updateOptionRequest body handlers.UpdateOptionRequest true "Fields to update"
// @Success 200 {object} models.OptionDB "Updated option"
// @Failure 400 {object} handlers.ErrorResponse "Would break the single-correct-option rule"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the host"
// @Failure 404 {object} handlers.ErrorResponse "Option not found"
// @Failure 409 {object} handlers.ErrorResponse "Game is not in WAITING"
// @Router /options/{optionId} [put]
// @Security BearerAuth
func NewUpdateOptionHandler(svc OptionUpdater, tokenGetter Tokener) http.HandlerFunc {
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

		optionID, err := uuid.Parse(chi.URLParam(r, "optionId"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid option id"})
			return
		}

		var req UpdateOptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Option) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		option, err := svc.UpdateOption(ctx, optionID, claims.UserID, req.Option, req.IsCorrect)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOptionNotFound), errors.Is(err, services.ErrQuestionNotFound), errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Option not found"})
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
				logger.Log.Errorw("failed to update option", "optionID", optionID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(option)
	}
}
