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

// OptionDeleter defines the interface that the service must implement.
type OptionDeleter interface {
	DeleteOption(ctx context.Context, optionID, requesterUserID uuid.UUID) error
}

// NewDeleteOptionHandler returns an HTTP handler for removing an option.
// @Summary Delete an option
// @Description Host removes an incorrect option while the game is WAITING, as long as at least two options remain.
// @Tags options
// @Param optionId path string true "Option ID"
// @Success 204 "Option deleted"
// @Failure 400 {object} handlers.ErrorResponse "Would break the question's option invariants"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the host"
// @Failure 404 {object} handlers.ErrorResponse "Option not found"
// @Failure 409 {object} handlers.ErrorResponse "Game is not in WAITING"
// @Router /options/{optionId} [delete]
// @Security BearerAuth
func NewDeleteOptionHandler(svc OptionDeleter, tokenGetter Tokener) http.HandlerFunc {
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

		if err := svc.DeleteOption(ctx, optionID, claims.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrOptionNotFound), errors.Is(err, services.ErrQuestionNotFound), errors.Is(err, services.ErrGameNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Option not found"})
			case errors.Is(err, services.ErrNotHost):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Only the host may edit options"})
			case errors.Is(err, services.ErrTooFewOptions), errors.Is(err, services.ErrCorrectCount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrGameNotWaiting):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Game has already started"})
			default:
				logger.Log.Errorw("failed to delete option", "optionID", optionID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
