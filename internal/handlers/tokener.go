package handlers

import (
	"context"
	"net/http"

	"github.com/mcqbattle/backend/internal/jwt"
)

// Tokener extracts the caller's identity from the request. Every protected
// handler resolves the acting user exclusively through the bearer token.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ErrorResponse is the JSON error body shared by all endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}
