package handlers

import (
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/jwt"
)

// authorizedTokener returns a Tokener mock that resolves every request to the
// given user.
func authorizedTokener(ctrl *gomock.Controller, userID uuid.UUID) *MockTokener {
	m := NewMockTokener(ctrl)
	m.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("token", nil).
		AnyTimes()
	m.EXPECT().
		GetClaims(gomock.Any(), "token").
		Return(&jwt.Claims{UserID: userID}, nil).
		AnyTimes()
	return m
}
