package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mcqbattle/backend/internal/models"
	"github.com/mcqbattle/backend/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAcceptRequestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hostID := uuid.New()
	playerID := uuid.New()
	gameID := uuid.New()
	mockSvc := NewMockRequestAccepter(ctrl)
	tokener := authorizedTokener(ctrl, hostID)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "success",
			inputBody: AcceptRequestRequest{GameID: gameID, PlayerID: playerID},
			mockSetup: func() {
				mockSvc.EXPECT().
					AcceptRequest(gomock.Any(), gameID, hostID, playerID).
					Return(&models.PlayerRequestDB{GameID: gameID, UserID: playerID, Status: models.RequestStatusApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing player id",
			inputBody:    AcceptRequestRequest{GameID: gameID},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "not the host",
			inputBody: AcceptRequestRequest{GameID: gameID, PlayerID: playerID},
			mockSetup: func() {
				mockSvc.EXPECT().
					AcceptRequest(gomock.Any(), gameID, hostID, playerID).
					Return(nil, services.ErrNotHost)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:      "request not found",
			inputBody: AcceptRequestRequest{GameID: gameID, PlayerID: playerID},
			mockSetup: func() {
				mockSvc.EXPECT().
					AcceptRequest(gomock.Any(), gameID, hostID, playerID).
					Return(nil, services.ErrRequestNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			bodyBytes, _ := json.Marshal(tt.inputBody)
			req := httptest.NewRequest(http.MethodPost, "/games/accept", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewAcceptRequestHandler(mockSvc, tokener)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var request models.PlayerRequestDB
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &request))
				assert.Equal(t, models.RequestStatusApproved, request.Status)
			}
		})
	}
}
