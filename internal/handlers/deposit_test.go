package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lootplay/prize-engine/internal/jwt"
	"github.com/lootplay/prize-engine/internal/models"
)

func TestDepositHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockDepositer, mockTokener *MockDepositTokener)
		expectedStatusCode int
	}{
		{
			name:        "successful deposit",
			requestBody: DepositRequest{Amount: decimal.NewFromInt(100)},
			setupMocks: func(mockSvc *MockDepositer, mockTokener *MockDepositTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().Deposit(gomock.Any(), userID, decimal.NewFromInt(100), false).
					Return(&models.WalletDB{UserID: userID, Balance: decimal.NewFromInt(200)}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:        "demo deposit lands on demo ledger",
			requestBody: DepositRequest{Amount: decimal.NewFromInt(500)},
			setupMocks: func(mockSvc *MockDepositer, mockTokener *MockDepositTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID, Demo: true}, nil)
				mockSvc.EXPECT().Deposit(gomock.Any(), userID, decimal.NewFromInt(500), true).
					Return(&models.WalletDB{UserID: userID, Balance: decimal.NewFromInt(500)}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:        "unauthorized missing token",
			requestBody: DepositRequest{Amount: decimal.NewFromInt(100)},
			setupMocks: func(mockSvc *MockDepositer, mockTokener *MockDepositTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:        "invalid request body",
			requestBody: "invalid-json",
			setupMocks: func(mockSvc *MockDepositer, mockTokener *MockDepositTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "non-positive amount",
			requestBody: DepositRequest{Amount: decimal.NewFromInt(-10)},
			setupMocks: func(mockSvc *MockDepositer, mockTokener *MockDepositTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockDepositer(ctrl)
			mockTokener := NewMockDepositTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			handler := NewDepositHandler(mockSvc, mockTokener)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/wallet/deposit", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatusCode, rec.Code)
		})
	}
}
