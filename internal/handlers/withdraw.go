package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/jwt"
	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
	"github.com/lootplay/prize-engine/internal/services"
)

// WithdrawTokener defines only the methods needed by this handler.
type WithdrawTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Withdrawer defines the interface that the wallet service must implement.
type Withdrawer interface {
	Withdraw(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, demo bool) (*models.WalletDB, error)
}

// WithdrawRequest represents the JSON body for a withdrawal
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to debit
	// required: true
	// default: 50.00
	Amount decimal.Decimal `json:"amount"`
}

// WithdrawResponse represents the result of a withdrawal
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// Confirmation message
	Message string `json:"message"`

	// Balance after the withdrawal
	NewBalance decimal.Decimal `json:"new_balance"`
}

// NewWithdrawHandler returns an HTTP handler debiting the user's wallet.
// @Summary Withdraw funds
// @Description Debits the authenticated user's wallet. Fails without mutation when the balance does not cover the amount.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} handlers.WithdrawResponse "Withdrawal successful"
// @Failure 400 {string} string "Invalid request or insufficient funds"
// @Failure 401 {string} string "Unauthorized"
// @Router /wallet/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(
	svc Withdrawer,
	tokenGetter WithdrawTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode withdraw request", "error", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if !req.Amount.IsPositive() {
			logger.Log.Warnw("invalid withdraw amount", "amount", req.Amount)
			http.Error(w, "Amount must be positive", http.StatusBadRequest)
			return
		}

		wallet, err := svc.Withdraw(ctx, claims.UserID, req.Amount, claims.Demo)
		if err != nil {
			if errors.Is(err, services.ErrInsufficientFunds) {
				http.Error(w, "Insufficient funds", http.StatusBadRequest)
				return
			}
			logger.Log.Errorw("failed to withdraw", "userID", claims.UserID, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WithdrawResponse{
			Message:    "Withdrawal successful",
			NewBalance: wallet.Balance,
		})
	}
}
