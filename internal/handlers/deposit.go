package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/jwt"
	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

// DepositTokener defines only the methods needed by this handler.
type DepositTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Depositer defines the interface that the wallet service must implement.
type Depositer interface {
	Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, demo bool) (*models.WalletDB, error)
}

// DepositRequest represents the JSON body for a deposit
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to credit
	// required: true
	// default: 100.00
	Amount decimal.Decimal `json:"amount"`
}

// DepositResponse represents the result of a deposit
// swagger:model DepositResponse
type DepositResponse struct {
	// Confirmation message
	Message string `json:"message"`

	// Balance after the deposit
	NewBalance decimal.Decimal `json:"new_balance"`
}

// NewDepositHandler returns an HTTP handler crediting the user's wallet.
// @Summary Deposit funds
// @Description Credits the authenticated user's wallet. Demo sessions credit the demo ledger.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 200 {object} handlers.DepositResponse "Deposit successful"
// @Failure 400 {string} string "Invalid request"
// @Failure 401 {string} string "Unauthorized"
// @Router /wallet/deposit [post]
// @Security BearerAuth
func NewDepositHandler(
	svc Depositer,
	tokenGetter DepositTokener,
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

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode deposit request", "error", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if !req.Amount.IsPositive() {
			logger.Log.Warnw("invalid deposit amount", "amount", req.Amount)
			http.Error(w, "Amount must be positive", http.StatusBadRequest)
			return
		}

		wallet, err := svc.Deposit(ctx, claims.UserID, req.Amount, claims.Demo)
		if err != nil {
			logger.Log.Errorw("failed to deposit", "userID", claims.UserID, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DepositResponse{
			Message:    "Deposit successful",
			NewBalance: wallet.Balance,
		})
	}
}
