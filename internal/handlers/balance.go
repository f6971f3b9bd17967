package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/jwt"
	"github.com/lootplay/prize-engine/internal/logger"
)

// BalanceTokener defines only the methods needed by this handler.
type BalanceTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// BalanceReader defines the interface that the wallet service must implement.
type BalanceReader interface {
	GetBalance(ctx context.Context, userID uuid.UUID, demo bool) (decimal.Decimal, error)
}

// BalanceResponse represents both ledger balances of the user
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Real-money balance
	RealBalance decimal.Decimal `json:"real_balance"`

	// Demo-ledger balance
	DemoBalance decimal.Decimal `json:"demo_balance"`
}

// NewBalanceHandler returns an HTTP handler reading both wallet balances.
// @Summary Get balances
// @Description Returns the user's real and demo balances. A user who never deposited reads as zero.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Balances"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal server error"
// @Router /balance [get]
// @Security BearerAuth
func NewBalanceHandler(
	svc BalanceReader,
	tokenGetter BalanceTokener,
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

		real, err := svc.GetBalance(ctx, claims.UserID, false)
		if err != nil {
			logger.Log.Errorw("failed to get real balance", "userID", claims.UserID, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		demo, err := svc.GetBalance(ctx, claims.UserID, true)
		if err != nil {
			logger.Log.Errorw("failed to get demo balance", "userID", claims.UserID, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{RealBalance: real, DemoBalance: demo})
	}
}
