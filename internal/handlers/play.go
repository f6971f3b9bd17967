package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/draw"
	"github.com/lootplay/prize-engine/internal/jwt"
	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
	"github.com/lootplay/prize-engine/internal/services"
)

// PlayTokener defines only the methods needed by this handler.
type PlayTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// PlayExecutor defines the interface that the orchestrator must implement.
type PlayExecutor interface {
	Play(ctx context.Context, userID uuid.UUID, demo bool, req services.PlayRequest) (*services.PlayResult, error)
}

// PlayRequest represents the JSON body for submitting a play
// swagger:model PlayRequest
type PlayRequest struct {
	// Product to play
	// required: true
	// default: chest
	ProductType string `json:"product_type"`

	// Amount to wager
	// required: true
	// default: 5.00
	BetAmount decimal.Decimal `json:"bet_amount"`

	// Client-supplied idempotency token. Strongly recommended: a retry with
	// the same token returns the original outcome instead of charging again.
	ClientTxID string `json:"client_tx_id,omitempty"`
}

// PlayResponse represents the settled outcome of a play
// swagger:model PlayResponse
type PlayResponse struct {
	// ok, duplicate, or error. duplicate is a success: it carries the same
	// outcome the original request produced.
	Status string `json:"status"`

	// Amount credited as prize, zero when nothing was won
	PrizeAmount decimal.Decimal `json:"prize_amount"`

	// Name of the item won, empty for a no-prize outcome
	ItemWon string `json:"item_won,omitempty"`

	// Observed payout ratio of the product over the trailing day
	RTPAfter decimal.Decimal `json:"rtp_after"`

	// Balance after the play settled
	WalletBalance decimal.Decimal `json:"wallet_balance"`

	// Human-readable detail, set on errors
	Message string `json:"message,omitempty"`
}

// NewPlayHandler returns an HTTP handler executing one paid play.
// @Summary Play a product
// @Description Debits the bet, draws a prize, credits it, and records the round atomically. Retries with the same client_tx_id return the original outcome.
// @Tags play
// @Accept json
// @Produce json
// @Param request body handlers.PlayRequest true "Play Request"
// @Success 200 {object} handlers.PlayResponse "Settled outcome"
// @Failure 400 {object} handlers.PlayResponse "Invalid request or insufficient funds"
// @Failure 401 {object} handlers.PlayResponse "Unauthorized"
// @Router /play [post]
// @Security BearerAuth
func NewPlayHandler(
	svc PlayExecutor,
	tokenGetter PlayTokener,
) http.HandlerFunc {
	validProducts := map[string]struct{}{
		models.ProductChest:   {},
		models.ProductScratch: {},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PlayResponse{Status: "error", Message: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PlayResponse{Status: "error", Message: "Unauthorized"})
			return
		}

		var req PlayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode play request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PlayResponse{Status: "error", Message: "Invalid request body"})
			return
		}

		if _, ok := validProducts[req.ProductType]; !ok {
			logger.Log.Warnw("invalid product type", "product", req.ProductType)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PlayResponse{Status: "error", Message: "Unknown product type"})
			return
		}
		if !req.BetAmount.IsPositive() {
			logger.Log.Warnw("invalid bet amount", "amount", req.BetAmount)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PlayResponse{Status: "error", Message: "Bet amount must be positive"})
			return
		}

		result, err := svc.Play(ctx, claims.UserID, claims.Demo, services.PlayRequest{
			ProductType: req.ProductType,
			BetAmount:   req.BetAmount,
			ClientTxID:  req.ClientTxID,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PlayResponse{Status: "error", Message: "Insufficient funds"})
			case errors.Is(err, draw.ErrEmptyPool), errors.Is(err, services.ErrProductNotConfigured):
				logger.Log.Errorw("play rejected: product misconfigured", "product", req.ProductType, "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(PlayResponse{Status: "error", Message: "Product temporarily unavailable"})
			default:
				logger.Log.Errorw("play failed", "userID", claims.UserID, "product", req.ProductType, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PlayResponse{Status: "error", Message: "Internal server error, retry with the same client_tx_id"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PlayResponse{
			Status:        result.Status,
			PrizeAmount:   result.PrizeAmount,
			ItemWon:       result.ItemWon,
			RTPAfter:      result.RTPAfter,
			WalletBalance: result.WalletBalance,
		})
	}
}
