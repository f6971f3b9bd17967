package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
	"github.com/lootplay/prize-engine/internal/services"
)

// RTPAdminTokener defines only the methods needed by these handlers.
type RTPAdminTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// RTPConfigurer defines the interface that the payout controller must implement.
type RTPConfigurer interface {
	GetSettings(ctx context.Context, productType string) (*models.RTPSettingsDB, error)
	UpdateSettings(ctx context.Context, settings *models.RTPSettingsDB) error
	ApplyPreset(ctx context.Context, productType, preset string) (*models.RTPSettingsDB, error)
	CurrentRTP(ctx context.Context, productType string) (decimal.Decimal, error)
}

// RTPSettingsResponse represents a product's payout configuration plus its
// observed trailing ratio
// swagger:model RTPSettingsResponse
type RTPSettingsResponse struct {
	models.RTPSettingsDB

	// Observed payout ratio over the trailing day
	CurrentRTP decimal.Decimal `json:"current_rtp"`
}

// UpdateRTPRequest represents the JSON body for updating payout settings
// swagger:model UpdateRTPRequest
type UpdateRTPRequest struct {
	// Target payout ratio, 0-100
	TargetRTP decimal.Decimal `json:"target_rtp"`

	// Master switch; when false every play settles with no prize
	RTPEnabled bool `json:"rtp_enabled"`

	// Chance, 0-100, that a play is allowed to win at all
	WinProbability decimal.Decimal `json:"win_probability"`

	// Budget restored by the daily refill
	DailyBudgetPrizes decimal.Decimal `json:"daily_budget_prizes"`

	// Budget left today
	RemainingBudget decimal.Decimal `json:"remaining_budget"`

	// When true an exhausted budget blocks prize payouts
	HardBudgetLimit bool `json:"hard_budget_limit"`
}

// ApplyPresetRequest represents the JSON body for applying a named preset
// swagger:model ApplyPresetRequest
type ApplyPresetRequest struct {
	// One of conservative, balanced, aggressive
	// required: true
	Preset string `json:"preset"`
}

func authorizeAdmin(w http.ResponseWriter, r *http.Request, tokenGetter RTPAdminTokener) bool {
	ctx := r.Context()
	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return false
	}
	if err := tokenGetter.Validate(ctx, tokenStr); err != nil {
		logger.Log.Errorw("failed to validate token", "error", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// NewGetRTPSettingsHandler returns an HTTP handler reading payout settings.
// @Summary Get payout settings
// @Description Returns a product's payout configuration and its observed trailing ratio.
// @Tags admin
// @Produce json
// @Param product path string true "Product type"
// @Success 200 {object} handlers.RTPSettingsResponse "Settings"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Product not configured"
// @Router /admin/rtp/{product} [get]
// @Security BearerAuth
func NewGetRTPSettingsHandler(
	svc RTPConfigurer,
	tokenGetter RTPAdminTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorizeAdmin(w, r, tokenGetter) {
			return
		}
		ctx := r.Context()
		product := chi.URLParam(r, "product")

		settings, err := svc.GetSettings(ctx, product)
		if err != nil {
			if errors.Is(err, services.ErrProductNotConfigured) {
				http.Error(w, "Product not configured", http.StatusNotFound)
				return
			}
			logger.Log.Errorw("failed to get rtp settings", "product", product, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		resp := RTPSettingsResponse{RTPSettingsDB: *settings}
		if rtp, err := svc.CurrentRTP(ctx, product); err == nil {
			resp.CurrentRTP = rtp
		} else {
			logger.Log.Errorw("failed to compute trailing rtp", "product", product, "error", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// NewUpdateRTPSettingsHandler returns an HTTP handler upserting payout settings.
// @Summary Update payout settings
// @Description Replaces a product's payout configuration. Takes effect on subsequent plays.
// @Tags admin
// @Accept json
// @Produce json
// @Param product path string true "Product type"
// @Param request body handlers.UpdateRTPRequest true "Settings"
// @Success 200 {object} models.RTPSettingsDB "Stored settings"
// @Failure 400 {string} string "Invalid request"
// @Failure 401 {string} string "Unauthorized"
// @Router /admin/rtp/{product} [put]
// @Security BearerAuth
func NewUpdateRTPSettingsHandler(
	svc RTPConfigurer,
	tokenGetter RTPAdminTokener,
) http.HandlerFunc {
	hundred := decimal.NewFromInt(100)

	return func(w http.ResponseWriter, r *http.Request) {
		if !authorizeAdmin(w, r, tokenGetter) {
			return
		}
		ctx := r.Context()
		product := chi.URLParam(r, "product")

		var req UpdateRTPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode rtp settings request", "error", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.TargetRTP.IsNegative() || req.TargetRTP.GreaterThan(hundred) {
			http.Error(w, "target_rtp must be between 0 and 100", http.StatusBadRequest)
			return
		}
		if req.WinProbability.IsNegative() || req.WinProbability.GreaterThan(hundred) {
			http.Error(w, "win_probability must be between 0 and 100", http.StatusBadRequest)
			return
		}
		if req.DailyBudgetPrizes.IsNegative() {
			http.Error(w, "daily_budget_prizes must not be negative", http.StatusBadRequest)
			return
		}

		settings := &models.RTPSettingsDB{
			ProductType:       product,
			TargetRTP:         req.TargetRTP,
			RTPEnabled:        req.RTPEnabled,
			WinProbability:    req.WinProbability,
			DailyBudgetPrizes: req.DailyBudgetPrizes,
			RemainingBudget:   req.RemainingBudget,
			HardBudgetLimit:   req.HardBudgetLimit,
			UpdatedAt:         time.Now(),
		}
		if err := svc.UpdateSettings(ctx, settings); err != nil {
			logger.Log.Errorw("failed to update rtp settings", "product", product, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		logger.Log.Infow("rtp settings updated", "product", product,
			"target_rtp", settings.TargetRTP, "enabled", settings.RTPEnabled)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(settings)
	}
}

// NewApplyRTPPresetHandler returns an HTTP handler applying a named preset.
// @Summary Apply a payout preset
// @Description Applies a named parameter bundle to a product. Presets only set target_rtp and win_probability.
// @Tags admin
// @Accept json
// @Produce json
// @Param product path string true "Product type"
// @Param request body handlers.ApplyPresetRequest true "Preset"
// @Success 200 {object} models.RTPSettingsDB "Stored settings"
// @Failure 400 {string} string "Unknown preset"
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "Product not configured"
// @Router /admin/rtp/{product}/preset [post]
// @Security BearerAuth
func NewApplyRTPPresetHandler(
	svc RTPConfigurer,
	tokenGetter RTPAdminTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorizeAdmin(w, r, tokenGetter) {
			return
		}
		ctx := r.Context()
		product := chi.URLParam(r, "product")

		var req ApplyPresetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode preset request", "error", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if _, ok := models.RTPPresets[req.Preset]; !ok {
			http.Error(w, "Unknown preset", http.StatusBadRequest)
			return
		}

		settings, err := svc.ApplyPreset(ctx, product, req.Preset)
		if err != nil {
			if errors.Is(err, services.ErrProductNotConfigured) {
				http.Error(w, "Product not configured", http.StatusNotFound)
				return
			}
			logger.Log.Errorw("failed to apply rtp preset", "product", product, "preset", req.Preset, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(settings)
	}
}
