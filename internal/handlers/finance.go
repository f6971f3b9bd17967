package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/services"
)

// FinanceTokener defines only the methods needed by these handlers.
type FinanceTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// FinanceReporter defines the interface that the finance service must implement.
type FinanceReporter interface {
	Daily(ctx context.Context, productType string, day time.Time) (*services.DailyReport, error)
	SetProfitGoal(ctx context.Context, productType string, day time.Time, goal decimal.Decimal) error
}

// ProfitGoalRequest represents the JSON body for setting a daily profit goal
// swagger:model ProfitGoalRequest
type ProfitGoalRequest struct {
	// Goal for the day; goal_reached flips once net profit covers it
	// required: true
	ProfitGoal decimal.Decimal `json:"profit_goal"`
}

// financeDay parses the optional ?date=YYYY-MM-DD query parameter, defaulting
// to today in UTC to match how settlements bucket their rollup day.
func financeDay(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	return time.Parse("2006-01-02", raw)
}

// NewDailyReportHandler returns an HTTP handler reading one product-day rollup.
// @Summary Get daily financial report
// @Description Returns the financial rollup of one product and day plus the live remaining prize budget. Defaults to today (UTC).
// @Tags finance
// @Produce json
// @Param product_type query string true "Product type"
// @Param date query string false "Day in YYYY-MM-DD, default today"
// @Success 200 {object} services.DailyReport "Report"
// @Failure 400 {string} string "Invalid request"
// @Failure 401 {string} string "Unauthorized"
// @Router /finance/daily [get]
// @Security BearerAuth
func NewDailyReportHandler(
	svc FinanceReporter,
	tokenGetter FinanceTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorizeAdmin(w, r, tokenGetter) {
			return
		}
		ctx := r.Context()

		product := r.URL.Query().Get("product_type")
		if product == "" {
			http.Error(w, "product_type is required", http.StatusBadRequest)
			return
		}

		day, err := financeDay(r)
		if err != nil {
			http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		report, err := svc.Daily(ctx, product, day)
		if err != nil {
			logger.Log.Errorw("failed to get daily report", "product", product, "day", day, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(report)
	}
}

// NewSetProfitGoalHandler returns an HTTP handler setting a day's profit goal.
// @Summary Set daily profit goal
// @Description Sets the operator profit goal for one product and day. Defaults to today (UTC).
// @Tags admin
// @Accept json
// @Produce json
// @Param product path string true "Product type"
// @Param date query string false "Day in YYYY-MM-DD, default today"
// @Param request body handlers.ProfitGoalRequest true "Goal"
// @Success 200 {string} string "Goal stored"
// @Failure 400 {string} string "Invalid request"
// @Failure 401 {string} string "Unauthorized"
// @Router /admin/finance/{product}/goal [put]
// @Security BearerAuth
func NewSetProfitGoalHandler(
	svc FinanceReporter,
	tokenGetter FinanceTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorizeAdmin(w, r, tokenGetter) {
			return
		}
		ctx := r.Context()
		product := chi.URLParam(r, "product")

		day, err := financeDay(r)
		if err != nil {
			http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		var req ProfitGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode profit goal request", "error", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.ProfitGoal.IsNegative() {
			http.Error(w, "profit_goal must not be negative", http.StatusBadRequest)
			return
		}

		if err := svc.SetProfitGoal(ctx, product, day, req.ProfitGoal); err != nil {
			logger.Log.Errorw("failed to set profit goal", "product", product, "day", day, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		logger.Log.Infow("profit goal updated", "product", product, "day", day, "goal", req.ProfitGoal)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"message": "Profit goal stored"})
	}
}
