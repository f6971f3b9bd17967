package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

// RTPRepository owns the per-product payout control settings.
type RTPRepository struct {
	db *sqlx.DB
}

func NewRTPRepository(db *sqlx.DB) *RTPRepository {
	return &RTPRepository{db: db}
}

// GetByProduct loads the RTP settings of one product. Returns sql.ErrNoRows
// for an unconfigured product.
func (r *RTPRepository) GetByProduct(ctx context.Context, productType string) (*models.RTPSettingsDB, error) {
	const query = `
		SELECT product_type, target_rtp, rtp_enabled, win_probability,
		       daily_budget_prizes, remaining_budget, hard_budget_limit, updated_at
		FROM rtp_settings
		WHERE product_type = $1
	`

	var settings models.RTPSettingsDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &settings, query, productType)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{productType},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save upserts the settings row of a product. Used by the admin surface;
// plays only read and decrement.
func (r *RTPRepository) Save(ctx context.Context, s *models.RTPSettingsDB) error {
	const query = `
		INSERT INTO rtp_settings (product_type, target_rtp, rtp_enabled, win_probability,
		                          daily_budget_prizes, remaining_budget, hard_budget_limit, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (product_type)
		DO UPDATE SET target_rtp = EXCLUDED.target_rtp,
		              rtp_enabled = EXCLUDED.rtp_enabled,
		              win_probability = EXCLUDED.win_probability,
		              daily_budget_prizes = EXCLUDED.daily_budget_prizes,
		              remaining_budget = EXCLUDED.remaining_budget,
		              hard_budget_limit = EXCLUDED.hard_budget_limit,
		              updated_at = NOW()
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query,
		s.ProductType, s.TargetRTP, s.RTPEnabled, s.WinProbability,
		s.DailyBudgetPrizes, s.RemainingBudget, s.HardBudgetLimit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{s.ProductType, s.TargetRTP, s.RTPEnabled, s.WinProbability},
		"error", err,
	)

	return err
}

// DecrementBudget subtracts a settled prize from the product's remaining
// budget and returns the new value. The budget is a soft ceiling: it is
// allowed to go negative, which callers surface as an alert, not a failure.
func (r *RTPRepository) DecrementBudget(ctx context.Context, productType string, amount decimal.Decimal) (decimal.Decimal, error) {
	const query = `
		UPDATE rtp_settings
		SET remaining_budget = remaining_budget - $2, updated_at = NOW()
		WHERE product_type = $1
		RETURNING remaining_budget
	`

	var remaining decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &remaining, query, productType, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{productType, amount},
		"result", remaining,
		"error", err,
	)

	if err != nil {
		return decimal.Zero, err
	}
	return remaining, nil
}

// RefillBudgets resets remaining_budget to daily_budget_prizes for every
// product. Invoked by the daily scheduler.
func (r *RTPRepository) RefillBudgets(ctx context.Context) (int64, error) {
	const query = `
		UPDATE rtp_settings
		SET remaining_budget = daily_budget_prizes, updated_at = NOW()
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
