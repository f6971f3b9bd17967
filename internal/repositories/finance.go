package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

// FinanceRepository owns the per-product per-day financial rollup. Writes
// happen inside the play transaction; reads are plain SELECTs that never
// block writers.
type FinanceRepository struct {
	db *sqlx.DB
}

func NewFinanceRepository(db *sqlx.DB) *FinanceRepository {
	return &FinanceRepository{db: db}
}

// ApplySettlement folds one settled play into the day's rollup: sales grow by
// the bet, prizes by the payout, net profit and the goal flag are recomputed
// in place. budgetAlert latches on once the remaining budget crosses zero, in
// the same transaction as the settlement that caused the crossing.
func (r *FinanceRepository) ApplySettlement(ctx context.Context, productType string, day time.Time, bet, prize decimal.Decimal, budgetAlert bool) (*models.FinancialControlDB, error) {
	const query = `
		INSERT INTO financial_control (product_type, control_date, total_sales, total_prizes_paid,
		                               net_profit, profit_goal, goal_reached, budget_alert, updated_at)
		VALUES ($1, $2, $3, $4, $3 - $4, 0, ($3 - $4) >= 0, $5, NOW())
		ON CONFLICT (product_type, control_date)
		DO UPDATE SET total_sales = financial_control.total_sales + EXCLUDED.total_sales,
		              total_prizes_paid = financial_control.total_prizes_paid + EXCLUDED.total_prizes_paid,
		              net_profit = financial_control.total_sales + EXCLUDED.total_sales
		                           - financial_control.total_prizes_paid - EXCLUDED.total_prizes_paid,
		              goal_reached = (financial_control.total_sales + EXCLUDED.total_sales
		                           - financial_control.total_prizes_paid - EXCLUDED.total_prizes_paid)
		                           >= financial_control.profit_goal,
		              budget_alert = financial_control.budget_alert OR EXCLUDED.budget_alert,
		              updated_at = NOW()
		RETURNING product_type, control_date, total_sales, total_prizes_paid, net_profit,
		          profit_goal, goal_reached, budget_alert, updated_at
	`

	var record models.FinancialControlDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &record, query, productType, day, bet, prize, budgetAlert)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{productType, day, bet, prize, budgetAlert},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetDaily returns the rollup for one product and day. Returns sql.ErrNoRows
// when nothing settled that day.
func (r *FinanceRepository) GetDaily(ctx context.Context, productType string, day time.Time) (*models.FinancialControlDB, error) {
	const query = `
		SELECT product_type, control_date, total_sales, total_prizes_paid, net_profit,
		       profit_goal, goal_reached, budget_alert, updated_at
		FROM financial_control
		WHERE product_type = $1 AND control_date = $2
	`

	var record models.FinancialControlDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &record, query, productType, day)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{productType, day},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &record, nil
}

// SetProfitGoal updates the operator-configured daily goal, creating the
// day's row when it does not exist yet.
func (r *FinanceRepository) SetProfitGoal(ctx context.Context, productType string, day time.Time, goal decimal.Decimal) error {
	const query = `
		INSERT INTO financial_control (product_type, control_date, total_sales, total_prizes_paid,
		                               net_profit, profit_goal, goal_reached, budget_alert, updated_at)
		VALUES ($1, $2, 0, 0, 0, $3, FALSE, FALSE, NOW())
		ON CONFLICT (product_type, control_date)
		DO UPDATE SET profit_goal = EXCLUDED.profit_goal,
		              goal_reached = financial_control.net_profit >= EXCLUDED.profit_goal,
		              updated_at = NOW()
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, productType, day, goal)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{productType, day, goal},
		"error", err,
	)

	return err
}
