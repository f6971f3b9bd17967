package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialControlDB represents the per-product per-day financial rollup.
// One row per (product_type, control_date), updated incrementally as plays
// settle, never recomputed from scratch on the hot path.
type FinancialControlDB struct {
	ProductType     string          `json:"product_type" db:"product_type"`         // Product the rollup belongs to
	ControlDate     time.Time       `json:"control_date" db:"control_date"`         // Calendar day of the rollup
	TotalSales      decimal.Decimal `json:"total_sales" db:"total_sales"`           // Sum of bets settled that day
	TotalPrizesPaid decimal.Decimal `json:"total_prizes_paid" db:"total_prizes_paid"` // Sum of prizes credited that day
	NetProfit       decimal.Decimal `json:"net_profit" db:"net_profit"`             // total_sales - total_prizes_paid
	ProfitGoal      decimal.Decimal `json:"profit_goal" db:"profit_goal"`           // Operator-configured daily goal
	GoalReached     bool            `json:"goal_reached" db:"goal_reached"`         // net_profit >= profit_goal
	BudgetAlert     bool            `json:"budget_alert" db:"budget_alert"`         // Remaining prize budget went negative
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`             // Timestamp of the last settlement applied
}
