package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

// FinanceReader reads the daily rollup and updates the operator goal.
type FinanceReader interface {
	GetDaily(ctx context.Context, productType string, day time.Time) (*models.FinancialControlDB, error)
	SetProfitGoal(ctx context.Context, productType string, day time.Time, goal decimal.Decimal) error
}

// DailyReport is the operational view of one product-day: the financial
// rollup plus the live remaining prize budget.
type DailyReport struct {
	models.FinancialControlDB
	RemainingBudget decimal.Decimal `json:"remaining_budget"`
}

// FinanceService is the financial control read path. It only reads; the
// rollup rows are written inside play transactions.
type FinanceService struct {
	finance FinanceReader
	rtp     RTPReadWriter
}

func NewFinanceService(finance FinanceReader, rtp RTPReadWriter) *FinanceService {
	return &FinanceService{finance: finance, rtp: rtp}
}

// Daily returns the rollup of one product and day. A day with no settled
// plays reads as a zeroed record, not an error.
func (s *FinanceService) Daily(ctx context.Context, productType string, day time.Time) (*DailyReport, error) {
	record, err := s.finance.GetDaily(ctx, productType, day)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			record = &models.FinancialControlDB{
				ProductType: productType,
				ControlDate: day,
			}
		} else {
			logger.Log.Errorw("failed to read daily rollup", "product", productType, "day", day, "error", err)
			return nil, err
		}
	}

	report := &DailyReport{FinancialControlDB: *record}

	settings, err := s.rtp.GetByProduct(ctx, productType)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	} else {
		report.RemainingBudget = settings.RemainingBudget
	}

	return report, nil
}

// SetProfitGoal updates the operator-configured daily profit goal.
func (s *FinanceService) SetProfitGoal(ctx context.Context, productType string, day time.Time, goal decimal.Decimal) error {
	return s.finance.SetProfitGoal(ctx, productType, day, goal)
}
