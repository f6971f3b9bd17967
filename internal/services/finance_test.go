package services_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lootplay/prize-engine/internal/models"
	"github.com/lootplay/prize-engine/internal/services"
)

func TestFinanceService_Daily(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	t.Run("merges rollup with remaining budget", func(t *testing.T) {
		mockFinance := services.NewMockFinanceReader(ctrl)
		mockRTP := services.NewMockRTPReadWriter(ctrl)
		svc := services.NewFinanceService(mockFinance, mockRTP)

		mockFinance.EXPECT().GetDaily(gomock.Any(), models.ProductChest, day).
			Return(&models.FinancialControlDB{
				ProductType:     models.ProductChest,
				ControlDate:     day,
				TotalSales:      decimal.NewFromInt(500),
				TotalPrizesPaid: decimal.NewFromInt(380),
				NetProfit:       decimal.NewFromInt(120),
				GoalReached:     true,
			}, nil)
		mockRTP.EXPECT().GetByProduct(gomock.Any(), models.ProductChest).
			Return(&models.RTPSettingsDB{RemainingBudget: decimal.NewFromInt(620)}, nil)

		report, err := svc.Daily(context.Background(), models.ProductChest, day)
		assert.NoError(t, err)
		assert.True(t, report.TotalSales.Equal(decimal.NewFromInt(500)))
		assert.True(t, report.NetProfit.Equal(decimal.NewFromInt(120)))
		assert.True(t, report.RemainingBudget.Equal(decimal.NewFromInt(620)))
		assert.True(t, report.GoalReached)
	})

	t.Run("day with no settled plays reads as zeroed record", func(t *testing.T) {
		mockFinance := services.NewMockFinanceReader(ctrl)
		mockRTP := services.NewMockRTPReadWriter(ctrl)
		svc := services.NewFinanceService(mockFinance, mockRTP)

		mockFinance.EXPECT().GetDaily(gomock.Any(), models.ProductScratch, day).
			Return(nil, sql.ErrNoRows)
		mockRTP.EXPECT().GetByProduct(gomock.Any(), models.ProductScratch).
			Return(nil, sql.ErrNoRows)

		report, err := svc.Daily(context.Background(), models.ProductScratch, day)
		assert.NoError(t, err)
		assert.Equal(t, models.ProductScratch, report.ProductType)
		assert.True(t, report.TotalSales.IsZero())
		assert.True(t, report.RemainingBudget.IsZero())
		assert.False(t, report.BudgetAlert)
	})
}

func TestFinanceService_SetProfitGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFinance := services.NewMockFinanceReader(ctrl)
	mockRTP := services.NewMockRTPReadWriter(ctrl)
	svc := services.NewFinanceService(mockFinance, mockRTP)

	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	goal := decimal.NewFromInt(200)

	mockFinance.EXPECT().SetProfitGoal(gomock.Any(), models.ProductChest, day, goal).Return(nil)
	assert.NoError(t, svc.SetProfitGoal(context.Background(), models.ProductChest, day, goal))
}
