package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lootplay/prize-engine/internal/models"
)

func insertAchievement(t *testing.T, db *sqlx.DB, code, conditionType string, threshold int64, rarity *string, active bool) uuid.UUID {
	var achievementID uuid.UUID
	err := db.Get(&achievementID, `
		INSERT INTO achievements (code, name, description, condition_type, threshold, rarity, active)
		VALUES ($1, $1, '', $2, $3, $4, $5)
		RETURNING achievement_id
	`, code, conditionType, threshold, rarity, active)
	assert.NoError(t, err)
	return achievementID
}

func TestAchievementRepository_ListActive(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewAchievementRepository(db)
	insertAchievement(t, db, "first_play", models.ConditionPlayCount, 1, nil, true)
	insertAchievement(t, db, "retired", models.ConditionPlayCount, 100, nil, false)

	achievements, err := repo.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Len(t, achievements, 1)
	assert.Equal(t, "first_play", achievements[0].Code)
}

func TestAchievementRepository_UnlockIdempotent(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewAchievementRepository(db)
	achievementID := insertAchievement(t, db, "first_play", models.ConditionPlayCount, 1, nil, true)
	userID := uuid.New()

	unlocked, err := repo.Unlock(context.Background(), userID, achievementID)
	assert.NoError(t, err)
	assert.True(t, unlocked)

	// Redelivered events hit the same row and report nothing new.
	unlocked, err = repo.Unlock(context.Background(), userID, achievementID)
	assert.NoError(t, err)
	assert.False(t, unlocked)

	unlocks, err := repo.ListByUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, unlocks, 1)
	assert.Equal(t, achievementID, unlocks[0].AchievementID)
}

func TestAchievementRepository_ListByUser_Empty(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewAchievementRepository(db)

	unlocks, err := repo.ListByUser(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, unlocks)
}

func TestAchievementRepository_GetUserStats(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewAchievementRepository(db)
	plays := NewPlayRepository(db)
	userID := uuid.New()

	settle := func(key string, bet int64, demo bool) {
		play, err := plays.Reserve(context.Background(), userID, models.ProductChest, decimal.NewFromInt(bet), key, demo)
		assert.NoError(t, err)
		assert.NoError(t, plays.Settle(context.Background(), play.PlayID, decimal.Zero, nil))
	}

	settle("st-1", 25, false)
	settle("st-2", 50, false)
	settle("st-3", 75, true) // demo plays never count toward history

	// Reserved but unsettled plays do not count either.
	_, err := plays.Reserve(context.Background(), userID, models.ProductChest, decimal.NewFromInt(10), "st-4", false)
	assert.NoError(t, err)

	stats, err := repo.GetUserStats(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.PlayCount)
	assert.True(t, stats.TotalSpent.Equal(decimal.NewFromInt(75)))
}

func TestAchievementRepository_CountRarityWins(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewAchievementRepository(db)
	plays := NewPlayRepository(db)
	userID := uuid.New()

	legendary := insertItem(t, db, "Golden Sword", models.RarityLegendary, 500)
	common := insertItem(t, db, "Wooden Shield", models.RarityCommon, 5)

	win := func(key string, itemID uuid.UUID, demo bool) {
		play, err := plays.Reserve(context.Background(), userID, models.ProductChest, decimal.NewFromInt(25), key, demo)
		assert.NoError(t, err)
		assert.NoError(t, plays.Settle(context.Background(), play.PlayID, decimal.NewFromInt(1), &itemID))
	}

	win("rw-1", legendary, false)
	win("rw-2", common, false)
	win("rw-3", legendary, true) // demo win, excluded

	count, err := repo.CountRarityWins(context.Background(), userID, models.RarityLegendary)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
