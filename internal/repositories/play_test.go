package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lootplay/prize-engine/internal/models"
)

func insertItem(t *testing.T, db *sqlx.DB, name, rarity string, value int64) uuid.UUID {
	var itemID uuid.UUID
	err := db.Get(&itemID, `
		INSERT INTO items (name, rarity, base_value, active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING item_id
	`, name, rarity, value)
	assert.NoError(t, err)
	return itemID
}

func TestPlayRepository_Reserve(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewPlayRepository(db)
	userID := uuid.New()

	play, err := repo.Reserve(context.Background(), userID, models.ProductChest, decimal.NewFromInt(25), "key-1", false)
	assert.NoError(t, err)
	assert.NotNil(t, play)
	assert.Equal(t, userID, play.UserID)
	assert.Equal(t, models.PlayStatusReserved, play.Status)
	assert.True(t, play.BetAmount.Equal(decimal.NewFromInt(25)))
	assert.False(t, play.Demo)
	assert.Nil(t, play.ItemID)
}

func TestPlayRepository_ReserveDuplicateKey(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewPlayRepository(db)
	userID := uuid.New()

	first, err := repo.Reserve(context.Background(), userID, models.ProductChest, decimal.NewFromInt(25), "key-dup", false)
	assert.NoError(t, err)
	assert.NotNil(t, first)

	// The second reservation of the same key inserts nothing and signals
	// the caller to load the prior outcome.
	second, err := repo.Reserve(context.Background(), userID, models.ProductChest, decimal.NewFromInt(25), "key-dup", false)
	assert.NoError(t, err)
	assert.Nil(t, second)

	prior, err := repo.GetByIdempotencyKey(context.Background(), "key-dup")
	assert.NoError(t, err)
	assert.Equal(t, first.PlayID, prior.PlayID)
}

func TestPlayRepository_GetByIdempotencyKey_NotFound(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewPlayRepository(db)

	_, err := repo.GetByIdempotencyKey(context.Background(), "no-such-key")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPlayRepository_Settle(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewPlayRepository(db)
	itemID := insertItem(t, db, "Golden Sword", models.RarityLegendary, 500)

	play, err := repo.Reserve(context.Background(), uuid.New(), models.ProductChest, decimal.NewFromInt(25), "key-settle", false)
	assert.NoError(t, err)

	err = repo.Settle(context.Background(), play.PlayID, decimal.NewFromInt(500), &itemID)
	assert.NoError(t, err)

	settled, err := repo.GetByIdempotencyKey(context.Background(), "key-settle")
	assert.NoError(t, err)
	assert.Equal(t, models.PlayStatusSettled, settled.Status)
	assert.True(t, settled.PrizeAmount.Equal(decimal.NewFromInt(500)))
	assert.NotNil(t, settled.ItemID)
	assert.Equal(t, itemID, *settled.ItemID)
	assert.NotNil(t, settled.DecidedAt)
}

func TestPlayRepository_SettleNoPrize(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewPlayRepository(db)

	play, err := repo.Reserve(context.Background(), uuid.New(), models.ProductScratch, decimal.NewFromInt(10), "key-lost", false)
	assert.NoError(t, err)

	err = repo.Settle(context.Background(), play.PlayID, decimal.Zero, nil)
	assert.NoError(t, err)

	settled, err := repo.GetByIdempotencyKey(context.Background(), "key-lost")
	assert.NoError(t, err)
	assert.Equal(t, models.PlayStatusSettled, settled.Status)
	assert.True(t, settled.PrizeAmount.Equal(decimal.Zero))
	assert.Nil(t, settled.ItemID)
}

func TestPlayRepository_TrailingTotals(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewPlayRepository(db)
	since := time.Now().Add(-time.Minute)

	settle := func(key string, bet, prize int64, demo bool) {
		play, err := repo.Reserve(context.Background(), uuid.New(), models.ProductChest, decimal.NewFromInt(bet), key, demo)
		assert.NoError(t, err)
		assert.NoError(t, repo.Settle(context.Background(), play.PlayID, decimal.NewFromInt(prize), nil))
	}

	settle("tt-1", 100, 60, false)
	settle("tt-2", 100, 0, false)
	settle("tt-3", 100, 90, true) // demo, must not count

	// Reserved but never settled, must not count either.
	_, err := repo.Reserve(context.Background(), uuid.New(), models.ProductChest, decimal.NewFromInt(100), "tt-4", false)
	assert.NoError(t, err)

	bets, prizes, err := repo.TrailingTotals(context.Background(), models.ProductChest, since)
	assert.NoError(t, err)
	assert.True(t, bets.Equal(decimal.NewFromInt(200)))
	assert.True(t, prizes.Equal(decimal.NewFromInt(60)))
}

func TestPlayRepository_TrailingTotalsEmptyWindow(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewPlayRepository(db)

	bets, prizes, err := repo.TrailingTotals(context.Background(), models.ProductChest, time.Now())
	assert.NoError(t, err)
	assert.True(t, bets.Equal(decimal.Zero))
	assert.True(t, prizes.Equal(decimal.Zero))
}
