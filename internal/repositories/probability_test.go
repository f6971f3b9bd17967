package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/lootplay/prize-engine/internal/models"
)

func insertProbabilityEntry(t *testing.T, db *sqlx.DB, productType string, itemID uuid.UUID, weight int64, active bool) {
	_, err := db.Exec(`
		INSERT INTO probability_entries (product_type, item_id, weight, active)
		VALUES ($1, $2, $3, $4)
	`, productType, itemID, weight, active)
	assert.NoError(t, err)
}

func TestProbabilityRepository_GetPool(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewProbabilityRepository(db)

	sword := insertItem(t, db, "Golden Sword", models.RarityLegendary, 500)
	shield := insertItem(t, db, "Wooden Shield", models.RarityCommon, 5)
	retired := insertItem(t, db, "Rusty Dagger", models.RarityCommon, 1)

	insertProbabilityEntry(t, db, models.ProductChest, sword, 5, true)
	insertProbabilityEntry(t, db, models.ProductChest, shield, 95, true)
	insertProbabilityEntry(t, db, models.ProductChest, retired, 50, false)

	pool, err := repo.GetPool(context.Background(), models.ProductChest)
	assert.NoError(t, err)
	assert.Len(t, pool, 2)

	// Heaviest entry first.
	assert.Equal(t, shield, pool[0].ItemID)
	assert.Equal(t, int64(95), pool[0].Weight)
	assert.Equal(t, models.RarityCommon, pool[0].Rarity)
	assert.Equal(t, sword, pool[1].ItemID)
}

func TestProbabilityRepository_GetPool_InactiveItemExcluded(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewProbabilityRepository(db)

	itemID := insertItem(t, db, "Vaulted Crown", models.RarityLegendary, 900)
	_, err := db.Exec(`UPDATE items SET active = FALSE WHERE item_id = $1`, itemID)
	assert.NoError(t, err)
	insertProbabilityEntry(t, db, models.ProductChest, itemID, 10, true)

	pool, err := repo.GetPool(context.Background(), models.ProductChest)
	assert.NoError(t, err)
	assert.Empty(t, pool)
}

func TestProbabilityRepository_GetPool_EmptyProduct(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewProbabilityRepository(db)

	pool, err := repo.GetPool(context.Background(), models.ProductScratch)
	assert.NoError(t, err)
	assert.Empty(t, pool)
}

func TestProbabilityRepository_ListEntries(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewProbabilityRepository(db)

	sword := insertItem(t, db, "Golden Sword", models.RarityLegendary, 500)
	retired := insertItem(t, db, "Rusty Dagger", models.RarityCommon, 1)

	insertProbabilityEntry(t, db, models.ProductChest, sword, 5, true)
	insertProbabilityEntry(t, db, models.ProductChest, retired, 50, false)

	// Operator listing includes inactive entries.
	entries, err := repo.ListEntries(context.Background(), models.ProductChest)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, retired, entries[0].ItemID)
	assert.False(t, entries[0].Active)
	assert.True(t, entries[1].Active)
}
