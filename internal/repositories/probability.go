package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

// ProbabilityRepository reads the operator-managed prize pool configuration.
// The admin interface writes these rows out-of-band; the engine only reads,
// and tolerates edits becoming visible seconds late (see the snapshot cache).
type ProbabilityRepository struct {
	db *sqlx.DB
}

func NewProbabilityRepository(db *sqlx.DB) *ProbabilityRepository {
	return &ProbabilityRepository{db: db}
}

// GetPool returns the drawable pool for a product: active entries with their
// item name, rarity, and value. Zero-weight entries are included; the
// selector skips them but operators can see them listed.
func (r *ProbabilityRepository) GetPool(ctx context.Context, productType string) ([]models.PoolEntry, error) {
	const query = `
		SELECT p.item_id, i.name, i.rarity, i.base_value, p.weight
		FROM probability_entries p
		JOIN items i ON i.item_id = p.item_id
		WHERE p.product_type = $1 AND p.active AND i.active
		ORDER BY p.weight DESC
	`

	var pool []models.PoolEntry
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &pool, query, productType)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{productType},
		"result", len(pool),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return pool, nil
}

// ListEntries returns every probability entry of a product, active or not,
// for operator verification.
func (r *ProbabilityRepository) ListEntries(ctx context.Context, productType string) ([]models.ProbabilityEntryDB, error) {
	const query = `
		SELECT product_type, item_id, weight, active, updated_at
		FROM probability_entries
		WHERE product_type = $1
		ORDER BY weight DESC
	`

	var entries []models.ProbabilityEntryDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &entries, query, productType)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{productType},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
