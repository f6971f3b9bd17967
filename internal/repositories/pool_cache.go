package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

// PoolCacheRepository caches per-product prize pool snapshots in Redis with a
// short TTL. Probability entries are read-mostly and admin edits only need to
// become visible within seconds, so every play can draw from the snapshot
// instead of hitting postgres.
type PoolCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached snapshots
}

// NewPoolCacheRepository creates a new repository instance with the given TTL
func NewPoolCacheRepository(client *redis.Client, expiration time.Duration) *PoolCacheRepository {
	return &PoolCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetPool fetches a cached pool snapshot for a product
func (r *PoolCacheRepository) GetPool(ctx context.Context, productType string) ([]models.PoolEntry, error) {
	key := fmt.Sprintf("prize_pool:%s", productType)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"error", err,
	)

	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("prize pool not found in cache for %s", productType)
		}
		return nil, err
	}

	var pool []models.PoolEntry
	if err := json.Unmarshal([]byte(val), &pool); err != nil {
		return nil, err
	}
	return pool, nil
}

// SetPool caches a pool snapshot for a product with expiration
func (r *PoolCacheRepository) SetPool(ctx context.Context, productType string, pool []models.PoolEntry) error {
	key := fmt.Sprintf("prize_pool:%s", productType)

	data, err := json.Marshal(pool)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"entries", len(pool),
		"error", err,
	)

	return err
}
