package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/lootplay/prize-engine/internal/models"
)

func TestPoolCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	// Get container host and port
	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	// Ping to ensure connection
	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewPoolCacheRepository(rdb, 2*time.Second)

	pool := []models.PoolEntry{
		{ItemID: uuid.New(), Name: "Wooden Shield", Rarity: models.RarityCommon, BaseValue: decimal.NewFromInt(5), Weight: 95},
		{ItemID: uuid.New(), Name: "Golden Sword", Rarity: models.RarityLegendary, BaseValue: decimal.NewFromInt(500), Weight: 5},
	}

	t.Run("Set and Get pool snapshot", func(t *testing.T) {
		err := repo.SetPool(ctx, models.ProductChest, pool)
		assert.NoError(t, err)

		got, err := repo.GetPool(ctx, models.ProductChest)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, pool[0].ItemID, got[0].ItemID)
		assert.Equal(t, int64(95), got[0].Weight)
		assert.True(t, got[1].BaseValue.Equal(decimal.NewFromInt(500)))
	})

	t.Run("Get missing product returns error", func(t *testing.T) {
		_, err := repo.GetPool(ctx, models.ProductScratch)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found in cache")
	})

	t.Run("Cached snapshot expires", func(t *testing.T) {
		err := repo.SetPool(ctx, models.ProductScratch, pool)
		assert.NoError(t, err)

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err = repo.GetPool(ctx, models.ProductScratch)
		assert.Error(t, err)
	})
}
