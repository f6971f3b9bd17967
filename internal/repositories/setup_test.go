package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/lootplay/prize-engine/internal/logger"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE TABLE IF NOT EXISTS items (
			item_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(100) NOT NULL,
			rarity VARCHAR(20) NOT NULL,
			base_value NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS probability_entries (
			product_type VARCHAR(20) NOT NULL,
			item_id UUID NOT NULL REFERENCES items(item_id) ON DELETE CASCADE,
			weight BIGINT NOT NULL CHECK (weight >= 0),
			active BOOLEAN NOT NULL DEFAULT TRUE,
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			PRIMARY KEY (product_type, item_id)
		);`,
		`CREATE TABLE IF NOT EXISTS wallets (
			wallet_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL UNIQUE,
			balance NUMERIC(20,2) NOT NULL DEFAULT 0.0 CHECK (balance >= 0),
			total_deposited NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			total_spent NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS demo_wallets (
			wallet_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL UNIQUE,
			balance NUMERIC(20,2) NOT NULL DEFAULT 0.0 CHECK (balance >= 0),
			total_deposited NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			total_spent NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL,
			wallet_id UUID NOT NULL,
			type VARCHAR(20) NOT NULL,
			amount NUMERIC(20,2) NOT NULL,
			status VARCHAR(20) NOT NULL,
			idempotency_key VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS plays (
			play_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL,
			product_type VARCHAR(20) NOT NULL,
			bet_amount NUMERIC(20,2) NOT NULL,
			prize_amount NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			item_id UUID REFERENCES items(item_id),
			idempotency_key VARCHAR(255) NOT NULL UNIQUE,
			demo BOOLEAN NOT NULL DEFAULT FALSE,
			status VARCHAR(20) NOT NULL,
			decided_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS rtp_settings (
			product_type VARCHAR(20) PRIMARY KEY,
			target_rtp NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			rtp_enabled BOOLEAN NOT NULL DEFAULT TRUE,
			win_probability NUMERIC(20,2) NOT NULL DEFAULT 100.0,
			daily_budget_prizes NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			remaining_budget NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			hard_budget_limit BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS financial_control (
			product_type VARCHAR(20) NOT NULL,
			control_date DATE NOT NULL,
			total_sales NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			total_prizes_paid NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			net_profit NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			profit_goal NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			goal_reached BOOLEAN NOT NULL DEFAULT FALSE,
			budget_alert BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			PRIMARY KEY (product_type, control_date)
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			achievement_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			code VARCHAR(50) NOT NULL UNIQUE,
			name VARCHAR(100) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			condition_type VARCHAR(20) NOT NULL,
			threshold NUMERIC(20,2) NOT NULL,
			rarity VARCHAR(20),
			active BOOLEAN NOT NULL DEFAULT TRUE
		);`,
		`CREATE TABLE IF NOT EXISTS user_achievements (
			user_id UUID NOT NULL,
			achievement_id UUID NOT NULL REFERENCES achievements(achievement_id) ON DELETE CASCADE,
			unlocked_at TIMESTAMP NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, achievement_id)
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}
