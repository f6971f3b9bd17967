package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

// PlayRepository owns the plays table: the idempotency reservation, the
// settled outcome, and the trailing payout sums the RTP controller reads.
type PlayRepository struct {
	db *sqlx.DB
}

func NewPlayRepository(db *sqlx.DB) *PlayRepository {
	return &PlayRepository{db: db}
}

// Reserve inserts a play row keyed by the idempotency key. The unique
// constraint is the replay guard: when another request already holds the
// key, no row is inserted and (nil, nil) is returned — the caller must then
// load the prior outcome instead of executing the draw again. Under
// concurrent submissions of the same key the second insert blocks until the
// first transaction commits, so a pre-check race is impossible.
func (r *PlayRepository) Reserve(ctx context.Context, userID uuid.UUID, productType string, bet decimal.Decimal, idempotencyKey string, demo bool) (*models.PlayDB, error) {
	const query = `
		INSERT INTO plays (play_id, user_id, product_type, bet_amount, prize_amount, idempotency_key, demo, status, created_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6, $7, NOW())
		ON CONFLICT (idempotency_key) DO NOTHING
		RETURNING play_id, user_id, product_type, bet_amount, prize_amount, item_id, idempotency_key, demo, status, decided_at, created_at
	`

	var play models.PlayDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &play, query,
		uuid.New(), userID, productType, bet, idempotencyKey, demo, models.PlayStatusReserved)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, productType, bet, idempotencyKey},
		"error", err,
	)

	if err == sql.ErrNoRows {
		// Key already taken: the request was handled before.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &play, nil
}

// GetByIdempotencyKey loads the play holding the given key.
func (r *PlayRepository) GetByIdempotencyKey(ctx context.Context, idempotencyKey string) (*models.PlayDB, error) {
	const query = `
		SELECT play_id, user_id, product_type, bet_amount, prize_amount, item_id, idempotency_key, demo, status, decided_at, created_at
		FROM plays
		WHERE idempotency_key = $1
	`

	var play models.PlayDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &play, query, idempotencyKey)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{idempotencyKey},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &play, nil
}

// Settle writes the decided outcome onto a reserved play.
func (r *PlayRepository) Settle(ctx context.Context, playID uuid.UUID, prize decimal.Decimal, itemID *uuid.UUID) error {
	const query = `
		UPDATE plays
		SET prize_amount = $2, item_id = $3, status = $4, decided_at = NOW()
		WHERE play_id = $1
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, playID, prize, itemID, models.PlayStatusSettled)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{playID, prize, itemID},
		"error", err,
	)

	return err
}

// TrailingTotals returns the summed bets and prizes of plays settled for the
// product since the given instant. The RTP controller divides these to get
// the observed payout ratio over its trailing window.
func (r *PlayRepository) TrailingTotals(ctx context.Context, productType string, since time.Time) (bets, prizes decimal.Decimal, err error) {
	const query = `
		SELECT COALESCE(SUM(bet_amount), 0) AS bets, COALESCE(SUM(prize_amount), 0) AS prizes
		FROM plays
		WHERE product_type = $1 AND status = $2 AND decided_at >= $3 AND NOT demo
	`

	var totals struct {
		Bets   decimal.Decimal `db:"bets"`
		Prizes decimal.Decimal `db:"prizes"`
	}
	err = sqlx.GetContext(ctx, executor(ctx, r.db), &totals, query, productType, models.PlayStatusSettled, since)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{productType, since},
		"result", totals,
		"error", err,
	)

	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return totals.Bets, totals.Prizes, nil
}
