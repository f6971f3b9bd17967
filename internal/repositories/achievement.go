package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

// AchievementRepository reads unlock conditions and records unlocks. Unlock
// inserts are idempotent per (user, achievement), which is what makes the
// at-least-once event stream safe to consume.
type AchievementRepository struct {
	db *sqlx.DB
}

func NewAchievementRepository(db *sqlx.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// ListActive returns every achievement currently eligible for evaluation.
func (r *AchievementRepository) ListActive(ctx context.Context) ([]models.AchievementDB, error) {
	const query = `
		SELECT achievement_id, code, name, description, condition_type, threshold, rarity, active
		FROM achievements
		WHERE active
	`

	var achievements []models.AchievementDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &achievements, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(achievements),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return achievements, nil
}

// Unlock records an unlock, returning false when the user already holds it.
func (r *AchievementRepository) Unlock(ctx context.Context, userID, achievementID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO user_achievements (user_id, achievement_id, unlocked_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, achievement_id) DO NOTHING
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, userID, achievementID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, achievementID},
		"error", err,
	)

	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// ListByUser returns the user's unlocked achievements, newest first.
func (r *AchievementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserAchievementDB, error) {
	const query = `
		SELECT user_id, achievement_id, unlocked_at
		FROM user_achievements
		WHERE user_id = $1
		ORDER BY unlocked_at DESC
	`

	var unlocks []models.UserAchievementDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &unlocks, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(unlocks),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return unlocks, nil
}

// UserStats aggregates the history an unlock condition compares against.
type UserStats struct {
	PlayCount  int64           `db:"play_count"`
	TotalSpent decimal.Decimal `db:"total_spent"`
}

// GetUserStats returns the user's settled play count and lifetime wagered
// amount.
func (r *AchievementRepository) GetUserStats(ctx context.Context, userID uuid.UUID) (*UserStats, error) {
	const query = `
		SELECT COUNT(*) AS play_count, COALESCE(SUM(bet_amount), 0) AS total_spent
		FROM plays
		WHERE user_id = $1 AND status = $2 AND NOT demo
	`

	var stats UserStats
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &stats, query, userID, models.PlayStatusSettled)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", stats,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// CountRarityWins returns how many settled plays won an item of the given
// rarity.
func (r *AchievementRepository) CountRarityWins(ctx context.Context, userID uuid.UUID, rarity string) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM plays p
		JOIN items i ON i.item_id = p.item_id
		WHERE p.user_id = $1 AND p.status = $2 AND i.rarity = $3 AND NOT p.demo
	`

	var count int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &count, query, userID, models.PlayStatusSettled, rarity)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, rarity},
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return count, nil
}
