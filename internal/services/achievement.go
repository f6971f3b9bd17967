package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
	"github.com/lootplay/prize-engine/internal/repositories"
)

// AchievementStore defines the storage operations of the trigger.
type AchievementStore interface {
	ListActive(ctx context.Context) ([]models.AchievementDB, error)
	Unlock(ctx context.Context, userID, achievementID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserAchievementDB, error)
	GetUserStats(ctx context.Context, userID uuid.UUID) (*repositories.UserStats, error)
	CountRarityWins(ctx context.Context, userID uuid.UUID, rarity string) (int64, error)
}

// KafkaReader defines a Kafka reader abstraction.
type KafkaReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error) // Reads the next message from the stream
	Close() error                                           // Closes the Kafka reader
}

// AchievementService consumes the activity stream and evaluates unlock
// conditions against user history. It runs outside the play transaction on
// purpose: delivery is at-least-once and unlocks are idempotent per
// (user, achievement), so a redelivered event is harmless and a slow
// evaluation never delays the money path.
type AchievementService struct {
	repo   AchievementStore
	reader KafkaReader
}

func NewAchievementService(repo AchievementStore, reader KafkaReader) *AchievementService {
	return &AchievementService{repo: repo, reader: reader}
}

// Run consumes activity events until the context is cancelled. Malformed or
// failing events are logged and skipped; the loop never stops for them.
func (s *AchievementService) Run(ctx context.Context) error {
	if s.reader == nil {
		logger.Log.Warnw("kafka reader not configured, achievement trigger disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	for {
		msg, err := s.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return ctx.Err()
			}
			logger.Log.Errorw("failed to read activity event", "error", err)
			continue
		}

		var event models.ActivityEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Log.Errorw("malformed activity event", "key", string(msg.Key), "error", err)
			continue
		}

		if err := s.Evaluate(ctx, event); err != nil {
			logger.Log.Errorw("failed to evaluate achievements", "event_id", event.EventID, "user", event.UserID, "error", err)
		}
	}
}

// Evaluate checks every active achievement against the user's history and
// unlocks the ones whose condition is now met.
func (s *AchievementService) Evaluate(ctx context.Context, event models.ActivityEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return err
	}

	achievements, err := s.repo.ListActive(ctx)
	if err != nil {
		return err
	}
	if len(achievements) == 0 {
		return nil
	}

	stats, err := s.repo.GetUserStats(ctx, userID)
	if err != nil {
		return err
	}

	for _, a := range achievements {
		met, err := s.conditionMet(ctx, userID, a, stats)
		if err != nil {
			return err
		}
		if !met {
			continue
		}

		unlocked, err := s.repo.Unlock(ctx, userID, a.AchievementID)
		if err != nil {
			return err
		}
		if unlocked {
			logger.Log.Infow("achievement unlocked", "user", userID, "code", a.Code)
		}
	}
	return nil
}

func (s *AchievementService) conditionMet(ctx context.Context, userID uuid.UUID, a models.AchievementDB, stats *repositories.UserStats) (bool, error) {
	switch a.ConditionType {
	case models.ConditionPlayCount:
		return decimal.NewFromInt(stats.PlayCount).GreaterThanOrEqual(a.Threshold), nil
	case models.ConditionTotalSpent:
		return stats.TotalSpent.GreaterThanOrEqual(a.Threshold), nil
	case models.ConditionRarityWon:
		if a.Rarity == nil {
			return false, nil
		}
		wins, err := s.repo.CountRarityWins(ctx, userID, *a.Rarity)
		if err != nil {
			return false, err
		}
		return decimal.NewFromInt(wins).GreaterThanOrEqual(a.Threshold), nil
	default:
		logger.Log.Warnw("unknown achievement condition", "code", a.Code, "condition", a.ConditionType)
		return false, nil
	}
}

// ListUserAchievements returns the user's unlock records.
func (s *AchievementService) ListUserAchievements(ctx context.Context, userID uuid.UUID) ([]models.UserAchievementDB, error) {
	return s.repo.ListByUser(ctx, userID)
}
