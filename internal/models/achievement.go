package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Achievement condition types.
const (
	ConditionPlayCount  = "play_count"  // Unlocks after N settled plays
	ConditionTotalSpent = "total_spent" // Unlocks after the user wagers a total amount
	ConditionRarityWon  = "rarity_won"  // Unlocks after winning an item of a given rarity
)

// AchievementDB represents an unlock condition descriptor.
type AchievementDB struct {
	AchievementID uuid.UUID       `json:"achievement_id" db:"achievement_id"` // Unique achievement identifier
	Code          string          `json:"code" db:"code"`                     // Stable machine-readable code, unique
	Name          string          `json:"name" db:"name"`                     // Display name
	Description   string          `json:"description" db:"description"`       // Display description
	ConditionType string          `json:"condition_type" db:"condition_type"` // One of the condition type constants
	Threshold     decimal.Decimal `json:"threshold" db:"threshold"`           // Count or amount the condition compares against
	Rarity        *string         `json:"rarity,omitempty" db:"rarity"`       // Rarity for rarity_won conditions, nil otherwise
	Active        bool            `json:"active" db:"active"`                 // Inactive achievements are never evaluated
}

// UserAchievementDB represents one unlock, append-only and unique per
// (user, achievement).
type UserAchievementDB struct {
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	AchievementID uuid.UUID `json:"achievement_id" db:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at" db:"unlocked_at"`
}
