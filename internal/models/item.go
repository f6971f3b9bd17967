package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item rarity tiers.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
	RaritySpecial   = "special"
)

// ItemDB represents a prize item row in the database.
// Items referenced by play history are never deleted; deactivation is the
// Active flag only, so historical draws stay reconstructable.
type ItemDB struct {
	ItemID    uuid.UUID       `json:"item_id" db:"item_id"`       // Unique item identifier
	Name      string          `json:"name" db:"name"`             // Display name
	Rarity    string          `json:"rarity" db:"rarity"`         // One of the rarity constants
	BaseValue decimal.Decimal `json:"base_value" db:"base_value"` // Monetary value credited when won
	Active    bool            `json:"active" db:"active"`         // Soft deactivation flag
	CreatedAt time.Time       `json:"created_at" db:"created_at"` // Timestamp when the item was created
}
