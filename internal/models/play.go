package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Play statuses.
const (
	PlayStatusReserved = "reserved"
	PlayStatusSettled  = "settled"
)

// PlayDB represents one game round. The unique constraint on IdempotencyKey
// is what makes client retries safe: a second insert with the same key fails
// and the stored outcome is returned instead of running a new draw.
type PlayDB struct {
	PlayID         uuid.UUID       `json:"play_id" db:"play_id"`                 // Unique play identifier
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`                 // User who played
	ProductType    string          `json:"product_type" db:"product_type"`       // Product played (chest, scratch)
	BetAmount      decimal.Decimal `json:"bet_amount" db:"bet_amount"`           // Amount debited for the play
	PrizeAmount    decimal.Decimal `json:"prize_amount" db:"prize_amount"`       // Amount credited back, zero when no prize
	ItemID         *uuid.UUID      `json:"item_id,omitempty" db:"item_id"`       // Item won, nil for a no-prize outcome
	IdempotencyKey string          `json:"idempotency_key" db:"idempotency_key"` // Client-supplied or derived replay token, unique
	Demo           bool            `json:"demo" db:"demo"`                       // Played against the demo ledger
	Status         string          `json:"status" db:"status"`                   // reserved until the outcome is written, then settled
	DecidedAt      *time.Time      `json:"decided_at,omitempty" db:"decided_at"` // Timestamp when the outcome was decided
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`           // Timestamp when the row was reserved
}
