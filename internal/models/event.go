package models

import "github.com/shopspring/decimal"

// Activity event types published to the activity stream.
const (
	EventPlaySettled         = "play_settled"
	EventDepositCompleted    = "deposit_completed"
	EventWithdrawalCompleted = "withdrawal_completed"
)

// ActivityEvent is the at-least-once message emitted after a settled play,
// deposit, or withdrawal. Consumers deduplicate on (user_id, event_id).
type ActivityEvent struct {
	EventID     string          `json:"event_id"`               // Unique event identifier
	Type        string          `json:"type"`                   // One of the event type constants
	UserID      string          `json:"user_id"`                // User the activity belongs to
	ProductType string          `json:"product_type,omitempty"` // Product, set for play events
	Amount      decimal.Decimal `json:"amount"`                 // Bet, deposit, or withdrawal amount
	PrizeAmount decimal.Decimal `json:"prize_amount"`           // Prize credited, set for play events
	Rarity      string          `json:"rarity,omitempty"`       // Rarity of the item won, if any
	Timestamp   int64           `json:"timestamp"`              // Unix timestamp in seconds
}
