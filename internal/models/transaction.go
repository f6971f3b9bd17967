package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TxDeposit    = "deposit"
	TxPurchase   = "purchase"
	TxPrize      = "prize"
	TxWithdrawal = "withdrawal"
)

// Transaction statuses. A completed transaction is immutable.
const (
	TxStatusCompleted = "completed"
	TxStatusFailed    = "failed"
)

// TransactionDB represents one append-only row in the transaction log.
type TransactionDB struct {
	TransactionID  uuid.UUID       `json:"transaction_id" db:"transaction_id"`   // Unique transaction identifier
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`                 // User the transaction belongs to
	WalletID       uuid.UUID       `json:"wallet_id" db:"wallet_id"`             // Wallet mutated by the transaction
	Type           string          `json:"type" db:"type"`                       // One of the transaction type constants
	Amount         decimal.Decimal `json:"amount" db:"amount"`                   // Monetary value, always positive
	Status         string          `json:"status" db:"status"`                   // Transaction status
	IdempotencyKey string          `json:"idempotency_key" db:"idempotency_key"` // Key of the play or external operation that produced it
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`           // Timestamp when the row was appended
}
