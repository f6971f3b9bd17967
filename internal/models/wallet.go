package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger kinds. Demo wallets mirror the real ledger operations but are
// segregated so simulated activity never reaches financial aggregates.
const (
	LedgerReal = "real"
	LedgerDemo = "demo"
)

// WalletDB represents a wallet row in the database
type WalletDB struct {
	WalletID       uuid.UUID       `json:"wallet_id" db:"wallet_id"`             // Unique wallet identifier
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`                 // Identifier of the wallet's owner
	Balance        decimal.Decimal `json:"balance" db:"balance"`                 // Current balance, never negative
	TotalDeposited decimal.Decimal `json:"total_deposited" db:"total_deposited"` // Lifetime deposits
	TotalSpent     decimal.Decimal `json:"total_spent" db:"total_spent"`         // Lifetime bets placed
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`           // Timestamp when the wallet was created
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`           // Timestamp of the last wallet update
}
