package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supported product types.
const (
	ProductChest   = "chest"
	ProductScratch = "scratch"
)

// ProbabilityEntryDB represents a weight assignment for one item within one
// product's prize pool. Weights are relative; selection chance is
// weight / sum of active weights.
type ProbabilityEntryDB struct {
	ProductType string    `json:"product_type" db:"product_type"` // Product the entry belongs to
	ItemID      uuid.UUID `json:"item_id" db:"item_id"`           // Item being weighted
	Weight      int64     `json:"weight" db:"weight"`             // Relative weight, >= 0
	Active      bool      `json:"active" db:"active"`             // Entry participates in draws
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`     // Timestamp of the last admin edit
}

// PoolEntry is the drawable view of a probability entry joined with its item.
type PoolEntry struct {
	ItemID    uuid.UUID       `json:"item_id" db:"item_id"`
	Name      string          `json:"name" db:"name"`
	Rarity    string          `json:"rarity" db:"rarity"`
	BaseValue decimal.Decimal `json:"base_value" db:"base_value"`
	Weight    int64           `json:"weight" db:"weight"`
}
