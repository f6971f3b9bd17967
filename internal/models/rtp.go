package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RTP preset names. A preset is a named parameter bundle an operator can
// apply to a product; it only sets TargetRTP and WinProbability.
const (
	PresetConservative = "conservative"
	PresetBalanced     = "balanced"
	PresetAggressive   = "aggressive"
)

// RTPSettingsDB represents the payout control configuration of one product.
type RTPSettingsDB struct {
	ProductType       string          `json:"product_type" db:"product_type"`               // Product the settings apply to
	TargetRTP         decimal.Decimal `json:"target_rtp" db:"target_rtp"`                   // Target payout ratio, 0-100
	RTPEnabled        bool            `json:"rtp_enabled" db:"rtp_enabled"`                 // When false every play settles with no prize
	WinProbability    decimal.Decimal `json:"win_probability" db:"win_probability"`         // Chance, 0-100, that a play is allowed to win at all
	DailyBudgetPrizes decimal.Decimal `json:"daily_budget_prizes" db:"daily_budget_prizes"` // Budget restored by the daily refill
	RemainingBudget   decimal.Decimal `json:"remaining_budget" db:"remaining_budget"`       // Budget left today, may go negative
	HardBudgetLimit   bool            `json:"hard_budget_limit" db:"hard_budget_limit"`     // When true an exhausted budget blocks prize payouts
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`                   // Timestamp of the last settings change
}

// RTPPreset is a named bundle of payout parameters.
type RTPPreset struct {
	TargetRTP      decimal.Decimal
	WinProbability decimal.Decimal
}

// RTPPresets maps preset names to their parameter bundles.
var RTPPresets = map[string]RTPPreset{
	PresetConservative: {TargetRTP: decimal.NewFromInt(50), WinProbability: decimal.NewFromInt(20)},
	PresetBalanced:     {TargetRTP: decimal.NewFromInt(80), WinProbability: decimal.NewFromInt(50)},
	PresetAggressive:   {TargetRTP: decimal.NewFromInt(95), WinProbability: decimal.NewFromInt(80)},
}
