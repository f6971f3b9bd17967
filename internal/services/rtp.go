package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/draw"
	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

var (
	// ErrProductNotConfigured is returned when a product has no RTP settings
	// row. Playing an unconfigured product is an operator fault.
	ErrProductNotConfigured = errors.New("product has no rtp configuration")
)

// rtpWindow is the trailing window the observed payout ratio is computed over.
const rtpWindow = 24 * time.Hour

// RTPReadWriter defines the settings storage operations the controller needs.
type RTPReadWriter interface {
	GetByProduct(ctx context.Context, productType string) (*models.RTPSettingsDB, error)
	Save(ctx context.Context, s *models.RTPSettingsDB) error
	DecrementBudget(ctx context.Context, productType string, amount decimal.Decimal) (decimal.Decimal, error)
}

// PlayTotalsReader reads trailing bet/prize sums from settled plays.
type PlayTotalsReader interface {
	TrailingTotals(ctx context.Context, productType string, since time.Time) (bets, prizes decimal.Decimal, err error)
}

// GateDecision is the controller's verdict on a single play, taken before
// anything is credited.
type GateDecision struct {
	ForceNoPrize bool   // The play must settle with a zero prize
	Reason       string // Why, for logs and operator attention
}

// RTPService is the payout control: it owns the per-product target ratio,
// the win-probability gate, and the daily prize budget.
type RTPService struct {
	repo  RTPReadWriter
	plays PlayTotalsReader
}

func NewRTPService(repo RTPReadWriter, plays PlayTotalsReader) *RTPService {
	return &RTPService{repo: repo, plays: plays}
}

// GetSettings loads a product's payout configuration.
func (s *RTPService) GetSettings(ctx context.Context, productType string) (*models.RTPSettingsDB, error) {
	settings, err := s.repo.GetByProduct(ctx, productType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotConfigured
		}
		return nil, err
	}
	return settings, nil
}

// UpdateSettings upserts a product's payout configuration.
func (s *RTPService) UpdateSettings(ctx context.Context, settings *models.RTPSettingsDB) error {
	return s.repo.Save(ctx, settings)
}

// ApplyPreset applies a named parameter bundle to a product. Presets only
// set target_rtp and win_probability; budgets and flags are untouched.
func (s *RTPService) ApplyPreset(ctx context.Context, productType, preset string) (*models.RTPSettingsDB, error) {
	bundle, ok := models.RTPPresets[preset]
	if !ok {
		return nil, fmt.Errorf("unknown rtp preset %q", preset)
	}

	settings, err := s.GetSettings(ctx, productType)
	if err != nil {
		return nil, err
	}

	settings.TargetRTP = bundle.TargetRTP
	settings.WinProbability = bundle.WinProbability
	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}

	logger.Log.Infow("rtp preset applied", "product", productType, "preset", preset,
		"target_rtp", settings.TargetRTP, "win_probability", settings.WinProbability)
	return settings, nil
}

// Gate decides, before the draw result is credited, whether the play is
// allowed a prize at all.
//
// Hard overrides: a disabled controller or a zero target ratio force the
// no-prize outcome regardless of what the selector would have drawn. An
// exhausted budget only blocks when the product opted into the hard limit;
// by default it is a monitoring signal and prizes keep flowing.
// The win-probability gate rolls once per play: a roll above the configured
// chance forces no-prize.
func (s *RTPService) Gate(settings *models.RTPSettingsDB, rng draw.Rand) GateDecision {
	if !settings.RTPEnabled {
		return GateDecision{ForceNoPrize: true, Reason: "rtp disabled"}
	}
	if settings.TargetRTP.IsZero() {
		return GateDecision{ForceNoPrize: true, Reason: "target rtp is zero"}
	}
	if settings.HardBudgetLimit && settings.RemainingBudget.LessThanOrEqual(decimal.Zero) {
		return GateDecision{ForceNoPrize: true, Reason: "prize budget exhausted"}
	}

	// Win probability is a percentage with two-decimal resolution.
	winBasisPoints := settings.WinProbability.Mul(decimal.NewFromInt(100)).IntPart()
	if winBasisPoints < 10000 {
		if rng.Int63n(10000) >= winBasisPoints {
			return GateDecision{ForceNoPrize: true, Reason: "win probability roll lost"}
		}
	}

	return GateDecision{}
}

// SettlePrize decrements the product's remaining budget by the paid prize
// and reports whether the budget is now negative. Must run inside the play
// transaction so the alert becomes visible atomically with the settlement
// that caused it.
func (s *RTPService) SettlePrize(ctx context.Context, productType string, prize decimal.Decimal) (remaining decimal.Decimal, alert bool, err error) {
	remaining, err = s.repo.DecrementBudget(ctx, productType, prize)
	if err != nil {
		return decimal.Zero, false, err
	}
	if remaining.IsNegative() {
		logger.Log.Warnw("prize budget negative", "product", productType, "remaining", remaining)
		return remaining, true, nil
	}
	return remaining, false, nil
}

// CurrentRTP returns the observed payout ratio over the trailing window:
// prizes paid divided by bets taken, as a percentage. Zero when nothing was
// wagered in the window.
func (s *RTPService) CurrentRTP(ctx context.Context, productType string) (decimal.Decimal, error) {
	bets, prizes, err := s.plays.TrailingTotals(ctx, productType, time.Now().Add(-rtpWindow))
	if err != nil {
		return decimal.Zero, err
	}
	if bets.IsZero() {
		return decimal.Zero, nil
	}
	return prizes.Div(bets).Mul(decimal.NewFromInt(100)).Round(2), nil
}
