package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/draw"
	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

// Play outcome statuses returned to the caller. Duplicate is not an error:
// it carries the same outcome the original request produced.
const (
	PlayStatusOK        = "ok"
	PlayStatusDuplicate = "duplicate"
)

// PlayStore defines the play-row operations of the orchestrator.
type PlayStore interface {
	Reserve(ctx context.Context, userID uuid.UUID, productType string, bet decimal.Decimal, idempotencyKey string, demo bool) (*models.PlayDB, error)
	GetByIdempotencyKey(ctx context.Context, idempotencyKey string) (*models.PlayDB, error)
	Settle(ctx context.Context, playID uuid.UUID, prize decimal.Decimal, itemID *uuid.UUID) error
}

// PoolReader reads the drawable pool from storage.
type PoolReader interface {
	GetPool(ctx context.Context, productType string) ([]models.PoolEntry, error)
}

// PoolCache caches pool snapshots with a short TTL.
type PoolCache interface {
	GetPool(ctx context.Context, productType string) ([]models.PoolEntry, error)
	SetPool(ctx context.Context, productType string, pool []models.PoolEntry) error
}

// PayoutController is the RTP/budget controller consulted around the draw.
type PayoutController interface {
	GetSettings(ctx context.Context, productType string) (*models.RTPSettingsDB, error)
	Gate(settings *models.RTPSettingsDB, rng draw.Rand) GateDecision
	SettlePrize(ctx context.Context, productType string, prize decimal.Decimal) (remaining decimal.Decimal, alert bool, err error)
	CurrentRTP(ctx context.Context, productType string) (decimal.Decimal, error)
}

// FinanceWriter folds settlements into the daily financial rollup.
type FinanceWriter interface {
	ApplySettlement(ctx context.Context, productType string, day time.Time, bet, prize decimal.Decimal, budgetAlert bool) (*models.FinancialControlDB, error)
}

// PlayRequest is one paid play submitted by a client.
type PlayRequest struct {
	ProductType string
	BetAmount   decimal.Decimal
	ClientTxID  string
}

// PlayResult is the settled outcome returned to the client.
type PlayResult struct {
	Status        string
	PrizeAmount   decimal.Decimal
	ItemWon       string
	RTPAfter      decimal.Decimal
	WalletBalance decimal.Decimal
}

// PlayService is the orchestrator: it composes the idempotency guard, the
// wallet debit, the payout gate, the draw, and the financial rollup into one
// atomic unit per play. Nothing is compensated after the fact — either the
// whole unit commits or none of it is observable.
type PlayService struct {
	plays      PlayStore
	realLedger Ledger
	demoLedger Ledger
	txLog      TransactionAppender
	pool       PoolReader
	poolCache  PoolCache
	payout     PayoutController
	finance    FinanceWriter
	txRunner   TxRunner
	publisher  ActivityEmitter
	rng        draw.Rand
}

func NewPlayService(
	plays PlayStore,
	realLedger, demoLedger Ledger,
	txLog TransactionAppender,
	pool PoolReader,
	poolCache PoolCache,
	payout PayoutController,
	finance FinanceWriter,
	txRunner TxRunner,
	publisher ActivityEmitter,
	rng draw.Rand,
) *PlayService {
	return &PlayService{
		plays:      plays,
		realLedger: realLedger,
		demoLedger: demoLedger,
		txLog:      txLog,
		pool:       pool,
		poolCache:  poolCache,
		payout:     payout,
		finance:    finance,
		txRunner:   txRunner,
		publisher:  publisher,
		rng:        rng,
	}
}

// DeriveIdempotencyKey builds a replay token for callers that did not supply
// one: same user, same product, same five-second bucket collapse into one
// play. Weaker than a client token, but still absorbs double taps.
func DeriveIdempotencyKey(userID uuid.UUID, productType string, now time.Time) string {
	return fmt.Sprintf("%s:%s:%d", userID, productType, now.Unix()/5)
}

// loadPool returns the drawable pool, preferring the cached snapshot.
func (s *PlayService) loadPool(ctx context.Context, productType string) ([]models.PoolEntry, error) {
	pool, err := s.poolCache.GetPool(ctx, productType)
	if err == nil {
		return pool, nil
	}

	pool, err = s.pool.GetPool(ctx, productType)
	if err != nil {
		return nil, err
	}
	if err := s.poolCache.SetPool(ctx, productType, pool); err != nil {
		logger.Log.Errorw("failed to cache prize pool", "product", productType, "error", err)
	}
	return pool, nil
}

// Play executes one paid play for the user.
//
// The pool snapshot and configuration may be seconds stale; the wallet, the
// play row, and the financial rollup are strictly consistent because every
// mutation runs in one database transaction. A retry with the same
// idempotency key — concurrent or later — observes the committed outcome of
// the first attempt instead of producing a second debit.
func (s *PlayService) Play(ctx context.Context, userID uuid.UUID, demo bool, req PlayRequest) (*PlayResult, error) {
	key := req.ClientTxID
	if key == "" {
		key = DeriveIdempotencyKey(userID, req.ProductType, time.Now())
	}

	pool, err := s.loadPool(ctx, req.ProductType)
	if err != nil {
		logger.Log.Errorw("failed to load prize pool", "product", req.ProductType, "error", err)
		return nil, err
	}

	entries := make([]draw.Entry, 0, len(pool))
	byID := make(map[string]models.PoolEntry, len(pool))
	var drawable int64
	for _, e := range pool {
		entries = append(entries, draw.Entry{ItemID: e.ItemID.String(), Weight: e.Weight})
		byID[e.ItemID.String()] = e
		if e.Weight > 0 {
			drawable += e.Weight
		}
	}
	if drawable == 0 {
		// Operator configuration fault: reject before any money moves.
		logger.Log.Errorw("prize pool has no drawable entries", "product", req.ProductType)
		return nil, draw.ErrEmptyPool
	}

	ledger := s.realLedger
	if demo {
		ledger = s.demoLedger
	}

	result := &PlayResult{Status: PlayStatusOK}
	var wonRarity string

	err = s.txRunner.Do(ctx, func(ctx context.Context) error {
		play, err := s.plays.Reserve(ctx, userID, req.ProductType, req.BetAmount, key, demo)
		if err != nil {
			return err
		}
		if play == nil {
			// Already handled: short-circuit to the stored outcome.
			prior, err := s.plays.GetByIdempotencyKey(ctx, key)
			if err != nil {
				return err
			}
			result.Status = PlayStatusDuplicate
			result.PrizeAmount = prior.PrizeAmount
			if prior.ItemID != nil {
				if e, ok := byID[prior.ItemID.String()]; ok {
					result.ItemWon = e.Name
				} else {
					result.ItemWon = prior.ItemID.String()
				}
			}
			return nil
		}

		// Fails closed: an insufficient balance rolls the reservation back
		// with everything else.
		wallet, err := ledger.Debit(ctx, userID, req.BetAmount, true)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInsufficientFunds
			}
			return err
		}
		if !demo {
			if _, err := s.txLog.Append(ctx, userID, wallet.WalletID, models.TxPurchase, req.BetAmount, key); err != nil {
				return err
			}
		}

		settings, err := s.payout.GetSettings(ctx, req.ProductType)
		if err != nil {
			return err
		}

		prize := decimal.Zero
		var itemID *uuid.UUID
		var wonEntry models.PoolEntry

		decision := s.payout.Gate(settings, s.rng)
		if decision.ForceNoPrize {
			logger.Log.Infow("prize forced to zero", "product", req.ProductType, "reason", decision.Reason, "user", userID)
		} else {
			drawnID, err := draw.Select(entries, s.rng)
			if err != nil {
				return err
			}
			wonEntry = byID[drawnID]
			if wonEntry.BaseValue.IsPositive() {
				prize = wonEntry.BaseValue
				id := wonEntry.ItemID
				itemID = &id
			} else {
				// Zero-value items are the pool's own no-prize outcomes;
				// record which one was drawn.
				id := wonEntry.ItemID
				itemID = &id
			}
		}

		if err := s.plays.Settle(ctx, play.PlayID, prize, itemID); err != nil {
			return err
		}

		if prize.IsPositive() {
			wallet, err = ledger.Credit(ctx, userID, prize, false)
			if err != nil {
				return err
			}
			if !demo {
				if _, err := s.txLog.Append(ctx, userID, wallet.WalletID, models.TxPrize, prize, key); err != nil {
					return err
				}
			}
		}

		if !demo {
			alert := false
			if prize.IsPositive() {
				if _, alert, err = s.payout.SettlePrize(ctx, req.ProductType, prize); err != nil {
					return err
				}
			}
			day := time.Now().UTC().Truncate(24 * time.Hour)
			if _, err := s.finance.ApplySettlement(ctx, req.ProductType, day, req.BetAmount, prize, alert); err != nil {
				return err
			}
		}

		result.PrizeAmount = prize
		if itemID != nil {
			result.ItemWon = wonEntry.Name
			wonRarity = wonEntry.Rarity
		}
		result.WalletBalance = wallet.Balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Status == PlayStatusDuplicate {
		if wallet, err := ledger.GetByUserID(ctx, userID); err == nil {
			result.WalletBalance = wallet.Balance
		}
		return result, nil
	}

	if rtp, err := s.payout.CurrentRTP(ctx, req.ProductType); err == nil {
		result.RTPAfter = rtp
	} else {
		logger.Log.Errorw("failed to compute trailing rtp", "product", req.ProductType, "error", err)
	}

	if !demo {
		s.publisher.Publish(ctx, models.ActivityEvent{
			EventID:     uuid.NewString(),
			Type:        models.EventPlaySettled,
			UserID:      userID.String(),
			ProductType: req.ProductType,
			Amount:      req.BetAmount,
			PrizeAmount: result.PrizeAmount,
			Rarity:      wonRarity,
			Timestamp:   time.Now().Unix(),
		})
	}

	return result, nil
}
