package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

var (
	// ErrInsufficientFunds is returned when a debit would take a balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Ledger defines the balance operations of one wallet ledger. The real and
// demo ledgers implement the same interface; callers pick one through the
// selector instead of branching through every operation.
type Ledger interface {
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, countAsSpend bool) (*models.WalletDB, error)
	Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, countAsDeposit bool) (*models.WalletDB, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
}

// TransactionAppender appends rows to the append-only transaction log.
type TransactionAppender interface {
	Append(ctx context.Context, userID, walletID uuid.UUID, txType string, amount decimal.Decimal, idempotencyKey string) (*models.TransactionDB, error)
}

// TxRunner executes a function inside one atomic database transaction.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ActivityEmitter publishes activity events after commits.
type ActivityEmitter interface {
	Publish(ctx context.Context, event models.ActivityEvent)
}

// WalletService handles deposits, withdrawals, and balance reads across the
// real and demo ledgers.
type WalletService struct {
	realLedger Ledger
	demoLedger Ledger
	txLog      TransactionAppender
	txRunner   TxRunner
	publisher  ActivityEmitter
}

func NewWalletService(realLedger, demoLedger Ledger, txLog TransactionAppender, txRunner TxRunner, publisher ActivityEmitter) *WalletService {
	return &WalletService{
		realLedger: realLedger,
		demoLedger: demoLedger,
		txLog:      txLog,
		txRunner:   txRunner,
		publisher:  publisher,
	}
}

// ledgerFor routes an operation to the real or demo ledger.
func (s *WalletService) ledgerFor(demo bool) Ledger {
	if demo {
		return s.demoLedger
	}
	return s.realLedger
}

// Deposit credits funds. Real deposits append to the transaction log and
// emit a deposit_completed event; demo deposits mirror the balance operation
// only, so simulated money never appears in financial records.
func (s *WalletService) Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, demo bool) (*models.WalletDB, error) {
	var wallet *models.WalletDB

	err := s.txRunner.Do(ctx, func(ctx context.Context) error {
		var err error
		wallet, err = s.ledgerFor(demo).Credit(ctx, userID, amount, true)
		if err != nil {
			return err
		}
		if demo {
			return nil
		}
		_, err = s.txLog.Append(ctx, userID, wallet.WalletID, models.TxDeposit, amount, uuid.NewString())
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to deposit", "userID", userID, "amount", amount, "demo", demo, "error", err)
		return nil, err
	}

	if !demo {
		s.publisher.Publish(ctx, models.ActivityEvent{
			EventID:   uuid.NewString(),
			Type:      models.EventDepositCompleted,
			UserID:    userID.String(),
			Amount:    amount,
			Timestamp: time.Now().Unix(),
		})
	}

	return wallet, nil
}

// Withdraw debits funds. Fails closed with ErrInsufficientFunds when the
// balance does not cover the amount; no partial mutation happens.
func (s *WalletService) Withdraw(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, demo bool) (*models.WalletDB, error) {
	var wallet *models.WalletDB

	err := s.txRunner.Do(ctx, func(ctx context.Context) error {
		var err error
		wallet, err = s.ledgerFor(demo).Debit(ctx, userID, amount, false)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInsufficientFunds
			}
			return err
		}
		if demo {
			return nil
		}
		_, err = s.txLog.Append(ctx, userID, wallet.WalletID, models.TxWithdrawal, amount, uuid.NewString())
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			logger.Log.Errorw("failed to withdraw", "userID", userID, "amount", amount, "demo", demo, "error", err)
		}
		return nil, err
	}

	if !demo {
		s.publisher.Publish(ctx, models.ActivityEvent{
			EventID:   uuid.NewString(),
			Type:      models.EventWithdrawalCompleted,
			UserID:    userID.String(),
			Amount:    amount,
			Timestamp: time.Now().Unix(),
		})
	}

	return wallet, nil
}

// GetBalance returns the user's balance on the requested ledger. A user who
// has never been credited reads as zero rather than missing.
func (s *WalletService) GetBalance(ctx context.Context, userID uuid.UUID, demo bool) (decimal.Decimal, error) {
	wallet, err := s.ledgerFor(demo).GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, nil
		}
		logger.Log.Errorw("failed to get balance", "userID", userID, "demo", demo, "error", err)
		return decimal.Zero, err
	}
	return wallet.Balance, nil
}
