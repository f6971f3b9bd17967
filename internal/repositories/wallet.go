package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

// Wallet table names. Demo wallets have an identical shape but live in a
// separate table so simulated money never mixes with the real ledger.
const (
	WalletTableReal = "wallets"
	WalletTableDemo = "demo_wallets"
)

// WalletRepository handles balance mutations for one ledger (real or demo).
// All mutations are single conditional statements; consistency under
// concurrent plays is delegated to the database, never to in-process locks.
type WalletRepository struct {
	db    *sqlx.DB
	table string
}

func NewWalletRepository(db *sqlx.DB, table string) *WalletRepository {
	return &WalletRepository{db: db, table: table}
}

// Debit removes amount from the user's balance if and only if the current
// balance covers it. The guard is part of the UPDATE itself, so two
// concurrent debits can never both succeed against the same funds. Returns
// sql.ErrNoRows when the balance is insufficient or the wallet is missing;
// no mutation happens in that case. countAsSpend adds the amount to the
// lifetime total_spent counter (bets do, withdrawals don't).
func (r *WalletRepository) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, countAsSpend bool) (*models.WalletDB, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET balance = balance - $2,
		    total_spent = total_spent + CASE WHEN $3 THEN $2 ELSE 0::NUMERIC END,
		    updated_at = NOW()
		WHERE user_id = $1 AND balance >= $2
		RETURNING wallet_id, user_id, balance, total_deposited, total_spent, created_at, updated_at
	`, r.table)

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &wallet, query, userID, amount, countAsSpend)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount, countAsSpend},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Credit adds amount to the user's balance, creating the wallet on first
// contact. countAsDeposit adds the amount to the lifetime total_deposited
// counter (deposits do, prize credits don't).
func (r *WalletRepository) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, countAsDeposit bool) (*models.WalletDB, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (wallet_id, user_id, balance, total_deposited, total_spent, created_at, updated_at)
		VALUES ($1, $2, $3, CASE WHEN $4 THEN $3 ELSE 0::NUMERIC END, 0, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET balance = %s.balance + EXCLUDED.balance,
		              total_deposited = %s.total_deposited + EXCLUDED.total_deposited,
		              updated_at = NOW()
		RETURNING wallet_id, user_id, balance, total_deposited, total_spent, created_at, updated_at
	`, r.table, r.table, r.table)

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &wallet, query, uuid.New(), userID, amount, countAsDeposit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount, countAsDeposit},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// GetByUserID retrieves the user's wallet. Returns sql.ErrNoRows when the
// user has never been credited on this ledger.
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	query := fmt.Sprintf(`
		SELECT wallet_id, user_id, balance, total_deposited, total_spent, created_at, updated_at
		FROM %s
		WHERE user_id = $1
	`, r.table)

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &wallet, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
