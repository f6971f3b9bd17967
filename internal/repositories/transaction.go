package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

// TransactionRepository appends rows to the transaction log. The log is
// append-only; completed rows are never updated or deleted.
type TransactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Append records one completed financial movement.
func (r *TransactionRepository) Append(ctx context.Context, userID, walletID uuid.UUID, txType string, amount decimal.Decimal, idempotencyKey string) (*models.TransactionDB, error) {
	const query = `
		INSERT INTO transactions (transaction_id, user_id, wallet_id, type, amount, status, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING transaction_id, user_id, wallet_id, type, amount, status, idempotency_key, created_at
	`

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &txn, query,
		uuid.New(), userID, walletID, txType, amount, models.TxStatusCompleted, idempotencyKey)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, walletID, txType, amount, idempotencyKey},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListByUser returns the user's transaction history, newest first.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, wallet_id, type, amount, status, idempotency_key, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var txns []models.TransactionDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &txns, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(txns),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return txns, nil
}
