package repositories

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func getBalance(t *testing.T, repo *WalletRepository, userID uuid.UUID) decimal.Decimal {
	wallet, err := repo.GetByUserID(context.Background(), userID)
	assert.NoError(t, err)
	return wallet.Balance
}

func TestWalletRepository_CreditCreatesWallet(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewWalletRepository(db, WalletTableReal)
	userID := uuid.New()

	wallet, err := repo.Credit(context.Background(), userID, decimal.NewFromInt(100), true)
	assert.NoError(t, err)
	assert.Equal(t, userID, wallet.UserID)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(100)))
	assert.True(t, wallet.TotalDeposited.Equal(decimal.NewFromInt(100)))
	assert.True(t, wallet.TotalSpent.Equal(decimal.Zero))
}

func TestWalletRepository_CreditAccumulates(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewWalletRepository(db, WalletTableReal)
	userID := uuid.New()

	_, err := repo.Credit(context.Background(), userID, decimal.NewFromInt(100), true)
	assert.NoError(t, err)

	// Prize credits grow the balance but not the lifetime deposit counter.
	wallet, err := repo.Credit(context.Background(), userID, decimal.NewFromInt(40), false)
	assert.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(140)))
	assert.True(t, wallet.TotalDeposited.Equal(decimal.NewFromInt(100)))
}

func TestWalletRepository_Debit(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewWalletRepository(db, WalletTableReal)
	userID := uuid.New()

	_, err := repo.Credit(context.Background(), userID, decimal.NewFromInt(100), true)
	assert.NoError(t, err)

	wallet, err := repo.Debit(context.Background(), userID, decimal.NewFromInt(30), true)
	assert.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(70)))
	assert.True(t, wallet.TotalSpent.Equal(decimal.NewFromInt(30)))

	// Withdrawals do not count toward total_spent.
	wallet, err = repo.Debit(context.Background(), userID, decimal.NewFromInt(20), false)
	assert.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(50)))
	assert.True(t, wallet.TotalSpent.Equal(decimal.NewFromInt(30)))
}

func TestWalletRepository_DebitInsufficientFunds(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewWalletRepository(db, WalletTableReal)
	userID := uuid.New()

	_, err := repo.Credit(context.Background(), userID, decimal.NewFromInt(10), true)
	assert.NoError(t, err)

	_, err = repo.Debit(context.Background(), userID, decimal.NewFromInt(11), true)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	// The failed debit must not have touched the balance.
	assert.True(t, getBalance(t, repo, userID).Equal(decimal.NewFromInt(10)))
}

func TestWalletRepository_DebitMissingWallet(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewWalletRepository(db, WalletTableReal)

	_, err := repo.Debit(context.Background(), uuid.New(), decimal.NewFromInt(1), true)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestWalletRepository_GetByUserID_NotFound(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewWalletRepository(db, WalletTableReal)

	_, err := repo.GetByUserID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestWalletRepository_LedgersAreSeparate(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	real := NewWalletRepository(db, WalletTableReal)
	demo := NewWalletRepository(db, WalletTableDemo)
	userID := uuid.New()

	_, err := real.Credit(context.Background(), userID, decimal.NewFromInt(100), true)
	assert.NoError(t, err)
	_, err = demo.Credit(context.Background(), userID, decimal.NewFromInt(1000), false)
	assert.NoError(t, err)

	assert.True(t, getBalance(t, real, userID).Equal(decimal.NewFromInt(100)))
	assert.True(t, getBalance(t, demo, userID).Equal(decimal.NewFromInt(1000)))

	// A demo debit never reaches the real ledger.
	_, err = demo.Debit(context.Background(), userID, decimal.NewFromInt(500), true)
	assert.NoError(t, err)
	assert.True(t, getBalance(t, real, userID).Equal(decimal.NewFromInt(100)))
}

func TestWalletRepository_ConcurrentCredits(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewWalletRepository(db, WalletTableReal)
	userID := uuid.New()

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.Credit(context.Background(), userID, decimal.NewFromInt(1), true)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.True(t, getBalance(t, repo, userID).Equal(decimal.NewFromInt(workers)))
}

func TestWalletRepository_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewWalletRepository(db, WalletTableReal)
	userID := uuid.New()

	_, err := repo.Credit(context.Background(), userID, decimal.NewFromInt(50), true)
	assert.NoError(t, err)

	// 100 goroutines each try to take 1; only 50 can succeed.
	const workers = 100
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := repo.Debit(context.Background(), userID, decimal.NewFromInt(1), true); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, succeeded)
	assert.True(t, getBalance(t, repo, userID).Equal(decimal.Zero))
}
