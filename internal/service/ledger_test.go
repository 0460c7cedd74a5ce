package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopexperts/rewards/internal/constants"
	"github.com/shopexperts/rewards/internal/model"
	"github.com/shopexperts/rewards/internal/repository"
	"github.com/shopexperts/rewards/internal/service"
)

// ledgerStore is an in-memory stand-in for the account and transaction
// tables. It deliberately exposes the same read-modify-write surface as the
// real repositories so the ledger's own serialization is what keeps
// concurrent awards from losing updates.
type ledgerStore struct {
	mu            sync.Mutex
	accounts      map[int64]model.RewardAccount
	nextAccountID int64
	txs           []model.RewardTransaction
	nextTxID      int64
}

func newLedgerStore() *ledgerStore {
	return &ledgerStore{accounts: make(map[int64]model.RewardAccount)}
}

func (s *ledgerStore) transactionsFor(accountID int64) []model.RewardTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.RewardTransaction
	for _, tx := range s.txs {
		if tx.AccountID == accountID {
			out = append(out, tx)
		}
	}
	return out
}

type storeAccounts struct{ store *ledgerStore }

func (r *storeAccounts) Create(_ context.Context, account *model.RewardAccount) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.UserID]; exists {
		return repository.ErrAccountExists
	}

	s.nextAccountID++
	account.AccountID = s.nextAccountID
	s.accounts[account.UserID] = *account
	return nil
}

func (r *storeAccounts) FindByUserID(_ context.Context, userID int64) (model.RewardAccount, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[userID]
	if !ok {
		return model.RewardAccount{}, repository.ErrAccountNotFound
	}
	return account, nil
}

func (r *storeAccounts) UpdateBalances(_ context.Context, account *model.RewardAccount) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts[account.UserID] = *account
	return nil
}

type storeTxs struct{ store *ledgerStore }

func (r *storeTxs) Create(_ context.Context, tx *model.RewardTransaction) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTxID++
	tx.TransactionID = s.nextTxID
	s.txs = append(s.txs, *tx)
	return nil
}

func (r *storeTxs) ListByAccountID(_ context.Context, accountID int64, page, size int) ([]model.RewardTransaction, int64, error) {
	txs := r.store.transactionsFor(accountID)
	return txs, int64(len(txs)), nil
}

func (r *storeTxs) FindAllByAccountID(_ context.Context, accountID int64) ([]model.RewardTransaction, error) {
	return r.store.transactionsFor(accountID), nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestLedger() (service.AccountLedger, *ledgerStore) {
	store := newLedgerStore()
	ledger := service.NewAccountLedger(
		passthroughTxManager{},
		&storeAccounts{store: store},
		&storeTxs{store: store},
		zap.NewNop(),
	)
	return ledger, store
}

func assertInvariant(t *testing.T, account model.RewardAccount) {
	t.Helper()
	assert.Equal(t, account.TotalPoints, account.AvailablePoints+account.RedeemedPoints)
	assert.GreaterOrEqual(t, account.TotalPoints, int64(0))
	assert.GreaterOrEqual(t, account.AvailablePoints, int64(0))
	assert.GreaterOrEqual(t, account.RedeemedPoints, int64(0))
}

func TestAccountLedger_CreateAccount(t *testing.T) {
	ledger, _ := newTestLedger()
	ctx := context.Background()

	account, err := ledger.CreateAccount(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), account.UserID)
	assert.Zero(t, account.TotalPoints)
	assert.Zero(t, account.AvailablePoints)
	assert.Zero(t, account.RedeemedPoints)

	_, err = ledger.CreateAccount(ctx, 7)

	var serviceErr service.Error
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, constants.ErrCodeAccountExists, serviceErr.Code)
}

func TestAccountLedger_Award(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	account, err := ledger.CreateAccount(ctx, 7)
	require.NoError(t, err)

	tx, err := ledger.Award(ctx, 7, 10, "Bonus for completing a booking")
	require.NoError(t, err)

	assert.Equal(t, model.TxTypeEarned, tx.TxType)
	assert.Equal(t, int64(10), tx.Points)
	assert.Equal(t, "Bonus for completing a booking", tx.Description)

	balance, err := ledger.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance.TotalPoints)
	assert.Equal(t, int64(10), balance.AvailablePoints)
	assert.Zero(t, balance.RedeemedPoints)
	assertInvariant(t, balance)

	assert.Len(t, store.transactionsFor(account.AccountID), 1)
}

func TestAccountLedger_AwardInvalidAmount(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	account, err := ledger.CreateAccount(ctx, 7)
	require.NoError(t, err)

	for _, amount := range []int64{0, -5} {
		_, err := ledger.Award(ctx, 7, amount, "bogus")

		var serviceErr service.Error
		require.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeInvalidAmount, serviceErr.Code)
	}

	assert.Empty(t, store.transactionsFor(account.AccountID))
}

func TestAccountLedger_AwardUnknownAccount(t *testing.T) {
	ledger, _ := newTestLedger()

	_, err := ledger.Award(context.Background(), 404, 10, "no account")

	var serviceErr service.Error
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, constants.ErrCodeAccountNotFound, serviceErr.Code)
}

func TestAccountLedger_Redeem(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	account, err := ledger.CreateAccount(ctx, 7)
	require.NoError(t, err)

	_, err = ledger.Award(ctx, 7, 100, "seed")
	require.NoError(t, err)

	tx, err := ledger.Redeem(ctx, 7, 30, "gift card")
	require.NoError(t, err)

	assert.Equal(t, model.TxTypeRedeemed, tx.TxType)
	assert.Equal(t, int64(30), tx.Points)

	balance, err := ledger.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance.TotalPoints)
	assert.Equal(t, int64(70), balance.AvailablePoints)
	assert.Equal(t, int64(30), balance.RedeemedPoints)
	assertInvariant(t, balance)

	assert.Len(t, store.transactionsFor(account.AccountID), 2)
}

func TestAccountLedger_RedeemInsufficientPoints(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	account, err := ledger.CreateAccount(ctx, 7)
	require.NoError(t, err)

	_, err = ledger.Award(ctx, 7, 20, "seed")
	require.NoError(t, err)

	_, err = ledger.Redeem(ctx, 7, 21, "too much")

	var serviceErr service.Error
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, constants.ErrCodeInsufficientPoints, serviceErr.Code)

	// Failed redeem leaves the account exactly as it was.
	balance, err := ledger.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(20), balance.TotalPoints)
	assert.Equal(t, int64(20), balance.AvailablePoints)
	assert.Zero(t, balance.RedeemedPoints)
	assert.Len(t, store.transactionsFor(account.AccountID), 1)
}

func TestAccountLedger_InvariantAcrossSequence(t *testing.T) {
	ledger, _ := newTestLedger()
	ctx := context.Background()

	_, err := ledger.CreateAccount(ctx, 7)
	require.NoError(t, err)

	ops := []struct {
		redeem bool
		amount int64
	}{
		{false, 50}, {false, 10}, {true, 25}, {false, 5}, {true, 40}, {true, 100}, {false, 1},
	}

	for _, op := range ops {
		if op.redeem {
			ledger.Redeem(ctx, 7, op.amount, "redeem")
		} else {
			ledger.Award(ctx, 7, op.amount, "award")
		}

		balance, err := ledger.GetBalance(ctx, 7)
		require.NoError(t, err)
		assertInvariant(t, balance)
	}
}

func TestAccountLedger_ConcurrentAwards(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	account, err := ledger.CreateAccount(ctx, 7)
	require.NoError(t, err)

	amounts := []int64{7, 9}

	var wg sync.WaitGroup
	for _, amount := range amounts {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			_, err := ledger.Award(ctx, 7, n, "concurrent award")
			assert.NoError(t, err)
		}(amount)
	}
	wg.Wait()

	balance, err := ledger.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(16), balance.TotalPoints)
	assert.Equal(t, int64(16), balance.AvailablePoints)
	assert.Len(t, store.transactionsFor(account.AccountID), 2)
}

func TestAccountLedger_ConcurrentMixedLoad(t *testing.T) {
	ledger, store := newTestLedger()
	ctx := context.Background()

	account, err := ledger.CreateAccount(ctx, 7)
	require.NoError(t, err)

	const workers = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.Award(ctx, 7, 2, "load")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	balance, err := ledger.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*2), balance.TotalPoints)
	assert.Equal(t, int64(workers*2), balance.AvailablePoints)
	assertInvariant(t, balance)
	assert.Len(t, store.transactionsFor(account.AccountID), workers)
}

func TestAccountLedger_IndependentAccountsInParallel(t *testing.T) {
	ledger, _ := newTestLedger()
	ctx := context.Background()

	for userID := int64(1); userID <= 4; userID++ {
		_, err := ledger.CreateAccount(ctx, userID)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for userID := int64(1); userID <= 4; userID++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				_, err := ledger.Award(ctx, id, id, "parallel")
				assert.NoError(t, err)
			}
		}(userID)
	}
	wg.Wait()

	for userID := int64(1); userID <= 4; userID++ {
		balance, err := ledger.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, userID*10, balance.TotalPoints)
		assertInvariant(t, balance)
	}
}
