package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopexperts/rewards/internal/model"
)

// RewardTransactionRepository is the append-only history of an account.
// Create is called only from the ledger; there is no update or delete.
type RewardTransactionRepository interface {
	Create(ctx context.Context, tx *model.RewardTransaction) error
	ListByAccountID(ctx context.Context, accountID int64, page, size int) ([]model.RewardTransaction, int64, error)
	FindAllByAccountID(ctx context.Context, accountID int64) ([]model.RewardTransaction, error)
}

type rewardTransaction struct {
	db *gorm.DB
}

func NewRewardTransactionRepository(db *gorm.DB) RewardTransactionRepository {
	return &rewardTransaction{db: db}
}

func (r *rewardTransaction) Create(ctx context.Context, tx *model.RewardTransaction) error {
	db := GetTx(ctx, r.db)
	return db.Create(tx).Error
}

// ListByAccountID returns one page, newest first, ties broken by descending
// id so ordering stays stable across page boundaries. The total row count
// comes back alongside for pagination metadata.
func (r *rewardTransaction) ListByAccountID(ctx context.Context, accountID int64, page, size int) ([]model.RewardTransaction, int64, error) {
	db := GetTx(ctx, r.db)

	var total int64
	if err := db.Model(&model.RewardTransaction{}).
		Where("account_id = ?", accountID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txs []model.RewardTransaction
	err := db.Where("account_id = ?", accountID).
		Order("created_at DESC, transaction_id DESC").
		Offset(page * size).
		Limit(size).
		Find(&txs).Error
	if err != nil {
		return nil, 0, err
	}

	return txs, total, nil
}

func (r *rewardTransaction) FindAllByAccountID(ctx context.Context, accountID int64) ([]model.RewardTransaction, error) {
	db := GetTx(ctx, r.db)

	var txs []model.RewardTransaction
	err := db.Where("account_id = ?", accountID).
		Order("created_at DESC, transaction_id DESC").
		Find(&txs).Error
	if err != nil {
		return nil, err
	}

	return txs, nil
}
