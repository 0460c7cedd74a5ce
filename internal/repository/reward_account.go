package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/shopexperts/rewards/internal/model"
)

var (
	ErrAccountExists   = errors.New("ACCOUNT_EXISTS")
	ErrAccountNotFound = errors.New("ACCOUNT_NOT_FOUND")
)

type RewardAccountRepository interface {
	Create(ctx context.Context, account *model.RewardAccount) error
	FindByUserID(ctx context.Context, userID int64) (model.RewardAccount, error)
	UpdateBalances(ctx context.Context, account *model.RewardAccount) error
}

type rewardAccount struct {
	db *gorm.DB
}

func NewRewardAccountRepository(db *gorm.DB) RewardAccountRepository {
	return &rewardAccount{db: db}
}

func (r *rewardAccount) Create(ctx context.Context, account *model.RewardAccount) error {
	db := GetTx(ctx, r.db)

	err := db.Create(account).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrAccountExists
	}

	return err
}

func (r *rewardAccount) FindByUserID(ctx context.Context, userID int64) (model.RewardAccount, error) {
	db := GetTx(ctx, r.db)

	var account model.RewardAccount
	if err := db.Where("user_id = ?", userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.RewardAccount{}, ErrAccountNotFound
		}
		return model.RewardAccount{}, err
	}

	return account, nil
}

// UpdateBalances writes all three balance columns in one statement so a row
// never holds a mix of old and new values.
func (r *rewardAccount) UpdateBalances(ctx context.Context, account *model.RewardAccount) error {
	db := GetTx(ctx, r.db)

	return db.Model(&model.RewardAccount{}).
		Where("account_id = ?", account.AccountID).
		Updates(map[string]interface{}{
			"total_points":     account.TotalPoints,
			"available_points": account.AvailablePoints,
			"redeemed_points":  account.RedeemedPoints,
			"updated_at":       account.UpdatedAt,
		}).Error
}
