package model

import "time"

// RewardAccount holds the point balances for a single user. One account per
// user, created at signup, never deleted. The ledger keeps
// TotalPoints == AvailablePoints + RedeemedPoints after every mutation.
type RewardAccount struct {
	AccountID       int64     `gorm:"column:account_id;primaryKey;autoIncrement"`
	UserID          int64     `gorm:"column:user_id;not null;uniqueIndex"`
	TotalPoints     int64     `gorm:"column:total_points;not null;default:0"`
	AvailablePoints int64     `gorm:"column:available_points;not null;default:0"`
	RedeemedPoints  int64     `gorm:"column:redeemed_points;not null;default:0"`
	CreatedAt       time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
	UpdatedAt       time.Time `gorm:"column:updated_at;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"`
}

func (RewardAccount) TableName() string {
	return "reward_accounts"
}
