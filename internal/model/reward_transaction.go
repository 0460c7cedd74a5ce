package model

import "time"

type TxType string

const (
	TxTypeEarned   TxType = "EARNED"
	TxTypeRedeemed TxType = "REDEEMED"
)

// RewardTransaction is one immutable entry in an account's history. Points is
// always the positive magnitude of the change; TxType says which direction.
type RewardTransaction struct {
	TransactionID int64     `gorm:"column:transaction_id;primaryKey;autoIncrement"`
	AccountID     int64     `gorm:"column:account_id;not null;index"`
	TxType        TxType    `gorm:"column:tx_type;type:varchar(20);not null"`
	Points        int64     `gorm:"column:points;not null"`
	Description   string    `gorm:"column:description;type:varchar(255)"`
	CreatedAt     time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
}

func (RewardTransaction) TableName() string {
	return "reward_transactions"
}
