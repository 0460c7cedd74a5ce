package model

import "time"

const (
	NotificationPointsEarned  = "POINTS_EARNED"
	NotificationReferralBonus = "REFERRAL_BONUS"
)

type Notification struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	Title     string    `gorm:"column:title;type:varchar(100);not null"`
	Message   string    `gorm:"column:message;type:varchar(255)"`
	Kind      string    `gorm:"column:kind;type:varchar(30);not null"`
	Read      bool      `gorm:"column:is_read;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
}

func (Notification) TableName() string {
	return "notifications"
}
