package service

import (
	"time"

	"github.com/shopexperts/rewards/internal/model"
)

type RedeemPointsCommand struct {
	UserID      int64
	Amount      int64
	Description string
}

type AccountSummary struct {
	Account        model.RewardAccount
	UserName       string
	ReferralCode   string
	TotalReferrals int64
}

type TransactionResult struct {
	Transaction model.RewardTransaction
	UserID      int64
	UserName    string
}

type TransactionPage struct {
	Items      []TransactionResult
	Page       int
	Size       int
	TotalItems int64
	TotalPages int64
}

type NotificationMessage struct {
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}
