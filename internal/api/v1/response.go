package v1

import (
	"time"

	"github.com/shopexperts/rewards/internal/model"
	"github.com/shopexperts/rewards/internal/service"
)

type AccountResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	UserName        string    `json:"user_name"`
	TotalPoints     int64     `json:"total_points"`
	AvailablePoints int64     `json:"available_points"`
	UsedPoints      int64     `json:"used_points"`
	ReferralCode    string    `json:"referral_code"`
	TotalReferrals  int64     `json:"total_referrals"`
	CreatedAt       time.Time `json:"created_at"`
	LastUpdated     time.Time `json:"last_updated"`
}

type TransactionResponse struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"user_id"`
	UserName    string       `json:"user_name"`
	Type        model.TxType `json:"type"`
	Amount      int64        `json:"amount"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
}

type TransactionListResponse struct {
	Items      []TransactionResponse `json:"items"`
	Page       int                   `json:"page"`
	Size       int                   `json:"size"`
	TotalItems int64                 `json:"total_items"`
	TotalPages int64                 `json:"total_pages"`
}

type ReferralCodeResponse struct {
	ReferralCode string `json:"referral_code"`
	Message      string `json:"message"`
}

type ReferralRedeemResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ReferralStatsResponse struct {
	ReferralCode   string `json:"referral_code"`
	TotalReferrals int64  `json:"total_referrals"`
	ReferralBonus  int64  `json:"referral_bonus"`
}

func newAccountResponse(summary service.AccountSummary) AccountResponse {
	return AccountResponse{
		ID:              summary.Account.AccountID,
		UserID:          summary.Account.UserID,
		UserName:        summary.UserName,
		TotalPoints:     summary.Account.TotalPoints,
		AvailablePoints: summary.Account.AvailablePoints,
		UsedPoints:      summary.Account.RedeemedPoints,
		ReferralCode:    summary.ReferralCode,
		TotalReferrals:  summary.TotalReferrals,
		CreatedAt:       summary.Account.CreatedAt,
		LastUpdated:     summary.Account.UpdatedAt,
	}
}

func newTransactionResponse(result service.TransactionResult) TransactionResponse {
	return TransactionResponse{
		ID:          result.Transaction.TransactionID,
		UserID:      result.UserID,
		UserName:    result.UserName,
		Type:        result.Transaction.TxType,
		Amount:      result.Transaction.Points,
		Description: result.Transaction.Description,
		CreatedAt:   result.Transaction.CreatedAt,
	}
}

func newTransactionListResponse(page service.TransactionPage) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, newTransactionResponse(item))
	}

	return TransactionListResponse{
		Items:      items,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}
