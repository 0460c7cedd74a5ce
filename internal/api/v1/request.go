package v1

type RedeemPointsRequest struct {
	Amount      int64  `json:"amount" validate:"required,min=1"`
	Description string `json:"description" validate:"required,max=255"`
}

type TransactionListQuery struct {
	Page int `query:"page"`
	Size int `query:"size"`
}
