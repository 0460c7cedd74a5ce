package constants

const MessageErrorFormat = "The '%s' format is invalid"

const (
	ErrCodeAccountExists       = "ACCOUNT_ALREADY_EXISTS"
	ErrCodeAccountNotFound     = "ACCOUNT_NOT_FOUND"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeInvalidAmount       = "INVALID_AMOUNT"
	ErrCodeInsufficientPoints  = "INSUFFICIENT_POINTS"
	ErrCodeInvalidReferralCode = "INVALID_REFERRAL_CODE"
	ErrCodeReferralCodeFormat  = "INVALID_REFERRAL_CODE_FORMAT"
	ErrCodeSelfReferral        = "SELF_REFERRAL"
	ErrCodeOperationFailed     = "OPERATION_FAILED"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
)

const (
	ErrMsgAccountExists       = "reward account already exists"
	ErrMsgAccountNotFound     = "reward account not found"
	ErrMsgUserNotFound        = "user not found"
	ErrMsgInvalidAmount       = "amount must be greater than zero"
	ErrMsgInsufficientPoints  = "insufficient points"
	ErrMsgInvalidReferralCode = "invalid or expired referral code"
	ErrMsgReferralCodeFormat  = "referral code format is invalid"
	ErrMsgSelfReferral        = "cannot redeem your own referral code"
	ErrMsgOperationFailed     = "operation failed"
)

var errorMessages = map[string]string{
	ErrCodeAccountExists:       ErrMsgAccountExists,
	ErrCodeAccountNotFound:     ErrMsgAccountNotFound,
	ErrCodeUserNotFound:        ErrMsgUserNotFound,
	ErrCodeInvalidAmount:       ErrMsgInvalidAmount,
	ErrCodeInsufficientPoints:  ErrMsgInsufficientPoints,
	ErrCodeInvalidReferralCode: ErrMsgInvalidReferralCode,
	ErrCodeReferralCodeFormat:  ErrMsgReferralCodeFormat,
	ErrCodeSelfReferral:        ErrMsgSelfReferral,
	ErrCodeOperationFailed:     ErrMsgOperationFailed,
}

func GetErrorMessage(code string) string {
	msg, exists := errorMessages[code]
	if !exists {
		return ""
	}
	return msg
}

const (
	AccountCreated     = "reward account created successfully"
	PointsRedeemed     = "points redeemed successfully"
	ReferralRedeemed   = "Referral code redeemed successfully! Welcome bonus awarded."
	ReferralGenerated  = "Referral code generated successfully"
	TransactionsListed = "reward transactions retrieved successfully"
)
