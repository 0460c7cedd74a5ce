package v1

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/shopexperts/rewards/internal/api/contract"
	"github.com/shopexperts/rewards/internal/api/validator"
	"github.com/shopexperts/rewards/internal/constants"
	"github.com/shopexperts/rewards/internal/metrics"
	"github.com/shopexperts/rewards/internal/service"
)

// userIDHeader carries the caller identity placed by the upstream gateway.
// Authentication itself happens before requests reach this service.
const userIDHeader = "X-User-ID"

const defaultPageSize = 20

type Handler struct {
	logger     *zap.Logger
	rewards    service.RewardService
	XValidator validator.IXValidator
	metrics    *metrics.Metrics
}

func NewHandler(logger *zap.Logger, rewards service.RewardService, XValidator validator.IXValidator, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:     logger,
		rewards:    rewards,
		XValidator: XValidator,
		metrics:    metrics,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) CreateAccount(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	account, err := h.rewards.CreateAccount(c.UserContext(), userID)
	if err != nil {
		return err
	}

	h.metrics.RecordAccountCreated()

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.AccountCreated,
		TrackID:    trackID(c),
		Result:     account,
	})
}

func (h *Handler) GetAccount(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	summary, err := h.rewards.GetAccountSummary(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		TrackID:    trackID(c),
		Result:     newAccountResponse(summary),
	})
}

func (h *Handler) GetTransactions(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var query TransactionListQuery
	if err := c.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid pagination parameters")
	}
	if query.Page < 0 {
		query.Page = 0
	}
	if query.Size <= 0 {
		query.Size = defaultPageSize
	}

	page, err := h.rewards.GetTransactions(c.UserContext(), userID, query.Page, query.Size)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.TransactionsListed,
		TrackID:    trackID(c),
		Result:     newTransactionListResponse(page),
	})
}

func (h *Handler) RedeemPoints(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var request RedeemPointsRequest
	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", request))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	result, err := h.rewards.RedeemPoints(c.UserContext(), service.RedeemPointsCommand{
		UserID:      userID,
		Amount:      request.Amount,
		Description: request.Description,
	})
	if err != nil {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) && serviceErr.Code == constants.ErrCodeInsufficientPoints {
			h.metrics.RecordInsufficientPoints()
		}
		return err
	}

	h.metrics.RecordPointsRedeemed(request.Amount)

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.PointsRedeemed,
		TrackID:    trackID(c),
		Result:     newTransactionResponse(result),
	})
}

func (h *Handler) GenerateReferralCode(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	code, err := h.rewards.GenerateReferralCode(c.UserContext(), userID)
	if err != nil {
		return err
	}

	h.metrics.RecordReferralCodeGenerated()

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		TrackID:    trackID(c),
		Result: ReferralCodeResponse{
			ReferralCode: code,
			Message:      constants.ReferralGenerated,
		},
	})
}

// RedeemReferralCode answers 200 with success=false for the expected
// rejection reasons (bad code, self referral, unknown referrer); only
// infrastructure failures travel to the error middleware.
func (h *Handler) RedeemReferralCode(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	code := c.Params("code")

	success, err := h.rewards.RedeemReferralCode(c.UserContext(), code, userID)
	if err != nil {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) && isReferralRejection(serviceErr.Code) {
			h.metrics.RecordReferralRedemption("rejected")
			return c.JSON(contract.Response{
				Code:    serviceErr.Code,
				TrackID: trackID(c),
				Result: ReferralRedeemResponse{
					Success: false,
					Message: constants.GetErrorMessage(serviceErr.Code),
				},
			})
		}

		h.metrics.RecordReferralRedemption("error")
		return err
	}

	h.metrics.RecordReferralRedemption("success")

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		TrackID:    trackID(c),
		Result: ReferralRedeemResponse{
			Success: success,
			Message: constants.ReferralRedeemed,
		},
	})
}

func (h *Handler) GetReferralStats(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	summary, err := h.rewards.GetAccountSummary(c.UserContext(), userID)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		TrackID:    trackID(c),
		Result: ReferralStatsResponse{
			ReferralCode:   summary.ReferralCode,
			TotalReferrals: summary.TotalReferrals,
			ReferralBonus:  summary.TotalReferrals * service.ReferrerBonusPoints,
		},
	})
}

// AwardBookingBonus and AwardReviewBonus are the hooks the booking and review
// services call after their own state commits.
func (h *Handler) AwardBookingBonus(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.rewards.AwardBookingBonus(c.UserContext(), userID); err != nil {
		return err
	}

	h.metrics.RecordPointsAwarded("booking", service.BookingBonusPoints)

	return c.JSON(contract.Response{Successful: true, Code: "success", TrackID: trackID(c)})
}

func (h *Handler) AwardReviewBonus(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.rewards.AwardReviewBonus(c.UserContext(), userID); err != nil {
		return err
	}

	h.metrics.RecordPointsAwarded("review", service.ReviewBonusPoints)

	return c.JSON(contract.Response{Successful: true, Code: "success", TrackID: trackID(c)})
}

func currentUserID(c *fiber.Ctx) (int64, error) {
	raw := c.Get(userIDHeader)
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "missing "+userIDHeader+" header")
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+userIDHeader+" header")
	}

	return userID, nil
}

func trackID(c *fiber.Ctx) string {
	id, _ := c.Locals("track_id").(string)
	return id
}

func isReferralRejection(code string) bool {
	switch code {
	case constants.ErrCodeReferralCodeFormat,
		constants.ErrCodeInvalidReferralCode,
		constants.ErrCodeSelfReferral,
		constants.ErrCodeUserNotFound:
		return true
	}
	return false
}
