package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shopexperts/rewards/internal/constants"
	"github.com/shopexperts/rewards/internal/model"
	"github.com/shopexperts/rewards/internal/repository"
)

const (
	BookingBonusPoints  = 10
	ReviewBonusPoints   = 5
	ReferrerBonusPoints = 50
	ReferredBonusPoints = 25

	bookingBonusDescription  = "Bonus for completing a booking"
	reviewBonusDescription   = "Bonus for writing a review"
	referredBonusDescription = "Welcome bonus for joining through referral"

	// referralBonusMarker classifies referral entries by description
	// substring. Any earned transaction whose free text contains the marker
	// counts as a referral, which is exactly as brittle as it sounds; the
	// predicate is named so a typed transaction subkind can replace it.
	referralBonusMarker = "Referral bonus"
)

var ErrSelfReferral = errors.New("SELF_REFERRAL")

// ReferralCodeCache remembers the code handed to a user within a session.
// Purely an optimization: decode never depends on it, and cache failures
// fall through to a fresh encode.
type ReferralCodeCache interface {
	Get(ctx context.Context, userID int64) (string, error)
	Set(ctx context.Context, userID int64, code string) error
}

// RewardService composes the ledger, the referral codec, the user directory
// and the notification sink into the operations the booking and review
// workflows consume.
type RewardService interface {
	CreateAccount(ctx context.Context, userID int64) (model.RewardAccount, error)
	GetAccountSummary(ctx context.Context, userID int64) (AccountSummary, error)
	GetTransactions(ctx context.Context, userID int64, page, size int) (TransactionPage, error)
	RedeemPoints(ctx context.Context, cmd RedeemPointsCommand) (TransactionResult, error)
	AwardBookingBonus(ctx context.Context, userID int64) error
	AwardReviewBonus(ctx context.Context, userID int64) error
	AwardReferralBonus(ctx context.Context, referrerID, referredID int64) error
	GenerateReferralCode(ctx context.Context, userID int64) (string, error)
	RedeemReferralCode(ctx context.Context, code string, newUserID int64) (bool, error)
	CountReferrals(ctx context.Context, userID int64) (int64, error)
}

type rewardService struct {
	ledger AccountLedger
	codec  ReferralCodec
	users  repository.UserRepository
	txRepo repository.RewardTransactionRepository
	sink   NotificationSink
	cache  ReferralCodeCache
	logger *zap.Logger
}

func NewRewardService(ledger AccountLedger, codec ReferralCodec, users repository.UserRepository,
	txRepo repository.RewardTransactionRepository, sink NotificationSink, cache ReferralCodeCache,
	logger *zap.Logger) RewardService {
	return &rewardService{
		ledger: ledger,
		codec:  codec,
		users:  users,
		txRepo: txRepo,
		sink:   sink,
		cache:  cache,
		logger: logger,
	}
}

func (s *rewardService) CreateAccount(ctx context.Context, userID int64) (model.RewardAccount, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return model.RewardAccount{}, userLookupError(err)
	}

	return s.ledger.CreateAccount(ctx, userID)
}

func (s *rewardService) GetAccountSummary(ctx context.Context, userID int64) (AccountSummary, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return AccountSummary{}, userLookupError(err)
	}

	account, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		return AccountSummary{}, err
	}

	code, err := s.GenerateReferralCode(ctx, userID)
	if err != nil {
		return AccountSummary{}, err
	}

	referrals, err := s.countReferrals(ctx, account.AccountID)
	if err != nil {
		return AccountSummary{}, err
	}

	return AccountSummary{
		Account:        account,
		UserName:       user.Name(),
		ReferralCode:   code,
		TotalReferrals: referrals,
	}, nil
}

func (s *rewardService) GetTransactions(ctx context.Context, userID int64, page, size int) (TransactionPage, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return TransactionPage{}, userLookupError(err)
	}

	account, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		return TransactionPage{}, err
	}

	txs, total, err := s.txRepo.ListByAccountID(ctx, account.AccountID, page, size)
	if err != nil {
		return TransactionPage{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	items := make([]TransactionResult, 0, len(txs))
	for _, tx := range txs {
		items = append(items, TransactionResult{
			Transaction: tx,
			UserID:      userID,
			UserName:    user.Name(),
		})
	}

	totalPages := int64(0)
	if size > 0 {
		totalPages = (total + int64(size) - 1) / int64(size)
	}

	return TransactionPage{
		Items:      items,
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

func (s *rewardService) RedeemPoints(ctx context.Context, cmd RedeemPointsCommand) (TransactionResult, error) {
	user, err := s.users.FindByID(ctx, cmd.UserID)
	if err != nil {
		return TransactionResult{}, userLookupError(err)
	}

	tx, err := s.ledger.Redeem(ctx, cmd.UserID, cmd.Amount, cmd.Description)
	if err != nil {
		return TransactionResult{}, err
	}

	return TransactionResult{Transaction: tx, UserID: cmd.UserID, UserName: user.Name()}, nil
}

func (s *rewardService) AwardBookingBonus(ctx context.Context, userID int64) error {
	return s.awardPoints(ctx, userID, BookingBonusPoints, bookingBonusDescription)
}

func (s *rewardService) AwardReviewBonus(ctx context.Context, userID int64) error {
	return s.awardPoints(ctx, userID, ReviewBonusPoints, reviewBonusDescription)
}

// AwardReferralBonus updates two accounts as two independent ledger
// transactions. A failure between the calls leaves the referrer awarded and
// the referred user not; there is no cross-account transaction here.
func (s *rewardService) AwardReferralBonus(ctx context.Context, referrerID, referredID int64) error {
	referred, err := s.users.FindByID(ctx, referredID)
	if err != nil {
		return userLookupError(err)
	}

	referrerBonus := fmt.Sprintf("Referral bonus for inviting %s", referred.FirstName)
	if err := s.awardPoints(ctx, referrerID, ReferrerBonusPoints, referrerBonus); err != nil {
		return err
	}

	return s.awardPoints(ctx, referredID, ReferredBonusPoints, referredBonusDescription)
}

func (s *rewardService) GenerateReferralCode(ctx context.Context, userID int64) (string, error) {
	if s.cache != nil {
		if code, err := s.cache.Get(ctx, userID); err == nil && code != "" {
			return code, nil
		}
	}

	code := s.codec.Encode(userID)

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, code); err != nil {
			s.logger.Warn("failed to cache referral code", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	return code, nil
}

func (s *rewardService) RedeemReferralCode(ctx context.Context, code string, newUserID int64) (bool, error) {
	referrerID, err := s.codec.Decode(ctx, code)
	if err != nil {
		return false, err
	}

	if referrerID == newUserID {
		return false, NewServiceError(constants.ErrCodeSelfReferral, ErrSelfReferral)
	}

	if _, err := s.users.FindByID(ctx, newUserID); err != nil {
		return false, userLookupError(err)
	}

	if err := s.AwardReferralBonus(ctx, referrerID, newUserID); err != nil {
		return false, err
	}

	s.logger.Info("referral code redeemed",
		zap.String("code", code),
		zap.Int64("referrer_id", referrerID),
		zap.Int64("referred_id", newUserID),
	)

	return true, nil
}

func (s *rewardService) CountReferrals(ctx context.Context, userID int64) (int64, error) {
	account, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		return 0, err
	}
	return s.countReferrals(ctx, account.AccountID)
}

func (s *rewardService) countReferrals(ctx context.Context, accountID int64) (int64, error) {
	txs, err := s.txRepo.FindAllByAccountID(ctx, accountID)
	if err != nil {
		return 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	var count int64
	for _, tx := range txs {
		if isReferralBonus(tx) {
			count++
		}
	}

	return count, nil
}

func isReferralBonus(tx model.RewardTransaction) bool {
	return strings.Contains(tx.Description, referralBonusMarker)
}

// awardPoints runs the ledger mutation and only then dispatches the
// notification. Sink failures are the sink's problem; the award stands.
func (s *rewardService) awardPoints(ctx context.Context, userID int64, points int64, description string) error {
	if _, err := s.ledger.Award(ctx, userID, points, description); err != nil {
		return err
	}

	s.sink.Notify(ctx, userID,
		"Points Earned!",
		fmt.Sprintf("You earned %d points: %s", points, description),
		model.NotificationPointsEarned)

	return nil
}

func userLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return NewServiceError(constants.ErrCodeUserNotFound, err)
	}
	return NewServiceError(constants.ErrCodeOperationFailed, err)
}
