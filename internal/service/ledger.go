package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/shopexperts/rewards/internal/constants"
	"github.com/shopexperts/rewards/internal/model"
	"github.com/shopexperts/rewards/internal/repository"
)

var (
	ErrInvalidAmount      = errors.New("INVALID_AMOUNT")
	ErrInsufficientPoints = errors.New("INSUFFICIENT_POINTS")
)

// AccountLedger owns the balance state of reward accounts. All mutation goes
// through Award and Redeem; both keep total == available + redeemed and apply
// the balance change and the history entry as one database transaction.
type AccountLedger interface {
	CreateAccount(ctx context.Context, userID int64) (model.RewardAccount, error)
	Award(ctx context.Context, userID int64, points int64, description string) (model.RewardTransaction, error)
	Redeem(ctx context.Context, userID int64, points int64, description string) (model.RewardTransaction, error)
	GetBalance(ctx context.Context, userID int64) (model.RewardAccount, error)
}

type accountLedger struct {
	txManager   repository.TxManager
	accountRepo repository.RewardAccountRepository
	txRepo      repository.RewardTransactionRepository
	locks       *accountLocks
	log         *zap.Logger
}

func NewAccountLedger(txManager repository.TxManager, accountRepo repository.RewardAccountRepository,
	txRepo repository.RewardTransactionRepository, log *zap.Logger) AccountLedger {
	return &accountLedger{
		txManager:   txManager,
		accountRepo: accountRepo,
		txRepo:      txRepo,
		locks:       newAccountLocks(),
		log:         log,
	}
}

func (s *accountLedger) CreateAccount(ctx context.Context, userID int64) (model.RewardAccount, error) {
	account := model.RewardAccount{
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.accountRepo.Create(ctx, &account); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			return model.RewardAccount{}, NewServiceError(constants.ErrCodeAccountExists, err)
		}

		s.log.Error("failed to create reward account", zap.Int64("user_id", userID), zap.Error(err))
		return model.RewardAccount{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.log.Info("reward account created", zap.Int64("user_id", userID), zap.Int64("account_id", account.AccountID))
	return account, nil
}

func (s *accountLedger) Award(ctx context.Context, userID int64, points int64, description string) (model.RewardTransaction, error) {
	if points <= 0 {
		return model.RewardTransaction{}, NewServiceError(constants.ErrCodeInvalidAmount, ErrInvalidAmount)
	}

	lock := s.locks.lock(userID)
	defer lock.Unlock()

	account, err := s.accountRepo.FindByUserID(ctx, userID)
	if err != nil {
		return model.RewardTransaction{}, accountLookupError(err)
	}

	account.TotalPoints += points
	account.AvailablePoints += points
	account.UpdatedAt = time.Now()

	transaction := model.RewardTransaction{
		AccountID:   account.AccountID,
		TxType:      model.TxTypeEarned,
		Points:      points,
		Description: description,
		CreatedAt:   time.Now(),
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.accountRepo.UpdateBalances(ctx, &account); err != nil {
			s.log.Error("failed to update balances", zap.Int64("account_id", account.AccountID), zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if err := s.txRepo.Create(ctx, &transaction); err != nil {
			s.log.Error("failed to append transaction", zap.Int64("account_id", account.AccountID), zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		return nil
	})
	if err != nil {
		return model.RewardTransaction{}, err
	}

	s.log.Info("points awarded",
		zap.Int64("user_id", userID),
		zap.Int64("points", points),
		zap.String("description", description),
	)

	return transaction, nil
}

func (s *accountLedger) Redeem(ctx context.Context, userID int64, points int64, description string) (model.RewardTransaction, error) {
	if points <= 0 {
		return model.RewardTransaction{}, NewServiceError(constants.ErrCodeInvalidAmount, ErrInvalidAmount)
	}

	lock := s.locks.lock(userID)
	defer lock.Unlock()

	account, err := s.accountRepo.FindByUserID(ctx, userID)
	if err != nil {
		return model.RewardTransaction{}, accountLookupError(err)
	}

	if account.AvailablePoints < points {
		return model.RewardTransaction{}, NewServiceError(constants.ErrCodeInsufficientPoints, ErrInsufficientPoints)
	}

	account.AvailablePoints -= points
	account.RedeemedPoints += points
	account.UpdatedAt = time.Now()

	transaction := model.RewardTransaction{
		AccountID:   account.AccountID,
		TxType:      model.TxTypeRedeemed,
		Points:      points,
		Description: description,
		CreatedAt:   time.Now(),
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.accountRepo.UpdateBalances(ctx, &account); err != nil {
			s.log.Error("failed to update balances", zap.Int64("account_id", account.AccountID), zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		if err := s.txRepo.Create(ctx, &transaction); err != nil {
			s.log.Error("failed to append transaction", zap.Int64("account_id", account.AccountID), zap.Error(err))
			return NewServiceError(constants.ErrCodeOperationFailed, err)
		}

		return nil
	})
	if err != nil {
		return model.RewardTransaction{}, err
	}

	s.log.Info("points redeemed",
		zap.Int64("user_id", userID),
		zap.Int64("points", points),
		zap.String("description", description),
	)

	return transaction, nil
}

func (s *accountLedger) GetBalance(ctx context.Context, userID int64) (model.RewardAccount, error) {
	account, err := s.accountRepo.FindByUserID(ctx, userID)
	if err != nil {
		return model.RewardAccount{}, accountLookupError(err)
	}
	return account, nil
}

func accountLookupError(err error) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return NewServiceError(constants.ErrCodeAccountNotFound, err)
	}
	return NewServiceError(constants.ErrCodeOperationFailed, err)
}
