package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shopexperts/rewards/internal/model"
)

type AccountLedger struct {
	mock.Mock
}

func (m *AccountLedger) CreateAccount(ctx context.Context, userID int64) (model.RewardAccount, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.RewardAccount), args.Error(1)
}

func (m *AccountLedger) Award(ctx context.Context, userID int64, points int64, description string) (model.RewardTransaction, error) {
	args := m.Called(ctx, userID, points, description)
	return args.Get(0).(model.RewardTransaction), args.Error(1)
}

func (m *AccountLedger) Redeem(ctx context.Context, userID int64, points int64, description string) (model.RewardTransaction, error) {
	args := m.Called(ctx, userID, points, description)
	return args.Get(0).(model.RewardTransaction), args.Error(1)
}

func (m *AccountLedger) GetBalance(ctx context.Context, userID int64) (model.RewardAccount, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.RewardAccount), args.Error(1)
}
