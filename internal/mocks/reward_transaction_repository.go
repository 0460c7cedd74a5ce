package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shopexperts/rewards/internal/model"
)

type RewardTransactionRepository struct {
	mock.Mock
}

func (m *RewardTransactionRepository) Create(ctx context.Context, tx *model.RewardTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *RewardTransactionRepository) ListByAccountID(ctx context.Context, accountID int64, page, size int) ([]model.RewardTransaction, int64, error) {
	args := m.Called(ctx, accountID, page, size)
	return args.Get(0).([]model.RewardTransaction), args.Get(1).(int64), args.Error(2)
}

func (m *RewardTransactionRepository) FindAllByAccountID(ctx context.Context, accountID int64) ([]model.RewardTransaction, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]model.RewardTransaction), args.Error(1)
}
