package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type ReferralCodeCache struct {
	mock.Mock
}

func (m *ReferralCodeCache) Get(ctx context.Context, userID int64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *ReferralCodeCache) Set(ctx context.Context, userID int64, code string) error {
	args := m.Called(ctx, userID, code)
	return args.Error(0)
}
