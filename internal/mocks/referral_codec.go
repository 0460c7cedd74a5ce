package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type ReferralCodec struct {
	mock.Mock
}

func (m *ReferralCodec) Encode(userID int64) string {
	args := m.Called(userID)
	return args.String(0)
}

func (m *ReferralCodec) Decode(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}
