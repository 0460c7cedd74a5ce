package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shopexperts/rewards/internal/model"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}
