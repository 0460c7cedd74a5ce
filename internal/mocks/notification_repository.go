package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shopexperts/rewards/internal/model"
)

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
