package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type NotificationSink struct {
	mock.Mock
}

func (m *NotificationSink) Notify(ctx context.Context, userID int64, title, message, kind string) {
	m.Called(ctx, userID, title, message, kind)
}
