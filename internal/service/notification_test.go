package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopexperts/rewards/internal/mocks"
	"github.com/shopexperts/rewards/internal/model"
	"github.com/shopexperts/rewards/internal/service"
)

func TestNotificationService_Deliver(t *testing.T) {
	repo := &mocks.NotificationRepository{}
	svc := service.NewNotificationService(repo, zap.NewNop())

	sentAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	msg := service.NotificationMessage{
		UserID:    7,
		Title:     "Points Earned!",
		Message:   "You earned 10 points: Bonus for completing a booking",
		Kind:      model.NotificationPointsEarned,
		CreatedAt: sentAt,
	}

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
		return n.UserID == 7 &&
			n.Title == "Points Earned!" &&
			n.Kind == model.NotificationPointsEarned &&
			n.CreatedAt.Equal(sentAt)
	})).Return(nil)

	err := svc.Deliver(context.Background(), msg)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestNotificationService_DeliverStoreFailure(t *testing.T) {
	repo := &mocks.NotificationRepository{}
	svc := service.NewNotificationService(repo, zap.NewNop())

	repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	err := svc.Deliver(context.Background(), service.NotificationMessage{UserID: 7})

	assert.ErrorIs(t, err, assert.AnError)
}
