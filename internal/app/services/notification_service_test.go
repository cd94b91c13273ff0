package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
)

func TestNotificationLifecycle(t *testing.T) {
	store := &fakeNotificationStore{}
	svc := NewNotificationService(store, zerolog.Nop())

	created, err := svc.CreateNotification(context.Background(), &dto.CreateNotificationRequest{
		RecipientID:      1,
		RecipientType:    "student",
		Message:          "hello",
		NotificationType: "general",
	})
	require.NoError(t, err)
	assert.False(t, created.IsRead)

	listed, err := svc.ListNotifications(context.Background(), 1, models.RecipientStudent)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "hello", listed[0].Message)

	require.NoError(t, svc.MarkRead(context.Background(), created.ID))
	listed, err = svc.ListNotifications(context.Background(), 1, models.RecipientStudent)
	require.NoError(t, err)
	assert.True(t, listed[0].IsRead)

	// other recipients see nothing
	other, err := svc.ListNotifications(context.Background(), 1, models.RecipientEmployer)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationStore{}, zerolog.Nop())

	err := svc.MarkRead(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
}
