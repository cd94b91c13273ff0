package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
)

// NotificationStore is the notification persistence surface the services need
type NotificationStore interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByRecipient(ctx context.Context, recipientID int64, recipientType models.RecipientType) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

// NotificationService handles the notification log
type NotificationService interface {
	CreateNotification(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error)
	ListNotifications(ctx context.Context, recipientID int64, recipientType models.RecipientType) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

type notificationService struct {
	notifications NotificationStore
	logger        zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifications NotificationStore, logger zerolog.Logger) NotificationService {
	return &notificationService{
		notifications: notifications,
		logger:        logger,
	}
}

// CreateNotification records a notification for a student or employer
func (s *notificationService) CreateNotification(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	notification := &models.Notification{
		RecipientID:      req.RecipientID,
		RecipientType:    models.RecipientType(req.RecipientType),
		Message:          req.Message,
		NotificationType: req.NotificationType,
	}

	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

// ListNotifications retrieves a recipient's notifications, newest first
func (s *notificationService) ListNotifications(ctx context.Context, recipientID int64, recipientType models.RecipientType) ([]*models.Notification, error) {
	return s.notifications.GetByRecipient(ctx, recipientID, recipientType)
}

// MarkRead flags a notification as read
func (s *notificationService) MarkRead(ctx context.Context, id int64) error {
	return s.notifications.MarkRead(ctx, id)
}
