package dto

import (
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
)

// CreateNotificationRequest represents a notification creation request
type CreateNotificationRequest struct {
	RecipientID      int64  `json:"recipient_id" binding:"required,min=1"`
	RecipientType    string `json:"recipient_type" binding:"required,oneof=student employer"`
	Message          string `json:"message" binding:"required"`
	NotificationType string `json:"type" binding:"required"`
}

// NotificationsResponse is the envelope for notification listings
type NotificationsResponse struct {
	Success       bool                   `json:"success"`
	Notifications []*models.Notification `json:"notifications"`
}
