package models

import "time"

// RecipientType discriminates which account table a notification targets.
type RecipientType string

const (
	RecipientStudent  RecipientType = "student"
	RecipientEmployer RecipientType = "employer"
)

// Notification defines the append-only notification model based on the
// 'notifications' table. Records are only ever created and marked read.
type Notification struct {
	ID               int64         `json:"id" db:"id" example:"1"`
	RecipientID      int64         `json:"recipient_id" db:"recipient_id"`
	RecipientType    RecipientType `json:"recipient_type" db:"recipient_type" example:"student"`
	Message          string        `json:"message" db:"message"`
	NotificationType string        `json:"type" db:"notification_type" example:"reference_completed"`
	IsRead           bool          `json:"is_read" db:"is_read"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
}
