package models

import "time"

// ReferenceStatus enumerates reference request lifecycle states.
type ReferenceStatus string

const (
	// ReferenceStatusPending is the initial state of every request.
	ReferenceStatusPending ReferenceStatus = "pending"
	// ReferenceStatusCompleted is terminal: the referee submitted a response.
	ReferenceStatusCompleted ReferenceStatus = "completed"
	// ReferenceStatusDeclined is terminal: the referee declined to respond.
	ReferenceStatusDeclined ReferenceStatus = "declined"
)

// IsTerminal reports whether no further transition is permitted.
func (s ReferenceStatus) IsTerminal() bool {
	return s == ReferenceStatusCompleted || s == ReferenceStatusDeclined
}

// ReferenceRequest defines the reference request model based on the
// 'student_references' table. The access token grants the referee
// time-limited passwordless access to exactly this request.
type ReferenceRequest struct {
	ID            int64           `json:"id" db:"id" example:"1"`
	StudentID     int64           `json:"student_id" db:"student_id"`
	RefereeName   string          `json:"referee_name" db:"referee_name"`
	RefereeEmail  string          `json:"referee_email" db:"referee_email"`
	RefereePhone  *string         `json:"referee_phone,omitempty" db:"referee_phone"`
	Relationship  *string         `json:"relationship,omitempty" db:"relationship"`
	Company       *string         `json:"company,omitempty" db:"company"`
	Position      *string         `json:"position,omitempty" db:"position"`
	Status        ReferenceStatus `json:"status" db:"status" example:"pending"`
	AccessToken   string          `json:"-" db:"access_token"`
	TokenExpiry   time.Time       `json:"-" db:"token_expiry"`
	RequestDate   time.Time       `json:"request_date" db:"request_date"`
	ResponseDate  *time.Time      `json:"response_date" db:"response_date"`
	ReferenceText *string         `json:"reference_text,omitempty" db:"reference_text"`
	Rating        *int            `json:"rating,omitempty" db:"rating"`
}

// ReferenceStats aggregates a student's reference requests by status.
// Declined requests count toward the total only.
type ReferenceStats struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	AvgRating float64 `json:"avg_rating"`
}
