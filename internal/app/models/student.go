package models

import "time"

// Student defines the student account model based on the 'students' table
type Student struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	FullName     string    `json:"name" db:"full_name" example:"Alice Murphy"`
	Email        string    `json:"email" db:"email" example:"alice@example.ie"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	University   *string   `json:"university,omitempty" db:"university"`
	Major        *string   `json:"major,omitempty" db:"major"`
	GPA          *float64  `json:"gpa,omitempty" db:"gpa"`
	Skills       *string   `json:"skills,omitempty" db:"skills"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
