package models

import "time"

// Employer defines the employer account model based on the 'employers' table
type Employer struct {
	ID            int64     `json:"id" db:"id" example:"1"`
	CompanyName   string    `json:"name" db:"company_name" example:"Acme Ltd"`
	ContactPerson string    `json:"contact_person" db:"contact_person"`
	Email         string    `json:"email" db:"email"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	Phone         *string   `json:"phone,omitempty" db:"phone"`
	Industry      *string   `json:"industry,omitempty" db:"industry"`
	CompanySize   *string   `json:"company_size,omitempty" db:"company_size"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
