package dto

import (
	"time"

	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
)

// RegisterStudentRequest represents a student registration request
type RegisterStudentRequest struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required,min=6"`
	Phone      *string  `json:"phone"`
	University *string  `json:"university"`
	Major      *string  `json:"major"`
	GPA        *float64 `json:"gpa"`
}

// RegisterEmployerRequest represents an employer registration request
type RegisterEmployerRequest struct {
	Company       string  `json:"company" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=6"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Industry      *string `json:"industry"`
	CompanySize   *string `json:"company_size"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserPayload is the public projection of an account returned by register
// and login. Type discriminates student vs employer.
type UserPayload struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Type          string     `json:"type" example:"student"`
	Phone         *string    `json:"phone,omitempty"`
	University    *string    `json:"university,omitempty"`
	Major         *string    `json:"major,omitempty"`
	GPA           *float64   `json:"gpa,omitempty"`
	Skills        *string    `json:"skills,omitempty"`
	ContactPerson *string    `json:"contact_person,omitempty"`
	Industry      *string    `json:"industry,omitempty"`
	CompanySize   *string    `json:"company_size,omitempty"`
	CreatedAt     *time.Time `json:"created_at"`
}

// AuthResponse is the envelope for register/login endpoints
type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    UserPayload `json:"user"`
}

// NewStudentPayload builds the public projection of a student account
func NewStudentPayload(s *models.Student) UserPayload {
	createdAt := s.CreatedAt
	return UserPayload{
		ID:         s.ID,
		Name:       s.FullName,
		Email:      s.Email,
		Type:       "student",
		Phone:      s.Phone,
		University: s.University,
		Major:      s.Major,
		GPA:        s.GPA,
		Skills:     s.Skills,
		CreatedAt:  &createdAt,
	}
}

// NewEmployerPayload builds the public projection of an employer account
func NewEmployerPayload(e *models.Employer) UserPayload {
	createdAt := e.CreatedAt
	contact := e.ContactPerson
	return UserPayload{
		ID:            e.ID,
		Name:          e.CompanyName,
		Email:         e.Email,
		Type:          "employer",
		Phone:         e.Phone,
		ContactPerson: &contact,
		Industry:      e.Industry,
		CompanySize:   e.CompanySize,
		CreatedAt:     &createdAt,
	}
}

// UpdateStudentProfileRequest represents a student profile update
type UpdateStudentProfileRequest struct {
	Phone      *string  `json:"phone"`
	University *string  `json:"university"`
	Major      *string  `json:"major"`
	GPA        *float64 `json:"gpa" binding:"omitempty,min=0,max=4"`
	Skills     *string  `json:"skills"`
}
