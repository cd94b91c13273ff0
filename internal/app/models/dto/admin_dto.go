package dto

import (
	"time"

	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
)

// AdminUser is a row in the admin user listing, covering both account
// kinds with a type discriminator.
type AdminUser struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Type        string     `json:"type" example:"student"`
	Phone       *string    `json:"phone,omitempty"`
	University  *string    `json:"university,omitempty"`
	Major       *string    `json:"major,omitempty"`
	GPA         *float64   `json:"gpa,omitempty"`
	Industry    *string    `json:"industry,omitempty"`
	CompanySize *string    `json:"company_size,omitempty"`
	CreatedAt   *time.Time `json:"created_at"`
}

// AdminUsersResponse is the envelope for the admin user listing
type AdminUsersResponse struct {
	Success bool        `json:"success"`
	Users   []AdminUser `json:"users"`
}

// StatusCount is one row of a status breakdown
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// SystemOverview aggregates entity counts and status breakdowns for the
// admin dashboard.
type SystemOverview struct {
	Students             int           `json:"students"`
	Employers            int           `json:"employers"`
	Jobs                 int           `json:"jobs"`
	Applications         int           `json:"applications"`
	References           int           `json:"references"`
	ApplicationsByStatus []StatusCount `json:"applications_by_status"`
	ReferencesByStatus   []StatusCount `json:"references_by_status"`
	AvgReferenceRating   float64       `json:"avg_reference_rating"`
}

// SystemOverviewResponse is the envelope for the admin overview
type SystemOverviewResponse struct {
	Success  bool           `json:"success"`
	Overview SystemOverview `json:"overview"`
}

// NewAdminStudent builds an admin listing row from a student account
func NewAdminStudent(s *models.Student) AdminUser {
	createdAt := s.CreatedAt
	return AdminUser{
		ID:         s.ID,
		Name:       s.FullName,
		Email:      s.Email,
		Type:       "student",
		Phone:      s.Phone,
		University: s.University,
		Major:      s.Major,
		GPA:        s.GPA,
		CreatedAt:  &createdAt,
	}
}

// NewAdminEmployer builds an admin listing row from an employer account
func NewAdminEmployer(e *models.Employer) AdminUser {
	createdAt := e.CreatedAt
	return AdminUser{
		ID:          e.ID,
		Name:        e.CompanyName,
		Email:       e.Email,
		Type:        "employer",
		Phone:       e.Phone,
		Industry:    e.Industry,
		CompanySize: e.CompanySize,
		CreatedAt:   &createdAt,
	}
}
