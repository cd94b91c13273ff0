package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/auth"
)

// StudentStore is the student persistence surface the auth service needs
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	UpdateProfile(ctx context.Context, id int64, phone, university, major *string, gpa *float64, skills *string) error
}

// EmployerStore is the employer persistence surface the auth service needs
type EmployerStore interface {
	Create(ctx context.Context, employer *models.Employer) error
	GetByEmail(ctx context.Context, email string) (*models.Employer, error)
}

// AuthService handles account registration and credential verification
type AuthService interface {
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error)
	RegisterEmployer(ctx context.Context, req *dto.RegisterEmployerRequest) (*models.Employer, error)
	LoginStudent(ctx context.Context, email, password string) (*models.Student, error)
	LoginEmployer(ctx context.Context, email, password string) (*models.Employer, error)
	UpdateStudentProfile(ctx context.Context, id int64, req *dto.UpdateStudentProfileRequest) (*models.Student, error)
}

type authService struct {
	students  StudentStore
	employers EmployerStore
	logger    zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(students StudentStore, employers EmployerStore, logger zerolog.Logger) AuthService {
	return &authService{
		students:  students,
		employers: employers,
		logger:    logger,
	}
}

// RegisterStudent creates a student account with a bcrypt password hash.
// Email uniqueness is left to the database constraint so concurrent
// registrations cannot both succeed.
func (s *authService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	student := &models.Student{
		FullName:     strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Phone:        req.Phone,
		University:   req.University,
		Major:        req.Major,
		GPA:          req.GPA,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Msg("Student registered")
	return student, nil
}

// RegisterEmployer creates an employer account with a bcrypt password hash
func (s *authService) RegisterEmployer(ctx context.Context, req *dto.RegisterEmployerRequest) (*models.Employer, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	contact := ""
	if req.ContactPerson != nil {
		contact = strings.TrimSpace(*req.ContactPerson)
	}

	employer := &models.Employer{
		CompanyName:   strings.TrimSpace(req.Company),
		ContactPerson: contact,
		Email:         normalizeEmail(req.Email),
		PasswordHash:  hash,
		Phone:         req.Phone,
		Industry:      req.Industry,
		CompanySize:   req.CompanySize,
	}

	if err := s.employers.Create(ctx, employer); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("employerId", employer.ID).Msg("Employer registered")
	return employer, nil
}

// LoginStudent verifies student credentials. Unknown email and wrong
// password both map to ErrInvalidCredentials so the response does not leak
// which accounts exist.
func (s *authService) LoginStudent(ctx context.Context, email, password string) (*models.Student, error) {
	student, err := s.students.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(student.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return student, nil
}

// LoginEmployer verifies employer credentials
func (s *authService) LoginEmployer(ctx context.Context, email, password string) (*models.Employer, error) {
	employer, err := s.employers.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrEmployerNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(employer.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return employer, nil
}

// UpdateStudentProfile replaces the mutable profile fields of a student and
// returns the refreshed account.
func (s *authService) UpdateStudentProfile(ctx context.Context, id int64, req *dto.UpdateStudentProfileRequest) (*models.Student, error) {
	if err := s.students.UpdateProfile(ctx, id, req.Phone, req.University, req.Major, req.GPA, req.Skills); err != nil {
		return nil, err
	}

	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", id).Msg("Student profile updated")
	return student, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
