package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
)

type fakeEmployerStore struct {
	nextID    int64
	employers map[int64]*models.Employer
	byEmail   map[string]int64
}

func newFakeEmployerStore() *fakeEmployerStore {
	return &fakeEmployerStore{
		employers: make(map[int64]*models.Employer),
		byEmail:   make(map[string]int64),
	}
}

func (f *fakeEmployerStore) Create(_ context.Context, e *models.Employer) error {
	if _, exists := f.byEmail[e.Email]; exists {
		return apperrors.ErrEmailAlreadyExists
	}
	f.nextID++
	e.ID = f.nextID
	e.CreatedAt = time.Now()
	clone := *e
	f.employers[e.ID] = &clone
	f.byEmail[e.Email] = e.ID
	return nil
}

func (f *fakeEmployerStore) GetByEmail(_ context.Context, email string) (*models.Employer, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return nil, apperrors.ErrEmployerNotFound
	}
	clone := *f.employers[id]
	return &clone, nil
}

func newAuthFixture() (AuthService, *fakeStudentStore, *fakeEmployerStore) {
	students := newFakeStudentStore()
	employers := newFakeEmployerStore()
	return NewAuthService(students, employers, zerolog.Nop()), students, employers
}

func TestRegisterAndLoginStudent(t *testing.T) {
	svc, _, _ := newAuthFixture()

	student, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Name:     "Alice Murphy",
		Email:    "Alice@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", student.Email, "emails are normalized to lower case")
	assert.NotEqual(t, "secret123", student.PasswordHash, "passwords are never stored in the clear")

	loggedIn, err := svc.LoginStudent(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, student.ID, loggedIn.ID)
}

func TestRegisterStudentDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Name: "Alice Murphy", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Name: "Other Alice", Email: "alice@example.com", Password: "different",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginStudentBadCredentials(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Name: "Alice Murphy", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.LoginStudent(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// unknown account maps to the same error
	_, err = svc.LoginStudent(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterAndLoginEmployer(t *testing.T) {
	svc, _, _ := newAuthFixture()

	contact := "Sarah Byrne"
	employer, err := svc.RegisterEmployer(context.Background(), &dto.RegisterEmployerRequest{
		Company:       "TechCorp",
		Email:         "hr@techcorp.example.com",
		Password:      "secret123",
		ContactPerson: &contact,
	})
	require.NoError(t, err)
	assert.Equal(t, "TechCorp", employer.CompanyName)
	assert.Equal(t, "Sarah Byrne", employer.ContactPerson)

	loggedIn, err := svc.LoginEmployer(context.Background(), "hr@techcorp.example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, employer.ID, loggedIn.ID)

	_, err = svc.LoginEmployer(context.Background(), "hr@techcorp.example.com", "nope")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestUpdateStudentProfile(t *testing.T) {
	svc, _, _ := newAuthFixture()

	student, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Name: "Alice Murphy", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	phone := "+353 1 234 5678"
	university := "Dublin Business School"
	gpa := 3.8
	skills := "Go,SQL"
	updated, err := svc.UpdateStudentProfile(context.Background(), student.ID, &dto.UpdateStudentProfileRequest{
		Phone:      &phone,
		University: &university,
		GPA:        &gpa,
		Skills:     &skills,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
	require.NotNil(t, updated.GPA)
	assert.Equal(t, 3.8, *updated.GPA)

	_, err = svc.UpdateStudentProfile(context.Background(), 999, &dto.UpdateStudentProfileRequest{})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
