package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/controllers"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
)

type stubAuthService struct {
	student  *models.Student
	employer *models.Employer
	err      error
}

func (s *stubAuthService) RegisterStudent(context.Context, *dto.RegisterStudentRequest) (*models.Student, error) {
	return s.student, s.err
}
func (s *stubAuthService) RegisterEmployer(context.Context, *dto.RegisterEmployerRequest) (*models.Employer, error) {
	return s.employer, s.err
}
func (s *stubAuthService) LoginStudent(context.Context, string, string) (*models.Student, error) {
	return s.student, s.err
}
func (s *stubAuthService) LoginEmployer(context.Context, string, string) (*models.Employer, error) {
	return s.employer, s.err
}
func (s *stubAuthService) UpdateStudentProfile(context.Context, int64, *dto.UpdateStudentProfileRequest) (*models.Student, error) {
	return s.student, s.err
}

func newAuthRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	authController := controllers.NewAuthController(svc, zerolog.Nop())
	studentController := controllers.NewStudentController(svc, zerolog.Nop())

	auth := router.Group("/api/auth")
	auth.POST("/register/student", authController.RegisterStudent)
	auth.POST("/register/employer", authController.RegisterEmployer)
	auth.POST("/login/student", authController.LoginStudent)
	auth.POST("/login/employer", authController.LoginEmployer)
	router.PUT("/api/students/:id/profile", studentController.UpdateProfile)
	return router
}

func sampleStudent() *models.Student {
	return &models.Student{
		ID:        1,
		FullName:  "Alice Murphy",
		Email:     "alice@example.com",
		CreatedAt: time.Now(),
	}
}

func TestRegisterStudentEndpoint(t *testing.T) {
	router := newAuthRouter(&stubAuthService{student: sampleStudent()})

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register/student", gin.H{
		"name":     "Alice Murphy",
		"email":    "alice@example.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "student", resp.User.Type)
	assert.Equal(t, "Alice Murphy", resp.User.Name)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterStudentEndpointShortPassword(t *testing.T) {
	router := newAuthRouter(&stubAuthService{student: sampleStudent()})

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register/student", gin.H{
		"name":     "Alice Murphy",
		"email":    "alice@example.com",
		"password": "abc",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterStudentEndpointDuplicate(t *testing.T) {
	router := newAuthRouter(&stubAuthService{err: apperrors.ErrEmailAlreadyExists})

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register/student", gin.H{
		"name":     "Alice Murphy",
		"email":    "alice@example.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeDuplicateIdentity, resp.Code)
}

func TestLoginStudentEndpointBadCredentials(t *testing.T) {
	router := newAuthRouter(&stubAuthService{err: apperrors.ErrInvalidCredentials})

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login/student", gin.H{
		"email":    "alice@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, resp.Code)
}

func TestLoginEmployerEndpoint(t *testing.T) {
	router := newAuthRouter(&stubAuthService{employer: &models.Employer{
		ID:          2,
		CompanyName: "TechCorp",
		Email:       "hr@techcorp.example.com",
		CreatedAt:   time.Now(),
	}})

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login/employer", gin.H{
		"email":    "hr@techcorp.example.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "employer", resp.User.Type)
	assert.Equal(t, "TechCorp", resp.User.Name)
}

func TestUpdateProfileEndpoint(t *testing.T) {
	router := newAuthRouter(&stubAuthService{student: sampleStudent()})

	rec := doJSON(t, router, http.MethodPut, "/api/students/1/profile", gin.H{
		"university": "Dublin Business School",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/students/abc/profile", gin.H{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProfileEndpointNotFound(t *testing.T) {
	router := newAuthRouter(&stubAuthService{err: apperrors.ErrStudentNotFound})

	rec := doJSON(t, router, http.MethodPut, "/api/students/99/profile", gin.H{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
