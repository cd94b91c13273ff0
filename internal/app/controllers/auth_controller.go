// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/services"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/middleware"
)

// AuthController handles registration and login for both account kinds
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// RegisterStudent handles student registration
// @Summary Register a new student
// @Description Creates a student account. The email must not be in use.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student registration information"
// @Success 201 {object} dto.AuthResponse "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or email already registered"
// @Router /auth/register/student [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student registration payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.authService.RegisterStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "Registration successful",
		User:    dto.NewStudentPayload(student),
	})
}

// RegisterEmployer handles employer registration
// @Summary Register a new employer
// @Description Creates an employer account. The email must not be in use.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterEmployerRequest true "Employer registration information"
// @Success 201 {object} dto.AuthResponse "Employer registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or email already registered"
// @Router /auth/register/employer [post]
func (c *AuthController) RegisterEmployer(ctx *gin.Context) {
	var req dto.RegisterEmployerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid employer registration payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	employer, err := c.authService.RegisterEmployer(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "Registration successful",
		User:    dto.NewEmployerPayload(employer),
	})
}

// LoginStudent handles student login
// @Summary Log in as a student
// @Description Verifies credentials and returns the account profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login/student [post]
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.authService.LoginStudent(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    dto.NewStudentPayload(student),
	})
}

// LoginEmployer handles employer login
// @Summary Log in as an employer
// @Description Verifies credentials and returns the account profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login/employer [post]
func (c *AuthController) LoginEmployer(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	employer, err := c.authService.LoginEmployer(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    dto.NewEmployerPayload(employer),
	})
}
