package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/services"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/middleware"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
)

// ApplicationController handles job application operations
type ApplicationController struct {
	applicationService services.ApplicationService
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService, logger zerolog.Logger) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		logger:             logger,
	}
}

// ListApplications handles application listing
// @Summary List applications
// @Description Returns applications, most recent first. Optionally filtered by student.
// @Tags applications
// @Produce json
// @Param student_id query int false "Filter by student"
// @Success 200 {object} dto.ApplicationsResponse "Application listings"
// @Router /applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	var studentID *int64
	if raw := ctx.Query("student_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid student_id"))
			return
		}
		studentID = &id
	}

	applications, err := c.applicationService.ListApplications(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if applications == nil {
		applications = []*models.Application{}
	}

	ctx.JSON(http.StatusOK, dto.ApplicationsResponse{
		Success:      true,
		Applications: applications,
	})
}

// SubmitApplication handles application submission
// @Summary Submit a job application
// @Description Records a student's application for a job. One application per (job, student) pair.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.SubmitApplicationRequest true "Application"
// @Success 201 {object} dto.SubmitApplicationResponse "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or duplicate application"
// @Router /applications [post]
func (c *ApplicationController) SubmitApplication(ctx *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	application, err := c.applicationService.SubmitApplication(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SubmitApplicationResponse{
		Success:       true,
		Message:       "Application submitted successfully",
		ApplicationID: application.ID,
	})
}
