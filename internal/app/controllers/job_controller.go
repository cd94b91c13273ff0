package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/services"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/middleware"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
)

// JobController handles job posting operations
type JobController struct {
	jobService services.JobService
	logger     zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService, logger zerolog.Logger) *JobController {
	return &JobController{
		jobService: jobService,
		logger:     logger,
	}
}

// ListJobs handles job listing
// @Summary List job postings
// @Description Returns all job postings, newest first. Optionally filtered by employer.
// @Tags jobs
// @Produce json
// @Param employer_id query int false "Filter by employer"
// @Success 200 {object} dto.JobsResponse "Job listings"
// @Router /jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	if raw := ctx.Query("employer_id"); raw != "" {
		employerID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid employer_id"))
			return
		}
		list, err := c.jobService.ListJobsByEmployer(ctx, employerID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.JobsResponse{Success: true, Jobs: dto.NewJobItems(list)})
		return
	}

	list, err := c.jobService.ListJobs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobsResponse{Success: true, Jobs: dto.NewJobItems(list)})
}

// GetJob handles single job retrieval
// @Summary Get a job posting
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.JobResponse "Job posting"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid job ID"))
		return
	}

	job, err := c.jobService.GetJob(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobResponse{Success: true, Job: dto.NewJobItem(job)})
}

// CreateJob handles job creation
// @Summary Post a new job
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body dto.CreateJobRequest true "Job posting"
// @Success 201 {object} dto.CreateJobResponse "Job posted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	job, err := c.jobService.CreateJob(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateJobResponse{
		Success: true,
		Message: "Job posted successfully",
		JobID:   job.ID,
	})
}
