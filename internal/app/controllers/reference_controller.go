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

// ReferenceController handles the reference request lifecycle, both the
// student-facing endpoints and the token-based referee endpoints.
type ReferenceController struct {
	referenceService services.ReferenceService
	logger           zerolog.Logger
}

// NewReferenceController creates a new ReferenceController
func NewReferenceController(referenceService services.ReferenceService, logger zerolog.Logger) *ReferenceController {
	return &ReferenceController{
		referenceService: referenceService,
		logger:           logger,
	}
}

// ListReferences handles reference listing
// @Summary List reference requests
// @Description Returns reference requests, most recent first. Optionally filtered by student.
// @Tags references
// @Produce json
// @Param student_id query int false "Filter by student"
// @Success 200 {object} dto.ReferencesResponse "Reference listings"
// @Router /references [get]
func (c *ReferenceController) ListReferences(ctx *gin.Context) {
	var studentID *int64
	if raw := ctx.Query("student_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid student_id"))
			return
		}
		studentID = &id
	}

	references, err := c.referenceService.ListReferences(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, referencesEnvelope(references))
}

// ListForStudent handles per-student reference listing
// @Summary List a student's reference requests
// @Tags references
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.ReferencesResponse "Reference listings"
// @Router /references/student/{studentId} [get]
func (c *ReferenceController) ListForStudent(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid student ID"))
		return
	}

	references, err := c.referenceService.ListReferences(ctx, &studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, referencesEnvelope(references))
}

// GetStats handles per-student reference statistics
// @Summary Get a student's reference statistics
// @Description Totals, completed and pending counts plus the average rating of completed references.
// @Tags references
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.ReferenceStatsResponse "Statistics"
// @Router /references/student/{studentId}/stats [get]
func (c *ReferenceController) GetStats(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid student ID"))
		return
	}

	stats, err := c.referenceService.GetStats(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReferenceStatsResponse{Success: true, Stats: *stats})
}

// RequestReference handles reference request creation
// @Summary Request a reference
// @Description Creates a pending reference request and emails the referee an access link.
// @Tags references
// @Accept json
// @Produce json
// @Param request body dto.RequestReferenceRequest true "Reference request"
// @Success 201 {object} dto.RequestReferenceResponse "Reference requested"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /references [post]
func (c *ReferenceController) RequestReference(ctx *gin.Context) {
	var req dto.RequestReferenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	ref, err := c.referenceService.RequestReference(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RequestReferenceResponse{
		Success:     true,
		Message:     "Reference requested successfully",
		ReferenceID: ref.ID,
		Token:       ref.AccessToken,
	})
}

// ResolveByToken handles the referee-facing request lookup
// @Summary Resolve a reference request by access token
// @Tags references
// @Produce json
// @Param token path string true "Access token"
// @Success 200 {object} dto.ReferenceResponse "Reference request"
// @Failure 404 {object} dto.ErrorResponse "Token not found"
// @Failure 410 {object} dto.ErrorResponse "Token expired"
// @Router /references/token/{token} [get]
func (c *ReferenceController) ResolveByToken(ctx *gin.Context) {
	ref, err := c.referenceService.ResolveByToken(ctx, ctx.Param("token"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReferenceResponse{Success: true, Reference: ref})
}

// SubmitResponseByToken handles the referee-facing response submission
// @Summary Submit a reference response by access token
// @Tags references
// @Accept json
// @Produce json
// @Param token path string true "Access token"
// @Param request body dto.SubmitReferenceResponseRequest true "Response"
// @Success 200 {object} dto.ReferenceResponse "Reference completed"
// @Failure 400 {object} dto.ErrorResponse "Invalid rating"
// @Failure 404 {object} dto.ErrorResponse "Token not found"
// @Failure 409 {object} dto.ErrorResponse "Already resolved"
// @Failure 410 {object} dto.ErrorResponse "Token expired"
// @Router /references/token/{token}/response [post]
func (c *ReferenceController) SubmitResponseByToken(ctx *gin.Context) {
	var req dto.SubmitReferenceResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	ref, err := c.referenceService.SubmitResponseByToken(ctx, ctx.Param("token"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReferenceResponse{
		Success:   true,
		Message:   "Reference submitted successfully",
		Reference: ref,
	})
}

// DeclineByToken handles the referee-facing decline
// @Summary Decline a reference request by access token
// @Tags references
// @Produce json
// @Param token path string true "Access token"
// @Success 200 {object} dto.ReferenceResponse "Reference declined"
// @Failure 404 {object} dto.ErrorResponse "Token not found"
// @Failure 409 {object} dto.ErrorResponse "Already resolved"
// @Failure 410 {object} dto.ErrorResponse "Token expired"
// @Router /references/token/{token}/decline [post]
func (c *ReferenceController) DeclineByToken(ctx *gin.Context) {
	ref, err := c.referenceService.DeclineByToken(ctx, ctx.Param("token"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReferenceResponse{
		Success:   true,
		Message:   "Reference declined",
		Reference: ref,
	})
}

// SubmitResponse handles response submission by request ID
// @Summary Submit a reference response
// @Tags references
// @Accept json
// @Produce json
// @Param id path int true "Reference request ID"
// @Param request body dto.SubmitReferenceResponseRequest true "Response"
// @Success 200 {object} dto.ReferenceResponse "Reference completed"
// @Failure 400 {object} dto.ErrorResponse "Invalid rating"
// @Failure 404 {object} dto.ErrorResponse "Reference not found"
// @Failure 409 {object} dto.ErrorResponse "Already resolved"
// @Router /references/{id}/response [post]
func (c *ReferenceController) SubmitResponse(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid reference ID"))
		return
	}

	var req dto.SubmitReferenceResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	ref, err := c.referenceService.SubmitResponse(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReferenceResponse{
		Success:   true,
		Message:   "Reference submitted successfully",
		Reference: ref,
	})
}

// Decline handles declining a reference request by ID
// @Summary Decline a reference request
// @Tags references
// @Produce json
// @Param id path int true "Reference request ID"
// @Success 200 {object} dto.ReferenceResponse "Reference declined"
// @Failure 404 {object} dto.ErrorResponse "Reference not found"
// @Failure 409 {object} dto.ErrorResponse "Already resolved"
// @Router /references/{id}/decline [post]
func (c *ReferenceController) Decline(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid reference ID"))
		return
	}

	ref, err := c.referenceService.DeclineReference(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReferenceResponse{
		Success:   true,
		Message:   "Reference declined",
		Reference: ref,
	})
}

func referencesEnvelope(refs []*models.ReferenceRequest) dto.ReferencesResponse {
	if refs == nil {
		refs = []*models.ReferenceRequest{}
	}
	return dto.ReferencesResponse{Success: true, References: refs}
}
