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

// NotificationController handles the notification log
type NotificationController struct {
	notificationService services.NotificationService
	logger              zerolog.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService, logger zerolog.Logger) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		logger:              logger,
	}
}

// ListNotifications handles notification listing for a recipient
// @Summary List notifications
// @Description Returns a recipient's notifications, newest first.
// @Tags notifications
// @Produce json
// @Param recipient_id query int true "Recipient ID"
// @Param recipient_type query string true "Recipient type (student or employer)"
// @Success 200 {object} dto.NotificationsResponse "Notification listings"
// @Failure 400 {object} dto.ErrorResponse "Invalid recipient"
// @Router /notifications [get]
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	recipientID, err := strconv.ParseInt(ctx.Query("recipient_id"), 10, 64)
	if err != nil || recipientID < 1 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid recipient_id"))
		return
	}

	recipientType := models.RecipientType(ctx.Query("recipient_type"))
	if recipientType != models.RecipientStudent && recipientType != models.RecipientEmployer {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("recipient_type must be student or employer"))
		return
	}

	notifications, err := c.notificationService.ListNotifications(ctx, recipientID, recipientType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if notifications == nil {
		notifications = []*models.Notification{}
	}

	ctx.JSON(http.StatusOK, dto.NotificationsResponse{
		Success:       true,
		Notifications: notifications,
	})
}

// CreateNotification handles notification creation
// @Summary Create a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Notification"
// @Success 201 {object} dto.SuccessResponse "Notification created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Router /notifications [post]
func (c *NotificationController) CreateNotification(ctx *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if _, err := c.notificationService.CreateNotification(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Notification created"))
}

// MarkRead handles flagging a notification as read
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.SuccessResponse "Notification marked read"
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Router /notifications/{id}/read [put]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid notification ID"))
		return
	}

	if err := c.notificationService.MarkRead(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Notification marked as read"))
}
