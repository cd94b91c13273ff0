package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/services"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/middleware"
)

// AdminController handles the administrative views
type AdminController struct {
	adminService services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// ListUsers handles the combined user listing
// @Summary List all users
// @Description Returns every student and employer account with a type discriminator.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminUsersResponse "User listing"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.adminService.ListAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminUsersResponse{Success: true, Users: users})
}

// GetOverview handles the system overview
// @Summary Get the system overview
// @Description Entity counts, status breakdowns and the average reference rating.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.SystemOverviewResponse "System overview"
// @Router /admin/overview [get]
func (c *AdminController) GetOverview(ctx *gin.Context) {
	overview, err := c.adminService.GetOverview(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SystemOverviewResponse{Success: true, Overview: *overview})
}
