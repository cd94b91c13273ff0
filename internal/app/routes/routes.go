package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/controllers"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/middleware"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	jobController *controllers.JobController,
	applicationController *controllers.ApplicationController,
	referenceController *controllers.ReferenceController,
	notificationController *controllers.NotificationController,
	adminController *controllers.AdminController,
) {
	router.NoRoute(func(c *gin.Context) {
		middleware.HandleAPIError(c, apperrors.NewResourceNotFoundError("Route not found"))
	})

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
	})

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register/student", authController.RegisterStudent)
		auth.POST("/register/employer", authController.RegisterEmployer)
		auth.POST("/login/student", authController.LoginStudent)
		auth.POST("/login/employer", authController.LoginEmployer)
	}

	// --- Student routes ---
	students := api.Group("/students")
	{
		students.PUT("/:id/profile", studentController.UpdateProfile)
	}

	// --- Job routes ---
	jobs := api.Group("/jobs")
	{
		jobs.GET("", jobController.ListJobs)
		jobs.POST("", jobController.CreateJob)
		jobs.GET("/:id", jobController.GetJob)
	}

	// --- Application routes ---
	applications := api.Group("/applications")
	{
		applications.GET("", applicationController.ListApplications)
		applications.POST("", applicationController.SubmitApplication)
	}

	// --- Reference routes ---
	references := api.Group("/references")
	{
		references.GET("", referenceController.ListReferences)
		references.POST("", referenceController.RequestReference)
		references.GET("/student/:studentId", referenceController.ListForStudent)
		references.GET("/student/:studentId/stats", referenceController.GetStats)
		references.GET("/token/:token", referenceController.ResolveByToken)
		references.POST("/token/:token/response", referenceController.SubmitResponseByToken)
		references.POST("/token/:token/decline", referenceController.DeclineByToken)
		references.POST("/:id/response", referenceController.SubmitResponse)
		references.POST("/:id/decline", referenceController.Decline)
	}

	// --- Notification routes ---
	notifications := api.Group("/notifications")
	{
		notifications.GET("", notificationController.ListNotifications)
		notifications.POST("", notificationController.CreateNotification)
		notifications.PUT("/:id/read", notificationController.MarkRead)
	}

	// --- Admin routes ---
	admin := api.Group("/admin")
	{
		admin.GET("/users", adminController.ListUsers)
		admin.GET("/overview", adminController.GetOverview)
	}
}
