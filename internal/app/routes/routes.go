package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/jobport/internal/app/controllers"
	"github.com/oguzk/jobport/internal/app/models"
	"github.com/oguzk/jobport/internal/app/models/dto"
	"github.com/oguzk/jobport/internal/metrics"
	"github.com/oguzk/jobport/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
	authLimiter *middleware.RateLimiter,
	collector *metrics.Collector,
) {
	router.Use(collector.Middleware())

	api := router.Group("/api")

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})

	// Metrics endpoint for Prometheus scraping
	router.GET("/metrics", collector.Handler())

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		// Credential endpoints are rate limited per client IP
		auth.POST("/register", authLimiter.Middleware(), ctrl.AuthController.Register)
		auth.POST("/token", authLimiter.Middleware(), ctrl.AuthController.Login)
		auth.POST("/token/refresh", authLimiter.Middleware(), ctrl.AuthController.RefreshToken)

		authProtected := auth.Group("")
		authProtected.Use(authMiddleware.JWTAuth())
		{
			authProtected.GET("/profile", ctrl.AuthController.GetProfile)
			authProtected.PATCH("/profile", ctrl.AuthController.UpdateProfile)
		}
	}

	// --- Company routes ---
	// Reads are public; writes need the employer or admin role.
	companies := api.Group("/companies")
	{
		companies.GET("", ctrl.CompanyController.GetAll)
		companies.GET("/:id", ctrl.CompanyController.GetByID)

		companiesProtected := companies.Group("")
		companiesProtected.Use(authMiddleware.JWTAuth())
		companiesProtected.Use(authMiddleware.RoleRequired(models.RoleEmployer, models.RoleAdmin))
		{
			companiesProtected.POST("", ctrl.CompanyController.Create)
			companiesProtected.PUT("/:id", ctrl.CompanyController.Update)
			companiesProtected.DELETE("/:id", ctrl.CompanyController.Delete)
		}
	}

	// --- Job posting routes ---
	jobs := api.Group("/jobs")
	{
		// Public reads. The search route is registered before the id route
		// so "search" never parses as a posting ID.
		jobs.GET("", ctrl.JobController.GetAll)
		jobs.GET("/search", ctrl.JobController.Search)
		jobs.GET("/:id", ctrl.JobController.GetByID)

		// Publishing only needs authentication, not a role
		jobsAuthenticated := jobs.Group("")
		jobsAuthenticated.Use(authMiddleware.JWTAuth())
		{
			jobsAuthenticated.POST("/:id/publish", ctrl.JobController.Publish)

			jobsEmployerProtected := jobsAuthenticated.Group("")
			jobsEmployerProtected.Use(authMiddleware.RoleRequired(models.RoleEmployer, models.RoleAdmin))
			{
				jobsEmployerProtected.POST("", ctrl.JobController.Create)
				jobsEmployerProtected.PATCH("/:id", ctrl.JobController.Update)
				jobsEmployerProtected.DELETE("/:id", ctrl.JobController.Delete)
			}
		}
	}

	// --- Application routes (authenticated, role-scoped in the service) ---
	applications := api.Group("/applications")
	applications.Use(authMiddleware.JWTAuth())
	{
		applications.GET("", ctrl.ApplicationController.GetAll)
		applications.GET("/:id", ctrl.ApplicationController.GetByID)
		applications.POST("", ctrl.ApplicationController.Create)
		applications.PATCH("/:id", ctrl.ApplicationController.Update)
		applications.DELETE("/:id", ctrl.ApplicationController.Delete)
	}

	// --- Bookmark routes (authenticated, always scoped to the caller) ---
	bookmarks := api.Group("/bookmarks")
	bookmarks.Use(authMiddleware.JWTAuth())
	{
		bookmarks.GET("", ctrl.BookmarkController.GetAll)
		bookmarks.GET("/:id", ctrl.BookmarkController.GetByID)
		bookmarks.POST("", ctrl.BookmarkController.Create)
		bookmarks.PATCH("/:id", ctrl.BookmarkController.Update)
		bookmarks.DELETE("/:id", ctrl.BookmarkController.Delete)
	}
}
