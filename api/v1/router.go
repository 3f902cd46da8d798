package v1

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Project image listing is readable without a session
	router.GET("/projects/:id/images", ListProjectImages)

	// Admin endpoints - every mutation requires an admin session
	admin := router.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/projects", ListProjects)
		admin.POST("/projects", CreateProject)
		admin.DELETE("/projects/bulk", BulkDeleteProjects)
		admin.GET("/projects/:id", GetProject)
		admin.PUT("/projects/:id", UpdateProject)
		admin.DELETE("/projects/:id", DeleteProject)
		admin.POST("/projects/:id/images", AddProjectImage)
		admin.DELETE("/projects/:id/images/:imageId", DeleteProjectImage)

		admin.GET("/skills", ListSkills)
		admin.POST("/skills", CreateSkill)
		admin.DELETE("/skills/bulk", BulkDeleteSkills)
		admin.GET("/skills/:id", GetSkill)
		admin.PUT("/skills/:id", UpdateSkill)
		admin.DELETE("/skills/:id", DeleteSkill)

		admin.GET("/experience", ListExperience)
		admin.POST("/experience", CreateExperience)
		admin.DELETE("/experience/bulk", BulkDeleteExperience)
		admin.GET("/experience/:id", GetExperience)
		admin.PUT("/experience/:id", UpdateExperience)
		admin.DELETE("/experience/:id", DeleteExperience)

		admin.GET("/education", ListEducation)
		admin.POST("/education", CreateEducation)
		admin.DELETE("/education/bulk", BulkDeleteEducation)
		admin.GET("/education/:id", GetEducation)
		admin.PUT("/education/:id", UpdateEducation)
		admin.DELETE("/education/:id", DeleteEducation)

		admin.GET("/services", ListServices)
		admin.POST("/services", CreateService)
		admin.DELETE("/services/bulk", BulkDeleteServices)
		admin.GET("/services/:id", GetService)
		admin.PUT("/services/:id", UpdateService)
		admin.DELETE("/services/:id", DeleteService)

		admin.GET("/settings", GetSettings)
		admin.PUT("/settings", UpdateSettings)

		admin.GET("/activity", ListActivity)
		admin.DELETE("/activity/clear", ClearActivity)
	}

	// Public endpoints - visibility filtering applies, lists come back decoded
	public := router.Group("/public")
	{
		public.GET("/projects", PublicProjects)
		public.GET("/projects/:slug", PublicProjectBySlug)
		public.GET("/skills", PublicSkills)
		public.GET("/experience", PublicExperience)
		public.GET("/education", PublicEducation)
		public.GET("/services", PublicServices)
		public.GET("/settings", PublicSettings)
	}

	// Unauthenticated write paths
	router.POST("/contact", SubmitContact)
	router.POST("/upload", UploadFile)
}
