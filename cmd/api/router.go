package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jaalakam-backend/internal/shared/middleware"
	"jaalakam-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Identity runs last so every handler sees a resolved AuthContext
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		middleware.Identity(c.Resolver),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupUserRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupLiteratureRoutes(v1, c)
		setupCommentRoutes(v1, c)
		setupClassifiedRoutes(v1, c)
		setupEventRoutes(v1, c)
		setupReportRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		users.GET("/me", middleware.RequireAuthenticated(), c.UserHandler.Me)
		users.PUT("/me", middleware.RequireAuthenticated(), c.UserHandler.UpdateProfile)
		users.GET("/:id", c.UserHandler.GetUser)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.ListAuthors)
		authors.GET("/:id", c.AuthorHandler.GetAuthor)
		authors.POST("", middleware.RequireAuthenticated(), c.AuthorHandler.CreateProfile)
		authors.PUT("/me", middleware.RequireAuthenticated(), c.AuthorHandler.UpdateProfile)
	}
}

// ========================================
// LITERATURE ROUTES
// ========================================
func setupLiteratureRoutes(v1 *gin.RouterGroup, c *container.Container) {
	literature := v1.Group("/literature")
	{
		literature.GET("", c.LiteratureHandler.ListLiterature)
		literature.GET("/search", c.LiteratureHandler.SearchLiterature)
		literature.GET("/:id", c.LiteratureHandler.GetLiterature)
		literature.GET("/:id/comments", c.CommentHandler.ListComments)

		literature.POST("", middleware.RequireAuthor(), c.LiteratureHandler.CreateLiterature)
		literature.PUT("/:id", middleware.RequireAuthor(), c.LiteratureHandler.UpdateLiterature)
		literature.POST("/:id/publish", middleware.RequireAuthor(), c.LiteratureHandler.PublishLiterature)
		literature.DELETE("/:id", middleware.RequireAuthor(), c.LiteratureHandler.DeleteLiterature)

		literature.POST("/:id/like", middleware.RequireAuthenticated(), c.LiteratureHandler.LikeLiterature)
		literature.DELETE("/:id/like", middleware.RequireAuthenticated(), c.LiteratureHandler.UnlikeLiterature)
	}
}

// ========================================
// COMMENT ROUTES
// ========================================
func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments")
	comments.Use(middleware.RequireAuthenticated())
	{
		comments.POST("", c.CommentHandler.CreateComment)
		comments.PUT("/:id", c.CommentHandler.UpdateComment)
		comments.DELETE("/:id", c.CommentHandler.DeleteComment)
	}
}

// ========================================
// CLASSIFIED ROUTES
// ========================================
func setupClassifiedRoutes(v1 *gin.RouterGroup, c *container.Container) {
	classifieds := v1.Group("/classifieds")
	{
		classifieds.GET("", c.ClassifiedHandler.ListClassifieds)
		classifieds.GET("/:id", c.ClassifiedHandler.GetClassified)
		classifieds.POST("", middleware.RequireAuthenticated(), c.ClassifiedHandler.CreateClassified)
		classifieds.PUT("/:id", middleware.RequireAuthenticated(), c.ClassifiedHandler.UpdateClassified)
		classifieds.DELETE("/:id", middleware.RequireAuthenticated(), c.ClassifiedHandler.DeleteClassified)
	}
}

// ========================================
// EVENT ROUTES
// ========================================
func setupEventRoutes(v1 *gin.RouterGroup, c *container.Container) {
	events := v1.Group("/events")
	{
		events.GET("", c.EventHandler.ListEvents)
		events.GET("/:id", c.EventHandler.GetEvent)
		events.POST("", middleware.RequireAuthenticated(), c.EventHandler.CreateEvent)
		events.PUT("/:id", middleware.RequireAuthenticated(), c.EventHandler.UpdateEvent)
		events.DELETE("/:id", middleware.RequireAuthenticated(), c.EventHandler.DeleteEvent)
		events.POST("/:id/attend", middleware.RequireAuthenticated(), c.EventHandler.AttendEvent)
		events.DELETE("/:id/attend", middleware.RequireAuthenticated(), c.EventHandler.UnattendEvent)
	}
}

// ========================================
// REPORT ROUTES
// ========================================
func setupReportRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/reports", middleware.RequireAuthenticated(), c.ReportHandler.CreateReport)
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/literature/:id/moderate", c.LiteratureHandler.ModerateLiterature)
		admin.POST("/authors/:id/verify", c.AuthorHandler.VerifyAuthor)
		admin.GET("/reports", c.ReportHandler.ListReports)
		admin.GET("/reports/:id", c.ReportHandler.GetReport)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// cache outages degrade reads but never fail the health check
		cacheStatus := "ok"
		if appCtx.Cache == nil {
			cacheStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				cacheStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    cacheStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
