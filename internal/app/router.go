package app

import (
	"net/http"

	"lechemin_backend/internal/config"
	"lechemin_backend/internal/middleware"
	"lechemin_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(ctx *gin.Context) {
		ctx.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		public.POST("/waitlist", c.waitlist.Join)

		public.GET("/paths", c.path.ListPaths)
		public.GET("/paths/:slug", c.path.GetPath)

		// Quiz and roadmap generation work for guests; the fallback keeps
		// them available even with no upstream configured.
		public.POST("/quiz/start", c.quiz.Start)
		public.POST("/quiz/next", c.quiz.Next)
		public.POST("/quiz/roadmap", c.quiz.GenerateRoadmap)

		// The AI endpoint checks auth itself when require_auth is set.
		public.POST("/ai/roadmap", middleware.TryAuthMiddleware(cfg), c.ai.Generate)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		authGroup.GET("/progress", c.progress.List)
		authGroup.POST("/progress/toggle", c.progress.Toggle)
		authGroup.POST("/progress/toggle-all", c.progress.ToggleAll)

		authGroup.POST("/roadmaps", c.roadmap.Save)
		authGroup.GET("/roadmaps", c.roadmap.List)
		authGroup.GET("/roadmaps/:id", c.roadmap.Get)
	}
}
