package main

import (
	"github.com/gin-gonic/gin"
	"github.com/teamswap/teamswap/internal/handlers"
	"github.com/teamswap/teamswap/internal/middleware"
	"github.com/teamswap/teamswap/internal/models"
	"github.com/teamswap/teamswap/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for the public auth routes
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	healthHandler := handlers.NewHealthHandler()
	r.GET("/health", healthHandler.CheckHealth)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/register", svc.authHandler.Register)
			auth.POST("/login", svc.authHandler.Login)
			auth.POST("/refresh", svc.authHandler.Refresh)
			auth.POST("/logout", svc.authHandler.Logout)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/change-password", svc.authHandler.ChangePassword)

			// Notification event stream (token also accepted as query
			// parameter for EventSource clients)
			protected.GET("/events", svc.eventsHandler.Stream)

			// Dashboard
			dashboardHandler := handlers.NewDashboardHandler(models.GetDB())
			protected.GET("/dashboard", dashboardHandler.GetStats)

			// Profiles
			profileHandler := handlers.NewProfileHandler(models.GetDB())
			protected.GET("/profiles/me", profileHandler.GetMine)
			protected.PUT("/profiles/me", profileHandler.UpdateMine)
			protected.GET("/profiles/:id", profileHandler.GetByID)

			// Projects
			projectHandler := handlers.NewProjectHandler(models.GetDB(), svc.notificationService)
			protected.GET("/projects", projectHandler.List)
			protected.GET("/projects/:id", projectHandler.GetByID)
			protected.POST("/projects", projectHandler.Create)
			protected.PATCH("/projects/:id/status", projectHandler.UpdateStatus)
			protected.POST("/projects/:id/applications", svc.applicationHandler.Apply)

			// Applications
			protected.GET("/applications/mine", svc.applicationHandler.ListMine)
			protected.POST("/applications/:id/review", svc.applicationHandler.Review)
			protected.POST("/applications/:id/withdraw", svc.applicationHandler.Withdraw)

			// Skill swaps
			protected.GET("/swaps", svc.swapHandler.List)
			protected.GET("/swaps/mine", svc.swapHandler.ListMine)
			protected.POST("/swaps", svc.swapHandler.Create)
			protected.POST("/swaps/:id/respond", svc.swapHandler.Respond)
			protected.POST("/swaps/:id/complete", svc.swapHandler.Complete)
			protected.POST("/swaps/:id/cancel", svc.swapHandler.Cancel)

			// Notifications
			protected.GET("/notifications", svc.notificationHandler.List)
			protected.POST("/notifications/:id/read", svc.notificationHandler.MarkRead)
			protected.POST("/notifications/read-all", svc.notificationHandler.MarkAllRead)
		}
	}
}
