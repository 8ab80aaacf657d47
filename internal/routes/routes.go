package routes

import (
	"github.com/gin-gonic/gin"

	"hwpanel/internal/controllers"
	"hwpanel/internal/middleware"
)

// RegisterRoutes wires the agent's HTTP and WebSocket surface.
func RegisterRoutes(r *gin.Engine, requireAuth bool) {
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter()))

	r.GET("/healthz", controllers.GetHealth)

	metrics := r.Group("/metrics")
	if requireAuth {
		metrics.Use(middleware.AuthMiddleware())
	}
	{
		metrics.GET("/", controllers.GetSnapshot)
		metrics.GET("/history", controllers.GetHistory)
	}

	// WebSocket endpoint for real-time snapshots; token checked in-handler
	// because browser clients cannot set an Authorization header.
	r.GET("/ws", controllers.WebSocketHandler(requireAuth))
}
