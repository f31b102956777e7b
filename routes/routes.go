package routes

import (
	"time"

	"roombot/config"
	"roombot/handlers"
	"roombot/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWebhookRoutes registers the Telegram webhook endpoint.
func RegisterWebhookRoutes(r *gin.Engine, wh *handlers.WebhookHandler) {
	r.POST("/webhook",
		middleware.WebhookAuthMiddleware(config.AppConfig.WebhookSecret),
		wh.HandleUpdate,
	)
}

// RegisterStatusRoutes registers the public status endpoints.
func RegisterStatusRoutes(r *gin.Engine) {
	api := r.Group("/api/status")
	api.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET"},
		MaxAge:       12 * time.Hour,
	}))
	{
		api.GET("/health", handlers.HealthHandler)
	}
}
