package handlers

import (
	"github.com/gin-gonic/gin"

	"steamstatus/status-bot/middleware"
)

// RegisterRoutes mounts the bot's endpoints. The admin API is only mounted
// when jwtSecret is set.
func RegisterRoutes(router *gin.Engine, webhook *WebhookHandler, roster *RosterHandler, preview *PreviewHandler, jwtSecret string) {
	router.GET("/health", HealthCheck)

	// GroupMe callback URL
	router.POST("/", webhook.Callback)
	router.POST("/webhook", webhook.Callback)

	if jwtSecret == "" {
		return
	}

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(jwtSecret))
	{
		rosterRoutes := v1.Group("/roster")
		{
			rosterRoutes.GET("", roster.ListFriends)
			rosterRoutes.POST("", roster.CreateFriend)
			rosterRoutes.DELETE("/:id", roster.DeleteFriend)
		}

		v1.POST("/status/preview", preview.Preview)
	}
}
