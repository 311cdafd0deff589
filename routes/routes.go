package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alimp01/hural-bot/handlers"
	"github.com/alimp01/hural-bot/middleware"
)

// RegisterRoutes wires the HTTP surface: a health probe, and the Telegram
// webhook endpoint when webhook mode is active. The webhook route declares a
// :token parameter instead of embedding the literal token: gin reads a colon
// inside a route pattern as a wildcard, and bot tokens contain one, so a
// literal path would match any suffix. The handler compares the captured
// token itself.
func RegisterRoutes(r *gin.Engine, bot *handlers.BotHandler, webhookEnabled bool) {
	r.GET("/healthz", handlers.HealthHandler)

	if webhookEnabled {
		r.POST("/webhook/:token", middleware.RateLimitMiddleware(), bot.WebhookHandler)
	}
}
