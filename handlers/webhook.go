package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// WebhookHandler receives Telegram updates over HTTP (webhook mode) and
// feeds them through the same dispatch as long polling. Telegram retries
// failed deliveries, so the body is acknowledged as soon as it parses.
func (h *BotHandler) WebhookHandler(c *gin.Context) {
	// The token is the only authentication this endpoint has. It arrives as
	// the :token route parameter (see routes.RegisterRoutes for why it is not
	// part of the route literal) and must match the bot's own token exactly.
	if c.Param("token") != h.Bot.Token {
		h.Logger.Warn("webhook request with wrong token", zap.String("ip", c.ClientIP()))
		c.Status(http.StatusNotFound)
		return
	}

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.Logger.Warn("malformed webhook payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update"})
		return
	}
	c.Status(http.StatusOK)

	// Not the request context: the update outlives the acknowledged request.
	// The handler's base context still bounds it, so shutdown cancels
	// in-flight webhook updates the same way it cancels the polling loop.
	go h.HandleUpdate(h.updateCtx(), update)
}

func (h *BotHandler) updateCtx() context.Context {
	if h.baseCtx != nil {
		return h.baseCtx
	}
	return context.Background()
}
