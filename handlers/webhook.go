package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"steamstatus/status-bot/models"
	"steamstatus/status-bot/utils"
)

type MessageHandler interface {
	HandleMessage(ctx context.Context, msg models.CallbackMessage) (bool, error)
}

// WebhookHandler receives GroupMe bot callbacks.
type WebhookHandler struct {
	bot    MessageHandler
	logger *utils.Logger
}

func NewWebhookHandler(bot MessageHandler, logger *utils.Logger) *WebhookHandler {
	return &WebhookHandler{
		bot:    bot,
		logger: logger,
	}
}

// Callback handles POST / and POST /webhook. GroupMe does not retry failed
// callbacks, so every request is acknowledged with 200 and failures only logged.
func (h *WebhookHandler) Callback(c *gin.Context) {
	logger := h.logger.With("request_id", uuid.NewString())

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic while responding to message", "panic", r)
			c.String(http.StatusOK, "OK")
		}
	}()

	var msg models.CallbackMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		logger.Error("Malformed callback payload", "error", err)
		c.String(http.StatusOK, "OK")
		return
	}

	ctx := utils.WithLogger(c.Request.Context(), logger.With("group_id", msg.GroupID))
	if _, err := h.bot.HandleMessage(ctx, msg); err != nil {
		logger.Error("Error occurred while responding to message", "error", err, "group_id", msg.GroupID)
	}

	c.String(http.StatusOK, "OK")
}
