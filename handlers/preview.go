package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"steamstatus/status-bot/command"
	"steamstatus/status-bot/models"
	"steamstatus/status-bot/services"
	"steamstatus/status-bot/utils"
)

type Previewer interface {
	Preview(ctx context.Context, text string) (*command.Request, string, error)
}

type PreviewHandler struct {
	bot    Previewer
	logger *utils.Logger
}

func NewPreviewHandler(bot Previewer, logger *utils.Logger) *PreviewHandler {
	return &PreviewHandler{
		bot:    bot,
		logger: logger,
	}
}

// Preview handles POST /api/v1/status/preview
func (h *PreviewHandler) Preview(c *gin.Context) {
	var req models.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	parsed, reply, err := h.bot.Preview(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, services.ErrNotCommand) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Text is not a status command",
			})
			return
		}
		h.logger.Error("Failed to build status preview", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to build status report",
		})
		return
	}

	c.JSON(http.StatusOK, models.PreviewResponse{
		Targets: parsed.Targets,
		Unknown: parsed.Unknown,
		Report:  reply,
	})
}
