package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"steamstatus/status-bot/middleware"
	"steamstatus/status-bot/models"
	"steamstatus/status-bot/services"
	"steamstatus/status-bot/utils"
)

type RosterStore interface {
	List(ctx context.Context) ([]models.Friend, error)
	Create(ctx context.Context, steamID, name, createdBy string) (*models.Friend, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RosterHandler struct {
	roster RosterStore
	logger *utils.Logger
}

func NewRosterHandler(roster RosterStore, logger *utils.Logger) *RosterHandler {
	return &RosterHandler{
		roster: roster,
		logger: logger,
	}
}

// ListFriends handles GET /api/v1/roster
func (h *RosterHandler) ListFriends(c *gin.Context) {
	friends, err := h.roster.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list roster", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list roster",
		})
		return
	}

	c.JSON(http.StatusOK, models.ListResponse[models.Friend]{
		Data:  friends,
		Total: int64(len(friends)),
	})
}

// CreateFriend handles POST /api/v1/roster
func (h *RosterHandler) CreateFriend(c *gin.Context) {
	var req models.CreateFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	friend, err := h.roster.Create(c.Request.Context(), req.SteamID, req.Name, c.GetString(middleware.UserIDKey))
	if err != nil {
		h.logger.Error("Failed to create roster entry", "error", err, "steam_id", req.SteamID)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create roster entry",
		})
		return
	}

	c.JSON(http.StatusCreated, friend)
}

// DeleteFriend handles DELETE /api/v1/roster/:id
func (h *RosterHandler) DeleteFriend(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid roster entry ID",
		})
		return
	}

	if err := h.roster.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Roster entry not found",
			})
			return
		}
		h.logger.Error("Failed to delete roster entry", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete roster entry",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
