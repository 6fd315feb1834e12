package models

import (
	"time"

	"github.com/google/uuid"
)

// Friend is a roster entry mapping a Steam id to the name the group knows the player by.
type Friend struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	SteamID   string    `json:"steam_id" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by"`
}

func (Friend) TableName() string {
	return "friends"
}

type CreateFriendRequest struct {
	SteamID string `json:"steam_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

type ListResponse[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
}
