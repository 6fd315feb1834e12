package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"steamstatus/status-bot/models"
	"steamstatus/status-bot/utils"
)

var ErrNotFound = errors.New("roster entry not found")

// RosterService reads and maintains the friends table.
type RosterService struct {
	db     *gorm.DB
	logger *utils.Logger
}

func NewRosterService(db *gorm.DB, logger *utils.Logger) *RosterService {
	return &RosterService{
		db:     db,
		logger: logger,
	}
}

// Lookup returns steam id -> display name for the named players, or for the
// whole roster when names is empty.
func (rs *RosterService) Lookup(ctx context.Context, names []string) (map[string]string, error) {
	query := rs.db.WithContext(ctx).Model(&models.Friend{})
	if len(names) > 0 {
		query = query.Where("name IN ?", names)
	}

	var friends []models.Friend
	if err := query.Find(&friends).Error; err != nil {
		return nil, fmt.Errorf("failed to query roster: %w", err)
	}

	ids := make(map[string]string, len(friends))
	for _, f := range friends {
		ids[f.SteamID] = f.Name
	}
	return ids, nil
}

func (rs *RosterService) List(ctx context.Context) ([]models.Friend, error) {
	var friends []models.Friend
	if err := rs.db.WithContext(ctx).Order("name ASC").Find(&friends).Error; err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	return friends, nil
}

func (rs *RosterService) Create(ctx context.Context, steamID, name, createdBy string) (*models.Friend, error) {
	friend := models.Friend{
		ID:        uuid.New(),
		SteamID:   steamID,
		Name:      name,
		CreatedBy: createdBy,
	}
	if err := rs.db.WithContext(ctx).Create(&friend).Error; err != nil {
		return nil, fmt.Errorf("failed to create roster entry: %w", err)
	}
	rs.logger.Info("Roster entry created", "id", friend.ID, "steam_id", steamID, "name", name)
	return &friend, nil
}

func (rs *RosterService) Delete(ctx context.Context, id uuid.UUID) error {
	res := rs.db.WithContext(ctx).Delete(&models.Friend{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete roster entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	rs.logger.Info("Roster entry deleted", "id", id)
	return nil
}
