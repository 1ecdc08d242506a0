package repositories

import (
	"fmt"

	"eventia/internal/errors"
	"eventia/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEventLocationRepository is a GORM implementation of EventLocationRepository.
type GORMEventLocationRepository struct {
	db *gorm.DB
}

// NewGORMEventLocationRepository creates a new instance of GORMEventLocationRepository.
func NewGORMEventLocationRepository(db *gorm.DB) *GORMEventLocationRepository {
	return &GORMEventLocationRepository{
		db: db,
	}
}

// GetAllByCreator retrieves a page of the creator's own event locations with
// their physical location and province preloaded.
func (r *GORMEventLocationRepository) GetAllByCreator(creatorID string, page, limit int) ([]models.EventLocation, error) {
	var locations []models.EventLocation
	offset := (page - 1) * limit
	if err := r.db.Preload("Location.Province").
		Where("creator_user_id = ?", creatorID).
		Order("created_at").Offset(offset).Limit(limit).
		Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to get event locations for user %s: %w", creatorID, err)
	}
	return locations, nil
}

// GetByID retrieves a single event location.
func (r *GORMEventLocationRepository) GetByID(id string) (*models.EventLocation, error) {
	var location models.EventLocation
	if err := r.db.Preload("Location.Province").First(&location, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get event location by ID %s: %w", id, err)
	}
	return &location, nil
}

// Create creates a new event location in the database.
func (r *GORMEventLocationRepository) Create(location *models.EventLocation) error {
	if location.ID == "" {
		location.ID = uuid.New().String()
	}
	if err := r.db.Omit("Location").Create(location).Error; err != nil {
		return fmt.Errorf("failed to create event location: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update to an event location.
func (r *GORMEventLocationRepository) UpdateFields(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.Model(&models.EventLocation{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("failed to update event location %s: %w", id, err)
	}
	return nil
}

// Delete deletes an event location by its ID.
func (r *GORMEventLocationRepository) Delete(id string) error {
	res := r.db.Delete(&models.EventLocation{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete event location %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.ErrLocationNotFound
	}
	return nil
}
