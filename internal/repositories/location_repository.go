package repositories

import "eventia/internal/models"

// EventLocationRepository defines the interface for event location data access.
// Listing is creator-scoped: venues have no public listing.
type EventLocationRepository interface {
	GetAllByCreator(creatorID string, page, limit int) ([]models.EventLocation, error)
	GetByID(id string) (*models.EventLocation, error)
	Create(location *models.EventLocation) error
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
}
