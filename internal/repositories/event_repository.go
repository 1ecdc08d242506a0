package repositories

import (
	"time"

	"eventia/internal/models"
)

// EventRepository defines the interface for event data access.
type EventRepository interface {
	GetAll(page, limit int) ([]models.Event, error)
	Search(name string, startFrom *time.Time, tag string) ([]models.Event, error)
	GetByID(id string) (*models.Event, error)
	Create(event *models.Event) error
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
	ReplaceTags(eventID string, tagNames []string) error
	CountAtLocation(locationID string) (int64, error)
	MaxAssistanceAtLocation(locationID string) (int, error)
}
