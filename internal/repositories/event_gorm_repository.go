package repositories

import (
	"fmt"
	"strings"
	"time"

	"eventia/internal/errors"
	"eventia/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEventRepository is a GORM implementation of EventRepository.
type GORMEventRepository struct {
	db *gorm.DB
}

// NewGORMEventRepository creates a new instance of GORMEventRepository.
func NewGORMEventRepository(db *gorm.DB) *GORMEventRepository {
	return &GORMEventRepository{
		db: db,
	}
}

// GetAll retrieves a page of events ordered by creation time.
func (r *GORMEventRepository) GetAll(page, limit int) ([]models.Event, error) {
	var events []models.Event
	offset := (page - 1) * limit
	if err := r.db.Preload("Tags").Order("created_at").Offset(offset).Limit(limit).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// Search filters events by name substring, minimum start date and tag name.
// Empty filters are skipped.
func (r *GORMEventRepository) Search(name string, startFrom *time.Time, tag string) ([]models.Event, error) {
	query := r.db.Model(&models.Event{}).Preload("Tags")
	if name != "" {
		query = query.Where("LOWER(events.name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if startFrom != nil {
		query = query.Where("events.start_date >= ?", *startFrom)
	}
	if tag != "" {
		query = query.
			Joins("JOIN event_tags ON event_tags.event_id = events.id").
			Joins("JOIN tags ON tags.id = event_tags.tag_id").
			Where("tags.name = ?", tag)
	}

	var events []models.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}
	return events, nil
}

// GetByID retrieves a single event with its tags.
func (r *GORMEventRepository) GetByID(id string) (*models.Event, error) {
	var event models.Event
	if err := r.db.Preload("Tags").First(&event, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event by ID %s: %w", id, err)
	}
	return &event, nil
}

// Create creates a new event in the database.
func (r *GORMEventRepository) Create(event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if err := r.db.Omit("Tags").Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update to an event. Only the supplied
// columns are touched; tag associations are handled by ReplaceTags.
func (r *GORMEventRepository) UpdateFields(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.Model(&models.Event{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("failed to update event %s: %w", id, err)
	}
	return nil
}

// Delete removes an event together with its tag associations and enrollments
// in a single transaction. Deleting an event cascades.
func (r *GORMEventRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Event{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete event %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return errors.ErrEventNotFound
		}
		if err := tx.Exec("DELETE FROM event_tags WHERE event_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete tag associations for event %s: %w", id, err)
		}
		if err := tx.Delete(&models.Enrollment{}, "event_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete enrollments for event %s: %w", id, err)
		}
		return nil
	})
}

// CountAtLocation returns the number of events held at an event location.
func (r *GORMEventRepository) CountAtLocation(locationID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Event{}).
		Where("event_location_id = ?", locationID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count events at location %s: %w", locationID, err)
	}
	return count, nil
}

// MaxAssistanceAtLocation returns the largest max assistance among the events
// held at an event location, or 0 when the venue has no events. Used to keep
// a venue's capacity from shrinking below what its events already promise.
func (r *GORMEventRepository) MaxAssistanceAtLocation(locationID string) (int, error) {
	var max int
	if err := r.db.Model(&models.Event{}).
		Where("event_location_id = ?", locationID).
		Select("COALESCE(MAX(max_assistance), 0)").
		Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to get max assistance at location %s: %w", locationID, err)
	}
	return max, nil
}

// ReplaceTags replaces all tag associations of an event with the given tag
// names. Missing tags are created on the fly. The whole swap runs in one
// transaction so a failure never leaves the event with a partial tag set.
func (r *GORMEventRepository) ReplaceTags(eventID string, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		tags := make([]models.Tag, 0, len(tagNames))
		for _, name := range tagNames {
			var tag models.Tag
			if err := tx.Where("name = ?", name).
				Attrs(models.Tag{ID: uuid.New().String()}).
				FirstOrCreate(&tag).Error; err != nil {
				return fmt.Errorf("failed to resolve tag %s: %w", name, err)
			}
			tags = append(tags, tag)
		}
		if err := tx.Model(&models.Event{ID: eventID}).Association("Tags").Replace(tags); err != nil {
			return fmt.Errorf("failed to replace tags for event %s: %w", eventID, err)
		}
		return nil
	})
}
