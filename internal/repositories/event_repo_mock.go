package repositories

import (
	"strings"
	"sync"
	"time"

	"eventia/internal/errors"
	"eventia/internal/models"

	"github.com/google/uuid"
)

// MockEventRepository is an in-memory implementation of EventRepository.
type MockEventRepository struct {
	events map[string]models.Event
	mu     sync.RWMutex
}

// NewMockEventRepository creates a new instance of MockEventRepository.
func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{
		events: make(map[string]models.Event),
	}
}

// GetAll returns a page of events.
func (r *MockEventRepository) GetAll(page, limit int) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	eventList := make([]models.Event, 0, len(r.events))
	for _, e := range r.events {
		eventList = append(eventList, e)
	}
	start := (page - 1) * limit
	if start >= len(eventList) {
		return []models.Event{}, nil
	}
	end := start + limit
	if end > len(eventList) {
		end = len(eventList)
	}
	return eventList[start:end], nil
}

// Search filters the stored events in memory.
func (r *MockEventRepository) Search(name string, startFrom *time.Time, tag string) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []models.Event
	for _, e := range r.events {
		if name != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(name)) {
			continue
		}
		if startFrom != nil && e.StartDate.Before(*startFrom) {
			continue
		}
		if tag != "" && !hasTag(e.Tags, tag) {
			continue
		}
		results = append(results, e)
	}
	return results, nil
}

func hasTag(tags []models.Tag, name string) bool {
	for _, t := range tags {
		if t.Name == name {
			return true
		}
	}
	return false
}

// GetByID returns an event by its ID.
func (r *MockEventRepository) GetByID(id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.events[id]
	if !ok {
		return nil, errors.ErrEventNotFound
	}
	return &event, nil
}

// Create adds a new event.
func (r *MockEventRepository) Create(event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	r.events[event.ID] = *event
	return nil
}

// UpdateFields applies the supplied columns to a stored event.
func (r *MockEventRepository) UpdateFields(id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return errors.ErrEventNotFound
	}
	for column, value := range fields {
		switch column {
		case "name":
			event.Name = value.(string)
		case "description":
			event.Description = value.(string)
		case "category_id":
			if value == nil {
				event.CategoryID = nil
			} else {
				v := value.(string)
				event.CategoryID = &v
			}
		case "event_location_id":
			event.EventLocationID = value.(string)
		case "start_date":
			event.StartDate = value.(time.Time)
		case "duration_in_minutes":
			event.DurationInMinutes = value.(int)
		case "price":
			event.Price = value.(float64)
		case "enabled_for_enrollment":
			event.EnabledForEnrollment = value.(bool)
		case "max_assistance":
			event.MaxAssistance = value.(int)
		}
	}
	r.events[id] = event
	return nil
}

// Delete removes an event by its ID.
func (r *MockEventRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return errors.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

// CountAtLocation returns the number of events held at an event location.
func (r *MockEventRepository) CountAtLocation(locationID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, e := range r.events {
		if e.EventLocationID == locationID {
			count++
		}
	}
	return count, nil
}

// MaxAssistanceAtLocation returns the largest max assistance among the events
// held at an event location.
func (r *MockEventRepository) MaxAssistanceAtLocation(locationID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var max int
	for _, e := range r.events {
		if e.EventLocationID == locationID && e.MaxAssistance > max {
			max = e.MaxAssistance
		}
	}
	return max, nil
}

// ReplaceTags swaps the full tag list of an event.
func (r *MockEventRepository) ReplaceTags(eventID string, tagNames []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[eventID]
	if !ok {
		return errors.ErrEventNotFound
	}
	tags := make([]models.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tags = append(tags, models.Tag{ID: uuid.New().String(), Name: name})
	}
	event.Tags = tags
	r.events[eventID] = event
	return nil
}
