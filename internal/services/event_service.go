package services

import (
	"fmt"
	"strings"
	"time"

	"eventia/internal/errors"
	"eventia/internal/models"
	"eventia/internal/repositories"

	"github.com/rs/zerolog"
)

// EventService handles the event lifecycle: creation, partial updates and
// deletion, with ownership checks and the capacity cross-check against the
// venue.
type EventService struct {
	eventRepo    repositories.EventRepository
	locationRepo repositories.EventLocationRepository
	categoryRepo repositories.CategoryRepository
	log          *zerolog.Logger
}

// NewEventService creates a new EventService.
func NewEventService(
	eventRepo repositories.EventRepository,
	locationRepo repositories.EventLocationRepository,
	categoryRepo repositories.CategoryRepository,
	log *zerolog.Logger,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		locationRepo: locationRepo,
		categoryRepo: categoryRepo,
		log:          log,
	}
}

// GetEvents retrieves a page of events.
func (s *EventService) GetEvents(page, limit int) ([]models.Event, error) {
	return s.eventRepo.GetAll(page, limit)
}

// SearchEvents filters events by name substring, minimum start date and tag.
func (s *EventService) SearchEvents(name string, startFrom *time.Time, tag string) ([]models.Event, error) {
	return s.eventRepo.Search(name, startFrom, tag)
}

// GetEventByID retrieves a single event.
func (s *EventService) GetEventByID(id string) (*models.Event, error) {
	return s.eventRepo.GetByID(id)
}

// CreateEvent validates and persists a new event owned by the creator, then
// applies the supplied tag list as fresh associations. Validation order:
// name/description length, location existence, category existence, capacity
// cross-check, non-negative price and duration.
func (s *EventService) CreateEvent(event *models.Event, tagNames []string, creatorID string) (*models.Event, error) {
	if len(strings.TrimSpace(event.Name)) < 3 {
		return nil, errors.NewValidationError("name", "must be at least 3 characters")
	}
	if len(strings.TrimSpace(event.Description)) < 3 {
		return nil, errors.NewValidationError("description", "must be at least 3 characters")
	}

	location, err := s.locationRepo.GetByID(event.EventLocationID)
	if err != nil {
		if err == errors.ErrLocationNotFound {
			return nil, errors.NewValidationError("id_event_location", "event location does not exist")
		}
		return nil, fmt.Errorf("failed to resolve event location: %w", err)
	}

	if event.CategoryID != nil && *event.CategoryID != "" {
		if _, err := s.categoryRepo.GetByID(*event.CategoryID); err != nil {
			if err == errors.ErrCategoryNotFound {
				return nil, errors.NewValidationError("id_event_category", "event category does not exist")
			}
			return nil, fmt.Errorf("failed to resolve event category: %w", err)
		}
	}

	if event.MaxAssistance > location.MaxCapacity {
		return nil, errors.NewValidationError("max_assistance", "exceeds the location's max capacity")
	}
	if event.Price < 0 {
		return nil, errors.NewValidationError("price", "must not be negative")
	}
	if event.DurationInMinutes < 0 {
		return nil, errors.NewValidationError("duration_in_minutes", "must not be negative")
	}

	event.CreatorUserID = creatorID
	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	if len(tagNames) > 0 {
		if err := s.eventRepo.ReplaceTags(event.ID, tagNames); err != nil {
			return nil, fmt.Errorf("failed to apply tags: %w", err)
		}
	}

	s.log.Info().Str("event_id", event.ID).Str("creator", creatorID).Msg("event created")
	return event, nil
}

// UpdateEvent applies a partial update to an event owned by the acting user.
// Only non-nil fields are validated and applied; a non-nil tag list replaces
// all tag associations.
func (s *EventService) UpdateEvent(id, actingUserID string, update models.EventUpdate) error {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if err == errors.ErrEventNotFound {
			return errors.ErrNotFoundOrUnauthorized
		}
		return err
	}
	if !CanMutate(actingUserID, event.CreatorUserID) {
		return errors.ErrNotFoundOrUnauthorized
	}

	fields := make(map[string]interface{})

	if update.Name != nil {
		if len(strings.TrimSpace(*update.Name)) < 3 {
			return errors.NewValidationError("name", "must be at least 3 characters")
		}
		fields["name"] = *update.Name
	}
	if update.Description != nil {
		if len(strings.TrimSpace(*update.Description)) < 3 {
			return errors.NewValidationError("description", "must be at least 3 characters")
		}
		fields["description"] = *update.Description
	}
	if update.CategoryID != nil {
		// An empty string clears the category reference.
		if *update.CategoryID == "" {
			fields["category_id"] = nil
		} else {
			if _, err := s.categoryRepo.GetByID(*update.CategoryID); err != nil {
				if err == errors.ErrCategoryNotFound {
					return errors.NewValidationError("id_event_category", "event category does not exist")
				}
				return fmt.Errorf("failed to resolve event category: %w", err)
			}
			fields["category_id"] = *update.CategoryID
		}
	}

	// The capacity cross-check holds whenever either side changes: resolve the
	// effective location and max assistance after the update and compare.
	if update.EventLocationID != nil || update.MaxAssistance != nil {
		locationID := event.EventLocationID
		if update.EventLocationID != nil {
			locationID = *update.EventLocationID
		}
		location, err := s.locationRepo.GetByID(locationID)
		if err != nil {
			if err == errors.ErrLocationNotFound {
				return errors.NewValidationError("id_event_location", "event location does not exist")
			}
			return fmt.Errorf("failed to resolve event location: %w", err)
		}

		maxAssistance := event.MaxAssistance
		if update.MaxAssistance != nil {
			if *update.MaxAssistance < 0 {
				return errors.NewValidationError("max_assistance", "must not be negative")
			}
			maxAssistance = *update.MaxAssistance
		}
		if maxAssistance > location.MaxCapacity {
			return errors.NewValidationError("max_assistance", "exceeds the location's max capacity")
		}

		if update.EventLocationID != nil {
			fields["event_location_id"] = *update.EventLocationID
		}
		if update.MaxAssistance != nil {
			fields["max_assistance"] = *update.MaxAssistance
		}
	}

	if update.Price != nil {
		if *update.Price < 0 {
			return errors.NewValidationError("price", "must not be negative")
		}
		fields["price"] = *update.Price
	}
	if update.DurationInMinutes != nil {
		if *update.DurationInMinutes < 0 {
			return errors.NewValidationError("duration_in_minutes", "must not be negative")
		}
		fields["duration_in_minutes"] = *update.DurationInMinutes
	}
	if update.StartDate != nil {
		fields["start_date"] = *update.StartDate
	}
	if update.EnabledForEnrollment != nil {
		fields["enabled_for_enrollment"] = *update.EnabledForEnrollment
	}

	if err := s.eventRepo.UpdateFields(id, fields); err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if update.Tags != nil {
		if err := s.eventRepo.ReplaceTags(id, update.Tags); err != nil {
			return fmt.Errorf("failed to replace tags: %w", err)
		}
	}

	s.log.Info().Str("event_id", id).Msg("event updated")
	return nil
}

// DeleteEvent removes an event owned by the acting user together with its tag
// associations and enrollments.
func (s *EventService) DeleteEvent(id, actingUserID string) error {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if err == errors.ErrEventNotFound {
			return errors.ErrNotFoundOrUnauthorized
		}
		return err
	}
	if !CanMutate(actingUserID, event.CreatorUserID) {
		return errors.ErrNotFoundOrUnauthorized
	}

	if err := s.eventRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.log.Info().Str("event_id", id).Msg("event deleted")
	return nil
}
