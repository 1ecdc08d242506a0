package services

import (
	"fmt"
	"strings"

	"eventia/internal/errors"
	"eventia/internal/models"
	"eventia/internal/repositories"
)

// LocationService manages event locations (venues). Reads as well as
// mutations are scoped to the creator; a venue that exists but belongs to
// someone else is indistinguishable from one that does not exist.
type LocationService struct {
	locationRepo repositories.EventLocationRepository
	geoRepo      repositories.LocationRepository
	eventRepo    repositories.EventRepository
}

// NewLocationService creates a new LocationService.
func NewLocationService(
	locationRepo repositories.EventLocationRepository,
	geoRepo repositories.LocationRepository,
	eventRepo repositories.EventRepository,
) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
		geoRepo:      geoRepo,
		eventRepo:    eventRepo,
	}
}

// GetOwnLocations retrieves a page of the acting user's venues.
func (s *LocationService) GetOwnLocations(userID string, page, limit int) ([]models.EventLocation, error) {
	return s.locationRepo.GetAllByCreator(userID, page, limit)
}

// GetOwnLocation retrieves one of the acting user's venues.
func (s *LocationService) GetOwnLocation(id, userID string) (*models.EventLocation, error) {
	location, err := s.locationRepo.GetByID(id)
	if err != nil {
		if err == errors.ErrLocationNotFound {
			return nil, errors.ErrNotFoundOrUnauthorized
		}
		return nil, err
	}
	if !CanMutate(userID, location.CreatorUserID) {
		return nil, errors.ErrNotFoundOrUnauthorized
	}
	return location, nil
}

// CreateLocation validates and persists a new venue owned by the creator.
func (s *LocationService) CreateLocation(location *models.EventLocation, creatorID string) (*models.EventLocation, error) {
	if strings.TrimSpace(location.Name) == "" {
		return nil, errors.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(location.FullAddress) == "" {
		return nil, errors.NewValidationError("full_address", "is required")
	}
	if location.MaxCapacity <= 0 {
		return nil, errors.NewValidationError("max_capacity", "must be positive")
	}
	if _, err := s.geoRepo.GetByID(location.LocationID); err != nil {
		if err == errors.ErrLocationNotFound {
			return nil, errors.NewValidationError("id_location", "location does not exist")
		}
		return nil, fmt.Errorf("failed to resolve location: %w", err)
	}

	location.CreatorUserID = creatorID
	if err := s.locationRepo.Create(location); err != nil {
		return nil, fmt.Errorf("failed to create event location: %w", err)
	}
	return location, nil
}

// UpdateLocation applies a partial update to one of the acting user's venues.
// Shrinking the capacity below the largest max assistance already promised by
// an event at the venue is rejected.
func (s *LocationService) UpdateLocation(id, actingUserID string, update models.EventLocationUpdate) error {
	location, err := s.locationRepo.GetByID(id)
	if err != nil {
		if err == errors.ErrLocationNotFound {
			return errors.ErrNotFoundOrUnauthorized
		}
		return err
	}
	if !CanMutate(actingUserID, location.CreatorUserID) {
		return errors.ErrNotFoundOrUnauthorized
	}

	fields := make(map[string]interface{})

	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return errors.NewValidationError("name", "is required")
		}
		fields["name"] = *update.Name
	}
	if update.FullAddress != nil {
		if strings.TrimSpace(*update.FullAddress) == "" {
			return errors.NewValidationError("full_address", "is required")
		}
		fields["full_address"] = *update.FullAddress
	}
	if update.LocationID != nil {
		if _, err := s.geoRepo.GetByID(*update.LocationID); err != nil {
			if err == errors.ErrLocationNotFound {
				return errors.NewValidationError("id_location", "location does not exist")
			}
			return fmt.Errorf("failed to resolve location: %w", err)
		}
		fields["location_id"] = *update.LocationID
	}
	if update.MaxCapacity != nil {
		if *update.MaxCapacity <= 0 {
			return errors.NewValidationError("max_capacity", "must be positive")
		}
		promised, err := s.eventRepo.MaxAssistanceAtLocation(id)
		if err != nil {
			return fmt.Errorf("failed to check events at location: %w", err)
		}
		if *update.MaxCapacity < promised {
			return errors.NewValidationError("max_capacity", "is below the max assistance of an existing event at this location")
		}
		fields["max_capacity"] = *update.MaxCapacity
	}
	if update.Latitude != nil {
		fields["latitude"] = *update.Latitude
	}
	if update.Longitude != nil {
		fields["longitude"] = *update.Longitude
	}

	if err := s.locationRepo.UpdateFields(id, fields); err != nil {
		return fmt.Errorf("failed to update event location: %w", err)
	}
	return nil
}

// DeleteLocation removes one of the acting user's venues. A venue still
// referenced by events cannot be deleted.
func (s *LocationService) DeleteLocation(id, actingUserID string) error {
	location, err := s.locationRepo.GetByID(id)
	if err != nil {
		if err == errors.ErrLocationNotFound {
			return errors.ErrNotFoundOrUnauthorized
		}
		return err
	}
	if !CanMutate(actingUserID, location.CreatorUserID) {
		return errors.ErrNotFoundOrUnauthorized
	}

	count, err := s.eventRepo.CountAtLocation(id)
	if err != nil {
		return fmt.Errorf("failed to check events at location: %w", err)
	}
	if count > 0 {
		return errors.NewValidationError("id", "location still has events")
	}

	if err := s.locationRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete event location: %w", err)
	}
	return nil
}
