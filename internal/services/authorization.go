package services

import (
	"eventia/internal/errors"
	"eventia/internal/repositories"
)

// CanMutate reports whether the acting user holds mutation rights over a
// resource owned by ownerID. Ownership is the sole authorization axis: no
// roles, no delegation, no admin override.
func CanMutate(actingUserID, ownerID string) bool {
	return actingUserID != "" && actingUserID == ownerID
}

// AuthorizationService answers ownership questions about events and event
// locations. A missing resource yields false rather than an error, so callers
// cannot distinguish "does not exist" from "not yours".
type AuthorizationService struct {
	eventRepo    repositories.EventRepository
	locationRepo repositories.EventLocationRepository
}

// NewAuthorizationService creates a new AuthorizationService.
func NewAuthorizationService(eventRepo repositories.EventRepository, locationRepo repositories.EventLocationRepository) *AuthorizationService {
	return &AuthorizationService{
		eventRepo:    eventRepo,
		locationRepo: locationRepo,
	}
}

// CanMutateEvent reports whether the acting user may update or delete the event.
func (s *AuthorizationService) CanMutateEvent(actingUserID, eventID string) (bool, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if err == errors.ErrEventNotFound {
			return false, nil
		}
		return false, err
	}
	return CanMutate(actingUserID, event.CreatorUserID), nil
}

// CanMutateLocation reports whether the acting user may read, update or delete
// the event location.
func (s *AuthorizationService) CanMutateLocation(actingUserID, locationID string) (bool, error) {
	location, err := s.locationRepo.GetByID(locationID)
	if err != nil {
		if err == errors.ErrLocationNotFound {
			return false, nil
		}
		return false, err
	}
	return CanMutate(actingUserID, location.CreatorUserID), nil
}
