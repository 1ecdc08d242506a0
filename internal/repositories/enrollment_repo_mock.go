package repositories

import (
	"sync"
	"time"

	"eventia/internal/errors"
	"eventia/internal/models"
)

type enrollmentKey struct {
	eventID string
	userID  string
}

// MockEnrollmentRepository is an in-memory implementation of
// EnrollmentRepository. A single mutex serialises every enrollment attempt,
// which gives the same capacity guarantee the GORM implementation gets from
// its row-locked transaction.
type MockEnrollmentRepository struct {
	enrollments map[enrollmentKey]models.Enrollment
	events      *MockEventRepository
	mu          sync.Mutex
}

// NewMockEnrollmentRepository creates a new instance of MockEnrollmentRepository.
// Events are resolved through the given event repository.
func NewMockEnrollmentRepository(events *MockEventRepository) *MockEnrollmentRepository {
	return &MockEnrollmentRepository{
		enrollments: make(map[enrollmentKey]models.Enrollment),
		events:      events,
	}
}

// Enroll registers a user for an event, running the precondition checks in
// order under the lock. First failing check wins.
func (r *MockEnrollmentRepository) Enroll(eventID, userID string, now time.Time) (*models.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := enrollmentKey{eventID: eventID, userID: userID}
	if _, ok := r.enrollments[key]; ok {
		return nil, errors.ErrAlreadyEnrolled
	}
	event, err := r.events.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if r.countLocked(eventID) >= int64(event.MaxAssistance) {
		return nil, errors.ErrCapacityExceeded
	}
	if event.HasOccurred(now) {
		return nil, errors.ErrEventAlreadyOccurred
	}
	if !event.EnabledForEnrollment {
		return nil, errors.ErrEnrollmentDisabled
	}

	enrollment := models.Enrollment{
		EventID:              eventID,
		UserID:               userID,
		RegistrationDateTime: now,
	}
	r.enrollments[key] = enrollment
	return &enrollment, nil
}

// Unenroll removes a user's enrollment.
func (r *MockEnrollmentRepository) Unenroll(eventID, userID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := enrollmentKey{eventID: eventID, userID: userID}
	if _, ok := r.enrollments[key]; !ok {
		return errors.ErrNotEnrolled
	}
	event, err := r.events.GetByID(eventID)
	if err != nil {
		return err
	}
	if event.HasOccurred(now) {
		return errors.ErrEventAlreadyOccurred
	}
	delete(r.enrollments, key)
	return nil
}

// IsEnrolled reports whether an enrollment exists for the (event, user) pair.
func (r *MockEnrollmentRepository) IsEnrolled(eventID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.enrollments[enrollmentKey{eventID: eventID, userID: userID}]
	return ok, nil
}

// CountForEvent returns the number of enrollments for an event.
func (r *MockEnrollmentRepository) CountForEvent(eventID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.countLocked(eventID), nil
}

func (r *MockEnrollmentRepository) countLocked(eventID string) int64 {
	var count int64
	for key := range r.enrollments {
		if key.eventID == eventID {
			count++
		}
	}
	return count
}
