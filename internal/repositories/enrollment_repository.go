package repositories

import (
	"time"

	"eventia/internal/models"
)

// EnrollmentRepository defines the interface for enrollment data access.
//
// Enroll and Unenroll run their full precondition sequence atomically against
// storage: the count of enrollments for an event is the only contended
// resource in the system, and a plain check-then-insert would allow two
// concurrent requests to claim the last open slot. Implementations must
// serialise enrollment attempts per event.
type EnrollmentRepository interface {
	Enroll(eventID, userID string, now time.Time) (*models.Enrollment, error)
	Unenroll(eventID, userID string, now time.Time) error
	IsEnrolled(eventID, userID string) (bool, error)
	CountForEvent(eventID string) (int64, error)
}
