package repositories

import (
	"fmt"
	"time"

	"eventia/internal/errors"
	"eventia/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMEnrollmentRepository is a GORM implementation of EnrollmentRepository.
type GORMEnrollmentRepository struct {
	db *gorm.DB
}

// NewGORMEnrollmentRepository creates a new instance of GORMEnrollmentRepository.
func NewGORMEnrollmentRepository(db *gorm.DB) *GORMEnrollmentRepository {
	return &GORMEnrollmentRepository{
		db: db,
	}
}

// lockEvent fetches the event row, holding an exclusive row lock for the rest
// of the transaction on databases that support it. SQLite serialises writers
// globally, so the locking clause is skipped there.
func (r *GORMEnrollmentRepository) lockEvent(tx *gorm.DB, eventID string) (*models.Event, error) {
	query := tx
	if tx.Dialector.Name() != "sqlite" {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var event models.Event
	if err := query.First(&event, "id = ?", eventID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to lock event row %s: %w", eventID, err)
	}
	return &event, nil
}

// Enroll registers a user for an event. The precondition checks run in order
// inside a single transaction that locks the event row, so two concurrent
// requests for the last open slot are serialised and the enrollment count can
// never exceed the event's maximum assistance.
func (r *GORMEnrollmentRepository) Enroll(eventID, userID string, now time.Time) (*models.Enrollment, error) {
	var enrollment *models.Enrollment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Enrollment{}).
			Where("event_id = ? AND user_id = ?", eventID, userID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check existing enrollment: %w", err)
		}
		if existing > 0 {
			return errors.ErrAlreadyEnrolled
		}

		event, err := r.lockEvent(tx, eventID)
		if err != nil {
			return err
		}

		// Re-check under the lock: a retry of the same request may have
		// committed between the fast-path check above and the row lock.
		if err := tx.Model(&models.Enrollment{}).
			Where("event_id = ? AND user_id = ?", eventID, userID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to re-check existing enrollment: %w", err)
		}
		if existing > 0 {
			return errors.ErrAlreadyEnrolled
		}

		var enrolled int64
		if err := tx.Model(&models.Enrollment{}).
			Where("event_id = ?", eventID).
			Count(&enrolled).Error; err != nil {
			return fmt.Errorf("failed to count enrollments: %w", err)
		}
		if enrolled >= int64(event.MaxAssistance) {
			return errors.ErrCapacityExceeded
		}
		if event.HasOccurred(now) {
			return errors.ErrEventAlreadyOccurred
		}
		if !event.EnabledForEnrollment {
			return errors.ErrEnrollmentDisabled
		}

		enrollment = &models.Enrollment{
			EventID:              eventID,
			UserID:               userID,
			RegistrationDateTime: now,
		}
		if err := tx.Create(enrollment).Error; err != nil {
			return fmt.Errorf("failed to insert enrollment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Unenroll removes a user's enrollment. Calling it again for the same pair
// yields ErrNotEnrolled, never a partial state.
func (r *GORMEnrollmentRepository) Unenroll(eventID, userID string, now time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Enrollment{}).
			Where("event_id = ? AND user_id = ?", eventID, userID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check existing enrollment: %w", err)
		}
		if existing == 0 {
			return errors.ErrNotEnrolled
		}

		event, err := r.lockEvent(tx, eventID)
		if err != nil {
			return err
		}
		if event.HasOccurred(now) {
			return errors.ErrEventAlreadyOccurred
		}

		if err := tx.Delete(&models.Enrollment{}, "event_id = ? AND user_id = ?", eventID, userID).Error; err != nil {
			return fmt.Errorf("failed to delete enrollment: %w", err)
		}
		return nil
	})
}

// IsEnrolled reports whether an enrollment exists for the (event, user) pair.
func (r *GORMEnrollmentRepository) IsEnrolled(eventID, userID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Enrollment{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}
	return count > 0, nil
}

// CountForEvent returns the number of enrollments for an event.
func (r *GORMEnrollmentRepository) CountForEvent(eventID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Enrollment{}).
		Where("event_id = ?", eventID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return count, nil
}
