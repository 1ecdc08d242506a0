package repositories_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	apperrors "eventia/internal/errors"
	"eventia/internal/models"
	"eventia/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func newEnrollmentFixture(t *testing.T, maxAssistance int, startDate time.Time, enabled bool) (*repositories.MockEventRepository, *repositories.MockEnrollmentRepository, string) {
	t.Helper()
	events := repositories.NewMockEventRepository()
	event := &models.Event{
		Name:                 "Test Event",
		Description:          "A test event",
		EventLocationID:      "venue-1",
		StartDate:            startDate,
		EnabledForEnrollment: enabled,
		MaxAssistance:        maxAssistance,
		CreatorUserID:        "owner-1",
	}
	assert.NoError(t, events.Create(event))
	return events, repositories.NewMockEnrollmentRepository(events), event.ID
}

func TestEnroll_ConcurrentCapacity(t *testing.T) {
	now := time.Now()
	_, enrollments, eventID := newEnrollmentFixture(t, 2, now.Add(24*time.Hour), true)

	// 30 users race for 2 seats. Exactly 2 must win, everyone else must see
	// the capacity error, and the final count must equal the capacity.
	const attempts = 30
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := enrollments.Enroll(eventID, fmt.Sprintf("user-%d", n), now)
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case err == apperrors.ErrCapacityExceeded:
			rejected++
		default:
			t.Fatalf("unexpected enrollment error: %v", err)
		}
	}
	assert.Equal(t, 2, succeeded)
	assert.Equal(t, attempts-2, rejected)

	count, err := enrollments.CountForEvent(eventID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestEnroll_CheckOrder(t *testing.T) {
	now := time.Now()

	t.Run("unknown event", func(t *testing.T) {
		_, enrollments, _ := newEnrollmentFixture(t, 10, now.Add(24*time.Hour), true)
		_, err := enrollments.Enroll("event-missing", "user-1", now)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("duplicate wins over capacity", func(t *testing.T) {
		// A full event reports the duplicate to the user who filled it, not
		// the capacity error.
		_, enrollments, eventID := newEnrollmentFixture(t, 1, now.Add(24*time.Hour), true)
		_, err := enrollments.Enroll(eventID, "user-1", now)
		assert.NoError(t, err)

		_, err = enrollments.Enroll(eventID, "user-1", now)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
	})

	t.Run("capacity wins over occurred", func(t *testing.T) {
		events, enrollments, eventID := newEnrollmentFixture(t, 1, now.Add(24*time.Hour), true)
		_, err := enrollments.Enroll(eventID, "user-1", now)
		assert.NoError(t, err)

		// The event fills up and then takes place
		assert.NoError(t, events.UpdateFields(eventID, map[string]interface{}{
			"start_date": now.Add(-time.Hour),
		}))

		_, err = enrollments.Enroll(eventID, "user-2", now)
		assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
	})

	t.Run("occurred wins over disabled", func(t *testing.T) {
		_, enrollments, eventID := newEnrollmentFixture(t, 10, now.Add(-time.Hour), false)
		_, err := enrollments.Enroll(eventID, "user-1", now)
		assert.ErrorIs(t, err, apperrors.ErrEventAlreadyOccurred)
	})

	t.Run("disabled", func(t *testing.T) {
		_, enrollments, eventID := newEnrollmentFixture(t, 10, now.Add(24*time.Hour), false)
		_, err := enrollments.Enroll(eventID, "user-1", now)
		assert.ErrorIs(t, err, apperrors.ErrEnrollmentDisabled)
	})
}

func TestUnenroll(t *testing.T) {
	now := time.Now()

	t.Run("not enrolled", func(t *testing.T) {
		_, enrollments, eventID := newEnrollmentFixture(t, 10, now.Add(24*time.Hour), true)
		err := enrollments.Unenroll(eventID, "user-1", now)
		assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
	})

	t.Run("after the event occurred", func(t *testing.T) {
		events, enrollments, eventID := newEnrollmentFixture(t, 10, now.Add(24*time.Hour), true)
		_, err := enrollments.Enroll(eventID, "user-1", now)
		assert.NoError(t, err)

		assert.NoError(t, events.UpdateFields(eventID, map[string]interface{}{
			"start_date": now.Add(-time.Hour),
		}))

		err = enrollments.Unenroll(eventID, "user-1", now)
		assert.ErrorIs(t, err, apperrors.ErrEventAlreadyOccurred)

		// The enrollment stays on the books
		enrolled, err := enrollments.IsEnrolled(eventID, "user-1")
		assert.NoError(t, err)
		assert.True(t, enrolled)
	})

	t.Run("round trip", func(t *testing.T) {
		_, enrollments, eventID := newEnrollmentFixture(t, 10, now.Add(24*time.Hour), true)
		_, err := enrollments.Enroll(eventID, "user-1", now)
		assert.NoError(t, err)

		enrolled, err := enrollments.IsEnrolled(eventID, "user-1")
		assert.NoError(t, err)
		assert.True(t, enrolled)

		assert.NoError(t, enrollments.Unenroll(eventID, "user-1", now))

		enrolled, err = enrollments.IsEnrolled(eventID, "user-1")
		assert.NoError(t, err)
		assert.False(t, enrolled)

		// Cancelling twice fails the second time
		err = enrollments.Unenroll(eventID, "user-1", now)
		assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)

		// The freed seat can be taken again
		_, err = enrollments.Enroll(eventID, "user-1", now)
		assert.NoError(t, err)
	})
}

func TestEnroll_RegistrationTimestamp(t *testing.T) {
	pinned := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	_, enrollments, eventID := newEnrollmentFixture(t, 10, pinned.Add(24*time.Hour), true)

	enrollment, err := enrollments.Enroll(eventID, "user-1", pinned)
	assert.NoError(t, err)
	assert.Equal(t, pinned, enrollment.RegistrationDateTime)
	assert.Equal(t, eventID, enrollment.EventID)
	assert.Equal(t, "user-1", enrollment.UserID)
}
