package models_test

import (
	"testing"
	"time"

	"eventia/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEvent_OpenForEnrollment(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	future := models.Event{StartDate: now.Add(time.Hour), EnabledForEnrollment: true}
	assert.True(t, future.OpenForEnrollment(now))

	disabled := models.Event{StartDate: now.Add(time.Hour), EnabledForEnrollment: false}
	assert.False(t, disabled.OpenForEnrollment(now))

	past := models.Event{StartDate: now.Add(-time.Hour), EnabledForEnrollment: true}
	assert.False(t, past.OpenForEnrollment(now))

	// An event starting exactly now is no longer open
	boundary := models.Event{StartDate: now, EnabledForEnrollment: true}
	assert.False(t, boundary.OpenForEnrollment(now))
}

func TestEvent_HasOccurred(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.False(t, (&models.Event{StartDate: now.Add(time.Minute)}).HasOccurred(now))
	assert.True(t, (&models.Event{StartDate: now.Add(-time.Minute)}).HasOccurred(now))
	// Start date equal to the current instant counts as occurred
	assert.True(t, (&models.Event{StartDate: now}).HasOccurred(now))
}
