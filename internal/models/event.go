package models

import (
	"time"

	"gorm.io/gorm"
)

// Event represents an event users can enroll in. MaxAssistance is bounded by
// the venue's MaxCapacity; the cross-check is enforced by the service layer
// whenever either value is set.
type Event struct {
	ID                   string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name                 string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Description          string    `json:"description" gorm:"type:varchar(500)" validate:"required,min=3,max=500"`
	CategoryID           *string   `json:"id_event_category" gorm:"type:varchar(36)"`
	EventLocationID      string    `json:"id_event_location" gorm:"type:varchar(36)" validate:"required"`
	StartDate            time.Time `json:"start_date"`
	DurationInMinutes    int       `json:"duration_in_minutes" validate:"gte=0"`
	Price                float64   `json:"price" validate:"gte=0"`
	EnabledForEnrollment bool      `json:"enabled_for_enrollment"`
	MaxAssistance        int       `json:"max_assistance" validate:"gte=0"`
	CreatorUserID        string    `json:"id_creator_user" gorm:"type:varchar(36)"`
	Tags                 []Tag     `json:"tags" gorm:"many2many:event_tags"`
	gorm.Model                     // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// OpenForEnrollment reports whether the event accepts enrollments at the given
// instant. There is no stored state field; openness is derived from the
// enrollment flag and the start date.
func (e *Event) OpenForEnrollment(now time.Time) bool {
	return e.EnabledForEnrollment && e.StartDate.After(now)
}

// HasOccurred reports whether the event's start date has already passed.
func (e *Event) HasOccurred(now time.Time) bool {
	return !e.StartDate.After(now)
}

// EventUpdate carries a partial update for an event. Only non-nil fields are
// applied, so explicitly setting price to 0 or disabling enrollment is
// distinguishable from leaving the field out. A non-nil Tags slice replaces
// all tag associations; nil leaves them as they are.
type EventUpdate struct {
	Name                 *string    `json:"name" validate:"omitempty,min=3,max=100"`
	Description          *string    `json:"description" validate:"omitempty,min=3,max=500"`
	CategoryID           *string    `json:"id_event_category"`
	EventLocationID      *string    `json:"id_event_location"`
	StartDate            *time.Time `json:"start_date"`
	DurationInMinutes    *int       `json:"duration_in_minutes" validate:"omitempty,gte=0"`
	Price                *float64   `json:"price" validate:"omitempty,gte=0"`
	EnabledForEnrollment *bool      `json:"enabled_for_enrollment"`
	MaxAssistance        *int       `json:"max_assistance" validate:"omitempty,gte=0"`
	Tags                 []string   `json:"tags"`
}
