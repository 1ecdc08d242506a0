package models

import "time"

// Enrollment links one user to one event. The composite primary key guarantees
// at most one row per (event, user) pair, which also makes a client retry of a
// successful enroll a no-op rather than a duplicate.
type Enrollment struct {
	EventID              string    `json:"id_event" gorm:"primaryKey;type:varchar(36)"`
	UserID               string    `json:"id_user" gorm:"primaryKey;type:varchar(36)"`
	RegistrationDateTime time.Time `json:"registration_date_time"`
}
