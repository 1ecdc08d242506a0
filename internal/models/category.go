package models

// Category classifies events. Events reference a category optionally.
type Category struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" gorm:"type:varchar(100)"`
}

// Tag is a free-form label attached to events through a many-to-many
// association. Updating an event with a tag list replaces all of its
// associations in one operation.
type Tag struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" gorm:"uniqueIndex;type:varchar(100)"`
}
