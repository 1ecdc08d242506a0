package models

import "gorm.io/gorm"

// User represents a registered account. The username is the email-shaped
// credential key and is unique across all users.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FirstName  string `json:"first_name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	LastName   string `json:"last_name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=3"` // No json tag for security
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// UserUpdate carries a self-service partial update. Nil fields are left
// untouched, so a caller can distinguish "absent" from an empty value.
type UserUpdate struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=3,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=3,max=100"`
	Username  *string `json:"username" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=3"`
}
