package models

import "gorm.io/gorm"

// Province is reference data for grouping physical locations.
type Province struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" gorm:"type:varchar(100)"`
}

// Location is a physical place (city/district) an event location belongs to.
type Location struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name       string  `json:"name" gorm:"type:varchar(100)"`
	ProvinceID string  `json:"id_province" gorm:"type:varchar(36)"`
	Province   Province `json:"province" gorm:"foreignKey:ProvinceID"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// EventLocation is a venue owned by the user who created it. Reads as well as
// mutations are scoped to the owner; there is no public venue listing.
type EventLocation struct {
	ID            string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	LocationID    string   `json:"id_location" gorm:"type:varchar(36)" validate:"required"`
	Location      Location `json:"location" gorm:"foreignKey:LocationID"`
	Name          string   `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	FullAddress   string   `json:"full_address" gorm:"type:varchar(255)" validate:"required"`
	MaxCapacity   int      `json:"max_capacity" validate:"required,gt=0"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	CreatorUserID string   `json:"id_creator_user" gorm:"type:varchar(36)"`
	gorm.Model             // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// EventLocationUpdate carries a partial update for an event location.
// Nil fields are left untouched.
type EventLocationUpdate struct {
	LocationID  *string  `json:"id_location"`
	Name        *string  `json:"name" validate:"omitempty,min=3,max=100"`
	FullAddress *string  `json:"full_address"`
	MaxCapacity *int     `json:"max_capacity" validate:"omitempty,gt=0"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}
