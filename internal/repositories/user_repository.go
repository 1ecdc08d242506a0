package repositories

import "eventia/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetAll() ([]models.User, error)
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
}
