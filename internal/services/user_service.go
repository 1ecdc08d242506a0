package services

import (
	"fmt"

	"eventia/internal/errors"
	"eventia/internal/models"
	"eventia/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles profile reads and self-service account changes.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetProfile retrieves the acting user's own record.
func (s *UserService) GetProfile(userID string) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// UpdateProfile applies a self-service partial update. A supplied password is
// re-hashed; a supplied username must stay unique.
func (s *UserService) UpdateProfile(userID string, update models.UserUpdate) error {
	fields := make(map[string]interface{})

	if update.FirstName != nil {
		if len(*update.FirstName) < 3 {
			return errors.NewValidationError("first_name", "must be at least 3 characters")
		}
		fields["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		if len(*update.LastName) < 3 {
			return errors.NewValidationError("last_name", "must be at least 3 characters")
		}
		fields["last_name"] = *update.LastName
	}
	if update.Username != nil {
		if existing, err := s.userRepo.GetByUsername(*update.Username); err == nil && existing != nil && existing.ID != userID {
			return errors.ErrUserAlreadyExists
		}
		fields["username"] = *update.Username
	}
	if update.Password != nil {
		if len(*update.Password) < 3 {
			return errors.NewValidationError("password", "must be at least 3 characters")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		fields["password"] = string(hashed)
	}

	if len(fields) == 0 {
		return nil
	}
	return s.userRepo.UpdateFields(userID, fields)
}

// DeleteAccount removes the acting user's own record.
func (s *UserService) DeleteAccount(userID string) error {
	return s.userRepo.Delete(userID)
}
