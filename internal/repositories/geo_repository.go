package repositories

import (
	"fmt"

	"eventia/internal/errors"
	"eventia/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationRepository defines data access for the physical location reference
// data (provinces and locations) that event locations point at.
type LocationRepository interface {
	GetByID(id string) (*models.Location, error)
	GetAll() ([]models.Location, error)
	Create(location *models.Location) error
	CreateProvince(province *models.Province) error
	CountLocations() (int64, error)
}

// GORMLocationRepository is a GORM implementation of LocationRepository.
type GORMLocationRepository struct {
	db *gorm.DB
}

// NewGORMLocationRepository creates a new instance of GORMLocationRepository.
func NewGORMLocationRepository(db *gorm.DB) *GORMLocationRepository {
	return &GORMLocationRepository{
		db: db,
	}
}

// GetByID retrieves a physical location with its province.
func (r *GORMLocationRepository) GetByID(id string) (*models.Location, error) {
	var location models.Location
	if err := r.db.Preload("Province").First(&location, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("failed to get location by ID %s: %w", id, err)
	}
	return &location, nil
}

// GetAll retrieves all physical locations.
func (r *GORMLocationRepository) GetAll() ([]models.Location, error) {
	var locations []models.Location
	if err := r.db.Preload("Province").Order("name").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}
	return locations, nil
}

// Create creates a new physical location.
func (r *GORMLocationRepository) Create(location *models.Location) error {
	if location.ID == "" {
		location.ID = uuid.New().String()
	}
	if err := r.db.Create(location).Error; err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

// CreateProvince creates a new province.
func (r *GORMLocationRepository) CreateProvince(province *models.Province) error {
	if province.ID == "" {
		province.ID = uuid.New().String()
	}
	if err := r.db.Create(province).Error; err != nil {
		return fmt.Errorf("failed to create province: %w", err)
	}
	return nil
}

// CountLocations returns the number of stored physical locations. Used to
// decide whether reference data needs seeding.
func (r *GORMLocationRepository) CountLocations() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Location{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count locations: %w", err)
	}
	return count, nil
}
