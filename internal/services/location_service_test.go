package services_test

import (
	"testing"

	apperrors "eventia/internal/errors"
	"eventia/internal/models"
	"eventia/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGeoRepo is a mock implementation of repositories.LocationRepository
type MockGeoRepo struct {
	mock.Mock
}

func (m *MockGeoRepo) GetByID(id string) (*models.Location, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockGeoRepo) GetAll() ([]models.Location, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Location), args.Error(1)
}

func (m *MockGeoRepo) Create(location *models.Location) error {
	args := m.Called(location)
	return args.Error(0)
}

func (m *MockGeoRepo) CreateProvince(province *models.Province) error {
	args := m.Called(province)
	return args.Error(0)
}

func (m *MockGeoRepo) CountLocations() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func ownedVenue(ownerID string) *models.EventLocation {
	return &models.EventLocation{
		ID:            "venue-1",
		LocationID:    "loc-1",
		Name:          "Club Paraguay",
		FullAddress:   "Marcelo T 1000",
		MaxCapacity:   300,
		CreatorUserID: ownerID,
	}
}

func TestLocationService_GetOwnLocation(t *testing.T) {
	locationRepo := new(MockEventLocationRepo)
	geoRepo := new(MockGeoRepo)
	eventRepo := new(MockEventRepo)
	service := services.NewLocationService(locationRepo, geoRepo, eventRepo)

	// Owner reads their venue
	locationRepo.On("GetByID", "venue-1").Return(ownedVenue("user-1"), nil).Once()
	venue, err := service.GetOwnLocation("venue-1", "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "Club Paraguay", venue.Name)

	// Someone else's venue reads the same as a missing one
	locationRepo.On("GetByID", "venue-1").Return(ownedVenue("user-1"), nil).Once()
	_, err = service.GetOwnLocation("venue-1", "user-2")
	assert.ErrorIs(t, err, apperrors.ErrNotFoundOrUnauthorized)

	locationRepo.On("GetByID", "venue-missing").Return(nil, apperrors.ErrLocationNotFound).Once()
	_, err = service.GetOwnLocation("venue-missing", "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFoundOrUnauthorized)

	locationRepo.AssertExpectations(t)
}

func TestLocationService_CreateLocation(t *testing.T) {
	locationRepo := new(MockEventLocationRepo)
	geoRepo := new(MockGeoRepo)
	eventRepo := new(MockEventRepo)
	service := services.NewLocationService(locationRepo, geoRepo, eventRepo)

	// Successful creation stamps the creator
	geoRepo.On("GetByID", "loc-1").Return(&models.Location{ID: "loc-1"}, nil).Once()
	locationRepo.On("Create", mock.AnythingOfType("*models.EventLocation")).Return(nil).Once()

	venue := ownedVenue("")
	created, err := service.CreateLocation(venue, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", created.CreatorUserID)
	locationRepo.AssertExpectations(t)

	// Non-positive capacity is rejected before any lookup
	badCapacity := ownedVenue("")
	badCapacity.MaxCapacity = 0
	_, err = service.CreateLocation(badCapacity, "user-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_capacity")

	// The referenced physical location must exist
	geoRepo.On("GetByID", "loc-missing").Return(nil, apperrors.ErrLocationNotFound).Once()
	badGeo := ownedVenue("")
	badGeo.LocationID = "loc-missing"
	_, err = service.CreateLocation(badGeo, "user-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "id_location")
	locationRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestLocationService_UpdateLocation_CapacityShrink(t *testing.T) {
	locationRepo := new(MockEventLocationRepo)
	geoRepo := new(MockGeoRepo)
	eventRepo := new(MockEventRepo)
	service := services.NewLocationService(locationRepo, geoRepo, eventRepo)

	// An event at the venue already promises 200 seats, so the capacity
	// cannot drop below that.
	locationRepo.On("GetByID", "venue-1").Return(ownedVenue("user-1"), nil).Once()
	eventRepo.On("MaxAssistanceAtLocation", "venue-1").Return(200, nil).Once()

	tooSmall := 150
	err := service.UpdateLocation("venue-1", "user-1", models.EventLocationUpdate{MaxCapacity: &tooSmall})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_capacity")
	locationRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)

	// Shrinking to exactly the promised assistance is allowed
	locationRepo.On("GetByID", "venue-1").Return(ownedVenue("user-1"), nil).Once()
	eventRepo.On("MaxAssistanceAtLocation", "venue-1").Return(200, nil).Once()
	locationRepo.On("UpdateFields", "venue-1", map[string]interface{}{
		"max_capacity": 200,
	}).Return(nil).Once()

	exact := 200
	err = service.UpdateLocation("venue-1", "user-1", models.EventLocationUpdate{MaxCapacity: &exact})
	assert.NoError(t, err)
	locationRepo.AssertExpectations(t)
}

func TestLocationService_UpdateLocation_Ownership(t *testing.T) {
	locationRepo := new(MockEventLocationRepo)
	geoRepo := new(MockGeoRepo)
	eventRepo := new(MockEventRepo)
	service := services.NewLocationService(locationRepo, geoRepo, eventRepo)

	name := "Renamed"
	locationRepo.On("GetByID", "venue-1").Return(ownedVenue("user-1"), nil).Once()
	err := service.UpdateLocation("venue-1", "user-2", models.EventLocationUpdate{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrNotFoundOrUnauthorized)
	locationRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything)
}

func TestLocationService_DeleteLocation(t *testing.T) {
	locationRepo := new(MockEventLocationRepo)
	geoRepo := new(MockGeoRepo)
	eventRepo := new(MockEventRepo)
	service := services.NewLocationService(locationRepo, geoRepo, eventRepo)

	// A venue still hosting events cannot be deleted
	locationRepo.On("GetByID", "venue-1").Return(ownedVenue("user-1"), nil).Once()
	eventRepo.On("CountAtLocation", "venue-1").Return(int64(2), nil).Once()
	err := service.DeleteLocation("venue-1", "user-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "still has events")
	locationRepo.AssertNotCalled(t, "Delete", mock.Anything)

	// An empty venue deletes fine
	locationRepo.On("GetByID", "venue-1").Return(ownedVenue("user-1"), nil).Once()
	eventRepo.On("CountAtLocation", "venue-1").Return(int64(0), nil).Once()
	locationRepo.On("Delete", "venue-1").Return(nil).Once()
	err = service.DeleteLocation("venue-1", "user-1")
	assert.NoError(t, err)
	locationRepo.AssertExpectations(t)

	// Non-owner cannot delete
	locationRepo.On("GetByID", "venue-1").Return(ownedVenue("user-1"), nil).Once()
	err = service.DeleteLocation("venue-1", "user-2")
	assert.ErrorIs(t, err, apperrors.ErrNotFoundOrUnauthorized)
}
