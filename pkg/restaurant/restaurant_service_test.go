package restaurant

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockRestaurantRepository is a mock implementation of RestaurantRepository.
type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) FirstOrCreateRestaurantByOwner(ctx context.Context, restaurant *entities.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) GetRestaurants(ctx context.Context) ([]*entities.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetRestaurantByOwner(ctx context.Context, ownerID string) (*entities.Restaurant, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) GetCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRestaurantRepository) UpdateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) UpdateRestaurantRating(ctx context.Context, id string, rating float64) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

func (m *MockRestaurantRepository) DeleteRestaurant(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRestaurantRepository) CountRestaurants(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestRestaurantService_GetRestaurantByID_NotFound(t *testing.T) {
	repo := new(MockRestaurantRepository)
	service := NewRestaurantService(repo)

	id := uuid.NewString()
	repo.On("GetRestaurantByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetRestaurantByID(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestRestaurantService_UpdateRestaurant_PartialPatch(t *testing.T) {
	repo := new(MockRestaurantRepository)
	service := NewRestaurantService(repo)

	ownerID := uuid.New()
	existing := &entities.Restaurant{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        "Old Name",
		Description: "unchanged",
		Rating:      4.2,
	}

	repo.On("GetRestaurantByID", mock.Anything, existing.ID.String()).Return(existing, nil)
	repo.On("UpdateRestaurant", mock.Anything, mock.MatchedBy(func(r *entities.Restaurant) bool {
		return r.Name == "New Name" && r.Description == "unchanged"
	})).Return(nil)

	res, err := service.UpdateRestaurant(context.Background(), existing.ID.String(), domain.UpdateRestaurantRequest{
		Name: strPtr("New Name"),
	}, ownerID.String(), domain.RoleRestaurant)

	require.NoError(t, err)
	assert.Equal(t, "New Name", res.Name)
	// rating is derived and survives profile updates untouched
	assert.Equal(t, 4.2, res.Rating)
	repo.AssertExpectations(t)
}

func TestRestaurantService_UpdateRestaurant_NotOwner(t *testing.T) {
	repo := new(MockRestaurantRepository)
	service := NewRestaurantService(repo)

	existing := &entities.Restaurant{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
	}

	repo.On("GetRestaurantByID", mock.Anything, existing.ID.String()).Return(existing, nil)

	_, err := service.UpdateRestaurant(context.Background(), existing.ID.String(), domain.UpdateRestaurantRequest{
		Name: strPtr("Hijacked"),
	}, uuid.NewString(), domain.RoleRestaurant)

	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
	repo.AssertNotCalled(t, "UpdateRestaurant", mock.Anything, mock.Anything)
}

func TestRestaurantService_UpdateRestaurant_AdminBypassesOwnership(t *testing.T) {
	repo := new(MockRestaurantRepository)
	service := NewRestaurantService(repo)

	existing := &entities.Restaurant{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
	}

	repo.On("GetRestaurantByID", mock.Anything, existing.ID.String()).Return(existing, nil)
	repo.On("UpdateRestaurant", mock.Anything, mock.Anything).Return(nil)

	_, err := service.UpdateRestaurant(context.Background(), existing.ID.String(), domain.UpdateRestaurantRequest{
		Name: strPtr("Renamed by admin"),
	}, uuid.NewString(), domain.RoleAdmin)

	require.NoError(t, err)
}

func TestRestaurantService_UpdateRestaurant_EmptyPatch(t *testing.T) {
	repo := new(MockRestaurantRepository)
	service := NewRestaurantService(repo)

	ownerID := uuid.New()
	existing := &entities.Restaurant{
		ID:      uuid.New(),
		OwnerID: ownerID,
	}

	repo.On("GetRestaurantByID", mock.Anything, existing.ID.String()).Return(existing, nil)

	_, err := service.UpdateRestaurant(context.Background(), existing.ID.String(), domain.UpdateRestaurantRequest{},
		ownerID.String(), domain.RoleRestaurant)

	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
	repo.AssertNotCalled(t, "UpdateRestaurant", mock.Anything, mock.Anything)
}
