package admin

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

// MockUserRepository is a mock implementation of user.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) FirstOrCreateUserByEmail(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CreateSignupRequest(ctx context.Context, request *entities.RestaurantSignupRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockUserRepository) GetSignupRequestByID(ctx context.Context, id string) (*entities.RestaurantSignupRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RestaurantSignupRequest), args.Error(1)
}

func (m *MockUserRepository) GetPendingSignupRequests(ctx context.Context) ([]*entities.RestaurantSignupRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RestaurantSignupRequest), args.Error(1)
}

func (m *MockUserRepository) UpdateSignupRequestStatus(ctx context.Context, id string, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUserRepository) CountPendingSignupRequests(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRestaurantRepository is a mock implementation of restaurant.RestaurantRepository.
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

// MockDishRepository is a mock implementation of dish.DishRepository.
type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) CreateDish(ctx context.Context, dish *entities.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishRepository) GetDishByID(ctx context.Context, id string) (*entities.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Dish), args.Error(1)
}

func (m *MockDishRepository) GetDishesByRestaurant(ctx context.Context, restaurantID string) ([]*entities.Dish, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Dish), args.Error(1)
}

func (m *MockDishRepository) UpdateDish(ctx context.Context, dish *entities.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishRepository) DeleteDish(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDishRepository) CountDishes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func pendingRequest() *entities.RestaurantSignupRequest {
	return &entities.RestaurantSignupRequest{
		ID:                 uuid.New(),
		Name:               "Mario",
		Email:              "mario@example.com",
		Password:           "$2a$10$hashed",
		RestaurantName:     "Mario's Pizza",
		RestaurantCategory: "Italian",
		Status:             domain.SignupRequestPending,
	}
}

func TestAdminService_ProcessSignupRequest_Approve(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	dishRepo := new(MockDishRepository)
	service := NewAdminService(userRepo, restaurantRepo, dishRepo)

	request := pendingRequest()

	userRepo.On("GetSignupRequestByID", mock.Anything, request.ID.String()).Return(request, nil)
	userRepo.On("FirstOrCreateUserByEmail", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.Email == request.Email && u.Role == domain.RoleRestaurant && u.Password == request.Password
	})).Return(nil)
	restaurantRepo.On("FirstOrCreateRestaurantByOwner", mock.Anything, mock.MatchedBy(func(r *entities.Restaurant) bool {
		return r.Name == request.RestaurantName && r.Category == request.RestaurantCategory
	})).Return(nil)
	userRepo.On("UpdateSignupRequestStatus", mock.Anything, request.ID.String(), domain.SignupRequestApproved).Return(nil)

	res, processed, err := service.ProcessSignupRequest(context.Background(), domain.ProcessSignupRequest{
		ID:     request.ID.String(),
		Action: domain.RequestActionApprove,
	})

	require.NoError(t, err)
	assert.True(t, processed)
	assert.Equal(t, domain.SignupRequestApproved, res.Status)
	userRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
}

func TestAdminService_ProcessSignupRequest_Reject(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	dishRepo := new(MockDishRepository)
	service := NewAdminService(userRepo, restaurantRepo, dishRepo)

	request := pendingRequest()

	userRepo.On("GetSignupRequestByID", mock.Anything, request.ID.String()).Return(request, nil)
	userRepo.On("UpdateSignupRequestStatus", mock.Anything, request.ID.String(), domain.SignupRequestRejected).Return(nil)

	res, processed, err := service.ProcessSignupRequest(context.Background(), domain.ProcessSignupRequest{
		ID:     request.ID.String(),
		Action: domain.RequestActionReject,
	})

	require.NoError(t, err)
	assert.True(t, processed)
	assert.Equal(t, domain.SignupRequestRejected, res.Status)
	// rejection never provisions an account
	userRepo.AssertNotCalled(t, "FirstOrCreateUserByEmail", mock.Anything, mock.Anything)
	restaurantRepo.AssertNotCalled(t, "FirstOrCreateRestaurantByOwner", mock.Anything, mock.Anything)
}

func TestAdminService_ProcessSignupRequest_AlreadyProcessed(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	dishRepo := new(MockDishRepository)
	service := NewAdminService(userRepo, restaurantRepo, dishRepo)

	request := pendingRequest()
	request.Status = domain.SignupRequestApproved

	userRepo.On("GetSignupRequestByID", mock.Anything, request.ID.String()).Return(request, nil)

	res, processed, err := service.ProcessSignupRequest(context.Background(), domain.ProcessSignupRequest{
		ID:     request.ID.String(),
		Action: domain.RequestActionApprove,
	})

	require.NoError(t, err)
	assert.False(t, processed)
	assert.Equal(t, domain.SignupRequestApproved, res.Status)
	userRepo.AssertNotCalled(t, "FirstOrCreateUserByEmail", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "UpdateSignupRequestStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_ProcessSignupRequest_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	dishRepo := new(MockDishRepository)
	service := NewAdminService(userRepo, restaurantRepo, dishRepo)

	id := uuid.NewString()
	userRepo.On("GetSignupRequestByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := service.ProcessSignupRequest(context.Background(), domain.ProcessSignupRequest{
		ID:     id,
		Action: domain.RequestActionApprove,
	})

	assert.ErrorIs(t, err, domain.ErrSignupRequestNotFound)
}

func TestAdminService_DeleteRestaurant_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	dishRepo := new(MockDishRepository)
	service := NewAdminService(userRepo, restaurantRepo, dishRepo)

	id := uuid.NewString()
	restaurantRepo.On("GetRestaurantByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	err := service.DeleteRestaurant(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
	restaurantRepo.AssertNotCalled(t, "DeleteRestaurant", mock.Anything, mock.Anything)
}

func TestAdminService_GetSiteStats(t *testing.T) {
	userRepo := new(MockUserRepository)
	restaurantRepo := new(MockRestaurantRepository)
	dishRepo := new(MockDishRepository)
	service := NewAdminService(userRepo, restaurantRepo, dishRepo)

	restaurantRepo.On("CountRestaurants", mock.Anything).Return(int64(4), nil)
	dishRepo.On("CountDishes", mock.Anything).Return(int64(31), nil)
	userRepo.On("CountUsers", mock.Anything).Return(int64(120), nil)
	userRepo.On("CountPendingSignupRequests", mock.Anything).Return(int64(2), nil)

	res, err := service.GetSiteStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Restaurants)
	assert.Equal(t, int64(31), res.Dishes)
	assert.Equal(t, int64(120), res.Users)
	assert.Equal(t, int64(2), res.PendingRequests)
}
