package favorite

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

// MockFavoriteRepository is a mock implementation of FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) CreateFavorite(ctx context.Context, favorite *entities.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) GetFavoriteByUser(ctx context.Context, userID string) (*entities.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) AddFavoriteItem(ctx context.Context, item *entities.FavoriteItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFavoriteRepository) DeleteFavoriteItemsByDish(ctx context.Context, favoriteID, dishID string) error {
	args := m.Called(ctx, favoriteID, dishID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) DeleteFavorite(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFavoriteRepository) CountFavoriteItems(ctx context.Context, favoriteID string) (int64, error) {
	args := m.Called(ctx, favoriteID)
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

func TestFavoriteService_GetFavorites_NoCollection(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	dishRepo := new(MockDishRepository)
	service := NewFavoriteService(favoriteRepo, dishRepo)

	favoriteRepo.On("GetFavoriteByUser", mock.Anything, "user-1").
		Return(nil, gorm.ErrRecordNotFound)

	items, err := service.GetFavorites(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFavoriteService_AddFavorite_CreatesCollectionLazily(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	dishRepo := new(MockDishRepository)
	service := NewFavoriteService(favoriteRepo, dishRepo)

	userID := uuid.New()
	testDish := &entities.Dish{ID: uuid.New(), Name: "Carbonara", Price: 11.0}

	dishRepo.On("GetDishByID", mock.Anything, testDish.ID.String()).Return(testDish, nil)
	favoriteRepo.On("GetFavoriteByUser", mock.Anything, userID.String()).
		Return(nil, gorm.ErrRecordNotFound).Once()
	favoriteRepo.On("CreateFavorite", mock.Anything, mock.MatchedBy(func(f *entities.Favorite) bool {
		return f.UserID == userID
	})).Return(nil)
	favoriteRepo.On("AddFavoriteItem", mock.Anything, mock.MatchedBy(func(i *entities.FavoriteItem) bool {
		return i.DishID == testDish.ID
	})).Return(nil)

	saved := &entities.Favorite{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entities.FavoriteItem{
			{ID: uuid.New(), DishID: testDish.ID, Dish: testDish},
		},
	}
	favoriteRepo.On("GetFavoriteByUser", mock.Anything, userID.String()).Return(saved, nil)

	items, err := service.AddFavorite(context.Background(), domain.FavoriteRequest{
		DishID: testDish.ID.String(),
	}, userID.String())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, testDish.Name, items[0].Dish.Name)
	favoriteRepo.AssertExpectations(t)
}

func TestFavoriteService_AddFavorite_DuplicateIsNoOp(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	dishRepo := new(MockDishRepository)
	service := NewFavoriteService(favoriteRepo, dishRepo)

	userID := uuid.New()
	testDish := &entities.Dish{ID: uuid.New(), Name: "Carbonara", Price: 11.0}
	existing := &entities.Favorite{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entities.FavoriteItem{
			{ID: uuid.New(), DishID: testDish.ID, Dish: testDish},
		},
	}

	dishRepo.On("GetDishByID", mock.Anything, testDish.ID.String()).Return(testDish, nil)
	favoriteRepo.On("GetFavoriteByUser", mock.Anything, userID.String()).Return(existing, nil)

	items, err := service.AddFavorite(context.Background(), domain.FavoriteRequest{
		DishID: testDish.ID.String(),
	}, userID.String())

	require.NoError(t, err)
	assert.Len(t, items, 1)
	favoriteRepo.AssertNotCalled(t, "AddFavoriteItem", mock.Anything, mock.Anything)
}

func TestFavoriteService_AddFavorite_DishMissing(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	dishRepo := new(MockDishRepository)
	service := NewFavoriteService(favoriteRepo, dishRepo)

	dishID := uuid.NewString()
	dishRepo.On("GetDishByID", mock.Anything, dishID).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.AddFavorite(context.Background(), domain.FavoriteRequest{
		DishID: dishID,
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrDishNotFound)
	favoriteRepo.AssertNotCalled(t, "CreateFavorite", mock.Anything, mock.Anything)
}

func TestFavoriteService_RemoveFavorite_LastItemDropsCollection(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	dishRepo := new(MockDishRepository)
	service := NewFavoriteService(favoriteRepo, dishRepo)

	userID := uuid.New()
	dishID := uuid.New()
	existing := &entities.Favorite{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entities.FavoriteItem{
			{ID: uuid.New(), DishID: dishID},
		},
	}

	favoriteRepo.On("GetFavoriteByUser", mock.Anything, userID.String()).Return(existing, nil)
	favoriteRepo.On("DeleteFavoriteItemsByDish", mock.Anything, existing.ID.String(), dishID.String()).Return(nil)
	favoriteRepo.On("CountFavoriteItems", mock.Anything, existing.ID.String()).Return(int64(0), nil)
	favoriteRepo.On("DeleteFavorite", mock.Anything, existing.ID.String()).Return(nil)

	items, err := service.RemoveFavorite(context.Background(), dishID.String(), userID.String())

	require.NoError(t, err)
	assert.Empty(t, items)
	favoriteRepo.AssertExpectations(t)
}

func TestFavoriteService_IsFavorite(t *testing.T) {
	favoriteRepo := new(MockFavoriteRepository)
	dishRepo := new(MockDishRepository)
	service := NewFavoriteService(favoriteRepo, dishRepo)

	userID := uuid.New()
	savedDish := uuid.New()
	existing := &entities.Favorite{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entities.FavoriteItem{
			{ID: uuid.New(), DishID: savedDish},
		},
	}

	favoriteRepo.On("GetFavoriteByUser", mock.Anything, userID.String()).Return(existing, nil)

	res, err := service.IsFavorite(context.Background(), savedDish.String(), userID.String())
	require.NoError(t, err)
	assert.True(t, res.IsFavorite)

	res, err = service.IsFavorite(context.Background(), uuid.NewString(), userID.String())
	require.NoError(t, err)
	assert.False(t, res.IsFavorite)
}
