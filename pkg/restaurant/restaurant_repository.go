package restaurant

import (
	"TastyBites-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RestaurantRepository interface {
		CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error
		FirstOrCreateRestaurantByOwner(ctx context.Context, restaurant *entities.Restaurant) error
		GetRestaurants(ctx context.Context) ([]*entities.Restaurant, error)
		GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error)
		GetRestaurantByOwner(ctx context.Context, ownerID string) (*entities.Restaurant, error)
		GetCategories(ctx context.Context) ([]string, error)
		UpdateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error
		UpdateRestaurantRating(ctx context.Context, id string, rating float64) error
		DeleteRestaurant(ctx context.Context, id string) error
		CountRestaurants(ctx context.Context) (int64, error)
	}

	restaurantRepository struct {
		db *gorm.DB
	}
)

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

// FirstOrCreateRestaurantByOwner is used by the signup-approval workflow: the
// unique index on owner_id guarantees one restaurant per owner even when the
// same request is approved concurrently.
func (r *restaurantRepository) FirstOrCreateRestaurantByOwner(ctx context.Context, restaurant *entities.Restaurant) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ?", restaurant.OwnerID).
		FirstOrCreate(restaurant).Error
}

func (r *restaurantRepository) GetRestaurants(ctx context.Context) ([]*entities.Restaurant, error) {
	var restaurants []*entities.Restaurant
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at desc").
		Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetRestaurantByOwner(ctx context.Context, ownerID string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).Model(&entities.Restaurant{}).
		Distinct("category").
		Where("category <> ''").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *restaurantRepository) UpdateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

func (r *restaurantRepository) UpdateRestaurantRating(ctx context.Context, id string, rating float64) error {
	return r.db.WithContext(ctx).Model(&entities.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating}).Error
}

func (r *restaurantRepository) DeleteRestaurant(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", id).
		Delete(&entities.Dish{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Restaurant{}).Error
}

func (r *restaurantRepository) CountRestaurants(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Restaurant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
