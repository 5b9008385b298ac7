package rating

import (
	"TastyBites-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RatingRepository interface {
		CreateRating(ctx context.Context, rating *entities.RestaurantRating) error
		GetRatingsByRestaurant(ctx context.Context, restaurantID string, limit int) ([]*entities.RestaurantRating, error)
		GetAllRatingValues(ctx context.Context, restaurantID string) ([]int, error)
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) CreateRating(ctx context.Context, rating *entities.RestaurantRating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) GetRatingsByRestaurant(ctx context.Context, restaurantID string, limit int) ([]*entities.RestaurantRating, error) {
	var ratings []*entities.RestaurantRating
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Restaurant").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Limit(limit).
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) GetAllRatingValues(ctx context.Context, restaurantID string) ([]int, error) {
	var values []int
	if err := r.db.WithContext(ctx).Model(&entities.RestaurantRating{}).
		Where("restaurant_id = ?", restaurantID).
		Pluck("rating", &values).Error; err != nil {
		return nil, err
	}
	return values, nil
}
