package dish

import (
	"TastyBites-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	DishRepository interface {
		CreateDish(ctx context.Context, dish *entities.Dish) error
		GetDishByID(ctx context.Context, id string) (*entities.Dish, error)
		GetDishesByRestaurant(ctx context.Context, restaurantID string) ([]*entities.Dish, error)
		UpdateDish(ctx context.Context, dish *entities.Dish) error
		DeleteDish(ctx context.Context, id string) error
		CountDishes(ctx context.Context) (int64, error)
	}

	dishRepository struct {
		db *gorm.DB
	}
)

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) CreateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Create(dish).Error
}

func (r *dishRepository) GetDishByID(ctx context.Context, id string) (*entities.Dish, error) {
	var dish entities.Dish
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Where("id = ?", id).
		First(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) GetDishesByRestaurant(ctx context.Context, restaurantID string) ([]*entities.Dish, error) {
	var dishes []*entities.Dish
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at asc").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *dishRepository) UpdateDish(ctx context.Context, dish *entities.Dish) error {
	return r.db.WithContext(ctx).Save(dish).Error
}

func (r *dishRepository) DeleteDish(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Dish{}).Error
}

func (r *dishRepository) CountDishes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Dish{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
