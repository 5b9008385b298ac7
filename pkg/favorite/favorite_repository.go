package favorite

import (
	"TastyBites-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FavoriteRepository interface {
		CreateFavorite(ctx context.Context, favorite *entities.Favorite) error
		GetFavoriteByUser(ctx context.Context, userID string) (*entities.Favorite, error)
		AddFavoriteItem(ctx context.Context, item *entities.FavoriteItem) error
		DeleteFavoriteItemsByDish(ctx context.Context, favoriteID, dishID string) error
		DeleteFavorite(ctx context.Context, id string) error
		CountFavoriteItems(ctx context.Context, favoriteID string) (int64, error)
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entities.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) GetFavoriteByUser(ctx context.Context, userID string) (*entities.Favorite, error) {
	var favorite entities.Favorite
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("favorite_items.created_at asc") }).
		Preload("Items.Dish").
		Preload("Items.Dish.Restaurant").
		Where("user_id = ?", userID).
		First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) AddFavoriteItem(ctx context.Context, item *entities.FavoriteItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *favoriteRepository) DeleteFavoriteItemsByDish(ctx context.Context, favoriteID, dishID string) error {
	return r.db.WithContext(ctx).
		Where("favorite_id = ? AND dish_id = ?", favoriteID, dishID).
		Delete(&entities.FavoriteItem{}).Error
}

func (r *favoriteRepository) DeleteFavorite(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Where("favorite_id = ?", id).
		Delete(&entities.FavoriteItem{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Favorite{}).Error
}

func (r *favoriteRepository) CountFavoriteItems(ctx context.Context, favoriteID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FavoriteItem{}).
		Where("favorite_id = ?", favoriteID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
