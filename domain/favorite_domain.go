package domain

import "time"

var (
	MessageSuccessGetFavorites   = "favorites retrieved successfully"
	MessageSuccessAddFavorite    = "dish added to favorites"
	MessageSuccessRemoveFavorite = "dish removed from favorites"

	MessageFailedGetFavorites   = "failed to fetch favorites"
	MessageFailedAddFavorite    = "failed to add favorite"
	MessageFailedRemoveFavorite = "failed to remove favorite"
)

type (
	FavoriteRequest struct {
		DishID string `json:"dish_id" validate:"required,uuid"`
	}

	FavoriteItemResponse struct {
		Key       string        `json:"key"`
		CreatedAt time.Time     `json:"created_at"`
		Dish      *DishResponse `json:"dish"`
	}

	IsFavoriteResponse struct {
		IsFavorite bool `json:"is_favorite"`
	}
)
