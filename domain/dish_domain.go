package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetDishes       = "dishes retrieved successfully"
	MessageSuccessCreateDish      = "dish created successfully"
	MessageSuccessUpdateDish      = "dish updated successfully"
	MessageSuccessDeleteDish      = "dish deleted successfully"
	MessageSuccessUploadDishImage = "dish image uploaded successfully"

	MessageFailedGetDishes       = "failed to retrieve dishes"
	MessageFailedCreateDish      = "failed to create dish"
	MessageFailedUpdateDish      = "failed to update dish"
	MessageFailedDeleteDish      = "failed to delete dish"
	MessageFailedUploadDishImage = "failed to upload dish image"

	ErrDishNotFound        = errors.New("dish not found")
	ErrMissingRestaurantID = errors.New("missing restaurant id")
	ErrInvalidPrice        = errors.New("price must not be negative")
)

type (
	CreateDishRequest struct {
		RestaurantID string   `json:"restaurant_id" validate:"required,uuid"`
		Name         string   `json:"name" validate:"required"`
		Description  string   `json:"description" validate:"omitempty"`
		Price        *float64 `json:"price" validate:"required,gte=0"`
		Category     string   `json:"category" validate:"omitempty"`
	}

	UpdateDishRequest struct {
		Name        *string  `json:"name" validate:"omitempty,min=1"`
		Description *string  `json:"description" validate:"omitempty"`
		Price       *float64 `json:"price" validate:"omitempty,gte=0"`
		Category    *string  `json:"category" validate:"omitempty"`
	}

	UploadDishImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	DishRestaurant struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		LogoURL string `json:"logo_url,omitempty"`
	}

	DishResponse struct {
		ID          string          `json:"id"`
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Price       float64         `json:"price"`
		Category    string          `json:"category"`
		ImageURL    string          `json:"image_url,omitempty"`
		Restaurant  *DishRestaurant `json:"restaurant,omitempty"`
	}
)
