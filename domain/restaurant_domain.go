package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRestaurants    = "restaurants retrieved successfully"
	MessageSuccessGetRestaurant     = "restaurant retrieved successfully"
	MessageSuccessGetCategories     = "categories retrieved successfully"
	MessageSuccessUpdateRestaurant  = "restaurant updated successfully"
	MessageSuccessGetOwnRestaurant  = "owner restaurant retrieved successfully"

	MessageFailedGetRestaurants   = "failed to retrieve restaurants"
	MessageFailedGetRestaurant    = "failed to retrieve restaurant"
	MessageFailedGetCategories    = "failed to retrieve categories"
	MessageFailedUpdateRestaurant = "failed to update restaurant"

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrNoFieldsToUpdate   = errors.New("no fields provided")
)

type (
	UpdateRestaurantRequest struct {
		Name         *string `json:"name" validate:"omitempty,min=1"`
		Description  *string `json:"description" validate:"omitempty"`
		Address      *string `json:"address" validate:"omitempty"`
		Phone        *string `json:"phone" validate:"omitempty"`
		OpeningHours *string `json:"opening_hours" validate:"omitempty"`
		Category     *string `json:"category" validate:"omitempty,oneof='Fast Food' Italian Asian Cafe Other"`
		ImageURL     *string `json:"image_url" validate:"omitempty,url"`
		LogoURL      *string `json:"logo_url" validate:"omitempty,url"`
	}

	RestaurantOwner struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	RestaurantResponse struct {
		ID           string           `json:"id"`
		Name         string           `json:"name"`
		Description  string           `json:"description"`
		Address      string           `json:"address"`
		Phone        string           `json:"phone"`
		Category     string           `json:"category"`
		Rating       float64          `json:"rating"`
		OpeningHours string           `json:"opening_hours"`
		ImageURL     string           `json:"image_url,omitempty"`
		LogoURL      string           `json:"logo_url,omitempty"`
		Owner        *RestaurantOwner `json:"owner,omitempty"`
		CreatedAt    time.Time        `json:"created_at"`
	}
)
