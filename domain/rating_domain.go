package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRatings   = "ratings retrieved successfully"
	MessageSuccessSubmitRating = "rating submitted successfully"

	MessageFailedGetRatings   = "failed to fetch ratings"
	MessageFailedSubmitRating = "failed to submit rating"

	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrCommentRequired = errors.New("comment is required")
)

type (
	SubmitRatingRequest struct {
		RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
		Rating       int    `json:"rating" validate:"required"`
		Comment      string `json:"comment" validate:"required"`
	}

	SubmitRatingResponse struct {
		Rating float64 `json:"rating"` // the restaurant's new average
	}

	RatingUser struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	RatingRestaurant struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		LogoURL string `json:"logo_url,omitempty"`
	}

	RatingResponse struct {
		ID         string            `json:"id"`
		Rating     int               `json:"rating"`
		Comment    string            `json:"comment"`
		CreatedAt  time.Time         `json:"created_at"`
		User       *RatingUser       `json:"user,omitempty"`
		Restaurant *RatingRestaurant `json:"restaurant,omitempty"`
	}
)
