package entities

import (
	"github.com/google/uuid"
)

type Dish struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"` // "Burger", "Pizza", "Pasta", ..., "Other"
	ImageURL     string    `json:"image_url,omitempty"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Timestamp
}
