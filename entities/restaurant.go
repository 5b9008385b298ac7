package entities

import (
	"github.com/google/uuid"
)

type Restaurant struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OwnerID      uuid.UUID `gorm:"uniqueIndex" json:"owner_id"`
	Name         string    `json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Category     string    `json:"category"` // "Fast Food", "Italian", "Asian", "Cafe", "Other"
	Rating       float64   `json:"rating"`   // derived, maintained by the rating aggregator
	OpeningHours string    `json:"opening_hours"`
	ImageURL     string    `json:"image_url,omitempty"`
	LogoURL      string    `json:"logo_url,omitempty"`

	Owner  *User   `gorm:"foreignKey:OwnerID"`
	Dishes []*Dish `gorm:"foreignKey:RestaurantID"`
	Timestamp
}

type RestaurantRating struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Rating       int       `json:"rating"` // 1..5
	Comment      string    `gorm:"type:text" json:"comment"`

	User       *User       `gorm:"foreignKey:UserID"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Timestamp
}

type RestaurantSignupRequest struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Password              string    `json:"-"` // bcrypt hash carried over to the user on approval
	RestaurantName        string    `json:"restaurant_name"`
	RestaurantCategory    string    `json:"restaurant_category"`
	RestaurantDescription string    `gorm:"type:text" json:"restaurant_description"`
	Status                string    `json:"status"` // "pending", "approved", "rejected"

	Timestamp
}
