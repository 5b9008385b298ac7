package entities

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is the per-user saved-dish collection. It is created lazily on the
// first save and deleted when the last item is removed.
type Favorite struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"uniqueIndex" json:"user_id"`

	User  *User           `gorm:"foreignKey:UserID"`
	Items []*FavoriteItem `gorm:"foreignKey:FavoriteID"`
	Timestamp
}

type FavoriteItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"key"`
	FavoriteID uuid.UUID `json:"favorite_id"`
	DishID     uuid.UUID `json:"dish_id"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	Favorite *Favorite `gorm:"foreignKey:FavoriteID"`
	Dish     *Dish     `gorm:"foreignKey:DishID"`
}
