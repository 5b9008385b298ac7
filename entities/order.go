package entities

import (
	"time"

	"github.com/google/uuid"
)

// An Order with status "pending" doubles as the user's shopping cart. The
// schema allows at most one pending order per user.
type Order struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	RestaurantID uuid.UUID  `json:"restaurant_id"`
	TotalPrice   float64    `json:"total_price"` // derived, recomputed on every mutation
	Status       string     `json:"status"`      // "pending", "completed", "preparing", "delivered", "cancelled"
	CompletedAt  *time.Time `json:"completed_at,omitempty"`

	User       *User        `gorm:"foreignKey:UserID"`
	Restaurant *Restaurant  `gorm:"foreignKey:RestaurantID"`
	Items      []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

// OrderItem's primary key is the line-item key handed to cart clients.
type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"key"`
	OrderID  uuid.UUID `json:"order_id"`
	DishID   uuid.UUID `json:"dish_id"`
	Quantity int       `json:"quantity"`

	Order *Order `gorm:"foreignKey:OrderID"`
	Dish  *Dish  `gorm:"foreignKey:DishID"`
	Timestamp
}
