package order

import (
	"TastyBites-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetPendingOrderByUser(ctx context.Context, userID string) (*entities.Order, error)
		GetPendingOrderByUserAndRestaurant(ctx context.Context, userID, restaurantID string) (*entities.Order, error)
		GetPastOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error)
		UpdateOrderTotal(ctx context.Context, orderID string, total float64) error
		CompleteOrder(ctx context.Context, orderID string, total float64, completedAt time.Time) error
		DeleteOrder(ctx context.Context, orderID string) error

		CreateOrderItem(ctx context.Context, item *entities.OrderItem) error
		UpdateOrderItemQuantity(ctx context.Context, itemID string, quantity int) error
		DeleteOrderItem(ctx context.Context, itemID string) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetPendingOrderByUser(ctx context.Context, userID string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.created_at asc") }).
		Preload("Items.Dish").
		Preload("Items.Dish.Restaurant").
		Preload("Restaurant").
		Where("user_id = ? AND status = ?", userID, "pending").
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetPendingOrderByUserAndRestaurant(ctx context.Context, userID, restaurantID string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.created_at asc") }).
		Preload("Items.Dish").
		Where("user_id = ? AND restaurant_id = ? AND status = ?", userID, restaurantID, "pending").
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetPastOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Dish").
		Preload("Restaurant").
		Where("user_id = ? AND status <> ?", userID, "pending").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateOrderTotal(ctx context.Context, orderID string, total float64) error {
	return r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{"total_price": total}).Error
}

func (r *orderRepository) CompleteOrder(ctx context.Context, orderID string, total float64, completedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":       "completed",
			"total_price":  total,
			"completed_at": completedAt,
		}).Error
}

func (r *orderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&entities.OrderItem{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", orderID).Delete(&entities.Order{}).Error
}

func (r *orderRepository) CreateOrderItem(ctx context.Context, item *entities.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *orderRepository) UpdateOrderItemQuantity(ctx context.Context, itemID string, quantity int) error {
	return r.db.WithContext(ctx).Model(&entities.OrderItem{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{"quantity": quantity}).Error
}

func (r *orderRepository) DeleteOrderItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&entities.OrderItem{}).Error
}
