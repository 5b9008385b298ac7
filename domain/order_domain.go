package domain

import (
	"errors"
	"time"
)

// Checkout constants mirror the storefront's pricing rules: a flat delivery
// fee waived for larger carts, and an optional percentage discount.
const (
	DeliveryFeeBase     = 2.0
	MinFreeDeliveryCart = 25.0
)

var (
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessAddCartItem    = "item added to cart"
	MessageSuccessUpdateCartItem = "cart item updated successfully"
	MessageSuccessRemoveCartItem = "cart item removed successfully"
	MessageSuccessCheckout       = "checkout completed successfully"
	MessageSuccessGetOrders      = "orders retrieved successfully"

	MessageFailedGetCart        = "failed to fetch cart"
	MessageFailedAddCartItem    = "failed to add to order"
	MessageFailedUpdateCartItem = "failed to update cart item"
	MessageFailedRemoveCartItem = "failed to remove cart item"
	MessageFailedCheckout       = "failed to complete checkout"
	MessageFailedGetOrders      = "failed to retrieve orders"

	ErrCartNotFound     = errors.New("no pending order found")
	ErrCartItemNotFound = errors.New("item not found in cart")
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusPreparing = "preparing"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type (
	AddCartItemRequest struct {
		RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
		DishID       string `json:"dish_id" validate:"required,uuid"`
		Quantity     int    `json:"quantity" validate:"required,min=1"`
	}

	UpdateCartItemRequest struct {
		ItemKey string `json:"item_key" validate:"required,uuid"`
		// Quantity carries no validation: zero and negatives are clamped
		// to 1 by the service, matching the storefront behavior.
		Quantity int `json:"quantity"`
	}

	RemoveCartItemRequest struct {
		ItemKey string `json:"item_key" validate:"required,uuid"`
	}

	CheckoutRequest struct {
		DiscountPercent float64 `json:"discount_percent" validate:"omitempty,gte=0,lte=100"`
	}

	CartItemResponse struct {
		Key      string        `json:"key"`
		Quantity int           `json:"quantity"`
		Dish     *DishResponse `json:"dish"`
	}

	CartResponse struct {
		ID         string             `json:"id"`
		Status     string             `json:"status"`
		TotalPrice float64            `json:"total_price"`
		Items      []CartItemResponse `json:"items"`
	}

	CheckoutResponse struct {
		OrderID        string  `json:"order_id"`
		Subtotal       float64 `json:"subtotal"`
		DeliveryFee    float64 `json:"delivery_fee"`
		DiscountAmount float64 `json:"discount_amount"`
		TotalPrice     float64 `json:"total_price"`
	}

	OrderResponse struct {
		ID          string             `json:"id"`
		Status      string             `json:"status"`
		TotalPrice  float64            `json:"total_price"`
		Items       []CartItemResponse `json:"items"`
		CreatedAt   time.Time          `json:"created_at"`
		CompletedAt *time.Time         `json:"completed_at,omitempty"`
	}
)
