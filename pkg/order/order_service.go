package order

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/entities"
	"TastyBites-Backend/pkg/dish"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		AddItem(ctx context.Context, req domain.AddCartItemRequest, userID string) (*domain.CartResponse, bool, error)
		GetCart(ctx context.Context, userID string) (*domain.CartResponse, error)
		UpdateQuantity(ctx context.Context, req domain.UpdateCartItemRequest, userID string) (*domain.CartResponse, error)
		RemoveItem(ctx context.Context, req domain.RemoveCartItemRequest, userID string) (*domain.CartResponse, error)
		Checkout(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error)
		GetPastOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
	}

	orderService struct {
		orderRepository OrderRepository
		dishRepository  dish.DishRepository
	}
)

func NewOrderService(orderRepository OrderRepository, dishRepository dish.DishRepository) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		dishRepository:  dishRepository,
	}
}

func toCartItemResponse(item *entities.OrderItem) domain.CartItemResponse {
	res := domain.CartItemResponse{
		Key:      item.ID.String(),
		Quantity: item.Quantity,
	}
	if item.Dish != nil {
		dishRes := domain.DishResponse{
			ID:          item.Dish.ID.String(),
			Name:        item.Dish.Name,
			Description: item.Dish.Description,
			Price:       item.Dish.Price,
			Category:    item.Dish.Category,
			ImageURL:    item.Dish.ImageURL,
		}
		if item.Dish.Restaurant != nil {
			dishRes.Restaurant = &domain.DishRestaurant{
				ID:      item.Dish.Restaurant.ID.String(),
				Name:    item.Dish.Restaurant.Name,
				LogoURL: item.Dish.Restaurant.LogoURL,
			}
		}
		res.Dish = &dishRes
	}
	return res
}

// toCartResponse drops line items whose dish reference no longer resolves:
// they contribute nothing to the total and never block other operations.
func toCartResponse(order *entities.Order) *domain.CartResponse {
	items := make([]domain.CartItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		if item.Dish == nil {
			continue
		}
		items = append(items, toCartItemResponse(item))
	}
	return &domain.CartResponse{
		ID:         order.ID.String(),
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
		Items:      items,
	}
}

// recomputeTotal derives the order total from scratch, fetching every dish
// price fresh rather than trusting anything cached on the order. Items whose
// dish has vanished are deleted on the way through.
func (s *orderService) recomputeTotal(ctx context.Context, orderID string, items []*entities.OrderItem) (float64, error) {
	total := 0.0
	for _, item := range items {
		current, err := s.dishRepository.GetDishByID(ctx, item.DishID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := s.orderRepository.DeleteOrderItem(ctx, item.ID.String()); err != nil {
					return 0, err
				}
				continue
			}
			return 0, err
		}
		total += current.Price * float64(item.Quantity)
	}

	if err := s.orderRepository.UpdateOrderTotal(ctx, orderID, total); err != nil {
		return 0, err
	}
	return total, nil
}

// AddItem creates the user's pending order when none exists for the
// restaurant, otherwise merges the dish into the existing line items. The
// bool result reports whether a new order was created.
func (s *orderService) AddItem(ctx context.Context, req domain.AddCartItemRequest, userID string) (*domain.CartResponse, bool, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, false, domain.ErrParseUUID
	}
	restaurantUUID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return nil, false, domain.ErrParseUUID
	}

	added, err := s.dishRepository.GetDishByID(ctx, req.DishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, domain.ErrDishNotFound
		}
		return nil, false, err
	}

	existing, err := s.orderRepository.GetPendingOrderByUserAndRestaurant(ctx, userID, req.RestaurantID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}

		newOrder := &entities.Order{
			ID:           uuid.New(),
			UserID:       userUUID,
			RestaurantID: restaurantUUID,
			TotalPrice:   added.Price * float64(req.Quantity),
			Status:       domain.OrderStatusPending,
			Items: []*entities.OrderItem{
				{
					ID:       uuid.New(),
					DishID:   added.ID,
					Quantity: req.Quantity,
				},
			},
		}
		if err := s.orderRepository.CreateOrder(ctx, newOrder); err != nil {
			return nil, false, err
		}

		cart, err := s.GetCart(ctx, userID)
		return cart, true, err
	}

	matched := false
	for _, item := range existing.Items {
		if item.DishID == added.ID {
			if err := s.orderRepository.UpdateOrderItemQuantity(ctx, item.ID.String(), item.Quantity+req.Quantity); err != nil {
				return nil, false, err
			}
			matched = true
			break
		}
	}
	if !matched {
		newItem := &entities.OrderItem{
			ID:       uuid.New(),
			OrderID:  existing.ID,
			DishID:   added.ID,
			Quantity: req.Quantity,
		}
		if err := s.orderRepository.CreateOrderItem(ctx, newItem); err != nil {
			return nil, false, err
		}
	}

	refreshed, err := s.orderRepository.GetPendingOrderByUserAndRestaurant(ctx, userID, req.RestaurantID)
	if err != nil {
		return nil, false, err
	}
	if _, err := s.recomputeTotal(ctx, refreshed.ID.String(), refreshed.Items); err != nil {
		return nil, false, err
	}

	cart, err := s.GetCart(ctx, userID)
	return cart, false, err
}

// GetCart returns the user's pending order, or nil when there is none.
func (s *orderService) GetCart(ctx context.Context, userID string) (*domain.CartResponse, error) {
	pending, err := s.orderRepository.GetPendingOrderByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toCartResponse(pending), nil
}

func (s *orderService) UpdateQuantity(ctx context.Context, req domain.UpdateCartItemRequest, userID string) (*domain.CartResponse, error) {
	pending, err := s.orderRepository.GetPendingOrderByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartNotFound
		}
		return nil, err
	}

	var target *entities.OrderItem
	for _, item := range pending.Items {
		if item.ID.String() == req.ItemKey {
			target = item
			break
		}
	}
	if target == nil {
		return nil, domain.ErrCartItemNotFound
	}

	// Quantities are clamped to a minimum of 1; removal has its own path.
	clamped := req.Quantity
	if clamped < 1 {
		clamped = 1
	}
	if err := s.orderRepository.UpdateOrderItemQuantity(ctx, target.ID.String(), clamped); err != nil {
		return nil, err
	}

	refreshed, err := s.orderRepository.GetPendingOrderByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.recomputeTotal(ctx, refreshed.ID.String(), refreshed.Items); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

func (s *orderService) RemoveItem(ctx context.Context, req domain.RemoveCartItemRequest, userID string) (*domain.CartResponse, error) {
	pending, err := s.orderRepository.GetPendingOrderByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartNotFound
		}
		return nil, err
	}

	var target *entities.OrderItem
	for _, item := range pending.Items {
		if item.ID.String() == req.ItemKey {
			target = item
			break
		}
	}
	if target == nil {
		return nil, domain.ErrCartItemNotFound
	}

	if len(pending.Items) == 1 {
		// Removing the last item deletes the whole order rather than
		// leaving an empty pending cart behind.
		if err := s.orderRepository.DeleteOrder(ctx, pending.ID.String()); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err := s.orderRepository.DeleteOrderItem(ctx, target.ID.String()); err != nil {
		return nil, err
	}

	refreshed, err := s.orderRepository.GetPendingOrderByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.recomputeTotal(ctx, refreshed.ID.String(), refreshed.Items); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

// Checkout finalizes the pending order: subtotal from fresh dish prices, a
// flat delivery fee waived at MinFreeDeliveryCart (and for empty carts), an
// optional percentage discount, floored at zero. Not transactional against
// concurrent cart mutations.
func (s *orderService) Checkout(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error) {
	pending, err := s.orderRepository.GetPendingOrderByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CheckoutResponse{}, domain.ErrCartNotFound
		}
		return domain.CheckoutResponse{}, err
	}

	subtotal := 0.0
	for _, item := range pending.Items {
		current, err := s.dishRepository.GetDishByID(ctx, item.DishID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return domain.CheckoutResponse{}, err
		}
		subtotal += current.Price * float64(item.Quantity)
	}

	deliveryFee := 0.0
	if subtotal > 0 && subtotal < domain.MinFreeDeliveryCart {
		deliveryFee = domain.DeliveryFeeBase
	}

	totalBeforeDiscount := subtotal + deliveryFee

	discountAmount := 0.0
	if req.DiscountPercent > 0 {
		discountAmount = totalBeforeDiscount * req.DiscountPercent / 100
	}

	finalTotal := totalBeforeDiscount - discountAmount
	if finalTotal < 0 {
		finalTotal = 0
	}

	if err := s.orderRepository.CompleteOrder(ctx, pending.ID.String(), finalTotal, time.Now()); err != nil {
		return domain.CheckoutResponse{}, err
	}

	return domain.CheckoutResponse{
		OrderID:        pending.ID.String(),
		Subtotal:       subtotal,
		DeliveryFee:    deliveryFee,
		DiscountAmount: discountAmount,
		TotalPrice:     finalTotal,
	}, nil
}

func (s *orderService) GetPastOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetPastOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for _, past := range orders {
		items := make([]domain.CartItemResponse, 0, len(past.Items))
		for _, item := range past.Items {
			if item.Dish == nil {
				continue
			}
			items = append(items, toCartItemResponse(item))
		}
		response = append(response, domain.OrderResponse{
			ID:          past.ID.String(),
			Status:      past.Status,
			TotalPrice:  past.TotalPrice,
			Items:       items,
			CreatedAt:   past.CreatedAt,
			CompletedAt: past.CompletedAt,
		})
	}
	return response, nil
}
