package handlers

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/internal/api/presenters"
	"TastyBites-Backend/pkg/order"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CartHandler interface {
		GetCart(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		RemoveItem(c *fiber.Ctx) error
		Checkout(c *fiber.Ctx) error
		GetPastOrders(c *fiber.Ctx) error
	}

	cartHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewCartHandler(orderService order.OrderService, validator *validator.Validate) CartHandler {
	return &cartHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func cartErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrCartNotFound), errors.Is(err, domain.ErrCartItemNotFound), errors.Is(err, domain.ErrDishNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *cartHandler) GetCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.orderService.GetCart(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, cartErrorStatus(err), domain.MessageFailedGetCart, err)
	}

	// No pending order means an empty cart, not an error.
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *cartHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddCartItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCartItem, err)
	}

	res, created, err := h.orderService.AddItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, cartErrorStatus(err), domain.MessageFailedAddCartItem, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return presenters.SuccessResponse(c, res, status, domain.MessageSuccessAddCartItem)
}

func (h *cartHandler) UpdateItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateCartItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCartItem, err)
	}

	res, err := h.orderService.UpdateQuantity(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, cartErrorStatus(err), domain.MessageFailedUpdateCartItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCartItem)
}

func (h *cartHandler) RemoveItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RemoveCartItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveCartItem, err)
	}

	res, err := h.orderService.RemoveItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, cartErrorStatus(err), domain.MessageFailedRemoveCartItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveCartItem)
}

func (h *cartHandler) Checkout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CheckoutRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckout, err)
	}

	res, err := h.orderService.Checkout(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, cartErrorStatus(err), domain.MessageFailedCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckout)
}

func (h *cartHandler) GetPastOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.orderService.GetPastOrders(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}
