package handlers

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/internal/api/presenters"
	"TastyBites-Backend/pkg/dish"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DishHandler interface {
		GetDishes(c *fiber.Ctx) error
		CreateDish(c *fiber.Ctx) error
		UpdateDish(c *fiber.Ctx) error
		DeleteDish(c *fiber.Ctx) error
		UploadDishImage(c *fiber.Ctx) error
	}

	dishHandler struct {
		dishService dish.DishService
		validator   *validator.Validate
	}
)

func NewDishHandler(dishService dish.DishService, validator *validator.Validate) DishHandler {
	return &dishHandler{
		dishService: dishService,
		validator:   validator,
	}
}

func dishErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrDishNotFound), errors.Is(err, domain.ErrRestaurantNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrMissingRestaurantID), errors.Is(err, domain.ErrInvalidPrice):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *dishHandler) GetDishes(c *fiber.Ctx) error {
	restaurantID := c.Query("restaurant_id")

	res, err := h.dishService.GetDishesByRestaurant(c.Context(), restaurantID)
	if err != nil {
		return presenters.ErrorResponse(c, dishErrorStatus(err), domain.MessageFailedGetDishes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDishes)
}

func (h *dishHandler) CreateDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	req := new(domain.CreateDishRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDish, err)
	}

	res, err := h.dishService.CreateDish(c.Context(), *req, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, dishErrorStatus(err), domain.MessageFailedCreateDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDish)
}

func (h *dishHandler) UpdateDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	id := c.Params("id")
	req := new(domain.UpdateDishRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDish, err)
	}

	res, err := h.dishService.UpdateDish(c.Context(), id, *req, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, dishErrorStatus(err), domain.MessageFailedUpdateDish, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDish)
}

func (h *dishHandler) DeleteDish(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	id := c.Params("id")

	if err := h.dishService.DeleteDish(c.Context(), id, userID, role); err != nil {
		return presenters.ErrorResponse(c, dishErrorStatus(err), domain.MessageFailedDeleteDish, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDish)
}

func (h *dishHandler) UploadDishImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	id := c.Params("id")
	req := new(domain.UploadDishImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadDishImage, err)
	}

	res, err := h.dishService.UploadDishImage(c.Context(), id, *req, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, dishErrorStatus(err), domain.MessageFailedUploadDishImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadDishImage)
}
