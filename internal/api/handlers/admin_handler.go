package handlers

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/internal/api/presenters"
	"TastyBites-Backend/pkg/admin"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetSignupRequests(c *fiber.Ctx) error
		ProcessSignupRequest(c *fiber.Ctx) error
		DeleteRestaurant(c *fiber.Ctx) error
		GetSiteStats(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		validator    *validator.Validate
	}
)

func NewAdminHandler(adminService admin.AdminService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		validator:    validator,
	}
}

func (h *adminHandler) GetSignupRequests(c *fiber.Ctx) error {
	res, err := h.adminService.GetSignupRequests(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRequests, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *adminHandler) ProcessSignupRequest(c *fiber.Ctx) error {
	req := new(domain.ProcessSignupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRequest, err)
	}

	res, processed, err := h.adminService.ProcessSignupRequest(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSignupRequestNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateRequest, err)
		case errors.Is(err, domain.ErrInvalidRequestAction):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRequest, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateRequest, err)
		}
	}

	message := domain.MessageSuccessProcessRequest
	if !processed {
		message = domain.MessageRequestAlreadyProcessed
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}

func (h *adminHandler) DeleteRestaurant(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.adminService.DeleteRestaurant(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRestaurantNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteRestaurant, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteRestaurant, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRestaurant)
}

func (h *adminHandler) GetSiteStats(c *fiber.Ctx) error {
	res, err := h.adminService.GetSiteStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}
