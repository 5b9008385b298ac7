package handlers

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/internal/api/presenters"
	"TastyBites-Backend/pkg/rating"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RatingHandler interface {
		GetRatings(c *fiber.Ctx) error
		SubmitRating(c *fiber.Ctx) error
	}

	ratingHandler struct {
		ratingService rating.RatingService
		validator     *validator.Validate
	}
)

func NewRatingHandler(ratingService rating.RatingService, validator *validator.Validate) RatingHandler {
	return &ratingHandler{
		ratingService: ratingService,
		validator:     validator,
	}
}

func (h *ratingHandler) GetRatings(c *fiber.Ctx) error {
	restaurantID := c.Query("restaurant_id")

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		limit = 10
	}

	res, err := h.ratingService.GetRatings(c.Context(), restaurantID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrMissingRestaurantID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRatings, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRatings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRatings)
}

func (h *ratingHandler) SubmitRating(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SubmitRatingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitRating, err)
	}

	res, err := h.ratingService.SubmitRating(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRating), errors.Is(err, domain.ErrCommentRequired):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitRating, err)
		case errors.Is(err, domain.ErrRestaurantNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSubmitRating, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSubmitRating, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitRating)
}
