package handlers

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/internal/api/presenters"
	"TastyBites-Backend/internal/utils/storage"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	MediaHandler interface {
		UploadImage(c *fiber.Ctx) error
	}

	mediaHandler struct {
		s3        storage.AwsS3
		validator *validator.Validate
	}
)

func NewMediaHandler(s3 storage.AwsS3, validator *validator.Validate) MediaHandler {
	return &mediaHandler{
		s3:        s3,
		validator: validator,
	}
}

func (h *mediaHandler) UploadImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadImageRequest)

	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, domain.ErrNoFileProvided)
	}
	req.File = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	fileName := fmt.Sprintf("%s-%s", userID, uuid.NewString())
	key, err := h.s3.UploadFile(fileName, req.File, "media", storage.AllowImage...)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	res := domain.UploadImageResponse{URL: h.s3.GetPublicLinkKey(key)}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadImage)
}
