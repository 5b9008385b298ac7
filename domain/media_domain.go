package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessUploadImage = "image uploaded successfully"
	MessageFailedUploadImage  = "failed to upload image"

	ErrNoFileProvided     = errors.New("no file provided")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	UploadImageRequest struct {
		File *multipart.FileHeader `json:"file" form:"file" validate:"required"`
	}

	UploadImageResponse struct {
		URL string `json:"url"`
	}
)
