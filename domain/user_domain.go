package domain

import "errors"

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessSignupRequest = "signup request submitted, waiting for admin approval"
	MessageSuccessLogin         = "login successful"
	MessageSuccessGetMe         = "user profile retrieved successfully"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetMe    = "failed to retrieve user profile"

	ErrEmailAlreadyUsed      = errors.New("email already in use")
	ErrUserNotFound          = errors.New("user not found")
	ErrWrongPassword         = errors.New("incorrect password")
	ErrInvalidRole           = errors.New("invalid role")
	ErrRestaurantDataMissing = errors.New("restaurant name, category and description are required")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Role     string `json:"role" validate:"required,oneof=customer restaurant"`

		// Required when Role is "restaurant"; the signup is parked as a
		// RestaurantSignupRequest until an admin approves it.
		RestaurantName        string `json:"restaurant_name" validate:"omitempty"`
		RestaurantCategory    string `json:"restaurant_category" validate:"omitempty"`
		RestaurantDescription string `json:"restaurant_description" validate:"omitempty"`
	}

	RegisterResponse struct {
		ID             string `json:"id,omitempty"`
		Name           string `json:"name"`
		Email          string `json:"email"`
		Role           string `json:"role"`
		PendingRequest bool   `json:"pending_request"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
		Token string `json:"token"`
	}

	MeResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
)
