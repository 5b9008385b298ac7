package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRequests      = "signup requests retrieved successfully"
	MessageSuccessProcessRequest   = "signup request processed successfully"
	MessageRequestAlreadyProcessed = "request already processed"
	MessageSuccessDeleteRestaurant = "restaurant deleted successfully"
	MessageSuccessGetStats         = "site statistics retrieved successfully"

	MessageFailedGetRequests      = "failed to load requests"
	MessageFailedUpdateRequest    = "failed to update request"
	MessageFailedDeleteRestaurant = "failed to delete restaurant"
	MessageFailedGetStats         = "failed to load stats"

	ErrSignupRequestNotFound = errors.New("request not found")
	ErrInvalidRequestAction  = errors.New("invalid request action")
)

const (
	SignupRequestPending  = "pending"
	SignupRequestApproved = "approved"
	SignupRequestRejected = "rejected"

	RequestActionApprove = "approve"
	RequestActionReject  = "reject"
)

type (
	ProcessSignupRequest struct {
		ID     string `json:"id" validate:"required,uuid"`
		Action string `json:"action" validate:"required,oneof=approve reject"`
	}

	SignupRequestResponse struct {
		ID                    string    `json:"id"`
		Name                  string    `json:"name"`
		Email                 string    `json:"email"`
		RestaurantName        string    `json:"restaurant_name"`
		RestaurantCategory    string    `json:"restaurant_category"`
		RestaurantDescription string    `json:"restaurant_description"`
		Status                string    `json:"status"`
		CreatedAt             time.Time `json:"created_at"`
	}

	SiteStatsResponse struct {
		Restaurants     int64 `json:"restaurants"`
		Dishes          int64 `json:"dishes"`
		Users           int64 `json:"users"`
		PendingRequests int64 `json:"pending_requests"`
	}
)
