package admin

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/entities"
	"TastyBites-Backend/internal/utils/mailing"
	"TastyBites-Backend/pkg/dish"
	"TastyBites-Backend/pkg/restaurant"
	"TastyBites-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"
)

type (
	AdminService interface {
		GetSignupRequests(ctx context.Context) ([]domain.SignupRequestResponse, error)
		ProcessSignupRequest(ctx context.Context, req domain.ProcessSignupRequest) (domain.SignupRequestResponse, bool, error)
		DeleteRestaurant(ctx context.Context, id string) error
		GetSiteStats(ctx context.Context) (domain.SiteStatsResponse, error)
	}

	adminService struct {
		userRepository       user.UserRepository
		restaurantRepository restaurant.RestaurantRepository
		dishRepository       dish.DishRepository
	}
)

func NewAdminService(userRepository user.UserRepository, restaurantRepository restaurant.RestaurantRepository, dishRepository dish.DishRepository) AdminService {
	return &adminService{
		userRepository:       userRepository,
		restaurantRepository: restaurantRepository,
		dishRepository:       dishRepository,
	}
}

func toSignupRequestResponse(request *entities.RestaurantSignupRequest) domain.SignupRequestResponse {
	return domain.SignupRequestResponse{
		ID:                    request.ID.String(),
		Name:                  request.Name,
		Email:                 request.Email,
		RestaurantName:        request.RestaurantName,
		RestaurantCategory:    request.RestaurantCategory,
		RestaurantDescription: request.RestaurantDescription,
		Status:                request.Status,
		CreatedAt:             request.CreatedAt,
	}
}

func (s *adminService) GetSignupRequests(ctx context.Context) ([]domain.SignupRequestResponse, error) {
	requests, err := s.userRepository.GetPendingSignupRequests(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.SignupRequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, toSignupRequestResponse(request))
	}
	return response, nil
}

// ProcessSignupRequest approves or rejects a pending restaurant signup. The
// second return value reports whether the request was still pending; replaying
// a decision on an already-processed request changes nothing.
func (s *adminService) ProcessSignupRequest(ctx context.Context, req domain.ProcessSignupRequest) (domain.SignupRequestResponse, bool, error) {
	request, err := s.userRepository.GetSignupRequestByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SignupRequestResponse{}, false, domain.ErrSignupRequestNotFound
		}
		return domain.SignupRequestResponse{}, false, err
	}

	if request.Status != domain.SignupRequestPending {
		return toSignupRequestResponse(request), false, nil
	}

	switch req.Action {
	case domain.RequestActionReject:
		if err := s.userRepository.UpdateSignupRequestStatus(ctx, req.ID, domain.SignupRequestRejected); err != nil {
			return domain.SignupRequestResponse{}, false, err
		}
		request.Status = domain.SignupRequestRejected
	case domain.RequestActionApprove:
		if err := s.approve(ctx, request); err != nil {
			return domain.SignupRequestResponse{}, false, err
		}
		request.Status = domain.SignupRequestApproved
	default:
		return domain.SignupRequestResponse{}, false, domain.ErrInvalidRequestAction
	}

	s.notifyApplicant(request)
	return toSignupRequestResponse(request), true, nil
}

// approve provisions the owner account and the restaurant record. Both writes
// are upserts keyed on unique columns, so re-running an approval cannot create
// duplicates.
func (s *adminService) approve(ctx context.Context, request *entities.RestaurantSignupRequest) error {
	owner := &entities.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		Role:     domain.RoleRestaurant,
	}
	if err := s.userRepository.FirstOrCreateUserByEmail(ctx, owner); err != nil {
		return err
	}

	newRestaurant := &entities.Restaurant{
		OwnerID:     owner.ID,
		Name:        request.RestaurantName,
		Category:    request.RestaurantCategory,
		Description: request.RestaurantDescription,
	}
	if err := s.restaurantRepository.FirstOrCreateRestaurantByOwner(ctx, newRestaurant); err != nil {
		return err
	}

	return s.userRepository.UpdateSignupRequestStatus(ctx, request.ID.String(), domain.SignupRequestApproved)
}

// notifyApplicant emails the decision. Mail delivery is best effort and never
// fails the approval itself.
func (s *adminService) notifyApplicant(request *entities.RestaurantSignupRequest) {
	subject := "Your TastyBites restaurant application"
	body := fmt.Sprintf("Hi %s,<br><br>Your application for <b>%s</b> has been %s.", request.Name, request.RestaurantName, request.Status)
	if err := mailing.SendMail(request.Email, subject, body); err != nil {
		log.Printf("failed to send signup decision mail to %s: %v", request.Email, err)
	}
}

func (s *adminService) DeleteRestaurant(ctx context.Context, id string) error {
	if _, err := s.restaurantRepository.GetRestaurantByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRestaurantNotFound
		}
		return err
	}
	return s.restaurantRepository.DeleteRestaurant(ctx, id)
}

func (s *adminService) GetSiteStats(ctx context.Context) (domain.SiteStatsResponse, error) {
	restaurants, err := s.restaurantRepository.CountRestaurants(ctx)
	if err != nil {
		return domain.SiteStatsResponse{}, err
	}
	dishes, err := s.dishRepository.CountDishes(ctx)
	if err != nil {
		return domain.SiteStatsResponse{}, err
	}
	users, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return domain.SiteStatsResponse{}, err
	}
	pending, err := s.userRepository.CountPendingSignupRequests(ctx)
	if err != nil {
		return domain.SiteStatsResponse{}, err
	}

	return domain.SiteStatsResponse{
		Restaurants:     restaurants,
		Dishes:          dishes,
		Users:           users,
		PendingRequests: pending,
	}, nil
}
