package restaurant

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	RestaurantService interface {
		GetRestaurants(ctx context.Context) ([]domain.RestaurantResponse, error)
		GetRestaurantByID(ctx context.Context, id string) (domain.RestaurantResponse, error)
		GetRestaurantByOwner(ctx context.Context, ownerID string) (domain.RestaurantResponse, error)
		GetCategories(ctx context.Context) ([]string, error)
		UpdateRestaurant(ctx context.Context, id string, req domain.UpdateRestaurantRequest, userID, role string) (domain.RestaurantResponse, error)
	}

	restaurantService struct {
		restaurantRepository RestaurantRepository
	}
)

func NewRestaurantService(restaurantRepository RestaurantRepository) RestaurantService {
	return &restaurantService{restaurantRepository: restaurantRepository}
}

func toRestaurantResponse(restaurant *entities.Restaurant) domain.RestaurantResponse {
	res := domain.RestaurantResponse{
		ID:           restaurant.ID.String(),
		Name:         restaurant.Name,
		Description:  restaurant.Description,
		Address:      restaurant.Address,
		Phone:        restaurant.Phone,
		Category:     restaurant.Category,
		Rating:       restaurant.Rating,
		OpeningHours: restaurant.OpeningHours,
		ImageURL:     restaurant.ImageURL,
		LogoURL:      restaurant.LogoURL,
		CreatedAt:    restaurant.CreatedAt,
	}
	if restaurant.Owner != nil {
		res.Owner = &domain.RestaurantOwner{
			ID:    restaurant.Owner.ID.String(),
			Name:  restaurant.Owner.Name,
			Email: restaurant.Owner.Email,
		}
	}
	return res
}

func (s *restaurantService) GetRestaurants(ctx context.Context) ([]domain.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepository.GetRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		response = append(response, toRestaurantResponse(restaurant))
	}
	return response, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id string) (domain.RestaurantResponse, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RestaurantResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.RestaurantResponse{}, err
	}
	return toRestaurantResponse(restaurant), nil
}

func (s *restaurantService) GetRestaurantByOwner(ctx context.Context, ownerID string) (domain.RestaurantResponse, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RestaurantResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.RestaurantResponse{}, err
	}
	return toRestaurantResponse(restaurant), nil
}

func (s *restaurantService) GetCategories(ctx context.Context) ([]string, error) {
	return s.restaurantRepository.GetCategories(ctx)
}

// UpdateRestaurant applies a partial profile update. The rating field is owned
// by the rating aggregator and cannot be patched through this path.
func (s *restaurantService) UpdateRestaurant(ctx context.Context, id string, req domain.UpdateRestaurantRequest, userID, role string) (domain.RestaurantResponse, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RestaurantResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.RestaurantResponse{}, err
	}

	if role != domain.RoleAdmin && restaurant.OwnerID.String() != userID {
		return domain.RestaurantResponse{}, domain.ErrUserNotAllowed
	}

	updated := false
	if req.Name != nil {
		restaurant.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		restaurant.Description = *req.Description
		updated = true
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
		updated = true
	}
	if req.Phone != nil {
		restaurant.Phone = *req.Phone
		updated = true
	}
	if req.OpeningHours != nil {
		restaurant.OpeningHours = *req.OpeningHours
		updated = true
	}
	if req.Category != nil {
		restaurant.Category = *req.Category
		updated = true
	}
	if req.ImageURL != nil {
		restaurant.ImageURL = *req.ImageURL
		updated = true
	}
	if req.LogoURL != nil {
		restaurant.LogoURL = *req.LogoURL
		updated = true
	}

	if !updated {
		return domain.RestaurantResponse{}, domain.ErrNoFieldsToUpdate
	}

	if err := s.restaurantRepository.UpdateRestaurant(ctx, restaurant); err != nil {
		return domain.RestaurantResponse{}, err
	}

	return toRestaurantResponse(restaurant), nil
}
