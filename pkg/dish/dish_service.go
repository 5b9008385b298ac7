package dish

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/entities"
	"TastyBites-Backend/internal/utils/storage"
	"TastyBites-Backend/pkg/restaurant"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DishService interface {
		GetDishesByRestaurant(ctx context.Context, restaurantID string) ([]domain.DishResponse, error)
		CreateDish(ctx context.Context, req domain.CreateDishRequest, userID, role string) (domain.DishResponse, error)
		UpdateDish(ctx context.Context, id string, req domain.UpdateDishRequest, userID, role string) (domain.DishResponse, error)
		DeleteDish(ctx context.Context, id string, userID, role string) error
		UploadDishImage(ctx context.Context, id string, req domain.UploadDishImageRequest, userID, role string) (domain.DishResponse, error)
	}

	dishService struct {
		dishRepository       DishRepository
		restaurantRepository restaurant.RestaurantRepository
		s3                   storage.AwsS3
	}
)

func NewDishService(dishRepository DishRepository, restaurantRepository restaurant.RestaurantRepository, s3 storage.AwsS3) DishService {
	return &dishService{
		dishRepository:       dishRepository,
		restaurantRepository: restaurantRepository,
		s3:                   s3,
	}
}

func toDishResponse(dish *entities.Dish) domain.DishResponse {
	res := domain.DishResponse{
		ID:          dish.ID.String(),
		Name:        dish.Name,
		Description: dish.Description,
		Price:       dish.Price,
		Category:    dish.Category,
		ImageURL:    dish.ImageURL,
	}
	if dish.Restaurant != nil {
		res.Restaurant = &domain.DishRestaurant{
			ID:      dish.Restaurant.ID.String(),
			Name:    dish.Restaurant.Name,
			LogoURL: dish.Restaurant.LogoURL,
		}
	}
	return res
}

// canManage reports whether the caller may mutate dishes of the given
// restaurant: admins always, restaurant owners only for their own menu.
func (s *dishService) canManage(restaurant *entities.Restaurant, userID, role string) bool {
	if role == domain.RoleAdmin {
		return true
	}
	return role == domain.RoleRestaurant && restaurant.OwnerID.String() == userID
}

func (s *dishService) GetDishesByRestaurant(ctx context.Context, restaurantID string) ([]domain.DishResponse, error) {
	if restaurantID == "" {
		return nil, domain.ErrMissingRestaurantID
	}

	dishes, err := s.dishRepository.GetDishesByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.DishResponse, 0, len(dishes))
	for _, dish := range dishes {
		response = append(response, toDishResponse(dish))
	}
	return response, nil
}

func (s *dishService) CreateDish(ctx context.Context, req domain.CreateDishRequest, userID, role string) (domain.DishResponse, error) {
	owned, err := s.restaurantRepository.GetRestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.DishResponse{}, err
	}

	if !s.canManage(owned, userID, role) {
		return domain.DishResponse{}, domain.ErrUserNotAllowed
	}

	if req.Price == nil || *req.Price < 0 {
		return domain.DishResponse{}, domain.ErrInvalidPrice
	}

	category := req.Category
	if category == "" {
		category = "Other"
	}

	dish := &entities.Dish{
		ID:           uuid.New(),
		RestaurantID: owned.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        *req.Price,
		Category:     category,
	}
	if err := s.dishRepository.CreateDish(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}

	dish.Restaurant = owned
	return toDishResponse(dish), nil
}

func (s *dishService) UpdateDish(ctx context.Context, id string, req domain.UpdateDishRequest, userID, role string) (domain.DishResponse, error) {
	dish, err := s.dishRepository.GetDishByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrDishNotFound
		}
		return domain.DishResponse{}, err
	}

	if dish.Restaurant == nil || !s.canManage(dish.Restaurant, userID, role) {
		return domain.DishResponse{}, domain.ErrUserNotAllowed
	}

	if req.Name != nil {
		dish.Name = *req.Name
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return domain.DishResponse{}, domain.ErrInvalidPrice
		}
		// Carts hold no price snapshot: a price change retroactively
		// changes pending cart totals on their next recompute.
		dish.Price = *req.Price
	}
	if req.Category != nil {
		dish.Category = *req.Category
	}

	if err := s.dishRepository.UpdateDish(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}
	return toDishResponse(dish), nil
}

func (s *dishService) DeleteDish(ctx context.Context, id string, userID, role string) error {
	dish, err := s.dishRepository.GetDishByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDishNotFound
		}
		return err
	}

	if dish.Restaurant == nil || !s.canManage(dish.Restaurant, userID, role) {
		return domain.ErrUserNotAllowed
	}

	if dish.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(dish.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.dishRepository.DeleteDish(ctx, id)
}

func (s *dishService) UploadDishImage(ctx context.Context, id string, req domain.UploadDishImageRequest, userID, role string) (domain.DishResponse, error) {
	dish, err := s.dishRepository.GetDishByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DishResponse{}, domain.ErrDishNotFound
		}
		return domain.DishResponse{}, err
	}

	if dish.Restaurant == nil || !s.canManage(dish.Restaurant, userID, role) {
		return domain.DishResponse{}, domain.ErrUserNotAllowed
	}

	fileName := fmt.Sprintf("dish-%s", dish.ID.String())
	var objectKey string
	var uploadErr error

	if dish.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(dish.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "dishes", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "dishes", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.DishResponse{}, uploadErr
	}

	dish.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.dishRepository.UpdateDish(ctx, dish); err != nil {
		return domain.DishResponse{}, err
	}
	return toDishResponse(dish), nil
}
