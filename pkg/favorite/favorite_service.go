package favorite

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/entities"
	"TastyBites-Backend/pkg/dish"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FavoriteService interface {
		GetFavorites(ctx context.Context, userID string) ([]domain.FavoriteItemResponse, error)
		AddFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) ([]domain.FavoriteItemResponse, error)
		RemoveFavorite(ctx context.Context, dishID, userID string) ([]domain.FavoriteItemResponse, error)
		IsFavorite(ctx context.Context, dishID, userID string) (domain.IsFavoriteResponse, error)
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
		dishRepository     dish.DishRepository
	}
)

func NewFavoriteService(favoriteRepository FavoriteRepository, dishRepository dish.DishRepository) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		dishRepository:     dishRepository,
	}
}

func toFavoriteItemResponse(item *entities.FavoriteItem) domain.FavoriteItemResponse {
	res := domain.FavoriteItemResponse{
		Key:       item.ID.String(),
		CreatedAt: item.CreatedAt,
	}
	if item.Dish != nil {
		dishRes := domain.DishResponse{
			ID:          item.Dish.ID.String(),
			Name:        item.Dish.Name,
			Description: item.Dish.Description,
			Price:       item.Dish.Price,
			Category:    item.Dish.Category,
			ImageURL:    item.Dish.ImageURL,
		}
		if item.Dish.Restaurant != nil {
			dishRes.Restaurant = &domain.DishRestaurant{
				ID:      item.Dish.Restaurant.ID.String(),
				Name:    item.Dish.Restaurant.Name,
				LogoURL: item.Dish.Restaurant.LogoURL,
			}
		}
		res.Dish = &dishRes
	}
	return res
}

func toFavoriteResponse(favorite *entities.Favorite) []domain.FavoriteItemResponse {
	items := make([]domain.FavoriteItemResponse, 0, len(favorite.Items))
	for _, item := range favorite.Items {
		items = append(items, toFavoriteItemResponse(item))
	}
	return items
}

func (s *favoriteService) GetFavorites(ctx context.Context, userID string) ([]domain.FavoriteItemResponse, error) {
	favorite, err := s.favoriteRepository.GetFavoriteByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []domain.FavoriteItemResponse{}, nil
		}
		return nil, err
	}
	return toFavoriteResponse(favorite), nil
}

func (s *favoriteService) AddFavorite(ctx context.Context, req domain.FavoriteRequest, userID string) ([]domain.FavoriteItemResponse, error) {
	if _, err := s.dishRepository.GetDishByID(ctx, req.DishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDishNotFound
		}
		return nil, err
	}

	favorite, err := s.favoriteRepository.GetFavoriteByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		// First save for this user, create the collection on the fly.
		userUUID, parseErr := uuid.Parse(userID)
		if parseErr != nil {
			return nil, domain.ErrParseUUID
		}
		favorite = &entities.Favorite{UserID: userUUID}
		if err := s.favoriteRepository.CreateFavorite(ctx, favorite); err != nil {
			return nil, err
		}
	}

	// Saving an already-saved dish is a no-op.
	for _, item := range favorite.Items {
		if item.DishID.String() == req.DishID {
			return toFavoriteResponse(favorite), nil
		}
	}

	dishUUID, err := uuid.Parse(req.DishID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	item := &entities.FavoriteItem{
		FavoriteID: favorite.ID,
		DishID:     dishUUID,
	}
	if err := s.favoriteRepository.AddFavoriteItem(ctx, item); err != nil {
		return nil, err
	}

	favorite, err = s.favoriteRepository.GetFavoriteByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toFavoriteResponse(favorite), nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, dishID, userID string) ([]domain.FavoriteItemResponse, error) {
	favorite, err := s.favoriteRepository.GetFavoriteByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []domain.FavoriteItemResponse{}, nil
		}
		return nil, err
	}

	if err := s.favoriteRepository.DeleteFavoriteItemsByDish(ctx, favorite.ID.String(), dishID); err != nil {
		return nil, err
	}

	count, err := s.favoriteRepository.CountFavoriteItems(ctx, favorite.ID.String())
	if err != nil {
		return nil, err
	}
	if count == 0 {
		// Removing the last dish drops the collection itself.
		if err := s.favoriteRepository.DeleteFavorite(ctx, favorite.ID.String()); err != nil {
			return nil, err
		}
		return []domain.FavoriteItemResponse{}, nil
	}

	favorite, err = s.favoriteRepository.GetFavoriteByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toFavoriteResponse(favorite), nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, dishID, userID string) (domain.IsFavoriteResponse, error) {
	favorite, err := s.favoriteRepository.GetFavoriteByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IsFavoriteResponse{IsFavorite: false}, nil
		}
		return domain.IsFavoriteResponse{}, err
	}

	for _, item := range favorite.Items {
		if item.DishID.String() == dishID {
			return domain.IsFavoriteResponse{IsFavorite: true}, nil
		}
	}
	return domain.IsFavoriteResponse{IsFavorite: false}, nil
}
