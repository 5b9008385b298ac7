package rating

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/entities"
	"TastyBites-Backend/pkg/restaurant"
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultListLimit = 10
	maxListLimit     = 50
)

type (
	RatingService interface {
		SubmitRating(ctx context.Context, req domain.SubmitRatingRequest, userID string) (domain.SubmitRatingResponse, error)
		GetRatings(ctx context.Context, restaurantID string, limit int) ([]domain.RatingResponse, error)
	}

	ratingService struct {
		ratingRepository     RatingRepository
		restaurantRepository restaurant.RestaurantRepository
	}
)

func NewRatingService(ratingRepository RatingRepository, restaurantRepository restaurant.RestaurantRepository) RatingService {
	return &ratingService{
		ratingRepository:     ratingRepository,
		restaurantRepository: restaurantRepository,
	}
}

func toRatingResponse(rating *entities.RestaurantRating) domain.RatingResponse {
	res := domain.RatingResponse{
		ID:        rating.ID.String(),
		Rating:    rating.Rating,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
	}
	if rating.User != nil {
		res.User = &domain.RatingUser{
			ID:   rating.User.ID.String(),
			Name: rating.User.Name,
		}
	}
	if rating.Restaurant != nil {
		res.Restaurant = &domain.RatingRestaurant{
			ID:      rating.Restaurant.ID.String(),
			Name:    rating.Restaurant.Name,
			LogoURL: rating.Restaurant.LogoURL,
		}
	}
	return res
}

// averageRating computes the mean of the in-range values rounded to one
// decimal place. Out-of-range rows are skipped rather than failing the
// whole recomputation.
func averageRating(values []int) float64 {
	sum, count := 0, 0
	for _, v := range values {
		if v < 1 || v > 5 {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}

func (s *ratingService) SubmitRating(ctx context.Context, req domain.SubmitRatingRequest, userID string) (domain.SubmitRatingResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.SubmitRatingResponse{}, domain.ErrInvalidRating
	}
	comment := strings.TrimSpace(req.Comment)
	if len(comment) < 2 {
		return domain.SubmitRatingResponse{}, domain.ErrCommentRequired
	}

	if _, err := s.restaurantRepository.GetRestaurantByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubmitRatingResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.SubmitRatingResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubmitRatingResponse{}, domain.ErrParseUUID
	}
	restaurantUUID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return domain.SubmitRatingResponse{}, domain.ErrParseUUID
	}

	rating := &entities.RestaurantRating{
		UserID:       userUUID,
		RestaurantID: restaurantUUID,
		Rating:       req.Rating,
		Comment:      comment,
	}
	if err := s.ratingRepository.CreateRating(ctx, rating); err != nil {
		return domain.SubmitRatingResponse{}, err
	}

	values, err := s.ratingRepository.GetAllRatingValues(ctx, req.RestaurantID)
	if err != nil {
		return domain.SubmitRatingResponse{}, err
	}

	average := averageRating(values)
	if err := s.restaurantRepository.UpdateRestaurantRating(ctx, req.RestaurantID, average); err != nil {
		return domain.SubmitRatingResponse{}, err
	}

	return domain.SubmitRatingResponse{Rating: average}, nil
}

func (s *ratingService) GetRatings(ctx context.Context, restaurantID string, limit int) ([]domain.RatingResponse, error) {
	if restaurantID == "" {
		return nil, domain.ErrMissingRestaurantID
	}
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	ratings, err := s.ratingRepository.GetRatingsByRestaurant(ctx, restaurantID, limit)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		response = append(response, toRatingResponse(rating))
	}
	return response, nil
}
