package user

import (
	"TastyBites-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		FirstOrCreateUserByEmail(ctx context.Context, user *entities.User) error
		CountUsers(ctx context.Context) (int64, error)

		// Signup-approval workflow
		CreateSignupRequest(ctx context.Context, request *entities.RestaurantSignupRequest) error
		GetSignupRequestByID(ctx context.Context, id string) (*entities.RestaurantSignupRequest, error)
		GetPendingSignupRequests(ctx context.Context) ([]*entities.RestaurantSignupRequest, error)
		UpdateSignupRequestStatus(ctx context.Context, id string, status string) error
		CountPendingSignupRequests(ctx context.Context) (int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FirstOrCreateUserByEmail backs the approval workflow: approving the same
// request twice, or two requests sharing an email, must not create duplicate
// users. The unique index on email makes the race lose loudly instead of
// silently duplicating.
func (r *userRepository) FirstOrCreateUserByEmail(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).
		Where("email = ?", user.Email).
		FirstOrCreate(user).Error
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) CreateSignupRequest(ctx context.Context, request *entities.RestaurantSignupRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *userRepository) GetSignupRequestByID(ctx context.Context, id string) (*entities.RestaurantSignupRequest, error) {
	var request entities.RestaurantSignupRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *userRepository) GetPendingSignupRequests(ctx context.Context) ([]*entities.RestaurantSignupRequest, error) {
	var requests []*entities.RestaurantSignupRequest
	if err := r.db.WithContext(ctx).
		Where("status = ?", "pending").
		Order("created_at asc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *userRepository) UpdateSignupRequestStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).Model(&entities.RestaurantSignupRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status}).Error
}

func (r *userRepository) CountPendingSignupRequests(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.RestaurantSignupRequest{}).
		Where("status = ?", "pending").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
