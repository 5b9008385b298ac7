package user

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/entities"
	"TastyBites-Backend/internal/utils"
	"TastyBites-Backend/pkg/jwt"
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Register either creates a customer account directly or, for restaurant
// owners, parks the signup as a pending request until an admin approves it.
func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	existing, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}
	if existing != nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyUsed
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	if req.Role == domain.RoleCustomer {
		user := &entities.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: hashedPassword,
			Role:     domain.RoleCustomer,
		}
		if err := s.userRepository.CreateUser(ctx, user); err != nil {
			return domain.RegisterResponse{}, err
		}

		return domain.RegisterResponse{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		}, nil
	}

	if req.RestaurantName == "" || req.RestaurantCategory == "" || req.RestaurantDescription == "" {
		return domain.RegisterResponse{}, domain.ErrRestaurantDataMissing
	}

	request := &entities.RestaurantSignupRequest{
		Name:                  req.Name,
		Email:                 req.Email,
		Password:              hashedPassword,
		RestaurantName:        req.RestaurantName,
		RestaurantCategory:    req.RestaurantCategory,
		RestaurantDescription: req.RestaurantDescription,
		Status:                domain.SignupRequestPending,
	}
	if err := s.userRepository.CreateSignupRequest(ctx, request); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		Name:           req.Name,
		Email:          req.Email,
		Role:           domain.RoleRestaurant,
		PendingRequest: true,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, err
		}

		// Bootstrap the configured admin account on its first login.
		if req.Email != utils.GetConfig("ADMIN_EMAIL") || req.Email == "" {
			return domain.LoginResponse{}, domain.ErrUserNotFound
		}

		hashedPassword, hashErr := hashPassword(req.Password)
		if hashErr != nil {
			return domain.LoginResponse{}, hashErr
		}
		user = &entities.User{
			Name:     "Admin",
			Email:    req.Email,
			Password: hashedPassword,
			Role:     domain.RoleAdmin,
		}
		if err := s.userRepository.CreateUser(ctx, user); err != nil {
			return domain.LoginResponse{}, err
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrWrongPassword
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.LoginResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}
