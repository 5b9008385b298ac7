package user

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/entities"
	"TastyBites-Backend/pkg/jwt"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) FirstOrCreateUserByEmail(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CreateSignupRequest(ctx context.Context, request *entities.RestaurantSignupRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockUserRepository) GetSignupRequestByID(ctx context.Context, id string) (*entities.RestaurantSignupRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RestaurantSignupRequest), args.Error(1)
}

func (m *MockUserRepository) GetPendingSignupRequests(ctx context.Context) ([]*entities.RestaurantSignupRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RestaurantSignupRequest), args.Error(1)
}

func (m *MockUserRepository) UpdateSignupRequestStatus(ctx context.Context, id string, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUserRepository) CountPendingSignupRequests(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserService_Register_Customer(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo, jwt.NewJWTService())

	userRepo.On("GetUserByEmail", mock.Anything, "anna@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		// the raw password is never stored
		return u.Role == domain.RoleCustomer && u.Password != "hunter22"
	})).Return(nil)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Anna",
		Email:    "anna@example.com",
		Password: "hunter22",
		Role:     domain.RoleCustomer,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, res.Role)
	assert.False(t, res.PendingRequest)
	userRepo.AssertExpectations(t)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo, jwt.NewJWTService())

	userRepo.On("GetUserByEmail", mock.Anything, "anna@example.com").
		Return(&entities.User{ID: uuid.New(), Email: "anna@example.com"}, nil)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Anna",
		Email:    "anna@example.com",
		Password: "hunter22",
		Role:     domain.RoleCustomer,
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyUsed)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUserService_Register_RestaurantBecomesPendingRequest(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo, jwt.NewJWTService())

	userRepo.On("GetUserByEmail", mock.Anything, "mario@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("CreateSignupRequest", mock.Anything, mock.MatchedBy(func(r *entities.RestaurantSignupRequest) bool {
		return r.Status == domain.SignupRequestPending && r.RestaurantName == "Mario's Pizza"
	})).Return(nil)

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:                  "Mario",
		Email:                 "mario@example.com",
		Password:              "hunter22",
		Role:                  domain.RoleRestaurant,
		RestaurantName:        "Mario's Pizza",
		RestaurantCategory:    "Italian",
		RestaurantDescription: "Neapolitan pizza",
	})

	require.NoError(t, err)
	assert.True(t, res.PendingRequest)
	// no account exists until an admin approves
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUserService_Register_RestaurantDataMissing(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo, jwt.NewJWTService())

	userRepo.On("GetUserByEmail", mock.Anything, "mario@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Mario",
		Email:    "mario@example.com",
		Password: "hunter22",
		Role:     domain.RoleRestaurant,
	})

	assert.ErrorIs(t, err, domain.ErrRestaurantDataMissing)
	userRepo.AssertNotCalled(t, "CreateSignupRequest", mock.Anything, mock.Anything)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo, jwt.NewJWTService())

	userRepo.On("GetUserByEmail", mock.Anything, "ghost@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo, jwt.NewJWTService())

	hashed, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRepo.On("GetUserByEmail", mock.Anything, "anna@example.com").
		Return(&entities.User{ID: uuid.New(), Email: "anna@example.com", Password: string(hashed)}, nil)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, domain.ErrWrongPassword)
}

func TestUserService_Login_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo, jwt.NewJWTService())

	hashed, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userID := uuid.New()
	userRepo.On("GetUserByEmail", mock.Anything, "anna@example.com").
		Return(&entities.User{
			ID:       userID,
			Name:     "Anna",
			Email:    "anna@example.com",
			Password: string(hashed),
			Role:     domain.RoleCustomer,
		}, nil)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "anna@example.com",
		Password: "right-password",
	})

	require.NoError(t, err)
	assert.Equal(t, userID.String(), res.ID)
	assert.NotEmpty(t, res.Token)
}

func TestUserService_Me_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo, jwt.NewJWTService())

	id := uuid.NewString()
	userRepo.On("GetUserByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Me(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
