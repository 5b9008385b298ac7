package config

import (
	"TastyBites-Backend/internal/api/handlers"
	"TastyBites-Backend/internal/api/routes"
	"TastyBites-Backend/internal/middleware"
	"TastyBites-Backend/internal/utils"
	"TastyBites-Backend/internal/utils/storage"
	"TastyBites-Backend/pkg/admin"
	"TastyBites-Backend/pkg/dish"
	"TastyBites-Backend/pkg/favorite"
	"TastyBites-Backend/pkg/jwt"
	"TastyBites-Backend/pkg/order"
	"TastyBites-Backend/pkg/rating"
	"TastyBites-Backend/pkg/restaurant"
	"TastyBites-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	restaurantRepository := restaurant.NewRestaurantRepository(db)
	dishRepository := dish.NewDishRepository(db)
	orderRepository := order.NewOrderRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository(db)
	ratingRepository := rating.NewRatingRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	restaurantService := restaurant.NewRestaurantService(restaurantRepository)
	dishService := dish.NewDishService(dishRepository, restaurantRepository, s3)
	orderService := order.NewOrderService(orderRepository, dishRepository)
	favoriteService := favorite.NewFavoriteService(favoriteRepository, dishRepository)
	ratingService := rating.NewRatingService(ratingRepository, restaurantRepository)
	adminService := admin.NewAdminService(userRepository, restaurantRepository, dishRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, validator)
	dishHandler := handlers.NewDishHandler(dishService, validator)
	cartHandler := handlers.NewCartHandler(orderService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, validator)
	ratingHandler := handlers.NewRatingHandler(ratingService, validator)
	adminHandler := handlers.NewAdminHandler(adminService, validator)
	mediaHandler := handlers.NewMediaHandler(s3, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RestaurantHandler: restaurantHandler,
		DishHandler:       dishHandler,
		CartHandler:       cartHandler,
		FavoriteHandler:   favoriteHandler,
		RatingHandler:     ratingHandler,
		AdminHandler:      adminHandler,
		MediaHandler:      mediaHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
