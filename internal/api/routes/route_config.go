package routes

import (
	"TastyBites-Backend/domain"
	"TastyBites-Backend/internal/api/handlers"
	"TastyBites-Backend/internal/middleware"
	"TastyBites-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RestaurantHandler handlers.RestaurantHandler
	DishHandler       handlers.DishHandler
	CartHandler       handlers.CartHandler
	FavoriteHandler   handlers.FavoriteHandler
	RatingHandler     handlers.RatingHandler
	AdminHandler      handlers.AdminHandler
	MediaHandler      handlers.MediaHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Restaurants()
	c.Dishes()
	c.Cart()
	c.Favorites()
	c.Ratings()
	c.Admin()
	c.Media()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Restaurants() {
	restaurants := c.App.Group("/api/v1/restaurants")

	restaurants.Get("", c.RestaurantHandler.GetRestaurants)
	// static paths before the :id wildcard
	restaurants.Get("/categories", c.RestaurantHandler.GetCategories)
	restaurants.Get("/mine",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.OnlyRoles(domain.RoleRestaurant, domain.RoleAdmin),
		c.RestaurantHandler.GetOwnRestaurant)
	restaurants.Get("/:id", c.RestaurantHandler.GetRestaurantDetails)
	restaurants.Patch("/:id",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.OnlyRoles(domain.RoleRestaurant, domain.RoleAdmin),
		c.RestaurantHandler.UpdateRestaurant)
}

func (c *Config) Dishes() {
	dishes := c.App.Group("/api/v1/dishes")
	owner := c.Middleware.OnlyRoles(domain.RoleRestaurant, domain.RoleAdmin)

	dishes.Get("", c.DishHandler.GetDishes)
	dishes.Post("", c.Middleware.AuthMiddleware(c.JWTService), owner, c.DishHandler.CreateDish)
	dishes.Patch("/:id", c.Middleware.AuthMiddleware(c.JWTService), owner, c.DishHandler.UpdateDish)
	dishes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), owner, c.DishHandler.DeleteDish)
	dishes.Post("/:id/image", c.Middleware.AuthMiddleware(c.JWTService), owner, c.DishHandler.UploadDishImage)
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart", c.Middleware.AuthMiddleware(c.JWTService))

	cart.Get("", c.CartHandler.GetCart)
	cart.Post("", c.CartHandler.AddItem)
	cart.Patch("", c.CartHandler.UpdateItem)
	cart.Delete("", c.CartHandler.RemoveItem)
	cart.Post("/checkout", c.CartHandler.Checkout)

	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))
	orders.Get("", c.CartHandler.GetPastOrders)
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/v1/favorites", c.Middleware.AuthMiddleware(c.JWTService))

	favorites.Get("", c.FavoriteHandler.GetFavorites)
	favorites.Post("", c.FavoriteHandler.AddFavorite)
	favorites.Delete("", c.FavoriteHandler.RemoveFavorite)
}

func (c *Config) Ratings() {
	ratings := c.App.Group("/api/v1/ratings")

	ratings.Get("", c.RatingHandler.GetRatings)
	ratings.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RatingHandler.SubmitRating)
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.OnlyRoles(domain.RoleAdmin))

	admin.Get("/restaurant-requests", c.AdminHandler.GetSignupRequests)
	admin.Patch("/restaurant-requests", c.AdminHandler.ProcessSignupRequest)
	admin.Get("/restaurants", c.RestaurantHandler.GetRestaurants)
	admin.Delete("/restaurants/:id", c.AdminHandler.DeleteRestaurant)
	admin.Get("/stats", c.AdminHandler.GetSiteStats)
}

func (c *Config) Media() {
	media := c.App.Group("/api/v1/media", c.Middleware.AuthMiddleware(c.JWTService))

	media.Post("", c.MediaHandler.UploadImage)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
