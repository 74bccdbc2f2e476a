package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"

	"github.com/benjaminfth/krishinew/cache"
	"github.com/benjaminfth/krishinew/clients/gemini"
	"github.com/benjaminfth/krishinew/configs"
	bookingController "github.com/benjaminfth/krishinew/controllers/bookings"
	cartController "github.com/benjaminfth/krishinew/controllers/cart"
	productController "github.com/benjaminfth/krishinew/controllers/products"
	productInfoController "github.com/benjaminfth/krishinew/controllers/productinfo"
	userController "github.com/benjaminfth/krishinew/controllers/users"
	"github.com/benjaminfth/krishinew/routes"
	"github.com/benjaminfth/krishinew/store"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := configs.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	client, err := configs.ConnectDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	logger.Info().Msg("connected to MongoDB")

	users := store.Wrap(configs.GetCollection(client, cfg, "users"))
	products := store.Wrap(configs.GetCollection(client, cfg, "products"))
	cartItems := store.Wrap(configs.GetCollection(client, cfg, "cart_items"))
	bookings := store.Wrap(configs.GetCollection(client, cfg, "bookings"))

	detailsCache := cache.NewDetailsCache()
	generator := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiTimeout)

	app := fiber.New()
	app.Use(cors.New())

	routes.UserRoutes(app, userController.New(users))
	routes.ProductRoutes(app, productController.New(products))
	routes.CartRoutes(app, cartController.New(cartItems, products))
	routes.BookingRoutes(app, bookingController.New(bookings))
	routes.ProductInfoRoutes(app, productInfoController.New(detailsCache, generator, cfg.GeminiTimeout))

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
