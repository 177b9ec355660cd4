package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/example/riplures/internal/cart"
	"github.com/example/riplures/internal/catalog"
	"github.com/example/riplures/internal/config"
	"github.com/example/riplures/internal/content"
	"github.com/example/riplures/internal/handlers"
	"github.com/example/riplures/internal/middleware"
	"github.com/example/riplures/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, rdb *redis.Client, holder *catalog.Holder, paths content.Paths, cfg *config.Config) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	cartStore := cart.NewStore(rdb)

	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(holder)
	galleryHandler := handlers.NewGalleryHandler(holder)
	cartHandler := handlers.NewCartHandler(cartStore)
	checkoutHandler := handlers.NewCheckoutHandler(db, cartStore, telegramService)
	adminHandler := handlers.NewAdminHandler(holder, paths)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// Catalog routes
	products := api.Group("/products")
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:id", catalogHandler.GetProduct)

	api.Get("/categories", catalogHandler.ListCategories)

	// Gallery routes
	api.Get("/catches", galleryHandler.ListCatches)
	api.Get("/lures", galleryHandler.ListLures)

	// Cart routes
	cartGroup := api.Group("/cart")
	cartGroup.Get("/", cartHandler.GetCart)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items", cartHandler.SetQty)
	cartGroup.Delete("/items/:productId/:variantId", cartHandler.RemoveItem)
	cartGroup.Delete("/", cartHandler.ClearCart)

	// Checkout handoff
	api.Post("/checkout", checkoutHandler.Checkout)
	api.Post("/checkout/success", checkoutHandler.Success)

	// Protected admin routes
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg))
	admin.Post("/rebuild", adminHandler.Rebuild)
	admin.Get("/products", catalogHandler.ListProductsAdmin)
}
