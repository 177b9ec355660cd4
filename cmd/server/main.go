package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/example/riplures/internal/catalog"
	"github.com/example/riplures/internal/config"
	"github.com/example/riplures/internal/content"
	"github.com/example/riplures/internal/database"
	"github.com/example/riplures/internal/handlers"
	"github.com/example/riplures/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	paths := content.DefaultPaths(cfg.ContentDir, cfg.DataDir, cfg.PublicDir, cfg.SiteURL)

	if cfg.SkipContentBuild {
		log.Println("[content] SKIP_CONTENT_BUILD set — serving existing artifacts")
	} else if err := content.BuildAll(paths); err != nil {
		log.Fatalf("content build failed: %v", err)
	}

	holder := catalog.NewHolder(catalog.Load(paths.ProductsOut, paths.CatchesOut))

	if cfg.WatchContent {
		watcher, err := content.NewWatcher(paths, func() {
			holder.Set(catalog.Load(paths.ProductsOut, paths.CatchesOut))
			log.Println("[content] catalog reloaded")
		})
		if err != nil {
			log.Fatalf("content watcher: %v", err)
		}
		if err := watcher.Start(); err != nil {
			log.Fatalf("content watcher: %v", err)
		}
		defer watcher.Stop()
	}

	handlers.SeedAdmin(db, cfg)

	app := fiber.New(fiber.Config{
		AppName: "RIP Lures Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	routes.Register(app, db, rdb, holder, paths, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
