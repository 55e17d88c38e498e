package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/alouie1020/sample-traivs/internal/config"
	"github.com/alouie1020/sample-traivs/internal/database"
	"github.com/alouie1020/sample-traivs/internal/repository"
	"github.com/alouie1020/sample-traivs/internal/routes"
	"github.com/alouie1020/sample-traivs/internal/services"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Connect to Database
	if cfg.DBUrl == "" {
		log.Fatal("DB_URL is required")
	}
	if err := database.ConnectDB(cfg.DBUrl); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	if len(cfg.SeedExercises) > 0 {
		exerciseService := services.NewExerciseService(repository.NewExerciseRepository(database.DB))
		if err := exerciseService.EnsureSeed(context.Background(), cfg.SeedExercises); err != nil {
			log.Fatalf("Failed to seed exercise catalog: %v", err)
		}
	}

	// 3. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	routes.RegisterRoutes(app, cfg, database.DB)

	// 4. Start Server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
