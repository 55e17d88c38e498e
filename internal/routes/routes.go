package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alouie1020/sample-traivs/internal/config"
	"github.com/alouie1020/sample-traivs/internal/handlers"
	"github.com/alouie1020/sample-traivs/internal/middleware"
	"github.com/alouie1020/sample-traivs/internal/repository"
	"github.com/alouie1020/sample-traivs/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	programRepo := repository.NewProgramRepository(db)

	programService := services.NewProgramService(programRepo, userRepo, exerciseRepo)
	exerciseService := services.NewExerciseService(exerciseRepo)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	programHandler := handlers.NewProgramHandler(programService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService)

	app.Post("/users/register", authHandler.Register)
	app.Post("/auth/login", authHandler.Login)

	programs := app.Group("/programs", middleware.AuthRequired(cfg.JWTSecret))
	programs.Get("", programHandler.ListPrograms)
	programs.Get("/count", programHandler.CountPrograms)
	programs.Post("", programHandler.CreateProgram)
	programs.Get("/:id", programHandler.GetProgram)
	programs.Put("/:id", programHandler.UpdateProgram)
	programs.Delete("/:id", programHandler.DeleteProgram)

	exercises := app.Group("/exercises", middleware.AuthRequired(cfg.JWTSecret))
	exercises.Get("", exerciseHandler.ListExercises)
	exercises.Post("", exerciseHandler.CreateExercise)
	exercises.Get("/:id", exerciseHandler.GetExercise)
}
