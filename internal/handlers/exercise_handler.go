package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/alouie1020/sample-traivs/internal/models"
	"github.com/alouie1020/sample-traivs/internal/services"
)

type exerciseApplicationService interface {
	CreateExercise(ctx context.Context, name string) (*models.Exercise, error)
	GetExercise(ctx context.Context, id int64) (*models.Exercise, error)
	ListExercises(ctx context.Context) ([]models.Exercise, error)
}

type ExerciseHandler struct {
	service exerciseApplicationService
}

func NewExerciseHandler(service exerciseApplicationService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

type createExerciseRequest struct {
	Name string `json:"name"`
}

func (h *ExerciseHandler) CreateExercise(c *fiber.Ctx) error {
	var req createExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	exercise, err := h.service.CreateExercise(c.Context(), req.Name)
	if err != nil {
		return mapExerciseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exercise)
}

func (h *ExerciseHandler) GetExercise(c *fiber.Ctx) error {
	exerciseID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || exerciseID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	exercise, err := h.service.GetExercise(c.Context(), exerciseID)
	if err != nil {
		return mapExerciseError(c, err)
	}
	return c.JSON(exercise)
}

func (h *ExerciseHandler) ListExercises(c *fiber.Ctx) error {
	exercises, err := h.service.ListExercises(c.Context())
	if err != nil {
		return mapExerciseError(c, err)
	}
	return c.JSON(exercises)
}

func mapExerciseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exercise not found"})
	default:
		log.Printf("exercise request failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Failed to process exercise request"})
	}
}
