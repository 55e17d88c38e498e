package services

import (
	"context"
	"strings"

	"github.com/alouie1020/sample-traivs/internal/models"
	"github.com/alouie1020/sample-traivs/internal/repository"
)

type exerciseStore interface {
	Create(ctx context.Context, name string) (*models.Exercise, error)
	GetByID(ctx context.Context, id int64) (*models.Exercise, error)
	List(ctx context.Context) ([]models.Exercise, error)
}

type ExerciseService struct {
	exerciseRepo exerciseStore
}

func NewExerciseService(exerciseRepo *repository.ExerciseRepository) *ExerciseService {
	return &ExerciseService{exerciseRepo: exerciseRepo}
}

func (s *ExerciseService) CreateExercise(ctx context.Context, name string) (*models.Exercise, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrInvalidInput
	}
	return s.exerciseRepo.Create(ctx, trimmed)
}

func (s *ExerciseService) GetExercise(ctx context.Context, id int64) (*models.Exercise, error) {
	return s.exerciseRepo.GetByID(ctx, id)
}

func (s *ExerciseService) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

// EnsureSeed inserts the given catalog names once, on an empty catalog. Used by
// the server bootstrap when SEED_EXERCISES is configured.
func (s *ExerciseService) EnsureSeed(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	existing, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, name := range names {
		if _, err := s.CreateExercise(ctx, name); err != nil {
			return err
		}
	}
	return nil
}
