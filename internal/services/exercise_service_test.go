package services

import (
	"context"
	"errors"
	"testing"

	"github.com/alouie1020/sample-traivs/internal/models"
)

type stubExerciseRepo struct {
	created    []string
	listResult []models.Exercise
	listErr    error
}

func (r *stubExerciseRepo) Create(_ context.Context, name string) (*models.Exercise, error) {
	r.created = append(r.created, name)
	return &models.Exercise{ID: int64(len(r.created)), Name: name}, nil
}

func (r *stubExerciseRepo) GetByID(_ context.Context, id int64) (*models.Exercise, error) {
	return &models.Exercise{ID: id}, nil
}

func (r *stubExerciseRepo) List(_ context.Context) ([]models.Exercise, error) {
	return r.listResult, r.listErr
}

func TestExerciseServiceCreateExerciseTrimsName(t *testing.T) {
	repo := &stubExerciseRepo{}
	service := &ExerciseService{exerciseRepo: repo}

	exercise, err := service.CreateExercise(context.Background(), "  barbell squat ")
	if err != nil {
		t.Fatalf("CreateExercise: %v", err)
	}
	if exercise.Name != "barbell squat" {
		t.Errorf("expected trimmed name, got %q", exercise.Name)
	}

	if _, err := service.CreateExercise(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for blank name, got %v", err)
	}
}

func TestExerciseServiceEnsureSeedOnlySeedsEmptyCatalog(t *testing.T) {
	repo := &stubExerciseRepo{}
	service := &ExerciseService{exerciseRepo: repo}

	if err := service.EnsureSeed(context.Background(), []string{"squat", "deadlift"}); err != nil {
		t.Fatalf("EnsureSeed: %v", err)
	}
	if len(repo.created) != 2 {
		t.Fatalf("expected 2 seeded exercises, got %d", len(repo.created))
	}

	repo.listResult = []models.Exercise{{ID: 1, Name: "squat"}}
	repo.created = nil
	if err := service.EnsureSeed(context.Background(), []string{"squat"}); err != nil {
		t.Fatalf("EnsureSeed: %v", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("expected no seeding on a populated catalog")
	}
}
