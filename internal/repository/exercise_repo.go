package repository

import (
	"context"

	"github.com/alouie1020/sample-traivs/internal/models"
)

type ExerciseRepository struct {
	db DBTX
}

func NewExerciseRepository(db DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, name string) (*models.Exercise, error) {
	query := `
		INSERT INTO exercises (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`
	var exercise models.Exercise
	err := r.db.QueryRow(ctx, query, name).
		Scan(&exercise.ID, &exercise.Name, &exercise.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id int64) (*models.Exercise, error) {
	query := `
		SELECT id, name, created_at
		FROM exercises
		WHERE id = $1
	`
	var exercise models.Exercise
	err := r.db.QueryRow(ctx, query, id).
		Scan(&exercise.ID, &exercise.Name, &exercise.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *ExerciseRepository) List(ctx context.Context) ([]models.Exercise, error) {
	query := `
		SELECT id, name, created_at
		FROM exercises
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0)
	for rows.Next() {
		var exercise models.Exercise
		if err := rows.Scan(&exercise.ID, &exercise.Name, &exercise.CreatedAt); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

// CountExisting reports how many of the given ids are present in the catalog.
// Callers compare the result against len(ids) to validate references.
func (r *ExerciseRepository) CountExisting(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `
		SELECT count(*)
		FROM exercises
		WHERE id = ANY($1)
	`
	var count int
	if err := r.db.QueryRow(ctx, query, ids).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
