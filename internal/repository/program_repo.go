package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/alouie1020/sample-traivs/internal/models"
)

type CreateProgramInput struct {
	AuthorID    int64
	ProgramName string
	Categories  []string
	Schedule    models.Schedule
}

// UpdateProgramInput carries the fields of a partial update. Nil fields keep
// their stored value. The author is not updatable.
type UpdateProgramInput struct {
	ProgramName *string
	Categories  *[]string
	Schedule    *models.Schedule
}

// ProgramFilter restricts List and Count to rows matching every set field.
type ProgramFilter struct {
	ProgramName    *string
	AuthorUserName *string
}

type ProgramRepository struct {
	db DBTX
}

func NewProgramRepository(db DBTX) *ProgramRepository {
	return &ProgramRepository{db: db}
}

const programColumns = `p.id, p.program_name, p.author_id, p.categories, p.schedule, p.created_at, u.user_name`

func (r *ProgramRepository) Create(ctx context.Context, input CreateProgramInput) (*models.Program, error) {
	query := `
		INSERT INTO programs (program_name, author_id, categories, schedule)
		VALUES ($1, $2, $3, $4)
		RETURNING id, program_name, author_id, categories, schedule, created_at
	`

	categories := input.Categories
	if categories == nil {
		categories = []string{}
	}
	schedule := input.Schedule
	if schedule == nil {
		schedule = models.Schedule{}
	}

	var program models.Program
	err := r.db.QueryRow(ctx, query, input.ProgramName, input.AuthorID, categories, schedule).Scan(
		&program.ID,
		&program.ProgramName,
		&program.AuthorID,
		&program.Categories,
		&program.Schedule,
		&program.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &program, nil
}

func (r *ProgramRepository) GetByID(ctx context.Context, programID int64) (*models.Program, error) {
	query := `
		SELECT ` + programColumns + `
		FROM programs p
		LEFT JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	var program models.Program
	err := r.db.QueryRow(ctx, query, programID).Scan(
		&program.ID,
		&program.ProgramName,
		&program.AuthorID,
		&program.Categories,
		&program.Schedule,
		&program.CreatedAt,
		&program.AuthorUserName,
	)
	if err != nil {
		return nil, err
	}

	return &program, nil
}

// List returns programs in creation order. List and Count share the same
// filter clause so their cardinalities always agree.
func (r *ProgramRepository) List(ctx context.Context, filter ProgramFilter) ([]models.Program, error) {
	where, args := buildProgramFilter(filter)
	query := `
		SELECT ` + programColumns + `
		FROM programs p
		LEFT JOIN users u ON u.id = p.author_id
	` + where + `
		ORDER BY p.id ASC
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := make([]models.Program, 0)
	for rows.Next() {
		var program models.Program
		if err := rows.Scan(
			&program.ID,
			&program.ProgramName,
			&program.AuthorID,
			&program.Categories,
			&program.Schedule,
			&program.CreatedAt,
			&program.AuthorUserName,
		); err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return programs, nil
}

func (r *ProgramRepository) Count(ctx context.Context, filter ProgramFilter) (int, error) {
	where, args := buildProgramFilter(filter)
	query := `
		SELECT count(*)
		FROM programs p
		LEFT JOIN users u ON u.id = p.author_id
	` + where

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProgramRepository) UpdatePartial(ctx context.Context, programID int64, input UpdateProgramInput) (*models.Program, error) {
	query := `
		UPDATE programs
		SET program_name = COALESCE($1, program_name),
			categories = COALESCE($2, categories),
			schedule = COALESCE($3, schedule)
		WHERE id = $4
		RETURNING id, program_name, author_id, categories, schedule, created_at,
			(SELECT user_name FROM users WHERE users.id = programs.author_id)
	`

	var program models.Program
	err := r.db.QueryRow(ctx, query, input.ProgramName, input.Categories, input.Schedule, programID).Scan(
		&program.ID,
		&program.ProgramName,
		&program.AuthorID,
		&program.Categories,
		&program.Schedule,
		&program.CreatedAt,
		&program.AuthorUserName,
	)
	if err != nil {
		return nil, err
	}

	return &program, nil
}

func (r *ProgramRepository) Delete(ctx context.Context, programID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM programs WHERE id = $1`, programID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func buildProgramFilter(filter ProgramFilter) (string, []any) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if filter.ProgramName != nil {
		args = append(args, *filter.ProgramName)
		conditions = append(conditions, fmt.Sprintf("p.program_name = $%d", len(args)))
	}
	if filter.AuthorUserName != nil {
		args = append(args, *filter.AuthorUserName)
		conditions = append(conditions, fmt.Sprintf("u.user_name = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
