package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/alouie1020/sample-traivs/internal/models"
	"github.com/alouie1020/sample-traivs/internal/repository"
)

type programStore interface {
	Create(ctx context.Context, input repository.CreateProgramInput) (*models.Program, error)
	GetByID(ctx context.Context, programID int64) (*models.Program, error)
	List(ctx context.Context, filter repository.ProgramFilter) ([]models.Program, error)
	Count(ctx context.Context, filter repository.ProgramFilter) (int, error)
	UpdatePartial(ctx context.Context, programID int64, input repository.UpdateProgramInput) (*models.Program, error)
	Delete(ctx context.Context, programID int64) error
}

type userReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type exerciseRefChecker interface {
	CountExisting(ctx context.Context, ids []int64) (int, error)
}

type ProgramService struct {
	programRepo  programStore
	userRepo     userReader
	exerciseRepo exerciseRefChecker
}

type CreateProgramInput struct {
	ProgramName string
	Categories  []string
	Schedule    models.Schedule
}

type UpdateProgramInput struct {
	ProgramName *string
	Categories  *[]string
	Schedule    *models.Schedule
}

func NewProgramService(
	programRepo *repository.ProgramRepository,
	userRepo *repository.UserRepository,
	exerciseRepo *repository.ExerciseRepository,
) *ProgramService {
	return &ProgramService{
		programRepo:  programRepo,
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
	}
}

func (s *ProgramService) CreateProgram(
	ctx context.Context,
	authorID int64,
	input CreateProgramInput,
) (*models.Program, error) {
	programName := strings.TrimSpace(input.ProgramName)
	if programName == "" {
		return nil, ErrInvalidInput
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}

	if err := s.validateScheduleRefs(ctx, input.Schedule); err != nil {
		return nil, err
	}

	program, err := s.programRepo.Create(ctx, repository.CreateProgramInput{
		AuthorID:    authorID,
		ProgramName: programName,
		Categories:  input.Categories,
		Schedule:    input.Schedule,
	})
	if err != nil {
		return nil, err
	}

	program.AuthorUserName = &author.UserName
	return program, nil
}

func (s *ProgramService) GetProgram(ctx context.Context, programID int64) (*models.Program, error) {
	return s.programRepo.GetByID(ctx, programID)
}

func (s *ProgramService) ListPrograms(
	ctx context.Context,
	filter repository.ProgramFilter,
) ([]models.Program, error) {
	return s.programRepo.List(ctx, filter)
}

func (s *ProgramService) CountPrograms(
	ctx context.Context,
	filter repository.ProgramFilter,
) (int, error) {
	return s.programRepo.Count(ctx, filter)
}

func (s *ProgramService) UpdateProgram(
	ctx context.Context,
	programID int64,
	input UpdateProgramInput,
) (*models.Program, error) {
	var programName *string
	if input.ProgramName != nil {
		trimmed := strings.TrimSpace(*input.ProgramName)
		if trimmed == "" {
			return nil, ErrInvalidInput
		}
		programName = &trimmed
	}

	// A replaced schedule is re-validated exactly like on create.
	if input.Schedule != nil {
		if err := s.validateScheduleRefs(ctx, *input.Schedule); err != nil {
			return nil, err
		}
	}

	return s.programRepo.UpdatePartial(ctx, programID, repository.UpdateProgramInput{
		ProgramName: programName,
		Categories:  input.Categories,
		Schedule:    input.Schedule,
	})
}

func (s *ProgramService) DeleteProgram(ctx context.Context, programID int64) error {
	return s.programRepo.Delete(ctx, programID)
}

func (s *ProgramService) validateScheduleRefs(ctx context.Context, schedule models.Schedule) error {
	ids := schedule.ExerciseIDs()
	if len(ids) == 0 {
		return nil
	}
	count, err := s.exerciseRepo.CountExisting(ctx, ids)
	if err != nil {
		return err
	}
	if count != len(ids) {
		return ErrInvalidReference
	}
	return nil
}
