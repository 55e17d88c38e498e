package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type stubDBTX struct {
	execTag pgconn.CommandTag
	execErr error
	lastSQL string
}

func (db *stubDBTX) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	db.lastSQL = sql
	return db.execTag, db.execErr
}

func (db *stubDBTX) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (db *stubDBTX) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return nil
}

func strPtr(s string) *string { return &s }

func TestBuildProgramFilter(t *testing.T) {
	cases := []struct {
		name      string
		filter    ProgramFilter
		wantWhere string
		wantArgs  int
	}{
		{"empty", ProgramFilter{}, "", 0},
		{
			"program name",
			ProgramFilter{ProgramName: strPtr("legs day")},
			" WHERE p.program_name = $1",
			1,
		},
		{
			"author",
			ProgramFilter{AuthorUserName: strPtr("authuser")},
			" WHERE u.user_name = $1",
			1,
		},
		{
			"both",
			ProgramFilter{ProgramName: strPtr("legs day"), AuthorUserName: strPtr("authuser")},
			" WHERE p.program_name = $1 AND u.user_name = $2",
			2,
		},
	}

	for _, tc := range cases {
		where, args := buildProgramFilter(tc.filter)
		if where != tc.wantWhere {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.wantWhere, where)
		}
		if len(args) != tc.wantArgs {
			t.Errorf("%s: expected %d args, got %d", tc.name, tc.wantArgs, len(args))
		}
	}
}

func TestProgramRepositoryDeleteMapsMissingRowToNoRows(t *testing.T) {
	db := &stubDBTX{execTag: pgconn.NewCommandTag("DELETE 0")}
	repo := NewProgramRepository(db)

	err := repo.Delete(context.Background(), 404)
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
}

func TestProgramRepositoryDeleteSucceedsWhenRowRemoved(t *testing.T) {
	db := &stubDBTX{execTag: pgconn.NewCommandTag("DELETE 1")}
	repo := NewProgramRepository(db)

	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
