package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"bookshelf/internal/database"
	"bookshelf/internal/dto"
	"bookshelf/internal/models"
	"bookshelf/internal/services"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.db")
	t.Setenv("DB_DRIVER", database.DriverSQLite)
	t.Setenv("DATABASE_URL", path)
	t.Setenv("SESSION_SECRET", "test-secret")
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMigrateUpDown(t *testing.T) {
	setupEnv(t)

	for _, args := range [][]string{{"migrate", "up"}, {"migrate", "up"}, {"migrate", "down"}} {
		if _, err := run(t, args...); err != nil {
			t.Errorf("%v: unexpected error: %v", args, err)
		}
	}
}

func TestBooksList(t *testing.T) {
	path := setupEnv(t)

	db, err := database.Init(database.DriverSQLite, path)
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	ctx := context.Background()
	user, err := services.NewAuthService(db).Signup(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	_, err = services.NewBookService(db).Create(ctx, models.Identity{UserID: user.ID},
		dto.BookInput{Title: "Dune", Author: "Herbert", Genre: "SciFi"})
	if err != nil {
		t.Fatalf("create book: %v", err)
	}
	db.Close()

	out, err := run(t, "books", "list", "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Dune") || !strings.Contains(out, "Herbert") {
		t.Errorf("expected Dune in listing, got %q", out)
	}
}

func TestBooksList_UnknownUser(t *testing.T) {
	setupEnv(t)

	if _, err := run(t, "books", "list", "nobody"); err == nil {
		t.Error("expected error for unknown user")
	}
}

func TestPrintBooks_Empty(t *testing.T) {
	var out bytes.Buffer
	if err := printBooks(&out, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "No books found.\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}
