package migrations

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_SQLiteCreatesSchemaAndSeedRow(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "todos.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	defer db.Close()

	if err := Migrate(db, "sqlite"); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	var (
		id   int64
		text string
		done bool
	)
	err = db.QueryRow("SELECT id, text, done FROM todos").Scan(&id, &text, &done)
	if err != nil {
		t.Fatalf("querying seed row: %v", err)
	}

	if id != 1 || text != "Test" || done {
		t.Errorf("unexpected seed row: id=%d text=%q done=%v", id, text, done)
	}
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "todos.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	defer db.Close()

	if err := Migrate(db, "sqlite"); err != nil {
		t.Fatalf("first Migrate failed: %v", err)
	}
	if err := Migrate(db, "sqlite"); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM todos").Scan(&count); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected the seed row to be inserted once, got %d rows", count)
	}
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "sqlite")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "sqlite")
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "oracle")
	if err == nil {
		t.Fatal("expected error for unknown dialect, got nil")
	}

	if !strings.Contains(err.Error(), "setting dialect") {
		t.Errorf("expected dialect error, got: %v", err)
	}
}

func TestEmbeddedMigrations_BothDialectsPresent(t *testing.T) {
	for _, dir := range []string{"sqlite", "postgres"} {
		entries, err := embedMigrations.ReadDir(dir)
		if err != nil {
			t.Fatalf("reading embedded %s migrations: %v", dir, err)
		}
		if len(entries) == 0 {
			t.Fatalf("no embedded migrations for %s", dir)
		}
	}
}
