package repository

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestMigrate_FreshDatabase(t *testing.T) {
	db := openTestDB(t)

	for _, tc := range []struct{ table, column string }{
		{"users", "username"},
		{"users", "hashed_password"},
		{"tasks", "title"},
		{"tasks", "completed"},
		{"tasks", "description"},
		{"tasks", "deadline"},
	} {
		if !db.Migrator().HasColumn(tc.table, tc.column) {
			t.Errorf("expected column %s.%s after migration", tc.table, tc.column)
		}
	}

	var count int64
	if err := db.Model(&schemaMigration{}).Count(&count).Error; err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count != int64(len(migrations)) {
		t.Fatalf("expected %d recorded migrations, got %d", len(migrations), count)
	}
}

func TestMigrate_Rerun(t *testing.T) {
	db := openTestDB(t)

	// A second pass over an already-migrated database must change nothing.
	if err := Migrate(db); err != nil {
		t.Fatalf("re-run migrate: %v", err)
	}

	var count int64
	if err := db.Model(&schemaMigration{}).Count(&count).Error; err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count != int64(len(migrations)) {
		t.Fatalf("expected %d recorded migrations after re-run, got %d", len(migrations), count)
	}
}

func TestMigrate_PartialSchema(t *testing.T) {
	db := openTestDB(t)

	// Simulate a database from an earlier deployment: tasks exists without
	// the later columns and nothing is recorded.
	if err := db.Exec("DROP TABLE tasks").Error; err != nil {
		t.Fatalf("drop tasks: %v", err)
	}
	if err := db.Exec("DELETE FROM schema_migrations").Error; err != nil {
		t.Fatalf("clear history: %v", err)
	}
	if err := db.Exec(`CREATE TABLE tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER REFERENCES users(id),
		title TEXT NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	)`).Error; err != nil {
		t.Fatalf("create partial tasks: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate partial schema: %v", err)
	}
	if !db.Migrator().HasColumn("tasks", "description") {
		t.Error("expected description column to be added")
	}
	if !db.Migrator().HasColumn("tasks", "deadline") {
		t.Error("expected deadline column to be added")
	}
}
