package repository

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// schemaMigration records one applied migration step.
type schemaMigration struct {
	ID        string `gorm:"primaryKey"`
	AppliedAt time.Time
}

func (schemaMigration) TableName() string { return "schema_migrations" }

type migration struct {
	id string
	up func(tx *gorm.DB) error
}

// migrations is the ordered schema history. Steps are additive only: new
// nullable columns arrive as new entries, and no entry is ever edited,
// reordered, or removed.
var migrations = []migration{
	{
		id: "0001_create_users",
		up: func(tx *gorm.DB) error {
			return tx.Exec(`CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT NOT NULL UNIQUE,
				hashed_password TEXT NOT NULL,
				created_at DATETIME,
				updated_at DATETIME
			)`).Error
		},
	},
	{
		id: "0002_create_tasks",
		up: func(tx *gorm.DB) error {
			// user_id stays nullable: rows created before accounts existed
			// are tolerated, not normal.
			if err := tx.Exec(`CREATE TABLE IF NOT EXISTS tasks (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER REFERENCES users(id),
				title TEXT NOT NULL,
				completed BOOLEAN NOT NULL DEFAULT 0,
				created_at DATETIME,
				updated_at DATETIME
			)`).Error; err != nil {
				return err
			}
			return tx.Exec(`CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks(user_id)`).Error
		},
	},
	{
		id: "0003_add_task_description",
		up: addNullableColumn("tasks", "description", "TEXT"),
	},
	{
		id: "0004_add_task_deadline",
		up: addNullableColumn("tasks", "deadline", "DATE"),
	},
}

// addNullableColumn appends a column, tolerating databases where an earlier
// deployment already added it outside the recorded history.
func addNullableColumn(table, column, sqlType string) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		if tx.Migrator().HasColumn(table, column) {
			return nil
		}
		return tx.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, sqlType)).Error
	}
}

// Migrate applies all unapplied steps in order, recording each in
// schema_migrations so it never reapplies. Safe against a database with
// full, partial, or no schema present, and safe to re-run concurrently at
// process startup since every step is itself idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("migrate bookkeeping table: %w", err)
	}

	for _, m := range migrations {
		applied, err := migrationApplied(db, m.id)
		if err != nil {
			return err
		}
		if applied {
			continue
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := m.up(tx); err != nil {
				return fmt.Errorf("apply %s: %w", m.id, err)
			}
			if err := tx.Create(&schemaMigration{ID: m.id, AppliedAt: time.Now()}).Error; err != nil {
				return fmt.Errorf("record %s: %w", m.id, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		log.Printf("applied migration %s", m.id)
	}

	return nil
}

func migrationApplied(db *gorm.DB, id string) (bool, error) {
	var count int64
	if err := db.Model(&schemaMigration{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check migration %s: %w", id, err)
	}
	return count > 0, nil
}
