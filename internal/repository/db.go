package repository

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	openAttempts   = 10
	openRetryDelay = 2 * time.Second
)

// Open opens the SQLite database and applies pending migrations before
// returning. Startup is the only place retries happen: up to openAttempts
// tries with a fixed delay, then the last error is surfaced as fatal.
func Open(dsn string) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= openAttempts; attempt++ {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.Printf("db open failed (attempt %d/%d): %v", attempt, openAttempts, err)
		if attempt < openAttempts {
			time.Sleep(openRetryDelay)
		}
	}
	return nil, fmt.Errorf("open db after %d attempts: %w", openAttempts, lastErr)
}

func open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "task_manager.db"
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// ensureDirForSQLite creates parent dir for SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	// Ignore DSNs with explicit mode=memory or network.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	// Strip file: prefix if present.
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
