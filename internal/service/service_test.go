package service

import (
	"context"
	"path/filepath"
	"testing"

	"task-manager/internal/model"
	"task-manager/internal/repository"
)

type testEnv struct {
	auth  *AuthService
	tasks *TaskService
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	db, err := repository.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return testEnv{
		auth:  NewAuthService(repository.NewUserRepository(db)),
		tasks: NewTaskService(repository.NewTaskRepository(db)),
	}
}

func (e testEnv) registerUser(t *testing.T, username string) *model.User {
	t.Helper()
	user, err := e.auth.Register(context.Background(), username, "secret")
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}
