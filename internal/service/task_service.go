package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"task-manager/internal/model"
	"task-manager/internal/repository"
)

// TaskInput carries the form fields for a new task. Description and Deadline
// are optional; an empty Description stays unset rather than becoming an
// empty string.
type TaskInput struct {
	Title       string
	Description string
	Deadline    string // YYYY-MM-DD, empty when absent
}

// TaskService wraps task-related business logic. Every operation acts on
// behalf of a resolved user; a nil user fails with ErrUnauthenticated.
type TaskService struct {
	taskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// List partitions the user's tasks by completion state, each half in
// insertion order.
func (s *TaskService) List(ctx context.Context, user *model.User) (pending, completed []model.Task, err error) {
	if user == nil {
		return nil, nil, ErrUnauthenticated
	}

	pending, err = s.taskRepo.ListByOwner(ctx, user.ID, false)
	if err != nil {
		return nil, nil, err
	}
	completed, err = s.taskRepo.ListByOwner(ctx, user.ID, true)
	if err != nil {
		return nil, nil, err
	}
	return pending, completed, nil
}

func (s *TaskService) Create(ctx context.Context, user *model.User, input TaskInput) (*model.Task, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	task := model.Task{
		UserID: user.ID,
		Title:  input.Title,
	}
	if input.Description != "" {
		description := input.Description
		task.Description = &description
	}
	if input.Deadline != "" {
		deadline, err := time.ParseInLocation("2006-01-02", input.Deadline, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: deadline must be a YYYY-MM-DD date", ErrValidation)
		}
		task.Deadline = &deadline
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Complete marks a task done. Completing an already-completed task is a
// no-op success. There is no path back to pending.
func (s *TaskService) Complete(ctx context.Context, user *model.User, taskID uint) error {
	if user == nil {
		return ErrUnauthenticated
	}

	task, err := s.taskRepo.FindByOwner(ctx, user.ID, taskID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrTaskNotFound
	case err != nil:
		return err
	}

	if task.Completed {
		return nil
	}
	return s.taskRepo.MarkCompleted(ctx, task)
}

// Delete removes a task entirely.
func (s *TaskService) Delete(ctx context.Context, user *model.User, taskID uint) error {
	if user == nil {
		return ErrUnauthenticated
	}

	err := s.taskRepo.Delete(ctx, user.ID, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTaskNotFound
	}
	return err
}
