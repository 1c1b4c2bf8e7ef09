package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dayboard/dayboard-server/internal/apierrors"
	"github.com/dayboard/dayboard-server/internal/logger"
	"github.com/dayboard/dayboard-server/internal/model"
)

// Task manages the authenticated user's task list. Every mutation returns
// the refreshed full list, which is what the client renders.
type Task struct {
	tasks  model.TaskStore
	logger *logger.Logger
}

// NewTask creates the task service.
func NewTask(tasks model.TaskStore, logger *logger.Logger) *Task {
	return &Task{tasks: tasks, logger: logger}
}

// Add creates a task for the identity and returns the updated list.
func (s *Task) Add(ctx context.Context, identity model.Identity, content string) ([]model.Task, error) {
	task := model.Task{
		ID:      uuid.New(),
		Content: content,
	}

	if err := s.tasks.Create(ctx, identity.Email, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Debug("Task service: task added", "email", identity.Email, "task_id", task.ID)

	return s.List(ctx, identity)
}

// List returns all of the identity's tasks in creation order.
func (s *Task) List(ctx context.Context, identity model.Identity) ([]model.Task, error) {
	tasks, err := s.tasks.ListByOwner(ctx, identity.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateContent rewrites a task's content and returns the updated list.
func (s *Task) UpdateContent(ctx context.Context, identity model.Identity, id uuid.UUID, content string) ([]model.Task, error) {
	err := s.tasks.UpdateContent(ctx, identity.Email, id, content)
	if errors.Is(err, model.ErrNotFound) {
		return nil, apierrors.NewErrTaskNotFound(id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.List(ctx, identity)
}

// UpdateCompletion toggles a task's completed flag and returns the updated list.
func (s *Task) UpdateCompletion(ctx context.Context, identity model.Identity, id uuid.UUID, completed bool) ([]model.Task, error) {
	err := s.tasks.UpdateCompletion(ctx, identity.Email, id, completed)
	if errors.Is(err, model.ErrNotFound) {
		return nil, apierrors.NewErrTaskNotFound(id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update task completion: %w", err)
	}

	return s.List(ctx, identity)
}

// Delete removes a task and returns the updated list.
func (s *Task) Delete(ctx context.Context, identity model.Identity, id uuid.UUID) ([]model.Task, error) {
	err := s.tasks.Delete(ctx, identity.Email, id)
	if errors.Is(err, model.ErrNotFound) {
		return nil, apierrors.NewErrTaskNotFound(id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	return s.List(ctx, identity)
}
