package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskStore defines persistence operations for user-owned tasks.
type TaskStore interface {
	Create(ctx context.Context, ownerEmail string, task Task) error
	ListByOwner(ctx context.Context, ownerEmail string) ([]Task, error)
	UpdateContent(ctx context.Context, ownerEmail string, id uuid.UUID, content string) error
	UpdateCompletion(ctx context.Context, ownerEmail string, id uuid.UUID, completed bool) error
	Delete(ctx context.Context, ownerEmail string, id uuid.UUID) error
}

// Task is a single to-do item owned by a user.
type Task struct {
	ID        uuid.UUID
	Content   string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
