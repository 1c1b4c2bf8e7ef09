package postgres

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"

	"github.com/dayboard/dayboard-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

// TaskRepository stores tasks scoped by owner email. Content is kept
// base64-encoded at rest and decoded on the way out.
type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) Create(ctx context.Context, ownerEmail string, task model.Task) error {
	query := `INSERT INTO tasks (id, owner_email, content, completed, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())`

	_, err := r.db.Exec(ctx, query,
		task.ID, ownerEmail, encodeContent(task.Content), task.Completed,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]model.Task, error) {
	query := `SELECT id, content, completed, created_at, updated_at
			  FROM tasks WHERE owner_email = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var task model.Task
		var content string
		if err := rows.Scan(&task.ID, &content, &task.Completed, &task.CreatedAt, &task.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		task.Content, err = decodeContent(content)
		if err != nil {
			return nil, fmt.Errorf("failed to decode task content: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) UpdateContent(ctx context.Context, ownerEmail string, id uuid.UUID, content string) error {
	query := `UPDATE tasks SET content = $3, updated_at = NOW() WHERE owner_email = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, ownerEmail, id, encodeContent(content))
	if err != nil {
		return fmt.Errorf("failed to update task content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *TaskRepository) UpdateCompletion(ctx context.Context, ownerEmail string, id uuid.UUID, completed bool) error {
	query := `UPDATE tasks SET completed = $3, updated_at = NOW() WHERE owner_email = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, ownerEmail, id, completed)
	if err != nil {
		return fmt.Errorf("failed to update task completion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, ownerEmail string, id uuid.UUID) error {
	query := `DELETE FROM tasks WHERE owner_email = $1 AND id = $2`

	tag, err := r.db.Exec(ctx, query, ownerEmail, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func encodeContent(content string) string {
	return base64.StdEncoding.EncodeToString([]byte(content))
}

func decodeContent(stored string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
