package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dayboard/dayboard-server/internal/apierrors"
	"github.com/dayboard/dayboard-server/internal/logger"
	"github.com/dayboard/dayboard-server/internal/model"
)

// TaskService defines the task list operations. Every mutation returns the
// refreshed full list.
type TaskService interface {
	Add(ctx context.Context, identity model.Identity, content string) ([]model.Task, error)
	List(ctx context.Context, identity model.Identity) ([]model.Task, error)
	UpdateContent(ctx context.Context, identity model.Identity, id uuid.UUID, content string) ([]model.Task, error)
	UpdateCompletion(ctx context.Context, identity model.Identity, id uuid.UUID, completed bool) ([]model.Task, error)
	Delete(ctx context.Context, identity model.Identity, id uuid.UUID) ([]model.Task, error)
}

// Task handles the HTTP endpoints for the user's task list.
type Task struct {
	taskService    TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		taskService:    taskService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type taskCreateRequest struct {
	Content string `json:"content"`
}

type taskUpdateRequest struct {
	Content   *string `json:"content,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

type taskResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type taskListResponse struct {
	Tasks []taskResponse `json:"tasks"`
}

func toTaskListResponse(tasks []model.Task) taskListResponse {
	out := taskListResponse{Tasks: make([]taskResponse, 0, len(tasks))}
	for _, task := range tasks {
		out.Tasks = append(out.Tasks, taskResponse{
			ID:        task.ID.String(),
			Content:   task.Content,
			Completed: task.Completed,
			CreatedAt: task.CreatedAt,
			UpdatedAt: task.UpdatedAt,
		})
	}
	return out
}

// List handles GET /tasks.
func (h *Task) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentity(r.Context())
	if !ok {
		handleError(w, apierrors.NewErrMissingToken())
		return
	}

	tasks, err := h.taskService.List(r.Context(), identity)
	if err != nil {
		h.logger.Error("Task handler: list failed",
			"email", identity.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskListResponse(tasks))
}

// Create handles POST /tasks.
func (h *Task) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentity(r.Context())
	if !ok {
		handleError(w, apierrors.NewErrMissingToken())
		return
	}

	var req taskCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, apierrors.NewErrInvalidBody())
		return
	}

	tasks, err := h.taskService.Add(r.Context(), identity, req.Content)
	if err != nil {
		h.logger.Error("Task handler: create failed",
			"email", identity.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskListResponse(tasks))
}

// Update handles PATCH /tasks/{id}. Content and completion can be changed
// independently.
func (h *Task) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentity(r.Context())
	if !ok {
		handleError(w, apierrors.NewErrMissingToken())
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		handleError(w, apierrors.NewErrTaskNotFound(mux.Vars(r)["id"]))
		return
	}

	var req taskUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, apierrors.NewErrInvalidBody())
		return
	}
	if req.Content == nil && req.Completed == nil {
		handleError(w, apierrors.NewErrInvalidBody())
		return
	}

	var tasks []model.Task
	if req.Content != nil {
		tasks, err = h.taskService.UpdateContent(r.Context(), identity, id, *req.Content)
	}
	if err == nil && req.Completed != nil {
		tasks, err = h.taskService.UpdateCompletion(r.Context(), identity, id, *req.Completed)
	}
	if err != nil {
		h.logger.Error("Task handler: update failed",
			"email", identity.Email,
			"task_id", id,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskListResponse(tasks))
}

// Delete handles DELETE /tasks/{id}.
func (h *Task) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentity(r.Context())
	if !ok {
		handleError(w, apierrors.NewErrMissingToken())
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		handleError(w, apierrors.NewErrTaskNotFound(mux.Vars(r)["id"]))
		return
	}

	tasks, err := h.taskService.Delete(r.Context(), identity, id)
	if err != nil {
		h.logger.Error("Task handler: delete failed",
			"email", identity.Email,
			"task_id", id,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskListResponse(tasks))
}
