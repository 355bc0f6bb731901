package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/JustinAIDistuptors/taskmaster-mcp/internal/task"
)

// Handler runs the five task operations against a repo. Every outcome —
// success or logical failure — is a JSON-serializable payload; logical
// failures are {"error": ...} maps, never transport errors.
type Handler struct {
	repo   task.Repo
	logger *zap.Logger
}

func NewHandler(repo task.Repo, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, logger: logger}
}

func errorPayload(msg string) map[string]any {
	return map[string]any{"error": msg}
}

func notFoundPayload(taskID string) map[string]any {
	return errorPayload(fmt.Sprintf("Task with ID %s not found", taskID))
}

// Dispatch decodes the parameter object for op and runs it. params must be a
// JSON object; each operation picks out the fields it recognizes and ignores
// the rest.
func (h *Handler) Dispatch(ctx context.Context, op Op, params json.RawMessage) any {
	switch op {
	case OpListTasks:
		return h.listTasks(ctx)
	case OpGetTask:
		return h.getTask(ctx, params)
	case OpCreateTask:
		return h.createTask(ctx, params)
	case OpUpdateTask:
		return h.updateTask(ctx, params)
	case OpDeleteTask:
		return h.deleteTask(ctx, params)
	default:
		return errorPayload(fmt.Sprintf("Function %s not supported", op))
	}
}

func (h *Handler) listTasks(ctx context.Context) any {
	tasks, err := h.repo.List(ctx)
	if err != nil {
		return errorPayload(err.Error())
	}
	return map[string]any{"tasks": tasks}
}

type getTaskRequest struct {
	TaskID string `json:"task_id"`
}

func (h *Handler) getTask(ctx context.Context, params json.RawMessage) any {
	var req getTaskRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return errorPayload(err.Error())
	}
	if req.TaskID == "" {
		return errorPayload("task_id parameter is required")
	}

	t, err := h.repo.Get(ctx, req.TaskID)
	if errors.Is(err, task.ErrNotFound) {
		return notFoundPayload(req.TaskID)
	}
	if err != nil {
		return errorPayload(err.Error())
	}
	return map[string]any{"task": t}
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
}

func (h *Handler) createTask(ctx context.Context, params json.RawMessage) any {
	var req createTaskRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return errorPayload(err.Error())
	}
	if req.Title == "" {
		return errorPayload("title parameter is required")
	}

	t, err := h.repo.Create(ctx, req.Title, req.Description, req.Priority, req.DueDate)
	if err != nil {
		return errorPayload(err.Error())
	}

	h.logger.Info("task created", zap.String("task_id", t.ID), zap.String("title", t.Title))

	return map[string]any{"task": t, "task_id": t.ID}
}

type updateTaskRequest struct {
	TaskID      string  `json:"task_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
}

func (h *Handler) updateTask(ctx context.Context, params json.RawMessage) any {
	var req updateTaskRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return errorPayload(err.Error())
	}
	if req.TaskID == "" {
		return errorPayload("task_id parameter is required")
	}

	t, err := h.repo.Update(ctx, req.TaskID, task.Patch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if errors.Is(err, task.ErrNotFound) {
		return notFoundPayload(req.TaskID)
	}
	if err != nil {
		return errorPayload(err.Error())
	}

	h.logger.Info("task updated", zap.String("task_id", t.ID))

	return map[string]any{"task": t}
}

type deleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

func (h *Handler) deleteTask(ctx context.Context, params json.RawMessage) any {
	var req deleteTaskRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return errorPayload(err.Error())
	}
	if req.TaskID == "" {
		return errorPayload("task_id parameter is required")
	}

	t, err := h.repo.Delete(ctx, req.TaskID)
	if errors.Is(err, task.ErrNotFound) {
		return notFoundPayload(req.TaskID)
	}
	if err != nil {
		return errorPayload(err.Error())
	}

	h.logger.Info("task deleted", zap.String("task_id", t.ID))

	return map[string]any{"success": true, "deleted_task": t}
}
