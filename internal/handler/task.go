package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/task-tracker/internal/model"
	"github.com/iliyamo/task-tracker/internal/queue"
	"github.com/iliyamo/task-tracker/internal/repository"
)

// TaskHandler implements the ownership-scoped task CRUD endpoints. Every
// handler takes the caller identity injected by BearerAuth; the store scopes
// each lookup by owner, so a foreign task is reported as not found rather
// than forbidden.
type TaskHandler struct {
	Tasks  TaskStore
	Events EventSink
}

func NewTaskHandler(tasks TaskStore, events EventSink) *TaskHandler {
	return &TaskHandler{Tasks: tasks, Events: events}
}

type createTaskReq struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

type updateTaskReq struct {
	Title  *string `json:"title"`
	Status *string `json:"status"`
}

// Create handles POST /tasks. Status defaults to pending and must be one of
// the allowed values when provided.
func (h *TaskHandler) Create(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}
	var req createTaskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Title is required"})
	}
	status := req.Status
	if status == "" {
		status = model.StatusPending
	}
	if !model.ValidStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid task status"})
	}

	t := &model.Task{Title: req.Title, Status: status, OwnerID: uid}
	if err := h.Tasks.Create(c.Request().Context(), t); err != nil {
		log.Printf("task create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	h.Events.emit(c.Request().Context(), queue.ActivityEvent{
		Type:       queue.EventTaskCreated,
		UserID:     uid,
		TaskID:     t.ID,
		Title:      t.Title,
		Status:     t.Status,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, t)
}

// List handles GET /tasks and returns the caller's tasks, newest first.
func (h *TaskHandler) List(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}
	tasks, err := h.Tasks.ListByOwner(c.Request().Context(), uid)
	if err != nil {
		log.Printf("task list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, tasks)
}

// Update handles PUT /tasks/:id. Only provided fields are applied; owner is
// immutable. The store resolves id and owner in one atomic step.
func (h *TaskHandler) Update(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid task id"})
	}
	var req updateTaskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if req.Title != nil && *req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Title is required"})
	}
	if req.Status != nil && !model.ValidStatus(*req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid task status"})
	}

	t, err := h.Tasks.UpdateByIDAndOwner(c.Request().Context(), id, uid, req.Title, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Task not found"})
		}
		log.Printf("task update failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	h.Events.emit(c.Request().Context(), queue.ActivityEvent{
		Type:       queue.EventTaskUpdated,
		UserID:     uid,
		TaskID:     t.ID,
		Title:      t.Title,
		Status:     t.Status,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /tasks/:id. Find-and-remove happens in one store
// operation; deleting an absent or already-deleted task returns 404.
func (h *TaskHandler) Delete(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid task id"})
	}

	if err := h.Tasks.DeleteByIDAndOwner(c.Request().Context(), id, uid); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Task not found"})
		}
		log.Printf("task delete failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	h.Events.emit(c.Request().Context(), queue.ActivityEvent{
		Type:       queue.EventTaskDeleted,
		UserID:     uid,
		TaskID:     id,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted successfully"})
}
