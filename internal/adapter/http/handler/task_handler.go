package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/execsec/backoffice/internal/adapter/http/dto"
	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
)

// TaskService defines the behavior needed by TaskHandler.
type TaskService interface {
	CreateTask(ctx context.Context, tenantID, createdByID int64, input usecase.TaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, tenantID, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context, tenantID int64, status string, limit, offset int) ([]*domain.Task, error)
	ListMeetingTasks(ctx context.Context, tenantID, meetingID int64) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, tenantID, id int64, input usecase.TaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, tenantID, id int64) error
}

// TaskHandler handles task HTTP requests.
type TaskHandler struct {
	taskUC TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskUC TaskService) *TaskHandler {
	return &TaskHandler{taskUC: taskUC}
}

// Create records a new task owned by the caller.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, ok := requestScope(w, r)
	if !ok {
		return
	}

	var req dto.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	task, err := h.taskUC.CreateTask(r.Context(), tenantID, userID, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create task", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TaskFromDomain(task))
}

// Get retrieves a task by ID.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task ID", err.Error())
		return
	}

	task, err := h.taskUC.GetTask(r.Context(), tenantID, id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get task", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TaskFromDomain(task))
}

// List lists the tenant's tasks, optionally filtered by status.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	status := r.URL.Query().Get("status")
	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	tasks, err := h.taskUC.ListTasks(r.Context(), tenantID, status, limit, offset)
	if err != nil {
		code := mapDomainError(err)
		writeError(w, code, "failed to list tasks", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TasksFromDomain(tasks))
}

// ListForMeeting lists the tasks attached to one meeting.
func (h *TaskHandler) ListForMeeting(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	meetingID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid meeting ID", err.Error())
		return
	}

	tasks, err := h.taskUC.ListMeetingTasks(r.Context(), tenantID, meetingID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list meeting tasks", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TasksFromDomain(tasks))
}

// Update replaces a task's writable fields.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task ID", err.Error())
		return
	}

	var req dto.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	task, err := h.taskUC.UpdateTask(r.Context(), tenantID, id, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update task", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TaskFromDomain(task))
}

// Delete removes a task.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task ID", err.Error())
		return
	}

	if err := h.taskUC.DeleteTask(r.Context(), tenantID, id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete task", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
