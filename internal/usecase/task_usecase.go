package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/execsec/backoffice/internal/domain"
)

// TaskUseCase handles secretariat task workflows.
type TaskUseCase struct {
	taskRepo    TaskRepository
	meetingRepo MeetingRepository
}

// NewTaskUseCase creates a new TaskUseCase.
func NewTaskUseCase(taskRepo TaskRepository, meetingRepo MeetingRepository) *TaskUseCase {
	return &TaskUseCase{taskRepo: taskRepo, meetingRepo: meetingRepo}
}

// TaskInput carries the writable fields of a task.
type TaskInput struct {
	Title          string
	Description    string
	Status         string
	Priority       string
	DueDate        *time.Time
	EstimatedHours *decimal.Decimal
	ActualHours    *decimal.Decimal
	AssigneeID     *int64
	MeetingID      *int64
}

// CreateTask records a new task. Tasks may be attached to a meeting, in which
// case the meeting must exist in the same tenant.
func (uc *TaskUseCase) CreateTask(ctx context.Context, tenantID, createdByID int64, input TaskInput) (*domain.Task, error) {
	if err := domain.ValidateName(input.Title); err != nil {
		return nil, err
	}
	status, priority, err := taskStatusAndPriority(input.Status, input.Priority)
	if err != nil {
		return nil, err
	}
	if input.MeetingID != nil {
		if _, err := uc.meetingRepo.GetByID(ctx, tenantID, *input.MeetingID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	task := &domain.Task{
		TenantID:       tenantID,
		Title:          input.Title,
		Description:    input.Description,
		Status:         status,
		Priority:       priority,
		DueDate:        input.DueDate,
		EstimatedHours: input.EstimatedHours,
		ActualHours:    input.ActualHours,
		AssigneeID:     input.AssigneeID,
		CreatedByID:    createdByID,
		MeetingID:      input.MeetingID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetTask retrieves a task by ID within a tenant.
func (uc *TaskUseCase) GetTask(ctx context.Context, tenantID, id int64) (*domain.Task, error) {
	return uc.taskRepo.GetByID(ctx, tenantID, id)
}

// ListTasks lists the tenant's tasks, optionally narrowed to one status.
func (uc *TaskUseCase) ListTasks(ctx context.Context, tenantID int64, status string, limit, offset int) ([]*domain.Task, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	var s domain.TaskStatus
	if status != "" {
		s = domain.TaskStatus(status)
		if !s.IsValid() {
			return nil, errors.New("invalid task status")
		}
	}
	return uc.taskRepo.List(ctx, tenantID, s, limit, offset)
}

// ListMeetingTasks lists the tasks spawned from one meeting.
func (uc *TaskUseCase) ListMeetingTasks(ctx context.Context, tenantID, meetingID int64) ([]*domain.Task, error) {
	return uc.taskRepo.ListByMeeting(ctx, tenantID, meetingID)
}

// UpdateTask replaces the writable fields of a task.
func (uc *TaskUseCase) UpdateTask(ctx context.Context, tenantID, id int64, input TaskInput) (*domain.Task, error) {
	if err := domain.ValidateName(input.Title); err != nil {
		return nil, err
	}
	status, priority, err := taskStatusAndPriority(input.Status, input.Priority)
	if err != nil {
		return nil, err
	}
	task, err := uc.taskRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = status
	task.Priority = priority
	task.DueDate = input.DueDate
	task.EstimatedHours = input.EstimatedHours
	task.ActualHours = input.ActualHours
	task.AssigneeID = input.AssigneeID
	task.MeetingID = input.MeetingID
	task.UpdatedAt = time.Now().UTC()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task.
func (uc *TaskUseCase) DeleteTask(ctx context.Context, tenantID, id int64) error {
	return uc.taskRepo.Delete(ctx, tenantID, id)
}

func taskStatusAndPriority(rawStatus, rawPriority string) (domain.TaskStatus, domain.Priority, error) {
	status := domain.TaskStatus(rawStatus)
	if rawStatus == "" {
		status = domain.TaskTodo
	}
	if !status.IsValid() {
		return "", "", errors.New("invalid task status")
	}
	priority := domain.Priority(rawPriority)
	if rawPriority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return "", "", errors.New("invalid priority")
	}
	return status, priority, nil
}
