package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaskStatus is the task workflow state.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
)

// IsValid reports whether the status is known.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskReview, TaskDone:
		return true
	}
	return false
}

// Priority orders tasks and meetings.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether the priority is known.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a secretariat to-do, optionally spawned from a meeting.
type Task struct {
	ID             int64
	TenantID       int64
	Title          string
	Description    string
	Status         TaskStatus
	Priority       Priority
	DueDate        *time.Time
	EstimatedHours *decimal.Decimal
	ActualHours    *decimal.Decimal
	AssigneeID     *int64
	CreatedByID    int64
	MeetingID      *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
