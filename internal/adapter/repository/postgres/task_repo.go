package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/execsec/backoffice/internal/domain"
)

// TaskRepository implements usecase.TaskRepository.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

const taskColumns = `
	id, tenant_id, title, description, status, priority, due_date,
	estimated_hours, actual_hours, assignee_id, created_by_id, meeting_id,
	created_at, updated_at
`

// Create inserts a task.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (
			tenant_id, title, description, status, priority, due_date,
			estimated_hours, actual_hours, assignee_id, created_by_id, meeting_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	return r.pool.QueryRow(ctx, query,
		task.TenantID,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		timePtrToDate(task.DueDate),
		decimalPtrToNumeric(task.EstimatedHours),
		decimalPtrToNumeric(task.ActualHours),
		task.AssigneeID,
		task.CreatedByID,
		task.MeetingID,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)
}

// GetByID retrieves a task by ID within a tenant.
func (r *TaskRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE tenant_id = $1 AND id = $2`

	task, err := scanTask(r.pool.QueryRow(ctx, query, tenantID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTaskNotFound
	}
	return task, err
}

// List retrieves the tenant's tasks, optionally narrowed to one status.
func (r *TaskRepository) List(ctx context.Context, tenantID int64, status domain.TaskStatus, limit, offset int) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE tenant_id = $1`
	args := []any{tenantID}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

// ListByMeeting retrieves the tasks spawned from one meeting.
func (r *TaskRepository) ListByMeeting(ctx context.Context, tenantID, meetingID int64) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE tenant_id = $1 AND meeting_id = $2 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, tenantID, meetingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

// Update replaces a task's writable fields.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks SET
			title = $3, description = $4, status = $5, priority = $6, due_date = $7,
			estimated_hours = $8, actual_hours = $9, assignee_id = $10,
			meeting_id = $11, updated_at = $12
		WHERE tenant_id = $1 AND id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		task.TenantID,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		timePtrToDate(task.DueDate),
		decimalPtrToNumeric(task.EstimatedHours),
		decimalPtrToNumeric(task.ActualHours),
		task.AssigneeID,
		task.MeetingID,
		task.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Delete removes a task.
func (r *TaskRepository) Delete(ctx context.Context, tenantID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		t                 domain.Task
		estimated, actual pgtype.Numeric
		dueDate           pgtype.Date
	)
	err := row.Scan(
		&t.ID,
		&t.TenantID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.Priority,
		&dueDate,
		&estimated,
		&actual,
		&t.AssigneeID,
		&t.CreatedByID,
		&t.MeetingID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.EstimatedHours = numericToDecimalPtr(estimated)
	t.ActualHours = numericToDecimalPtr(actual)
	if dueDate.Valid {
		due := dueDate.Time
		t.DueDate = &due
	}
	return &t, nil
}

func scanTasks(rows pgx.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
