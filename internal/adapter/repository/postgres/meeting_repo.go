package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/execsec/backoffice/internal/domain"
)

// MeetingRepository implements usecase.MeetingRepository.
type MeetingRepository struct {
	pool *pgxpool.Pool
}

// NewMeetingRepository creates a new MeetingRepository.
func NewMeetingRepository(pool *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{pool: pool}
}

const meetingColumns = `
	id, tenant_id, title, description, start_time, end_time, location,
	priority, status, executive_id, organizer_id, created_at, updated_at
`

// Create inserts a meeting.
func (r *MeetingRepository) Create(ctx context.Context, meeting *domain.Meeting) error {
	query := `
		INSERT INTO meetings (
			tenant_id, title, description, start_time, end_time, location,
			priority, status, executive_id, organizer_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	return r.pool.QueryRow(ctx, query,
		meeting.TenantID,
		meeting.Title,
		meeting.Description,
		meeting.StartTime,
		meeting.EndTime,
		meeting.Location,
		meeting.Priority,
		meeting.Status,
		meeting.ExecutiveID,
		meeting.OrganizerID,
		meeting.CreatedAt,
		meeting.UpdatedAt,
	).Scan(&meeting.ID)
}

// GetByID retrieves a meeting by ID within a tenant.
func (r *MeetingRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE tenant_id = $1 AND id = $2`

	meeting, err := scanMeeting(r.pool.QueryRow(ctx, query, tenantID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMeetingNotFound
	}
	return meeting, err
}

// List retrieves the tenant's meetings, optionally within a time window.
func (r *MeetingRepository) List(ctx context.Context, tenantID int64, from, to *time.Time, limit, offset int) ([]*domain.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE tenant_id = $1`
	args := []any{tenantID}

	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND start_time >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND start_time <= $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY start_time LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []*domain.Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// Update replaces a meeting's writable fields.
func (r *MeetingRepository) Update(ctx context.Context, meeting *domain.Meeting) error {
	query := `
		UPDATE meetings SET
			title = $3, description = $4, start_time = $5, end_time = $6,
			location = $7, priority = $8, status = $9, executive_id = $10,
			updated_at = $11
		WHERE tenant_id = $1 AND id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		meeting.TenantID,
		meeting.ID,
		meeting.Title,
		meeting.Description,
		meeting.StartTime,
		meeting.EndTime,
		meeting.Location,
		meeting.Priority,
		meeting.Status,
		meeting.ExecutiveID,
		meeting.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMeetingNotFound
	}
	return nil
}

// Delete removes a meeting.
func (r *MeetingRepository) Delete(ctx context.Context, tenantID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM meetings WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMeetingNotFound
	}
	return nil
}

func scanMeeting(row rowScanner) (*domain.Meeting, error) {
	var m domain.Meeting
	err := row.Scan(
		&m.ID,
		&m.TenantID,
		&m.Title,
		&m.Description,
		&m.StartTime,
		&m.EndTime,
		&m.Location,
		&m.Priority,
		&m.Status,
		&m.ExecutiveID,
		&m.OrganizerID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
