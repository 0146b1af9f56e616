package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/execsec/backoffice/internal/domain"
)

// NotificationRepository implements notification persistence.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

const notificationColumns = `
	id, tenant_id, channel, recipient, subject, body, status, error, created_at, sent_at
`

// Create inserts a notification record.
func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (
			id, tenant_id, channel, recipient, subject, body, status, error, created_at, sent_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		n.ID,
		n.TenantID,
		n.Channel,
		n.Recipient,
		n.Subject,
		n.Body,
		n.Status,
		n.Error,
		n.CreatedAt,
		n.SentAt,
	)
	return err
}

// GetByID retrieves a notification by ID within a tenant.
func (r *NotificationRepository) GetByID(ctx context.Context, tenantID int64, id string) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE tenant_id = $1 AND id = $2`

	n, err := scanNotification(r.pool.QueryRow(ctx, query, tenantID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotificationNotFound
	}
	return n, err
}

// List retrieves the tenant's notifications, newest first.
func (r *NotificationRepository) List(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// UpdateStatus records the dispatch outcome.
func (r *NotificationRepository) UpdateStatus(ctx context.Context, id string, status domain.NotificationStatus, errMsg string, sentAt *time.Time) error {
	query := `UPDATE notifications SET status = $2, error = $3, sent_at = $4 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status, errMsg, sentAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func scanNotification(row rowScanner) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(
		&n.ID,
		&n.TenantID,
		&n.Channel,
		&n.Recipient,
		&n.Subject,
		&n.Body,
		&n.Status,
		&n.Error,
		&n.CreatedAt,
		&n.SentAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
