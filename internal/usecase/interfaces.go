package usecase

import (
	"context"
	"io"
	"time"

	"github.com/execsec/backoffice/internal/domain"
)

// TenantRepository defines data access for tenants.
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id int64) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	List(ctx context.Context) ([]*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Delete(ctx context.Context, tx Transaction, id int64) error
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, tenantID int64, username string) (*domain.User, error)
	List(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

// ExecutiveRepository defines data access for executives.
type ExecutiveRepository interface {
	Create(ctx context.Context, executive *domain.Executive) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Executive, error)
	List(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Executive, error)
	Update(ctx context.Context, executive *domain.Executive) error
	Delete(ctx context.Context, tenantID, id int64) error
	DeleteByTenant(ctx context.Context, tx Transaction, tenantID int64) error
}

// PayableRepository defines data access for accounts payable.
type PayableRepository interface {
	Create(ctx context.Context, payable *domain.Payable) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Payable, error)
	List(ctx context.Context, tenantID int64, filter domain.PayableFilter, limit, offset int) ([]*domain.Payable, error)
	ListAll(ctx context.Context, tenantID int64) ([]*domain.Payable, error)
	Update(ctx context.Context, payable *domain.Payable) error
	Delete(ctx context.Context, tenantID, id int64) error
	DeleteByTenant(ctx context.Context, tx Transaction, tenantID int64) error
}

// TaskRepository defines data access for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Task, error)
	List(ctx context.Context, tenantID int64, status domain.TaskStatus, limit, offset int) ([]*domain.Task, error)
	ListByMeeting(ctx context.Context, tenantID, meetingID int64) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, tenantID, id int64) error
}

// MeetingRepository defines data access for meetings.
type MeetingRepository interface {
	Create(ctx context.Context, meeting *domain.Meeting) error
	GetByID(ctx context.Context, tenantID, id int64) (*domain.Meeting, error)
	List(ctx context.Context, tenantID int64, from, to *time.Time, limit, offset int) ([]*domain.Meeting, error)
	Update(ctx context.Context, meeting *domain.Meeting) error
	Delete(ctx context.Context, tenantID, id int64) error
}

// CatalogRepository defines data access for the flat reference registers.
// Each entity has its own table but the operations are uniform.
type CatalogRepository interface {
	CreateDepartment(ctx context.Context, d *domain.Department) error
	ListDepartments(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Department, error)
	DeleteDepartment(ctx context.Context, tenantID, id int64) error

	CreateJobRole(ctx context.Context, r *domain.JobRole) error
	ListJobRoles(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.JobRole, error)
	DeleteJobRole(ctx context.Context, tenantID, id int64) error

	CreateCollaborator(ctx context.Context, c *domain.Collaborator) error
	ListCollaborators(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Collaborator, error)
	DeleteCollaborator(ctx context.Context, tenantID, id int64) error

	CreateAsset(ctx context.Context, a *domain.Asset) error
	ListAssets(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Asset, error)
	DeleteAsset(ctx context.Context, tenantID, id int64) error

	CreateCostCenter(ctx context.Context, c *domain.CostCenter) error
	ListCostCenters(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.CostCenter, error)
	DeleteCostCenter(ctx context.Context, tenantID, id int64) error
}

// NotificationRepository defines data access for outbound notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, tenantID int64, id string) (*domain.Notification, error)
	List(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Notification, error)
	UpdateStatus(ctx context.Context, id string, status domain.NotificationStatus, errMsg string, sentAt *time.Time) error
}

// PersonStore keeps PF/PJ person records in a namespaced key-value store.
type PersonStore interface {
	Put(ctx context.Context, person *domain.Person) error
	Get(ctx context.Context, tenantID int64, kind domain.PersonKind, id string) (*domain.Person, error)
	List(ctx context.Context, tenantID int64, kind domain.PersonKind) ([]*domain.Person, error)
	Delete(ctx context.Context, tenantID int64, kind domain.PersonKind, id string) error
}

// ExportStore tracks asynchronous export jobs and their progress.
type ExportStore interface {
	Put(ctx context.Context, export *domain.Export, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.Export, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Export, error)
}

// ObjectStore is the document and spreadsheet blob backend.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// Mailer dispatches notification emails.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ProgressNotifier pushes export progress events to connected clients.
type ProgressNotifier interface {
	Notify(userID int64, event any)
}

// TokenIssuer mints and validates access tokens.
type TokenIssuer interface {
	Issue(user *domain.User, tenant *domain.Tenant) (string, time.Time, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
	// WithinTransaction runs fn in a transaction, committing on success
	// and rolling back on error. Implementations may rerun fn on
	// transient conflicts, so fn must be safe to repeat.
	WithinTransaction(ctx context.Context, fn func(tx Transaction) error) error
}

// IDGenerator generates unique IDs for records keyed by string.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
