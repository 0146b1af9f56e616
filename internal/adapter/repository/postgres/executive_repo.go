package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
)

// ExecutiveRepository implements usecase.ExecutiveRepository.
type ExecutiveRepository struct {
	pool *pgxpool.Pool
}

// NewExecutiveRepository creates a new ExecutiveRepository.
func NewExecutiveRepository(pool *pgxpool.Pool) *ExecutiveRepository {
	return &ExecutiveRepository{pool: pool}
}

// Create inserts an executive.
func (r *ExecutiveRepository) Create(ctx context.Context, executive *domain.Executive) error {
	query := `
		INSERT INTO executives (tenant_id, name, job_title, profile, company)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return r.pool.QueryRow(ctx, query,
		executive.TenantID,
		executive.Name,
		executive.JobTitle,
		executive.Profile,
		executive.Company,
	).Scan(&executive.ID)
}

// GetByID retrieves an executive by ID within a tenant.
func (r *ExecutiveRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Executive, error) {
	query := `
		SELECT e.id, e.tenant_id, t.name, e.name, e.job_title, e.profile, e.company
		FROM executives e
		JOIN tenants t ON t.id = e.tenant_id
		WHERE e.tenant_id = $1 AND e.id = $2
	`

	var e domain.Executive
	err := r.pool.QueryRow(ctx, query, tenantID, id).Scan(
		&e.ID, &e.TenantID, &e.Tenant, &e.Name, &e.JobTitle, &e.Profile, &e.Company,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrExecutiveNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List retrieves the tenant's executives with pagination.
func (r *ExecutiveRepository) List(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Executive, error) {
	query := `
		SELECT e.id, e.tenant_id, t.name, e.name, e.job_title, e.profile, e.company
		FROM executives e
		JOIN tenants t ON t.id = e.tenant_id
		WHERE e.tenant_id = $1
		ORDER BY e.name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var executives []*domain.Executive
	for rows.Next() {
		var e domain.Executive
		if err := rows.Scan(&e.ID, &e.TenantID, &e.Tenant, &e.Name, &e.JobTitle, &e.Profile, &e.Company); err != nil {
			return nil, err
		}
		executives = append(executives, &e)
	}
	return executives, rows.Err()
}

// Update replaces an executive's writable fields.
func (r *ExecutiveRepository) Update(ctx context.Context, executive *domain.Executive) error {
	query := `
		UPDATE executives
		SET name = $3, job_title = $4, profile = $5, company = $6
		WHERE tenant_id = $1 AND id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		executive.TenantID,
		executive.ID,
		executive.Name,
		executive.JobTitle,
		executive.Profile,
		executive.Company,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExecutiveNotFound
	}
	return nil
}

// Delete removes an executive.
func (r *ExecutiveRepository) Delete(ctx context.Context, tenantID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM executives WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExecutiveNotFound
	}
	return nil
}

// DeleteByTenant removes every executive of a tenant inside a transaction.
func (r *ExecutiveRepository) DeleteByTenant(ctx context.Context, tx usecase.Transaction, tenantID int64) error {
	pgxTx := tx.(*Tx).PgxTx()
	_, err := pgxTx.Exec(ctx, `DELETE FROM executives WHERE tenant_id = $1`, tenantID)
	return err
}
