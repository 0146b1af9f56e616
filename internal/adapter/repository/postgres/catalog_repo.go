package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/execsec/backoffice/internal/domain"
)

// CatalogRepository implements usecase.CatalogRepository over the five flat
// reference tables. Every table carries tenant_id and joins tenants for the
// display name.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) CreateDepartment(ctx context.Context, d *domain.Department) error {
	query := `
		INSERT INTO departments (tenant_id, name, description, registrar, registered_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query, d.TenantID, d.Name, d.Description, d.Registrar, d.RegisteredAt).Scan(&d.ID)
}

func (r *CatalogRepository) ListDepartments(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Department, error) {
	query := `
		SELECT d.id, d.tenant_id, t.name, d.name, d.description, d.registrar, d.registered_at
		FROM departments d
		JOIN tenants t ON t.id = d.tenant_id
		WHERE d.tenant_id = $1
		ORDER BY d.name
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Department
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.TenantID, &d.Tenant, &d.Name, &d.Description, &d.Registrar, &d.RegisteredAt); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) DeleteDepartment(ctx context.Context, tenantID, id int64) error {
	return r.deleteFrom(ctx, "departments", tenantID, id)
}

func (r *CatalogRepository) CreateJobRole(ctx context.Context, jr *domain.JobRole) error {
	query := `
		INSERT INTO job_roles (tenant_id, name, description, department, registrar, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query, jr.TenantID, jr.Name, jr.Description, jr.Department, jr.Registrar, jr.RegisteredAt).Scan(&jr.ID)
}

func (r *CatalogRepository) ListJobRoles(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.JobRole, error) {
	query := `
		SELECT j.id, j.tenant_id, t.name, j.name, j.description, j.department, j.registrar, j.registered_at
		FROM job_roles j
		JOIN tenants t ON t.id = j.tenant_id
		WHERE j.tenant_id = $1
		ORDER BY j.name
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.JobRole
	for rows.Next() {
		var j domain.JobRole
		if err := rows.Scan(&j.ID, &j.TenantID, &j.Tenant, &j.Name, &j.Description, &j.Department, &j.Registrar, &j.RegisteredAt); err != nil {
			return nil, err
		}
		out = append(out, &j)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) DeleteJobRole(ctx context.Context, tenantID, id int64) error {
	return r.deleteFrom(ctx, "job_roles", tenantID, id)
}

func (r *CatalogRepository) CreateCollaborator(ctx context.Context, c *domain.Collaborator) error {
	query := `
		INSERT INTO collaborators (tenant_id, name, description, job_role, registrar, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query, c.TenantID, c.Name, c.Description, c.JobRole, c.Registrar, c.RegisteredAt).Scan(&c.ID)
}

func (r *CatalogRepository) ListCollaborators(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Collaborator, error) {
	query := `
		SELECT c.id, c.tenant_id, t.name, c.name, c.description, c.job_role, c.registrar, c.registered_at
		FROM collaborators c
		JOIN tenants t ON t.id = c.tenant_id
		WHERE c.tenant_id = $1
		ORDER BY c.name
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Collaborator
	for rows.Next() {
		var c domain.Collaborator
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Tenant, &c.Name, &c.Description, &c.JobRole, &c.Registrar, &c.RegisteredAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) DeleteCollaborator(ctx context.Context, tenantID, id int64) error {
	return r.deleteFrom(ctx, "collaborators", tenantID, id)
}

func (r *CatalogRepository) CreateAsset(ctx context.Context, a *domain.Asset) error {
	query := `
		INSERT INTO assets (
			tenant_id, name, internal_code, plate, city, state, cost_center,
			owner, responsible, assigned_to, company
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		a.TenantID, a.Name, a.InternalCode, a.Plate, a.City, a.State,
		a.CostCenter, a.Owner, a.Responsible, a.AssignedTo, a.Company,
	).Scan(&a.ID)
}

func (r *CatalogRepository) ListAssets(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Asset, error) {
	query := `
		SELECT a.id, a.tenant_id, t.name, a.name, a.internal_code, a.plate, a.city,
		       a.state, a.cost_center, a.owner, a.responsible, a.assigned_to, a.company
		FROM assets a
		JOIN tenants t ON t.id = a.tenant_id
		WHERE a.tenant_id = $1
		ORDER BY a.name
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Asset
	for rows.Next() {
		var a domain.Asset
		if err := rows.Scan(
			&a.ID, &a.TenantID, &a.Tenant, &a.Name, &a.InternalCode, &a.Plate,
			&a.City, &a.State, &a.CostCenter, &a.Owner, &a.Responsible,
			&a.AssignedTo, &a.Company,
		); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) DeleteAsset(ctx context.Context, tenantID, id int64) error {
	return r.deleteFrom(ctx, "assets", tenantID, id)
}

func (r *CatalogRepository) CreateCostCenter(ctx context.Context, c *domain.CostCenter) error {
	query := `
		INSERT INTO cost_centers (
			tenant_id, internal_code, class, name, city, state, company,
			department, responsible
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		c.TenantID, c.InternalCode, c.Class, c.Name, c.City, c.State,
		c.Company, c.Department, c.Responsible,
	).Scan(&c.ID)
}

func (r *CatalogRepository) ListCostCenters(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.CostCenter, error) {
	query := `
		SELECT c.id, c.tenant_id, t.name, c.internal_code, c.class, c.name, c.city,
		       c.state, c.company, c.department, c.responsible
		FROM cost_centers c
		JOIN tenants t ON t.id = c.tenant_id
		WHERE c.tenant_id = $1
		ORDER BY c.name
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.CostCenter
	for rows.Next() {
		var c domain.CostCenter
		if err := rows.Scan(
			&c.ID, &c.TenantID, &c.Tenant, &c.InternalCode, &c.Class, &c.Name,
			&c.City, &c.State, &c.Company, &c.Department, &c.Responsible,
		); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) DeleteCostCenter(ctx context.Context, tenantID, id int64) error {
	return r.deleteFrom(ctx, "cost_centers", tenantID, id)
}

func (r *CatalogRepository) deleteFrom(ctx context.Context, table string, tenantID, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM `+table+` WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCatalogItemNotFound
	}
	return nil
}
