package usecase

import (
	"context"
	"time"

	"github.com/execsec/backoffice/internal/domain"
)

// CatalogUseCase handles the flat reference registers (departments, job
// roles, collaborators, assets, cost centers).
type CatalogUseCase struct {
	catalogRepo CatalogRepository
}

// NewCatalogUseCase creates a new CatalogUseCase.
func NewCatalogUseCase(catalogRepo CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalogRepo: catalogRepo}
}

func (uc *CatalogUseCase) CreateDepartment(ctx context.Context, d *domain.Department) error {
	if err := domain.ValidateName(d.Name); err != nil {
		return err
	}
	d.RegisteredAt = time.Now().UTC()
	return uc.catalogRepo.CreateDepartment(ctx, d)
}

func (uc *CatalogUseCase) ListDepartments(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Department, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.catalogRepo.ListDepartments(ctx, tenantID, limit, offset)
}

func (uc *CatalogUseCase) DeleteDepartment(ctx context.Context, tenantID, id int64) error {
	return uc.catalogRepo.DeleteDepartment(ctx, tenantID, id)
}

func (uc *CatalogUseCase) CreateJobRole(ctx context.Context, r *domain.JobRole) error {
	if err := domain.ValidateName(r.Name); err != nil {
		return err
	}
	r.RegisteredAt = time.Now().UTC()
	return uc.catalogRepo.CreateJobRole(ctx, r)
}

func (uc *CatalogUseCase) ListJobRoles(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.JobRole, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.catalogRepo.ListJobRoles(ctx, tenantID, limit, offset)
}

func (uc *CatalogUseCase) DeleteJobRole(ctx context.Context, tenantID, id int64) error {
	return uc.catalogRepo.DeleteJobRole(ctx, tenantID, id)
}

func (uc *CatalogUseCase) CreateCollaborator(ctx context.Context, c *domain.Collaborator) error {
	if err := domain.ValidateName(c.Name); err != nil {
		return err
	}
	c.RegisteredAt = time.Now().UTC()
	return uc.catalogRepo.CreateCollaborator(ctx, c)
}

func (uc *CatalogUseCase) ListCollaborators(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Collaborator, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.catalogRepo.ListCollaborators(ctx, tenantID, limit, offset)
}

func (uc *CatalogUseCase) DeleteCollaborator(ctx context.Context, tenantID, id int64) error {
	return uc.catalogRepo.DeleteCollaborator(ctx, tenantID, id)
}

func (uc *CatalogUseCase) CreateAsset(ctx context.Context, a *domain.Asset) error {
	if err := domain.ValidateName(a.Name); err != nil {
		return err
	}
	return uc.catalogRepo.CreateAsset(ctx, a)
}

func (uc *CatalogUseCase) ListAssets(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Asset, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.catalogRepo.ListAssets(ctx, tenantID, limit, offset)
}

func (uc *CatalogUseCase) DeleteAsset(ctx context.Context, tenantID, id int64) error {
	return uc.catalogRepo.DeleteAsset(ctx, tenantID, id)
}

func (uc *CatalogUseCase) CreateCostCenter(ctx context.Context, c *domain.CostCenter) error {
	if err := domain.ValidateName(c.Name); err != nil {
		return err
	}
	return uc.catalogRepo.CreateCostCenter(ctx, c)
}

func (uc *CatalogUseCase) ListCostCenters(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.CostCenter, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.catalogRepo.ListCostCenters(ctx, tenantID, limit, offset)
}

func (uc *CatalogUseCase) DeleteCostCenter(ctx context.Context, tenantID, id int64) error {
	return uc.catalogRepo.DeleteCostCenter(ctx, tenantID, id)
}
