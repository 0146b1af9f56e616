package usecase

import (
	"context"
	"strings"

	"github.com/execsec/backoffice/internal/domain"
)

// ExecutiveUseCase handles executive registry operations.
type ExecutiveUseCase struct {
	executiveRepo ExecutiveRepository
}

// NewExecutiveUseCase creates a new ExecutiveUseCase.
func NewExecutiveUseCase(executiveRepo ExecutiveRepository) *ExecutiveUseCase {
	return &ExecutiveUseCase{executiveRepo: executiveRepo}
}

// ExecutiveInput carries the writable fields of an executive.
type ExecutiveInput struct {
	Name     string
	JobTitle string
	Profile  string
	Company  string
}

// CreateExecutive registers an executive in the tenant.
func (uc *ExecutiveUseCase) CreateExecutive(ctx context.Context, tenantID int64, input ExecutiveInput) (*domain.Executive, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	executive := &domain.Executive{
		TenantID: tenantID,
		Name:     strings.TrimSpace(input.Name),
		JobTitle: input.JobTitle,
		Profile:  input.Profile,
		Company:  input.Company,
	}
	if err := uc.executiveRepo.Create(ctx, executive); err != nil {
		return nil, err
	}
	return executive, nil
}

// GetExecutive retrieves an executive by ID within a tenant.
func (uc *ExecutiveUseCase) GetExecutive(ctx context.Context, tenantID, id int64) (*domain.Executive, error) {
	return uc.executiveRepo.GetByID(ctx, tenantID, id)
}

// ListExecutives lists the tenant's executives with pagination.
func (uc *ExecutiveUseCase) ListExecutives(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Executive, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.executiveRepo.List(ctx, tenantID, limit, offset)
}

// UpdateExecutive replaces the writable fields of an executive.
func (uc *ExecutiveUseCase) UpdateExecutive(ctx context.Context, tenantID, id int64, input ExecutiveInput) (*domain.Executive, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	executive, err := uc.executiveRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	executive.Name = strings.TrimSpace(input.Name)
	executive.JobTitle = input.JobTitle
	executive.Profile = input.Profile
	executive.Company = input.Company
	if err := uc.executiveRepo.Update(ctx, executive); err != nil {
		return nil, err
	}
	return executive, nil
}

// DeleteExecutive removes an executive from the tenant.
func (uc *ExecutiveUseCase) DeleteExecutive(ctx context.Context, tenantID, id int64) error {
	return uc.executiveRepo.Delete(ctx, tenantID, id)
}
