package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/execsec/backoffice/internal/domain"
)

// TenantUseCase handles tenant onboarding and removal.
type TenantUseCase struct {
	tenantRepo    TenantRepository
	executiveRepo ExecutiveRepository
	payableRepo   PayableRepository
	txManager     TransactionManager
}

// NewTenantUseCase creates a new TenantUseCase.
func NewTenantUseCase(tenantRepo TenantRepository, executiveRepo ExecutiveRepository, payableRepo PayableRepository, txManager TransactionManager) *TenantUseCase {
	return &TenantUseCase{
		tenantRepo:    tenantRepo,
		executiveRepo: executiveRepo,
		payableRepo:   payableRepo,
		txManager:     txManager,
	}
}

// CreateTenantInput represents input for registering a tenant.
type CreateTenantInput struct {
	Name      string
	Slug      string
	Registrar string
}

// CreateTenant registers a new company scope.
func (uc *TenantUseCase) CreateTenant(ctx context.Context, input CreateTenantInput) (*domain.Tenant, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if err := domain.ValidateSlug(slug); err != nil {
		return nil, err
	}

	existing, err := uc.tenantRepo.GetBySlug(ctx, slug)
	if err == nil && existing != nil {
		return nil, domain.ErrDuplicateSlug
	}

	now := time.Now().UTC()
	tenant := &domain.Tenant{
		Name:      strings.TrimSpace(input.Name),
		Slug:      slug,
		Registrar: input.Registrar,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// GetTenant retrieves a tenant by ID.
func (uc *TenantUseCase) GetTenant(ctx context.Context, id int64) (*domain.Tenant, error) {
	return uc.tenantRepo.GetByID(ctx, id)
}

// GetTenantBySlug retrieves a tenant by its slug.
func (uc *TenantUseCase) GetTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return uc.tenantRepo.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
}

// ListTenants returns all tenants.
func (uc *TenantUseCase) ListTenants(ctx context.Context) ([]*domain.Tenant, error) {
	return uc.tenantRepo.List(ctx)
}

// UpdateTenant renames a tenant. The slug is immutable.
func (uc *TenantUseCase) UpdateTenant(ctx context.Context, id int64, name string) (*domain.Tenant, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}
	tenant, err := uc.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tenant.Name = strings.TrimSpace(name)
	tenant.UpdatedAt = time.Now().UTC()
	if err := uc.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// DeleteTenant removes a tenant and all its scoped records in one
// transaction. The secretariat's own tenant cannot be deleted.
func (uc *TenantUseCase) DeleteTenant(ctx context.Context, id int64) error {
	tenant, err := uc.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tenant.IsExecutive() {
		return errors.New("the executive tenant cannot be deleted")
	}

	return uc.txManager.WithinTransaction(ctx, func(tx Transaction) error {
		if err := uc.payableRepo.DeleteByTenant(ctx, tx, id); err != nil {
			return err
		}
		if err := uc.executiveRepo.DeleteByTenant(ctx, tx, id); err != nil {
			return err
		}
		return uc.tenantRepo.Delete(ctx, tx, id)
	})
}
