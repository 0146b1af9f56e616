package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/execsec/backoffice/internal/adapter/http/dto"
	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
)

// TenantService defines the behavior needed by TenantHandler.
type TenantService interface {
	CreateTenant(ctx context.Context, input usecase.CreateTenantInput) (*domain.Tenant, error)
	GetTenant(ctx context.Context, id int64) (*domain.Tenant, error)
	ListTenants(ctx context.Context) ([]*domain.Tenant, error)
	UpdateTenant(ctx context.Context, id int64, name string) (*domain.Tenant, error)
	DeleteTenant(ctx context.Context, id int64) error
}

// TenantHandler handles tenant HTTP requests. All routes require the
// superadmin role.
type TenantHandler struct {
	tenantUC TenantService
}

// NewTenantHandler creates a new TenantHandler.
func NewTenantHandler(tenantUC TenantService) *TenantHandler {
	return &TenantHandler{tenantUC: tenantUC}
}

// Create registers a new tenant.
func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tenant, err := h.tenantUC.CreateTenant(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create tenant", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TenantFromDomain(tenant))
}

// Get retrieves a tenant by ID.
func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tenant ID", err.Error())
		return
	}

	tenant, err := h.tenantUC.GetTenant(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get tenant", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TenantFromDomain(tenant))
}

// List lists all tenants.
func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.tenantUC.ListTenants(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list tenants", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TenantsFromDomain(tenants))
}

// Update renames a tenant.
func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tenant ID", err.Error())
		return
	}

	var req dto.UpdateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tenant, err := h.tenantUC.UpdateTenant(r.Context(), id, req.Name)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update tenant", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TenantFromDomain(tenant))
}

// Delete removes a tenant.
func (h *TenantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid tenant ID", err.Error())
		return
	}

	if err := h.tenantUC.DeleteTenant(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete tenant", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
