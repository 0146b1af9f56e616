package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/execsec/backoffice/internal/adapter/http/dto"
	"github.com/execsec/backoffice/internal/domain"
)

// CatalogService defines the behavior needed by CatalogHandler.
type CatalogService interface {
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

// CatalogHandler handles the flat reference registers.
type CatalogHandler struct {
	catalogUC CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogUC CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// CreateDepartment registers a department.
func (h *CatalogHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	var req dto.DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	department := &domain.Department{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Registrar:   req.Registrar,
	}
	if err := h.catalogUC.CreateDepartment(r.Context(), department); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create department", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DepartmentFromDomain(department))
}

// ListDepartments lists the tenant's departments.
func (h *CatalogHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	departments, err := h.catalogUC.ListDepartments(r.Context(), tenantID, parseIntQuery(r, "limit", 50), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list departments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DepartmentsFromDomain(departments))
}

// DeleteDepartment removes a department.
func (h *CatalogHandler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "department", h.catalogUC.DeleteDepartment)
}

// CreateJobRole registers a job role.
func (h *CatalogHandler) CreateJobRole(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	var req dto.JobRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	role := &domain.JobRole{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Department:  req.Department,
		Registrar:   req.Registrar,
	}
	if err := h.catalogUC.CreateJobRole(r.Context(), role); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create job role", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.JobRoleFromDomain(role))
}

// ListJobRoles lists the tenant's job roles.
func (h *CatalogHandler) ListJobRoles(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	roles, err := h.catalogUC.ListJobRoles(r.Context(), tenantID, parseIntQuery(r, "limit", 50), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list job roles", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.JobRolesFromDomain(roles))
}

// DeleteJobRole removes a job role.
func (h *CatalogHandler) DeleteJobRole(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "job role", h.catalogUC.DeleteJobRole)
}

// CreateCollaborator registers a collaborator.
func (h *CatalogHandler) CreateCollaborator(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	var req dto.CollaboratorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	collaborator := &domain.Collaborator{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		JobRole:     req.JobRole,
		Registrar:   req.Registrar,
	}
	if err := h.catalogUC.CreateCollaborator(r.Context(), collaborator); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create collaborator", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CollaboratorFromDomain(collaborator))
}

// ListCollaborators lists the tenant's collaborators.
func (h *CatalogHandler) ListCollaborators(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	collaborators, err := h.catalogUC.ListCollaborators(r.Context(), tenantID, parseIntQuery(r, "limit", 50), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list collaborators", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CollaboratorsFromDomain(collaborators))
}

// DeleteCollaborator removes a collaborator.
func (h *CatalogHandler) DeleteCollaborator(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "collaborator", h.catalogUC.DeleteCollaborator)
}

// CreateAsset registers an asset.
func (h *CatalogHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	var req dto.AssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	asset := &domain.Asset{
		TenantID:     tenantID,
		Name:         req.Name,
		InternalCode: req.InternalCode,
		Plate:        req.Plate,
		City:         req.City,
		State:        req.State,
		CostCenter:   req.CostCenter,
		Owner:        req.Owner,
		Responsible:  req.Responsible,
		AssignedTo:   req.AssignedTo,
		Company:      req.Company,
	}
	if err := h.catalogUC.CreateAsset(r.Context(), asset); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create asset", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AssetFromDomain(asset))
}

// ListAssets lists the tenant's assets.
func (h *CatalogHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	assets, err := h.catalogUC.ListAssets(r.Context(), tenantID, parseIntQuery(r, "limit", 50), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list assets", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AssetsFromDomain(assets))
}

// DeleteAsset removes an asset.
func (h *CatalogHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "asset", h.catalogUC.DeleteAsset)
}

// CreateCostCenter registers a cost center.
func (h *CatalogHandler) CreateCostCenter(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	var req dto.CostCenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	center := &domain.CostCenter{
		TenantID:     tenantID,
		InternalCode: req.InternalCode,
		Class:        req.Class,
		Name:         req.Name,
		City:         req.City,
		State:        req.State,
		Company:      req.Company,
		Department:   req.Department,
		Responsible:  req.Responsible,
	}
	if err := h.catalogUC.CreateCostCenter(r.Context(), center); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create cost center", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CostCenterFromDomain(center))
}

// ListCostCenters lists the tenant's cost centers.
func (h *CatalogHandler) ListCostCenters(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	centers, err := h.catalogUC.ListCostCenters(r.Context(), tenantID, parseIntQuery(r, "limit", 50), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list cost centers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CostCentersFromDomain(centers))
}

// DeleteCostCenter removes a cost center.
func (h *CatalogHandler) DeleteCostCenter(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "cost center", h.catalogUC.DeleteCostCenter)
}

func (h *CatalogHandler) delete(w http.ResponseWriter, r *http.Request, label string, fn func(ctx context.Context, tenantID, id int64) error) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+label+" ID", err.Error())
		return
	}

	if err := fn(r.Context(), tenantID, id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete "+label, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
