package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/execsec/backoffice/internal/adapter/http/dto"
	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
)

// ExecutiveService defines the behavior needed by ExecutiveHandler.
type ExecutiveService interface {
	CreateExecutive(ctx context.Context, tenantID int64, input usecase.ExecutiveInput) (*domain.Executive, error)
	GetExecutive(ctx context.Context, tenantID, id int64) (*domain.Executive, error)
	ListExecutives(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Executive, error)
	UpdateExecutive(ctx context.Context, tenantID, id int64, input usecase.ExecutiveInput) (*domain.Executive, error)
	DeleteExecutive(ctx context.Context, tenantID, id int64) error
}

// ExecutiveHandler handles executive HTTP requests.
type ExecutiveHandler struct {
	executiveUC ExecutiveService
}

// NewExecutiveHandler creates a new ExecutiveHandler.
func NewExecutiveHandler(executiveUC ExecutiveService) *ExecutiveHandler {
	return &ExecutiveHandler{executiveUC: executiveUC}
}

// Create registers a new executive.
func (h *ExecutiveHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	var req dto.ExecutiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	executive, err := h.executiveUC.CreateExecutive(r.Context(), tenantID, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create executive", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ExecutiveFromDomain(executive))
}

// Get retrieves an executive by ID.
func (h *ExecutiveHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid executive ID", err.Error())
		return
	}

	executive, err := h.executiveUC.GetExecutive(r.Context(), tenantID, id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get executive", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExecutiveFromDomain(executive))
}

// List lists the tenant's executives.
func (h *ExecutiveHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	executives, err := h.executiveUC.ListExecutives(r.Context(), tenantID, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list executives", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExecutivesFromDomain(executives))
}

// Update replaces an executive's writable fields.
func (h *ExecutiveHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid executive ID", err.Error())
		return
	}

	var req dto.ExecutiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	executive, err := h.executiveUC.UpdateExecutive(r.Context(), tenantID, id, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update executive", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExecutiveFromDomain(executive))
}

// Delete removes an executive.
func (h *ExecutiveHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid executive ID", err.Error())
		return
	}

	if err := h.executiveUC.DeleteExecutive(r.Context(), tenantID, id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete executive", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
