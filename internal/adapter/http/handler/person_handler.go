package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/execsec/backoffice/internal/adapter/http/dto"
	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
)

// PersonService defines the behavior needed by PersonHandler.
type PersonService interface {
	CreatePerson(ctx context.Context, tenantID int64, input usecase.PersonInput) (*domain.Person, error)
	GetPerson(ctx context.Context, tenantID int64, kind domain.PersonKind, id string) (*domain.Person, error)
	ListPersons(ctx context.Context, tenantID int64, kind domain.PersonKind) ([]*domain.Person, error)
	UpdatePerson(ctx context.Context, tenantID int64, kind domain.PersonKind, id string, input usecase.PersonInput) (*domain.Person, error)
	DeletePerson(ctx context.Context, tenantID int64, kind domain.PersonKind, id string) error
}

// PersonHandler handles PF/PJ register HTTP requests. The kind comes from
// the route: /persons/pf or /persons/pj.
type PersonHandler struct {
	personUC PersonService
}

// NewPersonHandler creates a new PersonHandler.
func NewPersonHandler(personUC PersonService) *PersonHandler {
	return &PersonHandler{personUC: personUC}
}

func kindFromRoute(r *http.Request) (domain.PersonKind, bool) {
	kind := domain.PersonKind(strings.ToUpper(chi.URLParam(r, "kind")))
	return kind, kind.IsValid()
}

// Create registers a new person record.
func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	kind, ok := kindFromRoute(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid person kind", "expected pf or pj")
		return
	}

	var req dto.PersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	person, err := h.personUC.CreatePerson(r.Context(), tenantID, req.ToUseCaseInput(string(kind)))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create person", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PersonFromDomain(person))
}

// Get retrieves a person record by ID.
func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	kind, ok := kindFromRoute(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid person kind", "expected pf or pj")
		return
	}

	person, err := h.personUC.GetPerson(r.Context(), tenantID, kind, chi.URLParam(r, "id"))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get person", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PersonFromDomain(person))
}

// List lists the tenant's person records of one kind.
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	kind, ok := kindFromRoute(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid person kind", "expected pf or pj")
		return
	}

	persons, err := h.personUC.ListPersons(r.Context(), tenantID, kind)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list persons", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PersonsFromDomain(persons))
}

// Update replaces a person record's writable fields.
func (h *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	kind, ok := kindFromRoute(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid person kind", "expected pf or pj")
		return
	}

	var req dto.PersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	person, err := h.personUC.UpdatePerson(r.Context(), tenantID, kind, chi.URLParam(r, "id"), req.ToUseCaseInput(string(kind)))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update person", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PersonFromDomain(person))
}

// Delete removes a person record.
func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	kind, ok := kindFromRoute(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid person kind", "expected pf or pj")
		return
	}

	if err := h.personUC.DeletePerson(r.Context(), tenantID, kind, chi.URLParam(r, "id")); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete person", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
