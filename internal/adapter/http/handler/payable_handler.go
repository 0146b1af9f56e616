package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/execsec/backoffice/internal/adapter/http/dto"
	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
)

// maxDocumentSize bounds uploaded payable documents.
const maxDocumentSize = 20 << 20 // 20 MiB

// PayableService defines the behavior needed by PayableHandler.
type PayableService interface {
	CreatePayable(ctx context.Context, tenantID int64, input usecase.PayableInput) (*domain.Payable, error)
	GetPayable(ctx context.Context, tenantID, id int64) (*domain.Payable, error)
	ListPayables(ctx context.Context, tenantID int64, filter domain.PayableFilter, limit, offset int) ([]*domain.Payable, error)
	UpdatePayable(ctx context.Context, tenantID, id int64, input usecase.PayableInput) (*domain.Payable, error)
	DeletePayable(ctx context.Context, tenantID, id int64) error
	Summary(ctx context.Context, tenantID int64, filter domain.PayableFilter) (*domain.Summary, error)
	AttachDocument(ctx context.Context, tenantID, id int64, filename, contentType string, r io.Reader, size int64) (*domain.Payable, error)
	DocumentURL(ctx context.Context, tenantID, id int64) (string, error)
}

// PayableHandler handles accounts-payable HTTP requests.
type PayableHandler struct {
	payableUC PayableService
}

// NewPayableHandler creates a new PayableHandler.
func NewPayableHandler(payableUC PayableService) *PayableHandler {
	return &PayableHandler{payableUC: payableUC}
}

// Create records a new payable.
func (h *PayableHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	var req dto.PayableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	payable, err := h.payableUC.CreatePayable(r.Context(), tenantID, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create payable", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PayableFromDomain(payable))
}

// Get retrieves a payable by ID.
func (h *PayableHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payable ID", err.Error())
		return
	}

	payable, err := h.payableUC.GetPayable(r.Context(), tenantID, id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get payable", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PayableFromDomain(payable))
}

// List lists payables matching the dashboard filters.
func (h *PayableHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	payables, err := h.payableUC.ListPayables(r.Context(), tenantID, filterFromQuery(r), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list payables", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PayablesFromDomain(payables))
}

// Update replaces the writable fields of a payable.
func (h *PayableHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payable ID", err.Error())
		return
	}

	var req dto.PayableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	payable, err := h.payableUC.UpdatePayable(r.Context(), tenantID, id, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update payable", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PayableFromDomain(payable))
}

// Delete removes a payable and its stored document.
func (h *PayableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payable ID", err.Error())
		return
	}

	if err := h.payableUC.DeletePayable(r.Context(), tenantID, id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete payable", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary returns the financial dashboard rollup.
func (h *PayableHandler) Summary(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	summary, err := h.payableUC.Summary(r.Context(), tenantID, filterFromQuery(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromDomain(summary))
}

// AttachDocument stores an uploaded document for a payable.
func (h *PayableHandler) AttachDocument(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payable ID", err.Error())
		return
	}

	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form", err.Error())
		return
	}

	file, header, err := r.FormFile("documento")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing documento file", err.Error())
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	payable, err := h.payableUC.AttachDocument(r.Context(), tenantID, id, header.Filename, contentType, file, header.Size)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to attach document", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PayableFromDomain(payable))
}

// DocumentURL returns a presigned link to a payable's document.
func (h *PayableHandler) DocumentURL(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payable ID", err.Error())
		return
	}

	url, err := h.payableUC.DocumentURL(r.Context(), tenantID, id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to resolve document", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DocumentURLResponse{URL: url})
}

// filterFromQuery reads the dashboard filters from query parameters.
func filterFromQuery(r *http.Request) domain.PayableFilter {
	q := r.URL.Query()
	filter := domain.PayableFilter{
		Debtor:       q.Get("devedor"),
		Status:       q.Get("status"),
		BillingType:  q.Get("tipo_cobranca"),
		Creditor:     q.Get("credor"),
		CreditorType: q.Get("tipo_credor"),
	}
	if raw := q.Get("de"); raw != "" {
		if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
			filter.From = &t
		}
	}
	if raw := q.Get("ate"); raw != "" {
		if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
			filter.To = &t
		}
	}
	return filter
}
