package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/execsec/backoffice/internal/adapter/http/dto"
	"github.com/execsec/backoffice/internal/domain"
)

// ExportService defines the behavior needed by ExportHandler.
type ExportService interface {
	StartPayableExport(ctx context.Context, tenantID, userID int64, selected []string, filter domain.PayableFilter) (*domain.Export, error)
	GetExport(ctx context.Context, id string, userID int64) (*domain.Export, error)
	ListExports(ctx context.Context, userID int64) ([]*domain.Export, error)
}

// ExportHandler handles XLSX export HTTP requests.
type ExportHandler struct {
	exportUC ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportUC ExportService) *ExportHandler {
	return &ExportHandler{exportUC: exportUC}
}

// Start launches an export job and returns it immediately. Progress is
// pushed over the websocket; the finished job carries a download URL.
func (h *ExportHandler) Start(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, ok := requestScope(w, r)
	if !ok {
		return
	}

	var req dto.StartExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	export, err := h.exportUC.StartPayableExport(r.Context(), tenantID, userID, req.Fields, req.ToFilter())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to start export", err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, dto.ExportFromDomain(export))
}

// Get retrieves an export job by ID.
func (h *ExportHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, userID, ok := requestScope(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing export ID", "")
		return
	}

	export, err := h.exportUC.GetExport(r.Context(), id, userID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get export", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExportFromDomain(export))
}

// List lists the caller's export jobs, newest first.
func (h *ExportHandler) List(w http.ResponseWriter, r *http.Request) {
	_, userID, ok := requestScope(w, r)
	if !ok {
		return
	}

	exports, err := h.exportUC.ListExports(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list exports", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ExportsFromDomain(exports))
}
