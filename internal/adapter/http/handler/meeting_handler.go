package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/execsec/backoffice/internal/adapter/http/dto"
	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
)

// MeetingService defines the behavior needed by MeetingHandler.
type MeetingService interface {
	CreateMeeting(ctx context.Context, tenantID, organizerID int64, input usecase.MeetingInput) (*domain.Meeting, error)
	GetMeeting(ctx context.Context, tenantID, id int64) (*domain.Meeting, error)
	ListMeetings(ctx context.Context, tenantID int64, from, to *time.Time, limit, offset int) ([]*domain.Meeting, error)
	UpdateMeeting(ctx context.Context, tenantID, id int64, input usecase.MeetingInput) (*domain.Meeting, error)
	DeleteMeeting(ctx context.Context, tenantID, id int64) error
}

// MeetingHandler handles meeting HTTP requests.
type MeetingHandler struct {
	meetingUC MeetingService
}

// NewMeetingHandler creates a new MeetingHandler.
func NewMeetingHandler(meetingUC MeetingService) *MeetingHandler {
	return &MeetingHandler{meetingUC: meetingUC}
}

// Create schedules a meeting organized by the caller.
func (h *MeetingHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, userID, ok := requestScope(w, r)
	if !ok {
		return
	}

	var req dto.MeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	meeting, err := h.meetingUC.CreateMeeting(r.Context(), tenantID, userID, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create meeting", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MeetingFromDomain(meeting))
}

// Get retrieves a meeting by ID.
func (h *MeetingHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid meeting ID", err.Error())
		return
	}

	meeting, err := h.meetingUC.GetMeeting(r.Context(), tenantID, id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get meeting", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MeetingFromDomain(meeting))
}

// List lists the tenant's meetings, optionally bounded by a time window.
func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	var from, to *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			from = &t
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			to = &t
		}
	}

	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	meetings, err := h.meetingUC.ListMeetings(r.Context(), tenantID, from, to, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list meetings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MeetingsFromDomain(meetings))
}

// Update replaces a meeting's writable fields.
func (h *MeetingHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid meeting ID", err.Error())
		return
	}

	var req dto.MeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	meeting, err := h.meetingUC.UpdateMeeting(r.Context(), tenantID, id, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update meeting", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MeetingFromDomain(meeting))
}

// Delete cancels and removes a meeting.
func (h *MeetingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid meeting ID", err.Error())
		return
	}

	if err := h.meetingUC.DeleteMeeting(r.Context(), tenantID, id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete meeting", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
