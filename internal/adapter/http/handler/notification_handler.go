package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/execsec/backoffice/internal/adapter/http/dto"
	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
)

// NotificationService defines the behavior needed by NotificationHandler.
type NotificationService interface {
	Send(ctx context.Context, tenantID int64, input usecase.SendInput) (*domain.Notification, error)
	GetNotification(ctx context.Context, tenantID int64, id string) (*domain.Notification, error)
	ListNotifications(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Notification, error)
}

// NotificationHandler handles outbound notification HTTP requests.
type NotificationHandler struct {
	notificationUC NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationUC NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// Send queues an email notification and returns its record.
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	var req dto.SendNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	notification, err := h.notificationUC.Send(r.Context(), tenantID, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to send notification", err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, dto.NotificationFromDomain(notification))
}

// Get retrieves a notification record by ID.
func (h *NotificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing notification ID", "")
		return
	}

	notification, err := h.notificationUC.GetNotification(r.Context(), tenantID, id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get notification", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NotificationFromDomain(notification))
}

// List lists the tenant's notification records.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	limit := parseIntQuery(r, "limit", 50)
	offset := parseIntQuery(r, "offset", 0)

	notifications, err := h.notificationUC.ListNotifications(r.Context(), tenantID, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list notifications", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.NotificationsFromDomain(notifications))
}
