package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/execsec/backoffice/internal/domain"
)

// NotificationUseCase records and dispatches outbound notifications.
type NotificationUseCase struct {
	notificationRepo NotificationRepository
	mailer           Mailer
	idGen            IDGenerator
	logger           zerolog.Logger
}

// NewNotificationUseCase creates a new NotificationUseCase.
func NewNotificationUseCase(notificationRepo NotificationRepository, mailer Mailer, idGen IDGenerator, logger zerolog.Logger) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		mailer:           mailer,
		idGen:            idGen,
		logger:           logger,
	}
}

// SendInput represents an outbound email request.
type SendInput struct {
	Recipient string
	Subject   string
	Body      string
}

// Send records the notification and dispatches it. The record is written
// before dispatch so failed sends stay visible with their error.
func (uc *NotificationUseCase) Send(ctx context.Context, tenantID int64, input SendInput) (*domain.Notification, error) {
	if err := domain.ValidateEmail(input.Recipient); err != nil {
		return nil, err
	}

	n := &domain.Notification{
		ID:        uc.idGen.Generate(),
		TenantID:  tenantID,
		Channel:   domain.ChannelEmail,
		Recipient: input.Recipient,
		Subject:   input.Subject,
		Body:      input.Body,
		Status:    domain.NotificationPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	if err := uc.mailer.Send(ctx, n.Recipient, n.Subject, n.Body); err != nil {
		uc.logger.Error().Err(err).Str("notification_id", n.ID).Msg("notification dispatch failed")
		n.Status = domain.NotificationFailed
		n.Error = err.Error()
		_ = uc.notificationRepo.UpdateStatus(ctx, n.ID, n.Status, n.Error, nil)
		return n, nil
	}

	sentAt := time.Now().UTC()
	n.Status = domain.NotificationSent
	n.SentAt = &sentAt
	if err := uc.notificationRepo.UpdateStatus(ctx, n.ID, n.Status, "", &sentAt); err != nil {
		return nil, err
	}
	return n, nil
}

// GetNotification retrieves a notification by ID.
func (uc *NotificationUseCase) GetNotification(ctx context.Context, tenantID int64, id string) (*domain.Notification, error) {
	return uc.notificationRepo.GetByID(ctx, tenantID, id)
}

// ListNotifications lists the tenant's notifications with pagination.
func (uc *NotificationUseCase) ListNotifications(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Notification, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.notificationRepo.List(ctx, tenantID, limit, offset)
}
