package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
	"github.com/execsec/backoffice/internal/usecase/mocks"
)

func TestNotificationUseCase_Send(t *testing.T) {
	repo := mocks.NewMockNotificationRepository()
	mailer := &mocks.MockMailer{}
	uc := usecase.NewNotificationUseCase(repo, mailer, mocks.NewMockIDGenerator(), zerolog.Nop())

	n, err := uc.Send(context.Background(), 1, usecase.SendInput{
		Recipient: "ana@example.com",
		Subject:   "Conta vencendo",
		Body:      "A conta Aluguel vence amanhã.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Status != domain.NotificationSent {
		t.Errorf("expected sent, got %q", n.Status)
	}
	if n.SentAt == nil {
		t.Error("expected SentAt to be set")
	}
	if len(mailer.Sent) != 1 || mailer.Sent[0].To != "ana@example.com" {
		t.Errorf("unexpected outbox %+v", mailer.Sent)
	}

	stored, err := uc.GetNotification(context.Background(), 1, n.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != domain.NotificationSent {
		t.Errorf("expected stored status sent, got %q", stored.Status)
	}
}

func TestNotificationUseCase_Send_FailureRecorded(t *testing.T) {
	repo := mocks.NewMockNotificationRepository()
	mailer := &mocks.MockMailer{
		SendFunc: func(ctx context.Context, to, subject, body string) error {
			return errors.New("smtp refused")
		},
	}
	uc := usecase.NewNotificationUseCase(repo, mailer, mocks.NewMockIDGenerator(), zerolog.Nop())

	n, err := uc.Send(context.Background(), 1, usecase.SendInput{
		Recipient: "ana@example.com",
		Subject:   "Conta vencendo",
	})
	if err != nil {
		t.Fatalf("dispatch failure must not be an error: %v", err)
	}
	if n.Status != domain.NotificationFailed {
		t.Errorf("expected failed, got %q", n.Status)
	}
	if n.Error == "" {
		t.Error("expected error message recorded")
	}
}

func TestNotificationUseCase_Send_BadRecipient(t *testing.T) {
	uc := usecase.NewNotificationUseCase(mocks.NewMockNotificationRepository(), &mocks.MockMailer{}, mocks.NewMockIDGenerator(), zerolog.Nop())

	if _, err := uc.Send(context.Background(), 1, usecase.SendInput{Recipient: "not-an-email"}); err == nil {
		t.Error("expected error for invalid recipient")
	}
}
