package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
	"github.com/execsec/backoffice/internal/usecase/mocks"
)

func waitForExport(t *testing.T, store *mocks.MockExportStore, id string) *domain.Export {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		export, err := store.Get(context.Background(), id)
		if err == nil && export.Progress >= 100 {
			return export
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("export did not finish in time")
	return nil
}

func TestExportUseCase_StartPayableExport(t *testing.T) {
	repo := mocks.NewMockPayableRepository()
	store := mocks.NewMockExportStore()
	objects := mocks.NewMockObjectStore()
	notifier := &mocks.MockProgressNotifier{}
	uc := usecase.NewExportUseCase(repo, store, objects, notifier, mocks.NewMockIDGenerator(), zerolog.Nop())

	_ = repo.Create(context.Background(), &domain.Payable{TenantID: 1, Description: "Aluguel", FinalAmount: dec("950"), Debtor: "Ana", PaymentStatus: "ABERTO"})
	_ = repo.Create(context.Background(), &domain.Payable{TenantID: 1, Description: "Energia", FinalAmount: dec("250"), Debtor: "Bia", PaymentStatus: "PAGO"})

	export, err := uc.StartPayableExport(context.Background(), 1, 42, nil, domain.PayableFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if export.ID == "" || export.Type != "payables" {
		t.Fatalf("unexpected export %+v", export)
	}

	done := waitForExport(t, store, export.ID)
	if done.FileURL == nil || *done.FileURL == "" {
		t.Fatal("expected file URL on completion")
	}
	if len(notifier.Events) == 0 {
		t.Error("expected progress events")
	}
}

func TestExportUseCase_StartPayableExport_UnknownColumns(t *testing.T) {
	uc := usecase.NewExportUseCase(mocks.NewMockPayableRepository(), mocks.NewMockExportStore(), mocks.NewMockObjectStore(), nil, mocks.NewMockIDGenerator(), zerolog.Nop())

	if _, err := uc.StartPayableExport(context.Background(), 1, 42, []string{"nope"}, domain.PayableFilter{}); err == nil {
		t.Error("expected error for unknown column selection")
	}
}

func TestExportUseCase_GetExport_OtherUserHidden(t *testing.T) {
	repo := mocks.NewMockPayableRepository()
	store := mocks.NewMockExportStore()
	uc := usecase.NewExportUseCase(repo, store, mocks.NewMockObjectStore(), nil, mocks.NewMockIDGenerator(), zerolog.Nop())

	export, err := uc.StartPayableExport(context.Background(), 1, 42, nil, domain.PayableFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.GetExport(context.Background(), export.ID, 43); err == nil {
		t.Error("expected other user's lookup to fail")
	}
	if _, err := uc.GetExport(context.Background(), export.ID, 42); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
