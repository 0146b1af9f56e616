package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
	"github.com/execsec/backoffice/internal/usecase/mocks"
)

func newTenantUseCase() (*usecase.TenantUseCase, *mocks.MockTenantRepository, *mocks.MockPayableRepository, *mocks.MockTransactionManager) {
	tenants := mocks.NewMockTenantRepository()
	payables := mocks.NewMockPayableRepository()
	txm := &mocks.MockTransactionManager{}
	uc := usecase.NewTenantUseCase(tenants, mocks.NewMockExecutiveRepository(), payables, txm)
	return uc, tenants, payables, txm
}

func TestTenantUseCase_CreateTenant(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateTenantInput
		expectError bool
	}{
		{
			name:  "valid tenant",
			input: usecase.CreateTenantInput{Name: "Acme Ltda", Slug: "acme"},
		},
		{
			name:  "slug is lowercased",
			input: usecase.CreateTenantInput{Name: "Beta SA", Slug: "Beta-Sa"},
		},
		{
			name:        "bad slug",
			input:       usecase.CreateTenantInput{Name: "Acme", Slug: "acme ltda!"},
			expectError: true,
		},
		{
			name:        "empty name",
			input:       usecase.CreateTenantInput{Name: "  ", Slug: "acme"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _, _ := newTenantUseCase()
			tenant, err := uc.CreateTenant(context.Background(), tt.input)
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tenant.Slug != "acme" && tenant.Slug != "beta-sa" {
				t.Errorf("unexpected slug %q", tenant.Slug)
			}
		})
	}
}

func TestTenantUseCase_CreateTenant_DuplicateSlug(t *testing.T) {
	uc, _, _, _ := newTenantUseCase()

	if _, err := uc.CreateTenant(context.Background(), usecase.CreateTenantInput{Name: "Acme", Slug: "acme"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.CreateTenant(context.Background(), usecase.CreateTenantInput{Name: "Other", Slug: "acme"}); !errors.Is(err, domain.ErrDuplicateSlug) {
		t.Errorf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestTenantUseCase_DeleteTenant(t *testing.T) {
	uc, _, payables, txm := newTenantUseCase()

	tenant, err := uc.CreateTenant(context.Background(), usecase.CreateTenantInput{Name: "Acme", Slug: "acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = payables.Create(context.Background(), &domain.Payable{TenantID: tenant.ID, Description: "Aluguel"})

	if err := uc.DeleteTenant(context.Background(), tenant.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txm.Last == nil || !txm.Last.Committed {
		t.Error("expected delete to commit its transaction")
	}
	if rows, _ := payables.ListAll(context.Background(), tenant.ID); len(rows) != 0 {
		t.Errorf("expected payables to cascade, %d left", len(rows))
	}
	if _, err := uc.GetTenant(context.Background(), tenant.ID); !errors.Is(err, domain.ErrTenantNotFound) {
		t.Errorf("expected ErrTenantNotFound, got %v", err)
	}
}

func TestTenantUseCase_DeleteTenant_ExecutiveRefused(t *testing.T) {
	uc, _, _, _ := newTenantUseCase()

	tenant, err := uc.CreateTenant(context.Background(), usecase.CreateTenantInput{Name: "Secretariat", Slug: domain.ExecutiveTenantSlug})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.DeleteTenant(context.Background(), tenant.ID); err == nil {
		t.Error("expected refusal to delete the executive tenant")
	}
}

func TestTenantUseCase_DeleteTenant_RollsBackOnFailure(t *testing.T) {
	uc, _, payables, txm := newTenantUseCase()

	tenant, err := uc.CreateTenant(context.Background(), usecase.CreateTenantInput{Name: "Acme", Slug: "acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payables.DeleteByTenantFunc = func(ctx context.Context, tx usecase.Transaction, tenantID int64) error {
		return errors.New("db down")
	}

	if err := uc.DeleteTenant(context.Background(), tenant.ID); err == nil {
		t.Fatal("expected error")
	}
	if txm.Last == nil || !txm.Last.RolledBack {
		t.Error("expected rollback")
	}
}
