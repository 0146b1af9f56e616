package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	"github.com/execsec/backoffice/internal/domain"
)

func TestPayableRepositoryCreateBindsInstallmentsAsInteger(t *testing.T) {
	mockPool := newMockPool(t)

	// 23 bind parameters; the installments slot must carry a plain int so
	// it lands in the integer column.
	args := make([]any, 23)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	args[9] = 3

	mockPool.ExpectQuery("INSERT INTO payables").
		WithArgs(args...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := newPayableRepositoryWithPool(mockPool)
	payable := &domain.Payable{
		TenantID:     3,
		Description:  "Aluguel",
		PaymentType:  domain.PaymentInstallment,
		Installments: 3,
	}
	if err := repo.Create(context.Background(), payable); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if payable.ID != 7 {
		t.Fatalf("id = %d, want 7", payable.ID)
	}

	assertExpectations(t, mockPool)
}

func TestPayableRepositoryGetByIDScansRow(t *testing.T) {
	mockPool := newMockPool(t)

	cols := []string{
		"id", "tenant_id", "name", "description", "billing_type", "billing_id", "billing_tag",
		"creditor", "creditor_type", "original_amount", "payment_type", "installments",
		"discount", "surcharge", "final_amount", "debtor_executive_id", "debtor",
		"payment_status", "billing_status", "due_date", "document_path", "billing_url",
		"company", "created_at", "updated_at",
	}
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows(cols).AddRow(
		int64(9), int64(3), "Acme", "Aluguel", "Boleto", "", "",
		"Imobiliária", "PJ", "1200", domain.PaymentInstallment, 3,
		nil, nil, "400", nil, "Helena",
		"ABERTO", "", time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), "", "",
		"", now, now,
	)

	mockPool.ExpectQuery("FROM payables").
		WithArgs(int64(3), int64(9)).
		WillReturnRows(rows)

	repo := newPayableRepositoryWithPool(mockPool)
	payable, err := repo.GetByID(context.Background(), 3, 9)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if payable.Installments != 3 {
		t.Errorf("installments = %d, want 3", payable.Installments)
	}
	if payable.FinalAmount == nil || !payable.FinalAmount.Equal(decimal.NewFromInt(400)) {
		t.Errorf("final amount = %v, want 400", payable.FinalAmount)
	}

	// The date column arrives as UTC midnight; the scanned due date must be
	// the same calendar day anchored at local midnight so overdue checks
	// agree with the rollup in every locale.
	want := time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
	if payable.DueDate == nil || !payable.DueDate.Equal(want) {
		t.Errorf("due date = %v, want %v", payable.DueDate, want)
	}
	if payable.DueDate.Location() != time.Local {
		t.Errorf("due date location = %v, want local", payable.DueDate.Location())
	}

	assertExpectations(t, mockPool)
}
