package usecase_test

import (
	"context"
	"testing"

	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
	"github.com/execsec/backoffice/internal/usecase/mocks"
)

func TestPersonUseCase_CreatePerson(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.PersonInput
		expectError bool
		wantDoc     string
	}{
		{
			name:    "natural person with formatted CPF",
			input:   usecase.PersonInput{Kind: "pf", Name: "Maria", Document: "123.456.789-09"},
			wantDoc: "12345678909",
		},
		{
			name:    "legal person with formatted CNPJ",
			input:   usecase.PersonInput{Kind: "PJ", Name: "Empresa X", Document: "12.345.678/0001-95"},
			wantDoc: "12345678000195",
		},
		{
			name:        "document length mismatch",
			input:       usecase.PersonInput{Kind: "PF", Name: "Maria", Document: "123"},
			expectError: true,
		},
		{
			name:        "bad email",
			input:       usecase.PersonInput{Kind: "PF", Name: "Maria", Document: "12345678909", Email: "nope"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewPersonUseCase(mocks.NewMockPersonStore(), mocks.NewMockIDGenerator())
			person, err := uc.CreatePerson(context.Background(), 1, tt.input)
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if person.Document != tt.wantDoc {
				t.Errorf("expected document %q, got %q", tt.wantDoc, person.Document)
			}
			if person.ID == "" {
				t.Error("expected generated ID")
			}
		})
	}
}

func TestPersonUseCase_KindsAreNamespaced(t *testing.T) {
	store := mocks.NewMockPersonStore()
	uc := usecase.NewPersonUseCase(store, mocks.NewMockIDGenerator())

	pf, err := uc.CreatePerson(context.Background(), 1, usecase.PersonInput{Kind: "PF", Name: "Maria", Document: "12345678909"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.CreatePerson(context.Background(), 1, usecase.PersonInput{Kind: "PJ", Name: "Empresa X", Document: "12345678000195"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pfs, err := uc.ListPersons(context.Background(), 1, domain.PersonNatural)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pfs) != 1 || pfs[0].ID != pf.ID {
		t.Errorf("expected only the PF record, got %d", len(pfs))
	}

	// The PF record is invisible under the PJ namespace.
	if _, err := uc.GetPerson(context.Background(), 1, domain.PersonLegal, pf.ID); err == nil {
		t.Error("expected lookup under wrong kind to fail")
	}
}

func TestPersonUseCase_UpdateAndDelete(t *testing.T) {
	uc := usecase.NewPersonUseCase(mocks.NewMockPersonStore(), mocks.NewMockIDGenerator())

	person, err := uc.CreatePerson(context.Background(), 1, usecase.PersonInput{Kind: "PF", Name: "Maria", Document: "12345678909"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := uc.UpdatePerson(context.Background(), 1, domain.PersonNatural, person.ID, usecase.PersonInput{
		Name: "Maria Silva", Document: "123.456.789-09", City: "Recife",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Maria Silva" || updated.City != "Recife" {
		t.Errorf("update not applied: %+v", updated)
	}

	if err := uc.DeletePerson(context.Background(), 1, domain.PersonNatural, person.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.GetPerson(context.Background(), 1, domain.PersonNatural, person.ID); err == nil {
		t.Error("expected deleted person to be gone")
	}
}
