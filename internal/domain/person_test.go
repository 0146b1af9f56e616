package domain

import "testing"

func TestNormalizeDocument(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123.456.789-09", "12345678909"},
		{"12.345.678/0001-95", "12345678000195"},
		{"  12345678909  ", "12345678909"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeDocument(tt.in); got != tt.want {
			t.Errorf("NormalizeDocument(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPerson_Validate(t *testing.T) {
	tests := []struct {
		name        string
		person      Person
		expectError bool
	}{
		{
			name:   "valid natural person",
			person: Person{Kind: PersonNatural, Name: "Maria", Document: "123.456.789-09"},
		},
		{
			name:   "valid legal person",
			person: Person{Kind: PersonLegal, Name: "Empresa X", Document: "12.345.678/0001-95"},
		},
		{
			name:        "cpf with wrong length",
			person:      Person{Kind: PersonNatural, Name: "Maria", Document: "123"},
			expectError: true,
		},
		{
			name:        "cnpj with wrong length",
			person:      Person{Kind: PersonLegal, Name: "Empresa X", Document: "12345678909"},
			expectError: true,
		},
		{
			name:        "unknown kind",
			person:      Person{Kind: "XX", Name: "Maria", Document: "12345678909"},
			expectError: true,
		},
		{
			name:        "blank name",
			person:      Person{Kind: PersonNatural, Name: "  ", Document: "12345678909"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.person.Validate()
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
