package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// PersonKind discriminates natural persons (CPF) from legal ones (CNPJ).
type PersonKind string

const (
	PersonNatural PersonKind = "PF"
	PersonLegal   PersonKind = "PJ"
)

// IsValid reports whether the kind is known.
func (k PersonKind) IsValid() bool {
	return k == PersonNatural || k == PersonLegal
}

// Person is a natural or legal person record kept in the namespaced store.
type Person struct {
	ID        string
	TenantID  int64
	Kind      PersonKind
	Name      string
	Document  string // CPF for PF, CNPJ for PJ, digits only
	Email     string
	Phone     string
	City      string
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeDocument strips everything but digits from a CPF/CNPJ value.
func NormalizeDocument(value string) string {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate checks kind and document length (CPF has 11 digits, CNPJ 14).
func (p *Person) Validate() error {
	if !p.Kind.IsValid() {
		return fmt.Errorf("invalid person kind %q", p.Kind)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("person name cannot be empty")
	}
	doc := NormalizeDocument(p.Document)
	switch p.Kind {
	case PersonNatural:
		if len(doc) != 11 {
			return fmt.Errorf("CPF must have 11 digits, got %d", len(doc))
		}
	case PersonLegal:
		if len(doc) != 14 {
			return fmt.Errorf("CNPJ must have 14 digits, got %d", len(doc))
		}
	}
	return nil
}
