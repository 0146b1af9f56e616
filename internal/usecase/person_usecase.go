package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/execsec/backoffice/internal/domain"
)

// PersonUseCase handles PF/PJ person records in the namespaced store.
type PersonUseCase struct {
	store PersonStore
	idGen IDGenerator
}

// NewPersonUseCase creates a new PersonUseCase.
func NewPersonUseCase(store PersonStore, idGen IDGenerator) *PersonUseCase {
	return &PersonUseCase{store: store, idGen: idGen}
}

// PersonInput carries the writable fields of a person record.
type PersonInput struct {
	Kind     string
	Name     string
	Document string
	Email    string
	Phone    string
	City     string
	State    string
}

// CreatePerson validates and stores a new person record. The document is
// stored digits-only.
func (uc *PersonUseCase) CreatePerson(ctx context.Context, tenantID int64, input PersonInput) (*domain.Person, error) {
	now := time.Now().UTC()
	person := &domain.Person{
		ID:        uc.idGen.Generate(),
		TenantID:  tenantID,
		Kind:      domain.PersonKind(strings.ToUpper(strings.TrimSpace(input.Kind))),
		Name:      strings.TrimSpace(input.Name),
		Document:  domain.NormalizeDocument(input.Document),
		Email:     input.Email,
		Phone:     input.Phone,
		City:      input.City,
		State:     input.State,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := person.Validate(); err != nil {
		return nil, err
	}
	if person.Email != "" {
		if err := domain.ValidateEmail(person.Email); err != nil {
			return nil, err
		}
	}
	if err := uc.store.Put(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// GetPerson retrieves a person record.
func (uc *PersonUseCase) GetPerson(ctx context.Context, tenantID int64, kind domain.PersonKind, id string) (*domain.Person, error) {
	return uc.store.Get(ctx, tenantID, kind, id)
}

// ListPersons lists the tenant's person records of one kind.
func (uc *PersonUseCase) ListPersons(ctx context.Context, tenantID int64, kind domain.PersonKind) ([]*domain.Person, error) {
	if !kind.IsValid() {
		return nil, domain.ErrPersonNotFound
	}
	return uc.store.List(ctx, tenantID, kind)
}

// UpdatePerson replaces the writable fields of a person record.
func (uc *PersonUseCase) UpdatePerson(ctx context.Context, tenantID int64, kind domain.PersonKind, id string, input PersonInput) (*domain.Person, error) {
	person, err := uc.store.Get(ctx, tenantID, kind, id)
	if err != nil {
		return nil, err
	}
	person.Name = strings.TrimSpace(input.Name)
	person.Document = domain.NormalizeDocument(input.Document)
	person.Email = input.Email
	person.Phone = input.Phone
	person.City = input.City
	person.State = input.State
	person.UpdatedAt = time.Now().UTC()

	if err := person.Validate(); err != nil {
		return nil, err
	}
	if err := uc.store.Put(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// DeletePerson removes a person record.
func (uc *PersonUseCase) DeletePerson(ctx context.Context, tenantID int64, kind domain.PersonKind, id string) error {
	return uc.store.Delete(ctx, tenantID, kind, id)
}
