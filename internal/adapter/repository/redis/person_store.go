package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/execsec/backoffice/internal/domain"
)

// PersonStore keeps PF and PJ records in Redis hashes, one hash per
// tenant and kind, so the two registries never mix.
type PersonStore struct {
	client *redis.Client
}

// NewPersonStore creates a new PersonStore.
func NewPersonStore(client *redis.Client) *PersonStore {
	return &PersonStore{client: client}
}

func personHashKey(tenantID int64, kind domain.PersonKind) string {
	return fmt.Sprintf("persons:%d:%s", tenantID, kind)
}

// Put stores or replaces a person record.
func (s *PersonStore) Put(ctx context.Context, person *domain.Person) error {
	data, err := json.Marshal(person)
	if err != nil {
		return fmt.Errorf("marshal person: %w", err)
	}
	return s.client.HSet(ctx, personHashKey(person.TenantID, person.Kind), person.ID, data).Err()
}

// Get retrieves a person by ID within a tenant and kind.
func (s *PersonStore) Get(ctx context.Context, tenantID int64, kind domain.PersonKind, id string) (*domain.Person, error) {
	data, err := s.client.HGet(ctx, personHashKey(tenantID, kind), id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}

	var person domain.Person
	if err := json.Unmarshal(data, &person); err != nil {
		return nil, fmt.Errorf("unmarshal person: %w", err)
	}
	return &person, nil
}

// List returns all persons of a kind within a tenant, ordered by name.
func (s *PersonStore) List(ctx context.Context, tenantID int64, kind domain.PersonKind) ([]*domain.Person, error) {
	entries, err := s.client.HGetAll(ctx, personHashKey(tenantID, kind)).Result()
	if err != nil {
		return nil, err
	}

	persons := make([]*domain.Person, 0, len(entries))
	for _, raw := range entries {
		var person domain.Person
		if err := json.Unmarshal([]byte(raw), &person); err != nil {
			return nil, fmt.Errorf("unmarshal person: %w", err)
		}
		persons = append(persons, &person)
	}

	sort.Slice(persons, func(i, j int) bool {
		if persons[i].Name != persons[j].Name {
			return persons[i].Name < persons[j].Name
		}
		return persons[i].ID < persons[j].ID
	})

	return persons, nil
}

// Delete removes a person record.
func (s *PersonStore) Delete(ctx context.Context, tenantID int64, kind domain.PersonKind, id string) error {
	removed, err := s.client.HDel(ctx, personHashKey(tenantID, kind), id).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return domain.ErrPersonNotFound
	}
	return nil
}
