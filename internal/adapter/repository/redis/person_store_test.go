package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/execsec/backoffice/internal/domain"
)

func TestPersonStore_PutAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewPersonStore(client)
	ctx := context.Background()

	person := &domain.Person{
		ID:       "p-1",
		TenantID: 1,
		Kind:     domain.PersonNatural,
		Name:     "Maria Souza",
		Document: "12345678901",
		Email:    "maria@example.com",
	}

	if err := store.Put(ctx, person); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(ctx, 1, domain.PersonNatural, "p-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if got.Name != "Maria Souza" || got.Document != "12345678901" {
		t.Fatalf("unexpected person: %+v", got)
	}
}

func TestPersonStore_KindsDoNotMix(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewPersonStore(client)
	ctx := context.Background()

	pf := &domain.Person{ID: "shared", TenantID: 1, Kind: domain.PersonNatural, Name: "PF", Document: "12345678901"}
	pj := &domain.Person{ID: "shared", TenantID: 1, Kind: domain.PersonLegal, Name: "PJ", Document: "12345678000199"}

	if err := store.Put(ctx, pf); err != nil {
		t.Fatalf("put pf failed: %v", err)
	}
	if err := store.Put(ctx, pj); err != nil {
		t.Fatalf("put pj failed: %v", err)
	}

	got, err := store.Get(ctx, 1, domain.PersonLegal, "shared")
	if err != nil {
		t.Fatalf("get pj failed: %v", err)
	}
	if got.Name != "PJ" {
		t.Fatalf("expected PJ record, got %+v", got)
	}

	if _, err := store.Get(ctx, 2, domain.PersonLegal, "shared"); !errors.Is(err, domain.ErrPersonNotFound) {
		t.Fatalf("expected other tenant to miss, got %v", err)
	}
}

func TestPersonStore_ListSortedByName(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewPersonStore(client)
	ctx := context.Background()

	for _, p := range []*domain.Person{
		{ID: "p-2", TenantID: 1, Kind: domain.PersonNatural, Name: "Carlos", Document: "22345678901"},
		{ID: "p-1", TenantID: 1, Kind: domain.PersonNatural, Name: "Ana", Document: "12345678901"},
	} {
		if err := store.Put(ctx, p); err != nil {
			t.Fatalf("put failed: %v", err)
		}
	}

	persons, err := store.List(ctx, 1, domain.PersonNatural)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(persons) != 2 || persons[0].Name != "Ana" || persons[1].Name != "Carlos" {
		t.Fatalf("expected name-sorted list, got %+v", persons)
	}
}

func TestPersonStore_Delete(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewPersonStore(client)
	ctx := context.Background()

	person := &domain.Person{ID: "p-9", TenantID: 1, Kind: domain.PersonLegal, Name: "Acme", Document: "12345678000199"}
	if err := store.Put(ctx, person); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	if err := store.Delete(ctx, 1, domain.PersonLegal, "p-9"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if err := store.Delete(ctx, 1, domain.PersonLegal, "p-9"); !errors.Is(err, domain.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound on second delete, got %v", err)
	}
}
