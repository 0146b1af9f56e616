package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/execsec/backoffice/internal/domain"
)

func TestExportStore_PutAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewExportStore(client)
	ctx := context.Background()

	export := &domain.Export{
		ID:       "exports:01JABCDEF",
		Type:     "payables",
		TenantID: 7,
		UserID:   3,
		Filters:  map[string]any{"status": "PENDENTE"},
		Progress: 40,
	}

	if err := store.Put(ctx, export, time.Hour); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(ctx, export.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if got.TenantID != 7 || got.UserID != 3 || got.Progress != 40 {
		t.Fatalf("unexpected export: %+v", got)
	}
	if got.Filters["status"] != "PENDENTE" {
		t.Fatalf("expected filters to round-trip, got %v", got.Filters)
	}
}

func TestExportStore_GetMissing(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewExportStore(client)

	_, err := store.Get(context.Background(), "exports:nope")
	if !errors.Is(err, domain.ErrExportNotFound) {
		t.Fatalf("expected ErrExportNotFound, got %v", err)
	}
}

func TestExportStore_ListByUser(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewExportStore(client)
	ctx := context.Background()

	for _, e := range []*domain.Export{
		{ID: "exports:01JAAA", Type: "payables", TenantID: 1, UserID: 3},
		{ID: "exports:01JBBB", Type: "payables", TenantID: 1, UserID: 3},
		{ID: "exports:01JCCC", Type: "payables", TenantID: 1, UserID: 4},
	} {
		if err := store.Put(ctx, e, time.Hour); err != nil {
			t.Fatalf("put failed: %v", err)
		}
	}

	exports, err := store.ListByUser(ctx, 3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(exports) != 2 {
		t.Fatalf("expected 2 exports for user 3, got %d", len(exports))
	}

	exports, err = store.ListByUser(ctx, 99)
	if err != nil || len(exports) != 0 {
		t.Fatalf("expected no exports for unknown user, got %d err=%v", len(exports), err)
	}
}

func TestExportStore_JobsExpire(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewExportStore(client)
	ctx := context.Background()

	export := &domain.Export{ID: "exports:01JEXPIRED", Type: "payables", TenantID: 1, UserID: 1}
	if err := store.Put(ctx, export, time.Hour); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	if _, err := store.Get(ctx, export.ID); !errors.Is(err, domain.ErrExportNotFound) {
		t.Fatalf("expected expired job to be gone, got %v", err)
	}
}
