package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/execsec/backoffice/internal/domain"
)

// ExportStore keeps asynchronous export jobs in Redis as JSON documents,
// plus a per-user index set for listing. Jobs expire on their own so
// finished exports don't pile up.
type ExportStore struct {
	client *redis.Client
}

// NewExportStore creates a new ExportStore.
func NewExportStore(client *redis.Client) *ExportStore {
	return &ExportStore{client: client}
}

func userIndexKey(userID int64) string {
	return fmt.Sprintf("exports:user:%d", userID)
}

// Put stores an export job with the given TTL and indexes it for its user.
func (s *ExportStore) Put(ctx context.Context, export *domain.Export, ttl time.Duration) error {
	data, err := json.Marshal(export)
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, export.ID, data, ttl)
	pipe.SAdd(ctx, userIndexKey(export.UserID), export.ID)
	pipe.Expire(ctx, userIndexKey(export.UserID), ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Get retrieves an export job by ID.
func (s *ExportStore) Get(ctx context.Context, id string) (*domain.Export, error) {
	data, err := s.client.Get(ctx, id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrExportNotFound
	}
	if err != nil {
		return nil, err
	}

	var export domain.Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("unmarshal export: %w", err)
	}
	return &export, nil
}

// ListByUser returns the user's export jobs that haven't expired yet.
// Expired IDs are pruned from the index as they are encountered.
func (s *ExportStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Export, error) {
	ids, err := s.client.SMembers(ctx, userIndexKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	exports := make([]*domain.Export, 0, len(ids))
	for _, id := range ids {
		export, err := s.Get(ctx, id)
		if errors.Is(err, domain.ErrExportNotFound) {
			s.client.SRem(ctx, userIndexKey(userID), id)
			continue
		}
		if err != nil {
			return nil, err
		}
		exports = append(exports, export)
	}

	return exports, nil
}
