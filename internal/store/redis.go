package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sono-report-server/internal/domain"
)

// DefaultRedisKey is the well-known key holding the report collection.
const DefaultRedisKey = "sonoreport:reports"

// RedisStore implements Store on Redis. The whole collection lives as one
// JSON blob under a single key, loaded and rewritten wholesale on every
// mutation. That mirrors the single-blob persistence model this store
// replaces and keeps the newest-first order explicit in the blob itself.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a report store on the given Redis URL. An empty key
// falls back to DefaultRedisKey.
func NewRedisStore(ctx context.Context, redisURL, key string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	if key == "" {
		key = DefaultRedisKey
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisStore{client: client, key: key}, nil
}

// load reads the whole collection. A missing key is an empty collection
// (first run).
func (s *RedisStore) load(ctx context.Context) ([]*domain.SavedReport, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read report collection: %w", err)
	}

	var reports []*domain.SavedReport
	if err := json.Unmarshal(raw, &reports); err != nil {
		return nil, fmt.Errorf("decoding report collection: %w", err)
	}
	return reports, nil
}

// save rewrites the whole collection.
func (s *RedisStore) save(ctx context.Context, reports []*domain.SavedReport) error {
	raw, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("encoding report collection: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write report collection: %w", err)
	}
	return nil
}

// Put replaces an existing report in place or inserts a new one at the head.
func (s *RedisStore) Put(ctx context.Context, report *domain.SavedReport) error {
	reports, err := s.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range reports {
		if existing.ID == report.ID {
			reports[i] = report
			replaced = true
			break
		}
	}
	if !replaced {
		reports = append([]*domain.SavedReport{report}, reports...)
	}

	return s.save(ctx, reports)
}

// Get retrieves a report by id.
func (s *RedisStore) Get(ctx context.Context, id string) (*domain.SavedReport, error) {
	reports, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, report := range reports {
		if report.ID == id {
			return report, nil
		}
	}
	return nil, fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
}

// List returns the reports newest-first.
func (s *RedisStore) List(ctx context.Context) ([]*domain.SavedReport, error) {
	return s.load(ctx)
}

// Delete removes a report by id.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	reports, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i, report := range reports {
		if report.ID == id {
			reports = append(reports[:i], reports[i+1:]...)
			return s.save(ctx, reports)
		}
	}
	return fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
}

// Count returns the number of stored reports.
func (s *RedisStore) Count(ctx context.Context) (int64, error) {
	reports, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(reports)), nil
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
