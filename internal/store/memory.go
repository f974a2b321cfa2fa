package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/sono-report-server/internal/domain"
)

// MemoryStore is an in-memory Store. It backs tests and the "memory"
// storage backend for ephemeral single-session use.
type MemoryStore struct {
	mu      sync.RWMutex
	reports []*domain.SavedReport
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Put replaces an existing report in place or inserts a new one at the head.
func (s *MemoryStore) Put(ctx context.Context, report *domain.SavedReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := *report
	for i, existing := range s.reports {
		if existing.ID == report.ID {
			s.reports[i] = &snapshot
			return nil
		}
	}

	s.reports = append([]*domain.SavedReport{&snapshot}, s.reports...)
	return nil
}

// Get retrieves a report by id.
func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.SavedReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, report := range s.reports {
		if report.ID == id {
			snapshot := *report
			return &snapshot, nil
		}
	}
	return nil, fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
}

// List returns the reports newest-first.
func (s *MemoryStore) List(ctx context.Context) ([]*domain.SavedReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.SavedReport, len(s.reports))
	for i, report := range s.reports {
		snapshot := *report
		out[i] = &snapshot
	}
	return out, nil
}

// Delete removes a report by id.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, report := range s.reports {
		if report.ID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
}

// Count returns the number of stored reports.
func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.reports)), nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
