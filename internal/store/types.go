// Package store provides durable storage for saved report snapshots. The
// collection is ordered newest-first: new reports are inserted at the head,
// updates replace a record in place without moving it.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sono-report-server/internal/domain"
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// Store defines the interface for report snapshot storage.
type Store interface {
	// Put inserts the report at the head of the collection, or replaces an
	// existing record with the same id in place (position preserved).
	Put(ctx context.Context, report *domain.SavedReport) error

	// Get retrieves a report by id. Returns domain.ErrNotFound on a miss.
	Get(ctx context.Context, id string) (*domain.SavedReport, error)

	// List returns all reports, newest-first.
	List(ctx context.Context) ([]*domain.SavedReport, error)

	// Delete removes a report by id. Returns domain.ErrNotFound on a miss.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored reports.
	Count(ctx context.Context) (int64, error)

	// Close closes the store and releases resources.
	Close() error
}

// Export is the JSON export format for a whole report collection.
type Export struct {
	Version    string                `json:"version"`
	ExportedAt time.Time             `json:"exported_at"`
	Count      int                   `json:"count"`
	Reports    []*domain.SavedReport `json:"reports"`
}

// exportVersion is bumped only on incompatible format changes.
const exportVersion = "1.0"

// ExportJSON writes the whole collection, newest-first, to the writer.
func ExportJSON(ctx context.Context, s Store, w io.Writer) error {
	reports, err := s.List(ctx)
	if err != nil {
		return fmt.Errorf("listing reports for export: %w", err)
	}

	export := &Export{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC(),
		Count:      len(reports),
		Reports:    reports,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(export)
}

// ImportJSON reads an export and inserts every report whose id is not
// already present. Existing reports are never overwritten. Reports are
// replayed oldest-first so the imported collection keeps its order.
func ImportJSON(ctx context.Context, s Store, r io.Reader) (imported, skipped int, err error) {
	var export Export
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return 0, 0, fmt.Errorf("decoding report export: %w", err)
	}

	for i := len(export.Reports) - 1; i >= 0; i-- {
		report := export.Reports[i]

		if _, err := s.Get(ctx, report.ID); err == nil {
			skipped++
			continue
		} else if !isNotFound(err) {
			return imported, skipped, fmt.Errorf("checking existing report: %w", err)
		}

		if err := s.Put(ctx, report); err != nil {
			return imported, skipped, fmt.Errorf("importing report %s: %w", report.ID, err)
		}
		imported++
	}

	return imported, skipped, nil
}
