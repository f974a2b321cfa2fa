// Package service orchestrates report composition: save-or-update identity
// rules, document rendering with caching, and collection export/import.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/sono-report-server/internal/catalog"
	"github.com/sono-report-server/internal/domain"
	"github.com/sono-report-server/internal/store"
)

// ReportService coordinates the template catalog, the report store, and the
// deterministic composition functions in the domain package.
type ReportService struct {
	store   store.Store
	catalog *catalog.Catalog
	log     *logrus.Logger

	// docs caches rendered documents of saved reports by id. Entries are
	// invalidated on save and delete, never expired by time: rendering is
	// deterministic in the stored snapshot.
	docs *lru.Cache[string, string]
}

// NewReportService creates a report service with a rendered-document cache
// of the given size.
func NewReportService(st store.Store, cat *catalog.Catalog, logger *logrus.Logger, cacheSize int) (*ReportService, error) {
	docs, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating document cache: %w", err)
	}

	return &ReportService{
		store:   st,
		catalog: cat,
		log:     logger,
		docs:    docs,
	}, nil
}

// Catalog exposes the exam template catalog.
func (s *ReportService) Catalog() *catalog.Catalog {
	return s.catalog
}

// Save persists a draft as a snapshot. With an existingID matching a stored
// record the record is replaced in place, keeping its id and position in the
// newest-first collection; otherwise a fresh id is minted and the snapshot
// is inserted at the head. An existingID that matches nothing is treated as
// a new save. SavedAt is stamped with the current instant on every save.
func (s *ReportService) Save(ctx context.Context, draft *domain.ReportDraft, existingID string) (*domain.SavedReport, error) {
	if err := draft.CheckSavePreconditions(); err != nil {
		return nil, err
	}

	t, err := s.catalog.Get(draft.ExamCode)
	if err != nil {
		return nil, err
	}
	if err := draft.Validate(t); err != nil {
		return nil, err
	}

	id := existingID
	updating := false
	if id != "" {
		if _, err := s.store.Get(ctx, id); err == nil {
			updating = true
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	if !updating {
		id = uuid.NewString()
	}

	report := &domain.SavedReport{
		ID:          id,
		ReportDraft: *draft,
		SavedAt:     time.Now().UTC(),
	}

	if err := s.store.Put(ctx, report); err != nil {
		s.log.WithFields(logrus.Fields{
			"report_id": id,
			"exam_code": draft.ExamCode,
			"error":     err,
		}).Error("Failed to save report")
		return nil, err
	}
	s.docs.Remove(id)

	s.log.WithFields(logrus.Fields{
		"report_id": id,
		"exam_code": draft.ExamCode,
		"updated":   updating,
	}).Info("Report saved")

	return report, nil
}

// Get retrieves a saved report snapshot by id.
func (s *ReportService) Get(ctx context.Context, id string) (*domain.SavedReport, error) {
	return s.store.Get(ctx, id)
}

// List returns all saved reports, newest-first.
func (s *ReportService) List(ctx context.Context) ([]*domain.SavedReport, error) {
	return s.store.List(ctx)
}

// Delete removes a saved report.
func (s *ReportService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.docs.Remove(id)
	s.log.WithField("report_id", id).Info("Report deleted")
	return nil
}

// Count returns the number of saved reports.
func (s *ReportService) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// Document renders the final document of a saved report. The rendered text
// is cached by report id; the suggested filename is recomputed per call and
// returned empty when its preconditions are not met.
func (s *ReportService) Document(ctx context.Context, id string) (text, filename string, err error) {
	report, err := s.store.Get(ctx, id)
	if err != nil {
		return "", "", err
	}

	t, _ := s.catalog.Get(report.ExamCode)

	if cached, ok := s.docs.Get(id); ok {
		text = cached
	} else {
		text = domain.RenderDocument(&report.ReportDraft, t)
		s.docs.Add(id, text)
	}

	filename, fnErr := domain.SuggestFilename(&report.ReportDraft, t)
	if fnErr != nil {
		filename = ""
	}

	return text, filename, nil
}

// Preview renders a draft without saving it. The template may be absent
// from the catalog; rendering then falls back to the raw exam code for the
// examination name. The suggested filename is empty when its preconditions
// are not met.
func (s *ReportService) Preview(draft *domain.ReportDraft) (text, filename string) {
	t, _ := s.catalog.Get(draft.ExamCode)

	text = domain.RenderDocument(draft, t)
	filename, err := domain.SuggestFilename(draft, t)
	if err != nil {
		filename = ""
	}
	return text, filename
}

// ComposeImpression composes the impression for an exam code and a selection
// in caller order.
func (s *ReportService) ComposeImpression(examCode string, findings []string) (string, error) {
	t, err := s.catalog.Get(examCode)
	if err != nil {
		return "", err
	}
	for _, finding := range findings {
		if !t.HasFinding(finding) {
			return "", fmt.Errorf("composing impression for %q: %w", finding, domain.ErrUnknownFinding)
		}
	}
	return domain.ComposeImpression(t, findings), nil
}

// Export writes the whole collection as JSON.
func (s *ReportService) Export(ctx context.Context, w io.Writer) error {
	return store.ExportJSON(ctx, s.store, w)
}

// Import reads a collection export, inserting reports whose ids are not
// already present. The document cache is purged because imported ids may
// shadow previously cached misses.
func (s *ReportService) Import(ctx context.Context, r io.Reader) (imported, skipped int, err error) {
	imported, skipped, err = store.ImportJSON(ctx, s.store, r)
	if err == nil {
		s.docs.Purge()
	}
	return imported, skipped, err
}
