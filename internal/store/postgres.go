package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/sono-report-server/internal/domain"
)

// PostgresStore implements Store using PostgreSQL. It expects the schema to
// already exist (created via migrations). Newest-first ordering rides on the
// seq column: inserts advance the sequence, upserts leave it untouched.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL report store around an existing
// connection.
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreFromURL creates a new PostgreSQL report store from a
// connection URL.
func NewPostgresStoreFromURL(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	store, err := NewPostgresStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// Put inserts a new report or replaces an existing one in place. The upsert
// never touches seq, so an updated report keeps its position in the
// newest-first ordering.
func (s *PostgresStore) Put(ctx context.Context, report *domain.SavedReport) error {
	selected, err := encodeSelected(report.SelectedAbnormal)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO reports (
			id, patient_name, patient_id, rrn, age, sex, exam_date,
			exam_code, normal_findings, selected_abnormal,
			additional_findings, impression, saved_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			patient_name = EXCLUDED.patient_name,
			patient_id = EXCLUDED.patient_id,
			rrn = EXCLUDED.rrn,
			age = EXCLUDED.age,
			sex = EXCLUDED.sex,
			exam_date = EXCLUDED.exam_date,
			exam_code = EXCLUDED.exam_code,
			normal_findings = EXCLUDED.normal_findings,
			selected_abnormal = EXCLUDED.selected_abnormal,
			additional_findings = EXCLUDED.additional_findings,
			impression = EXCLUDED.impression,
			saved_at = EXCLUDED.saved_at`

	_, err = s.db.ExecContext(ctx, query,
		report.ID,
		report.Patient.Name,
		report.Patient.PatientID,
		report.Patient.RRN,
		report.Patient.Age,
		string(report.Patient.Sex),
		encodeExamDate(report.Patient.ExamDate),
		report.ExamCode,
		report.NormalFindings,
		selected,
		report.AdditionalFindings,
		report.Impression,
		report.SavedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert report: %w", err)
	}
	return nil
}

// Get retrieves a report by id.
func (s *PostgresStore) Get(ctx context.Context, id string) (*domain.SavedReport, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+reportColumns+`
		FROM reports
		WHERE id = $1
	`, id)

	report, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan report: %w", err)
	}
	return report, nil
}

// List returns all reports newest-first.
func (s *PostgresStore) List(ctx context.Context) ([]*domain.SavedReport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+reportColumns+`
		FROM reports
		ORDER BY seq DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var result []*domain.SavedReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, report)
	}
	return result, rows.Err()
}

// Delete removes a report by id.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the total number of reports.
func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reports").Scan(&count)
	return count, err
}

// Close closes the store and releases resources.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

var _ Store = (*PostgresStore)(nil)
