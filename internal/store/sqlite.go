package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/sono-report-server/internal/domain"
)

// SQLiteStore implements Store using SQLite. It is the default backend: a
// single local file, no external services.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite report store. It creates the database
// file and schema if they don't exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// createSchema creates the reports table. Newest-first ordering rides on the
// implicit rowid: inserts get increasing rowids and updates keep them, so
// "ORDER BY rowid DESC" preserves each record's position across edits.
func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		patient_name TEXT NOT NULL,
		patient_id TEXT NOT NULL DEFAULT '',
		rrn TEXT NOT NULL DEFAULT '',
		age TEXT NOT NULL DEFAULT '',
		sex TEXT NOT NULL DEFAULT '',
		exam_date TEXT NOT NULL DEFAULT '',
		exam_code TEXT NOT NULL,
		normal_findings TEXT NOT NULL DEFAULT '',
		selected_abnormal TEXT NOT NULL DEFAULT '[]',
		additional_findings TEXT NOT NULL DEFAULT '',
		impression TEXT NOT NULL DEFAULT '',
		saved_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reports_exam_code ON reports(exam_code);
	CREATE INDEX IF NOT EXISTS idx_reports_saved_at ON reports(saved_at);
	`

	_, err := db.Exec(schema)
	return err
}

const reportColumns = `id, patient_name, patient_id, rrn, age, sex, exam_date,
		exam_code, normal_findings, selected_abnormal, additional_findings,
		impression, saved_at`

// scanner is an interface for sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanReport scans a row into a SavedReport.
func scanReport(s scanner) (*domain.SavedReport, error) {
	report := &domain.SavedReport{}
	var sex, examDate, selected string

	err := s.Scan(
		&report.ID, &report.Patient.Name, &report.Patient.PatientID,
		&report.Patient.RRN, &report.Patient.Age, &sex, &examDate,
		&report.ExamCode, &report.NormalFindings, &selected,
		&report.AdditionalFindings, &report.Impression, &report.SavedAt,
	)
	if err != nil {
		return nil, err
	}

	report.Patient.Sex = domain.Sex(sex)
	if examDate != "" {
		d, err := domain.ParseDate(examDate)
		if err != nil {
			return nil, fmt.Errorf("decoding exam date: %w", err)
		}
		report.Patient.ExamDate = d
	}
	if err := json.Unmarshal([]byte(selected), &report.SelectedAbnormal); err != nil {
		return nil, fmt.Errorf("decoding selected findings: %w", err)
	}

	return report, nil
}

// encodeSelected serializes the selection as a JSON array so the selection
// order survives the round trip.
func encodeSelected(findings []string) (string, error) {
	if findings == nil {
		findings = []string{}
	}
	raw, err := json.Marshal(findings)
	if err != nil {
		return "", fmt.Errorf("encoding selected findings: %w", err)
	}
	return string(raw), nil
}

func encodeExamDate(d domain.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

// Put replaces an existing report in place or inserts a new one.
func (s *SQLiteStore) Put(ctx context.Context, report *domain.SavedReport) error {
	selected, err := encodeSelected(report.SelectedAbnormal)
	if err != nil {
		return err
	}

	var existing string
	err = s.db.QueryRowContext(ctx,
		"SELECT id FROM reports WHERE id = ?", report.ID,
	).Scan(&existing)

	if err == nil {
		_, err = s.db.ExecContext(ctx, `
			UPDATE reports SET
				patient_name = ?,
				patient_id = ?,
				rrn = ?,
				age = ?,
				sex = ?,
				exam_date = ?,
				exam_code = ?,
				normal_findings = ?,
				selected_abnormal = ?,
				additional_findings = ?,
				impression = ?,
				saved_at = ?
			WHERE id = ?
		`,
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
			report.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update report: %w", err)
		}
		return nil
	}

	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check existing: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (`+reportColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
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
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}

// Get retrieves a report by id.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*domain.SavedReport, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+reportColumns+`
		FROM reports
		WHERE id = ?
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
func (s *SQLiteStore) List(ctx context.Context) ([]*domain.SavedReport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+reportColumns+`
		FROM reports
		ORDER BY rowid DESC
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
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
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
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reports").Scan(&count)
	return count, err
}

// Close closes the store and releases resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
