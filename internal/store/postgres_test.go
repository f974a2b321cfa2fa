package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sono-report-server/internal/domain"
)

// getTestDB returns a database connection for testing.
// Skip test if TEST_DATABASE_URL is not set.
func getTestDB(t *testing.T) *sql.DB {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL tests")
	}

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS reports (
			seq BIGSERIAL,
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
			saved_at TIMESTAMP WITH TIME ZONE NOT NULL
		)
	`)
	require.NoError(t, err)

	_, err = db.Exec("DELETE FROM reports")
	require.NoError(t, err)

	return db
}

func TestPostgresStore_PutAndGet(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	s, err := NewPostgresStore(db)
	require.NoError(t, err)

	ctx := context.Background()
	report := testReport("id-1", "Kim")
	report.SelectedAbnormal = []string{"Hepatomegaly"}
	require.NoError(t, s.Put(ctx, report))

	got, err := s.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.ID)
	assert.Equal(t, "Kim", got.Patient.Name)
	assert.Equal(t, []string{"Hepatomegaly"}, got.SelectedAbnormal)
}

func TestPostgresStore_UpsertKeepsPosition(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	s, err := NewPostgresStore(db)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Put(ctx, testReport("id-1", "First")))
	require.NoError(t, s.Put(ctx, testReport("id-2", "Second")))
	require.NoError(t, s.Put(ctx, testReport("id-3", "Third")))

	require.NoError(t, s.Put(ctx, testReport("id-2", "Second Revised")))

	reports, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "id-3", reports[0].ID)
	assert.Equal(t, "id-2", reports[1].ID, "upsert must not advance seq")
	assert.Equal(t, "Second Revised", reports[1].Patient.Name)
	assert.Equal(t, "id-1", reports[2].ID)
}

func TestPostgresStore_DeleteNotFound(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	s, err := NewPostgresStore(db)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Delete(context.Background(), "missing"), domain.ErrNotFound)
}

func TestNewPostgresStore_NilConnection(t *testing.T) {
	_, err := NewPostgresStore(nil)
	assert.Error(t, err)
}

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	s, err := NewPostgresStore(db)
	require.NoError(t, err)

	return s, mock
}

func TestPostgresStore_Put_QueryError(t *testing.T) {
	s, mock := newMockStore(t)
	defer s.Close()

	mock.ExpectExec("INSERT INTO reports").WillReturnError(errors.New("connection reset"))

	err := s.Put(context.Background(), testReport("id-1", "Kim"))
	assert.ErrorContains(t, err, "failed to upsert report")
}

func TestPostgresStore_Get_MissRow(t *testing.T) {
	s, mock := newMockStore(t)
	defer s.Close()

	mock.ExpectQuery("SELECT (.+) FROM reports").WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgresStore_List_QueryError(t *testing.T) {
	s, mock := newMockStore(t)
	defer s.Close()

	mock.ExpectQuery("SELECT (.+) FROM reports").WillReturnError(errors.New("connection reset"))

	_, err := s.List(context.Background())
	assert.ErrorContains(t, err, "failed to query reports")
}

func TestPostgresStore_Delete_NoRowsAffected(t *testing.T) {
	s, mock := newMockStore(t)
	defer s.Close()

	mock.ExpectExec("DELETE FROM reports").WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
