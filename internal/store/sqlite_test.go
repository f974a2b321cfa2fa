package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sono-report-server/internal/domain"
)

func createTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "reports.db")
	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNewSQLiteStore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "reports.db")

	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist")
}

func TestSQLiteStore_PutAndGet(t *testing.T) {
	s := createTestSQLiteStore(t)
	ctx := context.Background()

	report := testReport("id-1", "Kim")
	report.Patient.RRN = "230101-3456789"
	report.SelectedAbnormal = []string{"Hepatomegaly", "Splenomegaly"}
	require.NoError(t, s.Put(ctx, report))

	got, err := s.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.ID)
	assert.Equal(t, report.Patient, got.Patient)
	assert.Equal(t, report.ExamCode, got.ExamCode)
	assert.Equal(t, []string{"Hepatomegaly", "Splenomegaly"}, got.SelectedAbnormal,
		"selection order survives the round trip")
	assert.WithinDuration(t, report.SavedAt, got.SavedAt, time.Second)
}

func TestSQLiteStore_Get_NotFound(t *testing.T) {
	s := createTestSQLiteStore(t)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteStore_List_NewestFirst(t *testing.T) {
	s := createTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, testReport("id-1", "First")))
	require.NoError(t, s.Put(ctx, testReport("id-2", "Second")))
	require.NoError(t, s.Put(ctx, testReport("id-3", "Third")))

	reports, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "id-3", reports[0].ID)
	assert.Equal(t, "id-2", reports[1].ID)
	assert.Equal(t, "id-1", reports[2].ID)
}

func TestSQLiteStore_Put_UpdateKeepsPosition(t *testing.T) {
	s := createTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, testReport("id-1", "First")))
	require.NoError(t, s.Put(ctx, testReport("id-2", "Second")))
	require.NoError(t, s.Put(ctx, testReport("id-3", "Third")))

	updated := testReport("id-2", "Second Revised")
	require.NoError(t, s.Put(ctx, updated))

	reports, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 3, "update must not create a new record")
	assert.Equal(t, "id-2", reports[1].ID, "updated report keeps its slot")
	assert.Equal(t, "Second Revised", reports[1].Patient.Name)
}

func TestSQLiteStore_EmptySelectionRoundTrip(t *testing.T) {
	s := createTestSQLiteStore(t)
	ctx := context.Background()

	report := testReport("id-1", "Kim")
	report.SelectedAbnormal = nil
	require.NoError(t, s.Put(ctx, report))

	got, err := s.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Empty(t, got.SelectedAbnormal)
}

func TestSQLiteStore_ZeroExamDateRoundTrip(t *testing.T) {
	s := createTestSQLiteStore(t)
	ctx := context.Background()

	report := testReport("id-1", "Kim")
	report.Patient.ExamDate = domain.Date{}
	require.NoError(t, s.Put(ctx, report))

	got, err := s.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.True(t, got.Patient.ExamDate.IsZero())
}

func TestSQLiteStore_Delete(t *testing.T) {
	s := createTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, testReport("id-1", "Kim")))
	require.NoError(t, s.Delete(ctx, "id-1"))

	_, err := s.Get(ctx, "id-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "id-1"), domain.ErrNotFound)
}

func TestSQLiteStore_Count(t *testing.T) {
	s := createTestSQLiteStore(t)
	ctx := context.Background()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, s.Put(ctx, testReport("id-1", "Kim")))
	require.NoError(t, s.Put(ctx, testReport("id-2", "Lee")))

	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestSQLiteStore_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reports.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, testReport("id-1", "Kim")))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Kim", got.Patient.Name)
}
