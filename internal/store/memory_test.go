package store

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sono-report-server/internal/domain"
)

func testReport(id, name string) *domain.SavedReport {
	return &domain.SavedReport{
		ID: id,
		ReportDraft: domain.ReportDraft{
			Patient: domain.PatientInfo{
				Name:     name,
				Sex:      domain.SexFemale,
				ExamDate: domain.NewDate(2025, time.June, 15),
			},
			ExamCode:       "Abdomen",
			NormalFindings: "FINDINGS:\nUnremarkable.",
			Impression:     "Normal study.",
		},
		SavedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestMemoryStore_PutAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	report := testReport("id-1", "Kim")
	require.NoError(t, s.Put(ctx, report))

	got, err := s.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.ID)
	assert.Equal(t, report.Patient.Name, got.Patient.Name)
}

func TestMemoryStore_Get_NotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryStore_List_NewestFirst(t *testing.T) {
	s := NewMemoryStore()
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

func TestMemoryStore_Put_UpdateKeepsPosition(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, testReport("id-1", "First")))
	require.NoError(t, s.Put(ctx, testReport("id-2", "Second")))
	require.NoError(t, s.Put(ctx, testReport("id-3", "Third")))

	updated := testReport("id-2", "Second Revised")
	require.NoError(t, s.Put(ctx, updated))

	reports, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "id-2", reports[1].ID, "updated report keeps its slot")
	assert.Equal(t, "Second Revised", reports[1].Patient.Name)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, testReport("id-1", "Kim")))
	require.NoError(t, s.Delete(ctx, "id-1"))

	_, err := s.Get(ctx, "id-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "id-1"), domain.ErrNotFound)
}

func TestMemoryStore_Count(t *testing.T) {
	s := NewMemoryStore()
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

func TestMemoryStore_SnapshotIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	report := testReport("id-1", "Kim")
	require.NoError(t, s.Put(ctx, report))

	// Mutating the caller's copy must not affect the stored record.
	report.Patient.Name = "Mutated"

	got, err := s.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Kim", got.Patient.Name)
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := NewMemoryStore()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, src.Put(ctx, testReport(fmt.Sprintf("id-%d", i), fmt.Sprintf("Patient %d", i))))
	}

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(ctx, src, &buf))

	dst := NewMemoryStore()
	imported, skipped, err := ImportJSON(ctx, dst, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, imported)
	assert.Zero(t, skipped)

	srcList, err := src.List(ctx)
	require.NoError(t, err)
	dstList, err := dst.List(ctx)
	require.NoError(t, err)

	require.Len(t, dstList, 3)
	for i := range srcList {
		assert.Equal(t, srcList[i].ID, dstList[i].ID, "import preserves order")
	}
}

func TestImportJSON_SkipsExistingIDs(t *testing.T) {
	src := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, src.Put(ctx, testReport("id-1", "Kim")))
	require.NoError(t, src.Put(ctx, testReport("id-2", "Lee")))

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(ctx, src, &buf))

	dst := NewMemoryStore()
	existing := testReport("id-2", "Lee Original")
	require.NoError(t, dst.Put(ctx, existing))

	imported, skipped, err := ImportJSON(ctx, dst, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Equal(t, 1, skipped)

	got, err := dst.Get(ctx, "id-2")
	require.NoError(t, err)
	assert.Equal(t, "Lee Original", got.Patient.Name, "existing report not overwritten")
}

func TestImportJSON_MalformedInput(t *testing.T) {
	dst := NewMemoryStore()

	_, _, err := ImportJSON(context.Background(), dst, bytes.NewBufferString("{not json"))
	assert.Error(t, err)
}
