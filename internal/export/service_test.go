package export

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/chartpull/portal-extractor/constants"
	"github.com/chartpull/portal-extractor/gen/ent"
	"github.com/chartpull/portal-extractor/internal/common"
	"github.com/chartpull/portal-extractor/internal/repository"
)

type mockJobRepo struct {
	jobs  map[uuid.UUID]*ent.ExtractionJob
	paths map[uuid.UUID]string
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{
		jobs:  make(map[uuid.UUID]*ent.ExtractionJob),
		paths: make(map[uuid.UUID]string),
	}
}

func (m *mockJobRepo) Create(_ context.Context, _ repository.CreateJobParams) (*ent.ExtractionJob, error) {
	panic("not used in export tests")
}

func (m *mockJobRepo) Get(_ context.Context, id uuid.UUID) (*ent.ExtractionJob, error) {
	job, ok := m.jobs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return job, nil
}

func (m *mockJobRepo) Transition(_ context.Context, _ uuid.UUID, _ []constants.JobStatus, _ constants.JobStatus) (bool, error) {
	return false, nil
}

func (m *mockJobRepo) Complete(_ context.Context, _ uuid.UUID, _ constants.JobStatus, _ json.RawMessage) (bool, error) {
	return false, nil
}

func (m *mockJobRepo) Terminate(_ context.Context, _ uuid.UUID, _ []constants.JobStatus, _ constants.JobStatus, _ string) (bool, error) {
	return false, nil
}

func (m *mockJobRepo) SetResultsFilePath(_ context.Context, id uuid.UUID, path string) error {
	m.paths[id] = path
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func completedJob(t *testing.T, repo *mockJobRepo) *ent.ExtractionJob {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"patients": []map[string]any{
			{
				"patient_id":   "p-1",
				"patient_name": "Ada Byron",
				"medications":  []string{"Metformin 500mg", "Lisinopril 10mg"},
				"diagnoses":    []string{"Type 2 diabetes"},
				"allergies":    []string{"Penicillin"},
			},
			{
				"patient_id":   "p-2",
				"patient_name": "Grace Hopper",
				"medications":  []string{"Metformin 850mg"},
				"diagnoses":    []string{},
				"allergies":    []string{},
			},
		},
		"extracted_at": "2026-08-01T12:00:00Z",
	})
	require.NoError(t, err)

	job := &ent.ExtractionJob{
		ID:               uuid.New(),
		Status:           string(constants.JobStatusCompleted),
		RawExtractedData: payload,
	}
	repo.jobs[job.ID] = job
	return job
}

func TestExportJobXLSX(t *testing.T) {
	repo := newMockJobRepo()
	job := completedJob(t, repo)
	svc := NewService(repo, t.TempDir(), testLogger())

	data, err := svc.ExportJobXLSX(context.Background(), job.ID)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Patients")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two patients")
	assert.Equal(t, []string{"Patient ID", "Patient Name", "Medications", "Diagnoses", "Allergies"}, rows[0])
	assert.Equal(t, "p-1", rows[1][0])
	assert.Equal(t, "Metformin 500mg; Lisinopril 10mg", rows[1][2])
	assert.Equal(t, "Grace Hopper", rows[2][1])
}

func TestExportRejectsNonCompletedJob(t *testing.T) {
	repo := newMockJobRepo()
	job := &ent.ExtractionJob{
		ID:     uuid.New(),
		Status: string(constants.JobStatusExtracting),
	}
	repo.jobs[job.ID] = job
	svc := NewService(repo, t.TempDir(), testLogger())

	_, err := svc.ExportJobXLSX(context.Background(), job.ID)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestExportRejectsUnparseablePayload(t *testing.T) {
	repo := newMockJobRepo()
	job := &ent.ExtractionJob{
		ID:               uuid.New(),
		Status:           string(constants.JobStatusCompleted),
		RawExtractedData: json.RawMessage(`{"patients": "not a list"}`),
	}
	repo.jobs[job.ID] = job
	svc := NewService(repo, t.TempDir(), testLogger())

	_, err := svc.ExportJobXLSX(context.Background(), job.ID)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestExportUnknownJob(t *testing.T) {
	svc := NewService(newMockJobRepo(), t.TempDir(), testLogger())

	_, err := svc.ExportJobXLSX(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSaveJobResults(t *testing.T) {
	repo := newMockJobRepo()
	job := completedJob(t, repo)
	dir := t.TempDir()
	svc := NewService(repo, dir, testLogger())

	path, err := svc.SaveJobResults(context.Background(), job.ID)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, job.ID.String()+".xlsx"), path)
	assert.Equal(t, path, repo.paths[job.ID])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	wb.Close()
}
