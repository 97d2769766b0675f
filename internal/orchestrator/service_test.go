package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartpull/portal-extractor/constants"
	"github.com/chartpull/portal-extractor/gen/ent"
	"github.com/chartpull/portal-extractor/internal/async"
	"github.com/chartpull/portal-extractor/internal/coverage"
	"github.com/chartpull/portal-extractor/internal/jobs"
	"github.com/chartpull/portal-extractor/internal/registry"
	"github.com/chartpull/portal-extractor/internal/repository"
	"github.com/chartpull/portal-extractor/internal/reuse"
)

// ============================================================================
// Mock implementations
// ============================================================================

type mockJobRepo struct {
	jobs map[uuid.UUID]*ent.ExtractionJob
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: make(map[uuid.UUID]*ent.ExtractionJob)}
}

func (m *mockJobRepo) Create(_ context.Context, p repository.CreateJobParams) (*ent.ExtractionJob, error) {
	now := time.Now()
	job := &ent.ExtractionJob{
		ID:                uuid.New(),
		JobName:           p.JobName,
		TargetURL:         p.TargetURL,
		AdapterID:         p.AdapterID,
		ExtractionMode:    string(p.Mode),
		PatientIdentifier: p.PatientIdentifier,
		Medication:        p.Medication,
		Status:            string(constants.JobStatusPendingLogin),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	m.jobs[job.ID] = job
	return job, nil
}

func (m *mockJobRepo) Get(_ context.Context, id uuid.UUID) (*ent.ExtractionJob, error) {
	job, ok := m.jobs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return job, nil
}

func (m *mockJobRepo) Transition(_ context.Context, id uuid.UUID, from []constants.JobStatus, to constants.JobStatus) (bool, error) {
	job, ok := m.jobs[id]
	if !ok || !statusIn(job.Status, from) {
		return false, nil
	}
	job.Status = string(to)
	return true, nil
}

func (m *mockJobRepo) Complete(_ context.Context, id uuid.UUID, from constants.JobStatus, payload json.RawMessage) (bool, error) {
	job, ok := m.jobs[id]
	if !ok || job.Status != string(from) {
		return false, nil
	}
	job.Status = string(constants.JobStatusCompleted)
	job.RawExtractedData = payload
	return true, nil
}

func (m *mockJobRepo) Terminate(_ context.Context, id uuid.UUID, from []constants.JobStatus, to constants.JobStatus, message string) (bool, error) {
	job, ok := m.jobs[id]
	if !ok || !statusIn(job.Status, from) {
		return false, nil
	}
	job.Status = string(to)
	job.ErrorMessage = message
	return true, nil
}

func (m *mockJobRepo) SetResultsFilePath(_ context.Context, id uuid.UUID, path string) error {
	if job, ok := m.jobs[id]; ok {
		job.ResultsFilePath = path
	}
	return nil
}

func statusIn(status string, set []constants.JobStatus) bool {
	for _, s := range set {
		if status == string(s) {
			return true
		}
	}
	return false
}

type mockAdapterRepo struct {
	adapter *ent.PortalAdapter
}

func (m *mockAdapterRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.PortalAdapter, error) {
	if m.adapter != nil && m.adapter.ID == id {
		return m.adapter, nil
	}
	return nil, &ent.NotFoundError{}
}

func (m *mockAdapterRepo) GetByName(_ context.Context, name string) (*ent.PortalAdapter, error) {
	if m.adapter != nil && m.adapter.Name == name {
		return m.adapter, nil
	}
	return nil, &ent.NotFoundError{}
}

func (m *mockAdapterRepo) List(_ context.Context, _ bool) ([]*ent.PortalAdapter, error) {
	if m.adapter == nil {
		return nil, nil
	}
	return []*ent.PortalAdapter{m.adapter}, nil
}

func (m *mockAdapterRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return m.adapter != nil && m.adapter.ID == id, nil
}

type mockQueue struct {
	enqueued   []async.Job
	enqueueErr error
}

func (m *mockQueue) Enqueue(_ context.Context, j async.Job) error {
	if m.enqueueErr != nil {
		return m.enqueueErr
	}
	m.enqueued = append(m.enqueued, j)
	return nil
}

func (m *mockQueue) Shutdown(_ context.Context) {}

type mockEvaluator struct {
	sessions []coverage.SessionSummary
	scores   map[int64]coverage.Score
}

func (m *mockEvaluator) FindOverlappingSessions(_ context.Context, _ string, _, _ time.Time) ([]coverage.SessionSummary, error) {
	return m.sessions, nil
}

func (m *mockEvaluator) ScoreCoverage(_ context.Context, sessionID int64, _, _ time.Time) (coverage.Score, error) {
	return m.scores[sessionID], nil
}

func (m *mockEvaluator) SampleEvidence(_ context.Context, _ int64, _ int) ([]coverage.PatientEvidence, error) {
	return nil, nil
}

// ============================================================================
// Fixtures
// ============================================================================

type fixture struct {
	svc     *Service
	jobRepo *mockJobRepo
	queue   *mockQueue
}

func newFixture(t *testing.T, ev reuse.SessionEvaluator, queue *mockQueue) fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	adapterRepo := &mockAdapterRepo{adapter: &ent.PortalAdapter{
		ID:               uuid.New(),
		Name:             "evergreen_health",
		ScriptIdentifier: "evergreen_health_extractor.py",
		IsActive:         true,
	}}
	jobRepo := newMockJobRepo()
	jobSvc := jobs.NewService(jobRepo, registry.NewRegistry(adapterRepo, logger), logger)

	engine := reuse.NewEngine(func(_ context.Context, _ string) (reuse.SessionEvaluator, error) {
		return ev, nil
	}, logger)

	return fixture{
		svc:     NewService(engine, jobSvc, queue, logger),
		jobRepo: jobRepo,
		queue:   queue,
	}
}

func submitRequest() SubmitRequest {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	return SubmitRequest{
		Provider: "evergreen",
		CreateRequest: jobs.CreateRequest{
			JobName:     "metformin sweep",
			TargetURL:   "https://portal.evergreen.example/login",
			AdapterName: "evergreen_health",
			Mode:        constants.ModeAllPatients,
			Medication:  "metformin",
			StartDate:   &start,
			EndDate:     &end,
		},
	}
}

// ============================================================================
// Tests
// ============================================================================

func TestSubmitReusesStoredDataWithoutCreatingJob(t *testing.T) {
	ev := &mockEvaluator{
		sessions: []coverage.SessionSummary{{ID: 12, CreatedAt: time.Now()}},
		scores:   map[int64]coverage.Score{12: {Percentage: 100, ProcessedPatients: 10}},
	}
	f := newFixture(t, ev, &mockQueue{})

	res, err := f.svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	assert.True(t, res.Decision.ShouldReuse)
	assert.Nil(t, res.Job, "reuse must not create a job row")
	assert.Empty(t, f.jobRepo.jobs)
	assert.Empty(t, f.queue.enqueued)
}

func TestSubmitCreatesAndEnqueuesWhenNoCoverage(t *testing.T) {
	f := newFixture(t, &mockEvaluator{}, &mockQueue{})

	res, err := f.svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	assert.False(t, res.Decision.ShouldReuse)
	assert.Equal(t, constants.ActionExtractNew, res.Decision.Action)
	require.NotNil(t, res.Job)
	assert.Equal(t, string(constants.JobStatusPendingLogin), res.Job.Status)
	require.Len(t, f.queue.enqueued, 1)
	assert.Equal(t, res.Job.ID, f.queue.enqueued[0].JobID)
}

func TestSubmitValidationFailureCreatesNothing(t *testing.T) {
	f := newFixture(t, &mockEvaluator{}, &mockQueue{})

	req := submitRequest()
	req.TargetURL = ""
	_, err := f.svc.Submit(context.Background(), req)

	require.Error(t, err)
	assert.Empty(t, f.jobRepo.jobs)
	assert.Empty(t, f.queue.enqueued)
}

func TestSubmitEnqueueFailureFailsTheJob(t *testing.T) {
	queue := &mockQueue{enqueueErr: errors.New("queue full")}
	f := newFixture(t, &mockEvaluator{}, queue)

	res, err := f.svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	require.NotNil(t, res.Job)
	assert.Equal(t, string(constants.JobStatusFailed), res.Job.Status)
	assert.Contains(t, res.Job.ErrorMessage, "failed to queue automation run")
}

func TestSubmitDecisionAlwaysSurfaces(t *testing.T) {
	f := newFixture(t, &mockEvaluator{}, &mockQueue{})

	res, err := f.svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, res.Decision.Reason)
}
