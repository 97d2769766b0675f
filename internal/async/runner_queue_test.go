package async

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartpull/portal-extractor/constants"
	"github.com/chartpull/portal-extractor/gen/ent"
	"github.com/chartpull/portal-extractor/internal/automation"
	"github.com/chartpull/portal-extractor/internal/jobs"
	"github.com/chartpull/portal-extractor/internal/registry"
	"github.com/chartpull/portal-extractor/internal/repository"
)

// ============================================================================
// Mock implementations
// ============================================================================

type mockJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*ent.ExtractionJob
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: make(map[uuid.UUID]*ent.ExtractionJob)}
}

func (m *mockJobRepo) seed(status constants.JobStatus) *ent.ExtractionJob {
	m.mu.Lock()
	defer m.mu.Unlock()
	job := &ent.ExtractionJob{
		ID:             uuid.New(),
		TargetURL:      "https://portal.example/login",
		ExtractionMode: string(constants.ModeAllPatients),
		Status:         string(status),
		Edges: ent.ExtractionJobEdges{
			Adapter: &ent.PortalAdapter{
				ID:               uuid.New(),
				Name:             "evergreen_health",
				ScriptIdentifier: "evergreen_health_extractor.py",
				IsActive:         true,
			},
		},
	}
	m.jobs[job.ID] = job
	return job
}

func (m *mockJobRepo) status(id uuid.UUID) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.jobs[id].Status
}

func (m *mockJobRepo) Create(_ context.Context, _ repository.CreateJobParams) (*ent.ExtractionJob, error) {
	panic("not used in queue tests")
}

func (m *mockJobRepo) Get(_ context.Context, id uuid.UUID) (*ent.ExtractionJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return job, nil
}

func (m *mockJobRepo) Transition(_ context.Context, id uuid.UUID, from []constants.JobStatus, to constants.JobStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok || !statusIn(job.Status, from) {
		return false, nil
	}
	job.Status = string(to)
	return true, nil
}

func (m *mockJobRepo) Complete(_ context.Context, id uuid.UUID, from constants.JobStatus, payload json.RawMessage) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok || job.Status != string(from) {
		return false, nil
	}
	job.Status = string(constants.JobStatusCompleted)
	job.RawExtractedData = payload
	return true, nil
}

func (m *mockJobRepo) Terminate(_ context.Context, id uuid.UUID, from []constants.JobStatus, to constants.JobStatus, message string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok || !statusIn(job.Status, from) {
		return false, nil
	}
	job.Status = string(to)
	job.ErrorMessage = message
	return true, nil
}

func (m *mockJobRepo) SetResultsFilePath(_ context.Context, id uuid.UUID, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
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

type stubAdapterRepo struct{}

func (stubAdapterRepo) GetByID(_ context.Context, _ uuid.UUID) (*ent.PortalAdapter, error) {
	return nil, &ent.NotFoundError{}
}
func (stubAdapterRepo) GetByName(_ context.Context, _ string) (*ent.PortalAdapter, error) {
	return nil, &ent.NotFoundError{}
}
func (stubAdapterRepo) List(_ context.Context, _ bool) ([]*ent.PortalAdapter, error) {
	return nil, nil
}
func (stubAdapterRepo) Exists(_ context.Context, _ uuid.UUID) (bool, error) { return false, nil }

// mockRunner drives the lifecycle events a real automation script would
// report, then succeeds or fails.
type mockRunner struct {
	mu     sync.Mutex
	calls  int
	runErr error
}

func (r *mockRunner) Run(ctx context.Context, job *ent.ExtractionJob, _ registry.AdapterHandle, sink automation.EventSink) error {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	if _, err := sink.Advance(ctx, job.ID, jobs.BrowserLaunched()); err != nil {
		return err
	}
	if r.runErr != nil {
		return r.runErr
	}
	if _, err := sink.Advance(ctx, job.ID, jobs.ExtractionStarted()); err != nil {
		return err
	}
	payload := json.RawMessage(`{"patients": [{"patient_id": "p-1"}]}`)
	if _, err := sink.Advance(ctx, job.ID, jobs.ExtractionCompleted(payload)); err != nil {
		return err
	}
	return nil
}

func (r *mockRunner) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func newTestQueue(t *testing.T, repo *mockJobRepo, runner automation.ScriptRunner) *RunnerQueue {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := jobs.NewService(repo, registry.NewRegistry(stubAdapterRepo{}, logger), logger)
	q := NewRunnerQueue(svc, runner, logger, WithWorkers(2), WithQueueSize(8), WithRunTimeout(5*time.Second))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		q.Shutdown(ctx)
	})
	return q
}

// ============================================================================
// Tests
// ============================================================================

func TestQueueRunsJobToCompletion(t *testing.T) {
	repo := newMockJobRepo()
	job := repo.seed(constants.JobStatusPendingLogin)
	q := newTestQueue(t, repo, &mockRunner{})

	require.NoError(t, q.Enqueue(context.Background(), Job{JobID: job.ID, SubmittedAt: time.Now()}))

	require.Eventually(t, func() bool {
		return repo.status(job.ID) == string(constants.JobStatusCompleted)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestQueueFailsJobWhenScriptFails(t *testing.T) {
	repo := newMockJobRepo()
	job := repo.seed(constants.JobStatusPendingLogin)
	q := newTestQueue(t, repo, &mockRunner{runErr: errors.New("portal changed its login form")})

	require.NoError(t, q.Enqueue(context.Background(), Job{JobID: job.ID, SubmittedAt: time.Now()}))

	require.Eventually(t, func() bool {
		return repo.status(job.ID) == string(constants.JobStatusFailed)
	}, 2*time.Second, 10*time.Millisecond)

	final, err := repo.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Contains(t, final.ErrorMessage, "login form")
}

func TestQueueSkipsTerminalJobs(t *testing.T) {
	repo := newMockJobRepo()
	job := repo.seed(constants.JobStatusCancelled)
	runner := &mockRunner{}
	q := newTestQueue(t, repo, runner)

	require.NoError(t, q.Enqueue(context.Background(), Job{JobID: job.ID, SubmittedAt: time.Now()}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.Zero(t, runner.callCount())
	assert.Equal(t, string(constants.JobStatusCancelled), repo.status(job.ID))
}

func TestEnqueueAfterShutdownRejected(t *testing.T) {
	repo := newMockJobRepo()
	q := newTestQueue(t, repo, &mockRunner{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	err := q.Enqueue(context.Background(), Job{JobID: uuid.New()})
	assert.Error(t, err)
}
