package jobs

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartpull/portal-extractor/constants"
	"github.com/chartpull/portal-extractor/gen/ent"
	"github.com/chartpull/portal-extractor/internal/common"
	"github.com/chartpull/portal-extractor/internal/registry"
	"github.com/chartpull/portal-extractor/internal/repository"
)

// ============================================================================
// Mock implementations
// ============================================================================

// mockJobRepo mirrors the conditional-update semantics of the real
// repository: a transition only lands when the job is in an expected status.
type mockJobRepo struct {
	jobs      map[uuid.UUID]*ent.ExtractionJob
	createErr error
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: make(map[uuid.UUID]*ent.ExtractionJob)}
}

func (m *mockJobRepo) Create(_ context.Context, p repository.CreateJobParams) (*ent.ExtractionJob, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	now := time.Now()
	job := &ent.ExtractionJob{
		ID:                uuid.New(),
		JobName:           p.JobName,
		TargetURL:         p.TargetURL,
		AdapterID:         p.AdapterID,
		ExtractionMode:    string(p.Mode),
		PatientIdentifier: p.PatientIdentifier,
		DoctorName:        p.DoctorName,
		Medication:        p.Medication,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
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
	job.UpdatedAt = time.Now()
	return true, nil
}

func (m *mockJobRepo) Complete(_ context.Context, id uuid.UUID, from constants.JobStatus, payload json.RawMessage) (bool, error) {
	job, ok := m.jobs[id]
	if !ok || job.Status != string(from) {
		return false, nil
	}
	job.Status = string(constants.JobStatusCompleted)
	job.RawExtractedData = payload
	job.ErrorMessage = ""
	job.UpdatedAt = time.Now()
	return true, nil
}

func (m *mockJobRepo) Terminate(_ context.Context, id uuid.UUID, from []constants.JobStatus, to constants.JobStatus, message string) (bool, error) {
	job, ok := m.jobs[id]
	if !ok || !statusIn(job.Status, from) {
		return false, nil
	}
	job.Status = string(to)
	job.ErrorMessage = message
	job.RawExtractedData = nil
	job.UpdatedAt = time.Now()
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
	adapters map[string]*ent.PortalAdapter
	listErr  error
}

func newMockAdapterRepo() *mockAdapterRepo {
	return &mockAdapterRepo{adapters: make(map[string]*ent.PortalAdapter)}
}

func (m *mockAdapterRepo) add(name string, active bool) *ent.PortalAdapter {
	a := &ent.PortalAdapter{
		ID:               uuid.New(),
		Name:             name,
		ScriptIdentifier: name + "_extractor.py",
		IsActive:         active,
	}
	m.adapters[name] = a
	return a
}

func (m *mockAdapterRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.PortalAdapter, error) {
	for _, a := range m.adapters {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (m *mockAdapterRepo) GetByName(_ context.Context, name string) (*ent.PortalAdapter, error) {
	if a, ok := m.adapters[name]; ok {
		return a, nil
	}
	return nil, &ent.NotFoundError{}
}

func (m *mockAdapterRepo) List(_ context.Context, activeOnly bool) ([]*ent.PortalAdapter, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*ent.PortalAdapter
	for _, a := range m.adapters {
		if !activeOnly || a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAdapterRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, err := m.GetByID(context.Background(), id)
	return err == nil, nil
}

// ============================================================================
// Helpers
// ============================================================================

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService() (*Service, *mockJobRepo, *mockAdapterRepo) {
	jobsRepo := newMockJobRepo()
	adapters := newMockAdapterRepo()
	reg := registry.NewRegistry(adapters, testLogger())
	return NewService(jobsRepo, reg, testLogger()), jobsRepo, adapters
}

func validRequest() CreateRequest {
	return CreateRequest{
		TargetURL:   "https://portal.example.org/login",
		AdapterName: "examplehealth",
		Mode:        constants.ModeAllPatients,
		Medication:  "metformin",
	}
}

func seedJob(repo *mockJobRepo, status constants.JobStatus) *ent.ExtractionJob {
	job := &ent.ExtractionJob{
		ID:             uuid.New(),
		TargetURL:      "https://portal.example.org/login",
		ExtractionMode: string(constants.ModeAllPatients),
		Status:         string(status),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	repo.jobs[job.ID] = job
	return job
}

// ============================================================================
// Create
// ============================================================================

func TestCreateValidRequest(t *testing.T) {
	svc, repo, adapters := newTestService()
	adapters.add("examplehealth", true)

	job, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusPendingLogin), job.Status)
	assert.Empty(t, job.ErrorMessage)
	assert.Len(t, repo.jobs, 1)
}

func TestCreateSinglePatientRequiresPatientID(t *testing.T) {
	svc, repo, adapters := newTestService()
	adapters.add("examplehealth", true)

	req := validRequest()
	req.Mode = constants.ModeSinglePatient
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, repo.jobs, "no row may be created on validation failure")

	req.PatientIdentifier = "p-42"
	job, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "p-42", job.PatientIdentifier)
}

func TestCreateRejectsMalformedRequests(t *testing.T) {
	svc, repo, adapters := newTestService()
	adapters.add("examplehealth", true)

	noURL := validRequest()
	noURL.TargetURL = ""
	_, err := svc.Create(context.Background(), noURL)
	assert.ErrorIs(t, err, common.ErrValidation)

	badMode := validRequest()
	badMode.Mode = "EVERYONE"
	_, err = svc.Create(context.Background(), badMode)
	assert.ErrorIs(t, err, common.ErrValidation)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -2, 0)
	badRange := validRequest()
	badRange.StartDate = &start
	badRange.EndDate = &end
	_, err = svc.Create(context.Background(), badRange)
	assert.ErrorIs(t, err, common.ErrValidation)

	assert.Empty(t, repo.jobs)
}

func TestCreateAdapterErrors(t *testing.T) {
	svc, repo, adapters := newTestService()
	adapters.add("retired", false)

	req := validRequest()
	req.AdapterName = "missing"
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, common.ErrNotFound)

	req.AdapterName = "retired"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, common.ErrInactiveAdapter)

	assert.Empty(t, repo.jobs)
}

// ============================================================================
// Advance
// ============================================================================

func TestAdvanceFullLifecycle(t *testing.T) {
	svc, _, adapters := newTestService()
	adapters.add("examplehealth", true)
	ctx := context.Background()

	job, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	job, err = svc.Advance(ctx, job.ID, BrowserLaunched())
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusLaunchingBrowser), job.Status)

	job, err = svc.Advance(ctx, job.ID, LoginPromptDetected())
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusAwaitingUser), job.Status)

	job, err = svc.Advance(ctx, job.ID, UserConfirmed())
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusExtracting), job.Status)

	payload := json.RawMessage(`{"patients":[{"patient_id":"p-1"}]}`)
	job, err = svc.Advance(ctx, job.ID, ExtractionCompleted(payload))
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCompleted), job.Status)
	assert.JSONEq(t, string(payload), string(job.RawExtractedData))
	assert.Empty(t, job.ErrorMessage)
}

func TestAdvanceStoredSessionSkipsConfirmation(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	job := seedJob(repo, constants.JobStatusLaunchingBrowser)

	got, err := svc.Advance(ctx, job.ID, ExtractionStarted())
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusExtracting), got.Status)
}

func TestFailureWhileAwaitingUser(t *testing.T) {
	svc, repo, _ := newTestService()
	job := seedJob(repo, constants.JobStatusAwaitingUser)

	got, err := svc.Advance(context.Background(), job.ID, ExtractionFailed("login timeout"))
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusFailed), got.Status)
	assert.Equal(t, "login timeout", got.ErrorMessage)
	assert.Nil(t, got.RawExtractedData)
}

func TestTerminalJobRejectsFurtherEvents(t *testing.T) {
	svc, repo, _ := newTestService()
	job := seedJob(repo, constants.JobStatusCompleted)
	job.RawExtractedData = json.RawMessage(`{"patients":[]}`)
	before := job.UpdatedAt

	for _, ev := range []Event{BrowserLaunched(), UserConfirmed(), ExtractionFailed("late failure"), Cancelled("")} {
		_, err := svc.Advance(context.Background(), job.ID, ev)
		assert.ErrorIs(t, err, common.ErrTerminalState)
	}
	assert.Equal(t, string(constants.JobStatusCompleted), job.Status, "stored row unchanged")
	assert.NotNil(t, job.RawExtractedData)
	assert.Equal(t, before, job.UpdatedAt)
}

func TestIllegalEventLeavesJobUnchanged(t *testing.T) {
	svc, repo, _ := newTestService()
	job := seedJob(repo, constants.JobStatusPendingLogin)
	before := job.UpdatedAt

	_, err := svc.Advance(context.Background(), job.ID, UserConfirmed())
	assert.ErrorIs(t, err, common.ErrIllegalTransition)
	assert.Equal(t, string(constants.JobStatusPendingLogin), job.Status)
	assert.Equal(t, before, job.UpdatedAt)
}

func TestCompletionRequiresPayload(t *testing.T) {
	svc, repo, _ := newTestService()
	job := seedJob(repo, constants.JobStatusExtracting)

	_, err := svc.Advance(context.Background(), job.ID, ExtractionCompleted(nil))
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Advance(context.Background(), job.ID, ExtractionCompleted(json.RawMessage("")))
	assert.ErrorIs(t, err, common.ErrValidation)

	assert.Equal(t, string(constants.JobStatusExtracting), job.Status, "job must not complete without a result payload")
	assert.Nil(t, job.RawExtractedData)
}

func TestCompletionPayloadMustValidate(t *testing.T) {
	svc, repo, _ := newTestService()
	job := seedJob(repo, constants.JobStatusExtracting)

	_, err := svc.Advance(context.Background(), job.ID, ExtractionCompleted(json.RawMessage(`{"wrong":"shape"}`)))
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, string(constants.JobStatusExtracting), job.Status)
}

func TestCancelRecordsReason(t *testing.T) {
	svc, repo, _ := newTestService()
	job := seedJob(repo, constants.JobStatusExtracting)

	got, err := svc.Advance(context.Background(), job.ID, Cancelled("user abort"))
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCancelled), got.Status)
	assert.Equal(t, "user abort", got.ErrorMessage)
}

func TestAdvanceUnknownJob(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.Advance(context.Background(), uuid.New(), BrowserLaunched())
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCompletionWinsRaceAgainstFailure(t *testing.T) {
	svc, repo, _ := newTestService()
	job := seedJob(repo, constants.JobStatusExtracting)
	ctx := context.Background()

	_, err := svc.Advance(ctx, job.ID, ExtractionCompleted(json.RawMessage(`{"patients":[]}`)))
	require.NoError(t, err)

	_, err = svc.Advance(ctx, job.ID, ExtractionFailed("too late"))
	assert.ErrorIs(t, err, common.ErrTerminalState)
	assert.Equal(t, string(constants.JobStatusCompleted), job.Status)
	assert.Empty(t, job.ErrorMessage)
}
