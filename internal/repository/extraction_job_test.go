package repository

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartpull/portal-extractor/constants"
	"github.com/chartpull/portal-extractor/gen/ent"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openTestClient opens an in-memory store and creates the schema, so the
// conditional status updates run against real SQL instead of mocks.
func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	client, _, err := OpenSQLite(":memory:", testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))
	return client
}

func seedAdapter(t *testing.T, client *ent.Client) *ent.PortalAdapter {
	t.Helper()
	a, err := client.PortalAdapter.
		Create().
		SetName("evergreen_health").
		SetScriptIdentifier("evergreen_health_extractor.py").
		Save(context.Background())
	require.NoError(t, err)
	return a
}

func seedJob(t *testing.T, repo ExtractionJobRepository, adapterID uuid.UUID) *ent.ExtractionJob {
	t.Helper()
	job, err := repo.Create(context.Background(), CreateJobParams{
		TargetURL: "https://portal.evergreen.example/login",
		AdapterID: adapterID,
		Mode:      constants.ModeAllPatients,
	})
	require.NoError(t, err)
	return job
}

func TestCreateAndGetLoadsAdapterEdge(t *testing.T) {
	client := openTestClient(t)
	adapter := seedAdapter(t, client)
	repo := NewExtractionJobRepository(client, testLogger())

	job := seedJob(t, repo, adapter.ID)
	assert.Equal(t, string(constants.JobStatusPendingLogin), job.Status)

	got, err := repo.Get(context.Background(), job.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Edges.Adapter)
	assert.Equal(t, adapter.ID, got.Edges.Adapter.ID)
	assert.Equal(t, "evergreen_health", got.Edges.Adapter.Name)
}

func TestGetUnknownJob(t *testing.T) {
	client := openTestClient(t)
	repo := NewExtractionJobRepository(client, testLogger())

	_, err := repo.Get(context.Background(), uuid.New())
	assert.True(t, ent.IsNotFound(err))
}

func TestTransitionGuardsOnCurrentStatus(t *testing.T) {
	client := openTestClient(t)
	repo := NewExtractionJobRepository(client, testLogger())
	job := seedJob(t, repo, seedAdapter(t, client).ID)
	ctx := context.Background()

	ok, err := repo.Transition(ctx, job.ID,
		[]constants.JobStatus{constants.JobStatusPendingLogin},
		constants.JobStatusLaunchingBrowser)
	require.NoError(t, err)
	assert.True(t, ok)

	// Same expected from-status again: the row already moved on, so the
	// second writer loses with zero rows affected.
	ok, err = repo.Transition(ctx, job.ID,
		[]constants.JobStatus{constants.JobStatusPendingLogin},
		constants.JobStatusLaunchingBrowser)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusLaunchingBrowser), got.Status)
}

func TestTransitionUnknownJob(t *testing.T) {
	client := openTestClient(t)
	repo := NewExtractionJobRepository(client, testLogger())

	ok, err := repo.Transition(context.Background(), uuid.New(),
		[]constants.JobStatus{constants.JobStatusPendingLogin},
		constants.JobStatusLaunchingBrowser)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompleteSetsPayloadAndClearsError(t *testing.T) {
	client := openTestClient(t)
	repo := NewExtractionJobRepository(client, testLogger())
	job := seedJob(t, repo, seedAdapter(t, client).ID)
	ctx := context.Background()

	ok, err := repo.Transition(ctx, job.ID,
		[]constants.JobStatus{constants.JobStatusPendingLogin},
		constants.JobStatusExtracting)
	require.NoError(t, err)
	require.True(t, ok)

	payload := json.RawMessage(`{"patients":[{"patient_id":"p-1"}]}`)
	ok, err = repo.Complete(ctx, job.ID, constants.JobStatusExtracting, payload)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCompleted), got.Status)
	assert.JSONEq(t, string(payload), string(got.RawExtractedData))
	assert.Empty(t, got.ErrorMessage)

	// A late failure loses the race against the landed completion.
	ok, err = repo.Terminate(ctx, job.ID,
		[]constants.JobStatus{
			constants.JobStatusPendingLogin,
			constants.JobStatusLaunchingBrowser,
			constants.JobStatusAwaitingUser,
			constants.JobStatusExtracting,
		},
		constants.JobStatusFailed, "too late")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err = repo.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCompleted), got.Status)
	assert.Empty(t, got.ErrorMessage)
}

func TestTerminateRecordsMessageAndClearsPayload(t *testing.T) {
	client := openTestClient(t)
	repo := NewExtractionJobRepository(client, testLogger())
	job := seedJob(t, repo, seedAdapter(t, client).ID)
	ctx := context.Background()

	ok, err := repo.Transition(ctx, job.ID,
		[]constants.JobStatus{constants.JobStatusPendingLogin},
		constants.JobStatusExtracting)
	require.NoError(t, err)
	require.True(t, ok)

	// Partial data written mid-run must not survive a failure.
	_, err = client.ExtractionJob.UpdateOneID(job.ID).
		SetRawExtractedData(json.RawMessage(`{"patients":[]}`)).
		Save(ctx)
	require.NoError(t, err)

	ok, err = repo.Terminate(ctx, job.ID,
		[]constants.JobStatus{constants.JobStatusExtracting},
		constants.JobStatusFailed, "portal timeout")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusFailed), got.Status)
	assert.Equal(t, "portal timeout", got.ErrorMessage)
	assert.Nil(t, got.RawExtractedData)

	// Terminal rows accept no further conditional writes.
	ok, err = repo.Complete(ctx, job.ID, constants.JobStatusExtracting, json.RawMessage(`{"patients":[]}`))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetResultsFilePath(t *testing.T) {
	client := openTestClient(t)
	repo := NewExtractionJobRepository(client, testLogger())
	job := seedJob(t, repo, seedAdapter(t, client).ID)
	ctx := context.Background()

	require.NoError(t, repo.SetResultsFilePath(ctx, job.ID, "/results/"+job.ID.String()+".xlsx"))

	got, err := repo.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "/results/"+job.ID.String()+".xlsx", got.ResultsFilePath)
}
