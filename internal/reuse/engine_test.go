package reuse

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartpull/portal-extractor/constants"
	"github.com/chartpull/portal-extractor/internal/common"
	"github.com/chartpull/portal-extractor/internal/coverage"
)

type mockEvaluator struct {
	sessions    []coverage.SessionSummary
	findErr     error
	scores      map[int64]coverage.Score
	scoreErr    error
	evidence    []coverage.PatientEvidence
	evidenceErr error
}

func (m *mockEvaluator) FindOverlappingSessions(_ context.Context, _ string, _, _ time.Time) ([]coverage.SessionSummary, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.sessions, nil
}

func (m *mockEvaluator) ScoreCoverage(_ context.Context, sessionID int64, _, _ time.Time) (coverage.Score, error) {
	if m.scoreErr != nil {
		return coverage.Score{}, m.scoreErr
	}
	return m.scores[sessionID], nil
}

func (m *mockEvaluator) SampleEvidence(_ context.Context, _ int64, limit int) ([]coverage.PatientEvidence, error) {
	if m.evidenceErr != nil {
		return nil, m.evidenceErr
	}
	if len(m.evidence) > limit {
		return m.evidence[:limit], nil
	}
	return m.evidence, nil
}

func factoryFor(ev SessionEvaluator) EvaluatorFactory {
	return func(_ context.Context, _ string) (SessionEvaluator, error) {
		return ev, nil
	}
}

func testEngine(ev SessionEvaluator) *Engine {
	return NewEngine(factoryFor(ev), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var testReq = Request{
	Provider:   "evergreen",
	Medication: "metformin",
	StartDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	EndDate:    time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
}

func session(id int64, createdAt time.Time, processed int) coverage.SessionSummary {
	return coverage.SessionSummary{
		ID:                id,
		Medication:        "Metformin 500mg",
		StartDate:         testReq.StartDate,
		EndDate:           testReq.EndDate,
		CreatedAt:         createdAt,
		ProcessedPatients: processed,
	}
}

func TestDecideNoOverlappingSessions(t *testing.T) {
	d := testEngine(&mockEvaluator{}).Decide(context.Background(), testReq)

	assert.False(t, d.ShouldReuse)
	assert.Equal(t, constants.ActionExtractNew, d.Action)
	assert.Contains(t, d.Reason, "no overlapping extraction sessions")
	assert.Nil(t, d.BestSession)
}

func TestDecideFullCoverageReusesExisting(t *testing.T) {
	ev := &mockEvaluator{
		sessions: []coverage.SessionSummary{session(12, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), 10)},
		scores:   map[int64]coverage.Score{12: {Percentage: 100, ProcessedPatients: 10}},
		evidence: []coverage.PatientEvidence{
			{PatientID: "p-1", PatientName: "Ada", MedicationCount: 6, DiagnosisCount: 2},
		},
	}
	d := testEngine(ev).Decide(context.Background(), testReq)

	assert.True(t, d.ShouldReuse)
	assert.Equal(t, constants.ActionReuseExisting, d.Action)
	require.NotNil(t, d.BestSession)
	assert.Equal(t, int64(12), d.BestSession.ID)
	assert.Equal(t, 100.0, d.CoveragePercentage)
	require.Len(t, d.SampleEvidence, 1)
	assert.NotEmpty(t, d.Reason)
}

func TestDecidePartialCoverageWarns(t *testing.T) {
	ev := &mockEvaluator{
		sessions: []coverage.SessionSummary{session(8, time.Now(), 7)},
		scores:   map[int64]coverage.Score{8: {Percentage: 70, ProcessedPatients: 7}},
	}
	d := testEngine(ev).Decide(context.Background(), testReq)

	assert.True(t, d.ShouldReuse)
	assert.Equal(t, constants.ActionReuseWithWarning, d.Action)
	assert.Contains(t, d.Reason, "incomplete")
}

func TestDecideBelowFloorExtractsNew(t *testing.T) {
	ev := &mockEvaluator{
		sessions: []coverage.SessionSummary{session(8, time.Now(), 4)},
		scores:   map[int64]coverage.Score{8: {Percentage: 40, ProcessedPatients: 4}},
	}
	d := testEngine(ev).Decide(context.Background(), testReq)

	assert.False(t, d.ShouldReuse)
	assert.Equal(t, constants.ActionExtractNew, d.Action)
	// The supporting sessions still surface so a caller can explain the call.
	assert.Len(t, d.Sessions, 1)
	assert.Equal(t, 40.0, d.CoveragePercentage)
}

func TestDecideScoresMostRecentSession(t *testing.T) {
	older := session(3, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), 10)
	newer := session(9, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), 7)
	ev := &mockEvaluator{
		sessions: []coverage.SessionSummary{newer, older},
		scores: map[int64]coverage.Score{
			3: {Percentage: 100, ProcessedPatients: 10},
			9: {Percentage: 70, ProcessedPatients: 7},
		},
	}
	d := testEngine(ev).Decide(context.Background(), testReq)

	require.NotNil(t, d.BestSession)
	assert.Equal(t, int64(9), d.BestSession.ID, "candidate is the most recent session, not the densest")
	assert.Equal(t, constants.ActionReuseWithWarning, d.Action)
}

func TestDecideFailsClosed(t *testing.T) {
	infra := fmtInfra("store down")
	cases := []struct {
		name    string
		factory EvaluatorFactory
	}{
		{
			name: "provider store unavailable",
			factory: func(_ context.Context, _ string) (SessionEvaluator, error) {
				return nil, infra
			},
		},
		{
			name:    "session lookup fails",
			factory: factoryFor(&mockEvaluator{findErr: infra}),
		},
		{
			name: "coverage scoring fails",
			factory: factoryFor(&mockEvaluator{
				sessions: []coverage.SessionSummary{session(5, time.Now(), 10)},
				scoreErr: infra,
			}),
		},
		{
			name: "evidence sampling fails",
			factory: factoryFor(&mockEvaluator{
				sessions:    []coverage.SessionSummary{session(5, time.Now(), 10)},
				scores:      map[int64]coverage.Score{5: {Percentage: 100, ProcessedPatients: 10}},
				evidenceErr: infra,
			}),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := NewEngine(tc.factory, slog.New(slog.NewTextHandler(io.Discard, nil)))
			d := engine.Decide(context.Background(), testReq)

			assert.False(t, d.ShouldReuse)
			assert.Equal(t, constants.ActionExtractNew, d.Action)
			assert.NotEmpty(t, d.Reason, "fail-closed decisions must say why")
		})
	}
}

func TestDecideIsDeterministic(t *testing.T) {
	ev := &mockEvaluator{
		sessions: []coverage.SessionSummary{session(12, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), 10)},
		scores:   map[int64]coverage.Score{12: {Percentage: 100, ProcessedPatients: 10}},
		evidence: []coverage.PatientEvidence{{PatientID: "p-1", PatientName: "Ada"}},
	}
	engine := testEngine(ev)

	first := engine.Decide(context.Background(), testReq)
	second := engine.Decide(context.Background(), testReq)
	assert.Equal(t, first, second)
}

func TestDecideEvidenceRespectsSampleLimit(t *testing.T) {
	evidence := make([]coverage.PatientEvidence, 8)
	for i := range evidence {
		evidence[i] = coverage.PatientEvidence{PatientID: string(rune('a' + i))}
	}
	ev := &mockEvaluator{
		sessions: []coverage.SessionSummary{session(12, time.Now(), 10)},
		scores:   map[int64]coverage.Score{12: {Percentage: 100, ProcessedPatients: 10}},
		evidence: evidence,
	}
	d := testEngine(ev).Decide(context.Background(), testReq)

	assert.LessOrEqual(t, len(d.SampleEvidence), 5)
}

func fmtInfra(msg string) error {
	return fmt.Errorf("%w: %s", common.ErrInfrastructure, msg)
}
