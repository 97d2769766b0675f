package coverage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartpull/portal-extractor/internal/common"
)

func testEvaluator(t *testing.T) (*Evaluator, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewEvaluator(db, slog.New(slog.NewTextHandler(io.Discard, nil))), mock
}

var (
	reqStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	reqEnd   = time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
)

func TestFindOverlappingSessionsOrderedMostRecentFirst(t *testing.T) {
	ev, mock := testEvaluator(t)

	rows := sqlmock.NewRows([]string{"id", "medication", "start_date", "end_date", "created_at", "processed_patients"}).
		AddRow(int64(12), "Metformin 500mg", reqStart, reqEnd, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), 9).
		AddRow(int64(7), "metformin", reqStart, reqEnd, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), 4)
	mock.ExpectQuery("FROM extraction_sessions").
		WithArgs("metformin", reqStart, reqEnd).
		WillReturnRows(rows)

	sessions, err := ev.FindOverlappingSessions(context.Background(), "metformin", reqStart, reqEnd)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, int64(12), sessions[0].ID, "most recent session first")
	assert.Equal(t, 9, sessions[0].ProcessedPatients)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOverlappingSessionsEscapesLikeWildcards(t *testing.T) {
	ev, mock := testEvaluator(t)
	mock.ExpectQuery("FROM extraction_sessions").
		WithArgs(`met\_formin 5\%`, reqStart, reqEnd).
		WillReturnRows(sqlmock.NewRows([]string{"id", "medication", "start_date", "end_date", "created_at", "processed_patients"}))

	_, err := ev.FindOverlappingSessions(context.Background(), "met_formin 5%", reqStart, reqEnd)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOverlappingSessionsWrapsStoreFailure(t *testing.T) {
	ev, mock := testEvaluator(t)
	mock.ExpectQuery("FROM extraction_sessions").
		WillReturnError(errors.New("connection refused"))

	_, err := ev.FindOverlappingSessions(context.Background(), "metformin", reqStart, reqEnd)
	assert.ErrorIs(t, err, common.ErrInfrastructure)
	assert.Contains(t, err.Error(), "querying sessions")
}

func TestScoreCoverageHeuristic(t *testing.T) {
	cases := []struct {
		processed int
		want      float64
	}{
		{0, 0},
		{1, 10},
		{7, 70},
		{10, 100},
		{25, 100}, // capped
	}
	for _, tc := range cases {
		ev, mock := testEvaluator(t)
		mock.ExpectQuery("FROM patient_extractions").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tc.processed))

		score, err := ev.ScoreCoverage(context.Background(), 3, reqStart, reqEnd)
		require.NoError(t, err)
		assert.Equal(t, tc.want, score.Percentage, "%d processed patients", tc.processed)
		assert.Equal(t, tc.processed, score.ProcessedPatients)
	}
}

func TestScoreCoverageMonotonic(t *testing.T) {
	prev := -1.0
	for processed := 0; processed <= 15; processed++ {
		ev, mock := testEvaluator(t)
		mock.ExpectQuery("FROM patient_extractions").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(processed))

		score, err := ev.ScoreCoverage(context.Background(), 1, reqStart, reqEnd)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score.Percentage, prev)
		assert.LessOrEqual(t, score.Percentage, 100.0)
		prev = score.Percentage
	}
}

func TestScoreCoverageWrapsStoreFailure(t *testing.T) {
	ev, mock := testEvaluator(t)
	mock.ExpectQuery("FROM patient_extractions").
		WillReturnError(errors.New("relation does not exist"))

	_, err := ev.ScoreCoverage(context.Background(), 3, reqStart, reqEnd)
	assert.ErrorIs(t, err, common.ErrInfrastructure)
}

func TestSampleEvidenceRankedByRichness(t *testing.T) {
	ev, mock := testEvaluator(t)
	rows := sqlmock.NewRows([]string{"patient_id", "patient_name", "medication_count", "diagnosis_count"}).
		AddRow("p-9", "Ada", 8, 5).
		AddRow("p-2", "Grace", 4, 3)
	mock.ExpectQuery("FROM patient_extractions p").
		WithArgs(int64(3), 2).
		WillReturnRows(rows)

	evidence, err := ev.SampleEvidence(context.Background(), 3, 2)
	require.NoError(t, err)
	require.Len(t, evidence, 2)
	assert.Equal(t, "p-9", evidence[0].PatientID)
	assert.Equal(t, 13, evidence[0].MedicationCount+evidence[0].DiagnosisCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSampleEvidenceWrapsStoreFailure(t *testing.T) {
	ev, mock := testEvaluator(t)
	mock.ExpectQuery("FROM patient_extractions p").
		WillReturnError(errors.New("timeout"))

	_, err := ev.SampleEvidence(context.Background(), 3, 5)
	assert.ErrorIs(t, err, common.ErrInfrastructure)
}
