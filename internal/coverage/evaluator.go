// Package coverage scores how completely historical extraction sessions
// satisfy a new request. It only ever reads the per-provider stores.
package coverage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chartpull/portal-extractor/internal/common"
)

// perPatientCoverage is the flat contribution of one processed patient row,
// in percent, capped at 100. A coarse heuristic kept for parity with the
// stored decision history; a true date-interval overlap is a candidate
// replacement.
const perPatientCoverage = 10.0

// SessionSummary is one historical extraction session overlapping a request.
type SessionSummary struct {
	ID                int64
	Medication        string
	StartDate         time.Time
	EndDate           time.Time
	CreatedAt         time.Time
	ProcessedPatients int
}

// PatientEvidence is a sample patient backing a reuse recommendation, ranked
// by clinical-record richness.
type PatientEvidence struct {
	PatientID       string
	PatientName     string
	MedicationCount int
	DiagnosisCount  int
}

// Score is the coverage estimate for one session against a date range.
type Score struct {
	Percentage        float64
	ProcessedPatients int
}

// Evaluator reads one provider's session history. Construct one per provider
// store via NewEvaluator; it holds no mutable state.
type Evaluator struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewEvaluator(db *sql.DB, logger *slog.Logger) *Evaluator {
	return &Evaluator{db: db, logger: logger}
}

const findOverlappingQuery = `
SELECT s.id, s.medication, s.start_date, s.end_date, s.created_at,
       COALESCE(SUM(CASE WHEN p.processing_status = 'processed' THEN 1 ELSE 0 END), 0) AS processed_patients
FROM extraction_sessions s
LEFT JOIN patient_extractions p ON p.session_id = s.id
WHERE LOWER(s.medication) LIKE '%' || LOWER($1) || '%' ESCAPE '\'
  AND ((s.start_date <= $2 AND s.end_date >= $2)
    OR (s.start_date <= $3 AND s.end_date >= $3)
    OR (s.start_date >= $2 AND s.end_date <= $3))
GROUP BY s.id, s.medication, s.start_date, s.end_date, s.created_at
ORDER BY s.created_at DESC`

// FindOverlappingSessions returns sessions whose stored range intersects the
// requested range (three-case interval test) and whose medication matches by
// case-insensitive substring, most recent first. Store failures come back
// wrapped in ErrInfrastructure, never as raw driver errors.
func (e *Evaluator) FindOverlappingSessions(ctx context.Context, medication string, startDate, endDate time.Time) ([]SessionSummary, error) {
	rows, err := e.db.QueryContext(ctx, findOverlappingQuery, escapeLike(medication), startDate, endDate)
	if err != nil {
		e.logger.Error("overlapping session query failed", "medication", medication, "error", err)
		return nil, fmt.Errorf("%w: querying sessions: %v", common.ErrInfrastructure, err)
	}
	defer rows.Close()

	var sessions []SessionSummary
	for rows.Next() {
		var s SessionSummary
		if err := rows.Scan(&s.ID, &s.Medication, &s.StartDate, &s.EndDate, &s.CreatedAt, &s.ProcessedPatients); err != nil {
			return nil, fmt.Errorf("%w: scanning session row: %v", common.ErrInfrastructure, err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading session rows: %v", common.ErrInfrastructure, err)
	}
	return sessions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards in the search term so a medication
// containing % or _ matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

const scoreCoverageQuery = `
SELECT COUNT(*) FROM patient_extractions
WHERE session_id = $1 AND processing_status = 'processed'`

// ScoreCoverage estimates, in percent, how completely the session covers the
// requested range. Only rows with processing status "processed" count. The
// score is monotonically non-decreasing in the processed-patient count.
func (e *Evaluator) ScoreCoverage(ctx context.Context, sessionID int64, startDate, endDate time.Time) (Score, error) {
	var processed int
	if err := e.db.QueryRowContext(ctx, scoreCoverageQuery, sessionID).Scan(&processed); err != nil {
		e.logger.Error("coverage count query failed", "session_id", sessionID, "error", err)
		return Score{}, fmt.Errorf("%w: counting processed patients: %v", common.ErrInfrastructure, err)
	}
	pct := float64(processed) * perPatientCoverage
	if pct > 100 {
		pct = 100
	}
	return Score{Percentage: pct, ProcessedPatients: processed}, nil
}

const sampleEvidenceQuery = `
SELECT p.patient_id, p.patient_name,
       COALESCE(m.cnt, 0) AS medication_count,
       COALESCE(d.cnt, 0) AS diagnosis_count
FROM patient_extractions p
LEFT JOIN (SELECT patient_extraction_id, COUNT(*) AS cnt FROM patient_medications GROUP BY patient_extraction_id) m
       ON m.patient_extraction_id = p.id
LEFT JOIN (SELECT patient_extraction_id, COUNT(*) AS cnt FROM patient_diagnoses GROUP BY patient_extraction_id) d
       ON d.patient_extraction_id = p.id
WHERE p.session_id = $1 AND p.processing_status = 'processed'
ORDER BY COALESCE(m.cnt, 0) + COALESCE(d.cnt, 0) DESC
LIMIT $2`

// SampleEvidence returns up to limit processed patients from the session,
// richest clinical records first.
func (e *Evaluator) SampleEvidence(ctx context.Context, sessionID int64, limit int) ([]PatientEvidence, error) {
	rows, err := e.db.QueryContext(ctx, sampleEvidenceQuery, sessionID, limit)
	if err != nil {
		e.logger.Error("evidence query failed", "session_id", sessionID, "error", err)
		return nil, fmt.Errorf("%w: sampling evidence: %v", common.ErrInfrastructure, err)
	}
	defer rows.Close()

	var evidence []PatientEvidence
	for rows.Next() {
		var p PatientEvidence
		if err := rows.Scan(&p.PatientID, &p.PatientName, &p.MedicationCount, &p.DiagnosisCount); err != nil {
			return nil, fmt.Errorf("%w: scanning evidence row: %v", common.ErrInfrastructure, err)
		}
		evidence = append(evidence, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading evidence rows: %v", common.ErrInfrastructure, err)
	}
	return evidence, nil
}
