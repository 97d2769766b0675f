// Package reuse decides whether stored extraction data already satisfies a
// request, so redundant automation runs are skipped.
package reuse

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chartpull/portal-extractor/constants"
	"github.com/chartpull/portal-extractor/internal/coverage"
)

// Request identifies the data a caller is about to extract.
type Request struct {
	Provider   string
	Medication string
	StartDate  time.Time
	EndDate    time.Time
}

// Decision is the engine's recommendation plus its supporting evidence. The
// Reason is always populated, including on the fail-closed path.
type Decision struct {
	ShouldReuse        bool
	Action             constants.ReuseAction
	Reason             string
	BestSession        *coverage.SessionSummary
	Sessions           []coverage.SessionSummary
	SampleEvidence     []coverage.PatientEvidence
	CoveragePercentage float64
}

// SessionEvaluator is the slice of the coverage evaluator the engine needs.
type SessionEvaluator interface {
	FindOverlappingSessions(ctx context.Context, medication string, startDate, endDate time.Time) ([]coverage.SessionSummary, error)
	ScoreCoverage(ctx context.Context, sessionID int64, startDate, endDate time.Time) (coverage.Score, error)
	SampleEvidence(ctx context.Context, sessionID int64, limit int) ([]coverage.PatientEvidence, error)
}

// EvaluatorFactory opens an evaluator for one provider's store.
type EvaluatorFactory func(ctx context.Context, provider string) (SessionEvaluator, error)

// Engine converts coverage scores into reuse decisions. Construct it with
// its evaluator factory injected; it keeps no process-global state.
type Engine struct {
	evaluators  EvaluatorFactory
	sampleLimit int
	logger      *slog.Logger
}

func NewEngine(evaluators EvaluatorFactory, logger *slog.Logger) *Engine {
	return &Engine{evaluators: evaluators, sampleLimit: 5, logger: logger}
}

// Decide never returns an error: any internal failure downgrades to
// EXTRACT_NEW with the reason recorded. A fresh extraction is always
// preferred over an unverifiable reuse.
func (e *Engine) Decide(ctx context.Context, req Request) Decision {
	ev, err := e.evaluators(ctx, req.Provider)
	if err != nil {
		e.logger.Warn("provider store unavailable, extracting fresh", "provider", req.Provider, "error", err)
		return extractNew(fmt.Sprintf("provider store unavailable: %v", err))
	}

	sessions, err := ev.FindOverlappingSessions(ctx, req.Medication, req.StartDate, req.EndDate)
	if err != nil {
		e.logger.Warn("session lookup failed, extracting fresh", "provider", req.Provider, "error", err)
		return extractNew(fmt.Sprintf("session history unavailable: %v", err))
	}
	if len(sessions) == 0 {
		return extractNew("no overlapping extraction sessions found")
	}

	// Most recent overlapping session is the reuse candidate.
	best := sessions[0]
	score, err := ev.ScoreCoverage(ctx, best.ID, req.StartDate, req.EndDate)
	if err != nil {
		e.logger.Warn("coverage scoring failed, extracting fresh", "session_id", best.ID, "error", err)
		d := extractNew(fmt.Sprintf("coverage for session %d could not be verified: %v", best.ID, err))
		d.Sessions = sessions
		return d
	}

	d := Decision{
		BestSession:        &best,
		Sessions:           sessions,
		CoveragePercentage: score.Percentage,
	}
	switch {
	case score.Percentage >= constants.ReuseThreshold:
		d.ShouldReuse = true
		d.Action = constants.ActionReuseExisting
		d.Reason = fmt.Sprintf("session %d covers %.1f%% of the requested range (%d processed patients)", best.ID, score.Percentage, score.ProcessedPatients)
	case score.Percentage >= constants.WarnThreshold:
		d.ShouldReuse = true
		d.Action = constants.ActionReuseWithWarning
		d.Reason = fmt.Sprintf("session %d covers only %.1f%% of the requested range; results may be incomplete", best.ID, score.Percentage)
	default:
		d.Action = constants.ActionExtractNew
		d.Reason = fmt.Sprintf("best session %d covers %.1f%%, below the %.0f%% reuse floor", best.ID, score.Percentage, constants.WarnThreshold)
		return d
	}

	evidence, err := ev.SampleEvidence(ctx, best.ID, e.sampleLimit)
	if err != nil {
		// Evidence we cannot read is evidence we cannot trust; fail closed.
		e.logger.Warn("evidence sampling failed, extracting fresh", "session_id", best.ID, "error", err)
		dd := extractNew(fmt.Sprintf("evidence for session %d could not be verified: %v", best.ID, err))
		dd.Sessions = sessions
		return dd
	}
	d.SampleEvidence = evidence
	return d
}

func extractNew(reason string) Decision {
	return Decision{
		ShouldReuse: false,
		Action:      constants.ActionExtractNew,
		Reason:      reason,
	}
}
