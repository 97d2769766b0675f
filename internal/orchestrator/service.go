// Package orchestrator is the thin coordinator in front of the decision
// engine and the job state machine.
package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"github.com/chartpull/portal-extractor/gen/ent"
	"github.com/chartpull/portal-extractor/internal/async"
	"github.com/chartpull/portal-extractor/internal/jobs"
	"github.com/chartpull/portal-extractor/internal/reuse"
)

// SubmitRequest couples a job request with the provider whose history the
// decision engine consults.
type SubmitRequest struct {
	Provider string
	jobs.CreateRequest
}

// SubmitResult always carries the decision, so callers can see why a fresh
// extraction was (or was not) chosen. Job is nil when stored data is reused.
type SubmitResult struct {
	Decision reuse.Decision
	Job      *ent.ExtractionJob
}

type Service struct {
	engine *reuse.Engine
	jobs   *jobs.Service
	queue  async.Queue
	logger *slog.Logger
}

func NewService(engine *reuse.Engine, jobSvc *jobs.Service, queue async.Queue, logger *slog.Logger) *Service {
	return &Service{engine: engine, jobs: jobSvc, queue: queue, logger: logger}
}

// Submit decides first and only then creates a job. A request the engine
// judges already satisfied never produces a job row, keeping the audit trail
// free of wasted runs.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	var start, end time.Time
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	decision := s.engine.Decide(ctx, reuse.Request{
		Provider:   req.Provider,
		Medication: req.Medication,
		StartDate:  start,
		EndDate:    end,
	})
	if decision.ShouldReuse {
		s.logger.Info("reusing stored data", "provider", req.Provider, "action", decision.Action, "reason", decision.Reason)
		return &SubmitResult{Decision: decision}, nil
	}

	job, err := s.jobs.Create(ctx, req.CreateRequest)
	if err != nil {
		return nil, err
	}

	if err := s.queue.Enqueue(ctx, async.Job{JobID: job.ID, SubmittedAt: time.Now()}); err != nil {
		// The job exists but will never run; fail it so the row tells the truth.
		s.logger.Error("failed to queue automation run", "job_id", job.ID, "error", err)
		if failed, ferr := s.jobs.Advance(ctx, job.ID, jobs.ExtractionFailed("failed to queue automation run: "+err.Error())); ferr == nil {
			job = failed
		}
	}

	return &SubmitResult{Decision: decision, Job: job}, nil
}
