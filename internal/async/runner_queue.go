package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/chartpull/portal-extractor/constants"
	"github.com/chartpull/portal-extractor/internal/automation"
	"github.com/chartpull/portal-extractor/internal/common"
	"github.com/chartpull/portal-extractor/internal/jobs"
	"github.com/chartpull/portal-extractor/internal/registry"
)

// RunnerQueue executes queued extraction jobs on a fixed pool of workers.
// Each job's run is independent; the per-job ordering discipline lives in
// the jobs state machine, not here.
type RunnerQueue struct {
	jobs    *jobs.Service
	runner  automation.ScriptRunner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*RunnerQueue)

func WithWorkers(n int) Option {
	return func(q *RunnerQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *RunnerQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithRunTimeout(d time.Duration) Option {
	return func(q *RunnerQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewRunnerQueue(svc *jobs.Service, runner automation.ScriptRunner, logger *slog.Logger, opts ...Option) *RunnerQueue {
	q := &RunnerQueue{
		jobs:    svc,
		runner:  runner,
		logger:  logger,
		workers: 4,
		timeout: 30 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *RunnerQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("runner worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.runOne(ctx, job)
					cancel()

					if err != nil {
						q.logger.Error("automation run failed", "worker_id", workerID, "job_id", job.JobID, "error", err)
					} else {
						q.logger.Info("automation run finished", "worker_id", workerID, "job_id", job.JobID)
					}
				}

				q.logger.Info("runner worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *RunnerQueue) runOne(ctx context.Context, job Job) error {
	j, err := q.jobs.Get(ctx, job.JobID)
	if err != nil {
		return err
	}
	if constants.JobStatus(j.Status).IsTerminal() {
		q.logger.Info("skipping terminal job", "job_id", job.JobID, "status", j.Status)
		return nil
	}
	adapter := j.Edges.Adapter
	if adapter == nil {
		return q.fail(ctx, job, "job has no adapter bound")
	}

	if err := q.runner.Run(ctx, j, registry.HandleFromEnt(adapter), q.jobs); err != nil {
		return q.fail(ctx, job, err.Error())
	}
	return nil
}

// fail records the failure on the job. A race with a concurrently completed
// or cancelled job is fine; the terminal writer that landed first wins.
func (q *RunnerQueue) fail(ctx context.Context, job Job, message string) error {
	_, err := q.jobs.Advance(ctx, job.JobID, jobs.ExtractionFailed(message))
	if err != nil && !errors.Is(err, common.ErrTerminalState) {
		return err
	}
	return errors.New(message)
}

func (q *RunnerQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.JobID)
		return errors.New("runner queue is shutting down")
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued job for automation", "job_id", job.JobID)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", job.JobID)
		q.ch <- job
	}
	return nil
}

func (q *RunnerQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
