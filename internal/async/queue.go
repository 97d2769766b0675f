package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit handed to the runner workers.
type Job struct {
	JobID       uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
