package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit. Extend as needed later (trace, retry, etc).
type Job struct {
	JobID       uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Runner executes one parse job end to end. The pipeline stage implements
// this; tests substitute a stub.
type Runner interface {
	Run(ctx context.Context, jobID uuid.UUID) error
}
