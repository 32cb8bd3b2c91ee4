package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one pipeline run for a document. Force skips the terminal
// status check on the server side; by the time a job is queued it is
// just a document id and bookkeeping.
type Job struct {
	DocumentID  uuid.UUID
	Force       bool
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
