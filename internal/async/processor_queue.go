package async

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docflow/internal/repository"
)

// DocumentProcessor is the unit of work a queue worker invokes.
type DocumentProcessor interface {
	ProcessDocument(ctx context.Context, documentID uuid.UUID) error
}

// ProcessorQueue fans queued documents out to a fixed worker pool. Each
// job gets up to maxAttempts runs with a per-attempt timeout; a job
// that exhausts its attempts is marked failed with the last error.
type ProcessorQueue struct {
	proc        DocumentProcessor
	docs        repository.DocumentRepository
	logger      *slog.Logger
	workers     int
	maxAttempts int
	timeout     time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithAttempts(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.maxAttempts = n
		}
	}
}
func WithAttemptTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc DocumentProcessor, docs repository.DocumentRepository, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:        proc,
		docs:        docs,
		logger:      logger,
		workers:     4,
		maxAttempts: 3,
		timeout:     5 * time.Minute,
		ch:          make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					q.runJob(workerID, job)
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) runJob(workerID int, job Job) {
	var lastErr error
	for attempt := 1; attempt <= q.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		err := q.proc.ProcessDocument(ctx, job.DocumentID)
		cancel()

		if err == nil {
			q.logger.Info("document processed",
				"worker_id", workerID,
				"document_id", job.DocumentID,
				"attempt", attempt,
			)
			return
		}
		lastErr = err
		q.logger.Error("processing attempt failed",
			"worker_id", workerID,
			"document_id", job.DocumentID,
			"attempt", attempt,
			"max_attempts", q.maxAttempts,
			"error", err,
		)
	}

	msg := fmt.Sprintf("extraction failed after %d attempts: %v", q.maxAttempts, lastErr)
	if err := q.docs.MarkFailed(context.Background(), job.DocumentID, msg); err != nil {
		q.logger.Error("failed to record terminal failure", "document_id", job.DocumentID, "error", err)
	}
}

func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", job.DocumentID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued document for processing", "document_id", job.DocumentID, "force", job.Force)
	default:
		q.logger.Warn("queue full, applying backpressure", "document_id", job.DocumentID)
		q.ch <- job
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
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
