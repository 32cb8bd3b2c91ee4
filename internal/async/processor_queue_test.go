package async

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docflow/constants"
	"github.com/joseph-ayodele/docflow/internal/entity"
	"github.com/joseph-ayodele/docflow/internal/repository"
)

type countingProcessor struct {
	mu       sync.Mutex
	attempts map[uuid.UUID]int
	failures int // fail the first N attempts per document
}

func (p *countingProcessor) ProcessDocument(_ context.Context, id uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.attempts == nil {
		p.attempts = map[uuid.UUID]int{}
	}
	p.attempts[id]++
	if p.attempts[id] <= p.failures {
		return errors.New("transient failure")
	}
	return nil
}

func (p *countingProcessor) count(id uuid.UUID) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attempts[id]
}

type failureRecorder struct {
	mu     sync.Mutex
	failed map[uuid.UUID]string
}

func (f *failureRecorder) Create(context.Context, repository.CreateDocumentParams) (*entity.Document, error) {
	panic("not used")
}
func (f *failureRecorder) GetByID(context.Context, uuid.UUID) (*entity.Document, error) {
	panic("not used")
}
func (f *failureRecorder) List(context.Context, repository.ListFilter) ([]*entity.Document, error) {
	panic("not used")
}
func (f *failureRecorder) Delete(context.Context, uuid.UUID) error { panic("not used") }
func (f *failureRecorder) MarkProcessing(context.Context, uuid.UUID) error { panic("not used") }
func (f *failureRecorder) SetCategory(context.Context, uuid.UUID, constants.DocumentCategory) error {
	panic("not used")
}
func (f *failureRecorder) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failed == nil {
		f.failed = map[uuid.UUID]string{}
	}
	f.failed[id] = message
	return nil
}
func (f *failureRecorder) ResetForRetry(context.Context, uuid.UUID) error { panic("not used") }
func (f *failureRecorder) FinishGeneral(context.Context, uuid.UUID, json.RawMessage) error {
	panic("not used")
}

func (f *failureRecorder) message(id uuid.UUID) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failed[id]
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueueProcessesJob(t *testing.T) {
	proc := &countingProcessor{}
	docs := &failureRecorder{}
	q := NewProcessorQueue(proc, docs, quietLogger(), WithWorkers(2), WithAttempts(3))

	id := uuid.New()
	if err := q.Enqueue(context.Background(), Job{DocumentID: id, SubmittedAt: time.Now()}); err != nil {
		t.Fatalf("Enqueue returned error: %v", err)
	}
	q.Shutdown(context.Background())

	if got := proc.count(id); got != 1 {
		t.Fatalf("attempts = %d, want 1", got)
	}
	if msg := docs.message(id); msg != "" {
		t.Fatalf("unexpected failure recorded: %s", msg)
	}
}

func TestQueueRetriesTransientFailure(t *testing.T) {
	proc := &countingProcessor{failures: 2}
	docs := &failureRecorder{}
	q := NewProcessorQueue(proc, docs, quietLogger(), WithWorkers(1), WithAttempts(3))

	id := uuid.New()
	_ = q.Enqueue(context.Background(), Job{DocumentID: id})
	q.Shutdown(context.Background())

	if got := proc.count(id); got != 3 {
		t.Fatalf("attempts = %d, want 3", got)
	}
	if msg := docs.message(id); msg != "" {
		t.Fatalf("succeeded on final attempt but failure recorded: %s", msg)
	}
}

func TestQueueRecordsTerminalFailure(t *testing.T) {
	proc := &countingProcessor{failures: 10}
	docs := &failureRecorder{}
	q := NewProcessorQueue(proc, docs, quietLogger(), WithWorkers(1), WithAttempts(2))

	id := uuid.New()
	_ = q.Enqueue(context.Background(), Job{DocumentID: id})
	q.Shutdown(context.Background())

	if got := proc.count(id); got != 2 {
		t.Fatalf("attempts = %d, want 2", got)
	}
	msg := docs.message(id)
	if !strings.Contains(msg, "after 2 attempts") || !strings.Contains(msg, "transient failure") {
		t.Fatalf("failure message = %q", msg)
	}
}

func TestQueueRejectsAfterShutdown(t *testing.T) {
	q := NewProcessorQueue(&countingProcessor{}, &failureRecorder{}, quietLogger(), WithWorkers(1))
	q.Shutdown(context.Background())

	// must not panic on the closed channel
	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue returned error: %v", err)
	}
	q.Shutdown(context.Background())
}
