package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/seojun-park/planscore/constants"
	"github.com/seojun-park/planscore/internal/pipeline"
)

type fakeEvaluator struct {
	mu    sync.Mutex
	seen  []uuid.UUID
	err   error
	block chan struct{}
}

func (f *fakeEvaluator) Evaluate(ctx context.Context, planID uuid.UUID, documentKey string) (*pipeline.Result, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	f.seen = append(f.seen, planID)
	f.mu.Unlock()
	if f.err != nil {
		return &pipeline.Result{JobID: uuid.New(), Status: constants.JobStatusFailed, ErrorKind: pipeline.KindPersistence}, f.err
	}
	return &pipeline.Result{JobID: uuid.New(), Status: constants.JobStatusCompleted}, nil
}

func (f *fakeEvaluator) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.seen)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueueProcessesEnqueuedJobs(t *testing.T) {
	eval := &fakeEvaluator{}
	q := NewEvaluatorQueue(eval, discard(), WithWorkers(2), WithQueueSize(8))

	for i := 0; i < 5; i++ {
		if err := q.Enqueue(context.Background(), Job{PlanID: uuid.New(), ObjectKey: "k", SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := eval.count(); got != 5 {
		t.Errorf("processed %d jobs, want 5", got)
	}
}

func TestQueueShutdownDrainsBacklog(t *testing.T) {
	eval := &fakeEvaluator{block: make(chan struct{})}
	q := NewEvaluatorQueue(eval, discard(), WithWorkers(1), WithQueueSize(4))

	for i := 0; i < 3; i++ {
		if err := q.Enqueue(context.Background(), Job{PlanID: uuid.New(), ObjectKey: "k"}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	close(eval.block)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := eval.count(); got != 3 {
		t.Errorf("drained %d jobs, want 3", got)
	}
}

func TestQueueEnqueueAfterShutdownIsRejected(t *testing.T) {
	eval := &fakeEvaluator{}
	q := NewEvaluatorQueue(eval, discard(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	err := q.Enqueue(context.Background(), Job{PlanID: uuid.New(), ObjectKey: "k"})
	if !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("Enqueue after shutdown = %v, want ErrQueueClosed", err)
	}
	if got := eval.count(); got != 0 {
		t.Errorf("job ran after shutdown, processed %d", got)
	}
}

func TestQueueFailedRunDoesNotStopWorker(t *testing.T) {
	eval := &fakeEvaluator{err: errors.New("document missing")}
	q := NewEvaluatorQueue(eval, discard(), WithWorkers(1), WithQueueSize(4))

	for i := 0; i < 2; i++ {
		if err := q.Enqueue(context.Background(), Job{PlanID: uuid.New(), ObjectKey: "k"}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := eval.count(); got != 2 {
		t.Errorf("worker stopped after a failed run, processed %d of 2", got)
	}
}

func TestQueueShutdownIsIdempotent(t *testing.T) {
	q := NewEvaluatorQueue(&fakeEvaluator{}, discard(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx) // must not panic on the closed channel
}
