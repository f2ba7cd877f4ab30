// Package async runs evaluations off the request path. A submitted job gets
// its outcome recorded on the evaluation_job row, not returned to the caller.
package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/seojun-park/planscore/internal/pipeline"
)

// ErrQueueClosed reports an Enqueue after Shutdown. Callers must not tell
// their clients the job was accepted.
var ErrQueueClosed = errors.New("queue is shut down")

type Job struct {
	PlanID      uuid.UUID
	ObjectKey   string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Evaluator is the synchronous run the workers drive. Satisfied by
// *pipeline.Evaluator.
type Evaluator interface {
	Evaluate(ctx context.Context, planID uuid.UUID, documentKey string) (*pipeline.Result, error)
}

type EvaluatorQueue struct {
	eval    Evaluator
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*EvaluatorQueue)

func WithWorkers(n int) Option {
	return func(q *EvaluatorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *EvaluatorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *EvaluatorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewEvaluatorQueue(eval Evaluator, logger *slog.Logger, opts ...Option) *EvaluatorQueue {
	q := &EvaluatorQueue{
		eval:    eval,
		logger:  logger,
		workers: 2,
		timeout: 5 * time.Minute,
		ch:      make(chan Job, 64),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *EvaluatorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					res, err := q.eval.Evaluate(ctx, job.PlanID, job.ObjectKey)
					cancel()

					if err != nil {
						q.logger.Error("evaluation failed", "worker_id", workerID, "plan_id", job.PlanID, "error", err)
					} else {
						q.logger.Info("evaluation finished",
							"worker_id", workerID,
							"plan_id", job.PlanID,
							"job_id", res.JobID,
							"status", res.Status)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *EvaluatorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "plan_id", job.PlanID)
		return ErrQueueClosed
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued plan for evaluation", "plan_id", job.PlanID)
	default:
		q.logger.Warn("queue full, applying backpressure", "plan_id", job.PlanID)
		q.ch <- job
	}
	return nil
}

func (q *EvaluatorQueue) Shutdown(ctx context.Context) {
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
