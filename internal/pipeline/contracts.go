package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/seojun-park/planscore/internal/entity"
)

// DocumentStore is the object-storage collaborator. A missing object must be
// reported with common.ErrNotFound in the chain, distinguishable from
// transient failures.
type DocumentStore interface {
	FetchDocument(ctx context.Context, key string) ([]byte, error)
}

// JobStore drives the evaluation_job state machine. Exactly one evaluator
// owns a job for the duration of a run; nothing else mutates it.
type JobStore interface {
	Create(ctx context.Context, planID uuid.UUID, modelName string) (*entity.EvaluationJob, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID) error
	MarkCompleted(ctx context.Context, jobID uuid.UUID, sectionsAnalyzed int) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, kind ErrorKind, message string) error
}

// ReportStore persists materialized reports. Save assigns the report a fresh
// identity; reports are append-only per plan.
type ReportStore interface {
	Save(ctx context.Context, report *entity.EvaluationReport) (uuid.UUID, error)
}
