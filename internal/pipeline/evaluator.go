package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/seojun-park/planscore/constants"
	"github.com/seojun-park/planscore/internal/common"
	"github.com/seojun-park/planscore/internal/llm"
	"github.com/seojun-park/planscore/internal/rubric"
)

// Config holds the evaluator's timeout budget and fan-out width.
type Config struct {
	// FanoutTimeout bounds the whole section-analysis phase. On expiry the
	// run fails; partial results are discarded, never persisted.
	FanoutTimeout time.Duration
	// MaxConcurrent caps in-flight section calls.
	MaxConcurrent int
	// ModelName is recorded on job rows for audit.
	ModelName string
}

// Result is the caller-facing outcome of one evaluation run.
type Result struct {
	JobID     uuid.UUID
	ReportID  *uuid.UUID
	Status    constants.JobStatus
	ErrorKind ErrorKind
}

// Evaluator drives one document through fetch, concurrent section analysis,
// synthesis, and materialization. It owns the job state machine: the caller
// always gets back a COMPLETED job with a report id or a FAILED job with an
// error kind, never a job parked in PENDING or RUNNING.
type Evaluator struct {
	Logger   *slog.Logger
	Cfg      Config
	Rubric   *rubric.Rubric
	Docs     DocumentStore
	Jobs     JobStore
	Analyzer *SectionAnalyzer
	Synth    *ReportSynthesizer
	Mat      *Materializer
}

func NewEvaluator(
	logger *slog.Logger,
	cfg Config,
	r *rubric.Rubric,
	gen llm.Generator,
	docs DocumentStore,
	jobs JobStore,
	reports ReportStore,
) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FanoutTimeout <= 0 {
		cfg.FanoutTimeout = 2 * time.Minute
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 8
	}
	sectionTimeout := cfg.FanoutTimeout / 2
	return &Evaluator{
		Logger:   logger,
		Cfg:      cfg,
		Rubric:   r,
		Docs:     docs,
		Jobs:     jobs,
		Analyzer: NewSectionAnalyzer(logger, gen, r, sectionTimeout),
		Synth:    NewReportSynthesizer(logger, gen),
		Mat:      NewMaterializer(logger, r, reports),
	}
}

// Evaluate runs one evaluation for the document at documentKey. Each call
// creates a fresh job/report pair; prior reports for the same plan are never
// touched.
func (e *Evaluator) Evaluate(ctx context.Context, planID uuid.UUID, documentKey string) (*Result, error) {
	start := time.Now()
	rid := uuid.New().String()

	job, err := e.Jobs.Create(ctx, planID, e.Cfg.ModelName)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	e.Logger.Info("evaluate.start",
		"req_id", rid, "job_id", job.ID, "plan_id", planID, "document_key", documentKey)

	// Fetch before any model call; a missing document must not spend budget.
	document, err := e.Docs.FetchDocument(ctx, documentKey)
	if err != nil {
		return e.fail(ctx, job.ID, fmt.Errorf("fetch document %q: %w", documentKey, err))
	}
	if len(document) == 0 {
		return e.fail(ctx, job.ID, fmt.Errorf("fetch document %q: empty object: %w", documentKey, common.ErrNotFound))
	}

	if err := e.Jobs.MarkRunning(ctx, job.ID); err != nil {
		return e.fail(ctx, job.ID, fmt.Errorf("mark running: %w", err))
	}

	results, err := e.fanOut(ctx, document)
	if err != nil {
		return e.fail(ctx, job.ID, err)
	}

	raw, err := e.Synth.Synthesize(ctx, results, e.Rubric)
	if err != nil {
		return e.fail(ctx, job.ID, err)
	}

	report, err := e.Mat.Materialize(ctx, raw, job)
	if err != nil {
		return e.fail(ctx, job.ID, err)
	}

	if err := e.Jobs.MarkCompleted(ctx, job.ID, len(results)); err != nil {
		// The report is saved; do not pretend otherwise by reporting success
		// with a job stuck in RUNNING.
		return e.fail(ctx, job.ID, fmt.Errorf("mark completed: %w", err))
	}

	e.Logger.Info("evaluate.ok",
		"req_id", rid,
		"job_id", job.ID,
		"report_id", report.ID,
		"total_score", report.TotalScore,
		"risk_of_rejection", report.RiskOfRejection,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	reportID := report.ID
	return &Result{JobID: job.ID, ReportID: &reportID, Status: constants.JobStatusCompleted}, nil
}

// fanOut launches every section analysis concurrently under one shared
// deadline. Individual model failures degrade inside the analyzer; only the
// deadline (or caller cancellation) aborts the phase.
func (e *Evaluator) fanOut(ctx context.Context, document []byte) ([]llm.SectionAnalysis, error) {
	fanoutCtx, cancel := context.WithTimeout(ctx, e.Cfg.FanoutTimeout)
	defer cancel()

	sections := e.Rubric.Sections
	results := make([]llm.SectionAnalysis, len(sections))

	eg, gctx := errgroup.WithContext(fanoutCtx)
	eg.SetLimit(e.Cfg.MaxConcurrent)
	e.Logger.Info("evaluate.fanout.start", "sections", len(sections), "budget", e.Cfg.FanoutTimeout)

	for i := range sections {
		eg.Go(func() error {
			res := e.Analyzer.Analyze(gctx, document, &sections[i])
			if err := gctx.Err(); err != nil {
				// Degraded because the whole phase is over, not because this
				// one call failed. Discard, the run is dead.
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		if errors.Is(fanoutCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: after %s", ErrFanoutTimeout, e.Cfg.FanoutTimeout)
		}
		return nil, fmt.Errorf("section fan-out: %w", err)
	}

	degraded := 0
	for _, r := range results {
		if r.Failed {
			degraded++
		}
	}
	e.Logger.Info("evaluate.fanout.ok", "sections", len(results), "degraded", degraded)
	return results, nil
}

// fail transitions the job to FAILED with its classified kind. Best effort:
// if even that write fails we still surface the original error.
func (e *Evaluator) fail(ctx context.Context, jobID uuid.UUID, runErr error) (*Result, error) {
	kind := classify(runErr)
	e.Logger.Error("evaluate.failed", "job_id", jobID, "kind", kind, "error", runErr)
	if err := e.Jobs.MarkFailed(ctx, jobID, kind, runErr.Error()); err != nil {
		e.Logger.Error("evaluate.mark_failed_error", "job_id", jobID, "error", err)
	}
	return &Result{JobID: jobID, Status: constants.JobStatusFailed, ErrorKind: kind}, runErr
}
