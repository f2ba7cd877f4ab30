package server

import (
	"context"
	"errors"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	planscorepb "github.com/seojun-park/planscore/gen/proto/planscore/v1"
	"github.com/seojun-park/planscore/internal/async"
	"github.com/seojun-park/planscore/internal/common"
	"github.com/seojun-park/planscore/internal/pipeline"
	"github.com/seojun-park/planscore/internal/repository"
	"github.com/seojun-park/planscore/internal/utils"
)

// Runner is the synchronous evaluation entrypoint.
type Runner interface {
	Evaluate(ctx context.Context, planID uuid.UUID, documentKey string) (*pipeline.Result, error)
}

type EvaluationServer struct {
	planscorepb.UnimplementedEvaluationsServiceServer
	runner  Runner
	queue   async.Queue
	plans   repository.PlanRepository
	jobs    repository.JobRepository
	reports repository.ReportRepository
	logger  *slog.Logger
}

func NewEvaluationServer(
	runner Runner,
	queue async.Queue,
	plans repository.PlanRepository,
	jobs repository.JobRepository,
	reports repository.ReportRepository,
	logger *slog.Logger,
) *EvaluationServer {
	return &EvaluationServer{
		runner:  runner,
		queue:   queue,
		plans:   plans,
		jobs:    jobs,
		reports: reports,
		logger:  logger,
	}
}

// EvaluatePlan runs an evaluation on the request path and returns the
// finished job. A failed run is not a gRPC error: the job row carries the
// error kind and the response simply has no report.
func (s *EvaluationServer) EvaluatePlan(ctx context.Context, req *planscorepb.EvaluatePlanRequest) (*planscorepb.EvaluatePlanResponse, error) {
	planID, err := parseUUIDField(req.GetPlanId(), "plan_id")
	if err != nil {
		return nil, err
	}
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "plan %s not found", planID)
		}
		return nil, status.Error(codes.Internal, "could not load plan")
	}

	res, evalErr := s.runner.Evaluate(ctx, plan.ID, plan.ObjectKey)
	if res == nil {
		s.logger.Error("evaluation did not produce a job", "plan_id", planID, "error", evalErr)
		return nil, status.Error(codes.Internal, "evaluation failed before a job was recorded")
	}
	if evalErr != nil {
		s.logger.Warn("evaluation run failed", "plan_id", planID, "job_id", res.JobID, "kind", res.ErrorKind)
	}

	job, err := s.jobs.GetByID(ctx, res.JobID)
	if err != nil {
		return nil, status.Error(codes.Internal, "could not load evaluation job")
	}
	resp := &planscorepb.EvaluatePlanResponse{Job: utils.ToPBJob(job)}
	if res.ReportID != nil {
		report, err := s.reports.GetByID(ctx, *res.ReportID)
		if err != nil {
			return nil, status.Error(codes.Internal, "could not load evaluation report")
		}
		resp.Report = utils.ToPBReport(report)
	}
	return resp, nil
}

// SubmitEvaluation queues the plan for evaluation off the request path.
// Progress is observable through GetEvaluation and the plan's latest_job_id.
func (s *EvaluationServer) SubmitEvaluation(ctx context.Context, req *planscorepb.SubmitEvaluationRequest) (*planscorepb.SubmitEvaluationResponse, error) {
	planID, err := parseUUIDField(req.GetPlanId(), "plan_id")
	if err != nil {
		return nil, err
	}
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "plan %s not found", planID)
		}
		return nil, status.Error(codes.Internal, "could not load plan")
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		PlanID:      plan.ID,
		ObjectKey:   plan.ObjectKey,
		SubmittedAt: time.Now(),
		TraceID:     uuid.NewString(),
	}); err != nil {
		if errors.Is(err, async.ErrQueueClosed) {
			return nil, status.Error(codes.Unavailable, "evaluation queue is shutting down")
		}
		s.logger.Error("enqueue evaluation failed", "plan_id", planID, "error", err)
		return nil, status.Error(codes.Internal, "could not queue evaluation")
	}

	return &planscorepb.SubmitEvaluationResponse{
		PlanId: plan.ID.String(),
		Queued: true,
	}, nil
}

func (s *EvaluationServer) GetEvaluation(ctx context.Context, req *planscorepb.GetEvaluationRequest) (*planscorepb.GetEvaluationResponse, error) {
	jobID, err := parseUUIDField(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "job %s not found", jobID)
		}
		return nil, status.Error(codes.Internal, "could not load evaluation job")
	}

	resp := &planscorepb.GetEvaluationResponse{Job: utils.ToPBJob(job)}
	report, err := s.reports.GetByJobID(ctx, jobID)
	switch {
	case err == nil:
		resp.Report = utils.ToPBReport(report)
	case errors.Is(err, common.ErrNotFound):
		// still running, or the run failed before materialization
	default:
		return nil, status.Error(codes.Internal, "could not load evaluation report")
	}
	return resp, nil
}

func (s *EvaluationServer) GetLatestEvaluation(ctx context.Context, req *planscorepb.GetLatestEvaluationRequest) (*planscorepb.GetLatestEvaluationResponse, error) {
	planID, err := parseUUIDField(req.GetPlanId(), "plan_id")
	if err != nil {
		return nil, err
	}
	report, err := s.reports.LatestByPlan(ctx, planID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "no report for plan %s", planID)
		}
		return nil, status.Error(codes.Internal, "could not load evaluation report")
	}
	return &planscorepb.GetLatestEvaluationResponse{Report: utils.ToPBReport(report)}, nil
}

func (s *EvaluationServer) ListEvaluations(ctx context.Context, req *planscorepb.ListEvaluationsRequest) (*planscorepb.ListEvaluationsResponse, error) {
	planID, err := parseUUIDField(req.GetPlanId(), "plan_id")
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.ListByPlan(ctx, planID)
	if err != nil {
		s.logger.Error("list evaluations failed", "plan_id", planID, "error", err)
		return nil, status.Error(codes.Internal, "could not list evaluations")
	}
	out := make([]*planscorepb.EvaluationJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, utils.ToPBJob(j))
	}
	return &planscorepb.ListEvaluationsResponse{Jobs: out}, nil
}

func (s *EvaluationServer) DeleteEvaluation(ctx context.Context, req *planscorepb.DeleteEvaluationRequest) (*planscorepb.DeleteEvaluationResponse, error) {
	reportID, err := parseUUIDField(req.GetReportId(), "report_id")
	if err != nil {
		return nil, err
	}
	if err := s.reports.Delete(ctx, reportID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "report %s not found", reportID)
		}
		s.logger.Error("delete report failed", "report_id", reportID, "error", err)
		return nil, status.Error(codes.Internal, "could not delete report")
	}
	return &planscorepb.DeleteEvaluationResponse{Deleted: true}, nil
}
