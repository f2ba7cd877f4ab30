package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/seojun-park/planscore/constants"
	"github.com/seojun-park/planscore/gen/ent"
	"github.com/seojun-park/planscore/gen/ent/evaluationjob"
	"github.com/seojun-park/planscore/internal/common"
	"github.com/seojun-park/planscore/internal/entity"
	"github.com/seojun-park/planscore/internal/pipeline"
	"github.com/seojun-park/planscore/internal/utils"
)

// JobRepository drives the evaluation_job state machine and mirrors the
// latest outcome onto the owning plan row.
type JobRepository interface {
	pipeline.JobStore
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EvaluationJob, error)
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]*entity.EvaluationJob, error)
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, planID uuid.UUID, modelName string) (*entity.EvaluationJob, error) {
	job, err := r.ent.EvaluationJob.
		Create().
		SetPlanID(planID).
		SetStatus(string(constants.JobStatusPending)).
		SetModelName(modelName).
		Save(ctx)
	if err != nil {
		r.log.Error("evaluation_job create failed", "plan_id", planID, "err", err)
		return nil, err
	}
	// Point the plan at its newest run.
	_, err = r.ent.BusinessPlan.
		UpdateOneID(planID).
		SetLatestJobID(job.ID).
		SetStatus(string(constants.PlanStatusEvaluating)).
		Save(ctx)
	if err != nil {
		r.log.Error("plan latest_job update failed", "plan_id", planID, "job_id", job.ID, "err", err)
		return nil, err
	}
	r.log.Info("evaluation_job created", "job_id", job.ID, "plan_id", planID, "model", modelName)
	return utils.ToEvaluationJob(job), nil
}

func (r *jobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.EvaluationJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("evaluation_job mark running failed", "job_id", jobID, "err", err)
		return err
	}
	return nil
}

func (r *jobRepo) MarkCompleted(ctx context.Context, jobID uuid.UUID, sectionsAnalyzed int) error {
	job, err := r.ent.EvaluationJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusCompleted)).
		SetSectionsAnalyzed(sectionsAnalyzed).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("evaluation_job mark completed failed", "job_id", jobID, "err", err)
		return err
	}
	_, err = r.ent.BusinessPlan.
		UpdateOneID(job.PlanID).
		SetStatus(string(constants.PlanStatusCompleted)).
		Save(ctx)
	if err != nil {
		r.log.Error("plan status update failed", "plan_id", job.PlanID, "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("evaluation_job completed", "job_id", jobID, "sections", sectionsAnalyzed)
	return nil
}

func (r *jobRepo) MarkFailed(ctx context.Context, jobID uuid.UUID, kind pipeline.ErrorKind, message string) error {
	job, err := r.ent.EvaluationJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorKind(string(kind)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("evaluation_job mark failed failed", "job_id", jobID, "err", err)
		return err
	}
	_, err = r.ent.BusinessPlan.
		UpdateOneID(job.PlanID).
		SetStatus(string(constants.PlanStatusFailed)).
		Save(ctx)
	if err != nil {
		r.log.Error("plan status update failed", "plan_id", job.PlanID, "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("evaluation_job failed", "job_id", jobID, "kind", kind, "error", message)
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.EvaluationJob, error) {
	job, err := r.ent.EvaluationJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("job %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToEvaluationJob(job), nil
}

func (r *jobRepo) ListByPlan(ctx context.Context, planID uuid.UUID) ([]*entity.EvaluationJob, error) {
	rows, err := r.ent.EvaluationJob.Query().
		Where(evaluationjob.PlanID(planID)).
		Order(evaluationjob.ByStartedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	jobs := make([]*entity.EvaluationJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, utils.ToEvaluationJob(row))
	}
	return jobs, nil
}
