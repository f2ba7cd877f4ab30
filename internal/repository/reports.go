package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/seojun-park/planscore/gen/ent"
	"github.com/seojun-park/planscore/gen/ent/evaluationreport"
	"github.com/seojun-park/planscore/internal/common"
	"github.com/seojun-park/planscore/internal/entity"
	"github.com/seojun-park/planscore/internal/pipeline"
	"github.com/seojun-park/planscore/internal/utils"
)

// ReportRepository persists materialized evaluation reports. Reports are
// append-only per plan; re-evaluation adds a row rather than mutating one.
type ReportRepository interface {
	pipeline.ReportStore
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EvaluationReport, error)
	GetByJobID(ctx context.Context, jobID uuid.UUID) (*entity.EvaluationReport, error)
	LatestByPlan(ctx context.Context, planID uuid.UUID) (*entity.EvaluationReport, error)
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]*entity.EvaluationReport, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reportRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewReportRepository(entc *ent.Client, log *slog.Logger) ReportRepository {
	return &reportRepo{ent: entc, log: log}
}

func (r *reportRepo) Save(ctx context.Context, report *entity.EvaluationReport) (uuid.UUID, error) {
	categories, err := json.Marshal(report.CategoryResults)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode category_results: %w", err)
	}
	sections, err := json.Marshal(report.SectionScores)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode section_scores: %w", err)
	}

	row, err := r.ent.EvaluationReport.
		Create().
		SetJobID(report.JobID).
		SetPlanID(report.PlanID).
		SetTotalScore(report.TotalScore).
		SetOverallAssessment(string(report.OverallAssessment)).
		SetRiskOfRejection(report.RiskOfRejection).
		SetFailedCategories(report.FailedCategories).
		SetCategoryResults(categories).
		SetSectionScores(sections).
		SetStrengths(report.Strengths).
		SetWeaknesses(report.Weaknesses).
		SetImprovementSuggestions(report.ImprovementSuggestions).
		SetRawReport(report.RawReport).
		Save(ctx)
	if err != nil {
		r.log.Error("report save failed", "job_id", report.JobID, "plan_id", report.PlanID, "err", err)
		return uuid.Nil, err
	}
	r.log.Info("report saved",
		"report_id", row.ID,
		"job_id", report.JobID,
		"total_score", report.TotalScore,
		"assessment", report.OverallAssessment)
	return row.ID, nil
}

func (r *reportRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.EvaluationReport, error) {
	row, err := r.ent.EvaluationReport.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("report %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToEvaluationReport(row)
}

func (r *reportRepo) GetByJobID(ctx context.Context, jobID uuid.UUID) (*entity.EvaluationReport, error) {
	row, err := r.ent.EvaluationReport.Query().
		Where(evaluationreport.JobID(jobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("report for job %s: %w", jobID, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToEvaluationReport(row)
}

func (r *reportRepo) LatestByPlan(ctx context.Context, planID uuid.UUID) (*entity.EvaluationReport, error) {
	row, err := r.ent.EvaluationReport.Query().
		Where(evaluationreport.PlanID(planID)).
		Order(evaluationreport.ByCreatedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("report for plan %s: %w", planID, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToEvaluationReport(row)
}

func (r *reportRepo) ListByPlan(ctx context.Context, planID uuid.UUID) ([]*entity.EvaluationReport, error) {
	rows, err := r.ent.EvaluationReport.Query().
		Where(evaluationreport.PlanID(planID)).
		Order(evaluationreport.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	reports := make([]*entity.EvaluationReport, 0, len(rows))
	for _, row := range rows {
		rep, err := utils.ToEvaluationReport(row)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

func (r *reportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.EvaluationReport.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("report %s: %w", id, common.ErrNotFound)
		}
		return err
	}
	r.log.Info("report deleted", "report_id", id)
	return nil
}
