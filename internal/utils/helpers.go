package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/seojun-park/planscore/constants"
	"github.com/seojun-park/planscore/gen/ent"
	planscorepb "github.com/seojun-park/planscore/gen/proto/planscore/v1"
	"github.com/seojun-park/planscore/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToBusinessPlan(e *ent.BusinessPlan) *entity.BusinessPlan {
	return &entity.BusinessPlan{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Title:       e.Title,
		ObjectKey:   e.ObjectKey,
		ContentHash: e.ContentHash,
		PageCount:   e.PageCount,
		SizeBytes:   e.SizeBytes,
		Status:      constants.PlanStatus(e.Status),
		LatestJobID: e.LatestJobID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToEvaluationJob(e *ent.EvaluationJob) *entity.EvaluationJob {
	return &entity.EvaluationJob{
		ID:               e.ID,
		PlanID:           e.PlanID,
		Status:           constants.JobStatus(e.Status),
		ErrorKind:        e.ErrorKind,
		ErrorMessage:     e.ErrorMessage,
		ModelName:        strOrEmpty(e.ModelName),
		SectionsAnalyzed: e.SectionsAnalyzed,
		StartedAt:        e.StartedAt,
		FinishedAt:       e.FinishedAt,
	}
}

func ToEvaluationReport(e *ent.EvaluationReport) (*entity.EvaluationReport, error) {
	var categories map[string]entity.CategoryOutcome
	if len(e.CategoryResults) > 0 {
		if err := json.Unmarshal(e.CategoryResults, &categories); err != nil {
			return nil, fmt.Errorf("decode category_results for report %s: %w", e.ID, err)
		}
	}
	var sections map[string]float64
	if len(e.SectionScores) > 0 {
		if err := json.Unmarshal(e.SectionScores, &sections); err != nil {
			return nil, fmt.Errorf("decode section_scores for report %s: %w", e.ID, err)
		}
	}
	return &entity.EvaluationReport{
		ID:                     e.ID,
		JobID:                  e.JobID,
		PlanID:                 e.PlanID,
		TotalScore:             e.TotalScore,
		OverallAssessment:      constants.Assessment(e.OverallAssessment),
		RiskOfRejection:        e.RiskOfRejection,
		FailedCategories:       e.FailedCategories,
		CategoryResults:        categories,
		SectionScores:          sections,
		Strengths:              e.Strengths,
		Weaknesses:             e.Weaknesses,
		ImprovementSuggestions: e.ImprovementSuggestions,
		RawReport:              e.RawReport,
		CreatedAt:              e.CreatedAt,
	}, nil
}

func ToPBPlan(p *entity.BusinessPlan) *planscorepb.BusinessPlan {
	pb := &planscorepb.BusinessPlan{
		Id:        p.ID.String(),
		OwnerId:   p.OwnerID.String(),
		Title:     p.Title,
		ObjectKey: p.ObjectKey,
		PageCount: int32(p.PageCount),
		SizeBytes: int64(p.SizeBytes),
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if p.LatestJobID != nil {
		pb.LatestJobId = p.LatestJobID.String()
	}
	return pb
}

func ToPBJob(j *entity.EvaluationJob) *planscorepb.EvaluationJob {
	pb := &planscorepb.EvaluationJob{
		Id:               j.ID.String(),
		PlanId:           j.PlanID.String(),
		Status:           string(j.Status),
		ErrorKind:        strOrEmpty(j.ErrorKind),
		ErrorMessage:     strOrEmpty(j.ErrorMessage),
		ModelName:        j.ModelName,
		SectionsAnalyzed: int32(j.SectionsAnalyzed),
		StartedAt:        j.StartedAt.UTC().Format(time.RFC3339),
	}
	if j.FinishedAt != nil {
		pb.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	return pb
}

func ToPBReport(r *entity.EvaluationReport) *planscorepb.EvaluationReport {
	categories := make(map[string]*planscorepb.CategoryOutcome, len(r.CategoryResults))
	for name, c := range r.CategoryResults {
		categories[name] = &planscorepb.CategoryOutcome{
			Score:           c.Score,
			MaxScore:        int32(c.MaxScore),
			MinimumRequired: int32(c.MinimumRequired),
			Passed:          c.Passed,
		}
	}
	return &planscorepb.EvaluationReport{
		Id:                     r.ID.String(),
		JobId:                  r.JobID.String(),
		PlanId:                 r.PlanID.String(),
		TotalScore:             r.TotalScore,
		OverallAssessment:      string(r.OverallAssessment),
		RiskOfRejection:        r.RiskOfRejection,
		FailedCategories:       r.FailedCategories,
		CategoryResults:        categories,
		SectionScores:          r.SectionScores,
		Strengths:              r.Strengths,
		Weaknesses:             r.Weaknesses,
		ImprovementSuggestions: r.ImprovementSuggestions,
		RawReport:              string(r.RawReport),
		CreatedAt:              r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
