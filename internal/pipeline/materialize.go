package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/seojun-park/planscore/constants"
	"github.com/seojun-park/planscore/internal/entity"
	"github.com/seojun-park/planscore/internal/llm"
	"github.com/seojun-park/planscore/internal/rubric"
	"github.com/seojun-park/planscore/internal/scoring"
)

// Materializer validates the synthesized report, recomputes the gating
// decision from the model-reported section scores, and persists the result.
// The model's own total/is_passed/overall_assessment are advisory; the
// engine's recomputation wins, and disagreements are logged.
type Materializer struct {
	Logger  *slog.Logger
	Rubric  *rubric.Rubric
	Schema  map[string]any
	Reports ReportStore
}

func NewMaterializer(logger *slog.Logger, r *rubric.Rubric, reports ReportStore) *Materializer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Materializer{
		Logger:  logger,
		Rubric:  r,
		Schema:  llm.BuildReportJSONSchema(r),
		Reports: reports,
	}
}

// Materialize parses raw, recomputes scores and gating, persists the report,
// and returns it with its assigned identity. A parse or schema failure is a
// synthesis error; an unpersisted report never appears completed.
func (m *Materializer) Materialize(ctx context.Context, raw string, job *entity.EvaluationJob) (*entity.EvaluationReport, error) {
	fr, rawJSON, err := llm.ParseFinalReport(raw, m.Schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReportSynthesis, err)
	}

	sectionScores := fr.SectionScores()
	if err := scoring.ValidateSectionScores(sectionScores, m.Rubric); err != nil {
		return nil, err
	}

	categoryScores := scoring.CategoryScores(sectionScores, m.Rubric)
	if err := scoring.ValidateCategoryScores(categoryScores, m.Rubric); err != nil {
		return nil, err
	}
	failed := scoring.FailedCategories(categoryScores, m.Rubric)
	risk := scoring.RiskOfRejection(categoryScores, m.Rubric)
	total := scoring.TotalScore(categoryScores, m.Rubric)

	m.logDiscrepancies(job, fr, categoryScores, total, risk)

	outcomes := make(map[string]entity.CategoryOutcome, len(m.Rubric.Categories))
	for _, c := range m.Rubric.Categories {
		score := categoryScores[c.Name]
		outcomes[c.Name] = entity.CategoryOutcome{
			Score:           score,
			MaxScore:        c.MaxScore,
			MinimumRequired: c.MinimumRequired,
			Passed:          scoring.CategoryPassed(score, c),
		}
	}

	report := &entity.EvaluationReport{
		JobID:                  job.ID,
		PlanID:                 job.PlanID,
		TotalScore:             total,
		OverallAssessment:      constants.AssessmentForRisk(risk),
		RiskOfRejection:        risk,
		FailedCategories:       failed,
		CategoryResults:        outcomes,
		SectionScores:          sectionScores,
		Strengths:              fr.Strengths,
		Weaknesses:             fr.Weaknesses,
		ImprovementSuggestions: fr.ImprovementSuggestions,
		RawReport:              rawJSON,
		CreatedAt:              time.Now().UTC(),
	}

	id, err := m.Reports.Save(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	report.ID = id

	m.Logger.Info("materialize.ok",
		"job_id", job.ID,
		"report_id", id,
		"total_score", total,
		"risk_of_rejection", risk,
		"failed_categories", failed,
	)
	return report, nil
}

func (m *Materializer) logDiscrepancies(job *entity.EvaluationJob, fr *llm.FinalReport, categoryScores map[string]float64, total float64, risk bool) {
	if scoring.Round2(fr.TotalScore) != total {
		m.Logger.Warn("materialize.total_score_mismatch",
			"job_id", job.ID, "model_claimed", fr.TotalScore, "recomputed", total)
	}
	for _, cr := range fr.EvaluationCriteria {
		c := m.Rubric.CategoryByName(cr.Category)
		if c == nil {
			continue
		}
		recomputed := categoryScores[c.Name]
		if scoring.Round2(cr.Score) != recomputed || cr.IsPassed != scoring.CategoryPassed(recomputed, *c) {
			m.Logger.Warn("materialize.category_mismatch",
				"job_id", job.ID,
				"category", c.Name,
				"model_score", cr.Score,
				"model_passed", cr.IsPassed,
				"recomputed_score", recomputed,
				"recomputed_passed", scoring.CategoryPassed(recomputed, *c),
			)
		}
	}
	if claimed := fr.OverallAssessment; claimed != string(constants.AssessmentForRisk(risk)) {
		m.Logger.Warn("materialize.assessment_mismatch",
			"job_id", job.ID, "model_claimed", claimed, "recomputed_risk", risk)
	}
}
