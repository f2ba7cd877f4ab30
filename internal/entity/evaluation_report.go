package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/seojun-park/planscore/constants"
)

// CategoryOutcome is the persisted per-category roll-up. Score and Passed
// are the engine's recomputed values, never the model's own claim.
type CategoryOutcome struct {
	Score           float64 `json:"score"`
	MaxScore        int     `json:"max_score"`
	MinimumRequired int     `json:"minimum_required"`
	Passed          bool    `json:"passed"`
}

// EvaluationReport is the persisted evaluation artifact. Immutable after
// creation; a re-evaluation creates a new report instead of mutating one.
type EvaluationReport struct {
	ID                     uuid.UUID                  `json:"id"`
	JobID                  uuid.UUID                  `json:"job_id"`
	PlanID                 uuid.UUID                  `json:"plan_id"`
	TotalScore             float64                    `json:"total_score"`
	OverallAssessment      constants.Assessment       `json:"overall_assessment"`
	RiskOfRejection        bool                       `json:"risk_of_rejection"`
	FailedCategories       []string                   `json:"failed_categories"`
	CategoryResults        map[string]CategoryOutcome `json:"category_results"`
	SectionScores          map[string]float64         `json:"section_scores,omitempty"`
	Strengths              []string                   `json:"strengths"`
	Weaknesses             []string                   `json:"weaknesses"`
	ImprovementSuggestions []string                   `json:"improvement_suggestions"`
	RawReport              json.RawMessage            `json:"raw_report,omitempty"`
	CreatedAt              time.Time                  `json:"created_at"`
}
