package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SubCriterion is one sub-item score inside a category result.
type SubCriterion struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// CategoryResult is the model's roll-up for one main category. The engine
// recomputes score/is_passed independently; these values are what the model
// claimed.
type CategoryResult struct {
	Category         string         `json:"category"`
	Score            float64        `json:"score"`
	MaxScore         int            `json:"max_score"`
	MinScoreRequired int            `json:"min_score_required"`
	IsPassed         bool           `json:"is_passed"`
	SubCriteria      []SubCriterion `json:"sub_criteria"`
	Reasoning        string         `json:"reasoning,omitempty"`
}

// FinalReport is the parsed form of the synthesis call's JSON output.
type FinalReport struct {
	Title                  string           `json:"title,omitempty"`
	TotalScore             float64          `json:"total_score"`
	OverallAssessment      string           `json:"overall_assessment"`
	Strengths              []string         `json:"strengths"`
	Weaknesses             []string         `json:"weaknesses"`
	ImprovementSuggestions []string         `json:"improvement_suggestions"`
	EvaluationCriteria     []CategoryResult `json:"evaluation_criteria"`
}

// SectionScores flattens the report's sub-criteria into a section-name →
// score map for the gating engine.
func (fr *FinalReport) SectionScores() map[string]float64 {
	out := make(map[string]float64)
	for _, cr := range fr.EvaluationCriteria {
		for _, sc := range cr.SubCriteria {
			out[sc.Name] = sc.Score
		}
	}
	return out
}

// ParseFinalReport strips any code fences, validates the payload against the
// schema, and decodes it. It returns the normalized raw JSON alongside the
// typed report so callers can persist exactly what was validated.
func ParseFinalReport(raw string, schemaMap map[string]any) (*FinalReport, []byte, error) {
	content := []byte(StripCodeFence(raw))
	if len(content) == 0 {
		return nil, nil, fmt.Errorf("empty report output")
	}
	if err := ValidateJSONAgainstSchema(schemaMap, content); err != nil {
		return nil, content, fmt.Errorf("report schema validation failed: %w", err)
	}
	var fr FinalReport
	if err := json.Unmarshal(content, &fr); err != nil {
		return nil, content, fmt.Errorf("unmarshal report: %w", err)
	}
	return &fr, content, nil
}

// StripCodeFence removes a surrounding markdown code fence if present.
// Models occasionally wrap JSON in ```json ... ``` despite instructions.
func StripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if i := strings.IndexByte(t, '\n'); i >= 0 {
		// drop the language tag line (e.g. "json")
		t = t[i+1:]
	}
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}
