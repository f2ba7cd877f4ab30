package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/seojun-park/planscore/internal/rubric"
)

func testRubric(t *testing.T) *rubric.Rubric {
	t.Helper()
	r, err := rubric.Load()
	if err != nil {
		t.Fatalf("load rubric: %v", err)
	}
	return r
}

// validReportJSON builds a schema-conforming full-marks report for the rubric.
func validReportJSON(t *testing.T, r *rubric.Rubric) string {
	t.Helper()
	criteria := make([]map[string]any, 0, len(r.Categories))
	for _, c := range r.Categories {
		subs := make([]map[string]any, 0, len(c.Sections))
		for _, name := range c.Sections {
			s := r.SectionByName(name)
			subs = append(subs, map[string]any{"name": s.Name, "score": float64(s.MaxScore)})
		}
		criteria = append(criteria, map[string]any{
			"category":           c.Name,
			"score":              float64(c.MaxScore),
			"max_score":          c.MaxScore,
			"min_score_required": c.MinimumRequired,
			"is_passed":          true,
			"sub_criteria":       subs,
			"reasoning":          "thorough evidence across all pillars",
		})
	}
	report := map[string]any{
		"total_score":             float64(r.TotalMaxScore()),
		"overall_assessment":      "PASS_LIKELY",
		"strengths":               []string{"clear problem definition", "capable team"},
		"weaknesses":              []string{"thin financial detail"},
		"improvement_suggestions": []string{"add a funding timeline"},
		"evaluation_criteria":     criteria,
	}
	b, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal report fixture: %v", err)
	}
	return string(b)
}

func TestParseFinalReportAcceptsValidOutput(t *testing.T) {
	r := testRubric(t)
	schema := BuildReportJSONSchema(r)

	fr, raw, err := ParseFinalReport(validReportJSON(t, r), schema)
	if err != nil {
		t.Fatalf("ParseFinalReport: %v", err)
	}
	if fr.TotalScore != 100 {
		t.Errorf("TotalScore = %v, want 100", fr.TotalScore)
	}
	if fr.OverallAssessment != "PASS_LIKELY" {
		t.Errorf("OverallAssessment = %q", fr.OverallAssessment)
	}
	if len(fr.EvaluationCriteria) != len(r.Categories) {
		t.Errorf("criteria = %d, want %d", len(fr.EvaluationCriteria), len(r.Categories))
	}
	if len(raw) == 0 || raw[0] != '{' {
		t.Errorf("raw JSON not normalized: %q", string(raw[:1]))
	}
}

func TestParseFinalReportStripsCodeFence(t *testing.T) {
	r := testRubric(t)
	schema := BuildReportJSONSchema(r)
	fenced := "```json\n" + validReportJSON(t, r) + "\n```"

	fr, _, err := ParseFinalReport(fenced, schema)
	if err != nil {
		t.Fatalf("ParseFinalReport with fence: %v", err)
	}
	if fr.TotalScore != 100 {
		t.Errorf("TotalScore = %v, want 100", fr.TotalScore)
	}
}

func TestParseFinalReportRejectsBadPayloads(t *testing.T) {
	r := testRubric(t)
	schema := BuildReportJSONSchema(r)

	mutate := func(f func(m map[string]any)) string {
		var m map[string]any
		if err := json.Unmarshal([]byte(validReportJSON(t, r)), &m); err != nil {
			t.Fatalf("unmarshal fixture: %v", err)
		}
		f(m)
		b, _ := json.Marshal(m)
		return string(b)
	}

	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not json", "the plan looks great"},
		{"missing total_score", mutate(func(m map[string]any) { delete(m, "total_score") })},
		{"unknown category name", mutate(func(m map[string]any) {
			m["evaluation_criteria"].([]any)[0].(map[string]any)["category"] = "Vibes"
		})},
		{"missing one category", mutate(func(m map[string]any) {
			m["evaluation_criteria"] = m["evaluation_criteria"].([]any)[1:]
		})},
		{"negative score", mutate(func(m map[string]any) {
			m["evaluation_criteria"].([]any)[0].(map[string]any)["score"] = -1.0
		})},
		{"total above maximum", mutate(func(m map[string]any) { m["total_score"] = 101.0 })},
		{"too many strengths", mutate(func(m map[string]any) {
			m["strengths"] = []string{"a", "b", "c", "d", "e", "f"}
		})},
		{"extra field", mutate(func(m map[string]any) { m["verdict"] = "ship it" })},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, _, err := ParseFinalReport(c.raw, schema); err == nil {
				t.Error("ParseFinalReport accepted invalid output")
			}
		})
	}
}

func TestSectionScoresFlattensSubCriteria(t *testing.T) {
	fr := &FinalReport{
		EvaluationCriteria: []CategoryResult{
			{
				Category: "Problem Recognition",
				SubCriteria: []SubCriterion{
					{Name: "1.1 Item Development Motivation", Score: 12},
					{Name: "1.2 Item Purpose and Necessity", Score: 8},
				},
			},
			{
				Category: "Team Composition",
				SubCriteria: []SubCriterion{
					{Name: "4.1 Founder and Team Capabilities", Score: 15},
				},
			},
		},
	}
	got := fr.SectionScores()
	want := map[string]float64{
		"1.1 Item Development Motivation":   12,
		"1.2 Item Purpose and Necessity":    8,
		"4.1 Founder and Team Capabilities": 15,
	}
	if len(got) != len(want) {
		t.Fatalf("SectionScores = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("SectionScores[%q] = %v, want %v", k, got[k], v)
		}
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, c := range cases {
		if got := StripCodeFence(c.in); got != c.want {
			t.Errorf("StripCodeFence(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBuildReportPromptEmbedsMetadata(t *testing.T) {
	r := testRubric(t)
	results := make([]SectionAnalysis, 0, len(r.Sections))
	for _, s := range r.Sections {
		results = append(results, SectionAnalysis{
			SectionName:  s.Name,
			AnalysisText: fmt.Sprintf("analysis of %s", s.Name),
		})
	}
	prompt := BuildReportPrompt(results, r)

	for _, c := range r.Categories {
		if !strings.Contains(prompt, fmt.Sprintf("main_category: %s", c.Name)) {
			t.Errorf("prompt missing category metadata for %q", c.Name)
		}
		if !strings.Contains(prompt, fmt.Sprintf("category_min_score: %d", c.MinimumRequired)) {
			t.Errorf("prompt missing min score for %q", c.Name)
		}
	}
	if !strings.Contains(prompt, "PASS_LIKELY") || !strings.Contains(prompt, "REJECTION_RISK") {
		t.Error("prompt missing assessment vocabulary")
	}
	if !strings.Contains(prompt, fmt.Sprintf("exactly %d entries", len(r.Categories))) {
		t.Error("prompt missing criteria count rule")
	}
	// unknown sections are skipped, not rendered
	p2 := BuildReportPrompt([]SectionAnalysis{{SectionName: "9.9 Ghost", AnalysisText: "x"}}, r)
	if strings.Contains(p2, "9.9 Ghost") {
		t.Error("prompt rendered an unknown section")
	}
}

func TestBuildSectionPromptListsPillars(t *testing.T) {
	r := testRubric(t)
	s := r.SectionByName("4.1 Founder and Team Capabilities")
	prompt := BuildSectionPrompt(s)

	if !strings.Contains(prompt, s.Name) {
		t.Error("prompt missing section name")
	}
	for _, p := range s.Pillars {
		if !strings.Contains(prompt, p.Name) {
			t.Errorf("prompt missing pillar %q", p.Name)
		}
		if !strings.Contains(prompt, fmt.Sprintf("(%d points):", p.Weight)) {
			t.Errorf("prompt missing weight for pillar %q", p.Name)
		}
	}
	if !strings.Contains(prompt, fmt.Sprintf("/ %d", s.MaxScore)) {
		t.Error("prompt missing final score denominator")
	}
}

func TestBuildSystemPromptStatesThresholds(t *testing.T) {
	r := testRubric(t)
	prompt := BuildSystemPrompt(r)
	for _, c := range r.Categories {
		if !strings.Contains(prompt, fmt.Sprintf("Subtotal: %d points, minimum required: %d points", c.MaxScore, c.MinimumRequired)) {
			t.Errorf("system prompt missing thresholds for %q", c.Name)
		}
	}
}
