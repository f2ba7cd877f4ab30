package scoring

import (
	"errors"
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

func fullMarks(r *rubric.Rubric) map[string]float64 {
	out := make(map[string]float64, len(r.Sections))
	for _, s := range r.Sections {
		out[s.Name] = float64(s.MaxScore)
	}
	return out
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{12.344, 12.34},
		{12.346, 12.35},
		{91.99, 91.99},
		{99.999, 100},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestCategoryScoreSumsOwnedSections(t *testing.T) {
	r := testRubric(t)
	scores := map[string]float64{
		"1.1 Item Development Motivation": 12,
		"1.2 Item Purpose and Necessity":  8,
		// a section from another category must not leak in
		"2.1 Commercialization Strategy": 15,
	}
	problem := r.CategoryByName("Problem Recognition")
	if problem == nil {
		t.Fatal("missing Problem Recognition category")
	}
	if got := CategoryScore(scores, *problem); got != 20 {
		t.Errorf("CategoryScore = %v, want 20", got)
	}
}

func TestCategoryScoreMissingSectionsContributeZero(t *testing.T) {
	r := testRubric(t)
	scores := map[string]float64{
		"1.1 Item Development Motivation": 12,
	}
	problem := r.CategoryByName("Problem Recognition")
	if got := CategoryScore(scores, *problem); got != 12 {
		t.Errorf("CategoryScore with missing section = %v, want 12", got)
	}
}

func TestValidateSectionScores(t *testing.T) {
	r := testRubric(t)
	cases := []struct {
		name    string
		scores  map[string]float64
		wantErr bool
	}{
		{"empty", map[string]float64{}, false},
		{"valid", map[string]float64{"1.1 Item Development Motivation": 15}, false},
		{"zero is valid", map[string]float64{"1.1 Item Development Motivation": 0}, false},
		{"unknown section", map[string]float64{"9.9 Nonexistent": 5}, true},
		{"above max", map[string]float64{"1.1 Item Development Motivation": 15.01}, true},
		{"negative", map[string]float64{"1.1 Item Development Motivation": -0.5}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateSectionScores(c.scores, r)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, c.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvariant) {
				t.Errorf("error %v does not wrap ErrInvariant", err)
			}
		})
	}
}

func TestValidateCategoryScores(t *testing.T) {
	r := testRubric(t)
	if err := ValidateCategoryScores(map[string]float64{"Problem Recognition": 30}, r); err != nil {
		t.Errorf("max score rejected: %v", err)
	}
	err := ValidateCategoryScores(map[string]float64{"Problem Recognition": 30.5}, r)
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("out-of-range category score: err = %v, want ErrInvariant", err)
	}
	err = ValidateCategoryScores(map[string]float64{"Mystery": 5}, r)
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("unknown category: err = %v, want ErrInvariant", err)
	}
}

func TestGatingAllPass(t *testing.T) {
	r := testRubric(t)
	cats := CategoryScores(fullMarks(r), r)

	if failed := FailedCategories(cats, r); len(failed) != 0 {
		t.Errorf("FailedCategories = %v, want none", failed)
	}
	if RiskOfRejection(cats, r) {
		t.Error("RiskOfRejection = true for full marks")
	}
	if got := TotalScore(cats, r); got != 100 {
		t.Errorf("TotalScore = %v, want 100", got)
	}
}

func TestGatingSingleFailureFlagsRisk(t *testing.T) {
	r := testRubric(t)
	sections := fullMarks(r)
	// drop Team Composition (min 12) to 11.99
	sections["4.1 Founder and Team Capabilities"] = 11.99
	cats := CategoryScores(sections, r)

	failed := FailedCategories(cats, r)
	if len(failed) != 1 || failed[0] != "Team Composition" {
		t.Fatalf("FailedCategories = %v, want [Team Composition]", failed)
	}
	if !RiskOfRejection(cats, r) {
		t.Error("RiskOfRejection = false despite failed category")
	}
	// High total does not save a gated category.
	if got := TotalScore(cats, r); got != 91.99 {
		t.Errorf("TotalScore = %v, want 91.99", got)
	}
}

func TestGatingExactMinimumPasses(t *testing.T) {
	r := testRubric(t)
	for _, c := range r.Categories {
		if !CategoryPassed(float64(c.MinimumRequired), c) {
			t.Errorf("category %q: exact minimum %d should pass", c.Name, c.MinimumRequired)
		}
		if CategoryPassed(float64(c.MinimumRequired)-0.01, c) {
			t.Errorf("category %q: just below minimum should fail", c.Name)
		}
	}
}

func TestFailedCategoriesFailClosed(t *testing.T) {
	r := testRubric(t)
	// Only one category present; the other three are missing and must fail.
	cats := map[string]float64{"Problem Recognition": 30}
	failed := FailedCategories(cats, r)
	want := []string{"Solution Feasibility", "Growth Strategy", "Team Composition"}
	if len(failed) != len(want) {
		t.Fatalf("FailedCategories = %v, want %v", failed, want)
	}
	for i := range want {
		if failed[i] != want[i] {
			t.Errorf("FailedCategories[%d] = %q, want %q (rubric order)", i, failed[i], want[i])
		}
	}
	if !RiskOfRejection(cats, r) {
		t.Error("RiskOfRejection = false with missing categories")
	}
}

func TestFailedCategoriesRubricOrder(t *testing.T) {
	r := testRubric(t)
	// Fail Team Composition and Problem Recognition; order in output must be
	// declaration order, not map iteration order.
	cats := CategoryScores(fullMarks(r), r)
	cats["Team Composition"] = 0
	cats["Problem Recognition"] = 0
	failed := FailedCategories(cats, r)
	want := []string{"Problem Recognition", "Team Composition"}
	if len(failed) != 2 || failed[0] != want[0] || failed[1] != want[1] {
		t.Errorf("FailedCategories = %v, want %v", failed, want)
	}
}

func TestDegradedSectionLowersCategory(t *testing.T) {
	r := testRubric(t)
	sections := fullMarks(r)
	// One analysis degraded: its score is 0 per the synthesis rules.
	sections["2.2 Market Analysis and Competitiveness"] = 0
	cats := CategoryScores(sections, r)

	if cats["Solution Feasibility"] != 15 {
		t.Errorf("Solution Feasibility = %v, want 15", cats["Solution Feasibility"])
	}
	failed := FailedCategories(cats, r)
	if len(failed) != 1 || failed[0] != "Solution Feasibility" {
		t.Errorf("FailedCategories = %v, want [Solution Feasibility]", failed)
	}
}

func TestTotalScoreRounding(t *testing.T) {
	r := testRubric(t)
	cats := map[string]float64{
		"Problem Recognition":  10.105,
		"Solution Feasibility": 10.101,
		"Growth Strategy":      0,
		"Team Composition":     0,
	}
	if got := TotalScore(cats, r); got != 20.21 {
		t.Errorf("TotalScore = %v, want 20.21", got)
	}
}
