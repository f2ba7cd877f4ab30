// Package scoring is the deterministic aggregation and gating engine.
// No I/O, no model calls: given per-section scores and a rubric it rolls
// scores up into categories and decides rejection risk. Its results are
// authoritative over anything the model claims about itself.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/seojun-park/planscore/internal/rubric"
)

// ErrInvariant marks scores that violate rubric bounds or reference unknown
// structure. These should be impossible after schema validation, so callers
// treat them as data-integrity bugs, not user errors.
var ErrInvariant = errors.New("aggregation invariant violation")

// Round2 rounds to two fractional digits, the precision of every persisted
// score.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidateSectionScores rejects scores outside [0, section.max_score] and
// scores for sections the rubric does not define. Missing sections are fine;
// they contribute zero downstream.
func ValidateSectionScores(sectionScores map[string]float64, r *rubric.Rubric) error {
	for name, score := range sectionScores {
		s := r.SectionByName(name)
		if s == nil {
			return fmt.Errorf("%w: unknown section %q", ErrInvariant, name)
		}
		if score < 0 || score > float64(s.MaxScore) {
			return fmt.Errorf("%w: section %q score %.2f outside [0, %d]", ErrInvariant, name, score, s.MaxScore)
		}
	}
	return nil
}

// ValidateCategoryScores rejects scores outside [0, category.max_score] and
// unknown category names.
func ValidateCategoryScores(categoryScores map[string]float64, r *rubric.Rubric) error {
	for name, score := range categoryScores {
		c := r.CategoryByName(name)
		if c == nil {
			return fmt.Errorf("%w: unknown category %q", ErrInvariant, name)
		}
		if score < 0 || score > float64(c.MaxScore) {
			return fmt.Errorf("%w: category %q score %.2f outside [0, %d]", ErrInvariant, name, score, c.MaxScore)
		}
	}
	return nil
}

// CategoryScore sums the scores of exactly the sections the category lists.
// A section absent from the map contributes 0; degraded input is valid input.
func CategoryScore(sectionScores map[string]float64, c rubric.Category) float64 {
	total := 0.0
	for _, name := range c.Sections {
		total += sectionScores[name]
	}
	return Round2(total)
}

// CategoryScores rolls section scores up for every category in the rubric.
func CategoryScores(sectionScores map[string]float64, r *rubric.Rubric) map[string]float64 {
	out := make(map[string]float64, len(r.Categories))
	for _, c := range r.Categories {
		out[c.Name] = CategoryScore(sectionScores, c)
	}
	return out
}

// CategoryPassed reports whether a score clears the category's minimum gate.
func CategoryPassed(score float64, c rubric.Category) bool {
	return score >= float64(c.MinimumRequired)
}

// FailedCategories returns the names of failing categories in rubric
// declaration order. A category absent from the map fails: missing data must
// not mask a rejection risk.
func FailedCategories(categoryScores map[string]float64, r *rubric.Rubric) []string {
	failed := make([]string, 0)
	for _, c := range r.Categories {
		score, ok := categoryScores[c.Name]
		if !ok || !CategoryPassed(score, c) {
			failed = append(failed, c.Name)
		}
	}
	return failed
}

// RiskOfRejection is true when any category fails its gate.
func RiskOfRejection(categoryScores map[string]float64, r *rubric.Rubric) bool {
	return len(FailedCategories(categoryScores, r)) > 0
}

// TotalScore sums the scores of the rubric's categories. Categories absent
// from the map contribute 0.
func TotalScore(categoryScores map[string]float64, r *rubric.Rubric) float64 {
	total := 0.0
	for _, c := range r.Categories {
		total += categoryScores[c.Name]
	}
	return Round2(total)
}
