package llm

import (
	"fmt"
	"strings"

	"github.com/seojun-park/planscore/internal/rubric"
)

// BuildSystemPrompt composes the judge persona plus the scoring table so the
// model is told the exact ground truth instead of inventing thresholds.
func BuildSystemPrompt(r *rubric.Rubric) string {
	var b strings.Builder
	b.WriteString("You are a professional judge for a startup-grant contest. Your only task is to evaluate the submitted business plan strictly and objectively against the scoring criteria.\n")
	b.WriteString("- Base every judgment solely on the content of the provided business plan. Never guess or assume missing information.\n")
	b.WriteString("- Be critical. Give a clear justification for every score.\n")
	b.WriteString("- Avoid emotional or vague wording; state strengths, weaknesses, and improvements in a firm tone.\n")
	b.WriteString("The scoring criteria are:\n")
	for _, c := range r.Categories {
		b.WriteString(c.Name)
		b.WriteString("\n")
		for _, name := range c.Sections {
			s := r.SectionByName(name)
			fmt.Fprintf(&b, "%s: %d points\n", s.Name, s.MaxScore)
		}
		fmt.Fprintf(&b, "Subtotal: %d points, minimum required: %d points\n", c.MaxScore, c.MinimumRequired)
	}
	return b.String()
}

// BuildSectionPrompt builds the prompt for one rubric section. Per pillar the
// model must produce an analysis, a score, and a justification, which keeps
// scoring traceable instead of an opaque single number.
func BuildSectionPrompt(s *rubric.Section) string {
	var desc, format strings.Builder
	for _, p := range s.Pillars {
		fmt.Fprintf(&desc, "- **%s (%d points):** %s\n  **[Review points]**\n", p.Name, p.Weight, p.Description)
		for _, q := range p.Questions {
			fmt.Fprintf(&desc, "  - %s\n", q)
		}
		fmt.Fprintf(&format,
			"- **%s:**\n  - **Analysis:** [summarize the relevant plan content here]\n  - **Score:** [score per rubric] / %d points\n  - **Justification:** [concrete reason for the score]\n",
			p.Name, p.Weight)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Evaluation item:** %s\n**Maximum score:** %d points\n\n", s.Name, s.MaxScore)
	b.WriteString("**Instruction:** For each pillar below, analyze the business plan content and assign a score per the rubric. Be firm and unambiguous.\n\n")
	b.WriteString("**[Evaluation pillars]**\n")
	b.WriteString(desc.String())
	b.WriteString("\n**[Scoring rubric]**\n")
	b.WriteString("- **Excellent (100%):** every requirement met with concrete evidence and data.\n")
	b.WriteString("- **Fair (70%):** core content present but abstract or weakly supported.\n")
	b.WriteString("- **Poor (30%):** little content, or content unrelated to the questions.\n")
	b.WriteString("- **None (0%):** no relevant content found.\n\n")
	b.WriteString("---\n**[Analysis and scoring]**\n\n**1. Per-pillar analysis and scores:**\n")
	b.WriteString(format.String())
	fmt.Fprintf(&b, "\n**2. Final score and summary:**\n- **Final score:** [computed total] / %d\n- **Strength:** [the single key strength of this item]\n- **Weakness and needed improvement:** [the 1-2 most urgent improvements]\n", s.MaxScore)
	return b.String()
}

// BuildReportPrompt embeds every section analysis with its rubric metadata so
// the aggregation call rolls up against known thresholds. Failed sections are
// passed through as-is; the prompt tells the model to score them zero.
func BuildReportPrompt(results []SectionAnalysis, r *rubric.Rubric) string {
	var items strings.Builder
	for _, res := range results {
		s := r.SectionByName(res.SectionName)
		if s == nil {
			continue
		}
		c := r.CategoryByName(s.Category)
		fmt.Fprintf(&items,
			"<item>\n<metadata>\n  section_name: %s\n  main_category: %s\n  category_max_score: %d\n  category_min_score: %d\n</metadata>\n<analysis>\n%s\n</analysis>\n</item>\n\n",
			s.Name, c.Name, c.MaxScore, c.MinimumRequired, res.AnalysisText)
	}

	var b strings.Builder
	b.WriteString("You are a system that produces the final evaluation report.\n")
	b.WriteString("Combine the per-item analyses and metadata below into a final report, emitted as strictly valid JSON. Output nothing besides the JSON object.\n\n")
	b.WriteString("---\n[Per-item analysis data]\n")
	b.WriteString(items.String())
	b.WriteString("---\n\n[JSON output rules]\n")
	b.WriteString("- `total_score`: the sum of every sub-item score.\n")
	b.WriteString("- `overall_assessment`: \"PASS_LIKELY\" if every main category meets its minimum required score, otherwise \"REJECTION_RISK\".\n")
	b.WriteString("- `strengths`: the 2-3 most important recurring strengths.\n")
	b.WriteString("- `weaknesses`: the 3-5 most decisive weaknesses.\n")
	b.WriteString("- `improvement_suggestions`: the 3 most concrete, actionable fixes for the identified weaknesses.\n")
	fmt.Fprintf(&b, "- `evaluation_criteria`: exactly %d entries, one per main category.\n", len(r.Categories))
	b.WriteString("    - `category`: the `main_category` value from the metadata.\n")
	b.WriteString("    - `score`: the sum of the scores of the sub-items in that category.\n")
	b.WriteString("    - `max_score`, `min_score_required`: copied verbatim from the metadata. Never inferred.\n")
	b.WriteString("    - `is_passed`: whether `score` >= `min_score_required`, as a boolean.\n")
	b.WriteString("    - `sub_criteria`: one object per sub-item with its name and score. Score a failed analysis as 0.\n")
	b.WriteString("    - `reasoning`: the decisive reasons for the category score, covering both strengths and weaknesses.\n\n")
	b.WriteString("[Begin JSON output]\n")
	return b.String()
}
