package llm

import "github.com/seojun-park/planscore/internal/rubric"

// BuildReportJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map for the final report. We use it to validate the model's output
// before anything downstream trusts it.
func BuildReportJSONSchema(r *rubric.Rubric) map[string]any {
	categories := make([]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		categories = append(categories, c.Name)
	}

	subCriterion := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":  map[string]any{"type": "string", "minLength": 1},
			"score": map[string]any{"type": "number", "minimum": 0.0},
		},
		"required": []string{"name", "score"},
	}

	categoryResult := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"category":           map[string]any{"type": "string", "enum": categories},
			"score":              map[string]any{"type": "number", "minimum": 0.0},
			"max_score":          map[string]any{"type": "integer", "minimum": 1},
			"min_score_required": map[string]any{"type": "integer", "minimum": 1},
			"is_passed":          map[string]any{"type": "boolean"},
			"sub_criteria":       map[string]any{"type": "array", "items": subCriterion, "minItems": 1},
			"reasoning":          map[string]any{"type": "string"},
		},
		"required": []string{"category", "score", "max_score", "min_score_required", "is_passed", "sub_criteria"},
	}

	stringList := func(maxItems int) map[string]any {
		return map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string", "minLength": 1},
			"maxItems": maxItems,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title":                   map[string]any{"type": "string"},
			"total_score":             map[string]any{"type": "number", "minimum": 0.0, "maximum": float64(r.TotalMaxScore())},
			"overall_assessment":      map[string]any{"type": "string", "minLength": 1},
			"strengths":               stringList(5),
			"weaknesses":              stringList(8),
			"improvement_suggestions": stringList(5),
			"evaluation_criteria": map[string]any{
				"type":     "array",
				"items":    categoryResult,
				"minItems": len(r.Categories),
				"maxItems": len(r.Categories),
			},
		},
		"required": []string{"total_score", "overall_assessment", "strengths", "weaknesses", "improvement_suggestions", "evaluation_criteria"},
	}
}
