package llm

import "context"

// GenerateRequest describes one model round trip. Document, when set, is
// attached inline (the evaluator passes the plan PDF fetched from storage).
type GenerateRequest struct {
	System   string
	Prompt   string
	Document []byte
	MIMEType string
	// JSONOutput constrains the model to emit a bare JSON document.
	JSONOutput bool
}

// Generator is the generative-model collaborator the pipeline depends on.
// Empty output text is treated by callers the same as an error.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// SectionAnalysis is the transient per-section result flowing from the
// section analyzer to the report synthesizer. It is never persisted.
type SectionAnalysis struct {
	SectionName  string
	AnalysisText string
	// Failed flags a degraded result: the model call errored or returned
	// nothing usable within its budget. Downstream treats the section as
	// zero-contribution evidence instead of aborting the run.
	Failed bool
}
