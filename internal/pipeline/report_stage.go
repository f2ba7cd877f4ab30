package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/seojun-park/planscore/internal/llm"
	"github.com/seojun-park/planscore/internal/rubric"
)

// ReportSynthesizer makes the single aggregation call that folds every
// section analysis into one JSON report. Unlike section analysis this does
// not degrade: a missing or malformed final report is fatal to the run.
type ReportSynthesizer struct {
	Logger    *slog.Logger
	Generator llm.Generator
}

func NewReportSynthesizer(logger *slog.Logger, gen llm.Generator) *ReportSynthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportSynthesizer{Logger: logger, Generator: gen}
}

// Synthesize returns the raw report text. Failed section results are passed
// through; the prompt instructs the model to score them zero.
func (s *ReportSynthesizer) Synthesize(ctx context.Context, results []llm.SectionAnalysis, r *rubric.Rubric) (string, error) {
	start := time.Now()
	failed := 0
	for _, res := range results {
		if res.Failed {
			failed++
		}
	}
	s.Logger.Info("synthesize.start", "sections", len(results), "degraded", failed)

	raw, err := s.Generator.Generate(ctx, llm.GenerateRequest{
		System:     "You are a system that generates JSON reports based on provided text.",
		Prompt:     llm.BuildReportPrompt(results, r),
		JSONOutput: true,
	})
	if err != nil {
		s.Logger.Error("synthesize.error", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("%w: %v", ErrReportSynthesis, err)
	}

	s.Logger.Info("synthesize.ok", "raw_len", len(raw), "elapsed_ms", time.Since(start).Milliseconds())
	return raw, nil
}
