package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/seojun-park/planscore/internal/llm"
	"github.com/seojun-park/planscore/internal/rubric"
)

// SectionAnalyzer runs one model call for one rubric section. Failures
// degrade into a flagged result instead of propagating, so one bad section
// never aborts the fan-out.
type SectionAnalyzer struct {
	Logger    *slog.Logger
	Generator llm.Generator
	System    string
	// CallTimeout bounds a single section call. It must be shorter than the
	// evaluator's fan-out budget so one slow section degrades instead of
	// exhausting the run.
	CallTimeout time.Duration
}

func NewSectionAnalyzer(logger *slog.Logger, gen llm.Generator, r *rubric.Rubric, callTimeout time.Duration) *SectionAnalyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if callTimeout <= 0 {
		callTimeout = 60 * time.Second
	}
	return &SectionAnalyzer{
		Logger:      logger,
		Generator:   gen,
		System:      llm.BuildSystemPrompt(r),
		CallTimeout: callTimeout,
	}
}

// Analyze evaluates one section of the document. The returned result always
// carries the section name; Failed=true with placeholder text means the
// model call errored or produced nothing usable.
func (a *SectionAnalyzer) Analyze(ctx context.Context, document []byte, s *rubric.Section) llm.SectionAnalysis {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, a.CallTimeout)
	defer cancel()

	text, err := a.Generator.Generate(ctx, llm.GenerateRequest{
		System:   a.System,
		Prompt:   llm.BuildSectionPrompt(s),
		Document: document,
		MIMEType: "application/pdf",
	})
	if err != nil || strings.TrimSpace(text) == "" {
		a.Logger.Warn("analyze.section.degraded",
			"section", s.Name,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.SectionAnalysis{
			SectionName:  s.Name,
			AnalysisText: fmt.Sprintf("### Analyzed section: %s\n\n[ANALYSIS FAILED]\n\n---", s.Name),
			Failed:       true,
		}
	}

	a.Logger.Info("analyze.section.ok",
		"section", s.Name,
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return llm.SectionAnalysis{SectionName: s.Name, AnalysisText: text}
}
