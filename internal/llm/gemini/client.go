package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/vertexai/genai"
	"github.com/google/uuid"

	"github.com/seojun-park/planscore/internal/llm"
)

// Client implements llm.Generator over Vertex AI. It holds two
// pre-configured generative models: one for free-text section analysis and
// one forced to application/json for the synthesis call.
type Client struct {
	cfg           Config
	base          *genai.Client
	analysisModel *genai.GenerativeModel
	reportModel   *genai.GenerativeModel
	log           *slog.Logger
}

var _ llm.Generator = (*Client)(nil)

// NewClient dials Vertex AI and configures both models. Temperature is
// pinned to zero on both: evaluation scoring should be as repeatable as the
// model allows.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	logger = cfg.applyDefaults(logger)
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("gemini: project id is required")
	}

	base, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	analysis := base.GenerativeModel(cfg.AnalysisModel)
	analysis.GenerationConfig = genai.GenerationConfig{
		Temperature: genai.Ptr[float32](0.0),
	}

	report := base.GenerativeModel(cfg.ReportModel)
	report.GenerationConfig = genai.GenerationConfig{
		Temperature:      genai.Ptr[float32](0.0),
		ResponseMIMEType: "application/json",
	}

	return &Client{
		cfg:           cfg,
		base:          base,
		analysisModel: analysis,
		reportModel:   report,
		log:           logger,
	}, nil
}

func (c *Client) Close() error {
	if c.base != nil {
		return c.base.Close()
	}
	return nil
}

// Generate performs one model round trip. An empty response is reported as
// an error; callers do not distinguish the two cases.
func (c *Client) Generate(ctx context.Context, req llm.GenerateRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	model := c.analysisModel
	modelName := c.cfg.AnalysisModel
	if req.JSONOutput {
		model = c.reportModel
		modelName = c.cfg.ReportModel
	}

	c.log.Info("llm.generate.start",
		"req_id", rid,
		"model", modelName,
		"json_output", req.JSONOutput,
		"prompt_len", len(req.Prompt),
		"document_bytes", len(req.Document),
	)

	// Shallow copy so a per-request system instruction never races another
	// call on the shared model.
	m := *model
	if req.System != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	var parts []genai.Part
	if len(req.Document) > 0 {
		mimeType := req.MIMEType
		if mimeType == "" {
			mimeType = "application/pdf"
		}
		parts = append(parts, genai.Blob{MIMEType: mimeType, Data: req.Document})
	}
	parts = append(parts, genai.Text(req.Prompt))

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		c.log.Error("llm.generate.error",
			"req_id", rid, "model", modelName, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		c.log.Error("llm.generate.empty",
			"req_id", rid, "model", modelName,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("model returned no text")
	}

	c.log.Info("llm.generate.ok",
		"req_id", rid,
		"model", modelName,
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return b.String()
}
