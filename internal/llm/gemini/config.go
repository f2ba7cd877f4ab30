package gemini

import (
	"log/slog"
	"os"
	"time"
)

// Config for the Vertex AI Gemini client.
type Config struct {
	ProjectID     string        // if empty, falls back to env GCP_PROJECT
	Region        string        // default us-central1
	AnalysisModel string        // free-text section analysis, e.g. "gemini-2.5-flash"
	ReportModel   string        // JSON-constrained synthesis call
	CallTimeout   time.Duration // per-call budget, nested inside the fan-out budget
}

func (c *Config) applyDefaults(logger *slog.Logger) *slog.Logger {
	if c.ProjectID == "" {
		c.ProjectID = os.Getenv("GCP_PROJECT")
	}
	if c.Region == "" {
		c.Region = "us-central1"
	}
	if c.AnalysisModel == "" {
		c.AnalysisModel = "gemini-2.5-flash"
	}
	if c.ReportModel == "" {
		c.ReportModel = c.AnalysisModel
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return logger
}
