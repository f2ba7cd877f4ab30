// evaluate runs one business plan PDF through the scoring pipeline from the
// command line, persisting to SQLite so no Postgres is needed.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seojun-park/planscore/internal/common"
	"github.com/seojun-park/planscore/internal/entity"
	"github.com/seojun-park/planscore/internal/ingest"
	"github.com/seojun-park/planscore/internal/llm/gemini"
	"github.com/seojun-park/planscore/internal/pipeline"
	repo "github.com/seojun-park/planscore/internal/repository"
	"github.com/seojun-park/planscore/internal/rubric"
	"github.com/seojun-park/planscore/internal/storage"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		file    = flag.String("file", "", "business plan PDF to evaluate (required)")
		title   = flag.String("title", "", "plan title (defaults to the file name)")
		dbPath  = flag.String("db", "", "SQLite database path (defaults to in-memory)")
		out     = flag.String("out", "", "write the report JSON here instead of stdout")
		timeout = flag.Duration("timeout", 5*time.Minute, "overall run budget")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}
	if *title == "" {
		*title = strings.TrimSuffix(filepath.Base(*file), filepath.Ext(*file))
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Gemini.ProjectID == "" {
		printError("Error: GCP_PROJECT env var is required\n")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	r, err := rubric.Load()
	if err != nil {
		printError("Error: load rubric: %v\n", err)
		os.Exit(1)
	}

	path := *dbPath
	if path == "" {
		path = ":memory:"
	}
	entc, err := repo.OpenSQLite(path, logger)
	if err != nil {
		printError("Error: open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Warn("close database", "error", err)
		}
	}()
	if err := entc.Schema.Create(ctx); err != nil {
		printError("Error: create schema: %v\n", err)
		os.Exit(1)
	}

	store := storage.NewLocalStore(logger)
	inspector := ingest.NewInspector(logger)

	data, err := store.FetchDocument(ctx, *file)
	if err != nil {
		printError("Error: read plan: %v\n", err)
		os.Exit(1)
	}
	doc, err := inspector.Inspect(*file, data)
	if err != nil {
		printError("Error: inspect plan: %v\n", err)
		os.Exit(1)
	}
	logger.Info("plan accepted", "file", *file, "pages", doc.PageCount)

	genClient, err := gemini.NewClient(ctx, gemini.Config{
		ProjectID:     cfg.Gemini.ProjectID,
		Region:        cfg.Gemini.Region,
		AnalysisModel: cfg.Gemini.AnalysisModel,
		ReportModel:   cfg.Gemini.ReportModel,
		CallTimeout:   cfg.Gemini.CallTimeout,
	}, logger)
	if err != nil {
		printError("Error: model client: %v\n", err)
		os.Exit(1)
	}
	defer genClient.Close()

	plansRepo := repo.NewPlanRepository(entc, logger)
	jobsRepo := repo.NewJobRepository(entc, logger)
	reportsRepo := repo.NewReportRepository(entc, logger)

	plan, err := plansRepo.Create(ctx, &entity.BusinessPlan{
		OwnerID:     uuid.New(),
		Title:       *title,
		ObjectKey:   *file,
		ContentHash: &doc.SHA256Hex,
		PageCount:   doc.PageCount,
		SizeBytes:   doc.SizeBytes,
	})
	if err != nil {
		printError("Error: register plan: %v\n", err)
		os.Exit(1)
	}

	evaluator := pipeline.NewEvaluator(logger, pipeline.Config{
		FanoutTimeout: cfg.Evaluate.FanoutTimeout,
		MaxConcurrent: cfg.Evaluate.MaxConcurrent,
		ModelName:     cfg.Gemini.AnalysisModel,
	}, r, genClient, store, jobsRepo, reportsRepo)

	res, err := evaluator.Evaluate(ctx, plan.ID, plan.ObjectKey)
	if err != nil {
		if res != nil {
			printError("Error: evaluation failed (%s): %v\n", res.ErrorKind, err)
		} else {
			printError("Error: evaluation failed: %v\n", err)
		}
		os.Exit(1)
	}

	report, err := reportsRepo.GetByID(ctx, *res.ReportID)
	if err != nil {
		printError("Error: load report: %v\n", err)
		os.Exit(1)
	}

	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		printError("Error: encode report: %v\n", err)
		os.Exit(1)
	}
	if *out != "" {
		if err := os.WriteFile(*out, encoded, 0o644); err != nil {
			printError("Error: write %s: %v\n", *out, err)
			os.Exit(1)
		}
		logger.Info("report written", "path", *out, "total_score", report.TotalScore)
	} else {
		fmt.Println(string(encoded))
	}

	fmt.Fprintf(os.Stderr, "total %.2f/100, assessment %s\n", report.TotalScore, report.OverallAssessment)
}
