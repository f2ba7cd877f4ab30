package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/seojun-park/planscore/constants"
	"github.com/seojun-park/planscore/internal/common"
	"github.com/seojun-park/planscore/internal/entity"
	"github.com/seojun-park/planscore/internal/llm"
	"github.com/seojun-park/planscore/internal/rubric"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRubric(t *testing.T) *rubric.Rubric {
	t.Helper()
	r, err := rubric.Load()
	if err != nil {
		t.Fatalf("load rubric: %v", err)
	}
	return r
}

type fakeDocs struct {
	fetch func(ctx context.Context, key string) ([]byte, error)
}

func (d *fakeDocs) FetchDocument(ctx context.Context, key string) ([]byte, error) {
	return d.fetch(ctx, key)
}

// fakeJobs records every state transition in order.
type fakeJobs struct {
	mu          sync.Mutex
	transitions []string
	failedKind  ErrorKind
	failedMsg   string
	sections    int
	createErr   error
}

func (j *fakeJobs) Create(ctx context.Context, planID uuid.UUID, modelName string) (*entity.EvaluationJob, error) {
	if j.createErr != nil {
		return nil, j.createErr
	}
	j.record("create")
	return &entity.EvaluationJob{
		ID:        uuid.New(),
		PlanID:    planID,
		Status:    constants.JobStatusPending,
		ModelName: modelName,
		StartedAt: time.Now().UTC(),
	}, nil
}

func (j *fakeJobs) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	j.record("running")
	return nil
}

func (j *fakeJobs) MarkCompleted(ctx context.Context, jobID uuid.UUID, sectionsAnalyzed int) error {
	j.mu.Lock()
	j.sections = sectionsAnalyzed
	j.mu.Unlock()
	j.record("completed")
	return nil
}

func (j *fakeJobs) MarkFailed(ctx context.Context, jobID uuid.UUID, kind ErrorKind, message string) error {
	j.mu.Lock()
	j.failedKind = kind
	j.failedMsg = message
	j.mu.Unlock()
	j.record("failed")
	return nil
}

func (j *fakeJobs) record(s string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.transitions = append(j.transitions, s)
}

func (j *fakeJobs) path() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return strings.Join(j.transitions, ">")
}

type fakeReports struct {
	mu    sync.Mutex
	saved *entity.EvaluationReport
	err   error
}

func (r *fakeReports) Save(ctx context.Context, report *entity.EvaluationReport) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.Nil, r.err
	}
	r.mu.Lock()
	r.saved = report
	r.mu.Unlock()
	return uuid.New(), nil
}

// fakeGenerator routes section calls and the synthesis call (JSONOutput)
// to separate hooks and counts both.
type fakeGenerator struct {
	mu           sync.Mutex
	sectionCalls int
	reportCalls  int
	section      func(ctx context.Context, req llm.GenerateRequest) (string, error)
	report       func(ctx context.Context, req llm.GenerateRequest) (string, error)
}

func (g *fakeGenerator) Generate(ctx context.Context, req llm.GenerateRequest) (string, error) {
	g.mu.Lock()
	if req.JSONOutput {
		g.reportCalls++
	} else {
		g.sectionCalls++
	}
	g.mu.Unlock()
	if req.JSONOutput {
		return g.report(ctx, req)
	}
	if g.section != nil {
		return g.section(ctx, req)
	}
	return "### Analysis\nconcrete evidence found.", nil
}

func (g *fakeGenerator) calls() (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sectionCalls, g.reportCalls
}

// reportJSON renders a schema-valid synthesis payload whose sub-criteria
// carry the given section scores (missing sections default to full marks).
func reportJSON(t *testing.T, r *rubric.Rubric, scores map[string]float64) string {
	t.Helper()
	total := 0.0
	criteria := make([]map[string]any, 0, len(r.Categories))
	for _, c := range r.Categories {
		sum := 0.0
		subs := make([]map[string]any, 0, len(c.Sections))
		for _, name := range c.Sections {
			s := r.SectionByName(name)
			score := float64(s.MaxScore)
			if v, ok := scores[name]; ok {
				score = v
			}
			sum += score
			subs = append(subs, map[string]any{"name": s.Name, "score": score})
		}
		total += sum
		criteria = append(criteria, map[string]any{
			"category":           c.Name,
			"score":              sum,
			"max_score":          c.MaxScore,
			"min_score_required": c.MinimumRequired,
			"is_passed":          sum >= float64(c.MinimumRequired),
			"sub_criteria":       subs,
			"reasoning":          "per-pillar evidence",
		})
	}
	assessment := "PASS_LIKELY"
	for _, c := range criteria {
		if !c["is_passed"].(bool) {
			assessment = "REJECTION_RISK"
		}
	}
	b, err := json.Marshal(map[string]any{
		"total_score":             total,
		"overall_assessment":      assessment,
		"strengths":               []string{"clear market framing"},
		"weaknesses":              []string{"no revenue model detail"},
		"improvement_suggestions": []string{"quantify the go-to-market plan"},
		"evaluation_criteria":     criteria,
	})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(b)
}

func newTestEvaluator(t *testing.T, gen llm.Generator, docs DocumentStore, jobs JobStore, reports ReportStore) *Evaluator {
	t.Helper()
	return NewEvaluator(
		testLogger(),
		Config{FanoutTimeout: 5 * time.Second, MaxConcurrent: 4, ModelName: "test-model"},
		testRubric(t),
		gen,
		docs,
		jobs,
		reports,
	)
}

func okDocs() *fakeDocs {
	return &fakeDocs{fetch: func(ctx context.Context, key string) ([]byte, error) {
		return []byte("%PDF-1.7 test"), nil
	}}
}

func TestEvaluateHappyPath(t *testing.T) {
	r := testRubric(t)
	gen := &fakeGenerator{report: func(ctx context.Context, req llm.GenerateRequest) (string, error) {
		return reportJSON(t, r, nil), nil
	}}
	jobs := &fakeJobs{}
	reports := &fakeReports{}
	e := newTestEvaluator(t, gen, okDocs(), jobs, reports)

	res, err := e.Evaluate(context.Background(), uuid.New(), "plans/x/doc.pdf")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Status != constants.JobStatusCompleted {
		t.Errorf("status = %s, want COMPLETED", res.Status)
	}
	if res.ReportID == nil || *res.ReportID == uuid.Nil {
		t.Error("completed run must carry a report id")
	}
	if got := jobs.path(); got != "create>running>completed" {
		t.Errorf("job transitions = %q", got)
	}
	if jobs.sections != len(r.Sections) {
		t.Errorf("sections_analyzed = %d, want %d", jobs.sections, len(r.Sections))
	}
	sc, rc := gen.calls()
	if sc != len(r.Sections) || rc != 1 {
		t.Errorf("model calls = (%d section, %d report), want (%d, 1)", sc, rc, len(r.Sections))
	}
	if reports.saved == nil {
		t.Fatal("report not persisted")
	}
	if reports.saved.TotalScore != 100 {
		t.Errorf("recomputed total = %v, want 100", reports.saved.TotalScore)
	}
	if reports.saved.RiskOfRejection || len(reports.saved.FailedCategories) != 0 {
		t.Errorf("full marks flagged risk: %v %v", reports.saved.RiskOfRejection, reports.saved.FailedCategories)
	}
}

func TestEvaluateDocumentMissing(t *testing.T) {
	gen := &fakeGenerator{report: func(ctx context.Context, req llm.GenerateRequest) (string, error) {
		return "", errors.New("unexpected model call")
	}}
	docs := &fakeDocs{fetch: func(ctx context.Context, key string) ([]byte, error) {
		return nil, fmt.Errorf("object %q: %w", key, common.ErrNotFound)
	}}
	jobs := &fakeJobs{}
	reports := &fakeReports{}
	e := newTestEvaluator(t, gen, docs, jobs, reports)

	res, err := e.Evaluate(context.Background(), uuid.New(), "plans/x/missing.pdf")
	if err == nil {
		t.Fatal("expected error for missing document")
	}
	if res.Status != constants.JobStatusFailed || res.ErrorKind != KindDocumentNotFound {
		t.Errorf("res = %s/%s, want FAILED/DOCUMENT_NOT_FOUND", res.Status, res.ErrorKind)
	}
	if got := jobs.path(); got != "create>failed" {
		t.Errorf("job transitions = %q, missing document must fail before RUNNING", got)
	}
	if sc, rc := gen.calls(); sc != 0 || rc != 0 {
		t.Errorf("model was called (%d, %d) for a missing document", sc, rc)
	}
	if reports.saved != nil {
		t.Error("failed run persisted a report")
	}
}

func TestEvaluateEmptyDocumentIsNotFound(t *testing.T) {
	docs := &fakeDocs{fetch: func(ctx context.Context, key string) ([]byte, error) {
		return []byte{}, nil
	}}
	jobs := &fakeJobs{}
	e := newTestEvaluator(t, &fakeGenerator{}, docs, jobs, &fakeReports{})

	res, err := e.Evaluate(context.Background(), uuid.New(), "plans/x/empty.pdf")
	if err == nil {
		t.Fatal("expected error for empty object")
	}
	if res.ErrorKind != KindDocumentNotFound {
		t.Errorf("kind = %s, want DOCUMENT_NOT_FOUND", res.ErrorKind)
	}
}

func TestEvaluateDegradedSectionStillCompletes(t *testing.T) {
	r := testRubric(t)
	const broken = "4.1 Founder and Team Capabilities"

	gen := &fakeGenerator{
		section: func(ctx context.Context, req llm.GenerateRequest) (string, error) {
			if strings.Contains(req.Prompt, broken) {
				return "", errors.New("model overloaded")
			}
			return "solid analysis", nil
		},
		report: func(ctx context.Context, req llm.GenerateRequest) (string, error) {
			if !strings.Contains(req.Prompt, "[ANALYSIS FAILED]") {
				return "", errors.New("degraded section not passed through to synthesis")
			}
			return reportJSON(t, r, map[string]float64{broken: 0}), nil
		},
	}
	jobs := &fakeJobs{}
	reports := &fakeReports{}
	e := newTestEvaluator(t, gen, okDocs(), jobs, reports)

	res, err := e.Evaluate(context.Background(), uuid.New(), "plans/x/doc.pdf")
	if err != nil {
		t.Fatalf("degraded section aborted the run: %v", err)
	}
	if res.Status != constants.JobStatusCompleted {
		t.Errorf("status = %s, want COMPLETED", res.Status)
	}
	if reports.saved == nil {
		t.Fatal("report not persisted")
	}
	if got := reports.saved.SectionScores[broken]; got != 0 {
		t.Errorf("degraded section score = %v, want 0", got)
	}
	// zeroing 4.1 drops Team Composition below its minimum
	out, ok := reports.saved.CategoryResults["Team Composition"]
	if !ok || out.Passed {
		t.Errorf("Team Composition outcome = %+v, want failed", out)
	}
	if !reports.saved.RiskOfRejection {
		t.Error("failed category did not flag rejection risk")
	}
}

func TestEvaluateSynthesisError(t *testing.T) {
	gen := &fakeGenerator{report: func(ctx context.Context, req llm.GenerateRequest) (string, error) {
		return "", errors.New("model unavailable")
	}}
	jobs := &fakeJobs{}
	reports := &fakeReports{}
	e := newTestEvaluator(t, gen, okDocs(), jobs, reports)

	res, err := e.Evaluate(context.Background(), uuid.New(), "plans/x/doc.pdf")
	if err == nil {
		t.Fatal("expected synthesis error")
	}
	if res.ErrorKind != KindReportSynthesis {
		t.Errorf("kind = %s, want REPORT_SYNTHESIS_ERROR", res.ErrorKind)
	}
	if got := jobs.path(); got != "create>running>failed" {
		t.Errorf("job transitions = %q", got)
	}
	if reports.saved != nil {
		t.Error("failed synthesis persisted a report")
	}
}

func TestEvaluateMalformedReportIsSynthesisError(t *testing.T) {
	gen := &fakeGenerator{report: func(ctx context.Context, req llm.GenerateRequest) (string, error) {
		return "the plan is quite good overall", nil
	}}
	jobs := &fakeJobs{}
	reports := &fakeReports{}
	e := newTestEvaluator(t, gen, okDocs(), jobs, reports)

	res, err := e.Evaluate(context.Background(), uuid.New(), "plans/x/doc.pdf")
	if err == nil {
		t.Fatal("expected error for non-JSON report")
	}
	if res.ErrorKind != KindReportSynthesis {
		t.Errorf("kind = %s, want REPORT_SYNTHESIS_ERROR", res.ErrorKind)
	}
	if reports.saved != nil {
		t.Error("malformed report was persisted")
	}
}

func TestEvaluateInvariantViolation(t *testing.T) {
	r := testRubric(t)
	gen := &fakeGenerator{report: func(ctx context.Context, req llm.GenerateRequest) (string, error) {
		// a sub-score above the section maximum passes the JSON schema (it
		// only bounds total_score) but must trip the aggregation invariant
		var m map[string]any
		if err := json.Unmarshal([]byte(reportJSON(t, r, map[string]float64{"1.1 Item Development Motivation": 999})), &m); err != nil {
			return "", err
		}
		m["total_score"] = 100.0
		b, err := json.Marshal(m)
		return string(b), err
	}}
	jobs := &fakeJobs{}
	reports := &fakeReports{}
	e := newTestEvaluator(t, gen, okDocs(), jobs, reports)

	res, err := e.Evaluate(context.Background(), uuid.New(), "plans/x/doc.pdf")
	if err == nil {
		t.Fatal("expected invariant violation")
	}
	if res.ErrorKind != KindAggregationInvariant {
		t.Errorf("kind = %s, want AGGREGATION_INVARIANT_VIOLATION", res.ErrorKind)
	}
	if jobs.failedKind != KindAggregationInvariant {
		t.Errorf("persisted kind = %s", jobs.failedKind)
	}
	if reports.saved != nil {
		t.Error("invalid report was persisted")
	}
}

func TestEvaluateFanoutTimeout(t *testing.T) {
	gen := &fakeGenerator{
		section: func(ctx context.Context, req llm.GenerateRequest) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
		report: func(ctx context.Context, req llm.GenerateRequest) (string, error) {
			return "", errors.New("synthesis must not run after timeout")
		},
	}
	jobs := &fakeJobs{}
	reports := &fakeReports{}
	e := NewEvaluator(
		testLogger(),
		Config{FanoutTimeout: 50 * time.Millisecond, MaxConcurrent: 1, ModelName: "test-model"},
		testRubric(t),
		gen,
		okDocs(),
		jobs,
		reports,
	)

	res, err := e.Evaluate(context.Background(), uuid.New(), "plans/x/doc.pdf")
	if err == nil {
		t.Fatal("expected fan-out timeout")
	}
	if res.ErrorKind != KindFanoutTimeout {
		t.Errorf("kind = %s, want FANOUT_TIMEOUT", res.ErrorKind)
	}
	if _, rc := gen.calls(); rc != 0 {
		t.Error("synthesis ran after the fan-out expired")
	}
	if reports.saved != nil {
		t.Error("partial results were persisted")
	}
}

func TestEvaluateCallerCancellation(t *testing.T) {
	gen := &fakeGenerator{
		section: func(ctx context.Context, req llm.GenerateRequest) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
		report: func(ctx context.Context, req llm.GenerateRequest) (string, error) {
			return "", errors.New("synthesis must not run after cancellation")
		},
	}
	jobs := &fakeJobs{}
	reports := &fakeReports{}
	e := newTestEvaluator(t, gen, okDocs(), jobs, reports)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	res, err := e.Evaluate(ctx, uuid.New(), "plans/x/doc.pdf")
	if err == nil {
		t.Fatal("expected error for cancelled run")
	}
	if res.ErrorKind != KindCanceled {
		t.Errorf("kind = %s, want RUN_CANCELLED", res.ErrorKind)
	}
	if jobs.failedKind != KindCanceled {
		t.Errorf("persisted kind = %s", jobs.failedKind)
	}
	if reports.saved != nil {
		t.Error("cancelled run persisted a report")
	}
}

func TestEvaluateRecomputedGatingWins(t *testing.T) {
	r := testRubric(t)
	const teamSection = "4.1 Founder and Team Capabilities"

	gen := &fakeGenerator{report: func(ctx context.Context, req llm.GenerateRequest) (string, error) {
		// the model claims a pass while its own sub-scores fail the category
		var m map[string]any
		if err := json.Unmarshal([]byte(reportJSON(t, r, map[string]float64{teamSection: 5})), &m); err != nil {
			return "", err
		}
		m["overall_assessment"] = "PASS_LIKELY"
		m["total_score"] = 100.0
		for _, c := range m["evaluation_criteria"].([]any) {
			c.(map[string]any)["is_passed"] = true
		}
		b, err := json.Marshal(m)
		return string(b), err
	}}
	jobs := &fakeJobs{}
	reports := &fakeReports{}
	e := newTestEvaluator(t, gen, okDocs(), jobs, reports)

	if _, err := e.Evaluate(context.Background(), uuid.New(), "plans/x/doc.pdf"); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	saved := reports.saved
	if saved == nil {
		t.Fatal("report not persisted")
	}
	if saved.OverallAssessment != constants.AssessmentRejectionRisk {
		t.Errorf("assessment = %s, model claim overrode the recomputation", saved.OverallAssessment)
	}
	if !saved.RiskOfRejection {
		t.Error("risk_of_rejection = false despite a failed category")
	}
	if len(saved.FailedCategories) != 1 || saved.FailedCategories[0] != "Team Composition" {
		t.Errorf("failed categories = %v, want [Team Composition]", saved.FailedCategories)
	}
	if saved.TotalScore == 100 {
		t.Error("total score kept the model's inflated claim")
	}
}

func TestEvaluatePersistenceFailure(t *testing.T) {
	r := testRubric(t)
	gen := &fakeGenerator{report: func(ctx context.Context, req llm.GenerateRequest) (string, error) {
		return reportJSON(t, r, nil), nil
	}}
	jobs := &fakeJobs{}
	reports := &fakeReports{err: errors.New("connection reset")}
	e := newTestEvaluator(t, gen, okDocs(), jobs, reports)

	res, err := e.Evaluate(context.Background(), uuid.New(), "plans/x/doc.pdf")
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if res.ErrorKind != KindPersistence {
		t.Errorf("kind = %s, want PERSISTENCE_FAILURE", res.ErrorKind)
	}
	if got := jobs.path(); got != "create>running>failed" {
		t.Errorf("job transitions = %q", got)
	}
}

func TestEvaluateEachRunCreatesFreshJob(t *testing.T) {
	r := testRubric(t)
	gen := &fakeGenerator{report: func(ctx context.Context, req llm.GenerateRequest) (string, error) {
		return reportJSON(t, r, nil), nil
	}}
	jobs := &fakeJobs{}
	reports := &fakeReports{}
	e := newTestEvaluator(t, gen, okDocs(), jobs, reports)

	planID := uuid.New()
	first, err := e.Evaluate(context.Background(), planID, "plans/x/doc.pdf")
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := e.Evaluate(context.Background(), planID, "plans/x/doc.pdf")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first.JobID == second.JobID {
		t.Error("re-evaluation reused a job id")
	}
	if *first.ReportID == *second.ReportID {
		t.Error("re-evaluation reused a report id")
	}
	if got := jobs.path(); got != "create>running>completed>create>running>completed" {
		t.Errorf("job transitions = %q", got)
	}
}
