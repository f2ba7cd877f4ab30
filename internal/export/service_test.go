package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/seojun-park/planscore/constants"
	"github.com/seojun-park/planscore/internal/entity"
	"github.com/seojun-park/planscore/internal/rubric"
)

type fakeReports struct {
	reports []*entity.EvaluationReport
	err     error
}

func (f *fakeReports) ListByPlan(ctx context.Context, planID uuid.UUID) ([]*entity.EvaluationReport, error) {
	return f.reports, f.err
}

func (f *fakeReports) Save(ctx context.Context, report *entity.EvaluationReport) (uuid.UUID, error) {
	return uuid.Nil, nil
}
func (f *fakeReports) GetByID(ctx context.Context, id uuid.UUID) (*entity.EvaluationReport, error) {
	return nil, nil
}
func (f *fakeReports) GetByJobID(ctx context.Context, jobID uuid.UUID) (*entity.EvaluationReport, error) {
	return nil, nil
}
func (f *fakeReports) LatestByPlan(ctx context.Context, planID uuid.UUID) (*entity.EvaluationReport, error) {
	return nil, nil
}
func (f *fakeReports) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func testService(t *testing.T, reports []*entity.EvaluationReport) *Service {
	t.Helper()
	r, err := rubric.Load()
	if err != nil {
		t.Fatalf("load rubric: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(&fakeReports{reports: reports}, r, logger)
}

func TestExportEvaluationsXLSX(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	reports := []*entity.EvaluationReport{
		{
			TotalScore:        91.5,
			OverallAssessment: constants.AssessmentRejectionRisk,
			RiskOfRejection:   true,
			FailedCategories:  []string{"Team Composition"},
			CategoryResults: map[string]entity.CategoryOutcome{
				"Problem Recognition":  {Score: 30, MaxScore: 30, MinimumRequired: 18, Passed: true},
				"Solution Feasibility": {Score: 30, MaxScore: 30, MinimumRequired: 18, Passed: true},
				"Growth Strategy":      {Score: 20, MaxScore: 20, MinimumRequired: 12, Passed: true},
				"Team Composition":     {Score: 11.5, MaxScore: 20, MinimumRequired: 12, Passed: false},
			},
			Strengths:  []string{"clear problem framing"},
			Weaknesses: []string{"solo founder"},
			CreatedAt:  created,
		},
	}
	svc := testService(t, reports)

	data, err := svc.ExportEvaluationsXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportEvaluationsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	const sheet = "Evaluations"
	cell := func(ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		if err != nil {
			t.Fatalf("read %s: %v", ref, err)
		}
		return v
	}

	if got := cell("A1"); got != "Evaluated At" {
		t.Errorf("A1 = %q", got)
	}
	if got := cell("E1"); got != "Problem Recognition (/30)" {
		t.Errorf("E1 = %q, category columns must follow rubric order", got)
	}
	if got := cell("A2"); got != "2026-03-14 09:30" {
		t.Errorf("A2 = %q", got)
	}
	if got := cell("B2"); got != "91.5" {
		t.Errorf("B2 = %q", got)
	}
	if got := cell("C2"); got != "REJECTION_RISK" {
		t.Errorf("C2 = %q", got)
	}
	if got := cell("D2"); got != "Team Composition" {
		t.Errorf("D2 = %q", got)
	}
	if got := cell("H2"); got != "11.5" {
		t.Errorf("H2 = %q, want Team Composition score", got)
	}
	if got := cell("I2"); got != "clear problem framing" {
		t.Errorf("I2 = %q", got)
	}
}

func TestExportEmptyHistoryStillHasHeaders(t *testing.T) {
	svc := testService(t, nil)

	data, err := svc.ExportEvaluationsXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportEvaluationsXLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Evaluations")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want header only", len(rows))
	}
	if rows[0][0] != "Evaluated At" {
		t.Errorf("header = %v", rows[0])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 250); got != "short" {
		t.Errorf("truncate short = %q", got)
	}

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}
	got := truncate(string(long), 250)
	if len([]rune(got)) != 250 {
		t.Errorf("truncated length = %d runes", len([]rune(got)))
	}
	if got[len(got)-3:] != "…" {
		t.Errorf("truncated tail = %q, want ellipsis", got[len(got)-3:])
	}

	// multi-byte text must be cut on rune boundaries
	korean := strings.Repeat("가", 10)
	got = truncate(korean, 5)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate split a rune: %q", got)
	}
	if want := strings.Repeat("가", 4) + "…"; got != want {
		t.Errorf("truncate = %q, want %q", got, want)
	}
}

func TestExportDropsDefaultSheet(t *testing.T) {
	svc := testService(t, nil)

	data, err := svc.ExportEvaluationsXLSX(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ExportEvaluationsXLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Evaluations" {
		t.Errorf("sheets = %v, want [Evaluations] only", sheets)
	}
}
