package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/seojun-park/planscore/internal/repository"
	"github.com/seojun-park/planscore/internal/rubric"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// a plan's evaluation history.
type Service struct {
	reportsRepo repository.ReportRepository
	rubric      *rubric.Rubric
	logger      *slog.Logger
}

func NewService(reports repository.ReportRepository, r *rubric.Rubric, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{reportsRepo: reports, rubric: r, logger: logger}
}

// ExportEvaluationsXLSX returns an XLSX workbook (as bytes) with one row per
// evaluation report for the plan, oldest first. Category columns follow the
// rubric's order so workbooks line up across plans.
func (s *Service) ExportEvaluationsXLSX(ctx context.Context, planID uuid.UUID) ([]byte, error) {
	start := time.Now()

	reports, err := s.reportsRepo.ListByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Evaluations"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Evaluated At",
		"Total Score",
		"Assessment",
		"Failed Categories",
	}
	for _, cat := range s.rubric.Categories {
		headers = append(headers, fmt.Sprintf("%s (/%d)", cat.Name, cat.MaxScore))
	}
	headers = append(headers, "Strengths", "Weaknesses", "Suggestions")

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range reports {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.CreatedAt.UTC().Format("2006-01-02 15:04"))
		write(2, r.TotalScore)
		write(3, string(r.OverallAssessment))
		write(4, strings.Join(r.FailedCategories, ", "))

		col := 5
		for _, cat := range s.rubric.Categories {
			if outcome, ok := r.CategoryResults[cat.Name]; ok {
				write(col, outcome.Score)
			} else {
				write(col, "")
			}
			col++
		}

		write(col, truncate(strings.Join(r.Strengths, "; "), 250))
		write(col+1, truncate(strings.Join(r.Weaknesses, "; "), 250))
		write(col+2, truncate(strings.Join(r.ImprovementSuggestions, "; "), 250))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 18) // timestamp
	_ = f.SetColWidth(sheet, "B", "C", 14) // score, assessment
	_ = f.SetColWidth(sheet, "D", "D", 32) // failed categories
	lastCat, _ := excelize.ColumnNumberToName(4 + len(s.rubric.Categories))
	_ = f.SetColWidth(sheet, "E", lastCat, 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"plan_id", planID.String(),
		"rows", len(reports),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// truncate caps s at n runes, ellipsis included. Rune-indexed so multi-byte
// text is never split mid-sequence.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
