package pipeline

import (
	"context"
	"errors"

	"github.com/seojun-park/planscore/internal/common"
	"github.com/seojun-park/planscore/internal/scoring"
)

// ErrorKind is the caller-visible failure classification stored on a failed
// job row.
type ErrorKind string

const (
	KindDocumentNotFound     ErrorKind = "DOCUMENT_NOT_FOUND"
	KindReportSynthesis      ErrorKind = "REPORT_SYNTHESIS_ERROR"
	KindFanoutTimeout        ErrorKind = "FANOUT_TIMEOUT"
	KindAggregationInvariant ErrorKind = "AGGREGATION_INVARIANT_VIOLATION"
	KindPersistence          ErrorKind = "PERSISTENCE_FAILURE"
	// KindCanceled marks a run aborted by the caller (shutdown, dropped
	// request), as opposed to the run blowing its own budget.
	KindCanceled ErrorKind = "RUN_CANCELLED"
)

var (
	// ErrReportSynthesis marks a missing or malformed final report. A
	// malformed report cannot be trusted for the gating decision, so this is
	// fatal to the run (the caller may re-evaluate).
	ErrReportSynthesis = errors.New("report synthesis failed")

	// ErrFanoutTimeout marks a section-analysis phase that exceeded its
	// shared budget. No partial report is persisted.
	ErrFanoutTimeout = errors.New("section fan-out timed out")
)

// classify maps a run error to its persisted kind. Aggregation violations
// are checked before synthesis because materialization wraps both.
func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return KindDocumentNotFound
	case errors.Is(err, ErrFanoutTimeout), errors.Is(err, context.DeadlineExceeded):
		return KindFanoutTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, scoring.ErrInvariant):
		return KindAggregationInvariant
	case errors.Is(err, ErrReportSynthesis):
		return KindReportSynthesis
	default:
		return KindPersistence
	}
}
