package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/seojun-park/planscore/constants"
)

// EvaluationJob is the lifecycle wrapper for one evaluation run.
// PENDING -> RUNNING -> COMPLETED | FAILED; terminal states are final.
type EvaluationJob struct {
	ID               uuid.UUID           `json:"id"`
	PlanID           uuid.UUID           `json:"plan_id"`
	Status           constants.JobStatus `json:"status"`
	ErrorKind        *string             `json:"error_kind,omitempty"`
	ErrorMessage     *string             `json:"error_message,omitempty"`
	ModelName        string              `json:"model_name"`
	SectionsAnalyzed int                 `json:"sections_analyzed"`
	StartedAt        time.Time           `json:"started_at"`
	FinishedAt       *time.Time          `json:"finished_at,omitempty"`
}
