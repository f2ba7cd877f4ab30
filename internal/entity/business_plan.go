package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/seojun-park/planscore/constants"
)

// BusinessPlan represents an uploaded plan document for data transfer
// between layers.
type BusinessPlan struct {
	ID          uuid.UUID            `json:"id"`
	OwnerID     uuid.UUID            `json:"owner_id"`
	Title       string               `json:"title"`
	ObjectKey   string               `json:"object_key"`
	ContentHash *string              `json:"content_hash,omitempty"`
	PageCount   int                  `json:"page_count"`
	SizeBytes   int                  `json:"size_bytes"`
	Status      constants.PlanStatus `json:"status"`
	LatestJobID *uuid.UUID           `json:"latest_job_id,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
