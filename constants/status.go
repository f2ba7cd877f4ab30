package constants

// JobStatus is the canonical status for rows in evaluation_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending   JobStatus = "PENDING"   // job created, document not fetched yet
	JobStatusRunning   JobStatus = "RUNNING"   // document fetched, analysis in flight
	JobStatusCompleted JobStatus = "COMPLETED" // report materialized
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)

// JobStatuses enumerates the stored values for schema validation.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusRunning),
	string(JobStatusCompleted),
	string(JobStatusFailed),
}

// IsTerminal reports whether a job in this status may never transition again.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// PlanStatus mirrors the latest evaluation outcome on the business_plan row.
type PlanStatus string

const (
	PlanStatusUploaded   PlanStatus = "UPLOADED"
	PlanStatusEvaluating PlanStatus = "EVALUATING"
	PlanStatusCompleted  PlanStatus = "COMPLETED"
	PlanStatusFailed     PlanStatus = "FAILED"
)

var PlanStatuses = []string{
	string(PlanStatusUploaded),
	string(PlanStatusEvaluating),
	string(PlanStatusCompleted),
	string(PlanStatusFailed),
}
