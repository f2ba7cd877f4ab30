// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/seojun-park/planscore/gen/ent/businessplan"
	"github.com/seojun-park/planscore/gen/ent/evaluationjob"
	"github.com/seojun-park/planscore/gen/ent/evaluationreport"
)

// EvaluationJob is the model entity for the EvaluationJob schema.
type EvaluationJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID uuid.UUID `json:"plan_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorKind holds the value of the "error_kind" field.
	ErrorKind *string `json:"error_kind,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName *string `json:"model_name,omitempty"`
	// SectionsAnalyzed holds the value of the "sections_analyzed" field.
	SectionsAnalyzed int `json:"sections_analyzed,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvaluationJobQuery when eager-loading is set.
	Edges        EvaluationJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvaluationJobEdges holds the relations/edges for other nodes in the graph.
type EvaluationJobEdges struct {
	// Plan holds the value of the plan edge.
	Plan *BusinessPlan `json:"plan,omitempty"`
	// Report holds the value of the report edge.
	Report *EvaluationReport `json:"report,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PlanOrErr returns the Plan value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationJobEdges) PlanOrErr() (*BusinessPlan, error) {
	if e.Plan != nil {
		return e.Plan, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: businessplan.Label}
	}
	return nil, &NotLoadedError{edge: "plan"}
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationJobEdges) ReportOrErr() (*EvaluationReport, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: evaluationreport.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationjob.FieldSectionsAnalyzed:
			values[i] = new(sql.NullInt64)
		case evaluationjob.FieldStatus, evaluationjob.FieldErrorKind, evaluationjob.FieldErrorMessage, evaluationjob.FieldModelName:
			values[i] = new(sql.NullString)
		case evaluationjob.FieldStartedAt, evaluationjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case evaluationjob.FieldID, evaluationjob.FieldPlanID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationJob fields.
func (_m *EvaluationJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case evaluationjob.FieldPlanID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value != nil {
				_m.PlanID = *value
			}
		case evaluationjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case evaluationjob.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(string)
				*_m.ErrorKind = value.String
			}
		case evaluationjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case evaluationjob.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = new(string)
				*_m.ModelName = value.String
			}
		case evaluationjob.FieldSectionsAnalyzed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sections_analyzed", values[i])
			} else if value.Valid {
				_m.SectionsAnalyzed = int(value.Int64)
			}
		case evaluationjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case evaluationjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationJob.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPlan queries the "plan" edge of the EvaluationJob entity.
func (_m *EvaluationJob) QueryPlan() *BusinessPlanQuery {
	return NewEvaluationJobClient(_m.config).QueryPlan(_m)
}

// QueryReport queries the "report" edge of the EvaluationJob entity.
func (_m *EvaluationJob) QueryReport() *EvaluationReportQuery {
	return NewEvaluationJobClient(_m.config).QueryReport(_m)
}

// Update returns a builder for updating this EvaluationJob.
// Note that you need to call EvaluationJob.Unwrap() before calling this method if this EvaluationJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationJob) Update() *EvaluationJobUpdateOne {
	return NewEvaluationJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationJob) Unwrap() *EvaluationJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationJob) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorKind; v != nil {
		builder.WriteString("error_kind=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ModelName; v != nil {
		builder.WriteString("model_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("sections_analyzed=")
	builder.WriteString(fmt.Sprintf("%v", _m.SectionsAnalyzed))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationJobs is a parsable slice of EvaluationJob.
type EvaluationJobs []*EvaluationJob
