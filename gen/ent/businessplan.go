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
)

// BusinessPlan is the model entity for the BusinessPlan schema.
type BusinessPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// ObjectKey holds the value of the "object_key" field.
	ObjectKey string `json:"object_key,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash *string `json:"content_hash,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount int `json:"page_count,omitempty"`
	// SizeBytes holds the value of the "size_bytes" field.
	SizeBytes int `json:"size_bytes,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// LatestJobID holds the value of the "latest_job_id" field.
	LatestJobID *uuid.UUID `json:"latest_job_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BusinessPlanQuery when eager-loading is set.
	Edges        BusinessPlanEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BusinessPlanEdges holds the relations/edges for other nodes in the graph.
type BusinessPlanEdges struct {
	// Jobs holds the value of the jobs edge.
	Jobs []*EvaluationJob `json:"jobs,omitempty"`
	// Reports holds the value of the reports edge.
	Reports []*EvaluationReport `json:"reports,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e BusinessPlanEdges) JobsOrErr() ([]*EvaluationJob, error) {
	if e.loadedTypes[0] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// ReportsOrErr returns the Reports value or an error if the edge
// was not loaded in eager-loading.
func (e BusinessPlanEdges) ReportsOrErr() ([]*EvaluationReport, error) {
	if e.loadedTypes[1] {
		return e.Reports, nil
	}
	return nil, &NotLoadedError{edge: "reports"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BusinessPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case businessplan.FieldLatestJobID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case businessplan.FieldPageCount, businessplan.FieldSizeBytes:
			values[i] = new(sql.NullInt64)
		case businessplan.FieldTitle, businessplan.FieldObjectKey, businessplan.FieldContentHash, businessplan.FieldStatus:
			values[i] = new(sql.NullString)
		case businessplan.FieldCreatedAt, businessplan.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case businessplan.FieldID, businessplan.FieldOwnerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BusinessPlan fields.
func (_m *BusinessPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case businessplan.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case businessplan.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case businessplan.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case businessplan.FieldObjectKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field object_key", values[i])
			} else if value.Valid {
				_m.ObjectKey = value.String
			}
		case businessplan.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = new(string)
				*_m.ContentHash = value.String
			}
		case businessplan.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				_m.PageCount = int(value.Int64)
			}
		case businessplan.FieldSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size_bytes", values[i])
			} else if value.Valid {
				_m.SizeBytes = int(value.Int64)
			}
		case businessplan.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case businessplan.FieldLatestJobID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field latest_job_id", values[i])
			} else if value.Valid {
				_m.LatestJobID = new(uuid.UUID)
				*_m.LatestJobID = *value.S.(*uuid.UUID)
			}
		case businessplan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case businessplan.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BusinessPlan.
// This includes values selected through modifiers, order, etc.
func (_m *BusinessPlan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJobs queries the "jobs" edge of the BusinessPlan entity.
func (_m *BusinessPlan) QueryJobs() *EvaluationJobQuery {
	return NewBusinessPlanClient(_m.config).QueryJobs(_m)
}

// QueryReports queries the "reports" edge of the BusinessPlan entity.
func (_m *BusinessPlan) QueryReports() *EvaluationReportQuery {
	return NewBusinessPlanClient(_m.config).QueryReports(_m)
}

// Update returns a builder for updating this BusinessPlan.
// Note that you need to call BusinessPlan.Unwrap() before calling this method if this BusinessPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BusinessPlan) Update() *BusinessPlanUpdateOne {
	return NewBusinessPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BusinessPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BusinessPlan) Unwrap() *BusinessPlan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BusinessPlan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BusinessPlan) String() string {
	var builder strings.Builder
	builder.WriteString("BusinessPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("object_key=")
	builder.WriteString(_m.ObjectKey)
	builder.WriteString(", ")
	if v := _m.ContentHash; v != nil {
		builder.WriteString("content_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("page_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageCount))
	builder.WriteString(", ")
	builder.WriteString("size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.SizeBytes))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.LatestJobID; v != nil {
		builder.WriteString("latest_job_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BusinessPlans is a parsable slice of BusinessPlan.
type BusinessPlans []*BusinessPlan
