// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
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

// EvaluationReport is the model entity for the EvaluationReport schema.
type EvaluationReport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID uuid.UUID `json:"plan_id,omitempty"`
	// TotalScore holds the value of the "total_score" field.
	TotalScore float64 `json:"total_score,omitempty"`
	// OverallAssessment holds the value of the "overall_assessment" field.
	OverallAssessment string `json:"overall_assessment,omitempty"`
	// RiskOfRejection holds the value of the "risk_of_rejection" field.
	RiskOfRejection bool `json:"risk_of_rejection,omitempty"`
	// FailedCategories holds the value of the "failed_categories" field.
	FailedCategories []string `json:"failed_categories,omitempty"`
	// CategoryResults holds the value of the "category_results" field.
	CategoryResults json.RawMessage `json:"category_results,omitempty"`
	// SectionScores holds the value of the "section_scores" field.
	SectionScores json.RawMessage `json:"section_scores,omitempty"`
	// Strengths holds the value of the "strengths" field.
	Strengths []string `json:"strengths,omitempty"`
	// Weaknesses holds the value of the "weaknesses" field.
	Weaknesses []string `json:"weaknesses,omitempty"`
	// ImprovementSuggestions holds the value of the "improvement_suggestions" field.
	ImprovementSuggestions []string `json:"improvement_suggestions,omitempty"`
	// RawReport holds the value of the "raw_report" field.
	RawReport json.RawMessage `json:"raw_report,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvaluationReportQuery when eager-loading is set.
	Edges        EvaluationReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvaluationReportEdges holds the relations/edges for other nodes in the graph.
type EvaluationReportEdges struct {
	// Plan holds the value of the plan edge.
	Plan *BusinessPlan `json:"plan,omitempty"`
	// Job holds the value of the job edge.
	Job *EvaluationJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PlanOrErr returns the Plan value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationReportEdges) PlanOrErr() (*BusinessPlan, error) {
	if e.Plan != nil {
		return e.Plan, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: businessplan.Label}
	}
	return nil, &NotLoadedError{edge: "plan"}
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationReportEdges) JobOrErr() (*EvaluationJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: evaluationjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationreport.FieldFailedCategories, evaluationreport.FieldCategoryResults, evaluationreport.FieldSectionScores, evaluationreport.FieldStrengths, evaluationreport.FieldWeaknesses, evaluationreport.FieldImprovementSuggestions, evaluationreport.FieldRawReport:
			values[i] = new([]byte)
		case evaluationreport.FieldRiskOfRejection:
			values[i] = new(sql.NullBool)
		case evaluationreport.FieldTotalScore:
			values[i] = new(sql.NullFloat64)
		case evaluationreport.FieldOverallAssessment:
			values[i] = new(sql.NullString)
		case evaluationreport.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case evaluationreport.FieldID, evaluationreport.FieldJobID, evaluationreport.FieldPlanID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationReport fields.
func (_m *EvaluationReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationreport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case evaluationreport.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case evaluationreport.FieldPlanID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value != nil {
				_m.PlanID = *value
			}
		case evaluationreport.FieldTotalScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = value.Float64
			}
		case evaluationreport.FieldOverallAssessment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field overall_assessment", values[i])
			} else if value.Valid {
				_m.OverallAssessment = value.String
			}
		case evaluationreport.FieldRiskOfRejection:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field risk_of_rejection", values[i])
			} else if value.Valid {
				_m.RiskOfRejection = value.Bool
			}
		case evaluationreport.FieldFailedCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failed_categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FailedCategories); err != nil {
					return fmt.Errorf("unmarshal field failed_categories: %w", err)
				}
			}
		case evaluationreport.FieldCategoryResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field category_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CategoryResults); err != nil {
					return fmt.Errorf("unmarshal field category_results: %w", err)
				}
			}
		case evaluationreport.FieldSectionScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field section_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SectionScores); err != nil {
					return fmt.Errorf("unmarshal field section_scores: %w", err)
				}
			}
		case evaluationreport.FieldStrengths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strengths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Strengths); err != nil {
					return fmt.Errorf("unmarshal field strengths: %w", err)
				}
			}
		case evaluationreport.FieldWeaknesses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weaknesses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Weaknesses); err != nil {
					return fmt.Errorf("unmarshal field weaknesses: %w", err)
				}
			}
		case evaluationreport.FieldImprovementSuggestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field improvement_suggestions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ImprovementSuggestions); err != nil {
					return fmt.Errorf("unmarshal field improvement_suggestions: %w", err)
				}
			}
		case evaluationreport.FieldRawReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawReport); err != nil {
					return fmt.Errorf("unmarshal field raw_report: %w", err)
				}
			}
		case evaluationreport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationReport.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPlan queries the "plan" edge of the EvaluationReport entity.
func (_m *EvaluationReport) QueryPlan() *BusinessPlanQuery {
	return NewEvaluationReportClient(_m.config).QueryPlan(_m)
}

// QueryJob queries the "job" edge of the EvaluationReport entity.
func (_m *EvaluationReport) QueryJob() *EvaluationJobQuery {
	return NewEvaluationReportClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this EvaluationReport.
// Note that you need to call EvaluationReport.Unwrap() before calling this method if this EvaluationReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationReport) Update() *EvaluationReportUpdateOne {
	return NewEvaluationReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationReport) Unwrap() *EvaluationReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationReport) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("plan_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanID))
	builder.WriteString(", ")
	builder.WriteString("total_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalScore))
	builder.WriteString(", ")
	builder.WriteString("overall_assessment=")
	builder.WriteString(_m.OverallAssessment)
	builder.WriteString(", ")
	builder.WriteString("risk_of_rejection=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskOfRejection))
	builder.WriteString(", ")
	builder.WriteString("failed_categories=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedCategories))
	builder.WriteString(", ")
	builder.WriteString("category_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryResults))
	builder.WriteString(", ")
	builder.WriteString("section_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.SectionScores))
	builder.WriteString(", ")
	builder.WriteString("strengths=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strengths))
	builder.WriteString(", ")
	builder.WriteString("weaknesses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weaknesses))
	builder.WriteString(", ")
	builder.WriteString("improvement_suggestions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImprovementSuggestions))
	builder.WriteString(", ")
	builder.WriteString("raw_report=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawReport))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationReports is a parsable slice of EvaluationReport.
type EvaluationReports []*EvaluationReport
