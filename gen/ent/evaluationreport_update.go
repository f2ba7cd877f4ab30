// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seojun-park/planscore/gen/ent/businessplan"
	"github.com/seojun-park/planscore/gen/ent/evaluationjob"
	"github.com/seojun-park/planscore/gen/ent/evaluationreport"
	"github.com/seojun-park/planscore/gen/ent/predicate"
)

// EvaluationReportUpdate is the builder for updating EvaluationReport entities.
type EvaluationReportUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationReportMutation
}

// Where appends a list predicates to the EvaluationReportUpdate builder.
func (_u *EvaluationReportUpdate) Where(ps ...predicate.EvaluationReport) *EvaluationReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *EvaluationReportUpdate) SetJobID(v uuid.UUID) *EvaluationReportUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableJobID(v *uuid.UUID) *EvaluationReportUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *EvaluationReportUpdate) SetPlanID(v uuid.UUID) *EvaluationReportUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillablePlanID(v *uuid.UUID) *EvaluationReportUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *EvaluationReportUpdate) SetTotalScore(v float64) *EvaluationReportUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableTotalScore(v *float64) *EvaluationReportUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *EvaluationReportUpdate) AddTotalScore(v float64) *EvaluationReportUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetOverallAssessment sets the "overall_assessment" field.
func (_u *EvaluationReportUpdate) SetOverallAssessment(v string) *EvaluationReportUpdate {
	_u.mutation.SetOverallAssessment(v)
	return _u
}

// SetNillableOverallAssessment sets the "overall_assessment" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableOverallAssessment(v *string) *EvaluationReportUpdate {
	if v != nil {
		_u.SetOverallAssessment(*v)
	}
	return _u
}

// SetRiskOfRejection sets the "risk_of_rejection" field.
func (_u *EvaluationReportUpdate) SetRiskOfRejection(v bool) *EvaluationReportUpdate {
	_u.mutation.SetRiskOfRejection(v)
	return _u
}

// SetNillableRiskOfRejection sets the "risk_of_rejection" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableRiskOfRejection(v *bool) *EvaluationReportUpdate {
	if v != nil {
		_u.SetRiskOfRejection(*v)
	}
	return _u
}

// SetFailedCategories sets the "failed_categories" field.
func (_u *EvaluationReportUpdate) SetFailedCategories(v []string) *EvaluationReportUpdate {
	_u.mutation.SetFailedCategories(v)
	return _u
}

// AppendFailedCategories appends value to the "failed_categories" field.
func (_u *EvaluationReportUpdate) AppendFailedCategories(v []string) *EvaluationReportUpdate {
	_u.mutation.AppendFailedCategories(v)
	return _u
}

// ClearFailedCategories clears the value of the "failed_categories" field.
func (_u *EvaluationReportUpdate) ClearFailedCategories() *EvaluationReportUpdate {
	_u.mutation.ClearFailedCategories()
	return _u
}

// SetCategoryResults sets the "category_results" field.
func (_u *EvaluationReportUpdate) SetCategoryResults(v json.RawMessage) *EvaluationReportUpdate {
	_u.mutation.SetCategoryResults(v)
	return _u
}

// AppendCategoryResults appends value to the "category_results" field.
func (_u *EvaluationReportUpdate) AppendCategoryResults(v json.RawMessage) *EvaluationReportUpdate {
	_u.mutation.AppendCategoryResults(v)
	return _u
}

// SetSectionScores sets the "section_scores" field.
func (_u *EvaluationReportUpdate) SetSectionScores(v json.RawMessage) *EvaluationReportUpdate {
	_u.mutation.SetSectionScores(v)
	return _u
}

// AppendSectionScores appends value to the "section_scores" field.
func (_u *EvaluationReportUpdate) AppendSectionScores(v json.RawMessage) *EvaluationReportUpdate {
	_u.mutation.AppendSectionScores(v)
	return _u
}

// ClearSectionScores clears the value of the "section_scores" field.
func (_u *EvaluationReportUpdate) ClearSectionScores() *EvaluationReportUpdate {
	_u.mutation.ClearSectionScores()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *EvaluationReportUpdate) SetStrengths(v []string) *EvaluationReportUpdate {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *EvaluationReportUpdate) AppendStrengths(v []string) *EvaluationReportUpdate {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *EvaluationReportUpdate) ClearStrengths() *EvaluationReportUpdate {
	_u.mutation.ClearStrengths()
	return _u
}

// SetWeaknesses sets the "weaknesses" field.
func (_u *EvaluationReportUpdate) SetWeaknesses(v []string) *EvaluationReportUpdate {
	_u.mutation.SetWeaknesses(v)
	return _u
}

// AppendWeaknesses appends value to the "weaknesses" field.
func (_u *EvaluationReportUpdate) AppendWeaknesses(v []string) *EvaluationReportUpdate {
	_u.mutation.AppendWeaknesses(v)
	return _u
}

// ClearWeaknesses clears the value of the "weaknesses" field.
func (_u *EvaluationReportUpdate) ClearWeaknesses() *EvaluationReportUpdate {
	_u.mutation.ClearWeaknesses()
	return _u
}

// SetImprovementSuggestions sets the "improvement_suggestions" field.
func (_u *EvaluationReportUpdate) SetImprovementSuggestions(v []string) *EvaluationReportUpdate {
	_u.mutation.SetImprovementSuggestions(v)
	return _u
}

// AppendImprovementSuggestions appends value to the "improvement_suggestions" field.
func (_u *EvaluationReportUpdate) AppendImprovementSuggestions(v []string) *EvaluationReportUpdate {
	_u.mutation.AppendImprovementSuggestions(v)
	return _u
}

// ClearImprovementSuggestions clears the value of the "improvement_suggestions" field.
func (_u *EvaluationReportUpdate) ClearImprovementSuggestions() *EvaluationReportUpdate {
	_u.mutation.ClearImprovementSuggestions()
	return _u
}

// SetRawReport sets the "raw_report" field.
func (_u *EvaluationReportUpdate) SetRawReport(v json.RawMessage) *EvaluationReportUpdate {
	_u.mutation.SetRawReport(v)
	return _u
}

// AppendRawReport appends value to the "raw_report" field.
func (_u *EvaluationReportUpdate) AppendRawReport(v json.RawMessage) *EvaluationReportUpdate {
	_u.mutation.AppendRawReport(v)
	return _u
}

// ClearRawReport clears the value of the "raw_report" field.
func (_u *EvaluationReportUpdate) ClearRawReport() *EvaluationReportUpdate {
	_u.mutation.ClearRawReport()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EvaluationReportUpdate) SetCreatedAt(v time.Time) *EvaluationReportUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EvaluationReportUpdate) SetNillableCreatedAt(v *time.Time) *EvaluationReportUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetPlan sets the "plan" edge to the BusinessPlan entity.
func (_u *EvaluationReportUpdate) SetPlan(v *BusinessPlan) *EvaluationReportUpdate {
	return _u.SetPlanID(v.ID)
}

// SetJob sets the "job" edge to the EvaluationJob entity.
func (_u *EvaluationReportUpdate) SetJob(v *EvaluationJob) *EvaluationReportUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the EvaluationReportMutation object of the builder.
func (_u *EvaluationReportUpdate) Mutation() *EvaluationReportMutation {
	return _u.mutation
}

// ClearPlan clears the "plan" edge to the BusinessPlan entity.
func (_u *EvaluationReportUpdate) ClearPlan() *EvaluationReportUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// ClearJob clears the "job" edge to the EvaluationJob entity.
func (_u *EvaluationReportUpdate) ClearJob() *EvaluationReportUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationReportUpdate) check() error {
	if v, ok := _u.mutation.OverallAssessment(); ok {
		if err := evaluationreport.OverallAssessmentValidator(v); err != nil {
			return &ValidationError{Name: "overall_assessment", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.overall_assessment": %w`, err)}
		}
	}
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationReport.plan"`)
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationReport.job"`)
	}
	return nil
}

func (_u *EvaluationReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationreport.Table, evaluationreport.Columns, sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(evaluationreport.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(evaluationreport.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallAssessment(); ok {
		_spec.SetField(evaluationreport.FieldOverallAssessment, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskOfRejection(); ok {
		_spec.SetField(evaluationreport.FieldRiskOfRejection, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FailedCategories(); ok {
		_spec.SetField(evaluationreport.FieldFailedCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldFailedCategories, value)
		})
	}
	if _u.mutation.FailedCategoriesCleared() {
		_spec.ClearField(evaluationreport.FieldFailedCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.CategoryResults(); ok {
		_spec.SetField(evaluationreport.FieldCategoryResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategoryResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldCategoryResults, value)
		})
	}
	if value, ok := _u.mutation.SectionScores(); ok {
		_spec.SetField(evaluationreport.FieldSectionScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSectionScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldSectionScores, value)
		})
	}
	if _u.mutation.SectionScoresCleared() {
		_spec.ClearField(evaluationreport.FieldSectionScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(evaluationreport.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(evaluationreport.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Weaknesses(); ok {
		_spec.SetField(evaluationreport.FieldWeaknesses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeaknesses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldWeaknesses, value)
		})
	}
	if _u.mutation.WeaknessesCleared() {
		_spec.ClearField(evaluationreport.FieldWeaknesses, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImprovementSuggestions(); ok {
		_spec.SetField(evaluationreport.FieldImprovementSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImprovementSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldImprovementSuggestions, value)
		})
	}
	if _u.mutation.ImprovementSuggestionsCleared() {
		_spec.ClearField(evaluationreport.FieldImprovementSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawReport(); ok {
		_spec.SetField(evaluationreport.FieldRawReport, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawReport(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldRawReport, value)
		})
	}
	if _u.mutation.RawReportCleared() {
		_spec.ClearField(evaluationreport.FieldRawReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(evaluationreport.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.PlanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluationreport.PlanTable,
			Columns: []string{evaluationreport.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(businessplan.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluationreport.PlanTable,
			Columns: []string{evaluationreport.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(businessplan.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   evaluationreport.JobTable,
			Columns: []string{evaluationreport.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   evaluationreport.JobTable,
			Columns: []string{evaluationreport.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationReportUpdateOne is the builder for updating a single EvaluationReport entity.
type EvaluationReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationReportMutation
}

// SetJobID sets the "job_id" field.
func (_u *EvaluationReportUpdateOne) SetJobID(v uuid.UUID) *EvaluationReportUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableJobID(v *uuid.UUID) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *EvaluationReportUpdateOne) SetPlanID(v uuid.UUID) *EvaluationReportUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillablePlanID(v *uuid.UUID) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *EvaluationReportUpdateOne) SetTotalScore(v float64) *EvaluationReportUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableTotalScore(v *float64) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *EvaluationReportUpdateOne) AddTotalScore(v float64) *EvaluationReportUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetOverallAssessment sets the "overall_assessment" field.
func (_u *EvaluationReportUpdateOne) SetOverallAssessment(v string) *EvaluationReportUpdateOne {
	_u.mutation.SetOverallAssessment(v)
	return _u
}

// SetNillableOverallAssessment sets the "overall_assessment" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableOverallAssessment(v *string) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetOverallAssessment(*v)
	}
	return _u
}

// SetRiskOfRejection sets the "risk_of_rejection" field.
func (_u *EvaluationReportUpdateOne) SetRiskOfRejection(v bool) *EvaluationReportUpdateOne {
	_u.mutation.SetRiskOfRejection(v)
	return _u
}

// SetNillableRiskOfRejection sets the "risk_of_rejection" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableRiskOfRejection(v *bool) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetRiskOfRejection(*v)
	}
	return _u
}

// SetFailedCategories sets the "failed_categories" field.
func (_u *EvaluationReportUpdateOne) SetFailedCategories(v []string) *EvaluationReportUpdateOne {
	_u.mutation.SetFailedCategories(v)
	return _u
}

// AppendFailedCategories appends value to the "failed_categories" field.
func (_u *EvaluationReportUpdateOne) AppendFailedCategories(v []string) *EvaluationReportUpdateOne {
	_u.mutation.AppendFailedCategories(v)
	return _u
}

// ClearFailedCategories clears the value of the "failed_categories" field.
func (_u *EvaluationReportUpdateOne) ClearFailedCategories() *EvaluationReportUpdateOne {
	_u.mutation.ClearFailedCategories()
	return _u
}

// SetCategoryResults sets the "category_results" field.
func (_u *EvaluationReportUpdateOne) SetCategoryResults(v json.RawMessage) *EvaluationReportUpdateOne {
	_u.mutation.SetCategoryResults(v)
	return _u
}

// AppendCategoryResults appends value to the "category_results" field.
func (_u *EvaluationReportUpdateOne) AppendCategoryResults(v json.RawMessage) *EvaluationReportUpdateOne {
	_u.mutation.AppendCategoryResults(v)
	return _u
}

// SetSectionScores sets the "section_scores" field.
func (_u *EvaluationReportUpdateOne) SetSectionScores(v json.RawMessage) *EvaluationReportUpdateOne {
	_u.mutation.SetSectionScores(v)
	return _u
}

// AppendSectionScores appends value to the "section_scores" field.
func (_u *EvaluationReportUpdateOne) AppendSectionScores(v json.RawMessage) *EvaluationReportUpdateOne {
	_u.mutation.AppendSectionScores(v)
	return _u
}

// ClearSectionScores clears the value of the "section_scores" field.
func (_u *EvaluationReportUpdateOne) ClearSectionScores() *EvaluationReportUpdateOne {
	_u.mutation.ClearSectionScores()
	return _u
}

// SetStrengths sets the "strengths" field.
func (_u *EvaluationReportUpdateOne) SetStrengths(v []string) *EvaluationReportUpdateOne {
	_u.mutation.SetStrengths(v)
	return _u
}

// AppendStrengths appends value to the "strengths" field.
func (_u *EvaluationReportUpdateOne) AppendStrengths(v []string) *EvaluationReportUpdateOne {
	_u.mutation.AppendStrengths(v)
	return _u
}

// ClearStrengths clears the value of the "strengths" field.
func (_u *EvaluationReportUpdateOne) ClearStrengths() *EvaluationReportUpdateOne {
	_u.mutation.ClearStrengths()
	return _u
}

// SetWeaknesses sets the "weaknesses" field.
func (_u *EvaluationReportUpdateOne) SetWeaknesses(v []string) *EvaluationReportUpdateOne {
	_u.mutation.SetWeaknesses(v)
	return _u
}

// AppendWeaknesses appends value to the "weaknesses" field.
func (_u *EvaluationReportUpdateOne) AppendWeaknesses(v []string) *EvaluationReportUpdateOne {
	_u.mutation.AppendWeaknesses(v)
	return _u
}

// ClearWeaknesses clears the value of the "weaknesses" field.
func (_u *EvaluationReportUpdateOne) ClearWeaknesses() *EvaluationReportUpdateOne {
	_u.mutation.ClearWeaknesses()
	return _u
}

// SetImprovementSuggestions sets the "improvement_suggestions" field.
func (_u *EvaluationReportUpdateOne) SetImprovementSuggestions(v []string) *EvaluationReportUpdateOne {
	_u.mutation.SetImprovementSuggestions(v)
	return _u
}

// AppendImprovementSuggestions appends value to the "improvement_suggestions" field.
func (_u *EvaluationReportUpdateOne) AppendImprovementSuggestions(v []string) *EvaluationReportUpdateOne {
	_u.mutation.AppendImprovementSuggestions(v)
	return _u
}

// ClearImprovementSuggestions clears the value of the "improvement_suggestions" field.
func (_u *EvaluationReportUpdateOne) ClearImprovementSuggestions() *EvaluationReportUpdateOne {
	_u.mutation.ClearImprovementSuggestions()
	return _u
}

// SetRawReport sets the "raw_report" field.
func (_u *EvaluationReportUpdateOne) SetRawReport(v json.RawMessage) *EvaluationReportUpdateOne {
	_u.mutation.SetRawReport(v)
	return _u
}

// AppendRawReport appends value to the "raw_report" field.
func (_u *EvaluationReportUpdateOne) AppendRawReport(v json.RawMessage) *EvaluationReportUpdateOne {
	_u.mutation.AppendRawReport(v)
	return _u
}

// ClearRawReport clears the value of the "raw_report" field.
func (_u *EvaluationReportUpdateOne) ClearRawReport() *EvaluationReportUpdateOne {
	_u.mutation.ClearRawReport()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EvaluationReportUpdateOne) SetCreatedAt(v time.Time) *EvaluationReportUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EvaluationReportUpdateOne) SetNillableCreatedAt(v *time.Time) *EvaluationReportUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetPlan sets the "plan" edge to the BusinessPlan entity.
func (_u *EvaluationReportUpdateOne) SetPlan(v *BusinessPlan) *EvaluationReportUpdateOne {
	return _u.SetPlanID(v.ID)
}

// SetJob sets the "job" edge to the EvaluationJob entity.
func (_u *EvaluationReportUpdateOne) SetJob(v *EvaluationJob) *EvaluationReportUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the EvaluationReportMutation object of the builder.
func (_u *EvaluationReportUpdateOne) Mutation() *EvaluationReportMutation {
	return _u.mutation
}

// ClearPlan clears the "plan" edge to the BusinessPlan entity.
func (_u *EvaluationReportUpdateOne) ClearPlan() *EvaluationReportUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// ClearJob clears the "job" edge to the EvaluationJob entity.
func (_u *EvaluationReportUpdateOne) ClearJob() *EvaluationReportUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the EvaluationReportUpdate builder.
func (_u *EvaluationReportUpdateOne) Where(ps ...predicate.EvaluationReport) *EvaluationReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationReportUpdateOne) Select(field string, fields ...string) *EvaluationReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationReport entity.
func (_u *EvaluationReportUpdateOne) Save(ctx context.Context) (*EvaluationReport, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationReportUpdateOne) SaveX(ctx context.Context) *EvaluationReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationReportUpdateOne) check() error {
	if v, ok := _u.mutation.OverallAssessment(); ok {
		if err := evaluationreport.OverallAssessmentValidator(v); err != nil {
			return &ValidationError{Name: "overall_assessment", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.overall_assessment": %w`, err)}
		}
	}
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationReport.plan"`)
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationReport.job"`)
	}
	return nil
}

func (_u *EvaluationReportUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationreport.Table, evaluationreport.Columns, sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationreport.FieldID)
		for _, f := range fields {
			if !evaluationreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationreport.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(evaluationreport.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(evaluationreport.FieldTotalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallAssessment(); ok {
		_spec.SetField(evaluationreport.FieldOverallAssessment, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskOfRejection(); ok {
		_spec.SetField(evaluationreport.FieldRiskOfRejection, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FailedCategories(); ok {
		_spec.SetField(evaluationreport.FieldFailedCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldFailedCategories, value)
		})
	}
	if _u.mutation.FailedCategoriesCleared() {
		_spec.ClearField(evaluationreport.FieldFailedCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.CategoryResults(); ok {
		_spec.SetField(evaluationreport.FieldCategoryResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategoryResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldCategoryResults, value)
		})
	}
	if value, ok := _u.mutation.SectionScores(); ok {
		_spec.SetField(evaluationreport.FieldSectionScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSectionScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldSectionScores, value)
		})
	}
	if _u.mutation.SectionScoresCleared() {
		_spec.ClearField(evaluationreport.FieldSectionScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Strengths(); ok {
		_spec.SetField(evaluationreport.FieldStrengths, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrengths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldStrengths, value)
		})
	}
	if _u.mutation.StrengthsCleared() {
		_spec.ClearField(evaluationreport.FieldStrengths, field.TypeJSON)
	}
	if value, ok := _u.mutation.Weaknesses(); ok {
		_spec.SetField(evaluationreport.FieldWeaknesses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeaknesses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldWeaknesses, value)
		})
	}
	if _u.mutation.WeaknessesCleared() {
		_spec.ClearField(evaluationreport.FieldWeaknesses, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImprovementSuggestions(); ok {
		_spec.SetField(evaluationreport.FieldImprovementSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImprovementSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldImprovementSuggestions, value)
		})
	}
	if _u.mutation.ImprovementSuggestionsCleared() {
		_spec.ClearField(evaluationreport.FieldImprovementSuggestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawReport(); ok {
		_spec.SetField(evaluationreport.FieldRawReport, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawReport(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationreport.FieldRawReport, value)
		})
	}
	if _u.mutation.RawReportCleared() {
		_spec.ClearField(evaluationreport.FieldRawReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(evaluationreport.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.PlanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluationreport.PlanTable,
			Columns: []string{evaluationreport.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(businessplan.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PlanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluationreport.PlanTable,
			Columns: []string{evaluationreport.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(businessplan.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   evaluationreport.JobTable,
			Columns: []string{evaluationreport.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   evaluationreport.JobTable,
			Columns: []string{evaluationreport.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EvaluationReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
