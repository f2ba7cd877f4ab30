// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seojun-park/planscore/gen/ent/businessplan"
	"github.com/seojun-park/planscore/gen/ent/evaluationjob"
	"github.com/seojun-park/planscore/gen/ent/evaluationreport"
	"github.com/seojun-park/planscore/gen/ent/predicate"
)

// EvaluationJobUpdate is the builder for updating EvaluationJob entities.
type EvaluationJobUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationJobMutation
}

// Where appends a list predicates to the EvaluationJobUpdate builder.
func (_u *EvaluationJobUpdate) Where(ps ...predicate.EvaluationJob) *EvaluationJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *EvaluationJobUpdate) SetPlanID(v uuid.UUID) *EvaluationJobUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *EvaluationJobUpdate) SetNillablePlanID(v *uuid.UUID) *EvaluationJobUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EvaluationJobUpdate) SetStatus(v string) *EvaluationJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EvaluationJobUpdate) SetNillableStatus(v *string) *EvaluationJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *EvaluationJobUpdate) SetErrorKind(v string) *EvaluationJobUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *EvaluationJobUpdate) SetNillableErrorKind(v *string) *EvaluationJobUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *EvaluationJobUpdate) ClearErrorKind() *EvaluationJobUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EvaluationJobUpdate) SetErrorMessage(v string) *EvaluationJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EvaluationJobUpdate) SetNillableErrorMessage(v *string) *EvaluationJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *EvaluationJobUpdate) ClearErrorMessage() *EvaluationJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *EvaluationJobUpdate) SetModelName(v string) *EvaluationJobUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *EvaluationJobUpdate) SetNillableModelName(v *string) *EvaluationJobUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *EvaluationJobUpdate) ClearModelName() *EvaluationJobUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetSectionsAnalyzed sets the "sections_analyzed" field.
func (_u *EvaluationJobUpdate) SetSectionsAnalyzed(v int) *EvaluationJobUpdate {
	_u.mutation.ResetSectionsAnalyzed()
	_u.mutation.SetSectionsAnalyzed(v)
	return _u
}

// SetNillableSectionsAnalyzed sets the "sections_analyzed" field if the given value is not nil.
func (_u *EvaluationJobUpdate) SetNillableSectionsAnalyzed(v *int) *EvaluationJobUpdate {
	if v != nil {
		_u.SetSectionsAnalyzed(*v)
	}
	return _u
}

// AddSectionsAnalyzed adds value to the "sections_analyzed" field.
func (_u *EvaluationJobUpdate) AddSectionsAnalyzed(v int) *EvaluationJobUpdate {
	_u.mutation.AddSectionsAnalyzed(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *EvaluationJobUpdate) SetStartedAt(v time.Time) *EvaluationJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *EvaluationJobUpdate) SetNillableStartedAt(v *time.Time) *EvaluationJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *EvaluationJobUpdate) SetFinishedAt(v time.Time) *EvaluationJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *EvaluationJobUpdate) SetNillableFinishedAt(v *time.Time) *EvaluationJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *EvaluationJobUpdate) ClearFinishedAt() *EvaluationJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetPlan sets the "plan" edge to the BusinessPlan entity.
func (_u *EvaluationJobUpdate) SetPlan(v *BusinessPlan) *EvaluationJobUpdate {
	return _u.SetPlanID(v.ID)
}

// SetReportID sets the "report" edge to the EvaluationReport entity by ID.
func (_u *EvaluationJobUpdate) SetReportID(id uuid.UUID) *EvaluationJobUpdate {
	_u.mutation.SetReportID(id)
	return _u
}

// SetNillableReportID sets the "report" edge to the EvaluationReport entity by ID if the given value is not nil.
func (_u *EvaluationJobUpdate) SetNillableReportID(id *uuid.UUID) *EvaluationJobUpdate {
	if id != nil {
		_u = _u.SetReportID(*id)
	}
	return _u
}

// SetReport sets the "report" edge to the EvaluationReport entity.
func (_u *EvaluationJobUpdate) SetReport(v *EvaluationReport) *EvaluationJobUpdate {
	return _u.SetReportID(v.ID)
}

// Mutation returns the EvaluationJobMutation object of the builder.
func (_u *EvaluationJobUpdate) Mutation() *EvaluationJobMutation {
	return _u.mutation
}

// ClearPlan clears the "plan" edge to the BusinessPlan entity.
func (_u *EvaluationJobUpdate) ClearPlan() *EvaluationJobUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// ClearReport clears the "report" edge to the EvaluationReport entity.
func (_u *EvaluationJobUpdate) ClearReport() *EvaluationJobUpdate {
	_u.mutation.ClearReport()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := evaluationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvaluationJob.status": %w`, err)}
		}
	}
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationJob.plan"`)
	}
	return nil
}

func (_u *EvaluationJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationjob.Table, evaluationjob.Columns, sqlgraph.NewFieldSpec(evaluationjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(evaluationjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(evaluationjob.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(evaluationjob.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(evaluationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(evaluationjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(evaluationjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(evaluationjob.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.SectionsAnalyzed(); ok {
		_spec.SetField(evaluationjob.FieldSectionsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionsAnalyzed(); ok {
		_spec.AddField(evaluationjob.FieldSectionsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(evaluationjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(evaluationjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(evaluationjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.PlanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluationjob.PlanTable,
			Columns: []string{evaluationjob.PlanColumn},
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
			Table:   evaluationjob.PlanTable,
			Columns: []string{evaluationjob.PlanColumn},
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
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   evaluationjob.ReportTable,
			Columns: []string{evaluationjob.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   evaluationjob.ReportTable,
			Columns: []string{evaluationjob.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationJobUpdateOne is the builder for updating a single EvaluationJob entity.
type EvaluationJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationJobMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *EvaluationJobUpdateOne) SetPlanID(v uuid.UUID) *EvaluationJobUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *EvaluationJobUpdateOne) SetNillablePlanID(v *uuid.UUID) *EvaluationJobUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EvaluationJobUpdateOne) SetStatus(v string) *EvaluationJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EvaluationJobUpdateOne) SetNillableStatus(v *string) *EvaluationJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *EvaluationJobUpdateOne) SetErrorKind(v string) *EvaluationJobUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *EvaluationJobUpdateOne) SetNillableErrorKind(v *string) *EvaluationJobUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *EvaluationJobUpdateOne) ClearErrorKind() *EvaluationJobUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *EvaluationJobUpdateOne) SetErrorMessage(v string) *EvaluationJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *EvaluationJobUpdateOne) SetNillableErrorMessage(v *string) *EvaluationJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *EvaluationJobUpdateOne) ClearErrorMessage() *EvaluationJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *EvaluationJobUpdateOne) SetModelName(v string) *EvaluationJobUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *EvaluationJobUpdateOne) SetNillableModelName(v *string) *EvaluationJobUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *EvaluationJobUpdateOne) ClearModelName() *EvaluationJobUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetSectionsAnalyzed sets the "sections_analyzed" field.
func (_u *EvaluationJobUpdateOne) SetSectionsAnalyzed(v int) *EvaluationJobUpdateOne {
	_u.mutation.ResetSectionsAnalyzed()
	_u.mutation.SetSectionsAnalyzed(v)
	return _u
}

// SetNillableSectionsAnalyzed sets the "sections_analyzed" field if the given value is not nil.
func (_u *EvaluationJobUpdateOne) SetNillableSectionsAnalyzed(v *int) *EvaluationJobUpdateOne {
	if v != nil {
		_u.SetSectionsAnalyzed(*v)
	}
	return _u
}

// AddSectionsAnalyzed adds value to the "sections_analyzed" field.
func (_u *EvaluationJobUpdateOne) AddSectionsAnalyzed(v int) *EvaluationJobUpdateOne {
	_u.mutation.AddSectionsAnalyzed(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *EvaluationJobUpdateOne) SetStartedAt(v time.Time) *EvaluationJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *EvaluationJobUpdateOne) SetNillableStartedAt(v *time.Time) *EvaluationJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *EvaluationJobUpdateOne) SetFinishedAt(v time.Time) *EvaluationJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *EvaluationJobUpdateOne) SetNillableFinishedAt(v *time.Time) *EvaluationJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *EvaluationJobUpdateOne) ClearFinishedAt() *EvaluationJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetPlan sets the "plan" edge to the BusinessPlan entity.
func (_u *EvaluationJobUpdateOne) SetPlan(v *BusinessPlan) *EvaluationJobUpdateOne {
	return _u.SetPlanID(v.ID)
}

// SetReportID sets the "report" edge to the EvaluationReport entity by ID.
func (_u *EvaluationJobUpdateOne) SetReportID(id uuid.UUID) *EvaluationJobUpdateOne {
	_u.mutation.SetReportID(id)
	return _u
}

// SetNillableReportID sets the "report" edge to the EvaluationReport entity by ID if the given value is not nil.
func (_u *EvaluationJobUpdateOne) SetNillableReportID(id *uuid.UUID) *EvaluationJobUpdateOne {
	if id != nil {
		_u = _u.SetReportID(*id)
	}
	return _u
}

// SetReport sets the "report" edge to the EvaluationReport entity.
func (_u *EvaluationJobUpdateOne) SetReport(v *EvaluationReport) *EvaluationJobUpdateOne {
	return _u.SetReportID(v.ID)
}

// Mutation returns the EvaluationJobMutation object of the builder.
func (_u *EvaluationJobUpdateOne) Mutation() *EvaluationJobMutation {
	return _u.mutation
}

// ClearPlan clears the "plan" edge to the BusinessPlan entity.
func (_u *EvaluationJobUpdateOne) ClearPlan() *EvaluationJobUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// ClearReport clears the "report" edge to the EvaluationReport entity.
func (_u *EvaluationJobUpdateOne) ClearReport() *EvaluationJobUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// Where appends a list predicates to the EvaluationJobUpdate builder.
func (_u *EvaluationJobUpdateOne) Where(ps ...predicate.EvaluationJob) *EvaluationJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationJobUpdateOne) Select(field string, fields ...string) *EvaluationJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationJob entity.
func (_u *EvaluationJobUpdateOne) Save(ctx context.Context) (*EvaluationJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationJobUpdateOne) SaveX(ctx context.Context) *EvaluationJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := evaluationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvaluationJob.status": %w`, err)}
		}
	}
	if _u.mutation.PlanCleared() && len(_u.mutation.PlanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationJob.plan"`)
	}
	return nil
}

func (_u *EvaluationJobUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationjob.Table, evaluationjob.Columns, sqlgraph.NewFieldSpec(evaluationjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationjob.FieldID)
		for _, f := range fields {
			if !evaluationjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationjob.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(evaluationjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(evaluationjob.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(evaluationjob.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(evaluationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(evaluationjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(evaluationjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(evaluationjob.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.SectionsAnalyzed(); ok {
		_spec.SetField(evaluationjob.FieldSectionsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionsAnalyzed(); ok {
		_spec.AddField(evaluationjob.FieldSectionsAnalyzed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(evaluationjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(evaluationjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(evaluationjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.PlanCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluationjob.PlanTable,
			Columns: []string{evaluationjob.PlanColumn},
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
			Table:   evaluationjob.PlanTable,
			Columns: []string{evaluationjob.PlanColumn},
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
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   evaluationjob.ReportTable,
			Columns: []string{evaluationjob.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   evaluationjob.ReportTable,
			Columns: []string{evaluationjob.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EvaluationJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
