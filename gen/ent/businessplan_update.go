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

// BusinessPlanUpdate is the builder for updating BusinessPlan entities.
type BusinessPlanUpdate struct {
	config
	hooks    []Hook
	mutation *BusinessPlanMutation
}

// Where appends a list predicates to the BusinessPlanUpdate builder.
func (_u *BusinessPlanUpdate) Where(ps ...predicate.BusinessPlan) *BusinessPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *BusinessPlanUpdate) SetOwnerID(v uuid.UUID) *BusinessPlanUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *BusinessPlanUpdate) SetNillableOwnerID(v *uuid.UUID) *BusinessPlanUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *BusinessPlanUpdate) SetTitle(v string) *BusinessPlanUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BusinessPlanUpdate) SetNillableTitle(v *string) *BusinessPlanUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetObjectKey sets the "object_key" field.
func (_u *BusinessPlanUpdate) SetObjectKey(v string) *BusinessPlanUpdate {
	_u.mutation.SetObjectKey(v)
	return _u
}

// SetNillableObjectKey sets the "object_key" field if the given value is not nil.
func (_u *BusinessPlanUpdate) SetNillableObjectKey(v *string) *BusinessPlanUpdate {
	if v != nil {
		_u.SetObjectKey(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *BusinessPlanUpdate) SetContentHash(v string) *BusinessPlanUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *BusinessPlanUpdate) SetNillableContentHash(v *string) *BusinessPlanUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *BusinessPlanUpdate) ClearContentHash() *BusinessPlanUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *BusinessPlanUpdate) SetPageCount(v int) *BusinessPlanUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *BusinessPlanUpdate) SetNillablePageCount(v *int) *BusinessPlanUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *BusinessPlanUpdate) AddPageCount(v int) *BusinessPlanUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *BusinessPlanUpdate) SetSizeBytes(v int) *BusinessPlanUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *BusinessPlanUpdate) SetNillableSizeBytes(v *int) *BusinessPlanUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *BusinessPlanUpdate) AddSizeBytes(v int) *BusinessPlanUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BusinessPlanUpdate) SetStatus(v string) *BusinessPlanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BusinessPlanUpdate) SetNillableStatus(v *string) *BusinessPlanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLatestJobID sets the "latest_job_id" field.
func (_u *BusinessPlanUpdate) SetLatestJobID(v uuid.UUID) *BusinessPlanUpdate {
	_u.mutation.SetLatestJobID(v)
	return _u
}

// SetNillableLatestJobID sets the "latest_job_id" field if the given value is not nil.
func (_u *BusinessPlanUpdate) SetNillableLatestJobID(v *uuid.UUID) *BusinessPlanUpdate {
	if v != nil {
		_u.SetLatestJobID(*v)
	}
	return _u
}

// ClearLatestJobID clears the value of the "latest_job_id" field.
func (_u *BusinessPlanUpdate) ClearLatestJobID() *BusinessPlanUpdate {
	_u.mutation.ClearLatestJobID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BusinessPlanUpdate) SetCreatedAt(v time.Time) *BusinessPlanUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BusinessPlanUpdate) SetNillableCreatedAt(v *time.Time) *BusinessPlanUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessPlanUpdate) SetUpdatedAt(v time.Time) *BusinessPlanUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the EvaluationJob entity by IDs.
func (_u *BusinessPlanUpdate) AddJobIDs(ids ...uuid.UUID) *BusinessPlanUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the EvaluationJob entity.
func (_u *BusinessPlanUpdate) AddJobs(v ...*EvaluationJob) *BusinessPlanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the EvaluationReport entity by IDs.
func (_u *BusinessPlanUpdate) AddReportIDs(ids ...uuid.UUID) *BusinessPlanUpdate {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the EvaluationReport entity.
func (_u *BusinessPlanUpdate) AddReports(v ...*EvaluationReport) *BusinessPlanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// Mutation returns the BusinessPlanMutation object of the builder.
func (_u *BusinessPlanUpdate) Mutation() *BusinessPlanMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the EvaluationJob entity.
func (_u *BusinessPlanUpdate) ClearJobs() *BusinessPlanUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to EvaluationJob entities by IDs.
func (_u *BusinessPlanUpdate) RemoveJobIDs(ids ...uuid.UUID) *BusinessPlanUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to EvaluationJob entities.
func (_u *BusinessPlanUpdate) RemoveJobs(v ...*EvaluationJob) *BusinessPlanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearReports clears all "reports" edges to the EvaluationReport entity.
func (_u *BusinessPlanUpdate) ClearReports() *BusinessPlanUpdate {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to EvaluationReport entities by IDs.
func (_u *BusinessPlanUpdate) RemoveReportIDs(ids ...uuid.UUID) *BusinessPlanUpdate {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to EvaluationReport entities.
func (_u *BusinessPlanUpdate) RemoveReports(v ...*EvaluationReport) *BusinessPlanUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BusinessPlanUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BusinessPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessPlanUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businessplan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessPlanUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := businessplan.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "BusinessPlan.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectKey(); ok {
		if err := businessplan.ObjectKeyValidator(v); err != nil {
			return &ValidationError{Name: "object_key", err: fmt.Errorf(`ent: validator failed for field "BusinessPlan.object_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := businessplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BusinessPlan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businessplan.Table, businessplan.Columns, sqlgraph.NewFieldSpec(businessplan.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(businessplan.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(businessplan.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectKey(); ok {
		_spec.SetField(businessplan.FieldObjectKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(businessplan.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(businessplan.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(businessplan.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(businessplan.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(businessplan.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(businessplan.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(businessplan.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatestJobID(); ok {
		_spec.SetField(businessplan.FieldLatestJobID, field.TypeUUID, value)
	}
	if _u.mutation.LatestJobIDCleared() {
		_spec.ClearField(businessplan.FieldLatestJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(businessplan.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(businessplan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   businessplan.JobsTable,
			Columns: []string{businessplan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   businessplan.JobsTable,
			Columns: []string{businessplan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   businessplan.JobsTable,
			Columns: []string{businessplan.JobsColumn},
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
	if _u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   businessplan.ReportsTable,
			Columns: []string{businessplan.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   businessplan.ReportsTable,
			Columns: []string{businessplan.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   businessplan.ReportsTable,
			Columns: []string{businessplan.ReportsColumn},
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
			err = &NotFoundError{businessplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BusinessPlanUpdateOne is the builder for updating a single BusinessPlan entity.
type BusinessPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BusinessPlanMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *BusinessPlanUpdateOne) SetOwnerID(v uuid.UUID) *BusinessPlanUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *BusinessPlanUpdateOne) SetNillableOwnerID(v *uuid.UUID) *BusinessPlanUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *BusinessPlanUpdateOne) SetTitle(v string) *BusinessPlanUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *BusinessPlanUpdateOne) SetNillableTitle(v *string) *BusinessPlanUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetObjectKey sets the "object_key" field.
func (_u *BusinessPlanUpdateOne) SetObjectKey(v string) *BusinessPlanUpdateOne {
	_u.mutation.SetObjectKey(v)
	return _u
}

// SetNillableObjectKey sets the "object_key" field if the given value is not nil.
func (_u *BusinessPlanUpdateOne) SetNillableObjectKey(v *string) *BusinessPlanUpdateOne {
	if v != nil {
		_u.SetObjectKey(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *BusinessPlanUpdateOne) SetContentHash(v string) *BusinessPlanUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *BusinessPlanUpdateOne) SetNillableContentHash(v *string) *BusinessPlanUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *BusinessPlanUpdateOne) ClearContentHash() *BusinessPlanUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *BusinessPlanUpdateOne) SetPageCount(v int) *BusinessPlanUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *BusinessPlanUpdateOne) SetNillablePageCount(v *int) *BusinessPlanUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *BusinessPlanUpdateOne) AddPageCount(v int) *BusinessPlanUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *BusinessPlanUpdateOne) SetSizeBytes(v int) *BusinessPlanUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *BusinessPlanUpdateOne) SetNillableSizeBytes(v *int) *BusinessPlanUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *BusinessPlanUpdateOne) AddSizeBytes(v int) *BusinessPlanUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BusinessPlanUpdateOne) SetStatus(v string) *BusinessPlanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BusinessPlanUpdateOne) SetNillableStatus(v *string) *BusinessPlanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLatestJobID sets the "latest_job_id" field.
func (_u *BusinessPlanUpdateOne) SetLatestJobID(v uuid.UUID) *BusinessPlanUpdateOne {
	_u.mutation.SetLatestJobID(v)
	return _u
}

// SetNillableLatestJobID sets the "latest_job_id" field if the given value is not nil.
func (_u *BusinessPlanUpdateOne) SetNillableLatestJobID(v *uuid.UUID) *BusinessPlanUpdateOne {
	if v != nil {
		_u.SetLatestJobID(*v)
	}
	return _u
}

// ClearLatestJobID clears the value of the "latest_job_id" field.
func (_u *BusinessPlanUpdateOne) ClearLatestJobID() *BusinessPlanUpdateOne {
	_u.mutation.ClearLatestJobID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BusinessPlanUpdateOne) SetCreatedAt(v time.Time) *BusinessPlanUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BusinessPlanUpdateOne) SetNillableCreatedAt(v *time.Time) *BusinessPlanUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BusinessPlanUpdateOne) SetUpdatedAt(v time.Time) *BusinessPlanUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the EvaluationJob entity by IDs.
func (_u *BusinessPlanUpdateOne) AddJobIDs(ids ...uuid.UUID) *BusinessPlanUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the EvaluationJob entity.
func (_u *BusinessPlanUpdateOne) AddJobs(v ...*EvaluationJob) *BusinessPlanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the EvaluationReport entity by IDs.
func (_u *BusinessPlanUpdateOne) AddReportIDs(ids ...uuid.UUID) *BusinessPlanUpdateOne {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the EvaluationReport entity.
func (_u *BusinessPlanUpdateOne) AddReports(v ...*EvaluationReport) *BusinessPlanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// Mutation returns the BusinessPlanMutation object of the builder.
func (_u *BusinessPlanUpdateOne) Mutation() *BusinessPlanMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the EvaluationJob entity.
func (_u *BusinessPlanUpdateOne) ClearJobs() *BusinessPlanUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to EvaluationJob entities by IDs.
func (_u *BusinessPlanUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *BusinessPlanUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to EvaluationJob entities.
func (_u *BusinessPlanUpdateOne) RemoveJobs(v ...*EvaluationJob) *BusinessPlanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearReports clears all "reports" edges to the EvaluationReport entity.
func (_u *BusinessPlanUpdateOne) ClearReports() *BusinessPlanUpdateOne {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to EvaluationReport entities by IDs.
func (_u *BusinessPlanUpdateOne) RemoveReportIDs(ids ...uuid.UUID) *BusinessPlanUpdateOne {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to EvaluationReport entities.
func (_u *BusinessPlanUpdateOne) RemoveReports(v ...*EvaluationReport) *BusinessPlanUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// Where appends a list predicates to the BusinessPlanUpdate builder.
func (_u *BusinessPlanUpdateOne) Where(ps ...predicate.BusinessPlan) *BusinessPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BusinessPlanUpdateOne) Select(field string, fields ...string) *BusinessPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BusinessPlan entity.
func (_u *BusinessPlanUpdateOne) Save(ctx context.Context) (*BusinessPlan, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BusinessPlanUpdateOne) SaveX(ctx context.Context) *BusinessPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BusinessPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BusinessPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BusinessPlanUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := businessplan.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BusinessPlanUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := businessplan.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "BusinessPlan.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ObjectKey(); ok {
		if err := businessplan.ObjectKeyValidator(v); err != nil {
			return &ValidationError{Name: "object_key", err: fmt.Errorf(`ent: validator failed for field "BusinessPlan.object_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := businessplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BusinessPlan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BusinessPlanUpdateOne) sqlSave(ctx context.Context) (_node *BusinessPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(businessplan.Table, businessplan.Columns, sqlgraph.NewFieldSpec(businessplan.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BusinessPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, businessplan.FieldID)
		for _, f := range fields {
			if !businessplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != businessplan.FieldID {
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
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(businessplan.FieldOwnerID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(businessplan.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectKey(); ok {
		_spec.SetField(businessplan.FieldObjectKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(businessplan.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(businessplan.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(businessplan.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(businessplan.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(businessplan.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(businessplan.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(businessplan.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatestJobID(); ok {
		_spec.SetField(businessplan.FieldLatestJobID, field.TypeUUID, value)
	}
	if _u.mutation.LatestJobIDCleared() {
		_spec.ClearField(businessplan.FieldLatestJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(businessplan.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(businessplan.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   businessplan.JobsTable,
			Columns: []string{businessplan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   businessplan.JobsTable,
			Columns: []string{businessplan.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   businessplan.JobsTable,
			Columns: []string{businessplan.JobsColumn},
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
	if _u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   businessplan.ReportsTable,
			Columns: []string{businessplan.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   businessplan.ReportsTable,
			Columns: []string{businessplan.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   businessplan.ReportsTable,
			Columns: []string{businessplan.ReportsColumn},
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
	_node = &BusinessPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{businessplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
