// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/seojun-park/planscore/gen/ent/businessplan"
	"github.com/seojun-park/planscore/gen/ent/evaluationjob"
	"github.com/seojun-park/planscore/gen/ent/evaluationreport"
)

// EvaluationJobCreate is the builder for creating a EvaluationJob entity.
type EvaluationJobCreate struct {
	config
	mutation *EvaluationJobMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *EvaluationJobCreate) SetPlanID(v uuid.UUID) *EvaluationJobCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EvaluationJobCreate) SetStatus(v string) *EvaluationJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EvaluationJobCreate) SetNillableStatus(v *string) *EvaluationJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *EvaluationJobCreate) SetErrorKind(v string) *EvaluationJobCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *EvaluationJobCreate) SetNillableErrorKind(v *string) *EvaluationJobCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *EvaluationJobCreate) SetErrorMessage(v string) *EvaluationJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *EvaluationJobCreate) SetNillableErrorMessage(v *string) *EvaluationJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *EvaluationJobCreate) SetModelName(v string) *EvaluationJobCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *EvaluationJobCreate) SetNillableModelName(v *string) *EvaluationJobCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetSectionsAnalyzed sets the "sections_analyzed" field.
func (_c *EvaluationJobCreate) SetSectionsAnalyzed(v int) *EvaluationJobCreate {
	_c.mutation.SetSectionsAnalyzed(v)
	return _c
}

// SetNillableSectionsAnalyzed sets the "sections_analyzed" field if the given value is not nil.
func (_c *EvaluationJobCreate) SetNillableSectionsAnalyzed(v *int) *EvaluationJobCreate {
	if v != nil {
		_c.SetSectionsAnalyzed(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *EvaluationJobCreate) SetStartedAt(v time.Time) *EvaluationJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *EvaluationJobCreate) SetNillableStartedAt(v *time.Time) *EvaluationJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *EvaluationJobCreate) SetFinishedAt(v time.Time) *EvaluationJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *EvaluationJobCreate) SetNillableFinishedAt(v *time.Time) *EvaluationJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvaluationJobCreate) SetID(v uuid.UUID) *EvaluationJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EvaluationJobCreate) SetNillableID(v *uuid.UUID) *EvaluationJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPlan sets the "plan" edge to the BusinessPlan entity.
func (_c *EvaluationJobCreate) SetPlan(v *BusinessPlan) *EvaluationJobCreate {
	return _c.SetPlanID(v.ID)
}

// SetReportID sets the "report" edge to the EvaluationReport entity by ID.
func (_c *EvaluationJobCreate) SetReportID(id uuid.UUID) *EvaluationJobCreate {
	_c.mutation.SetReportID(id)
	return _c
}

// SetNillableReportID sets the "report" edge to the EvaluationReport entity by ID if the given value is not nil.
func (_c *EvaluationJobCreate) SetNillableReportID(id *uuid.UUID) *EvaluationJobCreate {
	if id != nil {
		_c = _c.SetReportID(*id)
	}
	return _c
}

// SetReport sets the "report" edge to the EvaluationReport entity.
func (_c *EvaluationJobCreate) SetReport(v *EvaluationReport) *EvaluationJobCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the EvaluationJobMutation object of the builder.
func (_c *EvaluationJobCreate) Mutation() *EvaluationJobMutation {
	return _c.mutation
}

// Save creates the EvaluationJob in the database.
func (_c *EvaluationJobCreate) Save(ctx context.Context) (*EvaluationJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationJobCreate) SaveX(ctx context.Context) *EvaluationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := evaluationjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SectionsAnalyzed(); !ok {
		v := evaluationjob.DefaultSectionsAnalyzed
		_c.mutation.SetSectionsAnalyzed(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := evaluationjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := evaluationjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationJobCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "EvaluationJob.plan_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EvaluationJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := evaluationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EvaluationJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SectionsAnalyzed(); !ok {
		return &ValidationError{Name: "sections_analyzed", err: errors.New(`ent: missing required field "EvaluationJob.sections_analyzed"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "EvaluationJob.started_at"`)}
	}
	if len(_c.mutation.PlanIDs()) == 0 {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required edge "EvaluationJob.plan"`)}
	}
	return nil
}

func (_c *EvaluationJobCreate) sqlSave(ctx context.Context) (*EvaluationJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationJobCreate) createSpec() (*EvaluationJob, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationjob.Table, sqlgraph.NewFieldSpec(evaluationjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(evaluationjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(evaluationjob.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(evaluationjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(evaluationjob.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.SectionsAnalyzed(); ok {
		_spec.SetField(evaluationjob.FieldSectionsAnalyzed, field.TypeInt, value)
		_node.SectionsAnalyzed = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(evaluationjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(evaluationjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.PlanIDs(); len(nodes) > 0 {
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
		_node.PlanID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EvaluationJobCreateBulk is the builder for creating many EvaluationJob entities in bulk.
type EvaluationJobCreateBulk struct {
	config
	err      error
	builders []*EvaluationJobCreate
}

// Save creates the EvaluationJob entities in the database.
func (_c *EvaluationJobCreateBulk) Save(ctx context.Context) ([]*EvaluationJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EvaluationJobCreateBulk) SaveX(ctx context.Context) []*EvaluationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
