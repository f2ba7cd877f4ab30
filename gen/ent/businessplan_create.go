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

// BusinessPlanCreate is the builder for creating a BusinessPlan entity.
type BusinessPlanCreate struct {
	config
	mutation *BusinessPlanMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *BusinessPlanCreate) SetOwnerID(v uuid.UUID) *BusinessPlanCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *BusinessPlanCreate) SetTitle(v string) *BusinessPlanCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetObjectKey sets the "object_key" field.
func (_c *BusinessPlanCreate) SetObjectKey(v string) *BusinessPlanCreate {
	_c.mutation.SetObjectKey(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *BusinessPlanCreate) SetContentHash(v string) *BusinessPlanCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_c *BusinessPlanCreate) SetNillableContentHash(v *string) *BusinessPlanCreate {
	if v != nil {
		_c.SetContentHash(*v)
	}
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *BusinessPlanCreate) SetPageCount(v int) *BusinessPlanCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *BusinessPlanCreate) SetNillablePageCount(v *int) *BusinessPlanCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *BusinessPlanCreate) SetSizeBytes(v int) *BusinessPlanCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *BusinessPlanCreate) SetNillableSizeBytes(v *int) *BusinessPlanCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *BusinessPlanCreate) SetStatus(v string) *BusinessPlanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BusinessPlanCreate) SetNillableStatus(v *string) *BusinessPlanCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLatestJobID sets the "latest_job_id" field.
func (_c *BusinessPlanCreate) SetLatestJobID(v uuid.UUID) *BusinessPlanCreate {
	_c.mutation.SetLatestJobID(v)
	return _c
}

// SetNillableLatestJobID sets the "latest_job_id" field if the given value is not nil.
func (_c *BusinessPlanCreate) SetNillableLatestJobID(v *uuid.UUID) *BusinessPlanCreate {
	if v != nil {
		_c.SetLatestJobID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BusinessPlanCreate) SetCreatedAt(v time.Time) *BusinessPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BusinessPlanCreate) SetNillableCreatedAt(v *time.Time) *BusinessPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BusinessPlanCreate) SetUpdatedAt(v time.Time) *BusinessPlanCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BusinessPlanCreate) SetNillableUpdatedAt(v *time.Time) *BusinessPlanCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BusinessPlanCreate) SetID(v uuid.UUID) *BusinessPlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BusinessPlanCreate) SetNillableID(v *uuid.UUID) *BusinessPlanCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddJobIDs adds the "jobs" edge to the EvaluationJob entity by IDs.
func (_c *BusinessPlanCreate) AddJobIDs(ids ...uuid.UUID) *BusinessPlanCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the EvaluationJob entity.
func (_c *BusinessPlanCreate) AddJobs(v ...*EvaluationJob) *BusinessPlanCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the EvaluationReport entity by IDs.
func (_c *BusinessPlanCreate) AddReportIDs(ids ...uuid.UUID) *BusinessPlanCreate {
	_c.mutation.AddReportIDs(ids...)
	return _c
}

// AddReports adds the "reports" edges to the EvaluationReport entity.
func (_c *BusinessPlanCreate) AddReports(v ...*EvaluationReport) *BusinessPlanCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReportIDs(ids...)
}

// Mutation returns the BusinessPlanMutation object of the builder.
func (_c *BusinessPlanCreate) Mutation() *BusinessPlanMutation {
	return _c.mutation
}

// Save creates the BusinessPlan in the database.
func (_c *BusinessPlanCreate) Save(ctx context.Context) (*BusinessPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BusinessPlanCreate) SaveX(ctx context.Context) *BusinessPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BusinessPlanCreate) defaults() {
	if _, ok := _c.mutation.PageCount(); !ok {
		v := businessplan.DefaultPageCount
		_c.mutation.SetPageCount(v)
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		v := businessplan.DefaultSizeBytes
		_c.mutation.SetSizeBytes(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := businessplan.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := businessplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := businessplan.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := businessplan.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BusinessPlanCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "BusinessPlan.owner_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "BusinessPlan.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := businessplan.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "BusinessPlan.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectKey(); !ok {
		return &ValidationError{Name: "object_key", err: errors.New(`ent: missing required field "BusinessPlan.object_key"`)}
	}
	if v, ok := _c.mutation.ObjectKey(); ok {
		if err := businessplan.ObjectKeyValidator(v); err != nil {
			return &ValidationError{Name: "object_key", err: fmt.Errorf(`ent: validator failed for field "BusinessPlan.object_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "BusinessPlan.page_count"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "BusinessPlan.size_bytes"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BusinessPlan.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := businessplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BusinessPlan.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BusinessPlan.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BusinessPlan.updated_at"`)}
	}
	return nil
}

func (_c *BusinessPlanCreate) sqlSave(ctx context.Context) (*BusinessPlan, error) {
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

func (_c *BusinessPlanCreate) createSpec() (*BusinessPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &BusinessPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(businessplan.Table, sqlgraph.NewFieldSpec(businessplan.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(businessplan.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(businessplan.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ObjectKey(); ok {
		_spec.SetField(businessplan.FieldObjectKey, field.TypeString, value)
		_node.ObjectKey = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(businessplan.FieldContentHash, field.TypeString, value)
		_node.ContentHash = &value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(businessplan.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(businessplan.FieldSizeBytes, field.TypeInt, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(businessplan.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LatestJobID(); ok {
		_spec.SetField(businessplan.FieldLatestJobID, field.TypeUUID, value)
		_node.LatestJobID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(businessplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(businessplan.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BusinessPlanCreateBulk is the builder for creating many BusinessPlan entities in bulk.
type BusinessPlanCreateBulk struct {
	config
	err      error
	builders []*BusinessPlanCreate
}

// Save creates the BusinessPlan entities in the database.
func (_c *BusinessPlanCreateBulk) Save(ctx context.Context) ([]*BusinessPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BusinessPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BusinessPlanMutation)
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
func (_c *BusinessPlanCreateBulk) SaveX(ctx context.Context) []*BusinessPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BusinessPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BusinessPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
