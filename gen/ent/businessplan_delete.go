// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/seojun-park/planscore/gen/ent/businessplan"
	"github.com/seojun-park/planscore/gen/ent/predicate"
)

// BusinessPlanDelete is the builder for deleting a BusinessPlan entity.
type BusinessPlanDelete struct {
	config
	hooks    []Hook
	mutation *BusinessPlanMutation
}

// Where appends a list predicates to the BusinessPlanDelete builder.
func (_d *BusinessPlanDelete) Where(ps ...predicate.BusinessPlan) *BusinessPlanDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BusinessPlanDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BusinessPlanDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BusinessPlanDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(businessplan.Table, sqlgraph.NewFieldSpec(businessplan.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BusinessPlanDeleteOne is the builder for deleting a single BusinessPlan entity.
type BusinessPlanDeleteOne struct {
	_d *BusinessPlanDelete
}

// Where appends a list predicates to the BusinessPlanDelete builder.
func (_d *BusinessPlanDeleteOne) Where(ps ...predicate.BusinessPlan) *BusinessPlanDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BusinessPlanDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{businessplan.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BusinessPlanDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
