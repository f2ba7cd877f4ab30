// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
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

// EvaluationReportCreate is the builder for creating a EvaluationReport entity.
type EvaluationReportCreate struct {
	config
	mutation *EvaluationReportMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *EvaluationReportCreate) SetJobID(v uuid.UUID) *EvaluationReportCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetPlanID sets the "plan_id" field.
func (_c *EvaluationReportCreate) SetPlanID(v uuid.UUID) *EvaluationReportCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *EvaluationReportCreate) SetTotalScore(v float64) *EvaluationReportCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetOverallAssessment sets the "overall_assessment" field.
func (_c *EvaluationReportCreate) SetOverallAssessment(v string) *EvaluationReportCreate {
	_c.mutation.SetOverallAssessment(v)
	return _c
}

// SetRiskOfRejection sets the "risk_of_rejection" field.
func (_c *EvaluationReportCreate) SetRiskOfRejection(v bool) *EvaluationReportCreate {
	_c.mutation.SetRiskOfRejection(v)
	return _c
}

// SetNillableRiskOfRejection sets the "risk_of_rejection" field if the given value is not nil.
func (_c *EvaluationReportCreate) SetNillableRiskOfRejection(v *bool) *EvaluationReportCreate {
	if v != nil {
		_c.SetRiskOfRejection(*v)
	}
	return _c
}

// SetFailedCategories sets the "failed_categories" field.
func (_c *EvaluationReportCreate) SetFailedCategories(v []string) *EvaluationReportCreate {
	_c.mutation.SetFailedCategories(v)
	return _c
}

// SetCategoryResults sets the "category_results" field.
func (_c *EvaluationReportCreate) SetCategoryResults(v json.RawMessage) *EvaluationReportCreate {
	_c.mutation.SetCategoryResults(v)
	return _c
}

// SetSectionScores sets the "section_scores" field.
func (_c *EvaluationReportCreate) SetSectionScores(v json.RawMessage) *EvaluationReportCreate {
	_c.mutation.SetSectionScores(v)
	return _c
}

// SetStrengths sets the "strengths" field.
func (_c *EvaluationReportCreate) SetStrengths(v []string) *EvaluationReportCreate {
	_c.mutation.SetStrengths(v)
	return _c
}

// SetWeaknesses sets the "weaknesses" field.
func (_c *EvaluationReportCreate) SetWeaknesses(v []string) *EvaluationReportCreate {
	_c.mutation.SetWeaknesses(v)
	return _c
}

// SetImprovementSuggestions sets the "improvement_suggestions" field.
func (_c *EvaluationReportCreate) SetImprovementSuggestions(v []string) *EvaluationReportCreate {
	_c.mutation.SetImprovementSuggestions(v)
	return _c
}

// SetRawReport sets the "raw_report" field.
func (_c *EvaluationReportCreate) SetRawReport(v json.RawMessage) *EvaluationReportCreate {
	_c.mutation.SetRawReport(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvaluationReportCreate) SetCreatedAt(v time.Time) *EvaluationReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvaluationReportCreate) SetNillableCreatedAt(v *time.Time) *EvaluationReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvaluationReportCreate) SetID(v uuid.UUID) *EvaluationReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EvaluationReportCreate) SetNillableID(v *uuid.UUID) *EvaluationReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPlan sets the "plan" edge to the BusinessPlan entity.
func (_c *EvaluationReportCreate) SetPlan(v *BusinessPlan) *EvaluationReportCreate {
	return _c.SetPlanID(v.ID)
}

// SetJob sets the "job" edge to the EvaluationJob entity.
func (_c *EvaluationReportCreate) SetJob(v *EvaluationJob) *EvaluationReportCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the EvaluationReportMutation object of the builder.
func (_c *EvaluationReportCreate) Mutation() *EvaluationReportMutation {
	return _c.mutation
}

// Save creates the EvaluationReport in the database.
func (_c *EvaluationReportCreate) Save(ctx context.Context) (*EvaluationReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationReportCreate) SaveX(ctx context.Context) *EvaluationReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationReportCreate) defaults() {
	if _, ok := _c.mutation.RiskOfRejection(); !ok {
		v := evaluationreport.DefaultRiskOfRejection
		_c.mutation.SetRiskOfRejection(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evaluationreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := evaluationreport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationReportCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "EvaluationReport.job_id"`)}
	}
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "EvaluationReport.plan_id"`)}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`ent: missing required field "EvaluationReport.total_score"`)}
	}
	if _, ok := _c.mutation.OverallAssessment(); !ok {
		return &ValidationError{Name: "overall_assessment", err: errors.New(`ent: missing required field "EvaluationReport.overall_assessment"`)}
	}
	if v, ok := _c.mutation.OverallAssessment(); ok {
		if err := evaluationreport.OverallAssessmentValidator(v); err != nil {
			return &ValidationError{Name: "overall_assessment", err: fmt.Errorf(`ent: validator failed for field "EvaluationReport.overall_assessment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskOfRejection(); !ok {
		return &ValidationError{Name: "risk_of_rejection", err: errors.New(`ent: missing required field "EvaluationReport.risk_of_rejection"`)}
	}
	if _, ok := _c.mutation.CategoryResults(); !ok {
		return &ValidationError{Name: "category_results", err: errors.New(`ent: missing required field "EvaluationReport.category_results"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvaluationReport.created_at"`)}
	}
	if len(_c.mutation.PlanIDs()) == 0 {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required edge "EvaluationReport.plan"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "EvaluationReport.job"`)}
	}
	return nil
}

func (_c *EvaluationReportCreate) sqlSave(ctx context.Context) (*EvaluationReport, error) {
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

func (_c *EvaluationReportCreate) createSpec() (*EvaluationReport, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationreport.Table, sqlgraph.NewFieldSpec(evaluationreport.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(evaluationreport.FieldTotalScore, field.TypeFloat64, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.OverallAssessment(); ok {
		_spec.SetField(evaluationreport.FieldOverallAssessment, field.TypeString, value)
		_node.OverallAssessment = value
	}
	if value, ok := _c.mutation.RiskOfRejection(); ok {
		_spec.SetField(evaluationreport.FieldRiskOfRejection, field.TypeBool, value)
		_node.RiskOfRejection = value
	}
	if value, ok := _c.mutation.FailedCategories(); ok {
		_spec.SetField(evaluationreport.FieldFailedCategories, field.TypeJSON, value)
		_node.FailedCategories = value
	}
	if value, ok := _c.mutation.CategoryResults(); ok {
		_spec.SetField(evaluationreport.FieldCategoryResults, field.TypeJSON, value)
		_node.CategoryResults = value
	}
	if value, ok := _c.mutation.SectionScores(); ok {
		_spec.SetField(evaluationreport.FieldSectionScores, field.TypeJSON, value)
		_node.SectionScores = value
	}
	if value, ok := _c.mutation.Strengths(); ok {
		_spec.SetField(evaluationreport.FieldStrengths, field.TypeJSON, value)
		_node.Strengths = value
	}
	if value, ok := _c.mutation.Weaknesses(); ok {
		_spec.SetField(evaluationreport.FieldWeaknesses, field.TypeJSON, value)
		_node.Weaknesses = value
	}
	if value, ok := _c.mutation.ImprovementSuggestions(); ok {
		_spec.SetField(evaluationreport.FieldImprovementSuggestions, field.TypeJSON, value)
		_node.ImprovementSuggestions = value
	}
	if value, ok := _c.mutation.RawReport(); ok {
		_spec.SetField(evaluationreport.FieldRawReport, field.TypeJSON, value)
		_node.RawReport = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evaluationreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PlanIDs(); len(nodes) > 0 {
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
		_node.PlanID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EvaluationReportCreateBulk is the builder for creating many EvaluationReport entities in bulk.
type EvaluationReportCreateBulk struct {
	config
	err      error
	builders []*EvaluationReportCreate
}

// Save creates the EvaluationReport entities in the database.
func (_c *EvaluationReportCreateBulk) Save(ctx context.Context) ([]*EvaluationReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationReportMutation)
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
func (_c *EvaluationReportCreateBulk) SaveX(ctx context.Context) []*EvaluationReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
