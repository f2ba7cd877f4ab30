// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BusinessPlan is the predicate function for businessplan builders.
type BusinessPlan func(*sql.Selector)

// EvaluationJob is the predicate function for evaluationjob builders.
type EvaluationJob func(*sql.Selector)

// EvaluationReport is the predicate function for evaluationreport builders.
type EvaluationReport func(*sql.Selector)
