// Code generated by ent, DO NOT EDIT.

package evaluationreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the evaluationreport type in the database.
	Label = "evaluation_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldTotalScore holds the string denoting the total_score field in the database.
	FieldTotalScore = "total_score"
	// FieldOverallAssessment holds the string denoting the overall_assessment field in the database.
	FieldOverallAssessment = "overall_assessment"
	// FieldRiskOfRejection holds the string denoting the risk_of_rejection field in the database.
	FieldRiskOfRejection = "risk_of_rejection"
	// FieldFailedCategories holds the string denoting the failed_categories field in the database.
	FieldFailedCategories = "failed_categories"
	// FieldCategoryResults holds the string denoting the category_results field in the database.
	FieldCategoryResults = "category_results"
	// FieldSectionScores holds the string denoting the section_scores field in the database.
	FieldSectionScores = "section_scores"
	// FieldStrengths holds the string denoting the strengths field in the database.
	FieldStrengths = "strengths"
	// FieldWeaknesses holds the string denoting the weaknesses field in the database.
	FieldWeaknesses = "weaknesses"
	// FieldImprovementSuggestions holds the string denoting the improvement_suggestions field in the database.
	FieldImprovementSuggestions = "improvement_suggestions"
	// FieldRawReport holds the string denoting the raw_report field in the database.
	FieldRawReport = "raw_report"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePlan holds the string denoting the plan edge name in mutations.
	EdgePlan = "plan"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the evaluationreport in the database.
	Table = "evaluation_report"
	// PlanTable is the table that holds the plan relation/edge.
	PlanTable = "evaluation_report"
	// PlanInverseTable is the table name for the BusinessPlan entity.
	// It exists in this package in order to avoid circular dependency with the "businessplan" package.
	PlanInverseTable = "business_plan"
	// PlanColumn is the table column denoting the plan relation/edge.
	PlanColumn = "plan_id"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "evaluation_report"
	// JobInverseTable is the table name for the EvaluationJob entity.
	// It exists in this package in order to avoid circular dependency with the "evaluationjob" package.
	JobInverseTable = "evaluation_job"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for evaluationreport fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldPlanID,
	FieldTotalScore,
	FieldOverallAssessment,
	FieldRiskOfRejection,
	FieldFailedCategories,
	FieldCategoryResults,
	FieldSectionScores,
	FieldStrengths,
	FieldWeaknesses,
	FieldImprovementSuggestions,
	FieldRawReport,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// OverallAssessmentValidator is a validator for the "overall_assessment" field. It is called by the builders before save.
	OverallAssessmentValidator func(string) error
	// DefaultRiskOfRejection holds the default value on creation for the "risk_of_rejection" field.
	DefaultRiskOfRejection bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the EvaluationReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByTotalScore orders the results by the total_score field.
func ByTotalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScore, opts...).ToFunc()
}

// ByOverallAssessment orders the results by the overall_assessment field.
func ByOverallAssessment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallAssessment, opts...).ToFunc()
}

// ByRiskOfRejection orders the results by the risk_of_rejection field.
func ByRiskOfRejection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskOfRejection, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPlanField orders the results by plan field.
func ByPlanField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlanStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newPlanStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlanInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PlanTable, PlanColumn),
	)
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
	)
}
