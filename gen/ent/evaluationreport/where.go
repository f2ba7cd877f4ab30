// Code generated by ent, DO NOT EDIT.

package evaluationreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seojun-park/planscore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldJobID, v))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldPlanID, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldTotalScore, v))
}

// OverallAssessment applies equality check predicate on the "overall_assessment" field. It's identical to OverallAssessmentEQ.
func OverallAssessment(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldOverallAssessment, v))
}

// RiskOfRejection applies equality check predicate on the "risk_of_rejection" field. It's identical to RiskOfRejectionEQ.
func RiskOfRejection(v bool) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldRiskOfRejection, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldJobID, vs...))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...uuid.UUID) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldPlanID, vs...))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v float64) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldTotalScore, v))
}

// OverallAssessmentEQ applies the EQ predicate on the "overall_assessment" field.
func OverallAssessmentEQ(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldOverallAssessment, v))
}

// OverallAssessmentNEQ applies the NEQ predicate on the "overall_assessment" field.
func OverallAssessmentNEQ(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldOverallAssessment, v))
}

// OverallAssessmentIn applies the In predicate on the "overall_assessment" field.
func OverallAssessmentIn(vs ...string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldOverallAssessment, vs...))
}

// OverallAssessmentNotIn applies the NotIn predicate on the "overall_assessment" field.
func OverallAssessmentNotIn(vs ...string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldOverallAssessment, vs...))
}

// OverallAssessmentGT applies the GT predicate on the "overall_assessment" field.
func OverallAssessmentGT(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldOverallAssessment, v))
}

// OverallAssessmentGTE applies the GTE predicate on the "overall_assessment" field.
func OverallAssessmentGTE(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldOverallAssessment, v))
}

// OverallAssessmentLT applies the LT predicate on the "overall_assessment" field.
func OverallAssessmentLT(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldOverallAssessment, v))
}

// OverallAssessmentLTE applies the LTE predicate on the "overall_assessment" field.
func OverallAssessmentLTE(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldOverallAssessment, v))
}

// OverallAssessmentContains applies the Contains predicate on the "overall_assessment" field.
func OverallAssessmentContains(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldContains(FieldOverallAssessment, v))
}

// OverallAssessmentHasPrefix applies the HasPrefix predicate on the "overall_assessment" field.
func OverallAssessmentHasPrefix(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldHasPrefix(FieldOverallAssessment, v))
}

// OverallAssessmentHasSuffix applies the HasSuffix predicate on the "overall_assessment" field.
func OverallAssessmentHasSuffix(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldHasSuffix(FieldOverallAssessment, v))
}

// OverallAssessmentEqualFold applies the EqualFold predicate on the "overall_assessment" field.
func OverallAssessmentEqualFold(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEqualFold(FieldOverallAssessment, v))
}

// OverallAssessmentContainsFold applies the ContainsFold predicate on the "overall_assessment" field.
func OverallAssessmentContainsFold(v string) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldContainsFold(FieldOverallAssessment, v))
}

// RiskOfRejectionEQ applies the EQ predicate on the "risk_of_rejection" field.
func RiskOfRejectionEQ(v bool) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldRiskOfRejection, v))
}

// RiskOfRejectionNEQ applies the NEQ predicate on the "risk_of_rejection" field.
func RiskOfRejectionNEQ(v bool) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldRiskOfRejection, v))
}

// FailedCategoriesIsNil applies the IsNil predicate on the "failed_categories" field.
func FailedCategoriesIsNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIsNull(FieldFailedCategories))
}

// FailedCategoriesNotNil applies the NotNil predicate on the "failed_categories" field.
func FailedCategoriesNotNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotNull(FieldFailedCategories))
}

// SectionScoresIsNil applies the IsNil predicate on the "section_scores" field.
func SectionScoresIsNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIsNull(FieldSectionScores))
}

// SectionScoresNotNil applies the NotNil predicate on the "section_scores" field.
func SectionScoresNotNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotNull(FieldSectionScores))
}

// StrengthsIsNil applies the IsNil predicate on the "strengths" field.
func StrengthsIsNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIsNull(FieldStrengths))
}

// StrengthsNotNil applies the NotNil predicate on the "strengths" field.
func StrengthsNotNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotNull(FieldStrengths))
}

// WeaknessesIsNil applies the IsNil predicate on the "weaknesses" field.
func WeaknessesIsNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIsNull(FieldWeaknesses))
}

// WeaknessesNotNil applies the NotNil predicate on the "weaknesses" field.
func WeaknessesNotNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotNull(FieldWeaknesses))
}

// ImprovementSuggestionsIsNil applies the IsNil predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsIsNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIsNull(FieldImprovementSuggestions))
}

// ImprovementSuggestionsNotNil applies the NotNil predicate on the "improvement_suggestions" field.
func ImprovementSuggestionsNotNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotNull(FieldImprovementSuggestions))
}

// RawReportIsNil applies the IsNil predicate on the "raw_report" field.
func RawReportIsNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIsNull(FieldRawReport))
}

// RawReportNotNil applies the NotNil predicate on the "raw_report" field.
func RawReportNotNil() predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotNull(FieldRawReport))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPlan applies the HasEdge predicate on the "plan" edge.
func HasPlan() predicate.EvaluationReport {
	return predicate.EvaluationReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PlanTable, PlanColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPlanWith applies the HasEdge predicate on the "plan" edge with a given conditions (other predicates).
func HasPlanWith(preds ...predicate.BusinessPlan) predicate.EvaluationReport {
	return predicate.EvaluationReport(func(s *sql.Selector) {
		step := newPlanStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.EvaluationReport {
	return predicate.EvaluationReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.EvaluationJob) predicate.EvaluationReport {
	return predicate.EvaluationReport(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationReport) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationReport) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationReport) predicate.EvaluationReport {
	return predicate.EvaluationReport(sql.NotPredicates(p))
}
