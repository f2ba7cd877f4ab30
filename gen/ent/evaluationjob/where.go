// Code generated by ent, DO NOT EDIT.

package evaluationjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/seojun-park/planscore/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLTE(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v uuid.UUID) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldPlanID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldStatus, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldModelName, v))
}

// SectionsAnalyzed applies equality check predicate on the "sections_analyzed" field. It's identical to SectionsAnalyzedEQ.
func SectionsAnalyzed(v int) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldSectionsAnalyzed, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldFinishedAt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v uuid.UUID) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v uuid.UUID) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...uuid.UUID) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...uuid.UUID) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNotIn(FieldPlanID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldContainsFold(FieldErrorKind, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameIsNil applies the IsNil predicate on the "model_name" field.
func ModelNameIsNil() predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldIsNull(FieldModelName))
}

// ModelNameNotNil applies the NotNil predicate on the "model_name" field.
func ModelNameNotNil() predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNotNull(FieldModelName))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldContainsFold(FieldModelName, v))
}

// SectionsAnalyzedEQ applies the EQ predicate on the "sections_analyzed" field.
func SectionsAnalyzedEQ(v int) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldSectionsAnalyzed, v))
}

// SectionsAnalyzedNEQ applies the NEQ predicate on the "sections_analyzed" field.
func SectionsAnalyzedNEQ(v int) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNEQ(FieldSectionsAnalyzed, v))
}

// SectionsAnalyzedIn applies the In predicate on the "sections_analyzed" field.
func SectionsAnalyzedIn(vs ...int) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldIn(FieldSectionsAnalyzed, vs...))
}

// SectionsAnalyzedNotIn applies the NotIn predicate on the "sections_analyzed" field.
func SectionsAnalyzedNotIn(vs ...int) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNotIn(FieldSectionsAnalyzed, vs...))
}

// SectionsAnalyzedGT applies the GT predicate on the "sections_analyzed" field.
func SectionsAnalyzedGT(v int) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGT(FieldSectionsAnalyzed, v))
}

// SectionsAnalyzedGTE applies the GTE predicate on the "sections_analyzed" field.
func SectionsAnalyzedGTE(v int) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGTE(FieldSectionsAnalyzed, v))
}

// SectionsAnalyzedLT applies the LT predicate on the "sections_analyzed" field.
func SectionsAnalyzedLT(v int) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLT(FieldSectionsAnalyzed, v))
}

// SectionsAnalyzedLTE applies the LTE predicate on the "sections_analyzed" field.
func SectionsAnalyzedLTE(v int) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLTE(FieldSectionsAnalyzed, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.FieldNotNull(FieldFinishedAt))
}

// HasPlan applies the HasEdge predicate on the "plan" edge.
func HasPlan() predicate.EvaluationJob {
	return predicate.EvaluationJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PlanTable, PlanColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPlanWith applies the HasEdge predicate on the "plan" edge with a given conditions (other predicates).
func HasPlanWith(preds ...predicate.BusinessPlan) predicate.EvaluationJob {
	return predicate.EvaluationJob(func(s *sql.Selector) {
		step := newPlanStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.EvaluationJob {
	return predicate.EvaluationJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.EvaluationReport) predicate.EvaluationJob {
	return predicate.EvaluationJob(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationJob) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationJob) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationJob) predicate.EvaluationJob {
	return predicate.EvaluationJob(sql.NotPredicates(p))
}
