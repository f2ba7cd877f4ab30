package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/seojun-park/planscore/constants"
	"github.com/seojun-park/planscore/db/ent/schema/utils"

	"github.com/google/uuid"
)

type EvaluationReport struct{ ent.Schema }

func (EvaluationReport) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "evaluation_report"},
	}
}

func (EvaluationReport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("job_id", uuid.UUID{}),
		field.UUID("plan_id", uuid.UUID{}),
		field.Float("total_score").
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.String("overall_assessment").NotEmpty().
			Validate(utils.EnumValidator(constants.Assessments...)),
		field.Bool("risk_of_rejection").Default(false),
		field.JSON("failed_categories", []string{}).Optional(),
		// recomputed per-category outcomes, keyed by category name
		field.JSON("category_results", json.RawMessage{}),
		field.JSON("section_scores", json.RawMessage{}).Optional(),
		field.JSON("strengths", []string{}).Optional(),
		field.JSON("weaknesses", []string{}).Optional(),
		field.JSON("improvement_suggestions", []string{}).Optional(),
		// schema-validated model output, kept verbatim for audit
		field.JSON("raw_report", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (EvaluationReport) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", BusinessPlan.Type).
			Ref("reports").
			Field("plan_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("job", EvaluationJob.Type).
			Ref("report").
			Field("job_id").
			Unique().
			Required().
			// a report never outlives its job row
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (EvaluationReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id").Unique(),
		index.Fields("plan_id", "created_at"),
	}
}
