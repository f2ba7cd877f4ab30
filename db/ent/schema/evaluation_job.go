package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/seojun-park/planscore/constants"
	"github.com/seojun-park/planscore/db/ent/schema/utils"

	"github.com/google/uuid"
)

type EvaluationJob struct{ ent.Schema }

func (EvaluationJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "evaluation_job"},
	}
}

func (EvaluationJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("plan_id", uuid.UUID{}),
		field.String("status").
			Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("error_kind").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.String("model_name").Optional().Nillable(),
		field.Int("sections_analyzed").Default(0),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (EvaluationJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", BusinessPlan.Type).
			Ref("jobs").
			Field("plan_id").
			Unique().
			Required().
			// deleting a plan removes its evaluation history
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("report", EvaluationReport.Type).
			Unique(),
	}
}

func (EvaluationJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id", "status", "started_at"),
		index.Fields("status"),
	}
}
