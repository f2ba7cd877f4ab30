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

type BusinessPlan struct{ ent.Schema }

func (BusinessPlan) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "business_plan"},
	}
}

func (BusinessPlan) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("owner_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		// key of the PDF in object storage
		field.String("object_key").NotEmpty(),
		field.String("content_hash").Optional().Nillable(),
		field.Int("page_count").Default(0),
		field.Int("size_bytes").Default(0),
		field.String("status").
			Default(string(constants.PlanStatusUploaded)).
			Validate(utils.EnumValidator(constants.PlanStatuses...)),
		field.UUID("latest_job_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (BusinessPlan) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", EvaluationJob.Type),
		edge.To("reports", EvaluationReport.Type),
	}
}

func (BusinessPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
		index.Fields("object_key"),
	}
}
