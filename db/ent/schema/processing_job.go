package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/db/ent/schema/utils"
	"github.com/google/uuid"
)

type ProcessingJob struct{ ent.Schema }

func (ProcessingJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_jobs"},
	}
}

func (ProcessingJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("farm_id", uuid.UUID{}),
		field.String("file_url").NotEmpty(),
		field.String("file_name").NotEmpty(),
		field.String("status").
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("priority").
			Default(string(constants.JobPriorityNormal)).
			Validate(utils.EnumValidator(constants.JobPriorities...)),
		field.Int("retry_attempt").Default(0).NonNegative(),
		field.Int("max_retries").Default(3).NonNegative(),
		field.Time("scheduled_for").Default(time.Now),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Int64("processing_time_ms").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.JSON("metadata", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ProcessingJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("jobs").
			Field("document_id").
			Unique().
			Required(),
		edge.From("farm", Farm.Type).
			Ref("jobs").
			Field("farm_id").
			Unique().
			Required(),
	}
}

func (ProcessingJob) Indexes() []ent.Index {
	return []ent.Index{
		// claim scan: status + schedule window, ordered by priority then age
		index.Fields("status", "scheduled_for"),
		index.Fields("document_id"),
		index.Fields("farm_id", "created_at"),
	}
}
