package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/db/ent/schema/utils"
	"github.com/google/uuid"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define a composite unique index
		field.UUID("farm_id", uuid.UUID{}),
		field.String("file_url").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.String("doc_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentTypes...)),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Int64("file_size").NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE farm
		edge.From("farm", Farm.Type).
			Ref("documents").
			Field("farm_id").
			Required().
			Unique(),
		// ONE document -> MANY jobs / results / review edits
		edge.To("jobs", ProcessingJob.Type),
		edge.To("results", ExtractionResult.Type),
		edge.To("review_edits", ReviewEdit.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("farm_id", "content_hash").Unique(),
		index.Fields("farm_id", "uploaded_at"),
	}
}
