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

	"github.com/google/uuid"
)

// ExtractionResult is the sibling record a completed job writes, keyed by
// document. Failure records share the table so downstream consumers can tell
// "permanently failed" from "still pending" without reading job internals.
type ExtractionResult struct{ ent.Schema }

func (ExtractionResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_results"},
	}
}

func (ExtractionResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("farm_id", uuid.UUID{}),
		field.UUID("job_id", uuid.UUID{}).Optional().Nillable(),
		field.Bool("succeeded").Default(true),
		field.JSON("fields", json.RawMessage{}).Optional(),
		field.Float32("overall_confidence").Optional().Nillable(),
		field.Int("extracted_count").Default(0),
		field.Int("total_fields").Default(0),
		field.Bool("degraded").Default(false),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ExtractionResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("results").
			Field("document_id").
			Unique().
			Required(),
		edge.From("farm", Farm.Type).
			Ref("results").
			Field("farm_id").
			Unique().
			Required(),
	}
}

func (ExtractionResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "created_at"),
		index.Fields("farm_id", "succeeded"),
	}
}
