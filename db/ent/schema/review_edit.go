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

// ReviewEdit is one human correction: a single field value pinned at
// confidence 1.0 for a document. Deleted only when the parent extraction is
// explicitly rejected.
type ReviewEdit struct{ ent.Schema }

func (ReviewEdit) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "review_edits"},
	}
}

func (ReviewEdit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("farm_id", uuid.UUID{}),
		field.String("field_name").NotEmpty(),
		// JSON so numeric values survive the round trip untouched
		field.JSON("value", json.RawMessage{}),
		field.Time("edited_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ReviewEdit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("review_edits").
			Field("document_id").
			Unique().
			Required(),
		edge.From("farm", Farm.Type).
			Ref("review_edits").
			Field("farm_id").
			Unique().
			Required(),
	}
}

func (ReviewEdit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "field_name").Unique(),
		index.Fields("farm_id"),
	}
}
