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

// FormState is the reconciled destination form for one farm: a flat field
// map plus {field}_source / {field}_sync_timestamp shadow keys.
type FormState struct{ ent.Schema }

func (FormState) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "form_states"},
	}
}

func (FormState) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("farm_id", uuid.UUID{}).Unique(),
		field.JSON("data", json.RawMessage{}).Optional(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (FormState) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("farm", Farm.Type).
			Ref("form_state").
			Field("farm_id").
			Unique().
			Required(),
	}
}

func (FormState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("farm_id").Unique(),
	}
}
