package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// PortalAdapter maps a named portal integration to an automation script.
// Adapters are never deleted in normal operation, only deactivated.
type PortalAdapter struct{ ent.Schema }

func (PortalAdapter) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "portal_adapter"},
	}
}

func (PortalAdapter) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty().Unique(),
		field.String("script_identifier").NotEmpty().Unique(),
		field.String("description").Optional(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (PortalAdapter) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", ExtractionJob.Type),
	}
}
