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

	"github.com/google/uuid"

	"github.com/chartpull/portal-extractor/constants"
	"github.com/chartpull/portal-extractor/db/ent/schema/utils"
)

// ExtractionJob is one tracked extraction request. Rows are append-and-update
// only; they are never deleted (audit trail). Status and error fields are
// mutated exclusively through the jobs state machine.
type ExtractionJob struct{ ent.Schema }

func (ExtractionJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_job"},
	}
}

func (ExtractionJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("job_name").Optional(),
		field.String("target_url").NotEmpty(),
		// explicit FK
		field.UUID("adapter_id", uuid.UUID{}),
		field.String("extraction_mode").NotEmpty().
			Validate(utils.EnumValidator(constants.ExtractionModes...)),
		field.String("patient_identifier").Optional(),
		// report filters
		field.String("doctor_name").Optional(),
		field.String("medication").Optional(),
		field.Time("start_date").Optional().Nillable(),
		field.Time("end_date").Optional().Nillable(),
		field.String("results_file_path").Optional(),
		field.String("status").NotEmpty().
			Default(string(constants.JobStatusPendingLogin)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("error_message").Optional(),
		field.JSON("raw_extracted_data", json.RawMessage{}).
			Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractionJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("adapter", PortalAdapter.Type).
			Ref("jobs").
			Field("adapter_id").
			Unique().
			Required(),
	}
}

func (ExtractionJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("adapter_id"),
	}
}
