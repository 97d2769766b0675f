// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractionJobColumns holds the columns for the "extraction_job" table.
	ExtractionJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_name", Type: field.TypeString, Nullable: true},
		{Name: "target_url", Type: field.TypeString},
		{Name: "extraction_mode", Type: field.TypeString},
		{Name: "patient_identifier", Type: field.TypeString, Nullable: true},
		{Name: "doctor_name", Type: field.TypeString, Nullable: true},
		{Name: "medication", Type: field.TypeString, Nullable: true},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "results_file_path", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING_LOGIN"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "raw_extracted_data", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "adapter_id", Type: field.TypeUUID},
	}
	// ExtractionJobTable holds the schema information for the "extraction_job" table.
	ExtractionJobTable = &schema.Table{
		Name:       "extraction_job",
		Columns:    ExtractionJobColumns,
		PrimaryKey: []*schema.Column{ExtractionJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_job_portal_adapter_jobs",
				Columns:    []*schema.Column{ExtractionJobColumns[15]},
				RefColumns: []*schema.Column{PortalAdapterColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobColumns[10], ExtractionJobColumns[13]},
			},
			{
				Name:    "extractionjob_adapter_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobColumns[15]},
			},
		},
	}
	// PortalAdapterColumns holds the columns for the "portal_adapter" table.
	PortalAdapterColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "script_identifier", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PortalAdapterTable holds the schema information for the "portal_adapter" table.
	PortalAdapterTable = &schema.Table{
		Name:       "portal_adapter",
		Columns:    PortalAdapterColumns,
		PrimaryKey: []*schema.Column{PortalAdapterColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractionJobTable,
		PortalAdapterTable,
	}
)

func init() {
	ExtractionJobTable.ForeignKeys[0].RefTable = PortalAdapterTable
	ExtractionJobTable.Annotation = &entsql.Annotation{
		Table: "extraction_job",
	}
	PortalAdapterTable.Annotation = &entsql.Annotation{
		Table: "portal_adapter",
	}
}
