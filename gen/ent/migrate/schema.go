// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_url", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "doc_type", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "farm_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_farms_documents",
				Columns:    []*schema.Column{DocumentsColumns[8]},
				RefColumns: []*schema.Column{FarmsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_farm_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[8], DocumentsColumns[5]},
			},
			{
				Name:    "document_farm_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[8], DocumentsColumns[7]},
			},
		},
	}
	// ExtractionResultsColumns holds the columns for the "extraction_results" table.
	ExtractionResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeUUID, Nullable: true},
		{Name: "succeeded", Type: field.TypeBool, Default: true},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "overall_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "extracted_count", Type: field.TypeInt, Default: 0},
		{Name: "total_fields", Type: field.TypeInt, Default: 0},
		{Name: "degraded", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "farm_id", Type: field.TypeUUID},
	}
	// ExtractionResultsTable holds the schema information for the "extraction_results" table.
	ExtractionResultsTable = &schema.Table{
		Name:       "extraction_results",
		Columns:    ExtractionResultsColumns,
		PrimaryKey: []*schema.Column{ExtractionResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_results_documents_results",
				Columns:    []*schema.Column{ExtractionResultsColumns[10]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extraction_results_farms_results",
				Columns:    []*schema.Column{ExtractionResultsColumns[11]},
				RefColumns: []*schema.Column{FarmsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionresult_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionResultsColumns[10], ExtractionResultsColumns[9]},
			},
			{
				Name:    "extractionresult_farm_id_succeeded",
				Unique:  false,
				Columns: []*schema.Column{ExtractionResultsColumns[11], ExtractionResultsColumns[2]},
			},
		},
	}
	// FarmsColumns holds the columns for the "farms" table.
	FarmsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "country_code", Type: field.TypeString, Size: 2, SchemaType: map[string]string{"postgres": "char(2)"}},
		{Name: "default_currency", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "legal_form", Type: field.TypeString, Nullable: true},
		{Name: "contact_email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FarmsTable holds the schema information for the "farms" table.
	FarmsTable = &schema.Table{
		Name:       "farms",
		Columns:    FarmsColumns,
		PrimaryKey: []*schema.Column{FarmsColumns[0]},
	}
	// FormStatesColumns holds the columns for the "form_states" table.
	FormStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "farm_id", Type: field.TypeUUID, Unique: true},
	}
	// FormStatesTable holds the schema information for the "form_states" table.
	FormStatesTable = &schema.Table{
		Name:       "form_states",
		Columns:    FormStatesColumns,
		PrimaryKey: []*schema.Column{FormStatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "form_states_farms_form_state",
				Columns:    []*schema.Column{FormStatesColumns[3]},
				RefColumns: []*schema.Column{FarmsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "formstate_farm_id",
				Unique:  true,
				Columns: []*schema.Column{FormStatesColumns[3]},
			},
		},
	}
	// ProcessingJobsColumns holds the columns for the "processing_jobs" table.
	ProcessingJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_url", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "priority", Type: field.TypeString, Default: "NORMAL"},
		{Name: "retry_attempt", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "scheduled_for", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "processing_time_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "farm_id", Type: field.TypeUUID},
	}
	// ProcessingJobsTable holds the schema information for the "processing_jobs" table.
	ProcessingJobsTable = &schema.Table{
		Name:       "processing_jobs",
		Columns:    ProcessingJobsColumns,
		PrimaryKey: []*schema.Column{ProcessingJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_jobs_documents_jobs",
				Columns:    []*schema.Column{ProcessingJobsColumns[14]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "processing_jobs_farms_jobs",
				Columns:    []*schema.Column{ProcessingJobsColumns[15]},
				RefColumns: []*schema.Column{FarmsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processingjob_status_scheduled_for",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobsColumns[3], ProcessingJobsColumns[7]},
			},
			{
				Name:    "processingjob_document_id",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobsColumns[14]},
			},
			{
				Name:    "processingjob_farm_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobsColumns[15], ProcessingJobsColumns[13]},
			},
		},
	}
	// ReviewEditsColumns holds the columns for the "review_edits" table.
	ReviewEditsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "field_name", Type: field.TypeString},
		{Name: "value", Type: field.TypeJSON},
		{Name: "edited_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "farm_id", Type: field.TypeUUID},
	}
	// ReviewEditsTable holds the schema information for the "review_edits" table.
	ReviewEditsTable = &schema.Table{
		Name:       "review_edits",
		Columns:    ReviewEditsColumns,
		PrimaryKey: []*schema.Column{ReviewEditsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "review_edits_documents_review_edits",
				Columns:    []*schema.Column{ReviewEditsColumns[4]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "review_edits_farms_review_edits",
				Columns:    []*schema.Column{ReviewEditsColumns[5]},
				RefColumns: []*schema.Column{FarmsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reviewedit_document_id_field_name",
				Unique:  true,
				Columns: []*schema.Column{ReviewEditsColumns[4], ReviewEditsColumns[1]},
			},
			{
				Name:    "reviewedit_farm_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEditsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		ExtractionResultsTable,
		FarmsTable,
		FormStatesTable,
		ProcessingJobsTable,
		ReviewEditsTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = FarmsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractionResultsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractionResultsTable.ForeignKeys[1].RefTable = FarmsTable
	ExtractionResultsTable.Annotation = &entsql.Annotation{
		Table: "extraction_results",
	}
	FarmsTable.Annotation = &entsql.Annotation{
		Table: "farms",
	}
	FormStatesTable.ForeignKeys[0].RefTable = FarmsTable
	FormStatesTable.Annotation = &entsql.Annotation{
		Table: "form_states",
	}
	ProcessingJobsTable.ForeignKeys[0].RefTable = DocumentsTable
	ProcessingJobsTable.ForeignKeys[1].RefTable = FarmsTable
	ProcessingJobsTable.Annotation = &entsql.Annotation{
		Table: "processing_jobs",
	}
	ReviewEditsTable.ForeignKeys[0].RefTable = DocumentsTable
	ReviewEditsTable.ForeignKeys[1].RefTable = FarmsTable
	ReviewEditsTable.Annotation = &entsql.Annotation{
		Table: "review_edits",
	}
}
