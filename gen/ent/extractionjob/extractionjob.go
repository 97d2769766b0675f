// Code generated by ent, DO NOT EDIT.

package extractionjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionjob type in the database.
	Label = "extraction_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobName holds the string denoting the job_name field in the database.
	FieldJobName = "job_name"
	// FieldTargetURL holds the string denoting the target_url field in the database.
	FieldTargetURL = "target_url"
	// FieldAdapterID holds the string denoting the adapter_id field in the database.
	FieldAdapterID = "adapter_id"
	// FieldExtractionMode holds the string denoting the extraction_mode field in the database.
	FieldExtractionMode = "extraction_mode"
	// FieldPatientIdentifier holds the string denoting the patient_identifier field in the database.
	FieldPatientIdentifier = "patient_identifier"
	// FieldDoctorName holds the string denoting the doctor_name field in the database.
	FieldDoctorName = "doctor_name"
	// FieldMedication holds the string denoting the medication field in the database.
	FieldMedication = "medication"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldEndDate holds the string denoting the end_date field in the database.
	FieldEndDate = "end_date"
	// FieldResultsFilePath holds the string denoting the results_file_path field in the database.
	FieldResultsFilePath = "results_file_path"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRawExtractedData holds the string denoting the raw_extracted_data field in the database.
	FieldRawExtractedData = "raw_extracted_data"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAdapter holds the string denoting the adapter edge name in mutations.
	EdgeAdapter = "adapter"
	// Table holds the table name of the extractionjob in the database.
	Table = "extraction_job"
	// AdapterTable is the table that holds the adapter relation/edge.
	AdapterTable = "extraction_job"
	// AdapterInverseTable is the table name for the PortalAdapter entity.
	// It exists in this package in order to avoid circular dependency with the "portaladapter" package.
	AdapterInverseTable = "portal_adapter"
	// AdapterColumn is the table column denoting the adapter relation/edge.
	AdapterColumn = "adapter_id"
)

// Columns holds all SQL columns for extractionjob fields.
var Columns = []string{
	FieldID,
	FieldJobName,
	FieldTargetURL,
	FieldAdapterID,
	FieldExtractionMode,
	FieldPatientIdentifier,
	FieldDoctorName,
	FieldMedication,
	FieldStartDate,
	FieldEndDate,
	FieldResultsFilePath,
	FieldStatus,
	FieldErrorMessage,
	FieldRawExtractedData,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TargetURLValidator is a validator for the "target_url" field. It is called by the builders before save.
	TargetURLValidator func(string) error
	// ExtractionModeValidator is a validator for the "extraction_mode" field. It is called by the builders before save.
	ExtractionModeValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobName orders the results by the job_name field.
func ByJobName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobName, opts...).ToFunc()
}

// ByTargetURL orders the results by the target_url field.
func ByTargetURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetURL, opts...).ToFunc()
}

// ByAdapterID orders the results by the adapter_id field.
func ByAdapterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdapterID, opts...).ToFunc()
}

// ByExtractionMode orders the results by the extraction_mode field.
func ByExtractionMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionMode, opts...).ToFunc()
}

// ByPatientIdentifier orders the results by the patient_identifier field.
func ByPatientIdentifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientIdentifier, opts...).ToFunc()
}

// ByDoctorName orders the results by the doctor_name field.
func ByDoctorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorName, opts...).ToFunc()
}

// ByMedication orders the results by the medication field.
func ByMedication(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedication, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByEndDate orders the results by the end_date field.
func ByEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDate, opts...).ToFunc()
}

// ByResultsFilePath orders the results by the results_file_path field.
func ByResultsFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultsFilePath, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAdapterField orders the results by adapter field.
func ByAdapterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAdapterStep(), sql.OrderByField(field, opts...))
	}
}
func newAdapterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AdapterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AdapterTable, AdapterColumn),
	)
}
