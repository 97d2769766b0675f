// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chartpull/portal-extractor/gen/ent/extractionjob"
	"github.com/chartpull/portal-extractor/gen/ent/portaladapter"
	"github.com/google/uuid"
)

// ExtractionJob is the model entity for the ExtractionJob schema.
type ExtractionJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobName holds the value of the "job_name" field.
	JobName string `json:"job_name,omitempty"`
	// TargetURL holds the value of the "target_url" field.
	TargetURL string `json:"target_url,omitempty"`
	// AdapterID holds the value of the "adapter_id" field.
	AdapterID uuid.UUID `json:"adapter_id,omitempty"`
	// ExtractionMode holds the value of the "extraction_mode" field.
	ExtractionMode string `json:"extraction_mode,omitempty"`
	// PatientIdentifier holds the value of the "patient_identifier" field.
	PatientIdentifier string `json:"patient_identifier,omitempty"`
	// DoctorName holds the value of the "doctor_name" field.
	DoctorName string `json:"doctor_name,omitempty"`
	// Medication holds the value of the "medication" field.
	Medication string `json:"medication,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate *time.Time `json:"start_date,omitempty"`
	// EndDate holds the value of the "end_date" field.
	EndDate *time.Time `json:"end_date,omitempty"`
	// ResultsFilePath holds the value of the "results_file_path" field.
	ResultsFilePath string `json:"results_file_path,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// RawExtractedData holds the value of the "raw_extracted_data" field.
	RawExtractedData json.RawMessage `json:"raw_extracted_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionJobQuery when eager-loading is set.
	Edges        ExtractionJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionJobEdges holds the relations/edges for other nodes in the graph.
type ExtractionJobEdges struct {
	// Adapter holds the value of the adapter edge.
	Adapter *PortalAdapter `json:"adapter,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AdapterOrErr returns the Adapter value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionJobEdges) AdapterOrErr() (*PortalAdapter, error) {
	if e.Adapter != nil {
		return e.Adapter, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: portaladapter.Label}
	}
	return nil, &NotLoadedError{edge: "adapter"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionjob.FieldRawExtractedData:
			values[i] = new([]byte)
		case extractionjob.FieldJobName, extractionjob.FieldTargetURL, extractionjob.FieldExtractionMode, extractionjob.FieldPatientIdentifier, extractionjob.FieldDoctorName, extractionjob.FieldMedication, extractionjob.FieldResultsFilePath, extractionjob.FieldStatus, extractionjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case extractionjob.FieldStartDate, extractionjob.FieldEndDate, extractionjob.FieldCreatedAt, extractionjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case extractionjob.FieldID, extractionjob.FieldAdapterID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionJob fields.
func (_m *ExtractionJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionjob.FieldJobName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_name", values[i])
			} else if value.Valid {
				_m.JobName = value.String
			}
		case extractionjob.FieldTargetURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_url", values[i])
			} else if value.Valid {
				_m.TargetURL = value.String
			}
		case extractionjob.FieldAdapterID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field adapter_id", values[i])
			} else if value != nil {
				_m.AdapterID = *value
			}
		case extractionjob.FieldExtractionMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_mode", values[i])
			} else if value.Valid {
				_m.ExtractionMode = value.String
			}
		case extractionjob.FieldPatientIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_identifier", values[i])
			} else if value.Valid {
				_m.PatientIdentifier = value.String
			}
		case extractionjob.FieldDoctorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_name", values[i])
			} else if value.Valid {
				_m.DoctorName = value.String
			}
		case extractionjob.FieldMedication:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medication", values[i])
			} else if value.Valid {
				_m.Medication = value.String
			}
		case extractionjob.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = new(time.Time)
				*_m.StartDate = value.Time
			}
		case extractionjob.FieldEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				_m.EndDate = new(time.Time)
				*_m.EndDate = value.Time
			}
		case extractionjob.FieldResultsFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field results_file_path", values[i])
			} else if value.Valid {
				_m.ResultsFilePath = value.String
			}
		case extractionjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case extractionjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case extractionjob.FieldRawExtractedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_extracted_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawExtractedData); err != nil {
					return fmt.Errorf("unmarshal field raw_extracted_data: %w", err)
				}
			}
		case extractionjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extractionjob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionJob.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAdapter queries the "adapter" edge of the ExtractionJob entity.
func (_m *ExtractionJob) QueryAdapter() *PortalAdapterQuery {
	return NewExtractionJobClient(_m.config).QueryAdapter(_m)
}

// Update returns a builder for updating this ExtractionJob.
// Note that you need to call ExtractionJob.Unwrap() before calling this method if this ExtractionJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionJob) Update() *ExtractionJobUpdateOne {
	return NewExtractionJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionJob) Unwrap() *ExtractionJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionJob) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_name=")
	builder.WriteString(_m.JobName)
	builder.WriteString(", ")
	builder.WriteString("target_url=")
	builder.WriteString(_m.TargetURL)
	builder.WriteString(", ")
	builder.WriteString("adapter_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdapterID))
	builder.WriteString(", ")
	builder.WriteString("extraction_mode=")
	builder.WriteString(_m.ExtractionMode)
	builder.WriteString(", ")
	builder.WriteString("patient_identifier=")
	builder.WriteString(_m.PatientIdentifier)
	builder.WriteString(", ")
	builder.WriteString("doctor_name=")
	builder.WriteString(_m.DoctorName)
	builder.WriteString(", ")
	builder.WriteString("medication=")
	builder.WriteString(_m.Medication)
	builder.WriteString(", ")
	if v := _m.StartDate; v != nil {
		builder.WriteString("start_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndDate; v != nil {
		builder.WriteString("end_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("results_file_path=")
	builder.WriteString(_m.ResultsFilePath)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("raw_extracted_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawExtractedData))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionJobs is a parsable slice of ExtractionJob.
type ExtractionJobs []*ExtractionJob
