// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chartpull/portal-extractor/gen/ent/extractionjob"
	"github.com/chartpull/portal-extractor/gen/ent/portaladapter"
	"github.com/chartpull/portal-extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractionJob = "ExtractionJob"
	TypePortalAdapter = "PortalAdapter"
)

// ExtractionJobMutation represents an operation that mutates the ExtractionJob nodes in the graph.
type ExtractionJobMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	job_name                 *string
	target_url               *string
	extraction_mode          *string
	patient_identifier       *string
	doctor_name              *string
	medication               *string
	start_date               *time.Time
	end_date                 *time.Time
	results_file_path        *string
	status                   *string
	error_message            *string
	raw_extracted_data       *json.RawMessage
	appendraw_extracted_data json.RawMessage
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	adapter                  *uuid.UUID
	clearedadapter           bool
	done                     bool
	oldValue                 func(context.Context) (*ExtractionJob, error)
	predicates               []predicate.ExtractionJob
}

var _ ent.Mutation = (*ExtractionJobMutation)(nil)

// extractionjobOption allows management of the mutation configuration using functional options.
type extractionjobOption func(*ExtractionJobMutation)

// newExtractionJobMutation creates new mutation for the ExtractionJob entity.
func newExtractionJobMutation(c config, op Op, opts ...extractionjobOption) *ExtractionJobMutation {
	m := &ExtractionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionJobID sets the ID field of the mutation.
func withExtractionJobID(id uuid.UUID) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionJob sets the old ExtractionJob of the mutation.
func withExtractionJob(node *ExtractionJob) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		m.oldValue = func(context.Context) (*ExtractionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionJob entities.
func (m *ExtractionJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobName sets the "job_name" field.
func (m *ExtractionJobMutation) SetJobName(s string) {
	m.job_name = &s
}

// JobName returns the value of the "job_name" field in the mutation.
func (m *ExtractionJobMutation) JobName() (r string, exists bool) {
	v := m.job_name
	if v == nil {
		return
	}
	return *v, true
}

// OldJobName returns the old "job_name" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldJobName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobName: %w", err)
	}
	return oldValue.JobName, nil
}

// ClearJobName clears the value of the "job_name" field.
func (m *ExtractionJobMutation) ClearJobName() {
	m.job_name = nil
	m.clearedFields[extractionjob.FieldJobName] = struct{}{}
}

// JobNameCleared returns if the "job_name" field was cleared in this mutation.
func (m *ExtractionJobMutation) JobNameCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldJobName]
	return ok
}

// ResetJobName resets all changes to the "job_name" field.
func (m *ExtractionJobMutation) ResetJobName() {
	m.job_name = nil
	delete(m.clearedFields, extractionjob.FieldJobName)
}

// SetTargetURL sets the "target_url" field.
func (m *ExtractionJobMutation) SetTargetURL(s string) {
	m.target_url = &s
}

// TargetURL returns the value of the "target_url" field in the mutation.
func (m *ExtractionJobMutation) TargetURL() (r string, exists bool) {
	v := m.target_url
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetURL returns the old "target_url" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldTargetURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetURL: %w", err)
	}
	return oldValue.TargetURL, nil
}

// ResetTargetURL resets all changes to the "target_url" field.
func (m *ExtractionJobMutation) ResetTargetURL() {
	m.target_url = nil
}

// SetAdapterID sets the "adapter_id" field.
func (m *ExtractionJobMutation) SetAdapterID(u uuid.UUID) {
	m.adapter = &u
}

// AdapterID returns the value of the "adapter_id" field in the mutation.
func (m *ExtractionJobMutation) AdapterID() (r uuid.UUID, exists bool) {
	v := m.adapter
	if v == nil {
		return
	}
	return *v, true
}

// OldAdapterID returns the old "adapter_id" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldAdapterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdapterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdapterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdapterID: %w", err)
	}
	return oldValue.AdapterID, nil
}

// ResetAdapterID resets all changes to the "adapter_id" field.
func (m *ExtractionJobMutation) ResetAdapterID() {
	m.adapter = nil
}

// SetExtractionMode sets the "extraction_mode" field.
func (m *ExtractionJobMutation) SetExtractionMode(s string) {
	m.extraction_mode = &s
}

// ExtractionMode returns the value of the "extraction_mode" field in the mutation.
func (m *ExtractionJobMutation) ExtractionMode() (r string, exists bool) {
	v := m.extraction_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionMode returns the old "extraction_mode" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldExtractionMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionMode: %w", err)
	}
	return oldValue.ExtractionMode, nil
}

// ResetExtractionMode resets all changes to the "extraction_mode" field.
func (m *ExtractionJobMutation) ResetExtractionMode() {
	m.extraction_mode = nil
}

// SetPatientIdentifier sets the "patient_identifier" field.
func (m *ExtractionJobMutation) SetPatientIdentifier(s string) {
	m.patient_identifier = &s
}

// PatientIdentifier returns the value of the "patient_identifier" field in the mutation.
func (m *ExtractionJobMutation) PatientIdentifier() (r string, exists bool) {
	v := m.patient_identifier
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientIdentifier returns the old "patient_identifier" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldPatientIdentifier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientIdentifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientIdentifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientIdentifier: %w", err)
	}
	return oldValue.PatientIdentifier, nil
}

// ClearPatientIdentifier clears the value of the "patient_identifier" field.
func (m *ExtractionJobMutation) ClearPatientIdentifier() {
	m.patient_identifier = nil
	m.clearedFields[extractionjob.FieldPatientIdentifier] = struct{}{}
}

// PatientIdentifierCleared returns if the "patient_identifier" field was cleared in this mutation.
func (m *ExtractionJobMutation) PatientIdentifierCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldPatientIdentifier]
	return ok
}

// ResetPatientIdentifier resets all changes to the "patient_identifier" field.
func (m *ExtractionJobMutation) ResetPatientIdentifier() {
	m.patient_identifier = nil
	delete(m.clearedFields, extractionjob.FieldPatientIdentifier)
}

// SetDoctorName sets the "doctor_name" field.
func (m *ExtractionJobMutation) SetDoctorName(s string) {
	m.doctor_name = &s
}

// DoctorName returns the value of the "doctor_name" field in the mutation.
func (m *ExtractionJobMutation) DoctorName() (r string, exists bool) {
	v := m.doctor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDoctorName returns the old "doctor_name" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldDoctorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoctorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoctorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoctorName: %w", err)
	}
	return oldValue.DoctorName, nil
}

// ClearDoctorName clears the value of the "doctor_name" field.
func (m *ExtractionJobMutation) ClearDoctorName() {
	m.doctor_name = nil
	m.clearedFields[extractionjob.FieldDoctorName] = struct{}{}
}

// DoctorNameCleared returns if the "doctor_name" field was cleared in this mutation.
func (m *ExtractionJobMutation) DoctorNameCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldDoctorName]
	return ok
}

// ResetDoctorName resets all changes to the "doctor_name" field.
func (m *ExtractionJobMutation) ResetDoctorName() {
	m.doctor_name = nil
	delete(m.clearedFields, extractionjob.FieldDoctorName)
}

// SetMedication sets the "medication" field.
func (m *ExtractionJobMutation) SetMedication(s string) {
	m.medication = &s
}

// Medication returns the value of the "medication" field in the mutation.
func (m *ExtractionJobMutation) Medication() (r string, exists bool) {
	v := m.medication
	if v == nil {
		return
	}
	return *v, true
}

// OldMedication returns the old "medication" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldMedication(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedication is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedication requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedication: %w", err)
	}
	return oldValue.Medication, nil
}

// ClearMedication clears the value of the "medication" field.
func (m *ExtractionJobMutation) ClearMedication() {
	m.medication = nil
	m.clearedFields[extractionjob.FieldMedication] = struct{}{}
}

// MedicationCleared returns if the "medication" field was cleared in this mutation.
func (m *ExtractionJobMutation) MedicationCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldMedication]
	return ok
}

// ResetMedication resets all changes to the "medication" field.
func (m *ExtractionJobMutation) ResetMedication() {
	m.medication = nil
	delete(m.clearedFields, extractionjob.FieldMedication)
}

// SetStartDate sets the "start_date" field.
func (m *ExtractionJobMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *ExtractionJobMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStartDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ClearStartDate clears the value of the "start_date" field.
func (m *ExtractionJobMutation) ClearStartDate() {
	m.start_date = nil
	m.clearedFields[extractionjob.FieldStartDate] = struct{}{}
}

// StartDateCleared returns if the "start_date" field was cleared in this mutation.
func (m *ExtractionJobMutation) StartDateCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldStartDate]
	return ok
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *ExtractionJobMutation) ResetStartDate() {
	m.start_date = nil
	delete(m.clearedFields, extractionjob.FieldStartDate)
}

// SetEndDate sets the "end_date" field.
func (m *ExtractionJobMutation) SetEndDate(t time.Time) {
	m.end_date = &t
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *ExtractionJobMutation) EndDate() (r time.Time, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldEndDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ClearEndDate clears the value of the "end_date" field.
func (m *ExtractionJobMutation) ClearEndDate() {
	m.end_date = nil
	m.clearedFields[extractionjob.FieldEndDate] = struct{}{}
}

// EndDateCleared returns if the "end_date" field was cleared in this mutation.
func (m *ExtractionJobMutation) EndDateCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldEndDate]
	return ok
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *ExtractionJobMutation) ResetEndDate() {
	m.end_date = nil
	delete(m.clearedFields, extractionjob.FieldEndDate)
}

// SetResultsFilePath sets the "results_file_path" field.
func (m *ExtractionJobMutation) SetResultsFilePath(s string) {
	m.results_file_path = &s
}

// ResultsFilePath returns the value of the "results_file_path" field in the mutation.
func (m *ExtractionJobMutation) ResultsFilePath() (r string, exists bool) {
	v := m.results_file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldResultsFilePath returns the old "results_file_path" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldResultsFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultsFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultsFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultsFilePath: %w", err)
	}
	return oldValue.ResultsFilePath, nil
}

// ClearResultsFilePath clears the value of the "results_file_path" field.
func (m *ExtractionJobMutation) ClearResultsFilePath() {
	m.results_file_path = nil
	m.clearedFields[extractionjob.FieldResultsFilePath] = struct{}{}
}

// ResultsFilePathCleared returns if the "results_file_path" field was cleared in this mutation.
func (m *ExtractionJobMutation) ResultsFilePathCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldResultsFilePath]
	return ok
}

// ResetResultsFilePath resets all changes to the "results_file_path" field.
func (m *ExtractionJobMutation) ResetResultsFilePath() {
	m.results_file_path = nil
	delete(m.clearedFields, extractionjob.FieldResultsFilePath)
}

// SetStatus sets the "status" field.
func (m *ExtractionJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionJobMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionjob.FieldErrorMessage)
}

// SetRawExtractedData sets the "raw_extracted_data" field.
func (m *ExtractionJobMutation) SetRawExtractedData(jm json.RawMessage) {
	m.raw_extracted_data = &jm
	m.appendraw_extracted_data = nil
}

// RawExtractedData returns the value of the "raw_extracted_data" field in the mutation.
func (m *ExtractionJobMutation) RawExtractedData() (r json.RawMessage, exists bool) {
	v := m.raw_extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldRawExtractedData returns the old "raw_extracted_data" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldRawExtractedData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawExtractedData: %w", err)
	}
	return oldValue.RawExtractedData, nil
}

// AppendRawExtractedData adds jm to the "raw_extracted_data" field.
func (m *ExtractionJobMutation) AppendRawExtractedData(jm json.RawMessage) {
	m.appendraw_extracted_data = append(m.appendraw_extracted_data, jm...)
}

// AppendedRawExtractedData returns the list of values that were appended to the "raw_extracted_data" field in this mutation.
func (m *ExtractionJobMutation) AppendedRawExtractedData() (json.RawMessage, bool) {
	if len(m.appendraw_extracted_data) == 0 {
		return nil, false
	}
	return m.appendraw_extracted_data, true
}

// ClearRawExtractedData clears the value of the "raw_extracted_data" field.
func (m *ExtractionJobMutation) ClearRawExtractedData() {
	m.raw_extracted_data = nil
	m.appendraw_extracted_data = nil
	m.clearedFields[extractionjob.FieldRawExtractedData] = struct{}{}
}

// RawExtractedDataCleared returns if the "raw_extracted_data" field was cleared in this mutation.
func (m *ExtractionJobMutation) RawExtractedDataCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldRawExtractedData]
	return ok
}

// ResetRawExtractedData resets all changes to the "raw_extracted_data" field.
func (m *ExtractionJobMutation) ResetRawExtractedData() {
	m.raw_extracted_data = nil
	m.appendraw_extracted_data = nil
	delete(m.clearedFields, extractionjob.FieldRawExtractedData)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractionJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractionJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractionJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAdapter clears the "adapter" edge to the PortalAdapter entity.
func (m *ExtractionJobMutation) ClearAdapter() {
	m.clearedadapter = true
	m.clearedFields[extractionjob.FieldAdapterID] = struct{}{}
}

// AdapterCleared reports if the "adapter" edge to the PortalAdapter entity was cleared.
func (m *ExtractionJobMutation) AdapterCleared() bool {
	return m.clearedadapter
}

// AdapterIDs returns the "adapter" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AdapterID instead. It exists only for internal usage by the builders.
func (m *ExtractionJobMutation) AdapterIDs() (ids []uuid.UUID) {
	if id := m.adapter; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAdapter resets all changes to the "adapter" edge.
func (m *ExtractionJobMutation) ResetAdapter() {
	m.adapter = nil
	m.clearedadapter = false
}

// Where appends a list predicates to the ExtractionJobMutation builder.
func (m *ExtractionJobMutation) Where(ps ...predicate.ExtractionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionJob).
func (m *ExtractionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionJobMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.job_name != nil {
		fields = append(fields, extractionjob.FieldJobName)
	}
	if m.target_url != nil {
		fields = append(fields, extractionjob.FieldTargetURL)
	}
	if m.adapter != nil {
		fields = append(fields, extractionjob.FieldAdapterID)
	}
	if m.extraction_mode != nil {
		fields = append(fields, extractionjob.FieldExtractionMode)
	}
	if m.patient_identifier != nil {
		fields = append(fields, extractionjob.FieldPatientIdentifier)
	}
	if m.doctor_name != nil {
		fields = append(fields, extractionjob.FieldDoctorName)
	}
	if m.medication != nil {
		fields = append(fields, extractionjob.FieldMedication)
	}
	if m.start_date != nil {
		fields = append(fields, extractionjob.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, extractionjob.FieldEndDate)
	}
	if m.results_file_path != nil {
		fields = append(fields, extractionjob.FieldResultsFilePath)
	}
	if m.status != nil {
		fields = append(fields, extractionjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.raw_extracted_data != nil {
		fields = append(fields, extractionjob.FieldRawExtractedData)
	}
	if m.created_at != nil {
		fields = append(fields, extractionjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractionjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldJobName:
		return m.JobName()
	case extractionjob.FieldTargetURL:
		return m.TargetURL()
	case extractionjob.FieldAdapterID:
		return m.AdapterID()
	case extractionjob.FieldExtractionMode:
		return m.ExtractionMode()
	case extractionjob.FieldPatientIdentifier:
		return m.PatientIdentifier()
	case extractionjob.FieldDoctorName:
		return m.DoctorName()
	case extractionjob.FieldMedication:
		return m.Medication()
	case extractionjob.FieldStartDate:
		return m.StartDate()
	case extractionjob.FieldEndDate:
		return m.EndDate()
	case extractionjob.FieldResultsFilePath:
		return m.ResultsFilePath()
	case extractionjob.FieldStatus:
		return m.Status()
	case extractionjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionjob.FieldRawExtractedData:
		return m.RawExtractedData()
	case extractionjob.FieldCreatedAt:
		return m.CreatedAt()
	case extractionjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionjob.FieldJobName:
		return m.OldJobName(ctx)
	case extractionjob.FieldTargetURL:
		return m.OldTargetURL(ctx)
	case extractionjob.FieldAdapterID:
		return m.OldAdapterID(ctx)
	case extractionjob.FieldExtractionMode:
		return m.OldExtractionMode(ctx)
	case extractionjob.FieldPatientIdentifier:
		return m.OldPatientIdentifier(ctx)
	case extractionjob.FieldDoctorName:
		return m.OldDoctorName(ctx)
	case extractionjob.FieldMedication:
		return m.OldMedication(ctx)
	case extractionjob.FieldStartDate:
		return m.OldStartDate(ctx)
	case extractionjob.FieldEndDate:
		return m.OldEndDate(ctx)
	case extractionjob.FieldResultsFilePath:
		return m.OldResultsFilePath(ctx)
	case extractionjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractionjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionjob.FieldRawExtractedData:
		return m.OldRawExtractedData(ctx)
	case extractionjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractionjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldJobName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobName(v)
		return nil
	case extractionjob.FieldTargetURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetURL(v)
		return nil
	case extractionjob.FieldAdapterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdapterID(v)
		return nil
	case extractionjob.FieldExtractionMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionMode(v)
		return nil
	case extractionjob.FieldPatientIdentifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientIdentifier(v)
		return nil
	case extractionjob.FieldDoctorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoctorName(v)
		return nil
	case extractionjob.FieldMedication:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedication(v)
		return nil
	case extractionjob.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case extractionjob.FieldEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case extractionjob.FieldResultsFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultsFilePath(v)
		return nil
	case extractionjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionjob.FieldRawExtractedData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawExtractedData(v)
		return nil
	case extractionjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractionjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionjob.FieldJobName) {
		fields = append(fields, extractionjob.FieldJobName)
	}
	if m.FieldCleared(extractionjob.FieldPatientIdentifier) {
		fields = append(fields, extractionjob.FieldPatientIdentifier)
	}
	if m.FieldCleared(extractionjob.FieldDoctorName) {
		fields = append(fields, extractionjob.FieldDoctorName)
	}
	if m.FieldCleared(extractionjob.FieldMedication) {
		fields = append(fields, extractionjob.FieldMedication)
	}
	if m.FieldCleared(extractionjob.FieldStartDate) {
		fields = append(fields, extractionjob.FieldStartDate)
	}
	if m.FieldCleared(extractionjob.FieldEndDate) {
		fields = append(fields, extractionjob.FieldEndDate)
	}
	if m.FieldCleared(extractionjob.FieldResultsFilePath) {
		fields = append(fields, extractionjob.FieldResultsFilePath)
	}
	if m.FieldCleared(extractionjob.FieldErrorMessage) {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractionjob.FieldRawExtractedData) {
		fields = append(fields, extractionjob.FieldRawExtractedData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ClearField(name string) error {
	switch name {
	case extractionjob.FieldJobName:
		m.ClearJobName()
		return nil
	case extractionjob.FieldPatientIdentifier:
		m.ClearPatientIdentifier()
		return nil
	case extractionjob.FieldDoctorName:
		m.ClearDoctorName()
		return nil
	case extractionjob.FieldMedication:
		m.ClearMedication()
		return nil
	case extractionjob.FieldStartDate:
		m.ClearStartDate()
		return nil
	case extractionjob.FieldEndDate:
		m.ClearEndDate()
		return nil
	case extractionjob.FieldResultsFilePath:
		m.ClearResultsFilePath()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractionjob.FieldRawExtractedData:
		m.ClearRawExtractedData()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ResetField(name string) error {
	switch name {
	case extractionjob.FieldJobName:
		m.ResetJobName()
		return nil
	case extractionjob.FieldTargetURL:
		m.ResetTargetURL()
		return nil
	case extractionjob.FieldAdapterID:
		m.ResetAdapterID()
		return nil
	case extractionjob.FieldExtractionMode:
		m.ResetExtractionMode()
		return nil
	case extractionjob.FieldPatientIdentifier:
		m.ResetPatientIdentifier()
		return nil
	case extractionjob.FieldDoctorName:
		m.ResetDoctorName()
		return nil
	case extractionjob.FieldMedication:
		m.ResetMedication()
		return nil
	case extractionjob.FieldStartDate:
		m.ResetStartDate()
		return nil
	case extractionjob.FieldEndDate:
		m.ResetEndDate()
		return nil
	case extractionjob.FieldResultsFilePath:
		m.ResetResultsFilePath()
		return nil
	case extractionjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionjob.FieldRawExtractedData:
		m.ResetRawExtractedData()
		return nil
	case extractionjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractionjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.adapter != nil {
		edges = append(edges, extractionjob.EdgeAdapter)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionjob.EdgeAdapter:
		if id := m.adapter; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedadapter {
		edges = append(edges, extractionjob.EdgeAdapter)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionjob.EdgeAdapter:
		return m.clearedadapter
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionJobMutation) ClearEdge(name string) error {
	switch name {
	case extractionjob.EdgeAdapter:
		m.ClearAdapter()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionJobMutation) ResetEdge(name string) error {
	switch name {
	case extractionjob.EdgeAdapter:
		m.ResetAdapter()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob edge %s", name)
}

// PortalAdapterMutation represents an operation that mutates the PortalAdapter nodes in the graph.
type PortalAdapterMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	script_identifier *string
	description       *string
	is_active         *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	jobs              map[uuid.UUID]struct{}
	removedjobs       map[uuid.UUID]struct{}
	clearedjobs       bool
	done              bool
	oldValue          func(context.Context) (*PortalAdapter, error)
	predicates        []predicate.PortalAdapter
}

var _ ent.Mutation = (*PortalAdapterMutation)(nil)

// portaladapterOption allows management of the mutation configuration using functional options.
type portaladapterOption func(*PortalAdapterMutation)

// newPortalAdapterMutation creates new mutation for the PortalAdapter entity.
func newPortalAdapterMutation(c config, op Op, opts ...portaladapterOption) *PortalAdapterMutation {
	m := &PortalAdapterMutation{
		config:        c,
		op:            op,
		typ:           TypePortalAdapter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPortalAdapterID sets the ID field of the mutation.
func withPortalAdapterID(id uuid.UUID) portaladapterOption {
	return func(m *PortalAdapterMutation) {
		var (
			err   error
			once  sync.Once
			value *PortalAdapter
		)
		m.oldValue = func(ctx context.Context) (*PortalAdapter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PortalAdapter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPortalAdapter sets the old PortalAdapter of the mutation.
func withPortalAdapter(node *PortalAdapter) portaladapterOption {
	return func(m *PortalAdapterMutation) {
		m.oldValue = func(context.Context) (*PortalAdapter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PortalAdapterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PortalAdapterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PortalAdapter entities.
func (m *PortalAdapterMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PortalAdapterMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PortalAdapterMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PortalAdapter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PortalAdapterMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PortalAdapterMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PortalAdapter entity.
// If the PortalAdapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortalAdapterMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PortalAdapterMutation) ResetName() {
	m.name = nil
}

// SetScriptIdentifier sets the "script_identifier" field.
func (m *PortalAdapterMutation) SetScriptIdentifier(s string) {
	m.script_identifier = &s
}

// ScriptIdentifier returns the value of the "script_identifier" field in the mutation.
func (m *PortalAdapterMutation) ScriptIdentifier() (r string, exists bool) {
	v := m.script_identifier
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptIdentifier returns the old "script_identifier" field's value of the PortalAdapter entity.
// If the PortalAdapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortalAdapterMutation) OldScriptIdentifier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptIdentifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptIdentifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptIdentifier: %w", err)
	}
	return oldValue.ScriptIdentifier, nil
}

// ResetScriptIdentifier resets all changes to the "script_identifier" field.
func (m *PortalAdapterMutation) ResetScriptIdentifier() {
	m.script_identifier = nil
}

// SetDescription sets the "description" field.
func (m *PortalAdapterMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PortalAdapterMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PortalAdapter entity.
// If the PortalAdapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortalAdapterMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PortalAdapterMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[portaladapter.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PortalAdapterMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[portaladapter.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PortalAdapterMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, portaladapter.FieldDescription)
}

// SetIsActive sets the "is_active" field.
func (m *PortalAdapterMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PortalAdapterMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the PortalAdapter entity.
// If the PortalAdapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortalAdapterMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PortalAdapterMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PortalAdapterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PortalAdapterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PortalAdapter entity.
// If the PortalAdapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortalAdapterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PortalAdapterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PortalAdapterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PortalAdapterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PortalAdapter entity.
// If the PortalAdapter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortalAdapterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PortalAdapterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by ids.
func (m *PortalAdapterMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractionJob entity.
func (m *PortalAdapterMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractionJob entity was cleared.
func (m *PortalAdapterMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractionJob entity by IDs.
func (m *PortalAdapterMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractionJob entity.
func (m *PortalAdapterMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *PortalAdapterMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *PortalAdapterMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the PortalAdapterMutation builder.
func (m *PortalAdapterMutation) Where(ps ...predicate.PortalAdapter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PortalAdapterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PortalAdapterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PortalAdapter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PortalAdapterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PortalAdapterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PortalAdapter).
func (m *PortalAdapterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PortalAdapterMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, portaladapter.FieldName)
	}
	if m.script_identifier != nil {
		fields = append(fields, portaladapter.FieldScriptIdentifier)
	}
	if m.description != nil {
		fields = append(fields, portaladapter.FieldDescription)
	}
	if m.is_active != nil {
		fields = append(fields, portaladapter.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, portaladapter.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, portaladapter.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PortalAdapterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case portaladapter.FieldName:
		return m.Name()
	case portaladapter.FieldScriptIdentifier:
		return m.ScriptIdentifier()
	case portaladapter.FieldDescription:
		return m.Description()
	case portaladapter.FieldIsActive:
		return m.IsActive()
	case portaladapter.FieldCreatedAt:
		return m.CreatedAt()
	case portaladapter.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PortalAdapterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case portaladapter.FieldName:
		return m.OldName(ctx)
	case portaladapter.FieldScriptIdentifier:
		return m.OldScriptIdentifier(ctx)
	case portaladapter.FieldDescription:
		return m.OldDescription(ctx)
	case portaladapter.FieldIsActive:
		return m.OldIsActive(ctx)
	case portaladapter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case portaladapter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PortalAdapter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PortalAdapterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case portaladapter.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case portaladapter.FieldScriptIdentifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptIdentifier(v)
		return nil
	case portaladapter.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case portaladapter.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case portaladapter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case portaladapter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PortalAdapter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PortalAdapterMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PortalAdapterMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PortalAdapterMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PortalAdapter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PortalAdapterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(portaladapter.FieldDescription) {
		fields = append(fields, portaladapter.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PortalAdapterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PortalAdapterMutation) ClearField(name string) error {
	switch name {
	case portaladapter.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown PortalAdapter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PortalAdapterMutation) ResetField(name string) error {
	switch name {
	case portaladapter.FieldName:
		m.ResetName()
		return nil
	case portaladapter.FieldScriptIdentifier:
		m.ResetScriptIdentifier()
		return nil
	case portaladapter.FieldDescription:
		m.ResetDescription()
		return nil
	case portaladapter.FieldIsActive:
		m.ResetIsActive()
		return nil
	case portaladapter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case portaladapter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PortalAdapter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PortalAdapterMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, portaladapter.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PortalAdapterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case portaladapter.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PortalAdapterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, portaladapter.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PortalAdapterMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case portaladapter.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PortalAdapterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, portaladapter.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PortalAdapterMutation) EdgeCleared(name string) bool {
	switch name {
	case portaladapter.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PortalAdapterMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PortalAdapter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PortalAdapterMutation) ResetEdge(name string) error {
	switch name {
	case portaladapter.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown PortalAdapter edge %s", name)
}
