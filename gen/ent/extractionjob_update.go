// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/chartpull/portal-extractor/gen/ent/extractionjob"
	"github.com/chartpull/portal-extractor/gen/ent/portaladapter"
	"github.com/chartpull/portal-extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ExtractionJobUpdate is the builder for updating ExtractionJob entities.
type ExtractionJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdate) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobName sets the "job_name" field.
func (_u *ExtractionJobUpdate) SetJobName(v string) *ExtractionJobUpdate {
	_u.mutation.SetJobName(v)
	return _u
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableJobName(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetJobName(*v)
	}
	return _u
}

// ClearJobName clears the value of the "job_name" field.
func (_u *ExtractionJobUpdate) ClearJobName() *ExtractionJobUpdate {
	_u.mutation.ClearJobName()
	return _u
}

// SetTargetURL sets the "target_url" field.
func (_u *ExtractionJobUpdate) SetTargetURL(v string) *ExtractionJobUpdate {
	_u.mutation.SetTargetURL(v)
	return _u
}

// SetNillableTargetURL sets the "target_url" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableTargetURL(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetTargetURL(*v)
	}
	return _u
}

// SetAdapterID sets the "adapter_id" field.
func (_u *ExtractionJobUpdate) SetAdapterID(v uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.SetAdapterID(v)
	return _u
}

// SetNillableAdapterID sets the "adapter_id" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableAdapterID(v *uuid.UUID) *ExtractionJobUpdate {
	if v != nil {
		_u.SetAdapterID(*v)
	}
	return _u
}

// SetExtractionMode sets the "extraction_mode" field.
func (_u *ExtractionJobUpdate) SetExtractionMode(v string) *ExtractionJobUpdate {
	_u.mutation.SetExtractionMode(v)
	return _u
}

// SetNillableExtractionMode sets the "extraction_mode" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableExtractionMode(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetExtractionMode(*v)
	}
	return _u
}

// SetPatientIdentifier sets the "patient_identifier" field.
func (_u *ExtractionJobUpdate) SetPatientIdentifier(v string) *ExtractionJobUpdate {
	_u.mutation.SetPatientIdentifier(v)
	return _u
}

// SetNillablePatientIdentifier sets the "patient_identifier" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillablePatientIdentifier(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetPatientIdentifier(*v)
	}
	return _u
}

// ClearPatientIdentifier clears the value of the "patient_identifier" field.
func (_u *ExtractionJobUpdate) ClearPatientIdentifier() *ExtractionJobUpdate {
	_u.mutation.ClearPatientIdentifier()
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *ExtractionJobUpdate) SetDoctorName(v string) *ExtractionJobUpdate {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableDoctorName(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// ClearDoctorName clears the value of the "doctor_name" field.
func (_u *ExtractionJobUpdate) ClearDoctorName() *ExtractionJobUpdate {
	_u.mutation.ClearDoctorName()
	return _u
}

// SetMedication sets the "medication" field.
func (_u *ExtractionJobUpdate) SetMedication(v string) *ExtractionJobUpdate {
	_u.mutation.SetMedication(v)
	return _u
}

// SetNillableMedication sets the "medication" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableMedication(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetMedication(*v)
	}
	return _u
}

// ClearMedication clears the value of the "medication" field.
func (_u *ExtractionJobUpdate) ClearMedication() *ExtractionJobUpdate {
	_u.mutation.ClearMedication()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ExtractionJobUpdate) SetStartDate(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStartDate(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *ExtractionJobUpdate) ClearStartDate() *ExtractionJobUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ExtractionJobUpdate) SetEndDate(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableEndDate(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ExtractionJobUpdate) ClearEndDate() *ExtractionJobUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetResultsFilePath sets the "results_file_path" field.
func (_u *ExtractionJobUpdate) SetResultsFilePath(v string) *ExtractionJobUpdate {
	_u.mutation.SetResultsFilePath(v)
	return _u
}

// SetNillableResultsFilePath sets the "results_file_path" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableResultsFilePath(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetResultsFilePath(*v)
	}
	return _u
}

// ClearResultsFilePath clears the value of the "results_file_path" field.
func (_u *ExtractionJobUpdate) ClearResultsFilePath() *ExtractionJobUpdate {
	_u.mutation.ClearResultsFilePath()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdate) SetStatus(v string) *ExtractionJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStatus(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdate) SetErrorMessage(v string) *ExtractionJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableErrorMessage(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdate) ClearErrorMessage() *ExtractionJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRawExtractedData sets the "raw_extracted_data" field.
func (_u *ExtractionJobUpdate) SetRawExtractedData(v json.RawMessage) *ExtractionJobUpdate {
	_u.mutation.SetRawExtractedData(v)
	return _u
}

// AppendRawExtractedData appends value to the "raw_extracted_data" field.
func (_u *ExtractionJobUpdate) AppendRawExtractedData(v json.RawMessage) *ExtractionJobUpdate {
	_u.mutation.AppendRawExtractedData(v)
	return _u
}

// ClearRawExtractedData clears the value of the "raw_extracted_data" field.
func (_u *ExtractionJobUpdate) ClearRawExtractedData() *ExtractionJobUpdate {
	_u.mutation.ClearRawExtractedData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionJobUpdate) SetCreatedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionJobUpdate) SetUpdatedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAdapter sets the "adapter" edge to the PortalAdapter entity.
func (_u *ExtractionJobUpdate) SetAdapter(v *PortalAdapter) *ExtractionJobUpdate {
	return _u.SetAdapterID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdate) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearAdapter clears the "adapter" edge to the PortalAdapter entity.
func (_u *ExtractionJobUpdate) ClearAdapter() *ExtractionJobUpdate {
	_u.mutation.ClearAdapter()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdate) check() error {
	if v, ok := _u.mutation.TargetURL(); ok {
		if err := extractionjob.TargetURLValidator(v); err != nil {
			return &ValidationError{Name: "target_url", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.target_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMode(); ok {
		if err := extractionjob.ExtractionModeValidator(v); err != nil {
			return &ValidationError{Name: "extraction_mode", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.extraction_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if _u.mutation.AdapterCleared() && len(_u.mutation.AdapterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionJob.adapter"`)
	}
	return nil
}

func (_u *ExtractionJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobName(); ok {
		_spec.SetField(extractionjob.FieldJobName, field.TypeString, value)
	}
	if _u.mutation.JobNameCleared() {
		_spec.ClearField(extractionjob.FieldJobName, field.TypeString)
	}
	if value, ok := _u.mutation.TargetURL(); ok {
		_spec.SetField(extractionjob.FieldTargetURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionMode(); ok {
		_spec.SetField(extractionjob.FieldExtractionMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientIdentifier(); ok {
		_spec.SetField(extractionjob.FieldPatientIdentifier, field.TypeString, value)
	}
	if _u.mutation.PatientIdentifierCleared() {
		_spec.ClearField(extractionjob.FieldPatientIdentifier, field.TypeString)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(extractionjob.FieldDoctorName, field.TypeString, value)
	}
	if _u.mutation.DoctorNameCleared() {
		_spec.ClearField(extractionjob.FieldDoctorName, field.TypeString)
	}
	if value, ok := _u.mutation.Medication(); ok {
		_spec.SetField(extractionjob.FieldMedication, field.TypeString, value)
	}
	if _u.mutation.MedicationCleared() {
		_spec.ClearField(extractionjob.FieldMedication, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(extractionjob.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(extractionjob.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(extractionjob.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(extractionjob.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ResultsFilePath(); ok {
		_spec.SetField(extractionjob.FieldResultsFilePath, field.TypeString, value)
	}
	if _u.mutation.ResultsFilePathCleared() {
		_spec.ClearField(extractionjob.FieldResultsFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RawExtractedData(); ok {
		_spec.SetField(extractionjob.FieldRawExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldRawExtractedData, value)
		})
	}
	if _u.mutation.RawExtractedDataCleared() {
		_spec.ClearField(extractionjob.FieldRawExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AdapterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.AdapterTable,
			Columns: []string{extractionjob.AdapterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(portaladapter.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdapterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.AdapterTable,
			Columns: []string{extractionjob.AdapterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(portaladapter.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionJobUpdateOne is the builder for updating a single ExtractionJob entity.
type ExtractionJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// SetJobName sets the "job_name" field.
func (_u *ExtractionJobUpdateOne) SetJobName(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetJobName(v)
	return _u
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableJobName(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetJobName(*v)
	}
	return _u
}

// ClearJobName clears the value of the "job_name" field.
func (_u *ExtractionJobUpdateOne) ClearJobName() *ExtractionJobUpdateOne {
	_u.mutation.ClearJobName()
	return _u
}

// SetTargetURL sets the "target_url" field.
func (_u *ExtractionJobUpdateOne) SetTargetURL(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetTargetURL(v)
	return _u
}

// SetNillableTargetURL sets the "target_url" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableTargetURL(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetTargetURL(*v)
	}
	return _u
}

// SetAdapterID sets the "adapter_id" field.
func (_u *ExtractionJobUpdateOne) SetAdapterID(v uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.SetAdapterID(v)
	return _u
}

// SetNillableAdapterID sets the "adapter_id" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableAdapterID(v *uuid.UUID) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetAdapterID(*v)
	}
	return _u
}

// SetExtractionMode sets the "extraction_mode" field.
func (_u *ExtractionJobUpdateOne) SetExtractionMode(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetExtractionMode(v)
	return _u
}

// SetNillableExtractionMode sets the "extraction_mode" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableExtractionMode(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetExtractionMode(*v)
	}
	return _u
}

// SetPatientIdentifier sets the "patient_identifier" field.
func (_u *ExtractionJobUpdateOne) SetPatientIdentifier(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetPatientIdentifier(v)
	return _u
}

// SetNillablePatientIdentifier sets the "patient_identifier" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillablePatientIdentifier(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetPatientIdentifier(*v)
	}
	return _u
}

// ClearPatientIdentifier clears the value of the "patient_identifier" field.
func (_u *ExtractionJobUpdateOne) ClearPatientIdentifier() *ExtractionJobUpdateOne {
	_u.mutation.ClearPatientIdentifier()
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *ExtractionJobUpdateOne) SetDoctorName(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableDoctorName(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// ClearDoctorName clears the value of the "doctor_name" field.
func (_u *ExtractionJobUpdateOne) ClearDoctorName() *ExtractionJobUpdateOne {
	_u.mutation.ClearDoctorName()
	return _u
}

// SetMedication sets the "medication" field.
func (_u *ExtractionJobUpdateOne) SetMedication(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetMedication(v)
	return _u
}

// SetNillableMedication sets the "medication" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableMedication(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetMedication(*v)
	}
	return _u
}

// ClearMedication clears the value of the "medication" field.
func (_u *ExtractionJobUpdateOne) ClearMedication() *ExtractionJobUpdateOne {
	_u.mutation.ClearMedication()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ExtractionJobUpdateOne) SetStartDate(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStartDate(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *ExtractionJobUpdateOne) ClearStartDate() *ExtractionJobUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ExtractionJobUpdateOne) SetEndDate(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableEndDate(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ExtractionJobUpdateOne) ClearEndDate() *ExtractionJobUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetResultsFilePath sets the "results_file_path" field.
func (_u *ExtractionJobUpdateOne) SetResultsFilePath(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetResultsFilePath(v)
	return _u
}

// SetNillableResultsFilePath sets the "results_file_path" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableResultsFilePath(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetResultsFilePath(*v)
	}
	return _u
}

// ClearResultsFilePath clears the value of the "results_file_path" field.
func (_u *ExtractionJobUpdateOne) ClearResultsFilePath() *ExtractionJobUpdateOne {
	_u.mutation.ClearResultsFilePath()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdateOne) SetStatus(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStatus(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdateOne) SetErrorMessage(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableErrorMessage(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdateOne) ClearErrorMessage() *ExtractionJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRawExtractedData sets the "raw_extracted_data" field.
func (_u *ExtractionJobUpdateOne) SetRawExtractedData(v json.RawMessage) *ExtractionJobUpdateOne {
	_u.mutation.SetRawExtractedData(v)
	return _u
}

// AppendRawExtractedData appends value to the "raw_extracted_data" field.
func (_u *ExtractionJobUpdateOne) AppendRawExtractedData(v json.RawMessage) *ExtractionJobUpdateOne {
	_u.mutation.AppendRawExtractedData(v)
	return _u
}

// ClearRawExtractedData clears the value of the "raw_extracted_data" field.
func (_u *ExtractionJobUpdateOne) ClearRawExtractedData() *ExtractionJobUpdateOne {
	_u.mutation.ClearRawExtractedData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionJobUpdateOne) SetCreatedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionJobUpdateOne) SetUpdatedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAdapter sets the "adapter" edge to the PortalAdapter entity.
func (_u *ExtractionJobUpdateOne) SetAdapter(v *PortalAdapter) *ExtractionJobUpdateOne {
	return _u.SetAdapterID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdateOne) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearAdapter clears the "adapter" edge to the PortalAdapter entity.
func (_u *ExtractionJobUpdateOne) ClearAdapter() *ExtractionJobUpdateOne {
	_u.mutation.ClearAdapter()
	return _u
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdateOne) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionJobUpdateOne) Select(field string, fields ...string) *ExtractionJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionJob entity.
func (_u *ExtractionJobUpdateOne) Save(ctx context.Context) (*ExtractionJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) SaveX(ctx context.Context) *ExtractionJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdateOne) check() error {
	if v, ok := _u.mutation.TargetURL(); ok {
		if err := extractionjob.TargetURLValidator(v); err != nil {
			return &ValidationError{Name: "target_url", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.target_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionMode(); ok {
		if err := extractionjob.ExtractionModeValidator(v); err != nil {
			return &ValidationError{Name: "extraction_mode", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.extraction_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if _u.mutation.AdapterCleared() && len(_u.mutation.AdapterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionJob.adapter"`)
	}
	return nil
}

func (_u *ExtractionJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionjob.FieldID)
		for _, f := range fields {
			if !extractionjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobName(); ok {
		_spec.SetField(extractionjob.FieldJobName, field.TypeString, value)
	}
	if _u.mutation.JobNameCleared() {
		_spec.ClearField(extractionjob.FieldJobName, field.TypeString)
	}
	if value, ok := _u.mutation.TargetURL(); ok {
		_spec.SetField(extractionjob.FieldTargetURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionMode(); ok {
		_spec.SetField(extractionjob.FieldExtractionMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientIdentifier(); ok {
		_spec.SetField(extractionjob.FieldPatientIdentifier, field.TypeString, value)
	}
	if _u.mutation.PatientIdentifierCleared() {
		_spec.ClearField(extractionjob.FieldPatientIdentifier, field.TypeString)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(extractionjob.FieldDoctorName, field.TypeString, value)
	}
	if _u.mutation.DoctorNameCleared() {
		_spec.ClearField(extractionjob.FieldDoctorName, field.TypeString)
	}
	if value, ok := _u.mutation.Medication(); ok {
		_spec.SetField(extractionjob.FieldMedication, field.TypeString, value)
	}
	if _u.mutation.MedicationCleared() {
		_spec.ClearField(extractionjob.FieldMedication, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(extractionjob.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(extractionjob.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(extractionjob.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(extractionjob.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ResultsFilePath(); ok {
		_spec.SetField(extractionjob.FieldResultsFilePath, field.TypeString, value)
	}
	if _u.mutation.ResultsFilePathCleared() {
		_spec.ClearField(extractionjob.FieldResultsFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RawExtractedData(); ok {
		_spec.SetField(extractionjob.FieldRawExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldRawExtractedData, value)
		})
	}
	if _u.mutation.RawExtractedDataCleared() {
		_spec.ClearField(extractionjob.FieldRawExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AdapterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.AdapterTable,
			Columns: []string{extractionjob.AdapterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(portaladapter.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdapterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.AdapterTable,
			Columns: []string{extractionjob.AdapterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(portaladapter.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
