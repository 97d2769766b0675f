// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chartpull/portal-extractor/gen/ent/extractionjob"
	"github.com/chartpull/portal-extractor/gen/ent/portaladapter"
	"github.com/google/uuid"
)

// ExtractionJobCreate is the builder for creating a ExtractionJob entity.
type ExtractionJobCreate struct {
	config
	mutation *ExtractionJobMutation
	hooks    []Hook
}

// SetJobName sets the "job_name" field.
func (_c *ExtractionJobCreate) SetJobName(v string) *ExtractionJobCreate {
	_c.mutation.SetJobName(v)
	return _c
}

// SetNillableJobName sets the "job_name" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableJobName(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetJobName(*v)
	}
	return _c
}

// SetTargetURL sets the "target_url" field.
func (_c *ExtractionJobCreate) SetTargetURL(v string) *ExtractionJobCreate {
	_c.mutation.SetTargetURL(v)
	return _c
}

// SetAdapterID sets the "adapter_id" field.
func (_c *ExtractionJobCreate) SetAdapterID(v uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetAdapterID(v)
	return _c
}

// SetExtractionMode sets the "extraction_mode" field.
func (_c *ExtractionJobCreate) SetExtractionMode(v string) *ExtractionJobCreate {
	_c.mutation.SetExtractionMode(v)
	return _c
}

// SetPatientIdentifier sets the "patient_identifier" field.
func (_c *ExtractionJobCreate) SetPatientIdentifier(v string) *ExtractionJobCreate {
	_c.mutation.SetPatientIdentifier(v)
	return _c
}

// SetNillablePatientIdentifier sets the "patient_identifier" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillablePatientIdentifier(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetPatientIdentifier(*v)
	}
	return _c
}

// SetDoctorName sets the "doctor_name" field.
func (_c *ExtractionJobCreate) SetDoctorName(v string) *ExtractionJobCreate {
	_c.mutation.SetDoctorName(v)
	return _c
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableDoctorName(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetDoctorName(*v)
	}
	return _c
}

// SetMedication sets the "medication" field.
func (_c *ExtractionJobCreate) SetMedication(v string) *ExtractionJobCreate {
	_c.mutation.SetMedication(v)
	return _c
}

// SetNillableMedication sets the "medication" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableMedication(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetMedication(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *ExtractionJobCreate) SetStartDate(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableStartDate(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *ExtractionJobCreate) SetEndDate(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableEndDate(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetResultsFilePath sets the "results_file_path" field.
func (_c *ExtractionJobCreate) SetResultsFilePath(v string) *ExtractionJobCreate {
	_c.mutation.SetResultsFilePath(v)
	return _c
}

// SetNillableResultsFilePath sets the "results_file_path" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableResultsFilePath(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetResultsFilePath(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionJobCreate) SetStatus(v string) *ExtractionJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableStatus(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionJobCreate) SetErrorMessage(v string) *ExtractionJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableErrorMessage(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRawExtractedData sets the "raw_extracted_data" field.
func (_c *ExtractionJobCreate) SetRawExtractedData(v json.RawMessage) *ExtractionJobCreate {
	_c.mutation.SetRawExtractedData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionJobCreate) SetCreatedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableCreatedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractionJobCreate) SetUpdatedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableUpdatedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionJobCreate) SetID(v uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableID(v *uuid.UUID) *ExtractionJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAdapter sets the "adapter" edge to the PortalAdapter entity.
func (_c *ExtractionJobCreate) SetAdapter(v *PortalAdapter) *ExtractionJobCreate {
	return _c.SetAdapterID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_c *ExtractionJobCreate) Mutation() *ExtractionJobMutation {
	return _c.mutation
}

// Save creates the ExtractionJob in the database.
func (_c *ExtractionJobCreate) Save(ctx context.Context) (*ExtractionJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionJobCreate) SaveX(ctx context.Context) *ExtractionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := extractionjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extractionjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionJobCreate) check() error {
	if _, ok := _c.mutation.TargetURL(); !ok {
		return &ValidationError{Name: "target_url", err: errors.New(`ent: missing required field "ExtractionJob.target_url"`)}
	}
	if v, ok := _c.mutation.TargetURL(); ok {
		if err := extractionjob.TargetURLValidator(v); err != nil {
			return &ValidationError{Name: "target_url", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.target_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AdapterID(); !ok {
		return &ValidationError{Name: "adapter_id", err: errors.New(`ent: missing required field "ExtractionJob.adapter_id"`)}
	}
	if _, ok := _c.mutation.ExtractionMode(); !ok {
		return &ValidationError{Name: "extraction_mode", err: errors.New(`ent: missing required field "ExtractionJob.extraction_mode"`)}
	}
	if v, ok := _c.mutation.ExtractionMode(); ok {
		if err := extractionjob.ExtractionModeValidator(v); err != nil {
			return &ValidationError{Name: "extraction_mode", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.extraction_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractionJob.updated_at"`)}
	}
	if len(_c.mutation.AdapterIDs()) == 0 {
		return &ValidationError{Name: "adapter", err: errors.New(`ent: missing required edge "ExtractionJob.adapter"`)}
	}
	return nil
}

func (_c *ExtractionJobCreate) sqlSave(ctx context.Context) (*ExtractionJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionJobCreate) createSpec() (*ExtractionJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionjob.Table, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobName(); ok {
		_spec.SetField(extractionjob.FieldJobName, field.TypeString, value)
		_node.JobName = value
	}
	if value, ok := _c.mutation.TargetURL(); ok {
		_spec.SetField(extractionjob.FieldTargetURL, field.TypeString, value)
		_node.TargetURL = value
	}
	if value, ok := _c.mutation.ExtractionMode(); ok {
		_spec.SetField(extractionjob.FieldExtractionMode, field.TypeString, value)
		_node.ExtractionMode = value
	}
	if value, ok := _c.mutation.PatientIdentifier(); ok {
		_spec.SetField(extractionjob.FieldPatientIdentifier, field.TypeString, value)
		_node.PatientIdentifier = value
	}
	if value, ok := _c.mutation.DoctorName(); ok {
		_spec.SetField(extractionjob.FieldDoctorName, field.TypeString, value)
		_node.DoctorName = value
	}
	if value, ok := _c.mutation.Medication(); ok {
		_spec.SetField(extractionjob.FieldMedication, field.TypeString, value)
		_node.Medication = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(extractionjob.FieldStartDate, field.TypeTime, value)
		_node.StartDate = &value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(extractionjob.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	if value, ok := _c.mutation.ResultsFilePath(); ok {
		_spec.SetField(extractionjob.FieldResultsFilePath, field.TypeString, value)
		_node.ResultsFilePath = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.RawExtractedData(); ok {
		_spec.SetField(extractionjob.FieldRawExtractedData, field.TypeJSON, value)
		_node.RawExtractedData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AdapterIDs(); len(nodes) > 0 {
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
		_node.AdapterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionJobCreateBulk is the builder for creating many ExtractionJob entities in bulk.
type ExtractionJobCreateBulk struct {
	config
	err      error
	builders []*ExtractionJobCreate
}

// Save creates the ExtractionJob entities in the database.
func (_c *ExtractionJobCreateBulk) Save(ctx context.Context) ([]*ExtractionJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionJobCreateBulk) SaveX(ctx context.Context) []*ExtractionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
