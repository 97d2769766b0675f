// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chartpull/portal-extractor/gen/ent/extractionjob"
	"github.com/chartpull/portal-extractor/gen/ent/portaladapter"
	"github.com/chartpull/portal-extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// PortalAdapterUpdate is the builder for updating PortalAdapter entities.
type PortalAdapterUpdate struct {
	config
	hooks    []Hook
	mutation *PortalAdapterMutation
}

// Where appends a list predicates to the PortalAdapterUpdate builder.
func (_u *PortalAdapterUpdate) Where(ps ...predicate.PortalAdapter) *PortalAdapterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PortalAdapterUpdate) SetName(v string) *PortalAdapterUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PortalAdapterUpdate) SetNillableName(v *string) *PortalAdapterUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetScriptIdentifier sets the "script_identifier" field.
func (_u *PortalAdapterUpdate) SetScriptIdentifier(v string) *PortalAdapterUpdate {
	_u.mutation.SetScriptIdentifier(v)
	return _u
}

// SetNillableScriptIdentifier sets the "script_identifier" field if the given value is not nil.
func (_u *PortalAdapterUpdate) SetNillableScriptIdentifier(v *string) *PortalAdapterUpdate {
	if v != nil {
		_u.SetScriptIdentifier(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PortalAdapterUpdate) SetDescription(v string) *PortalAdapterUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PortalAdapterUpdate) SetNillableDescription(v *string) *PortalAdapterUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PortalAdapterUpdate) ClearDescription() *PortalAdapterUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PortalAdapterUpdate) SetIsActive(v bool) *PortalAdapterUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PortalAdapterUpdate) SetNillableIsActive(v *bool) *PortalAdapterUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PortalAdapterUpdate) SetCreatedAt(v time.Time) *PortalAdapterUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PortalAdapterUpdate) SetNillableCreatedAt(v *time.Time) *PortalAdapterUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PortalAdapterUpdate) SetUpdatedAt(v time.Time) *PortalAdapterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_u *PortalAdapterUpdate) AddJobIDs(ids ...uuid.UUID) *PortalAdapterUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_u *PortalAdapterUpdate) AddJobs(v ...*ExtractionJob) *PortalAdapterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the PortalAdapterMutation object of the builder.
func (_u *PortalAdapterUpdate) Mutation() *PortalAdapterMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ExtractionJob entity.
func (_u *PortalAdapterUpdate) ClearJobs() *PortalAdapterUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractionJob entities by IDs.
func (_u *PortalAdapterUpdate) RemoveJobIDs(ids ...uuid.UUID) *PortalAdapterUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractionJob entities.
func (_u *PortalAdapterUpdate) RemoveJobs(v ...*ExtractionJob) *PortalAdapterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PortalAdapterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PortalAdapterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PortalAdapterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PortalAdapterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PortalAdapterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := portaladapter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PortalAdapterUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := portaladapter.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PortalAdapter.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScriptIdentifier(); ok {
		if err := portaladapter.ScriptIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "script_identifier", err: fmt.Errorf(`ent: validator failed for field "PortalAdapter.script_identifier": %w`, err)}
		}
	}
	return nil
}

func (_u *PortalAdapterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(portaladapter.Table, portaladapter.Columns, sqlgraph.NewFieldSpec(portaladapter.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(portaladapter.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScriptIdentifier(); ok {
		_spec.SetField(portaladapter.FieldScriptIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(portaladapter.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(portaladapter.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(portaladapter.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(portaladapter.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(portaladapter.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   portaladapter.JobsTable,
			Columns: []string{portaladapter.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   portaladapter.JobsTable,
			Columns: []string{portaladapter.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   portaladapter.JobsTable,
			Columns: []string{portaladapter.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{portaladapter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PortalAdapterUpdateOne is the builder for updating a single PortalAdapter entity.
type PortalAdapterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PortalAdapterMutation
}

// SetName sets the "name" field.
func (_u *PortalAdapterUpdateOne) SetName(v string) *PortalAdapterUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PortalAdapterUpdateOne) SetNillableName(v *string) *PortalAdapterUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetScriptIdentifier sets the "script_identifier" field.
func (_u *PortalAdapterUpdateOne) SetScriptIdentifier(v string) *PortalAdapterUpdateOne {
	_u.mutation.SetScriptIdentifier(v)
	return _u
}

// SetNillableScriptIdentifier sets the "script_identifier" field if the given value is not nil.
func (_u *PortalAdapterUpdateOne) SetNillableScriptIdentifier(v *string) *PortalAdapterUpdateOne {
	if v != nil {
		_u.SetScriptIdentifier(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PortalAdapterUpdateOne) SetDescription(v string) *PortalAdapterUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PortalAdapterUpdateOne) SetNillableDescription(v *string) *PortalAdapterUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PortalAdapterUpdateOne) ClearDescription() *PortalAdapterUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PortalAdapterUpdateOne) SetIsActive(v bool) *PortalAdapterUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PortalAdapterUpdateOne) SetNillableIsActive(v *bool) *PortalAdapterUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PortalAdapterUpdateOne) SetCreatedAt(v time.Time) *PortalAdapterUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PortalAdapterUpdateOne) SetNillableCreatedAt(v *time.Time) *PortalAdapterUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PortalAdapterUpdateOne) SetUpdatedAt(v time.Time) *PortalAdapterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_u *PortalAdapterUpdateOne) AddJobIDs(ids ...uuid.UUID) *PortalAdapterUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_u *PortalAdapterUpdateOne) AddJobs(v ...*ExtractionJob) *PortalAdapterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the PortalAdapterMutation object of the builder.
func (_u *PortalAdapterUpdateOne) Mutation() *PortalAdapterMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ExtractionJob entity.
func (_u *PortalAdapterUpdateOne) ClearJobs() *PortalAdapterUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractionJob entities by IDs.
func (_u *PortalAdapterUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *PortalAdapterUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractionJob entities.
func (_u *PortalAdapterUpdateOne) RemoveJobs(v ...*ExtractionJob) *PortalAdapterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the PortalAdapterUpdate builder.
func (_u *PortalAdapterUpdateOne) Where(ps ...predicate.PortalAdapter) *PortalAdapterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PortalAdapterUpdateOne) Select(field string, fields ...string) *PortalAdapterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PortalAdapter entity.
func (_u *PortalAdapterUpdateOne) Save(ctx context.Context) (*PortalAdapter, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PortalAdapterUpdateOne) SaveX(ctx context.Context) *PortalAdapter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PortalAdapterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PortalAdapterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PortalAdapterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := portaladapter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PortalAdapterUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := portaladapter.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PortalAdapter.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScriptIdentifier(); ok {
		if err := portaladapter.ScriptIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "script_identifier", err: fmt.Errorf(`ent: validator failed for field "PortalAdapter.script_identifier": %w`, err)}
		}
	}
	return nil
}

func (_u *PortalAdapterUpdateOne) sqlSave(ctx context.Context) (_node *PortalAdapter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(portaladapter.Table, portaladapter.Columns, sqlgraph.NewFieldSpec(portaladapter.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PortalAdapter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, portaladapter.FieldID)
		for _, f := range fields {
			if !portaladapter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != portaladapter.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(portaladapter.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScriptIdentifier(); ok {
		_spec.SetField(portaladapter.FieldScriptIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(portaladapter.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(portaladapter.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(portaladapter.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(portaladapter.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(portaladapter.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   portaladapter.JobsTable,
			Columns: []string{portaladapter.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   portaladapter.JobsTable,
			Columns: []string{portaladapter.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   portaladapter.JobsTable,
			Columns: []string{portaladapter.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PortalAdapter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{portaladapter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
