// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chartpull/portal-extractor/gen/ent/extractionjob"
	"github.com/chartpull/portal-extractor/gen/ent/portaladapter"
	"github.com/google/uuid"
)

// PortalAdapterCreate is the builder for creating a PortalAdapter entity.
type PortalAdapterCreate struct {
	config
	mutation *PortalAdapterMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *PortalAdapterCreate) SetName(v string) *PortalAdapterCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetScriptIdentifier sets the "script_identifier" field.
func (_c *PortalAdapterCreate) SetScriptIdentifier(v string) *PortalAdapterCreate {
	_c.mutation.SetScriptIdentifier(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PortalAdapterCreate) SetDescription(v string) *PortalAdapterCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PortalAdapterCreate) SetNillableDescription(v *string) *PortalAdapterCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PortalAdapterCreate) SetIsActive(v bool) *PortalAdapterCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PortalAdapterCreate) SetNillableIsActive(v *bool) *PortalAdapterCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PortalAdapterCreate) SetCreatedAt(v time.Time) *PortalAdapterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PortalAdapterCreate) SetNillableCreatedAt(v *time.Time) *PortalAdapterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PortalAdapterCreate) SetUpdatedAt(v time.Time) *PortalAdapterCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PortalAdapterCreate) SetNillableUpdatedAt(v *time.Time) *PortalAdapterCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PortalAdapterCreate) SetID(v uuid.UUID) *PortalAdapterCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PortalAdapterCreate) SetNillableID(v *uuid.UUID) *PortalAdapterCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_c *PortalAdapterCreate) AddJobIDs(ids ...uuid.UUID) *PortalAdapterCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_c *PortalAdapterCreate) AddJobs(v ...*ExtractionJob) *PortalAdapterCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the PortalAdapterMutation object of the builder.
func (_c *PortalAdapterCreate) Mutation() *PortalAdapterMutation {
	return _c.mutation
}

// Save creates the PortalAdapter in the database.
func (_c *PortalAdapterCreate) Save(ctx context.Context) (*PortalAdapter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PortalAdapterCreate) SaveX(ctx context.Context) *PortalAdapter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PortalAdapterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PortalAdapterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PortalAdapterCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := portaladapter.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := portaladapter.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := portaladapter.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := portaladapter.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PortalAdapterCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PortalAdapter.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := portaladapter.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PortalAdapter.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScriptIdentifier(); !ok {
		return &ValidationError{Name: "script_identifier", err: errors.New(`ent: missing required field "PortalAdapter.script_identifier"`)}
	}
	if v, ok := _c.mutation.ScriptIdentifier(); ok {
		if err := portaladapter.ScriptIdentifierValidator(v); err != nil {
			return &ValidationError{Name: "script_identifier", err: fmt.Errorf(`ent: validator failed for field "PortalAdapter.script_identifier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "PortalAdapter.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PortalAdapter.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PortalAdapter.updated_at"`)}
	}
	return nil
}

func (_c *PortalAdapterCreate) sqlSave(ctx context.Context) (*PortalAdapter, error) {
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

func (_c *PortalAdapterCreate) createSpec() (*PortalAdapter, *sqlgraph.CreateSpec) {
	var (
		_node = &PortalAdapter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(portaladapter.Table, sqlgraph.NewFieldSpec(portaladapter.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(portaladapter.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ScriptIdentifier(); ok {
		_spec.SetField(portaladapter.FieldScriptIdentifier, field.TypeString, value)
		_node.ScriptIdentifier = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(portaladapter.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(portaladapter.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(portaladapter.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(portaladapter.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PortalAdapterCreateBulk is the builder for creating many PortalAdapter entities in bulk.
type PortalAdapterCreateBulk struct {
	config
	err      error
	builders []*PortalAdapterCreate
}

// Save creates the PortalAdapter entities in the database.
func (_c *PortalAdapterCreateBulk) Save(ctx context.Context) ([]*PortalAdapter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PortalAdapter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PortalAdapterMutation)
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
func (_c *PortalAdapterCreateBulk) SaveX(ctx context.Context) []*PortalAdapter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PortalAdapterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PortalAdapterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
