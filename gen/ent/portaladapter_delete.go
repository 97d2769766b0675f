// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chartpull/portal-extractor/gen/ent/portaladapter"
	"github.com/chartpull/portal-extractor/gen/ent/predicate"
)

// PortalAdapterDelete is the builder for deleting a PortalAdapter entity.
type PortalAdapterDelete struct {
	config
	hooks    []Hook
	mutation *PortalAdapterMutation
}

// Where appends a list predicates to the PortalAdapterDelete builder.
func (_d *PortalAdapterDelete) Where(ps ...predicate.PortalAdapter) *PortalAdapterDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PortalAdapterDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PortalAdapterDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PortalAdapterDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(portaladapter.Table, sqlgraph.NewFieldSpec(portaladapter.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PortalAdapterDeleteOne is the builder for deleting a single PortalAdapter entity.
type PortalAdapterDeleteOne struct {
	_d *PortalAdapterDelete
}

// Where appends a list predicates to the PortalAdapterDelete builder.
func (_d *PortalAdapterDeleteOne) Where(ps ...predicate.PortalAdapter) *PortalAdapterDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PortalAdapterDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{portaladapter.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PortalAdapterDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
