// Code generated by ent, DO NOT EDIT.

package portaladapter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chartpull/portal-extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEQ(FieldName, v))
}

// ScriptIdentifier applies equality check predicate on the "script_identifier" field. It's identical to ScriptIdentifierEQ.
func ScriptIdentifier(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEQ(FieldScriptIdentifier, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEQ(FieldDescription, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldContainsFold(FieldName, v))
}

// ScriptIdentifierEQ applies the EQ predicate on the "script_identifier" field.
func ScriptIdentifierEQ(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEQ(FieldScriptIdentifier, v))
}

// ScriptIdentifierNEQ applies the NEQ predicate on the "script_identifier" field.
func ScriptIdentifierNEQ(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldNEQ(FieldScriptIdentifier, v))
}

// ScriptIdentifierIn applies the In predicate on the "script_identifier" field.
func ScriptIdentifierIn(vs ...string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldIn(FieldScriptIdentifier, vs...))
}

// ScriptIdentifierNotIn applies the NotIn predicate on the "script_identifier" field.
func ScriptIdentifierNotIn(vs ...string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldNotIn(FieldScriptIdentifier, vs...))
}

// ScriptIdentifierGT applies the GT predicate on the "script_identifier" field.
func ScriptIdentifierGT(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldGT(FieldScriptIdentifier, v))
}

// ScriptIdentifierGTE applies the GTE predicate on the "script_identifier" field.
func ScriptIdentifierGTE(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldGTE(FieldScriptIdentifier, v))
}

// ScriptIdentifierLT applies the LT predicate on the "script_identifier" field.
func ScriptIdentifierLT(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldLT(FieldScriptIdentifier, v))
}

// ScriptIdentifierLTE applies the LTE predicate on the "script_identifier" field.
func ScriptIdentifierLTE(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldLTE(FieldScriptIdentifier, v))
}

// ScriptIdentifierContains applies the Contains predicate on the "script_identifier" field.
func ScriptIdentifierContains(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldContains(FieldScriptIdentifier, v))
}

// ScriptIdentifierHasPrefix applies the HasPrefix predicate on the "script_identifier" field.
func ScriptIdentifierHasPrefix(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldHasPrefix(FieldScriptIdentifier, v))
}

// ScriptIdentifierHasSuffix applies the HasSuffix predicate on the "script_identifier" field.
func ScriptIdentifierHasSuffix(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldHasSuffix(FieldScriptIdentifier, v))
}

// ScriptIdentifierEqualFold applies the EqualFold predicate on the "script_identifier" field.
func ScriptIdentifierEqualFold(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEqualFold(FieldScriptIdentifier, v))
}

// ScriptIdentifierContainsFold applies the ContainsFold predicate on the "script_identifier" field.
func ScriptIdentifierContainsFold(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldContainsFold(FieldScriptIdentifier, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldContainsFold(FieldDescription, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.PortalAdapter {
	return predicate.PortalAdapter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractionJob) predicate.PortalAdapter {
	return predicate.PortalAdapter(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PortalAdapter) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PortalAdapter) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PortalAdapter) predicate.PortalAdapter {
	return predicate.PortalAdapter(sql.NotPredicates(p))
}
