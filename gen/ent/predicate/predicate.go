// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractionJob is the predicate function for extractionjob builders.
type ExtractionJob func(*sql.Selector)

// PortalAdapter is the predicate function for portaladapter builders.
type PortalAdapter func(*sql.Selector)
