// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/chartpull/portal-extractor/db/ent/schema"
	"github.com/chartpull/portal-extractor/gen/ent/extractionjob"
	"github.com/chartpull/portal-extractor/gen/ent/portaladapter"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractionjobFields := schema.ExtractionJob{}.Fields()
	_ = extractionjobFields
	// extractionjobDescTargetURL is the schema descriptor for target_url field.
	extractionjobDescTargetURL := extractionjobFields[2].Descriptor()
	// extractionjob.TargetURLValidator is a validator for the "target_url" field. It is called by the builders before save.
	extractionjob.TargetURLValidator = extractionjobDescTargetURL.Validators[0].(func(string) error)
	// extractionjobDescExtractionMode is the schema descriptor for extraction_mode field.
	extractionjobDescExtractionMode := extractionjobFields[4].Descriptor()
	// extractionjob.ExtractionModeValidator is a validator for the "extraction_mode" field. It is called by the builders before save.
	extractionjob.ExtractionModeValidator = func() func(string) error {
		validators := extractionjobDescExtractionMode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(extraction_mode string) error {
			for _, fn := range fns {
				if err := fn(extraction_mode); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionjobDescStatus is the schema descriptor for status field.
	extractionjobDescStatus := extractionjobFields[11].Descriptor()
	// extractionjob.DefaultStatus holds the default value on creation for the status field.
	extractionjob.DefaultStatus = extractionjobDescStatus.Default.(string)
	// extractionjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionjob.StatusValidator = func() func(string) error {
		validators := extractionjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionjobDescCreatedAt is the schema descriptor for created_at field.
	extractionjobDescCreatedAt := extractionjobFields[14].Descriptor()
	// extractionjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionjob.DefaultCreatedAt = extractionjobDescCreatedAt.Default.(func() time.Time)
	// extractionjobDescUpdatedAt is the schema descriptor for updated_at field.
	extractionjobDescUpdatedAt := extractionjobFields[15].Descriptor()
	// extractionjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractionjob.DefaultUpdatedAt = extractionjobDescUpdatedAt.Default.(func() time.Time)
	// extractionjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractionjob.UpdateDefaultUpdatedAt = extractionjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractionjobDescID is the schema descriptor for id field.
	extractionjobDescID := extractionjobFields[0].Descriptor()
	// extractionjob.DefaultID holds the default value on creation for the id field.
	extractionjob.DefaultID = extractionjobDescID.Default.(func() uuid.UUID)
	portaladapterFields := schema.PortalAdapter{}.Fields()
	_ = portaladapterFields
	// portaladapterDescName is the schema descriptor for name field.
	portaladapterDescName := portaladapterFields[1].Descriptor()
	// portaladapter.NameValidator is a validator for the "name" field. It is called by the builders before save.
	portaladapter.NameValidator = portaladapterDescName.Validators[0].(func(string) error)
	// portaladapterDescScriptIdentifier is the schema descriptor for script_identifier field.
	portaladapterDescScriptIdentifier := portaladapterFields[2].Descriptor()
	// portaladapter.ScriptIdentifierValidator is a validator for the "script_identifier" field. It is called by the builders before save.
	portaladapter.ScriptIdentifierValidator = portaladapterDescScriptIdentifier.Validators[0].(func(string) error)
	// portaladapterDescIsActive is the schema descriptor for is_active field.
	portaladapterDescIsActive := portaladapterFields[4].Descriptor()
	// portaladapter.DefaultIsActive holds the default value on creation for the is_active field.
	portaladapter.DefaultIsActive = portaladapterDescIsActive.Default.(bool)
	// portaladapterDescCreatedAt is the schema descriptor for created_at field.
	portaladapterDescCreatedAt := portaladapterFields[5].Descriptor()
	// portaladapter.DefaultCreatedAt holds the default value on creation for the created_at field.
	portaladapter.DefaultCreatedAt = portaladapterDescCreatedAt.Default.(func() time.Time)
	// portaladapterDescUpdatedAt is the schema descriptor for updated_at field.
	portaladapterDescUpdatedAt := portaladapterFields[6].Descriptor()
	// portaladapter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	portaladapter.DefaultUpdatedAt = portaladapterDescUpdatedAt.Default.(func() time.Time)
	// portaladapter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	portaladapter.UpdateDefaultUpdatedAt = portaladapterDescUpdatedAt.UpdateDefault.(func() time.Time)
	// portaladapterDescID is the schema descriptor for id field.
	portaladapterDescID := portaladapterFields[0].Descriptor()
	// portaladapter.DefaultID holds the default value on creation for the id field.
	portaladapter.DefaultID = portaladapterDescID.Default.(func() uuid.UUID)
}
