package constants

// ExtractionMode selects the extraction scope of a job.
type ExtractionMode string

const (
	ModeSinglePatient ExtractionMode = "SINGLE_PATIENT"
	ModeAllPatients   ExtractionMode = "ALL_PATIENTS"
)

// ExtractionModes lists every valid mode, for schema validation.
var ExtractionModes = []string{
	string(ModeSinglePatient),
	string(ModeAllPatients),
}
