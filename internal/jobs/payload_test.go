package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResultPayload(t *testing.T) {
	valid := []byte(`{"patients":[{"patient_id":"p-1","patient_name":"Ada","medications":["metformin"],"diagnoses":["T2D"]}]}`)
	require.NoError(t, ValidateResultPayload(valid))

	assert.Error(t, ValidateResultPayload([]byte(`{"no_patients":true}`)), "missing patients array")
	assert.Error(t, ValidateResultPayload([]byte(`{"patients":[{"patient_name":"no id"}]}`)), "patient without id")
	assert.Error(t, ValidateResultPayload([]byte(`{"patients":"not an array"}`)))
	assert.Error(t, ValidateResultPayload([]byte(`not json at all`)))
}

func TestParseResultPayload(t *testing.T) {
	p := ParseResultPayload([]byte(`{"patients":[{"patient_id":"p-1"},{"patient_id":"p-2"}],"extracted_at":"2026-08-01T10:00:00Z"}`))
	require.NotNil(t, p)
	assert.Len(t, p.Patients, 2)
	assert.Equal(t, "p-1", p.Patients[0].PatientID)

	// Invalid stored payloads read back as absent, never as an error.
	assert.Nil(t, ParseResultPayload([]byte(`{"patients":[{}]}`)))
	assert.Nil(t, ParseResultPayload([]byte(`garbage`)))
	assert.Nil(t, ParseResultPayload(nil))
}
