package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	assert.Nil(t, Required("name", "value"))
	assert.NotNil(t, Required("name", ""))
	assert.NotNil(t, Required("name", "   "))
	assert.NotNil(t, Required("name", nil))

	empty := ""
	assert.NotNil(t, Required("name", &empty))
	filled := "x"
	assert.Nil(t, Required("name", &filled))
}

func TestMaxLength(t *testing.T) {
	rule := MaxLength(5)
	assert.Nil(t, rule("name", "short"))
	assert.NotNil(t, rule("name", "too long"))
	// Counted in runes, not bytes.
	assert.Nil(t, rule("name", "héllo"))
	// Non-strings pass through.
	assert.Nil(t, rule("name", 42))
}

func TestOneOf(t *testing.T) {
	rule := OneOf("SINGLE_PATIENT", "ALL_PATIENTS")
	assert.Nil(t, rule("mode", "ALL_PATIENTS"))
	assert.NotNil(t, rule("mode", "EVERYONE"))
	// Empty passes; Required owns the mandatory check.
	assert.Nil(t, rule("mode", ""))
}

func TestValidatorCollectsAllErrors(t *testing.T) {
	v := NewValidator()
	v.Field("target_url", "", Required)
	v.Field("mode", "EVERYONE", OneOf("SINGLE_PATIENT", "ALL_PATIENTS"))
	v.Field("job_name", "ok", Required)

	require.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)

	err := v.Error()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "target_url")
	assert.Contains(t, err.Error(), "mode")
	assert.Equal(t, 1, strings.Count(err.Error(), ";"), "errors joined in one message")
}

func TestValidatorNoErrors(t *testing.T) {
	v := NewValidator()
	v.Field("target_url", "https://portal.example", Required, MaxLength(2048))
	assert.False(t, v.HasErrors())
	assert.NoError(t, v.Error())
}
