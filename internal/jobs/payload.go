package jobs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ResultPayload is the structured result an automation run reports on
// extraction_completed.
type ResultPayload struct {
	Patients    []PatientRecord `json:"patients"`
	ExtractedAt string          `json:"extracted_at,omitempty"`
}

type PatientRecord struct {
	PatientID   string   `json:"patient_id"`
	PatientName string   `json:"patient_name,omitempty"`
	Medications []string `json:"medications,omitempty"`
	Diagnoses   []string `json:"diagnoses,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
}

var resultSchema = map[string]any{
	"type":     "object",
	"required": []any{"patients"},
	"properties": map[string]any{
		"patients": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"patient_id"},
				"properties": map[string]any{
					"patient_id":   map[string]any{"type": "string", "minLength": 1},
					"patient_name": map[string]any{"type": "string"},
					"medications":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"diagnoses":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"allergies":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			},
		},
		"extracted_at": map[string]any{"type": "string"},
	},
}

// ValidateResultPayload validates "data" against the result schema.
func ValidateResultPayload(data []byte) error {
	b, err := json.Marshal(resultSchema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("result.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("result.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ParseResultPayload decodes a stored payload. Payloads that fail validation
// are treated as absent rather than surfaced as an error.
func ParseResultPayload(data []byte) *ResultPayload {
	if len(data) == 0 {
		return nil
	}
	if err := ValidateResultPayload(data); err != nil {
		return nil
	}
	var p ResultPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	return &p
}
