package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildOCRResultJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the OCR acquisition payload. Callers that receive
// OCR output over a process boundary validate against it before parsing.
func BuildOCRResultJSONSchema() map[string]any {
	point := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"x": map[string]any{"type": "number"},
			"y": map[string]any{"type": "number"},
		},
		"required": []string{"x", "y"},
	}
	block := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"text":             map[string]any{"type": "string"},
			"confidence":       map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
			"line_number":      map[string]any{"type": "integer", "minimum": 0},
			"bounding_polygon": map[string]any{"type": "array", "items": point},
		},
		"required": []string{"text", "confidence", "line_number"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"success":     map[string]any{"type": "boolean"},
			"text":        map[string]any{"type": "string"},
			"text_blocks": map[string]any{"type": "array", "items": block},
		},
		"required": []string{"success", "text"},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
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

// DecodeOCRResult validates and decodes an OCR payload.
func DecodeOCRResult(data []byte) (OCRResult, error) {
	if err := ValidateJSONAgainstSchema(BuildOCRResultJSONSchema(), data); err != nil {
		return OCRResult{}, err
	}
	var res OCRResult
	if err := json.Unmarshal(data, &res); err != nil {
		return OCRResult{}, fmt.Errorf("decode ocr result: %w", err)
	}
	return res, nil
}
