package ai

import "github.com/agrosuivi/farmdesk/internal/extract"

// numericFields are returned as JSON numbers, everything else as strings.
var numericFields = map[string]struct{}{
	extract.FieldTurnover:  {},
	extract.FieldEmployees: {},
	extract.FieldMaxAmount: {},
	extract.FieldMinAmount: {},
}

// BuildProfileJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the model as a structured output constraint
// and also use it locally to validate the answer.
func BuildProfileJSONSchema(targetFields []string) map[string]any {
	if len(targetFields) == 0 {
		targetFields = extract.SchemaFields
	}
	props := map[string]any{
		"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}
	for _, f := range targetFields {
		if _, ok := numericFields[f]; ok {
			props[f] = map[string]any{"type": "number"}
			continue
		}
		props[f] = map[string]any{"type": "string", "minLength": 1}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		// no field is required: the model omits what the document does not
		// contain instead of inventing values
		"required": []string{},
	}
}
