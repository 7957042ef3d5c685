package ai

import (
	"encoding/json"
	"strings"

	"github.com/agrosuivi/farmdesk/internal/extract"
)

// SanitizeFields removes or normalizes fields that don't meet the strict
// schema, so an otherwise useful answer can still validate. Models sometimes
// return nulls, empty strings, or numbers-as-strings; none of that is worth
// rejecting the whole document over.
func SanitizeFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var dropped []string
	for k, v := range m {
		if k == "confidence" {
			continue
		}
		if !extract.IsSchemaField(k) {
			// models occasionally invent keys; the schema forbids them
			delete(m, k)
			dropped = append(dropped, k)
			continue
		}
		switch t := v.(type) {
		case nil:
			delete(m, k)
			dropped = append(dropped, k)
		case string:
			s := strings.TrimSpace(t)
			if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "n/a") {
				delete(m, k)
				dropped = append(dropped, k)
				continue
			}
			if _, numeric := numericFields[k]; numeric {
				// numbers handed back as localized strings
				if d, ok := extract.ParseLocalizedNumber(s); ok {
					m[k] = d.InexactFloat64()
				} else {
					delete(m, k)
					dropped = append(dropped, k)
				}
				continue
			}
			if k == extract.FieldCurrency {
				m[k] = strings.ToUpper(s)
			} else {
				m[k] = s
			}
		case float64:
			if _, numeric := numericFields[k]; !numeric {
				delete(m, k)
				dropped = append(dropped, k)
			}
		default:
			// arrays/objects have no place in a flat field map
			delete(m, k)
			dropped = append(dropped, k)
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, dropped, nil
}
