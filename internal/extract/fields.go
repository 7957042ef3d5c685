// Package extract defines the typed, confidence-scored field results shared
// by the pattern extractors, the AI collaborator, and the merge steps.
package extract

import (
	"fmt"
	"sort"

	"github.com/agrosuivi/farmdesk/constants"
)

// Canonical field names of the profile schema. A result set maps a subset of
// these to results; absence means "not found", not zero confidence.
const (
	FieldSiren        = "siren_number"
	FieldSiret        = "siret_number"
	FieldVAT          = "vat_number"
	FieldNAF          = "naf_code"
	FieldCUI          = "cui_number"
	FieldONRC         = "onrc_number"
	FieldCNP          = "cnp_number"
	FieldIBAN         = "iban"
	FieldFarmName     = "farm_name"
	FieldLegalForm    = "legal_form"
	FieldAddress      = "address"
	FieldPostalCode   = "postal_code"
	FieldCity         = "city"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldTurnover     = "turnover"
	FieldEmployees    = "employee_count"
	FieldMaxAmount    = "max_amount"
	FieldMinAmount    = "min_amount"
	FieldCurrency     = "currency"
	FieldActivityDesc = "activity_description"
)

// SchemaFields is the fixed field schema the pipeline extracts into.
var SchemaFields = []string{
	FieldSiren, FieldSiret, FieldVAT, FieldNAF,
	FieldCUI, FieldONRC, FieldCNP, FieldIBAN,
	FieldFarmName, FieldLegalForm, FieldAddress, FieldPostalCode, FieldCity,
	FieldEmail, FieldPhone,
	FieldTurnover, FieldEmployees, FieldMaxAmount, FieldMinAmount, FieldCurrency,
	FieldActivityDesc,
}

// NarrativeFields are free-text fields patterns cannot usefully cover; they
// are only filled by the AI collaborator when requested.
var NarrativeFields = []string{FieldActivityDesc}

var schemaFieldSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(SchemaFields))
	for _, f := range SchemaFields {
		s[f] = struct{}{}
	}
	return s
}()

// IsSchemaField reports whether name belongs to the fixed field schema.
func IsSchemaField(name string) bool {
	_, ok := schemaFieldSet[name]
	return ok
}

// Span marks where in the source text a value was matched.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FieldResult is one extracted value with its provenance.
type FieldResult struct {
	Value      any                   `json:"value"`
	Confidence float64               `json:"confidence"`
	Source     constants.FieldSource `json:"source"`
	Span       *Span                 `json:"span,omitempty"`
	RawMatch   string                `json:"raw_match,omitempty"`
}

// Validate checks the result against its own invariants. Results cross
// process boundaries (AI call, persistence) and are not trusted implicitly.
func (r FieldResult) Validate() error {
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence %v out of [0,1]", r.Confidence)
	}
	switch r.Source {
	case constants.SourcePattern, constants.SourceAI,
		constants.SourceCalculation, constants.SourceLookup:
	case constants.SourceManual:
		if r.Confidence != 1.0 {
			return fmt.Errorf("manual result must carry confidence 1.0, got %v", r.Confidence)
		}
	default:
		return fmt.Errorf("unknown source %q", r.Source)
	}
	if r.Value == nil {
		return fmt.Errorf("nil value")
	}
	return nil
}

// ResultSet maps field name -> result for the fixed schema.
type ResultSet map[string]FieldResult

// Validate validates every member result.
func (rs ResultSet) Validate() error {
	for name, r := range rs {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
	}
	return nil
}

// Names returns the extracted field names in deterministic order.
func (rs ResultSet) Names() []string {
	out := make([]string, 0, len(rs))
	for name := range rs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Clone returns a shallow-value copy safe for independent mutation of the map.
func (rs ResultSet) Clone() ResultSet {
	out := make(ResultSet, len(rs))
	for name, r := range rs {
		out[name] = r
	}
	return out
}
