package pattern

import (
	"regexp"
	"strings"

	"github.com/agrosuivi/farmdesk/internal/extract"
	"github.com/agrosuivi/farmdesk/internal/validate"
)

// NewFrench builds the extractor for French business-registry extracts
// (Kbis, INSEE situation notices). Labeled patterns rank above bare-digit
// fallbacks; SIREN/SIRET/IBAN matches are checksum-adjusted.
func NewFrench() *Extractor {
	return &Extractor{
		name: "fr_registry",
		fields: []fieldRules{
			{
				field: extract.FieldSiret,
				rules: []rule{
					{regexp.MustCompile(`(?i)SIRET(?:\s*n[°o]?)?\s*[:\s]\s*((?:\d[\s.\-]?){13}\d)`), 0.90},
					{regexp.MustCompile(`\b(\d{14})\b`), 0.60},
				},
				checksum: validate.SIRET,
				clean:    stripSeparators,
			},
			{
				field: extract.FieldSiren,
				rules: []rule{
					{regexp.MustCompile(`(?i)SIREN(?:\s*n[°o]?)?\s*[:\s]\s*((?:\d[\s.\-]?){8}\d)`), 0.90},
					{regexp.MustCompile(`(?i)immatriculée?\s+sous\s+le\s+num[ée]ro\s+((?:\d[\s.\-]?){8}\d)`), 0.85},
					{regexp.MustCompile(`\b(\d{9})\b`), 0.55},
				},
				checksum: validate.SIREN,
				clean:    stripSeparators,
			},
			{
				field: extract.FieldVAT,
				rules: []rule{
					{regexp.MustCompile(`(?i)TVA(?:\s+intracommunautaire)?(?:\s*n[°o]?)?\s*[:\s]\s*(FR\s?\d{2}\s?(?:\d[\s.]?){8}\d)`), 0.90},
					{regexp.MustCompile(`\b(FR\d{11})\b`), 0.70},
				},
				clean: func(s string) string { return strings.ToUpper(stripSeparators(s)) },
			},
			{
				field: extract.FieldNAF,
				rules: []rule{
					{regexp.MustCompile(`(?i)(?:code\s+)?(?:NAF|APE)\s*[:\s]\s*(\d{2}\.?\d{2}[A-Z])`), 0.90},
				},
				clean: func(s string) string { return strings.ToUpper(stripSeparators(s)) },
			},
			{
				field: extract.FieldIBAN,
				rules: []rule{
					{regexp.MustCompile(`(?i)IBAN\s*[:\s]\s*([A-Z]{2}\d{2}(?:[ A-Z0-9]){11,36})`), 0.90},
					{regexp.MustCompile(`\b(FR\d{12}[A-Z0-9]{11}\d{2})\b`), 0.80},
				},
				checksum: validate.IBAN,
				clean:    func(s string) string { return strings.ToUpper(stripSeparators(s)) },
			},
			{
				field: extract.FieldFarmName,
				rules: []rule{
					{regexp.MustCompile(`(?i)(?:d[ée]nomination(?:\s+sociale)?|raison\s+sociale)\s*[:\s]\s*([^\n;]{3,80})`), 0.80},
					{regexp.MustCompile(`(?i)exploitation\s+agricole\s+[«"]([^»"\n]{3,80})[»"]`), 0.75},
				},
			},
			{
				field: extract.FieldLegalForm,
				rules: []rule{
					{regexp.MustCompile(`(?i)forme\s+juridique\s*[:\s]\s*([^\n;]{2,60})`), 0.85},
					{regexp.MustCompile(`\b(EARL|GAEC|SCEA|SARL|EURL|SASU|SAS|SA)\b`), 0.65},
				},
			},
			{
				field: extract.FieldAddress,
				rules: []rule{
					{regexp.MustCompile(`(?i)(?:si[èe]ge\s+social|adresse)\s*[:\s]\s*([^\n;]{5,120})`), 0.80},
				},
			},
			{
				field: extract.FieldPostalCode,
				rules: []rule{
					{regexp.MustCompile(`\b(\d{5})\s+[A-ZÀ-Ü]`), 0.60},
				},
			},
			{
				// the city shares its span with the postal code on purpose;
				// different fields may overlap
				field: extract.FieldCity,
				rules: []rule{
					{regexp.MustCompile(`\b\d{5}\s+([A-ZÀ-Ü][A-Za-zÀ-ü'\- ]{1,40})`), 0.55},
				},
			},
		},
	}
}
