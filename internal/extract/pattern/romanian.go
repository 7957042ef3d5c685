package pattern

import (
	"regexp"
	"strings"

	"github.com/agrosuivi/farmdesk/internal/extract"
	"github.com/agrosuivi/farmdesk/internal/validate"
)

// NewRomanian builds the extractor for Romanian registry extracts
// (certificat de înregistrare, ONRC excerpts). CUI/CNP/IBAN matches are
// checksum-adjusted.
func NewRomanian() *Extractor {
	return &Extractor{
		name: "ro_registry",
		fields: []fieldRules{
			{
				field: extract.FieldCUI,
				rules: []rule{
					{regexp.MustCompile(`(?i)(?:CUI|CIF|cod\s+unic\s+de\s+[îi]nregistrare|cod\s+fiscal)\s*[:\s]\s*((?:RO\s?)?\d{2,10})\b`), 0.90},
				},
				checksum: validate.CUI,
				clean:    func(s string) string { return strings.ToUpper(stripSeparators(s)) },
			},
			{
				field: extract.FieldONRC,
				rules: []rule{
					{regexp.MustCompile(`(?i)(?:nr\.?\s*(?:de\s+)?ordine\s+[îi]n\s+registrul\s+comer[țt]ului|ONRC)\s*[:\s]*([JFC]\s?\d{1,2}\s?/\s?\d{1,7}\s?/\s?\d{4})`), 0.90},
					{regexp.MustCompile(`\b([JFC]\d{1,2}/\d{1,7}/\d{4})\b`), 0.75},
				},
				clean: func(s string) string { return strings.ToUpper(strings.ReplaceAll(s, " ", "")) },
			},
			{
				// labeled only: a bare 13-digit run is far too ambiguous for
				// a personal identifier
				field: extract.FieldCNP,
				rules: []rule{
					{regexp.MustCompile(`(?i)CNP\s*[:\s]\s*((?:\d[\s.]?){12}\d)`), 0.90},
				},
				checksum: validate.CNP,
				clean:    stripSeparators,
			},
			{
				field: extract.FieldIBAN,
				rules: []rule{
					{regexp.MustCompile(`(?i)(?:cont(?:\s+bancar)?|IBAN)\s*[:\s]\s*(RO\s?\d{2}(?:[ A-Z0-9]){16,32})`), 0.90},
					{regexp.MustCompile(`\b(RO\d{2}[A-Z]{4}[A-Z0-9]{16})\b`), 0.80},
				},
				checksum: validate.IBAN,
				clean:    func(s string) string { return strings.ToUpper(stripSeparators(s)) },
			},
			{
				field: extract.FieldFarmName,
				rules: []rule{
					{regexp.MustCompile(`(?i)denumire(?:a?\s+firmei)?\s*[:\s]\s*([^\n;]{3,80})`), 0.80},
				},
			},
			{
				field: extract.FieldLegalForm,
				rules: []rule{
					{regexp.MustCompile(`(?i)forma\s+(?:juridic[ăa]|de\s+organizare)\s*[:\s]\s*([^\n;]{2,60})`), 0.85},
					{regexp.MustCompile(`\b(SRL|PFA|SNC|SCA|II|IF)\b`), 0.60},
				},
			},
			{
				field: extract.FieldAddress,
				rules: []rule{
					{regexp.MustCompile(`(?i)(?:sediu(?:l)?\s+social|adres[ăa])\s*[:\s]\s*([^\n;]{5,120})`), 0.80},
				},
			},
		},
	}
}
