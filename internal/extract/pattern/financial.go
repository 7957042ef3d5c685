package pattern

import (
	"regexp"
	"strings"

	"github.com/agrosuivi/farmdesk/internal/extract"
)

const amount = `((?:\d[\d\s.,\x{00a0}\x{202f}]*\d|\d))`

// NewFinancial builds the extractor for monetary and workforce figures found
// in subsidy descriptions and financial filings. All amounts go through the
// locale-aware number parser before being emitted.
func NewFinancial() *Extractor {
	return &Extractor{
		name: "financial",
		fields: []fieldRules{
			{
				field:   extract.FieldTurnover,
				numeric: true,
				rules: []rule{
					{regexp.MustCompile(`(?i)chiffre\s+d['’]affaires(?:\s+annuel)?\s*[:\s]\s*` + amount), 0.85},
					{regexp.MustCompile(`(?i)cifra\s+de\s+afaceri\s*[:\s]\s*` + amount), 0.85},
					{regexp.MustCompile(`(?i)\bCA\s*[:\s]\s*` + amount + `\s*(?:€|EUR)`), 0.65},
				},
			},
			{
				field:   extract.FieldMaxAmount,
				numeric: true,
				rules: []rule{
					{regexp.MustCompile(`(?i)montant\s+maximum\s+de\s+` + amount + `\s*(?:€|EUR)`), 0.90},
					{regexp.MustCompile(`(?i)(?:plafond|aide\s+maximale)\s*(?:de)?\s*[:\s]\s*` + amount + `\s*(?:€|EUR)`), 0.85},
					{regexp.MustCompile(`(?i)suma\s+maxim[ăa]\s+de\s+` + amount + `\s*(?:lei|RON|€|EUR)`), 0.85},
					{regexp.MustCompile(`(?i)jusqu['’][àa]\s+` + amount + `\s*(?:€|EUR)`), 0.70},
				},
			},
			{
				field:   extract.FieldMinAmount,
				numeric: true,
				rules: []rule{
					{regexp.MustCompile(`(?i)montant\s+minimum\s+de\s+` + amount + `\s*(?:€|EUR)`), 0.90},
					{regexp.MustCompile(`(?i)(?:plancher|aide\s+minimale)\s*(?:de)?\s*[:\s]\s*` + amount + `\s*(?:€|EUR)`), 0.85},
				},
			},
			{
				field:   extract.FieldEmployees,
				numeric: true,
				rules: []rule{
					{regexp.MustCompile(`(?i)effectif(?:\s+salari[ée])?\s*[:\s]\s*(\d{1,5})\b`), 0.85},
					{regexp.MustCompile(`(?i)num[ăa]r\s+(?:de\s+)?(?:salaria[țt]i|angaja[țt]i)\s*[:\s]\s*(\d{1,5})\b`), 0.85},
					{regexp.MustCompile(`(?i)\b(\d{1,5})\s+(?:salari[ée]s|employ[ée]s|angaja[țt]i|employees)\b`), 0.70},
				},
			},
			{
				field: extract.FieldCurrency,
				clean: canonicalCurrency,
				rules: []rule{
					{regexp.MustCompile(`(?i)(€|\bEUR\b)`), 0.70},
					{regexp.MustCompile(`(?i)\b(RON|lei)\b`), 0.70},
				},
			},
		},
	}
}

func canonicalCurrency(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "€", "EUR":
		return "EUR"
	case "RON", "LEI":
		return "RON"
	}
	return strings.ToUpper(strings.TrimSpace(s))
}
