package pattern

import (
	"regexp"
	"strings"

	"github.com/agrosuivi/farmdesk/internal/extract"
)

// NewContact builds the extractor for contact coordinates shared by both
// jurisdictions.
func NewContact() *Extractor {
	return &Extractor{
		name: "contact",
		fields: []fieldRules{
			{
				field: extract.FieldEmail,
				rules: []rule{
					{regexp.MustCompile(`(?i)(?:e-?mail|courriel)\s*[:\s]\s*([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,})`), 0.90},
					{regexp.MustCompile(`\b([A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,})\b`), 0.80},
				},
				clean: func(s string) string { return strings.ToLower(strings.TrimSpace(s)) },
			},
			{
				field: extract.FieldPhone,
				rules: []rule{
					{regexp.MustCompile(`(?i)(?:t[ée]l(?:[ée]phone)?\.?|telefon|phone)\s*[:\s]\s*(\+?\d[\d\s().\-]{7,16}\d)`), 0.85},
					{regexp.MustCompile(`\b(\+(?:33|40)[\d\s.\-]{8,13}\d)\b`), 0.75},
				},
				clean: cleanPhone,
			},
		},
	}
}

func cleanPhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
