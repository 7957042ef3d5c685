// Package pattern implements the deterministic regex extractors: one
// extractor per jurisdiction/domain, each scanning raw text with ordered
// pattern families and emitting confidence-scored field results.
package pattern

import (
	"regexp"
	"strings"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/internal/extract"
)

// rule is one compiled regex with its fixed confidence. Rules for a field are
// ordered most-specific first; the first match wins, later rules are not
// consulted.
type rule struct {
	re         *regexp.Regexp
	confidence float64
}

// fieldRules binds one schema field to its ordered rule family.
type fieldRules struct {
	field string
	rules []rule
	// checksum, when set, adjusts the matched confidence: pass raises to the
	// valid ceiling, fail lowers to the invalid band. The match is kept
	// either way.
	checksum func(string) bool
	// numeric parses the cleaned match as a locale-aware number.
	numeric bool
	// clean normalizes the raw capture into the stored value. Defaults to
	// whitespace/separator stripping for identifier-like fields.
	clean func(string) string
}

// Extractor scans text with a fixed set of field rule families. It holds only
// compiled patterns and is stateless across calls.
type Extractor struct {
	name   string
	fields []fieldRules
}

// Name identifies the extractor family (for logs and telemetry).
func (e *Extractor) Name() string { return e.name }

// Extract scans the text and returns one result per matched field. Fields
// with no match are absent from the set, never present with confidence zero.
func (e *Extractor) Extract(text string) extract.ResultSet {
	out := make(extract.ResultSet)
	for _, fr := range e.fields {
		if res, ok := fr.apply(text); ok {
			out[fr.field] = res
		}
	}
	return out
}

func (fr fieldRules) apply(text string) (extract.FieldResult, bool) {
	for _, r := range fr.rules {
		loc := r.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		start, end := loc[0], loc[1]
		if len(loc) >= 4 && loc[2] >= 0 {
			start, end = loc[2], loc[3] // first capture group
		}
		raw := text[start:end]

		cleaned := raw
		if fr.clean != nil {
			cleaned = fr.clean(raw)
		} else {
			cleaned = strings.TrimSpace(raw)
		}

		conf := r.confidence
		if fr.checksum != nil {
			if fr.checksum(cleaned) {
				conf = constants.ChecksumValidConfidence
			} else {
				conf = constants.ChecksumInvalidConfidence
			}
		}

		var value any = cleaned
		if fr.numeric {
			d, ok := extract.ParseLocalizedNumber(cleaned)
			if !ok {
				continue // unparseable number, try the next rule
			}
			value = d.InexactFloat64()
		}

		return extract.FieldResult{
			Value:      value,
			Confidence: conf,
			Source:     constants.SourcePattern,
			Span:       &extract.Span{Start: start, End: end},
			RawMatch:   raw,
		}, true
	}
	return extract.FieldResult{}, false
}

// Composite runs several extractors in order. The first extractor to produce
// a field keeps it; later extractors never overwrite.
type Composite struct {
	extractors []*Extractor
}

func NewComposite(extractors ...*Extractor) *Composite {
	return &Composite{extractors: extractors}
}

// Default returns the full extractor chain used by the pipeline.
func Default() *Composite {
	return NewComposite(NewFrench(), NewRomanian(), NewFinancial(), NewContact())
}

func (c *Composite) Extract(text string) extract.ResultSet {
	out := make(extract.ResultSet)
	for _, e := range c.extractors {
		for field, res := range e.Extract(text) {
			if _, seen := out[field]; !seen {
				out[field] = res
			}
		}
	}
	return out
}

// stripSeparators removes the spacing and punctuation identifiers are often
// printed with ("732 829 320", "1-31-04793-9").
func stripSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '.', '-', ' ', ' ':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
