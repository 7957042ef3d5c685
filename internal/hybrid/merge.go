package hybrid

import (
	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/internal/extract"
)

// Merge selects, per field, between the pattern and AI candidates. This is a
// discrete source selection, never a numeric blend, so every value in the
// output traces back to exactly one source:
//
//   - pattern result at confidence ≥ the merge floor wins, even when the AI
//     candidate scores higher (equal confidence also prefers pattern, which
//     keeps re-runs deterministic);
//   - below the floor the AI result wins only when it is strictly more
//     confident;
//   - a weak pattern result with no AI candidate is still kept: a
//     low-confidence signal beats nothing;
//   - AI-only fields are always included.
func Merge(patterns, aiFields extract.ResultSet) extract.ResultSet {
	out := make(extract.ResultSet, len(patterns)+len(aiFields))
	for name, p := range patterns {
		a, hasAI := aiFields[name]
		if p.Confidence >= constants.PatternMergeFloor || !hasAI || a.Confidence <= p.Confidence {
			out[name] = p
			continue
		}
		out[name] = a
	}
	for name, a := range aiFields {
		if _, done := out[name]; !done {
			out[name] = a
		}
	}
	return out
}
