// Package assess computes aggregate confidence over an extraction result set
// and decides whether escalation to the AI collaborator is warranted.
package assess

import (
	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/internal/extract"
)

// Options tune the escalation decision. Zero values fall back to the shared
// defaults.
type Options struct {
	// EscalationThreshold is the overall-confidence bar.
	EscalationThreshold float64
	// PriorityFieldBar is the stricter per-field bar for priority fields.
	PriorityFieldBar float64
	// PriorityFields cannot hide behind a good average: each one below the
	// bar, or absent, forces escalation on its own.
	PriorityFields []string
}

func (o Options) withDefaults() Options {
	if o.EscalationThreshold == 0 {
		o.EscalationThreshold = constants.EscalationThreshold
	}
	if o.PriorityFieldBar == 0 {
		o.PriorityFieldBar = constants.PriorityFieldBar
	}
	return o
}

// Assessment is the escalation decision with its inputs, kept as data so
// callers can log and persist the "why".
type Assessment struct {
	OverallConfidence float64 `json:"overall_confidence"`
	ExtractedCount    int     `json:"extracted_count"`
	TotalFields       int     `json:"total_fields"`
	NeedsEscalation   bool    `json:"needs_escalation"`
	// EscalationFields lists the fields that individually triggered the
	// decision: priority fields below their bar or absent, plus any field
	// below the overall threshold.
	EscalationFields []string `json:"escalation_fields,omitempty"`
}

// Assess scores a result set. Fields that were never found are excluded from
// the average (absence is not failure), but absent priority fields still
// force escalation.
func Assess(results extract.ResultSet, opts Options) Assessment {
	opts = opts.withDefaults()

	a := Assessment{
		TotalFields:    len(extract.SchemaFields),
		ExtractedCount: len(results),
	}

	if len(results) > 0 {
		sum := 0.0
		for _, r := range results {
			sum += r.Confidence
		}
		a.OverallConfidence = sum / float64(len(results))
	}

	seen := map[string]struct{}{}
	addField := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		a.EscalationFields = append(a.EscalationFields, name)
	}

	// priority fields independently force escalation when weak or absent
	priorityViolated := false
	for _, name := range opts.PriorityFields {
		r, ok := results[name]
		if !ok || r.Confidence < opts.PriorityFieldBar {
			priorityViolated = true
			addField(name)
		}
	}
	// any other low-confidence field joins the escalation list so a single
	// AI call can re-cover all of them
	for _, name := range results.Names() {
		if results[name].Confidence < opts.EscalationThreshold {
			addField(name)
		}
	}

	lowOverall := a.OverallConfidence < opts.EscalationThreshold
	sparse := a.ExtractedCount*2 < a.TotalFields
	a.NeedsEscalation = lowOverall || sparse || priorityViolated

	return a
}
