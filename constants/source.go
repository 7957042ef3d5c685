package constants

// FieldSource tags where an extracted field value came from.
type FieldSource string

const (
	SourcePattern     FieldSource = "pattern"
	SourceAI          FieldSource = "ai"
	SourceCalculation FieldSource = "calculation"
	SourceLookup      FieldSource = "lookup"
	SourceManual      FieldSource = "manual"
)

var FieldSources = []string{
	string(SourcePattern),
	string(SourceAI),
	string(SourceCalculation),
	string(SourceLookup),
	string(SourceManual),
}

// Confidence constants shared by the extractors and the merge steps.
const (
	// ChecksumValidConfidence is the ceiling applied when a matched
	// identifier passes its checksum validator.
	ChecksumValidConfidence = 0.98

	// ChecksumInvalidConfidence is the band a shape-correct but
	// checksum-invalid identifier is downgraded to. The match is kept as a
	// low-confidence signal, never dropped.
	ChecksumInvalidConfidence = 0.50

	// EscalationThreshold is the default overall-confidence bar below which
	// the assessor requests AI escalation.
	EscalationThreshold = 0.75

	// PriorityFieldBar is the stricter per-field bar for priority fields.
	PriorityFieldBar = 0.85

	// PatternMergeFloor: at or above this confidence a pattern result wins
	// over an AI result for the same field.
	PatternMergeFloor = 0.70

	// DegradedConfidencePenalty is multiplied into pattern confidences when
	// the AI escalation was needed but failed, so callers can see the result
	// is weaker than a clean pattern-only run.
	DegradedConfidencePenalty = 0.85
)
