package ai

import "context"

// Request asks the external model for one whole-document extraction pass.
// One call covers every needed field; the orchestrator never calls per field.
type Request struct {
	DocumentText string
	DocumentID   string
	DocumentType string // one of constants.DocumentTypes, a hint only
	CountryHint  string // "FR" / "RO" when known

	// TargetFields limits the schema the model is asked to fill. Empty means
	// the full profile schema.
	TargetFields []string
	// IncludeNarrative asks for the free-text fields patterns cannot cover.
	IncludeNarrative bool
	// ForceAI marks retries; the call is idempotent from the caller's side.
	ForceAI bool
}

// Response is the model's structured answer.
type Response struct {
	ExtractedFields  map[string]any `json:"extracted_fields"`
	Confidence       float64        `json:"confidence"`
	Source           string         `json:"source"`
	ProcessingTimeMs int64          `json:"processing_time_ms,omitempty"`
}

// Extractor is the interface the hybrid orchestrator depends on. The raw
// model JSON rides along for audit storage.
type Extractor interface {
	ExtractFields(ctx context.Context, req Request) (Response, []byte, error)
}
