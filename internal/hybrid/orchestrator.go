// Package hybrid runs the cascading extraction: cheap deterministic patterns
// first, a single AI call only when the quality assessor says the patterns
// were not enough, then a per-field merge of the two result sets.
package hybrid

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/internal/ai"
	"github.com/agrosuivi/farmdesk/internal/extract"
	"github.com/agrosuivi/farmdesk/internal/extract/assess"
	"github.com/agrosuivi/farmdesk/internal/extract/pattern"
)

// Options tune one orchestration run.
type Options struct {
	ConfidenceThreshold     float64
	PriorityFieldBar        float64
	PriorityFields          []string
	UseAIForNarrativeFields bool
}

// Metadata identifies the document for the AI call and the logs.
type Metadata struct {
	DocumentID   string
	DocumentType string
	CountryHint  string
}

// Telemetry is the cost-optimization readout for one run.
type Telemetry struct {
	PatternFieldCount int     `json:"pattern_field_count"`
	AIFieldCount      int     `json:"ai_field_count"`
	TotalFieldCount   int     `json:"total_field_count"`
	AICostAvoidedPct  float64 `json:"ai_cost_avoided_pct"`
	PatternMs         int64   `json:"pattern_ms"`
	AIMs              int64   `json:"ai_ms,omitempty"`
}

// Result is the outcome of one orchestration run. Degradation (AI needed but
// unavailable) is data, not an error: the caller decides what to tell the
// user.
type Result struct {
	Fields     extract.ResultSet
	Assessment assess.Assessment
	Escalated  bool
	Degraded   bool
	// DegradedReason carries the AI failure when Degraded is set.
	DegradedReason string
	AISource       string
	RawAI          []byte
	Telemetry      Telemetry
}

// PatternExtractor is the deterministic fast path. *pattern.Composite is the
// production implementation.
type PatternExtractor interface {
	Extract(text string) extract.ResultSet
}

// Orchestrator wires the pattern chain, the assessor and the AI collaborator.
// Construct one at startup and share it; it holds no per-run state.
type Orchestrator struct {
	patterns PatternExtractor
	ai       ai.Extractor
	logger   *slog.Logger
}

func New(patterns PatternExtractor, aiExt ai.Extractor, logger *slog.Logger) *Orchestrator {
	if patterns == nil {
		patterns = pattern.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{patterns: patterns, ai: aiExt, logger: logger}
}

// Process runs the full hybrid pass over one document text. It returns an
// error only for cancellation or invalid results crossing a boundary; AI
// failure degrades instead of failing.
func (o *Orchestrator) Process(ctx context.Context, text string, meta Metadata, opts Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	patStart := time.Now()
	patFields := o.patterns.Extract(text)
	patMs := time.Since(patStart).Milliseconds()

	assessment := assess.Assess(patFields, assess.Options{
		EscalationThreshold: opts.ConfidenceThreshold,
		PriorityFieldBar:    opts.PriorityFieldBar,
		PriorityFields:      opts.PriorityFields,
	})

	res := Result{
		Fields:     patFields,
		Assessment: assessment,
		Telemetry:  Telemetry{PatternMs: patMs},
	}

	escalate := assessment.NeedsEscalation || opts.UseAIForNarrativeFields
	o.logger.Debug("hybrid.pattern.done",
		"document_id", meta.DocumentID,
		"fields", assessment.ExtractedCount,
		"overall_confidence", assessment.OverallConfidence,
		"needs_escalation", assessment.NeedsEscalation,
		"pattern_ms", patMs,
	)

	if escalate && o.ai != nil {
		res.Escalated = true
		aiFields, err := o.escalate(ctx, text, meta, opts, assessment, &res)
		if err != nil {
			if ctx.Err() != nil {
				// cancellation propagates so the job can be marked failed,
				// not left silently incomplete
				return Result{}, ctx.Err()
			}
			// degrade to pattern-only: keep every match but lower confidence
			// so callers can see this run is weaker than a clean pattern pass
			res.Degraded = true
			res.DegradedReason = err.Error()
			res.Fields = penalize(patFields)
			o.logger.Warn("hybrid.ai.degraded",
				"document_id", meta.DocumentID, "error", err)
		} else {
			res.Fields = Merge(patFields, aiFields)
		}
	}

	if err := res.Fields.Validate(); err != nil {
		return Result{}, fmt.Errorf("merged result set invalid: %w", err)
	}

	res.Telemetry = tally(res.Fields, res.Telemetry)
	o.logger.Info("hybrid.extract.done",
		"document_id", meta.DocumentID,
		"escalated", res.Escalated,
		"degraded", res.Degraded,
		"pattern_fields", res.Telemetry.PatternFieldCount,
		"ai_fields", res.Telemetry.AIFieldCount,
		"ai_cost_avoided_pct", res.Telemetry.AICostAvoidedPct,
	)
	return res, nil
}

// escalate makes the single whole-document AI call and converts the answer
// into a validated result set.
func (o *Orchestrator) escalate(ctx context.Context, text string, meta Metadata, opts Options, a assess.Assessment, res *Result) (extract.ResultSet, error) {
	target := a.EscalationFields
	if a.ExtractedCount*2 < a.TotalFields || a.OverallConfidence < opts.ConfidenceThreshold {
		// the whole pass was weak: ask for the full schema, not just the
		// fields we know about
		target = nil
	}

	aiStart := time.Now()
	resp, raw, err := o.ai.ExtractFields(ctx, ai.Request{
		DocumentText:     text,
		DocumentID:       meta.DocumentID,
		DocumentType:     meta.DocumentType,
		CountryHint:      meta.CountryHint,
		TargetFields:     target,
		IncludeNarrative: opts.UseAIForNarrativeFields,
	})
	res.Telemetry.AIMs = time.Since(aiStart).Milliseconds()
	res.RawAI = raw
	if err != nil {
		return nil, err
	}
	res.AISource = resp.Source

	fields := make(extract.ResultSet, len(resp.ExtractedFields))
	for name, value := range resp.ExtractedFields {
		if value == nil || !extract.IsSchemaField(name) {
			continue
		}
		fields[name] = extract.FieldResult{
			Value:      value,
			Confidence: clamp01(resp.Confidence),
			Source:     constants.SourceAI,
		}
	}
	if err := fields.Validate(); err != nil {
		return nil, fmt.Errorf("ai result set invalid: %w", err)
	}
	return fields, nil
}

func penalize(rs extract.ResultSet) extract.ResultSet {
	out := make(extract.ResultSet, len(rs))
	for name, r := range rs {
		r.Confidence *= constants.DegradedConfidencePenalty
		out[name] = r
	}
	return out
}

func tally(rs extract.ResultSet, t Telemetry) Telemetry {
	t.PatternFieldCount = 0
	t.AIFieldCount = 0
	for _, r := range rs {
		switch r.Source {
		case constants.SourceAI:
			t.AIFieldCount++
		default:
			t.PatternFieldCount++
		}
	}
	t.TotalFieldCount = len(rs)
	if t.TotalFieldCount > 0 {
		t.AICostAvoidedPct = float64(t.PatternFieldCount) / float64(t.TotalFieldCount) * 100
	}
	return t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
