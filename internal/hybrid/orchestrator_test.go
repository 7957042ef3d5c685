package hybrid

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/internal/ai"
	"github.com/agrosuivi/farmdesk/internal/extract"
)

// stubPatterns returns a fixed result set regardless of input text.
type stubPatterns struct {
	fields extract.ResultSet
}

func (s stubPatterns) Extract(string) extract.ResultSet {
	return s.fields.Clone()
}

// stubAI records calls and returns a canned response or error.
type stubAI struct {
	calls int
	resp  ai.Response
	err   error
}

func (s *stubAI) ExtractFields(ctx context.Context, req ai.Request) (ai.Response, []byte, error) {
	s.calls++
	if err := ctx.Err(); err != nil {
		return ai.Response{}, nil, err
	}
	if s.err != nil {
		return ai.Response{}, nil, s.err
	}
	return s.resp, []byte(`{}`), nil
}

func fullSchemaAt(conf float64) extract.ResultSet {
	rs := extract.ResultSet{}
	for _, f := range extract.SchemaFields {
		rs[f] = extract.FieldResult{Value: "x", Confidence: conf, Source: constants.SourcePattern}
	}
	return rs
}

func TestNoEscalationWhenPatternsAreStrong(t *testing.T) {
	aiStub := &stubAI{}
	o := New(stubPatterns{fields: fullSchemaAt(0.95)}, aiStub, nil)

	res, err := o.Process(context.Background(), "doc", Metadata{DocumentID: "d1"}, Options{})
	require.NoError(t, err)
	assert.False(t, res.Escalated)
	assert.Zero(t, aiStub.calls, "strong pattern pass must not spend an AI call")
	assert.Equal(t, len(extract.SchemaFields), res.Telemetry.PatternFieldCount)
	assert.InDelta(t, 100.0, res.Telemetry.AICostAvoidedPct, 0.001)
}

func TestEscalationMakesExactlyOneAICall(t *testing.T) {
	aiStub := &stubAI{resp: ai.Response{
		ExtractedFields: map[string]any{
			"farm_name": "Ferma Agro Vest",
			"turnover":  820000.0,
		},
		Confidence: 0.9,
		Source:     "openai:test",
	}}
	// sparse pattern pass: escalation required
	o := New(stubPatterns{fields: extract.ResultSet{
		"siret_number": {Value: "73282932000074", Confidence: 0.98, Source: constants.SourcePattern},
	}}, aiStub, nil)

	res, err := o.Process(context.Background(), "doc", Metadata{DocumentID: "d1"}, Options{})
	require.NoError(t, err)
	assert.True(t, res.Escalated)
	assert.Equal(t, 1, aiStub.calls, "one whole-document call, never per-field")
	assert.Equal(t, "73282932000074", res.Fields["siret_number"].Value)
	assert.Equal(t, constants.SourceAI, res.Fields["farm_name"].Source)
	assert.Equal(t, "openai:test", res.AISource)
	assert.Equal(t, 2, res.Telemetry.AIFieldCount)
	assert.Equal(t, 1, res.Telemetry.PatternFieldCount)
}

func TestAIFailureDegradesInsteadOfFailing(t *testing.T) {
	aiStub := &stubAI{err: errors.New("model unavailable")}
	patterns := extract.ResultSet{
		"siret_number": {Value: "73282932000074", Confidence: 0.98, Source: constants.SourcePattern},
	}
	o := New(stubPatterns{fields: patterns}, aiStub, nil)

	res, err := o.Process(context.Background(), "doc", Metadata{DocumentID: "d1"}, Options{})
	require.NoError(t, err, "AI failure must not fail the orchestration")
	assert.True(t, res.Degraded)
	assert.Contains(t, res.DegradedReason, "model unavailable")

	got := res.Fields["siret_number"]
	assert.Equal(t, "73282932000074", got.Value, "pattern results survive the degrade")
	assert.Less(t, got.Confidence, 0.98, "degraded confidence is lowered")
	assert.Greater(t, got.Confidence, 0.0, "but never zeroed")
}

func TestCancellationPropagates(t *testing.T) {
	aiStub := &stubAI{resp: ai.Response{Confidence: 0.9}}
	o := New(stubPatterns{fields: extract.ResultSet{}}, aiStub, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := o.Process(ctx, "doc", Metadata{DocumentID: "d1"}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIdempotentWithoutEscalation(t *testing.T) {
	o := New(stubPatterns{fields: fullSchemaAt(0.95)}, &stubAI{}, nil)

	first, err := o.Process(context.Background(), "doc", Metadata{}, Options{})
	require.NoError(t, err)
	second, err := o.Process(context.Background(), "doc", Metadata{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, first.Fields, second.Fields)
}

func TestNarrativeRequestForcesEscalation(t *testing.T) {
	aiStub := &stubAI{resp: ai.Response{
		ExtractedFields: map[string]any{"activity_description": "polyculture et élevage"},
		Confidence:      0.8,
	}}
	patterns := fullSchemaAt(0.95)
	delete(patterns, extract.FieldActivityDesc) // narrative field is AI-only
	o := New(stubPatterns{fields: patterns}, aiStub, nil)

	res, err := o.Process(context.Background(), "doc", Metadata{}, Options{UseAIForNarrativeFields: true})
	require.NoError(t, err)
	assert.True(t, res.Escalated)
	assert.Equal(t, 1, aiStub.calls)
	assert.Equal(t, "polyculture et élevage", res.Fields["activity_description"].Value)
}
