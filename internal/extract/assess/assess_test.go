package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/internal/extract"
)

func pat(value any, conf float64) extract.FieldResult {
	return extract.FieldResult{Value: value, Confidence: conf, Source: constants.SourcePattern}
}

func TestOverallConfidenceIgnoresAbsentFields(t *testing.T) {
	rs := extract.ResultSet{
		extract.FieldSiret:    pat("73282932000074", 0.98),
		extract.FieldTurnover: pat(820000.0, 0.90),
	}
	a := Assess(rs, Options{})

	// two extracted fields average 0.94; the nineteen absent fields are not
	// counted as zeros
	assert.InDelta(t, 0.94, a.OverallConfidence, 0.0001)
	assert.Equal(t, 2, a.ExtractedCount)
	assert.Equal(t, len(extract.SchemaFields), a.TotalFields)
}

func TestEmptySetEscalates(t *testing.T) {
	a := Assess(extract.ResultSet{}, Options{})
	assert.Zero(t, a.OverallConfidence)
	assert.True(t, a.NeedsEscalation)
}

func TestSparseExtractionEscalates(t *testing.T) {
	// high confidence but fewer than half the schema fields extracted
	rs := extract.ResultSet{
		extract.FieldSiret: pat("73282932000074", 0.98),
	}
	a := Assess(rs, Options{})
	assert.True(t, a.NeedsEscalation)
}

func TestLowOverallConfidenceEscalates(t *testing.T) {
	rs := extract.ResultSet{}
	for _, f := range extract.SchemaFields {
		rs[f] = pat("x", 0.50)
	}
	a := Assess(rs, Options{})
	assert.True(t, a.NeedsEscalation)
	assert.InDelta(t, 0.50, a.OverallConfidence, 0.0001)
}

func TestPriorityFieldCannotHideBehindAverage(t *testing.T) {
	rs := extract.ResultSet{}
	for _, f := range extract.SchemaFields {
		rs[f] = pat("x", 0.95)
	}
	rs[extract.FieldSiret] = pat("73282932000075", 0.50) // failed checksum

	a := Assess(rs, Options{PriorityFields: []string{extract.FieldSiret}})
	assert.True(t, a.NeedsEscalation)
	assert.Contains(t, a.EscalationFields, extract.FieldSiret)
	assert.Greater(t, a.OverallConfidence, 0.75, "overall stays high; the priority field alone forces the decision")
}

func TestAbsentPriorityFieldEscalates(t *testing.T) {
	rs := extract.ResultSet{}
	for _, f := range extract.SchemaFields {
		if f == extract.FieldCUI {
			continue
		}
		rs[f] = pat("x", 0.95)
	}
	a := Assess(rs, Options{PriorityFields: []string{extract.FieldCUI}})
	assert.True(t, a.NeedsEscalation)
	assert.Contains(t, a.EscalationFields, extract.FieldCUI)
}

func TestHealthyExtractionDoesNotEscalate(t *testing.T) {
	rs := extract.ResultSet{}
	for _, f := range extract.SchemaFields {
		rs[f] = pat("x", 0.95)
	}
	a := Assess(rs, Options{PriorityFields: []string{extract.FieldSiret}})
	assert.False(t, a.NeedsEscalation)
	assert.Empty(t, a.EscalationFields)
}
