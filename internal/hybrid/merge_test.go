package hybrid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/internal/extract"
)

func pat(value any, conf float64) extract.FieldResult {
	return extract.FieldResult{Value: value, Confidence: conf, Source: constants.SourcePattern}
}

func aiRes(value any, conf float64) extract.FieldResult {
	return extract.FieldResult{Value: value, Confidence: conf, Source: constants.SourceAI}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name       string
		patterns   extract.ResultSet
		aiFields   extract.ResultSet
		field      string
		wantValue  any
		wantSource constants.FieldSource
	}{
		{
			name:       "strong pattern beats ai",
			patterns:   extract.ResultSet{"siret_number": pat("73282932000074", 0.98)},
			aiFields:   extract.ResultSet{"siret_number": aiRes("99999999999999", 0.99)},
			field:      "siret_number",
			wantValue:  "73282932000074",
			wantSource: constants.SourcePattern,
		},
		{
			name:       "pattern at the floor still wins",
			patterns:   extract.ResultSet{"turnover": pat(820000.0, 0.70)},
			aiFields:   extract.ResultSet{"turnover": aiRes(810000.0, 0.95)},
			field:      "turnover",
			wantValue:  820000.0,
			wantSource: constants.SourcePattern,
		},
		{
			name:       "weak pattern yields to ai",
			patterns:   extract.ResultSet{"siren_number": pat("123456789", 0.50)},
			aiFields:   extract.ResultSet{"siren_number": aiRes("732829320", 0.80)},
			field:      "siren_number",
			wantValue:  "732829320",
			wantSource: constants.SourceAI,
		},
		{
			name:       "equal confidence prefers pattern",
			patterns:   extract.ResultSet{"city": pat("BEAUNE", 0.55)},
			aiFields:   extract.ResultSet{"city": aiRes("Beaune", 0.55)},
			field:      "city",
			wantValue:  "BEAUNE",
			wantSource: constants.SourcePattern,
		},
		{
			name:       "weak pattern beats weaker ai",
			patterns:   extract.ResultSet{"postal_code": pat("21200", 0.55)},
			aiFields:   extract.ResultSet{"postal_code": aiRes("21000", 0.40)},
			field:      "postal_code",
			wantValue:  "21200",
			wantSource: constants.SourcePattern,
		},
		{
			name:       "weak pattern without ai candidate is kept",
			patterns:   extract.ResultSet{"phone": pat("0380123456", 0.40)},
			aiFields:   extract.ResultSet{},
			field:      "phone",
			wantValue:  "0380123456",
			wantSource: constants.SourcePattern,
		},
		{
			name:       "ai-only field is included",
			patterns:   extract.ResultSet{},
			aiFields:   extract.ResultSet{"activity_description": aiRes("viticulture", 0.88)},
			field:      "activity_description",
			wantValue:  "viticulture",
			wantSource: constants.SourceAI,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := Merge(tt.patterns, tt.aiFields)
			res, ok := merged[tt.field]
			assert.True(t, ok)
			assert.Equal(t, tt.wantValue, res.Value)
			assert.Equal(t, tt.wantSource, res.Source)
		})
	}
}

func TestMergeKeepsDisjointFields(t *testing.T) {
	merged := Merge(
		extract.ResultSet{"siret_number": pat("73282932000074", 0.98)},
		extract.ResultSet{"farm_name": aiRes("EARL des Trois Chênes", 0.85)},
	)
	assert.Len(t, merged, 2)
}
