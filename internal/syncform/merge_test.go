package syncform

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/internal/entity"
	"github.com/agrosuivi/farmdesk/internal/extract"
)

func record(docID uuid.UUID, createdAt time.Time, fields extract.ResultSet) entity.ExtractionRecord {
	return entity.ExtractionRecord{
		ID:         uuid.New(),
		DocumentID: docID,
		Succeeded:  true,
		Fields:     fields,
		CreatedAt:  createdAt,
	}
}

func TestHighestConfidenceWins(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	a := record(uuid.New(), t0, extract.ResultSet{
		extract.FieldFarmName: {Value: "Ferme des Lilas", Confidence: 0.80, Source: constants.SourcePattern},
	})
	b := record(uuid.New(), t0.Add(time.Hour), extract.ResultSet{
		extract.FieldFarmName: {Value: "GAEC des Lilas", Confidence: 0.95, Source: constants.SourceAI},
	})

	data := BuildFormData([]entity.ExtractionRecord{a, b}, nil, t0.Add(2*time.Hour))
	assert.Equal(t, "GAEC des Lilas", data[extract.FieldFarmName])
	assert.Equal(t, "extraction_ai", data[extract.FieldFarmName+SourceSuffix])
}

func TestEqualConfidenceNewestWins(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	older := record(uuid.New(), t0, extract.ResultSet{
		extract.FieldCity: {Value: "Dijon", Confidence: 0.85, Source: constants.SourcePattern},
	})
	newer := record(uuid.New(), t0.Add(time.Minute), extract.ResultSet{
		extract.FieldCity: {Value: "Beaune", Confidence: 0.85, Source: constants.SourcePattern},
	})

	// order of the slice must not matter
	for _, recs := range [][]entity.ExtractionRecord{{older, newer}, {newer, older}} {
		data := BuildFormData(recs, nil, t0.Add(time.Hour))
		assert.Equal(t, "Beaune", data[extract.FieldCity])
	}
}

func TestManualEditBeatsExtraction(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	docID := uuid.MustParse("4fa11aa4-76a7-44f0-94f4-6f9b6e51c101")
	rec := record(docID, t0, extract.ResultSet{
		extract.FieldFarmName: {Value: "Fermme des Lilas", Confidence: 0.98, Source: constants.SourcePattern},
	})
	edit := entity.ReviewEdit{
		DocumentID: docID,
		FieldName:  extract.FieldFarmName,
		Value:      "Ferme des Lilas",
		EditedAt:   t0.Add(time.Minute),
	}

	data := BuildFormData([]entity.ExtractionRecord{rec}, []entity.ReviewEdit{edit}, t0.Add(time.Hour))
	assert.Equal(t, "Ferme des Lilas", data[extract.FieldFarmName])
	assert.Equal(t, "manual_edit_"+docID.String(), data[extract.FieldFarmName+SourceSuffix])
}

func TestShadowKeysStamped(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	syncedAt := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	rec := record(uuid.New(), t0, extract.ResultSet{
		extract.FieldSiret: {Value: "73282932000074", Confidence: 0.98, Source: constants.SourcePattern},
	})

	data := BuildFormData([]entity.ExtractionRecord{rec}, nil, syncedAt)
	require.Contains(t, data, extract.FieldSiret+TimestampSuffix)
	assert.Equal(t, "2026-03-02T09:30:00Z", data[extract.FieldSiret+TimestampSuffix])
	assert.Equal(t, "extraction_pattern", data[extract.FieldSiret+SourceSuffix])
}

func TestFailedRecordsIgnored(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	failed := entity.ExtractionRecord{
		ID:         uuid.New(),
		DocumentID: uuid.New(),
		Succeeded:  false,
		Fields: extract.ResultSet{
			extract.FieldCity: {Value: "Cluj-Napoca", Confidence: 0.90, Source: constants.SourcePattern},
		},
		CreatedAt: t0,
	}

	data := BuildFormData([]entity.ExtractionRecord{failed}, nil, t0)
	assert.Empty(t, data)
}

func TestDeterministicMerge(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	recs := []entity.ExtractionRecord{
		record(uuid.New(), t0, extract.ResultSet{
			extract.FieldFarmName: {Value: "A", Confidence: 0.80, Source: constants.SourcePattern},
			extract.FieldCity:     {Value: "Dijon", Confidence: 0.85, Source: constants.SourcePattern},
		}),
		record(uuid.New(), t0.Add(time.Second), extract.ResultSet{
			extract.FieldFarmName: {Value: "B", Confidence: 0.80, Source: constants.SourceAI},
		}),
	}

	first := BuildFormData(recs, nil, t0.Add(time.Hour))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildFormData(recs, nil, t0.Add(time.Hour)))
	}
}
