package export

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/agrosuivi/farmdesk/internal/entity"
	"github.com/agrosuivi/farmdesk/internal/extract"
)

type fakeFarms struct{ farm entity.Farm }

func (f *fakeFarms) GetByID(context.Context, uuid.UUID) (entity.Farm, error) { return f.farm, nil }
func (f *fakeFarms) List(context.Context) ([]entity.Farm, error) {
	return []entity.Farm{f.farm}, nil
}
func (f *fakeFarms) Create(_ context.Context, farm entity.Farm) (entity.Farm, error) {
	return farm, nil
}
func (f *fakeFarms) Update(_ context.Context, farm entity.Farm) (entity.Farm, error) {
	return farm, nil
}
func (f *fakeFarms) Delete(context.Context, uuid.UUID) error { return nil }

type fakeDocs struct{ docs []entity.Document }

func (f *fakeDocs) GetByID(context.Context, uuid.UUID) (entity.Document, error) {
	return entity.Document{}, nil
}
func (f *fakeDocs) ListByFarm(context.Context, uuid.UUID) ([]entity.Document, error) {
	return f.docs, nil
}
func (f *fakeDocs) GetByFarmAndHash(context.Context, uuid.UUID, []byte) (entity.Document, error) {
	return entity.Document{}, nil
}
func (f *fakeDocs) UpsertByHash(_ context.Context, doc entity.Document) (entity.Document, bool, error) {
	return doc, false, nil
}
func (f *fakeDocs) Delete(context.Context, uuid.UUID) error { return nil }

type fakeForms struct{ state entity.FormState }

func (f *fakeForms) Get(context.Context, uuid.UUID) (entity.FormState, error) {
	return f.state, nil
}
func (f *fakeForms) Save(_ context.Context, farmID uuid.UUID, data map[string]any) (entity.FormState, error) {
	return entity.FormState{FarmID: farmID, Data: data}, nil
}

func TestExportFarmXLSX(t *testing.T) {
	farmID := uuid.New()
	farms := &fakeFarms{farm: entity.Farm{ID: farmID, Name: "GAEC des Prés", CountryCode: "FR", DefaultCurrency: "EUR"}}
	docs := &fakeDocs{docs: []entity.Document{{
		ID:         uuid.New(),
		FarmID:     farmID,
		Filename:   "kbis.pdf",
		DocType:    "REGISTRY_EXTRACT",
		FileSize:   52341,
		UploadedAt: time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
	}}}
	forms := &fakeForms{state: entity.FormState{
		FarmID: farmID,
		Data: map[string]any{
			extract.FieldSiret:                     "73282932000074",
			extract.FieldSiret + "_source":         "extraction_pattern",
			extract.FieldSiret + "_sync_timestamp": "2026-03-02T09:30:00Z",
			extract.FieldMaxAmount:                 50000.0,
			extract.FieldMaxAmount + "_source":     "extraction_pattern",
			"custom_note":                          "manual note",
		},
	}}

	svc := NewService(farms, docs, forms, slog.New(slog.DiscardHandler))
	data, err := svc.ExportFarmXLSX(context.Background(), farmID)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	name, err := wb.GetCellValue("Profile", "B1")
	require.NoError(t, err)
	assert.Equal(t, "GAEC des Prés", name)

	rows, err := wb.GetRows("Profile")
	require.NoError(t, err)
	var sawSiret, sawAmount, sawCustom bool
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		switch row[0] {
		case extract.FieldSiret:
			sawSiret = true
			assert.Equal(t, "73282932000074", row[1])
			assert.Equal(t, "extraction_pattern", row[2])
		case extract.FieldMaxAmount:
			sawAmount = true
			// no scientific notation in spreadsheet cells
			assert.Equal(t, "50000", row[1])
		case "custom_note":
			sawCustom = true
		}
	}
	assert.True(t, sawSiret)
	assert.True(t, sawAmount)
	assert.True(t, sawCustom)

	docRows, err := wb.GetRows("Documents")
	require.NoError(t, err)
	require.Len(t, docRows, 2)
	assert.Equal(t, "kbis.pdf", docRows[1][0])
	assert.Equal(t, "REGISTRY_EXTRACT", docRows[1][1])
}
