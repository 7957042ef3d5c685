// Package export produces XLSX dossiers of a farm profile: the reconciled
// form with per-field provenance, plus the source documents.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/agrosuivi/farmdesk/internal/entity"
	"github.com/agrosuivi/farmdesk/internal/extract"
	"github.com/agrosuivi/farmdesk/internal/repository"
	"github.com/agrosuivi/farmdesk/internal/syncform"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	farms  repository.FarmRepository
	docs   repository.DocumentRepository
	forms  repository.FormStateRepository
	logger *slog.Logger
}

func NewService(farms repository.FarmRepository, docs repository.DocumentRepository, forms repository.FormStateRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{farms: farms, docs: docs, forms: forms, logger: logger}
}

// ExportFarmXLSX returns an XLSX workbook with the farm's reconciled profile
// and its registered documents.
func (s *Service) ExportFarmXLSX(ctx context.Context, farmID uuid.UUID) ([]byte, error) {
	start := time.Now()

	farm, err := s.farms.GetByID(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("load farm: %w", err)
	}
	form, err := s.forms.Get(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("load form state: %w", err)
	}
	docs, err := s.docs.ListByFarm(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	f := excelize.NewFile()
	const profileSheet = "Profile"
	const docsSheet = "Documents"

	// excelize creates "Sheet1" by default; rename it to the first sheet
	if err := f.SetSheetName("Sheet1", profileSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(docsSheet); err != nil {
		return nil, err
	}

	writeProfileSheet(f, profileSheet, farm.Name, form.Data)
	writeDocumentsSheet(f, docsSheet, docs)

	activeIndex, _ := f.GetSheetIndex(profileSheet)
	f.SetActiveSheet(activeIndex)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("export.farm.done",
		"farm_id", farmID,
		"fields", len(form.Data),
		"documents", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeProfileSheet(f *excelize.File, sheet, farmName string, data map[string]any) {
	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, "Farm")
	write(2, 1, farmName)

	headers := []string{"Field", "Value", "Source", "Last Synced"}
	for i, h := range headers {
		write(i+1, 3, h)
	}

	// stable row order: schema fields first, any extra fields after
	names := make([]string, 0, len(extract.SchemaFields))
	seen := make(map[string]bool)
	for _, name := range extract.SchemaFields {
		if _, ok := data[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	var extra []string
	for name := range data {
		if seen[name] || strings.HasSuffix(name, syncform.SourceSuffix) || strings.HasSuffix(name, syncform.TimestampSuffix) {
			continue
		}
		extra = append(extra, name)
	}
	sort.Strings(extra)
	names = append(names, extra...)

	row := 4
	for _, name := range names {
		write(1, row, name)
		write(2, row, formatValue(data[name]))
		if src, ok := data[name+syncform.SourceSuffix]; ok {
			write(3, row, fmt.Sprintf("%v", src))
		}
		if ts, ok := data[name+syncform.TimestampSuffix]; ok {
			write(4, row, fmt.Sprintf("%v", ts))
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	_ = f.SetColWidth(sheet, "C", "C", 48)
	_ = f.SetColWidth(sheet, "D", "D", 22)
}

func writeDocumentsSheet(f *excelize.File, sheet string, docs []entity.Document) {
	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	headers := []string{"Filename", "Type", "Size (bytes)", "Uploaded"}
	for i, h := range headers {
		write(i+1, 1, h)
	}
	row := 2
	for _, d := range docs {
		write(1, row, d.Filename)
		write(2, row, d.DocType)
		write(3, row, d.FileSize)
		write(4, row, d.UploadedAt.UTC().Format(time.RFC3339))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 36)
	_ = f.SetColWidth(sheet, "B", "B", 18)
	_ = f.SetColWidth(sheet, "C", "C", 14)
	_ = f.SetColWidth(sheet, "D", "D", 22)
}

// formatValue renders numeric values with decimal semantics so 50000 never
// becomes 5e+04 in a spreadsheet cell.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return decimal.NewFromFloat(x).String()
	case float32:
		return decimal.NewFromFloat32(x).String()
	case int, int32, int64:
		return fmt.Sprintf("%d", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
