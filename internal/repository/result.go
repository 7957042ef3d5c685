package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agrosuivi/farmdesk/gen/ent"
	entres "github.com/agrosuivi/farmdesk/gen/ent/extractionresult"
	"github.com/agrosuivi/farmdesk/internal/entity"
	"github.com/agrosuivi/farmdesk/internal/extract"
)

type ResultRepository interface {
	SaveResult(ctx context.Context, rec entity.ExtractionRecord) (entity.ExtractionRecord, error)
	LatestByDocument(ctx context.Context, documentID uuid.UUID) (entity.ExtractionRecord, error)
	ListSucceededByFarm(ctx context.Context, farmID uuid.UUID) ([]entity.ExtractionRecord, error)
	DeleteByDocument(ctx context.Context, documentID uuid.UUID) (int, error)
}

type resultRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewResultRepository(entc *ent.Client, logger *slog.Logger) ResultRepository {
	return &resultRepo{ent: entc, logger: logger}
}

func (r *resultRepo) SaveResult(ctx context.Context, rec entity.ExtractionRecord) (entity.ExtractionRecord, error) {
	create := r.ent.ExtractionResult.Create().
		SetDocumentID(rec.DocumentID).
		SetFarmID(rec.FarmID).
		SetSucceeded(rec.Succeeded).
		SetExtractedCount(rec.ExtractedCount).
		SetTotalFields(rec.TotalFields).
		SetDegraded(rec.Degraded)
	if rec.JobID != nil {
		create.SetJobID(*rec.JobID)
	}
	if rec.OverallConfidence != nil {
		create.SetOverallConfidence(*rec.OverallConfidence)
	}
	if rec.ErrorMessage != nil {
		create.SetErrorMessage(*rec.ErrorMessage)
	}
	if len(rec.Fields) > 0 {
		b, err := json.Marshal(rec.Fields)
		if err != nil {
			return entity.ExtractionRecord{}, err
		}
		create.SetFields(b)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to save extraction result", "document_id", rec.DocumentID, "error", err)
		return entity.ExtractionRecord{}, err
	}
	return resultFromRow(row)
}

func (r *resultRepo) LatestByDocument(ctx context.Context, documentID uuid.UUID) (entity.ExtractionRecord, error) {
	row, err := r.ent.ExtractionResult.Query().
		Where(entres.DocumentID(documentID)).
		Order(ent.Desc(entres.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		return entity.ExtractionRecord{}, err
	}
	return resultFromRow(row)
}

func (r *resultRepo) ListSucceededByFarm(ctx context.Context, farmID uuid.UUID) ([]entity.ExtractionRecord, error) {
	rows, err := r.ent.ExtractionResult.Query().
		Where(
			entres.FarmID(farmID),
			entres.Succeeded(true),
		).
		Order(ent.Asc(entres.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list extraction results", "farm_id", farmID, "error", err)
		return nil, err
	}
	out := make([]entity.ExtractionRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := resultFromRow(row)
		if err != nil {
			r.logger.Warn("skipping extraction result with bad fields payload", "result_id", row.ID, "error", err)
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *resultRepo) DeleteByDocument(ctx context.Context, documentID uuid.UUID) (int, error) {
	n, err := r.ent.ExtractionResult.Delete().
		Where(entres.DocumentID(documentID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete extraction results", "document_id", documentID, "error", err)
		return 0, err
	}
	return n, nil
}

func resultFromRow(row *ent.ExtractionResult) (entity.ExtractionRecord, error) {
	rec := entity.ExtractionRecord{
		ID:                row.ID,
		DocumentID:        row.DocumentID,
		FarmID:            row.FarmID,
		JobID:             row.JobID,
		Succeeded:         row.Succeeded,
		OverallConfidence: row.OverallConfidence,
		ExtractedCount:    row.ExtractedCount,
		TotalFields:       row.TotalFields,
		Degraded:          row.Degraded,
		ErrorMessage:      row.ErrorMessage,
		CreatedAt:         row.CreatedAt,
	}
	if len(row.Fields) > 0 {
		var fields extract.ResultSet
		if err := json.Unmarshal(row.Fields, &fields); err != nil {
			return entity.ExtractionRecord{}, err
		}
		rec.Fields = fields
	}
	return rec, nil
}
