package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agrosuivi/farmdesk/gen/ent"
	entedit "github.com/agrosuivi/farmdesk/gen/ent/reviewedit"
	"github.com/agrosuivi/farmdesk/internal/entity"
)

type ReviewEditRepository interface {
	ListByFarm(ctx context.Context, farmID uuid.UUID) ([]entity.ReviewEdit, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]entity.ReviewEdit, error)
	Upsert(ctx context.Context, edit entity.ReviewEdit) (entity.ReviewEdit, error)
	DeleteByDocument(ctx context.Context, documentID uuid.UUID) (int, error)
}

type reviewEditRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewReviewEditRepository(entc *ent.Client, logger *slog.Logger) ReviewEditRepository {
	return &reviewEditRepo{ent: entc, logger: logger}
}

func (r *reviewEditRepo) ListByFarm(ctx context.Context, farmID uuid.UUID) ([]entity.ReviewEdit, error) {
	rows, err := r.ent.ReviewEdit.Query().
		Where(entedit.FarmID(farmID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list review edits", "farm_id", farmID, "error", err)
		return nil, err
	}
	return editsFromRows(rows)
}

func (r *reviewEditRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]entity.ReviewEdit, error) {
	rows, err := r.ent.ReviewEdit.Query().
		Where(entedit.DocumentID(documentID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list review edits", "document_id", documentID, "error", err)
		return nil, err
	}
	return editsFromRows(rows)
}

// Upsert keys on (document, field): editing the same field twice keeps one
// row with the latest value.
func (r *reviewEditRepo) Upsert(ctx context.Context, edit entity.ReviewEdit) (entity.ReviewEdit, error) {
	value, err := json.Marshal(edit.Value)
	if err != nil {
		return entity.ReviewEdit{}, err
	}

	existing, err := r.ent.ReviewEdit.Query().
		Where(
			entedit.DocumentID(edit.DocumentID),
			entedit.FieldName(edit.FieldName),
		).Only(ctx)
	if err == nil {
		row, err := existing.Update().
			SetValue(value).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update review edit", "document_id", edit.DocumentID, "field", edit.FieldName, "error", err)
			return entity.ReviewEdit{}, err
		}
		return editFromRow(row)
	}
	if !ent.IsNotFound(err) {
		return entity.ReviewEdit{}, err
	}

	row, err := r.ent.ReviewEdit.Create().
		SetDocumentID(edit.DocumentID).
		SetFarmID(edit.FarmID).
		SetFieldName(edit.FieldName).
		SetValue(value).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create review edit", "document_id", edit.DocumentID, "field", edit.FieldName, "error", err)
		return entity.ReviewEdit{}, err
	}
	return editFromRow(row)
}

func (r *reviewEditRepo) DeleteByDocument(ctx context.Context, documentID uuid.UUID) (int, error) {
	n, err := r.ent.ReviewEdit.Delete().
		Where(entedit.DocumentID(documentID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete review edits", "document_id", documentID, "error", err)
		return 0, err
	}
	return n, nil
}

func editFromRow(row *ent.ReviewEdit) (entity.ReviewEdit, error) {
	var value any
	if len(row.Value) > 0 {
		if err := json.Unmarshal(row.Value, &value); err != nil {
			return entity.ReviewEdit{}, err
		}
	}
	return entity.ReviewEdit{
		ID:         row.ID,
		DocumentID: row.DocumentID,
		FarmID:     row.FarmID,
		FieldName:  row.FieldName,
		Value:      value,
		EditedAt:   row.EditedAt,
	}, nil
}

func editsFromRows(rows []*ent.ReviewEdit) ([]entity.ReviewEdit, error) {
	out := make([]entity.ReviewEdit, 0, len(rows))
	for _, row := range rows {
		edit, err := editFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, edit)
	}
	return out, nil
}
