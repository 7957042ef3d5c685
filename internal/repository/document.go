package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agrosuivi/farmdesk/gen/ent"
	entdoc "github.com/agrosuivi/farmdesk/gen/ent/document"
	"github.com/agrosuivi/farmdesk/internal/entity"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (entity.Document, error)
	ListByFarm(ctx context.Context, farmID uuid.UUID) ([]entity.Document, error)
	GetByFarmAndHash(ctx context.Context, farmID uuid.UUID, hash []byte) (entity.Document, error)
	// UpsertByHash registers the document unless the same content was already
	// registered for this farm, in which case the existing row is returned
	// with existed=true.
	UpsertByHash(ctx context.Context, doc entity.Document) (entity.Document, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		return entity.Document{}, err
	}
	return documentFromRow(row), nil
}

func (r *documentRepo) ListByFarm(ctx context.Context, farmID uuid.UUID) ([]entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(entdoc.FarmID(farmID)).
		Order(ent.Desc(entdoc.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "farm_id", farmID, "error", err)
		return nil, err
	}
	out := make([]entity.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, documentFromRow(row))
	}
	return out, nil
}

func (r *documentRepo) GetByFarmAndHash(ctx context.Context, farmID uuid.UUID, hash []byte) (entity.Document, error) {
	row, err := r.ent.Document.Query().
		Where(
			entdoc.FarmID(farmID),
			entdoc.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return entity.Document{}, err
	}
	return documentFromRow(row), nil
}

func (r *documentRepo) UpsertByHash(ctx context.Context, doc entity.Document) (entity.Document, bool, error) {
	if existing, err := r.GetByFarmAndHash(ctx, doc.FarmID, doc.ContentHash); err == nil {
		return existing, true, nil
	}
	uploadedAt := doc.UploadedAt
	if uploadedAt.IsZero() {
		uploadedAt = time.Now().UTC()
	}
	row, err := r.ent.Document.Create().
		SetFarmID(doc.FarmID).
		SetFileURL(doc.FileURL).
		SetFilename(doc.Filename).
		SetFileExt(doc.FileExt).
		SetDocType(doc.DocType).
		SetContentHash(doc.ContentHash).
		SetFileSize(doc.FileSize).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "farm_id", doc.FarmID, "filename", doc.Filename, "error", err)
		return entity.Document{}, false, err
	}
	r.logger.Info("document registered", "document_id", row.ID, "farm_id", row.FarmID, "doc_type", row.DocType)
	return documentFromRow(row), false, nil
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.Document.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete document", "document_id", id, "error", err)
		return err
	}
	return nil
}

func documentFromRow(row *ent.Document) entity.Document {
	return entity.Document{
		ID:          row.ID,
		FarmID:      row.FarmID,
		FileURL:     row.FileURL,
		Filename:    row.Filename,
		FileExt:     row.FileExt,
		DocType:     row.DocType,
		ContentHash: row.ContentHash,
		FileSize:    row.FileSize,
		UploadedAt:  row.UploadedAt,
	}
}
