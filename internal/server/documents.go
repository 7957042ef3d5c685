package server

import (
	"context"
	"crypto/sha256"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/agrosuivi/farmdesk/constants"
	farmdeskpb "github.com/agrosuivi/farmdesk/gen/proto/farmdesk/v1"
	"github.com/agrosuivi/farmdesk/internal/common"
	"github.com/agrosuivi/farmdesk/internal/entity"
	"github.com/agrosuivi/farmdesk/internal/fetch"
	"github.com/agrosuivi/farmdesk/internal/repository"
	"github.com/agrosuivi/farmdesk/internal/utils"
)

type DocumentServer struct {
	farmdeskpb.UnimplementedDocumentsServiceServer
	docs    repository.DocumentRepository
	farms   repository.FarmRepository
	fetcher *fetch.Client
	logger  *slog.Logger
}

func NewDocumentServer(docs repository.DocumentRepository, farms repository.FarmRepository, fetcher *fetch.Client, logger *slog.Logger) *DocumentServer {
	return &DocumentServer{
		docs:    docs,
		farms:   farms,
		fetcher: fetcher,
		logger:  logger,
	}
}

// RegisterDocument fetches the document once to hash its content, then
// registers it for the farm. Re-registering identical content is not an
// error: the existing document comes back flagged.
func (s *DocumentServer) RegisterDocument(ctx context.Context, req *farmdeskpb.RegisterDocumentRequest) (*farmdeskpb.RegisterDocumentResponse, error) {
	farmID, err := parseID(req.GetFarmId(), "farm_id")
	if err != nil {
		return nil, err
	}
	if req.GetFileUrl() == "" {
		return nil, common.InvalidArgumentError("file_url is required")
	}
	filename := req.GetFilename()
	if filename == "" {
		filename = filepath.Base(req.GetFileUrl())
	}
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, common.InvalidArgumentError("unsupported file extension: " + ext)
	}
	docType := req.GetDocType()
	if docType == "" {
		docType = "OTHER"
	}
	if !slices.Contains(constants.DocumentTypes, docType) {
		return nil, common.InvalidArgumentError("unknown doc_type: " + docType)
	}

	if _, err := s.farms.GetByID(ctx, farmID); err != nil {
		return nil, common.NotFoundError("farm not found")
	}

	content, err := s.fetcher.FetchText(ctx, req.GetFileUrl())
	if err != nil {
		s.logger.Error("fetch document for registration failed", "file_url", req.GetFileUrl(), "error", err)
		return nil, common.InvalidArgumentError("document could not be fetched")
	}
	hash := sha256.Sum256([]byte(content))

	doc, existed, err := s.docs.UpsertByHash(ctx, entity.Document{
		FarmID:      farmID,
		FileURL:     req.GetFileUrl(),
		Filename:    filename,
		FileExt:     ext,
		DocType:     docType,
		ContentHash: hash[:],
		FileSize:    int64(len(content)),
	})
	if err != nil {
		s.logger.Error("register document failed", "farm_id", farmID, "error", err)
		return nil, common.InternalError("register document failed")
	}
	return &farmdeskpb.RegisterDocumentResponse{
		Document:          utils.ToPBDocument(doc),
		AlreadyRegistered: existed,
	}, nil
}

// ListDocuments lists the documents of a farm, newest first.
func (s *DocumentServer) ListDocuments(ctx context.Context, req *farmdeskpb.ListDocumentsRequest) (*farmdeskpb.ListDocumentsResponse, error) {
	farmID, err := parseID(req.GetFarmId(), "farm_id")
	if err != nil {
		return nil, err
	}
	docs, err := s.docs.ListByFarm(ctx, farmID)
	if err != nil {
		s.logger.Error("list documents failed", "farm_id", farmID, "error", err)
		return nil, common.InternalError("list documents failed")
	}
	out := make([]*farmdeskpb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, utils.ToPBDocument(d))
	}
	return &farmdeskpb.ListDocumentsResponse{Documents: out}, nil
}

// DeleteDocument removes a document registration.
func (s *DocumentServer) DeleteDocument(ctx context.Context, req *farmdeskpb.DeleteDocumentRequest) (*farmdeskpb.DeleteDocumentResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	if err := s.docs.Delete(ctx, id); err != nil {
		return nil, common.InternalError("delete document failed")
	}
	return &farmdeskpb.DeleteDocumentResponse{}, nil
}
