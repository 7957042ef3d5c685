package server

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/agrosuivi/farmdesk/constants"
	farmdeskpb "github.com/agrosuivi/farmdesk/gen/proto/farmdesk/v1"
	"github.com/agrosuivi/farmdesk/internal/common"
	"github.com/agrosuivi/farmdesk/internal/entity"
	"github.com/agrosuivi/farmdesk/internal/extract"
	"github.com/agrosuivi/farmdesk/internal/jobs"
	"github.com/agrosuivi/farmdesk/internal/repository"
	"github.com/agrosuivi/farmdesk/internal/syncform"
	"github.com/agrosuivi/farmdesk/internal/utils"
)

type ExtractionServer struct {
	farmdeskpb.UnimplementedExtractionServiceServer
	manager  *jobs.Manager
	coord    *syncform.Coordinator
	docs     repository.DocumentRepository
	jobsRepo repository.JobRepository
	results  repository.ResultRepository
	logger   *slog.Logger
}

func NewExtractionServer(manager *jobs.Manager, coord *syncform.Coordinator, docs repository.DocumentRepository, jobsRepo repository.JobRepository, results repository.ResultRepository, logger *slog.Logger) *ExtractionServer {
	return &ExtractionServer{
		manager:  manager,
		coord:    coord,
		docs:     docs,
		jobsRepo: jobsRepo,
		results:  results,
		logger:   logger,
	}
}

// EnqueueExtraction queues a processing job for a registered document.
func (s *ExtractionServer) EnqueueExtraction(ctx context.Context, req *farmdeskpb.EnqueueExtractionRequest) (*farmdeskpb.EnqueueExtractionResponse, error) {
	docID, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	priority := constants.JobPriority(req.GetPriority())
	switch priority {
	case "", constants.JobPriorityNormal, constants.JobPriorityHigh:
	default:
		return nil, common.InvalidArgumentError("priority must be NORMAL or HIGH")
	}

	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, common.NotFoundError("document not found")
	}
	job, err := s.manager.Enqueue(ctx, doc, priority)
	if err != nil {
		s.logger.Error("enqueue extraction failed", "document_id", docID, "error", err)
		return nil, common.InternalError("enqueue extraction failed")
	}
	return &farmdeskpb.EnqueueExtractionResponse{Job: utils.ToPBJob(job)}, nil
}

// GetJobStatus returns the persisted job state, retries included.
func (s *ExtractionServer) GetJobStatus(ctx context.Context, req *farmdeskpb.GetJobStatusRequest) (*farmdeskpb.GetJobStatusResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.manager.Status(ctx, jobID)
	if err != nil {
		return nil, common.NotFoundError("job not found")
	}
	return &farmdeskpb.GetJobStatusResponse{Job: utils.ToPBJob(job)}, nil
}

// ListDocumentJobs returns every job ever enqueued for a document, newest
// first, so a client can follow the retry history.
func (s *ExtractionServer) ListDocumentJobs(ctx context.Context, req *farmdeskpb.ListDocumentJobsRequest) (*farmdeskpb.ListDocumentJobsResponse, error) {
	docID, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.docs.GetByID(ctx, docID); err != nil {
		return nil, common.NotFoundError("document not found")
	}
	list, err := s.jobsRepo.ListByDocument(ctx, docID)
	if err != nil {
		s.logger.Error("list document jobs failed", "document_id", docID, "error", err)
		return nil, common.InternalError("list document jobs failed")
	}
	out := make([]*farmdeskpb.ProcessingJob, 0, len(list))
	for _, job := range list {
		out = append(out, utils.ToPBJob(job))
	}
	return &farmdeskpb.ListDocumentJobsResponse{Jobs: out}, nil
}

// GetLatestResult returns the newest extraction record for a document,
// succeeded or failed.
func (s *ExtractionServer) GetLatestResult(ctx context.Context, req *farmdeskpb.GetLatestResultRequest) (*farmdeskpb.GetLatestResultResponse, error) {
	docID, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	rec, err := s.results.LatestByDocument(ctx, docID)
	if err != nil {
		return nil, common.NotFoundError("no extraction result for document")
	}
	return &farmdeskpb.GetLatestResultResponse{Result: utils.ToPBResult(rec)}, nil
}

// SaveReviewEdit stores one human correction and returns the re-merged form.
func (s *ExtractionServer) SaveReviewEdit(ctx context.Context, req *farmdeskpb.SaveReviewEditRequest) (*farmdeskpb.SaveReviewEditResponse, error) {
	docID, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	if req.GetFieldName() == "" {
		return nil, common.InvalidArgumentError("field_name is required")
	}
	if !extract.IsSchemaField(req.GetFieldName()) {
		return nil, common.InvalidArgumentError("unknown field: " + req.GetFieldName())
	}
	var value any
	if err := json.Unmarshal([]byte(req.GetValueJson()), &value); err != nil {
		return nil, common.InvalidArgumentError("value_json is not valid JSON")
	}

	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, common.NotFoundError("document not found")
	}
	form, err := s.coord.SaveEdit(ctx, entity.ReviewEdit{
		DocumentID: docID,
		FarmID:     doc.FarmID,
		FieldName:  req.GetFieldName(),
		Value:      value,
	})
	if err != nil {
		s.logger.Error("save review edit failed", "document_id", docID, "error", err)
		return nil, common.InternalError("save review edit failed")
	}
	return &farmdeskpb.SaveReviewEditResponse{Form: utils.ToPBFormState(form)}, nil
}

// AcceptExtraction pins the latest extraction of a document as reviewed.
func (s *ExtractionServer) AcceptExtraction(ctx context.Context, req *farmdeskpb.AcceptExtractionRequest) (*farmdeskpb.AcceptExtractionResponse, error) {
	docID, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	form, err := s.coord.Accept(ctx, docID)
	if err != nil {
		s.logger.Error("accept extraction failed", "document_id", docID, "error", err)
		return nil, common.FailedPreconditionError("no accepted extraction for document")
	}
	return &farmdeskpb.AcceptExtractionResponse{Form: utils.ToPBFormState(form)}, nil
}

// RejectExtraction discards a document's extraction and edits.
func (s *ExtractionServer) RejectExtraction(ctx context.Context, req *farmdeskpb.RejectExtractionRequest) (*farmdeskpb.RejectExtractionResponse, error) {
	docID, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, common.NotFoundError("document not found")
	}
	form, err := s.coord.Reject(ctx, docID, doc.FarmID)
	if err != nil {
		s.logger.Error("reject extraction failed", "document_id", docID, "error", err)
		return nil, common.InternalError("reject extraction failed")
	}
	return &farmdeskpb.RejectExtractionResponse{Form: utils.ToPBFormState(form)}, nil
}

// GetFormState returns the current reconciled form for a farm.
func (s *ExtractionServer) GetFormState(ctx context.Context, req *farmdeskpb.GetFormStateRequest) (*farmdeskpb.GetFormStateResponse, error) {
	farmID, err := parseID(req.GetFarmId(), "farm_id")
	if err != nil {
		return nil, err
	}
	form, err := s.coord.Form(ctx, farmID)
	if err != nil {
		s.logger.Error("get form state failed", "farm_id", farmID, "error", err)
		return nil, common.InternalError("get form state failed")
	}
	return &farmdeskpb.GetFormStateResponse{Form: utils.ToPBFormState(form)}, nil
}

// SyncForm forces an immediate merge, bypassing the debounce window.
func (s *ExtractionServer) SyncForm(ctx context.Context, req *farmdeskpb.SyncFormRequest) (*farmdeskpb.SyncFormResponse, error) {
	farmID, err := parseID(req.GetFarmId(), "farm_id")
	if err != nil {
		return nil, err
	}
	form, err := s.coord.Sync(ctx, farmID)
	if err != nil {
		s.logger.Error("sync form failed", "farm_id", farmID, "error", err)
		return nil, common.InternalError("sync form failed")
	}
	return &farmdeskpb.SyncFormResponse{Form: utils.ToPBFormState(form)}, nil
}
