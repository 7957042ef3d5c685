package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/internal/common"
	"github.com/agrosuivi/farmdesk/internal/entity"
	"github.com/agrosuivi/farmdesk/internal/hybrid"
)

// Store is the job persistence the manager drives. ClaimNext must be atomic:
// two workers calling it concurrently never receive the same job.
type Store interface {
	Create(ctx context.Context, job entity.ProcessingJob) (entity.ProcessingJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (entity.ProcessingJob, error)
	// ClaimNext moves the highest-priority due queued job to PROCESSING and
	// returns it, or nil when nothing is due.
	ClaimNext(ctx context.Context, now time.Time) (*entity.ProcessingJob, error)
	// RequeueDue returns RETRY_SCHEDULED jobs whose backoff elapsed to QUEUED.
	RequeueDue(ctx context.Context, now time.Time) (int, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, processingMs int64) error
	MarkRetryScheduled(ctx context.Context, id uuid.UUID, attempt int, errMsg string, runAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
}

// ResultStore persists extraction outcomes, success and permanent failure
// alike.
type ResultStore interface {
	SaveResult(ctx context.Context, rec entity.ExtractionRecord) (entity.ExtractionRecord, error)
}

// Fetcher resolves a document URL into its size and text content. Size must
// not download the document.
type Fetcher interface {
	Size(ctx context.Context, fileURL string) (int64, error)
	FetchText(ctx context.Context, fileURL string) (string, error)
}

// Processor runs the hybrid extraction. *hybrid.Orchestrator is the
// production implementation.
type Processor interface {
	Process(ctx context.Context, text string, meta hybrid.Metadata, opts hybrid.Options) (hybrid.Result, error)
}

// Manager owns job lifecycle: enqueue, claim, process, retry, fail. It is
// safe for concurrent use by multiple workers.
type Manager struct {
	store       Store
	results     ResultStore
	fetch       Fetcher
	proc        Processor
	logger      *slog.Logger
	cfg         common.JobsConfig
	extractOpts hybrid.Options
	onCompleted func(job entity.ProcessingJob)
}

type ManagerOption func(*Manager)

// WithCompletionHook registers a callback invoked after a job reaches a
// terminal state, on the worker goroutine. Used to kick form sync.
func WithCompletionHook(fn func(job entity.ProcessingJob)) ManagerOption {
	return func(m *Manager) { m.onCompleted = fn }
}

func NewManager(store Store, results ResultStore, fetch Fetcher, proc Processor, cfg common.JobsConfig, extractOpts hybrid.Options, logger *slog.Logger, opts ...ManagerOption) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		store:       store,
		results:     results,
		fetch:       fetch,
		proc:        proc,
		logger:      logger,
		cfg:         cfg,
		extractOpts: extractOpts,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Enqueue registers a new extraction job for a document. The job starts
// QUEUED and due immediately; workers pick it up on their next poll.
func (m *Manager) Enqueue(ctx context.Context, doc entity.Document, priority constants.JobPriority) (entity.ProcessingJob, error) {
	if priority == "" {
		priority = constants.JobPriorityNormal
	}
	now := time.Now().UTC()
	md, _ := json.Marshal(map[string]string{"doc_type": doc.DocType})
	job := entity.ProcessingJob{
		ID:           uuid.New(),
		DocumentID:   doc.ID,
		FarmID:       doc.FarmID,
		FileURL:      doc.FileURL,
		FileName:     doc.Filename,
		Status:       constants.JobStatusQueued,
		Priority:     priority,
		MaxRetries:   m.cfg.MaxRetries,
		ScheduledFor: now,
		Metadata:     md,
		CreatedAt:    now,
	}
	created, err := m.store.Create(ctx, job)
	if err != nil {
		return entity.ProcessingJob{}, fmt.Errorf("enqueue job: %w", err)
	}
	m.logger.Info("jobs.enqueued",
		"job_id", created.ID,
		"document_id", created.DocumentID,
		"priority", created.Priority,
	)
	return created, nil
}

// Status returns the current persisted state of a job.
func (m *Manager) Status(ctx context.Context, id uuid.UUID) (entity.ProcessingJob, error) {
	return m.store.GetByID(ctx, id)
}

// RunOne requeues due retries, claims at most one job and processes it to a
// terminal or retry state. It reports whether a job was processed so pollers
// can drain the queue before sleeping.
func (m *Manager) RunOne(ctx context.Context) (bool, error) {
	now := time.Now().UTC()
	if n, err := m.store.RequeueDue(ctx, now); err != nil {
		m.logger.Error("jobs.requeue_failed", "error", err)
	} else if n > 0 {
		m.logger.Info("jobs.requeued", "count", n)
	}

	job, err := m.store.ClaimNext(ctx, now)
	if err != nil {
		return false, fmt.Errorf("claim next job: %w", err)
	}
	if job == nil {
		return false, nil
	}
	m.process(ctx, *job)
	return true, nil
}

// process runs one claimed job end to end. Every exit path persists a state
// transition; the claimed row is never left PROCESSING.
func (m *Manager) process(ctx context.Context, job entity.ProcessingJob) {
	start := time.Now()
	log := m.logger.With("job_id", job.ID, "document_id", job.DocumentID, "attempt", job.RetryAttempt)
	log.Info("jobs.processing.start")

	runCtx := ctx
	if m.cfg.ProcessTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, m.cfg.ProcessTimeout)
		defer cancel()
	}

	// State transitions must land even when the worker context is cancelled
	// mid-job (shutdown, process timeout); otherwise the claimed row would sit
	// in PROCESSING with nothing ever reclaiming it.
	persistCtx := context.WithoutCancel(ctx)

	res, err := m.runExtraction(runCtx, job, log)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		m.handleFailure(persistCtx, job, err, log)
		return
	}

	overall := float32(res.Assessment.OverallConfidence)
	rec := entity.ExtractionRecord{
		DocumentID:        job.DocumentID,
		FarmID:            job.FarmID,
		JobID:             &job.ID,
		Succeeded:         true,
		Fields:            res.Fields,
		OverallConfidence: &overall,
		ExtractedCount:    res.Assessment.ExtractedCount,
		TotalFields:       res.Assessment.TotalFields,
		Degraded:          res.Degraded,
	}
	if res.Degraded {
		reason := res.DegradedReason
		rec.ErrorMessage = &reason
	}
	if _, err := m.results.SaveResult(persistCtx, rec); err != nil {
		m.handleFailure(persistCtx, job, fmt.Errorf("save extraction result: %w", err), log)
		return
	}
	if err := m.store.MarkCompleted(persistCtx, job.ID, elapsed); err != nil {
		log.Error("jobs.mark_completed_failed", "error", err)
		return
	}
	log.Info("jobs.processing.done",
		"processing_ms", elapsed,
		"degraded", res.Degraded,
		"ai_cost_avoided_pct", res.Telemetry.AICostAvoidedPct,
	)
	if m.onCompleted != nil {
		job.Status = constants.JobStatusCompleted
		m.onCompleted(job)
	}
}

// runExtraction fetches the document and runs the hybrid pipeline. Large
// documents wait a throttle delay before fetching so bulk uploads do not
// starve interactive work.
func (m *Manager) runExtraction(ctx context.Context, job entity.ProcessingJob, log *slog.Logger) (hybrid.Result, error) {
	size, err := m.fetch.Size(ctx, job.FileURL)
	if err != nil {
		return hybrid.Result{}, fmt.Errorf("probe document size: %w", err)
	}
	if m.cfg.LargeDocBytes > 0 && size > m.cfg.LargeDocBytes && m.cfg.LargeDocDelay > 0 {
		log.Info("jobs.large_document.throttle", "size", size, "delay", m.cfg.LargeDocDelay)
		select {
		case <-time.After(m.cfg.LargeDocDelay):
		case <-ctx.Done():
			return hybrid.Result{}, ctx.Err()
		}
	}

	text, err := m.fetch.FetchText(ctx, job.FileURL)
	if err != nil {
		return hybrid.Result{}, fmt.Errorf("fetch document: %w", err)
	}

	meta := hybrid.Metadata{
		DocumentID:   job.DocumentID.String(),
		DocumentType: docTypeFromMetadata(job),
	}
	return m.proc.Process(ctx, text, meta, m.extractOpts)
}

// handleFailure applies the retry policy: schedule another attempt with
// exponential backoff while attempts remain, otherwise fail terminally and
// persist a failure record so the document's state is queryable.
func (m *Manager) handleFailure(ctx context.Context, job entity.ProcessingJob, procErr error, log *slog.Logger) {
	if job.RetryAttempt < job.MaxRetries {
		attempt := job.RetryAttempt + 1
		delay := Backoff(attempt, m.cfg.BackoffBase, m.cfg.BackoffCap)
		runAt := time.Now().UTC().Add(delay)
		if err := m.store.MarkRetryScheduled(ctx, job.ID, attempt, procErr.Error(), runAt); err != nil {
			log.Error("jobs.mark_retry_failed", "error", err)
			return
		}
		log.Warn("jobs.retry_scheduled", "next_attempt", attempt, "delay", delay, "error", procErr)
		return
	}

	if err := m.store.MarkFailed(ctx, job.ID, procErr.Error()); err != nil {
		log.Error("jobs.mark_failed_failed", "error", err)
		return
	}
	msg := procErr.Error()
	rec := entity.ExtractionRecord{
		DocumentID:   job.DocumentID,
		FarmID:       job.FarmID,
		JobID:        &job.ID,
		Succeeded:    false,
		ErrorMessage: &msg,
	}
	if _, err := m.results.SaveResult(ctx, rec); err != nil {
		log.Error("jobs.save_failure_record_failed", "error", err)
	}
	log.Error("jobs.failed_permanently", "attempts", job.RetryAttempt, "error", procErr)
	if m.onCompleted != nil {
		job.Status = constants.JobStatusFailed
		m.onCompleted(job)
	}
}

func docTypeFromMetadata(job entity.ProcessingJob) string {
	if len(job.Metadata) == 0 {
		return ""
	}
	type meta struct {
		DocType string `json:"doc_type"`
	}
	var md meta
	if err := json.Unmarshal(job.Metadata, &md); err != nil {
		return ""
	}
	return md.DocType
}
