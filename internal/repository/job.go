package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/gen/ent"
	entjob "github.com/agrosuivi/farmdesk/gen/ent/processingjob"
	"github.com/agrosuivi/farmdesk/internal/common"
	"github.com/agrosuivi/farmdesk/internal/entity"
)

// claimBatch bounds how many due candidates one claim scan considers before
// giving up to the next poll.
const claimBatch = 8

// JobRepository implements the job manager's store on Postgres. Claims are
// conditional updates checked by affected row count, so concurrent workers
// on separate processes never run the same job twice.
type JobRepository interface {
	Create(ctx context.Context, job entity.ProcessingJob) (entity.ProcessingJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (entity.ProcessingJob, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]entity.ProcessingJob, error)
	ClaimNext(ctx context.Context, now time.Time) (*entity.ProcessingJob, error)
	RequeueDue(ctx context.Context, now time.Time) (int, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, processingMs int64) error
	MarkRetryScheduled(ctx context.Context, id uuid.UUID, attempt int, errMsg string, runAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
}

type jobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewJobRepository(entc *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, logger: logger}
}

func (r *jobRepo) Create(ctx context.Context, job entity.ProcessingJob) (entity.ProcessingJob, error) {
	create := r.ent.ProcessingJob.Create().
		SetDocumentID(job.DocumentID).
		SetFarmID(job.FarmID).
		SetFileURL(job.FileURL).
		SetFileName(job.FileName).
		SetStatus(string(job.Status)).
		SetPriority(string(job.Priority)).
		SetMaxRetries(job.MaxRetries).
		SetScheduledFor(job.ScheduledFor)
	if len(job.Metadata) > 0 {
		create.SetMetadata(job.Metadata)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create processing job", "document_id", job.DocumentID, "error", err)
		return entity.ProcessingJob{}, err
	}
	return jobFromRow(row), nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (entity.ProcessingJob, error) {
	row, err := r.ent.ProcessingJob.Get(ctx, id)
	if err != nil {
		return entity.ProcessingJob{}, err
	}
	return jobFromRow(row), nil
}

func (r *jobRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]entity.ProcessingJob, error) {
	rows, err := r.ent.ProcessingJob.Query().
		Where(entjob.DocumentID(documentID)).
		Order(ent.Desc(entjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list jobs", "document_id", documentID, "error", err)
		return nil, err
	}
	out := make([]entity.ProcessingJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, jobFromRow(row))
	}
	return out, nil
}

// ClaimNext scans due queued jobs and claims the first it can win. The
// conditional update's affected count is the arbiter: zero rows means another
// worker got there first, so we try the next candidate.
func (r *jobRepo) ClaimNext(ctx context.Context, now time.Time) (*entity.ProcessingJob, error) {
	// HIGH sorts before NORMAL lexicographically, so ascending priority
	// order claims high-priority jobs first
	candidates, err := r.ent.ProcessingJob.Query().
		Where(
			entjob.Status(string(constants.JobStatusQueued)),
			entjob.ScheduledForLTE(now),
		).
		Order(ent.Asc(entjob.FieldPriority), ent.Asc(entjob.FieldCreatedAt)).
		Limit(claimBatch).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to scan claimable jobs", "error", err)
		return nil, err
	}

	for _, row := range candidates {
		n, err := r.ent.ProcessingJob.Update().
			Where(
				entjob.ID(row.ID),
				entjob.Status(string(constants.JobStatusQueued)),
			).
			SetStatus(string(constants.JobStatusProcessing)).
			SetStartedAt(now).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to claim job", "job_id", row.ID, "error", err)
			return nil, err
		}
		if n == 0 {
			// lost the race for this row
			continue
		}
		claimed, err := r.ent.ProcessingJob.Get(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		job := jobFromRow(claimed)
		return &job, nil
	}
	return nil, nil
}

func (r *jobRepo) RequeueDue(ctx context.Context, now time.Time) (int, error) {
	n, err := r.ent.ProcessingJob.Update().
		Where(
			entjob.Status(string(constants.JobStatusRetryScheduled)),
			entjob.ScheduledForLTE(now),
		).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to requeue due jobs", "error", err)
		return 0, err
	}
	return n, nil
}

func (r *jobRepo) MarkCompleted(ctx context.Context, id uuid.UUID, processingMs int64) error {
	return r.transition(ctx, id, constants.JobStatusProcessing, func(u *ent.ProcessingJobUpdate) {
		u.SetStatus(string(constants.JobStatusCompleted)).
			SetCompletedAt(time.Now().UTC()).
			SetProcessingTimeMs(processingMs)
	})
}

func (r *jobRepo) MarkRetryScheduled(ctx context.Context, id uuid.UUID, attempt int, errMsg string, runAt time.Time) error {
	return r.transition(ctx, id, constants.JobStatusProcessing, func(u *ent.ProcessingJobUpdate) {
		u.SetStatus(string(constants.JobStatusRetryScheduled)).
			SetRetryAttempt(attempt).
			SetErrorMessage(errMsg).
			SetScheduledFor(runAt)
	})
}

func (r *jobRepo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	return r.transition(ctx, id, constants.JobStatusProcessing, func(u *ent.ProcessingJobUpdate) {
		u.SetStatus(string(constants.JobStatusFailed)).
			SetCompletedAt(time.Now().UTC()).
			SetErrorMessage(errMsg)
	})
}

// transition applies a guarded status update. Zero affected rows means the
// job was not in the expected state, which indicates a lifecycle bug or a
// competing writer.
func (r *jobRepo) transition(ctx context.Context, id uuid.UUID, from constants.JobStatus, apply func(*ent.ProcessingJobUpdate)) error {
	u := r.ent.ProcessingJob.Update().
		Where(
			entjob.ID(id),
			entjob.Status(string(from)),
		)
	apply(u)
	n, err := u.Save(ctx)
	if err != nil {
		r.logger.Error("failed to transition job", "job_id", id, "from", from, "error", err)
		return err
	}
	if n == 0 {
		r.logger.Warn("job transition found no row in expected state", "job_id", id, "from", from)
		return common.ErrJobNotClaimable
	}
	return nil
}

func jobFromRow(row *ent.ProcessingJob) entity.ProcessingJob {
	return entity.ProcessingJob{
		ID:               row.ID,
		DocumentID:       row.DocumentID,
		FarmID:           row.FarmID,
		FileURL:          row.FileURL,
		FileName:         row.FileName,
		Status:           constants.JobStatus(row.Status),
		Priority:         constants.JobPriority(row.Priority),
		RetryAttempt:     row.RetryAttempt,
		MaxRetries:       row.MaxRetries,
		ScheduledFor:     row.ScheduledFor,
		StartedAt:        row.StartedAt,
		CompletedAt:      row.CompletedAt,
		ProcessingTimeMs: row.ProcessingTimeMs,
		ErrorMessage:     row.ErrorMessage,
		Metadata:         row.Metadata,
		CreatedAt:        row.CreatedAt,
	}
}
