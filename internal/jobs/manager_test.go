package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/internal/common"
	"github.com/agrosuivi/farmdesk/internal/entity"
	"github.com/agrosuivi/farmdesk/internal/extract"
	"github.com/agrosuivi/farmdesk/internal/extract/assess"
	"github.com/agrosuivi/farmdesk/internal/hybrid"
)

// memStore enforces the same transition legality the production store does,
// so an illegal manager sequence fails the test instead of passing silently.
type memStore struct {
	mu          sync.Mutex
	jobs        map[uuid.UUID]*entity.ProcessingJob
	transitions []string
}

func newMemStore() *memStore {
	return &memStore{jobs: make(map[uuid.UUID]*entity.ProcessingJob)}
}

func (s *memStore) apply(job *entity.ProcessingJob, ev Event) error {
	next, err := Next(job.Status, ev)
	if err != nil {
		return err
	}
	s.transitions = append(s.transitions, fmt.Sprintf("%s->%s", job.Status, next))
	job.Status = next
	return nil
}

func (s *memStore) Create(_ context.Context, job entity.ProcessingJob) (entity.ProcessingJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := job
	s.jobs[job.ID] = &cp
	return cp, nil
}

func (s *memStore) GetByID(_ context.Context, id uuid.UUID) (entity.ProcessingJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return entity.ProcessingJob{}, common.ErrNotFound
	}
	return *job, nil
}

func (s *memStore) ClaimNext(_ context.Context, now time.Time) (*entity.ProcessingJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var due []*entity.ProcessingJob
	for _, job := range s.jobs {
		if job.Status == constants.JobStatusQueued && !job.ScheduledFor.After(now) {
			due = append(due, job)
		}
	}
	if len(due) == 0 {
		return nil, nil
	}
	sort.Slice(due, func(i, j int) bool {
		// same ordering the SQL claim uses: HIGH sorts before NORMAL
		if due[i].Priority != due[j].Priority {
			return due[i].Priority < due[j].Priority
		}
		return due[i].CreatedAt.Before(due[j].CreatedAt)
	})
	job := due[0]
	if err := s.apply(job, EventClaim); err != nil {
		return nil, err
	}
	started := now
	job.StartedAt = &started
	cp := *job
	return &cp, nil
}

func (s *memStore) RequeueDue(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, job := range s.jobs {
		if job.Status == constants.JobStatusRetryScheduled && !job.ScheduledFor.After(now) {
			if err := s.apply(job, EventRequeue); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

func (s *memStore) MarkCompleted(_ context.Context, id uuid.UUID, processingMs int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.jobs[id]
	if err := s.apply(job, EventSucceed); err != nil {
		return err
	}
	now := time.Now().UTC()
	job.CompletedAt = &now
	job.ProcessingTimeMs = &processingMs
	return nil
}

func (s *memStore) MarkRetryScheduled(_ context.Context, id uuid.UUID, attempt int, errMsg string, runAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.jobs[id]
	if err := s.apply(job, EventRetry); err != nil {
		return err
	}
	job.RetryAttempt = attempt
	job.ErrorMessage = &errMsg
	job.ScheduledFor = runAt
	return nil
}

func (s *memStore) MarkFailed(_ context.Context, id uuid.UUID, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job := s.jobs[id]
	if err := s.apply(job, EventExhaust); err != nil {
		return err
	}
	now := time.Now().UTC()
	job.CompletedAt = &now
	job.ErrorMessage = &errMsg
	return nil
}

func (s *memStore) transitionLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.transitions...)
}

type memResults struct {
	mu      sync.Mutex
	records []entity.ExtractionRecord
}

func (r *memResults) SaveResult(_ context.Context, rec entity.ExtractionRecord) (entity.ExtractionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now().UTC()
	r.records = append(r.records, rec)
	return rec, nil
}

type stubFetcher struct {
	size int64
	text string
	err  error
}

func (f *stubFetcher) Size(context.Context, string) (int64, error) {
	return f.size, f.err
}

func (f *stubFetcher) FetchText(context.Context, string) (string, error) {
	return f.text, f.err
}

type stubProcessor struct {
	mu    sync.Mutex
	calls int
	res   hybrid.Result
	err   error
}

func (p *stubProcessor) Process(context.Context, string, hybrid.Metadata, hybrid.Options) (hybrid.Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.res, p.err
}

func testConfig() common.JobsConfig {
	return common.JobsConfig{
		Workers:     1,
		MaxRetries:  3,
		BackoffBase: 0, // retries are due immediately so tests need no clock
		BackoffCap:  time.Minute,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testDocument() entity.Document {
	return entity.Document{
		ID:       uuid.New(),
		FarmID:   uuid.New(),
		FileURL:  "https://docs.example.com/kbis.pdf",
		Filename: "kbis.pdf",
		FileExt:  "pdf",
		DocType:  "REGISTRY_EXTRACT",
	}
}

func drain(t *testing.T, m *Manager, limit int) int {
	t.Helper()
	runs := 0
	for i := 0; i < limit; i++ {
		processed, err := m.RunOne(context.Background())
		require.NoError(t, err)
		if !processed {
			return runs
		}
		runs++
	}
	t.Fatalf("queue still busy after %d runs", limit)
	return runs
}

func TestSuccessfulJobPersistsResultAndCompletes(t *testing.T) {
	store := newMemStore()
	results := &memResults{}
	proc := &stubProcessor{
		res: hybrid.Result{
			Fields: extract.ResultSet{
				extract.FieldSiret: {Value: "73282932000074", Confidence: 0.98, Source: constants.SourcePattern},
			},
			Assessment: assess.Assessment{
				OverallConfidence: 0.98,
				ExtractedCount:    1,
				TotalFields:       len(extract.SchemaFields),
			},
		},
	}
	var completed []entity.ProcessingJob
	mgr := NewManager(store, results, &stubFetcher{size: 100, text: "doc"}, proc, testConfig(), hybrid.Options{}, testLogger(),
		WithCompletionHook(func(job entity.ProcessingJob) { completed = append(completed, job) }))

	job, err := mgr.Enqueue(context.Background(), testDocument(), constants.JobPriorityNormal)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusQueued, job.Status)
	require.Equal(t, 3, job.MaxRetries)

	runs := drain(t, mgr, 10)
	assert.Equal(t, 1, runs)

	final, err := mgr.Status(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, final.Status)
	assert.Zero(t, final.RetryAttempt)
	require.NotNil(t, final.ProcessingTimeMs)
	require.NotNil(t, final.CompletedAt)

	require.Len(t, results.records, 1)
	rec := results.records[0]
	assert.True(t, rec.Succeeded)
	assert.Equal(t, job.DocumentID, rec.DocumentID)
	require.NotNil(t, rec.JobID)
	assert.Equal(t, job.ID, *rec.JobID)
	assert.Contains(t, rec.Fields, extract.FieldSiret)

	require.Len(t, completed, 1)
	assert.Equal(t, constants.JobStatusCompleted, completed[0].Status)
}

func TestRetriesExhaustedEndsFailed(t *testing.T) {
	store := newMemStore()
	results := &memResults{}
	proc := &stubProcessor{err: errors.New("model endpoint unreachable")}
	mgr := NewManager(store, results, &stubFetcher{size: 100, text: "doc"}, proc, testConfig(), hybrid.Options{}, testLogger())

	job, err := mgr.Enqueue(context.Background(), testDocument(), constants.JobPriorityNormal)
	require.NoError(t, err)

	// initial attempt plus three retries
	runs := drain(t, mgr, 20)
	assert.Equal(t, 4, runs)
	assert.Equal(t, 4, proc.calls)

	final, err := mgr.Status(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, final.Status)
	assert.Equal(t, 3, final.RetryAttempt)
	require.NotNil(t, final.ErrorMessage)
	assert.Contains(t, *final.ErrorMessage, "model endpoint unreachable")

	retries := 0
	for _, tr := range store.transitionLog() {
		if tr == "PROCESSING->RETRY_SCHEDULED" {
			retries++
		}
	}
	assert.Equal(t, 3, retries)

	// a single permanent failure record, no success records
	require.Len(t, results.records, 1)
	rec := results.records[0]
	assert.False(t, rec.Succeeded)
	require.NotNil(t, rec.ErrorMessage)
	assert.Contains(t, *rec.ErrorMessage, "model endpoint unreachable")
}

func TestRetryAttemptStrictlyIncreases(t *testing.T) {
	store := newMemStore()
	proc := &stubProcessor{err: errors.New("boom")}
	mgr := NewManager(store, &memResults{}, &stubFetcher{size: 1, text: "doc"}, proc, testConfig(), hybrid.Options{}, testLogger())

	job, err := mgr.Enqueue(context.Background(), testDocument(), constants.JobPriorityNormal)
	require.NoError(t, err)

	var attempts []int
	for {
		processed, err := mgr.RunOne(context.Background())
		require.NoError(t, err)
		if !processed {
			break
		}
		cur, err := mgr.Status(context.Background(), job.ID)
		require.NoError(t, err)
		attempts = append(attempts, cur.RetryAttempt)
	}
	assert.Equal(t, []int{1, 2, 3, 3}, attempts)
}

func TestFetchFailureRetriesLikeProcessingFailure(t *testing.T) {
	store := newMemStore()
	results := &memResults{}
	mgr := NewManager(store, results, &stubFetcher{err: errors.New("document storage 503")},
		&stubProcessor{}, testConfig(), hybrid.Options{}, testLogger())

	job, err := mgr.Enqueue(context.Background(), testDocument(), constants.JobPriorityNormal)
	require.NoError(t, err)

	drain(t, mgr, 20)
	final, err := mgr.Status(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, final.Status)
	assert.Equal(t, 3, final.RetryAttempt)
}

func TestHighPriorityClaimedFirst(t *testing.T) {
	store := newMemStore()
	results := &memResults{}
	proc := &stubProcessor{
		res: hybrid.Result{
			Fields:     extract.ResultSet{},
			Assessment: assess.Assessment{TotalFields: len(extract.SchemaFields)},
		},
	}
	var order []uuid.UUID
	mgr := NewManager(store, results, &stubFetcher{size: 1, text: "doc"}, proc, testConfig(), hybrid.Options{}, testLogger(),
		WithCompletionHook(func(job entity.ProcessingJob) { order = append(order, job.ID) }))

	normal, err := mgr.Enqueue(context.Background(), testDocument(), constants.JobPriorityNormal)
	require.NoError(t, err)
	high := testDocument()
	highJob, err := mgr.Enqueue(context.Background(), high, constants.JobPriorityHigh)
	require.NoError(t, err)
	// make the normal job strictly older so FIFO alone would pick it first
	store.mu.Lock()
	store.jobs[normal.ID].CreatedAt = store.jobs[highJob.ID].CreatedAt.Add(-time.Minute)
	store.mu.Unlock()

	drain(t, mgr, 10)
	require.Len(t, order, 2)
	assert.Equal(t, highJob.ID, order[0])
	assert.Equal(t, normal.ID, order[1])
}

func TestDegradedResultStoredWithFlag(t *testing.T) {
	store := newMemStore()
	results := &memResults{}
	proc := &stubProcessor{
		res: hybrid.Result{
			Fields: extract.ResultSet{
				extract.FieldFarmName: {Value: "GAEC des Prés", Confidence: 0.68, Source: constants.SourcePattern},
			},
			Assessment: assess.Assessment{
				OverallConfidence: 0.68,
				ExtractedCount:    1,
				TotalFields:       len(extract.SchemaFields),
				NeedsEscalation:   true,
			},
			Escalated:      true,
			Degraded:       true,
			DegradedReason: "openai: status 500",
		},
	}
	mgr := NewManager(store, results, &stubFetcher{size: 1, text: "doc"}, proc, testConfig(), hybrid.Options{}, testLogger())

	job, err := mgr.Enqueue(context.Background(), testDocument(), constants.JobPriorityNormal)
	require.NoError(t, err)
	drain(t, mgr, 10)

	final, err := mgr.Status(context.Background(), job.ID)
	require.NoError(t, err)
	// degradation is still a completed job, not a failure
	assert.Equal(t, constants.JobStatusCompleted, final.Status)

	require.Len(t, results.records, 1)
	rec := results.records[0]
	assert.True(t, rec.Succeeded)
	assert.True(t, rec.Degraded)
	require.NotNil(t, rec.ErrorMessage)
	assert.Contains(t, *rec.ErrorMessage, "openai")
}

// ctxStore refuses writes once the request context is cancelled, the way a
// real pool-backed store does.
type ctxStore struct{ *memStore }

func (s *ctxStore) MarkCompleted(ctx context.Context, id uuid.UUID, processingMs int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.memStore.MarkCompleted(ctx, id, processingMs)
}

func (s *ctxStore) MarkRetryScheduled(ctx context.Context, id uuid.UUID, attempt int, errMsg string, runAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.memStore.MarkRetryScheduled(ctx, id, attempt, errMsg, runAt)
}

func (s *ctxStore) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.memStore.MarkFailed(ctx, id, errMsg)
}

type ctxResults struct{ memResults }

func (r *ctxResults) SaveResult(ctx context.Context, rec entity.ExtractionRecord) (entity.ExtractionRecord, error) {
	if err := ctx.Err(); err != nil {
		return entity.ExtractionRecord{}, err
	}
	return r.memResults.SaveResult(ctx, rec)
}

// cancelProcessor cancels the worker context mid-run, simulating a shutdown
// signal arriving during the extraction call.
type cancelProcessor struct {
	cancel context.CancelFunc
}

func (p *cancelProcessor) Process(context.Context, string, hybrid.Metadata, hybrid.Options) (hybrid.Result, error) {
	p.cancel()
	return hybrid.Result{}, context.Canceled
}

func TestCancelledWorkerStillPersistsJobState(t *testing.T) {
	store := &ctxStore{newMemStore()}
	results := &ctxResults{}
	proc := &cancelProcessor{}
	mgr := NewManager(store, results, &stubFetcher{size: 1, text: "doc"}, proc, testConfig(), hybrid.Options{}, testLogger())

	job, err := mgr.Enqueue(context.Background(), testDocument(), constants.JobPriorityNormal)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		proc.cancel = cancel
		processed, err := mgr.RunOne(ctx)
		cancel()
		require.NoError(t, err)
		if !processed {
			break
		}
		// the job must never be stranded in PROCESSING after a run
		cur, err := mgr.Status(context.Background(), job.ID)
		require.NoError(t, err)
		assert.NotEqual(t, constants.JobStatusProcessing, cur.Status)
	}

	final, err := mgr.Status(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, final.Status)
	assert.Equal(t, 3, final.RetryAttempt)
	require.Len(t, results.records, 1)
	assert.False(t, results.records[0].Succeeded)
}

func TestRunOneIdleQueue(t *testing.T) {
	mgr := NewManager(newMemStore(), &memResults{}, &stubFetcher{}, &stubProcessor{}, testConfig(), hybrid.Options{}, testLogger())
	processed, err := mgr.RunOne(context.Background())
	require.NoError(t, err)
	assert.False(t, processed)
}
