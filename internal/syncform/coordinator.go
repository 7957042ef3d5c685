package syncform

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agrosuivi/farmdesk/internal/common"
	"github.com/agrosuivi/farmdesk/internal/entity"
)

// ResultSource reads and prunes extraction records for the coordinator.
type ResultSource interface {
	ListSucceededByFarm(ctx context.Context, farmID uuid.UUID) ([]entity.ExtractionRecord, error)
	LatestByDocument(ctx context.Context, documentID uuid.UUID) (entity.ExtractionRecord, error)
	DeleteByDocument(ctx context.Context, documentID uuid.UUID) (int, error)
}

// EditStore persists review edits. Upsert keys on (document, field).
type EditStore interface {
	ListByFarm(ctx context.Context, farmID uuid.UUID) ([]entity.ReviewEdit, error)
	Upsert(ctx context.Context, edit entity.ReviewEdit) (entity.ReviewEdit, error)
	DeleteByDocument(ctx context.Context, documentID uuid.UUID) (int, error)
}

// FormStore persists the merged form per farm.
type FormStore interface {
	Get(ctx context.Context, farmID uuid.UUID) (entity.FormState, error)
	Save(ctx context.Context, farmID uuid.UUID, data map[string]any) (entity.FormState, error)
}

// Coordinator debounces sync triggers per farm and serializes merges so two
// concurrent triggers never interleave writes to the same form.
type Coordinator struct {
	results ResultSource
	edits   EditStore
	forms   FormStore
	logger  *slog.Logger
	window  time.Duration
	now     func() time.Time

	mu    sync.Mutex
	farms map[uuid.UUID]*farmSync
}

type farmSync struct {
	timer   *time.Timer
	running bool
	rerun   bool
}

type CoordinatorOption func(*Coordinator)

// WithDebounceWindow overrides the trailing debounce window.
func WithDebounceWindow(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) {
		if d > 0 {
			c.window = d
		}
	}
}

// WithClock injects a time source for tests.
func WithClock(now func() time.Time) CoordinatorOption {
	return func(c *Coordinator) {
		if now != nil {
			c.now = now
		}
	}
}

func NewCoordinator(results ResultSource, edits EditStore, forms FormStore, logger *slog.Logger, opts ...CoordinatorOption) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Coordinator{
		results: results,
		edits:   edits,
		forms:   forms,
		logger:  logger,
		window:  500 * time.Millisecond,
		now:     time.Now,
		farms:   make(map[uuid.UUID]*farmSync),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Trigger schedules a merge for the farm after the debounce window. Repeated
// triggers inside the window collapse into one run; a trigger while a merge
// is in flight guarantees one follow-up run so no update is ever dropped.
func (c *Coordinator) Trigger(farmID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fs := c.farms[farmID]
	if fs == nil {
		fs = &farmSync{}
		c.farms[farmID] = fs
	}
	if fs.running {
		fs.rerun = true
		return
	}
	if fs.timer != nil {
		fs.timer.Reset(c.window)
		return
	}
	fs.timer = time.AfterFunc(c.window, func() { c.fire(farmID) })
}

func (c *Coordinator) fire(farmID uuid.UUID) {
	c.mu.Lock()
	fs := c.farms[farmID]
	if fs == nil {
		c.mu.Unlock()
		return
	}
	fs.timer = nil
	if fs.running {
		fs.rerun = true
		c.mu.Unlock()
		return
	}
	fs.running = true
	c.mu.Unlock()

	for {
		if _, err := c.merge(context.Background(), farmID); err != nil {
			c.logger.Error("sync.merge_failed", "farm_id", farmID, "error", err)
		}
		c.mu.Lock()
		if fs.rerun {
			fs.rerun = false
			c.mu.Unlock()
			continue
		}
		fs.running = false
		c.mu.Unlock()
		return
	}
}

// Sync merges immediately, bypassing the debounce window. Used after explicit
// user actions where the caller wants the updated form back.
func (c *Coordinator) Sync(ctx context.Context, farmID uuid.UUID) (entity.FormState, error) {
	return c.merge(ctx, farmID)
}

func (c *Coordinator) merge(ctx context.Context, farmID uuid.UUID) (entity.FormState, error) {
	records, err := c.results.ListSucceededByFarm(ctx, farmID)
	if err != nil {
		return entity.FormState{}, fmt.Errorf("list extraction records: %w", err)
	}
	edits, err := c.edits.ListByFarm(ctx, farmID)
	if err != nil {
		return entity.FormState{}, fmt.Errorf("list review edits: %w", err)
	}

	data := BuildFormData(records, edits, c.now())
	state, err := c.forms.Save(ctx, farmID, data)
	if err != nil {
		return entity.FormState{}, fmt.Errorf("save form state: %w", err)
	}
	c.logger.Info("sync.merged",
		"farm_id", farmID,
		"records", len(records),
		"edits", len(edits),
		"fields", len(data),
	)
	return state, nil
}

// Form returns the current persisted form for a farm.
func (c *Coordinator) Form(ctx context.Context, farmID uuid.UUID) (entity.FormState, error) {
	return c.forms.Get(ctx, farmID)
}

// SaveEdit upserts one review edit and merges immediately so the correction
// is visible in the form the caller reads back.
func (c *Coordinator) SaveEdit(ctx context.Context, edit entity.ReviewEdit) (entity.FormState, error) {
	if edit.FieldName == "" {
		return entity.FormState{}, common.ErrInvalidInput
	}
	if edit.EditedAt.IsZero() {
		edit.EditedAt = c.now().UTC()
	}
	if _, err := c.edits.Upsert(ctx, edit); err != nil {
		return entity.FormState{}, fmt.Errorf("save review edit: %w", err)
	}
	return c.merge(ctx, edit.FarmID)
}

// Accept promotes every field of the latest extraction for a document into
// review edits, making them permanent human-confirmed values, then merges.
func (c *Coordinator) Accept(ctx context.Context, documentID uuid.UUID) (entity.FormState, error) {
	rec, err := c.results.LatestByDocument(ctx, documentID)
	if err != nil {
		return entity.FormState{}, fmt.Errorf("load extraction for accept: %w", err)
	}
	if !rec.Succeeded {
		return entity.FormState{}, common.WrapError(common.ErrInvalidInput, "cannot accept a failed extraction")
	}
	editedAt := c.now().UTC()
	for name, fr := range rec.Fields {
		_, err := c.edits.Upsert(ctx, entity.ReviewEdit{
			DocumentID: documentID,
			FarmID:     rec.FarmID,
			FieldName:  name,
			Value:      fr.Value,
			EditedAt:   editedAt,
		})
		if err != nil {
			return entity.FormState{}, fmt.Errorf("promote field %s: %w", name, err)
		}
	}
	c.logger.Info("sync.accepted", "document_id", documentID, "fields", len(rec.Fields))
	return c.merge(ctx, rec.FarmID)
}

// Reject discards the extraction results and review edits of a document, then
// merges so its values disappear from the form (unless another document still
// supplies them).
func (c *Coordinator) Reject(ctx context.Context, documentID, farmID uuid.UUID) (entity.FormState, error) {
	if _, err := c.results.DeleteByDocument(ctx, documentID); err != nil {
		return entity.FormState{}, fmt.Errorf("delete extraction records: %w", err)
	}
	if _, err := c.edits.DeleteByDocument(ctx, documentID); err != nil {
		return entity.FormState{}, fmt.Errorf("delete review edits: %w", err)
	}
	c.logger.Info("sync.rejected", "document_id", documentID)
	return c.merge(ctx, farmID)
}
