package syncform

import (
	"context"
	"log/slog"
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
)

type memResultSource struct {
	mu      sync.Mutex
	records []entity.ExtractionRecord
}

func (s *memResultSource) ListSucceededByFarm(_ context.Context, farmID uuid.UUID) ([]entity.ExtractionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.ExtractionRecord
	for _, r := range s.records {
		if r.FarmID == farmID && r.Succeeded {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memResultSource) LatestByDocument(_ context.Context, documentID uuid.UUID) (entity.ExtractionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var latest *entity.ExtractionRecord
	for i := range s.records {
		r := &s.records[i]
		if r.DocumentID != documentID {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}
	if latest == nil {
		return entity.ExtractionRecord{}, common.ErrNotFound
	}
	return *latest, nil
}

func (s *memResultSource) DeleteByDocument(_ context.Context, documentID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.records[:0]
	n := 0
	for _, r := range s.records {
		if r.DocumentID == documentID {
			n++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	return n, nil
}

type memEditStore struct {
	mu    sync.Mutex
	edits []entity.ReviewEdit
}

func (s *memEditStore) ListByFarm(_ context.Context, farmID uuid.UUID) ([]entity.ReviewEdit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.ReviewEdit
	for _, e := range s.edits {
		if e.FarmID == farmID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *memEditStore) Upsert(_ context.Context, edit entity.ReviewEdit) (entity.ReviewEdit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.edits {
		if e.DocumentID == edit.DocumentID && e.FieldName == edit.FieldName {
			edit.ID = e.ID
			s.edits[i] = edit
			return edit, nil
		}
	}
	edit.ID = uuid.New()
	s.edits = append(s.edits, edit)
	return edit, nil
}

func (s *memEditStore) DeleteByDocument(_ context.Context, documentID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.edits[:0]
	n := 0
	for _, e := range s.edits {
		if e.DocumentID == documentID {
			n++
			continue
		}
		kept = append(kept, e)
	}
	s.edits = kept
	return n, nil
}

type memFormStore struct {
	mu    sync.Mutex
	forms map[uuid.UUID]entity.FormState
	saves int
}

func newMemFormStore() *memFormStore {
	return &memFormStore{forms: make(map[uuid.UUID]entity.FormState)}
}

func (s *memFormStore) Get(_ context.Context, farmID uuid.UUID) (entity.FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.forms[farmID]; ok {
		return st, nil
	}
	return entity.FormState{FarmID: farmID, Data: map[string]any{}}, nil
}

func (s *memFormStore) Save(_ context.Context, farmID uuid.UUID, data map[string]any) (entity.FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := entity.FormState{FarmID: farmID, Data: data, UpdatedAt: time.Now().UTC()}
	s.forms[farmID] = st
	s.saves++
	return st, nil
}

func (s *memFormStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func testCoordinator(results *memResultSource, edits *memEditStore, forms *memFormStore, opts ...CoordinatorOption) *Coordinator {
	return NewCoordinator(results, edits, forms, slog.New(slog.DiscardHandler), opts...)
}

func TestSyncMergesExtractionIntoForm(t *testing.T) {
	farmID := uuid.New()
	docID := uuid.New()
	results := &memResultSource{records: []entity.ExtractionRecord{{
		ID:         uuid.New(),
		DocumentID: docID,
		FarmID:     farmID,
		Succeeded:  true,
		Fields: extract.ResultSet{
			extract.FieldSiret: {Value: "73282932000074", Confidence: 0.98, Source: constants.SourcePattern},
		},
		CreatedAt: time.Now().UTC(),
	}}}
	forms := newMemFormStore()
	c := testCoordinator(results, &memEditStore{}, forms)

	state, err := c.Sync(context.Background(), farmID)
	require.NoError(t, err)
	assert.Equal(t, "73282932000074", state.Data[extract.FieldSiret])
	assert.Equal(t, "extraction_pattern", state.Data[extract.FieldSiret+SourceSuffix])
}

func TestAcceptPromotesFieldsToReviewEdits(t *testing.T) {
	farmID := uuid.New()
	docID := uuid.New()
	results := &memResultSource{records: []entity.ExtractionRecord{{
		ID:         uuid.New(),
		DocumentID: docID,
		FarmID:     farmID,
		Succeeded:  true,
		Fields: extract.ResultSet{
			extract.FieldFarmName: {Value: "GAEC des Prés", Confidence: 0.82, Source: constants.SourceAI},
			extract.FieldSiret:    {Value: "73282932000074", Confidence: 0.98, Source: constants.SourcePattern},
		},
		CreatedAt: time.Now().UTC(),
	}}}
	edits := &memEditStore{}
	c := testCoordinator(results, edits, newMemFormStore())

	state, err := c.Accept(context.Background(), docID)
	require.NoError(t, err)

	stored, err := edits.ListByFarm(context.Background(), farmID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	// promoted values now carry the manual source tag in the form
	assert.Equal(t, "GAEC des Prés", state.Data[extract.FieldFarmName])
	assert.Equal(t, "manual_edit_"+docID.String(), state.Data[extract.FieldFarmName+SourceSuffix])
	assert.Equal(t, "manual_edit_"+docID.String(), state.Data[extract.FieldSiret+SourceSuffix])
}

func TestAcceptFailedExtractionRejected(t *testing.T) {
	docID := uuid.New()
	results := &memResultSource{records: []entity.ExtractionRecord{{
		ID:         uuid.New(),
		DocumentID: docID,
		FarmID:     uuid.New(),
		Succeeded:  false,
		CreatedAt:  time.Now().UTC(),
	}}}
	c := testCoordinator(results, &memEditStore{}, newMemFormStore())

	_, err := c.Accept(context.Background(), docID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestRejectRemovesDocumentContribution(t *testing.T) {
	farmID := uuid.New()
	keepDoc := uuid.New()
	dropDoc := uuid.New()
	now := time.Now().UTC()
	results := &memResultSource{records: []entity.ExtractionRecord{
		{
			ID: uuid.New(), DocumentID: keepDoc, FarmID: farmID, Succeeded: true,
			Fields: extract.ResultSet{
				extract.FieldCity: {Value: "Dijon", Confidence: 0.85, Source: constants.SourcePattern},
			},
			CreatedAt: now,
		},
		{
			ID: uuid.New(), DocumentID: dropDoc, FarmID: farmID, Succeeded: true,
			Fields: extract.ResultSet{
				extract.FieldCity:     {Value: "Wrongville", Confidence: 0.99, Source: constants.SourceAI},
				extract.FieldFarmName: {Value: "Bad OCR Farm", Confidence: 0.90, Source: constants.SourceAI},
			},
			CreatedAt: now.Add(time.Second),
		},
	}}
	edits := &memEditStore{edits: []entity.ReviewEdit{{
		ID: uuid.New(), DocumentID: dropDoc, FarmID: farmID,
		FieldName: extract.FieldFarmName, Value: "Bad Farm", EditedAt: now,
	}}}
	c := testCoordinator(results, edits, newMemFormStore())

	state, err := c.Reject(context.Background(), dropDoc, farmID)
	require.NoError(t, err)

	// the surviving document's value takes over; the rejected one is gone
	assert.Equal(t, "Dijon", state.Data[extract.FieldCity])
	assert.NotContains(t, state.Data, extract.FieldFarmName)

	remaining, err := edits.ListByFarm(context.Background(), farmID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestSaveEditMergesImmediately(t *testing.T) {
	farmID := uuid.New()
	docID := uuid.New()
	c := testCoordinator(&memResultSource{}, &memEditStore{}, newMemFormStore())

	state, err := c.SaveEdit(context.Background(), entity.ReviewEdit{
		DocumentID: docID,
		FarmID:     farmID,
		FieldName:  extract.FieldFarmName,
		Value:      "Ferme du Moulin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ferme du Moulin", state.Data[extract.FieldFarmName])
	assert.Equal(t, "manual_edit_"+docID.String(), state.Data[extract.FieldFarmName+SourceSuffix])
}

func TestSaveEditRequiresFieldName(t *testing.T) {
	c := testCoordinator(&memResultSource{}, &memEditStore{}, newMemFormStore())
	_, err := c.SaveEdit(context.Background(), entity.ReviewEdit{FarmID: uuid.New()})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestTriggerDebouncesBurst(t *testing.T) {
	farmID := uuid.New()
	forms := newMemFormStore()
	c := testCoordinator(&memResultSource{}, &memEditStore{}, forms,
		WithDebounceWindow(30*time.Millisecond))

	for i := 0; i < 10; i++ {
		c.Trigger(farmID)
	}

	assert.Eventually(t, func() bool { return forms.saveCount() == 1 },
		time.Second, 5*time.Millisecond)
	// settle: no second run sneaks in after the window
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, forms.saveCount())
}

func TestTriggerGuaranteesTrailingRun(t *testing.T) {
	farmID := uuid.New()
	forms := newMemFormStore()
	c := testCoordinator(&memResultSource{}, &memEditStore{}, forms,
		WithDebounceWindow(10*time.Millisecond))

	c.Trigger(farmID)
	assert.Eventually(t, func() bool { return forms.saveCount() >= 1 },
		time.Second, 2*time.Millisecond)

	// a trigger after the first run completed schedules another run
	c.Trigger(farmID)
	assert.Eventually(t, func() bool { return forms.saveCount() >= 2 },
		time.Second, 2*time.Millisecond)
}
