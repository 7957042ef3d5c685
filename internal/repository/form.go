package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agrosuivi/farmdesk/gen/ent"
	entform "github.com/agrosuivi/farmdesk/gen/ent/formstate"
	"github.com/agrosuivi/farmdesk/internal/entity"
)

type FormStateRepository interface {
	Get(ctx context.Context, farmID uuid.UUID) (entity.FormState, error)
	Save(ctx context.Context, farmID uuid.UUID, data map[string]any) (entity.FormState, error)
}

type formStateRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFormStateRepository(entc *ent.Client, logger *slog.Logger) FormStateRepository {
	return &formStateRepo{ent: entc, logger: logger}
}

// Get returns the farm's form, or an empty form when no sync has run yet.
func (r *formStateRepo) Get(ctx context.Context, farmID uuid.UUID) (entity.FormState, error) {
	row, err := r.ent.FormState.Query().
		Where(entform.FarmID(farmID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return entity.FormState{FarmID: farmID, Data: map[string]any{}}, nil
	}
	if err != nil {
		r.logger.Error("failed to load form state", "farm_id", farmID, "error", err)
		return entity.FormState{}, err
	}
	return formFromRow(row)
}

// Save replaces the form wholesale. The merge is always computed from the
// full candidate set, so partial updates would only invite drift.
func (r *formStateRepo) Save(ctx context.Context, farmID uuid.UUID, data map[string]any) (entity.FormState, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return entity.FormState{}, err
	}

	existing, err := r.ent.FormState.Query().
		Where(entform.FarmID(farmID)).
		Only(ctx)
	if err == nil {
		row, err := existing.Update().
			SetData(b).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update form state", "farm_id", farmID, "error", err)
			return entity.FormState{}, err
		}
		return formFromRow(row)
	}
	if !ent.IsNotFound(err) {
		return entity.FormState{}, err
	}

	row, err := r.ent.FormState.Create().
		SetFarmID(farmID).
		SetData(b).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create form state", "farm_id", farmID, "error", err)
		return entity.FormState{}, err
	}
	return formFromRow(row)
}

func formFromRow(row *ent.FormState) (entity.FormState, error) {
	data := map[string]any{}
	if len(row.Data) > 0 {
		if err := json.Unmarshal(row.Data, &data); err != nil {
			return entity.FormState{}, err
		}
	}
	return entity.FormState{
		FarmID:    row.FarmID,
		Data:      data,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
