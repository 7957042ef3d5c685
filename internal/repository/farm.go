package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/agrosuivi/farmdesk/gen/ent"
	entfarm "github.com/agrosuivi/farmdesk/gen/ent/farm"
	"github.com/agrosuivi/farmdesk/internal/entity"
)

type FarmRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (entity.Farm, error)
	List(ctx context.Context) ([]entity.Farm, error)
	Create(ctx context.Context, farm entity.Farm) (entity.Farm, error)
	Update(ctx context.Context, farm entity.Farm) (entity.Farm, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type farmRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFarmRepository(entc *ent.Client, logger *slog.Logger) FarmRepository {
	return &farmRepo{ent: entc, logger: logger}
}

func (r *farmRepo) GetByID(ctx context.Context, id uuid.UUID) (entity.Farm, error) {
	row, err := r.ent.Farm.Get(ctx, id)
	if err != nil {
		return entity.Farm{}, err
	}
	return farmFromRow(row), nil
}

func (r *farmRepo) List(ctx context.Context) ([]entity.Farm, error) {
	rows, err := r.ent.Farm.Query().
		Order(ent.Asc(entfarm.FieldName)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list farms", "error", err)
		return nil, err
	}
	out := make([]entity.Farm, 0, len(rows))
	for _, row := range rows {
		out = append(out, farmFromRow(row))
	}
	return out, nil
}

func (r *farmRepo) Create(ctx context.Context, farm entity.Farm) (entity.Farm, error) {
	create := r.ent.Farm.Create().
		SetName(farm.Name).
		SetCountryCode(strings.ToUpper(farm.CountryCode)).
		SetDefaultCurrency(strings.ToUpper(farm.DefaultCurrency))
	if farm.LegalForm != nil {
		create.SetLegalForm(*farm.LegalForm)
	}
	if farm.ContactEmail != nil {
		create.SetContactEmail(*farm.ContactEmail)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create farm", "name", farm.Name, "error", err)
		return entity.Farm{}, err
	}
	r.logger.Info("farm created", "farm_id", row.ID, "country", row.CountryCode)
	return farmFromRow(row), nil
}

func (r *farmRepo) Update(ctx context.Context, farm entity.Farm) (entity.Farm, error) {
	update := r.ent.Farm.UpdateOneID(farm.ID)
	if farm.Name != "" {
		update.SetName(farm.Name)
	}
	if farm.CountryCode != "" {
		update.SetCountryCode(strings.ToUpper(farm.CountryCode))
	}
	if farm.DefaultCurrency != "" {
		update.SetDefaultCurrency(strings.ToUpper(farm.DefaultCurrency))
	}
	if farm.LegalForm != nil {
		update.SetLegalForm(*farm.LegalForm)
	}
	if farm.ContactEmail != nil {
		update.SetContactEmail(*farm.ContactEmail)
	}
	row, err := update.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update farm", "farm_id", farm.ID, "error", err)
		return entity.Farm{}, err
	}
	return farmFromRow(row), nil
}

func (r *farmRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.Farm.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete farm", "farm_id", id, "error", err)
		return err
	}
	r.logger.Info("farm deleted", "farm_id", id)
	return nil
}

func farmFromRow(row *ent.Farm) entity.Farm {
	return entity.Farm{
		ID:              row.ID,
		Name:            row.Name,
		CountryCode:     row.CountryCode,
		DefaultCurrency: row.DefaultCurrency,
		LegalForm:       row.LegalForm,
		ContactEmail:    row.ContactEmail,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
