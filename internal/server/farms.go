package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	farmdeskpb "github.com/agrosuivi/farmdesk/gen/proto/farmdesk/v1"
	"github.com/agrosuivi/farmdesk/internal/common"
	"github.com/agrosuivi/farmdesk/internal/entity"
	"github.com/agrosuivi/farmdesk/internal/export"
	"github.com/agrosuivi/farmdesk/internal/repository"
	"github.com/agrosuivi/farmdesk/internal/utils"
)

type FarmServer struct {
	farmdeskpb.UnimplementedFarmsServiceServer
	farms    repository.FarmRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewFarmServer(farms repository.FarmRepository, exporter *export.Service, logger *slog.Logger) *FarmServer {
	return &FarmServer{
		farms:    farms,
		exporter: exporter,
		logger:   logger,
	}
}

// CreateFarm creates a new farm profile.
func (s *FarmServer) CreateFarm(ctx context.Context, req *farmdeskpb.CreateFarmRequest) (*farmdeskpb.CreateFarmResponse, error) {
	if req.GetName() == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	if len(req.GetCountryCode()) != 2 {
		return nil, common.InvalidArgumentError("country_code must be a 2-letter ISO code")
	}
	if len(req.GetDefaultCurrency()) != 3 {
		return nil, common.InvalidArgumentError("default_currency must be a 3-letter ISO code")
	}

	farm := entity.Farm{
		Name:            req.GetName(),
		CountryCode:     req.GetCountryCode(),
		DefaultCurrency: req.GetDefaultCurrency(),
	}
	if v := req.GetLegalForm(); v != "" {
		farm.LegalForm = &v
	}
	if v := req.GetContactEmail(); v != "" {
		farm.ContactEmail = &v
	}

	created, err := s.farms.Create(ctx, farm)
	if err != nil {
		s.logger.Error("create farm failed", "error", err)
		return nil, common.InternalError("create farm failed")
	}
	return &farmdeskpb.CreateFarmResponse{Farm: utils.ToPBFarm(created)}, nil
}

// GetFarm returns one farm by id.
func (s *FarmServer) GetFarm(ctx context.Context, req *farmdeskpb.GetFarmRequest) (*farmdeskpb.GetFarmResponse, error) {
	id, err := parseID(req.GetFarmId(), "farm_id")
	if err != nil {
		return nil, err
	}
	farm, err := s.farms.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("farm not found")
	}
	return &farmdeskpb.GetFarmResponse{Farm: utils.ToPBFarm(farm)}, nil
}

// ListFarms lists all farm profiles.
func (s *FarmServer) ListFarms(ctx context.Context, _ *farmdeskpb.ListFarmsRequest) (*farmdeskpb.ListFarmsResponse, error) {
	farms, err := s.farms.List(ctx)
	if err != nil {
		s.logger.Error("list farms failed", "error", err)
		return nil, common.InternalError("list farms failed")
	}
	out := make([]*farmdeskpb.Farm, 0, len(farms))
	for _, f := range farms {
		out = append(out, utils.ToPBFarm(f))
	}
	return &farmdeskpb.ListFarmsResponse{Farms: out}, nil
}

// UpdateFarm applies the non-empty fields of the request.
func (s *FarmServer) UpdateFarm(ctx context.Context, req *farmdeskpb.UpdateFarmRequest) (*farmdeskpb.UpdateFarmResponse, error) {
	id, err := parseID(req.GetFarmId(), "farm_id")
	if err != nil {
		return nil, err
	}
	farm := entity.Farm{
		ID:              id,
		Name:            req.GetName(),
		CountryCode:     req.GetCountryCode(),
		DefaultCurrency: req.GetDefaultCurrency(),
	}
	if v := req.GetLegalForm(); v != "" {
		farm.LegalForm = &v
	}
	if v := req.GetContactEmail(); v != "" {
		farm.ContactEmail = &v
	}
	updated, err := s.farms.Update(ctx, farm)
	if err != nil {
		s.logger.Error("update farm failed", "farm_id", id, "error", err)
		return nil, common.InternalError("update farm failed")
	}
	return &farmdeskpb.UpdateFarmResponse{Farm: utils.ToPBFarm(updated)}, nil
}

// DeleteFarm removes a farm and everything attached to it.
func (s *FarmServer) DeleteFarm(ctx context.Context, req *farmdeskpb.DeleteFarmRequest) (*farmdeskpb.DeleteFarmResponse, error) {
	id, err := parseID(req.GetFarmId(), "farm_id")
	if err != nil {
		return nil, err
	}
	if err := s.farms.Delete(ctx, id); err != nil {
		return nil, common.InternalError("delete farm failed")
	}
	return &farmdeskpb.DeleteFarmResponse{}, nil
}

// ExportFarm returns the farm dossier as an XLSX workbook.
func (s *FarmServer) ExportFarm(ctx context.Context, req *farmdeskpb.ExportFarmRequest) (*farmdeskpb.ExportFarmResponse, error) {
	id, err := parseID(req.GetFarmId(), "farm_id")
	if err != nil {
		return nil, err
	}
	content, err := s.exporter.ExportFarmXLSX(ctx, id)
	if err != nil {
		s.logger.Error("export farm failed", "farm_id", id, "error", err)
		return nil, common.InternalError("export farm failed")
	}
	return &farmdeskpb.ExportFarmResponse{
		Filename: fmt.Sprintf("farm-%s-%s.xlsx", id, time.Now().UTC().Format("20060102")),
		Content:  content,
	}, nil
}

func parseID(raw, field string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is not a valid uuid", field)
	}
	return id, nil
}
