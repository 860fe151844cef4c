package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
)

func (s *Service) Report(ctx context.Context, caller domain.Identity, req domain.CreateHazardRequest) (*domain.Hazard, error) {
	return s.PublicHazardService.Report(ctx, caller, req)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error) {
	return s.PublicHazardService.Get(ctx, id)
}

func (s *Service) Active(ctx context.Context) ([]domain.Hazard, error) {
	return s.PublicHazardService.Active(ctx)
}

func (s *Service) Nearby(ctx context.Context, req domain.NearbyHazardsRequest) ([]domain.Hazard, error) {
	return s.PublicHazardService.Nearby(ctx, req)
}

func (s *Service) Vote(ctx context.Context, caller domain.Identity, hazardID uuid.UUID, req domain.VoteRequest) (*domain.Hazard, error) {
	return s.PublicHazardService.Vote(ctx, caller, hazardID, req)
}

func (s *Service) Resolve(ctx context.Context, caller domain.Identity, hazardID uuid.UUID) (*domain.Hazard, error) {
	return s.PublicHazardService.Resolve(ctx, caller, hazardID)
}
