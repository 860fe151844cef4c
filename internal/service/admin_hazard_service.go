package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
)

func (s *Service) List(ctx context.Context, req domain.ListHazardsRequest) ([]domain.Hazard, error) {
	return s.AdminHazardService.List(ctx, req)
}

func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*domain.Hazard, error) {
	return s.AdminHazardService.Approve(ctx, id)
}

func (s *Service) Reject(ctx context.Context, id uuid.UUID) (*domain.Hazard, error) {
	return s.AdminHazardService.Reject(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.AdminHazardService.Delete(ctx, id)
}

func (s *Service) SOSHistory(ctx context.Context, userID *uuid.UUID, limit int) ([]domain.SOSLog, error) {
	return s.AdminHazardService.SOSHistory(ctx, userID, limit)
}
