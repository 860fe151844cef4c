package service

import (
	"context"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
)

func (s *Service) SafeRoute(ctx context.Context, req domain.RouteRequest) (*domain.RouteResult, error) {
	return s.RouteService.SafeRoute(ctx, req)
}
