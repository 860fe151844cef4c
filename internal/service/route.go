package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
	"github.com/hilexa-hlxa/SafeRoute/pkg/e"
	"github.com/hilexa-hlxa/SafeRoute/pkg/validator"
)

type routeService struct {
	planner RoutePlanner
	logger  *slog.Logger
}

func NewRouteService(planner RoutePlanner, log *slog.Logger) RouteService {
	return &routeService{planner: planner, logger: log}
}

func (s *routeService) SafeRoute(ctx context.Context, req domain.RouteRequest) (*domain.RouteResult, error) {
	const op = "service.route.SafeRoute"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidRequest)
	}

	started := time.Now()
	res, err := s.planner.Plan(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Info("route planned",
		slog.Float64("distance_m", res.DistanceM),
		slog.Int("incidents_avoided", res.IncidentsAvoided),
		slog.Bool("degraded", res.Degraded),
		slog.Duration("took", time.Since(started)),
	)
	return res, nil
}
