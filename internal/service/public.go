package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
	"github.com/hilexa-hlxa/SafeRoute/pkg/e"
	"github.com/hilexa-hlxa/SafeRoute/pkg/logger"
	"github.com/hilexa-hlxa/SafeRoute/pkg/validator"
)

const activeCacheTTL = 30 * time.Second

type publicHazardService struct {
	store          HazardStore
	cache          HazardCacheService
	logger         *slog.Logger
	defaultRadiusM float64
}

func NewPublicHazardService(store HazardStore, cache HazardCacheService, log *slog.Logger, defaultRadiusM float64) PublicHazardService {
	if defaultRadiusM <= 0 {
		defaultRadiusM = 500
	}
	return &publicHazardService{
		store:          store,
		cache:          cache,
		logger:         log,
		defaultRadiusM: defaultRadiusM,
	}
}

func (s *publicHazardService) Report(ctx context.Context, caller domain.Identity, req domain.CreateHazardRequest) (*domain.Hazard, error) {
	const op = "service.public.Report"

	if caller.UserID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidInput)
	}

	h, err := s.store.Create(caller.UserID, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Info("hazard reported",
		slog.String("hazard_id", h.ID.String()),
		slog.String("user_id", caller.UserID.String()),
		slog.String("type", string(h.Type)),
	)
	return h, nil
}

func (s *publicHazardService) Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error) {
	const op = "service.public.Get"

	h, err := s.store.Get(id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return h, nil
}

// Active returns every hazard still shown on the map. The list is cached
// with a short TTL because map clients poll it aggressively; store
// mutations invalidate the cache out of band.
func (s *publicHazardService) Active(ctx context.Context) ([]domain.Hazard, error) {
	const op = "service.public.Active"

	if s.cache != nil {
		cached, err := s.cache.GetActive(ctx)
		if err != nil {
			s.logger.Warn("hazard cache read failed", logger.Err(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	var out []domain.Hazard
	for _, h := range s.store.List("") {
		if h.Status.Queryable() {
			out = append(out, *h)
		}
	}
	if out == nil {
		out = []domain.Hazard{}
	}

	if s.cache != nil {
		if err := s.cache.SetActive(ctx, out, activeCacheTTL); err != nil {
			s.logger.Warn("hazard cache write failed", logger.Err(err))
		}
	}
	return out, nil
}

func (s *publicHazardService) Nearby(ctx context.Context, req domain.NearbyHazardsRequest) ([]domain.Hazard, error) {
	const op = "service.public.Nearby"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidCoordinates)
	}
	radius := req.RadiusM
	if radius <= 0 {
		radius = s.defaultRadiusM
	}

	found := s.store.Nearby(req.Lat, req.Lng, radius)
	out := make([]domain.Hazard, 0, len(found))
	for _, h := range found {
		out = append(out, *h)
	}
	return out, nil
}

func (s *publicHazardService) Vote(ctx context.Context, caller domain.Identity, hazardID uuid.UUID, req domain.VoteRequest) (*domain.Hazard, error) {
	const op = "service.public.Vote"

	if caller.UserID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	h, err := s.store.Vote(hazardID, caller.UserID, req.IsTruthful)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Info("vote accepted",
		slog.String("hazard_id", hazardID.String()),
		slog.String("user_id", caller.UserID.String()),
		slog.Bool("is_truthful", req.IsTruthful),
		slog.String("status", string(h.Status)),
	)
	return h, nil
}

func (s *publicHazardService) Resolve(ctx context.Context, caller domain.Identity, hazardID uuid.UUID) (*domain.Hazard, error) {
	const op = "service.public.Resolve"

	if caller.UserID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	h, err := s.store.Resolve(hazardID, caller)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Info("hazard resolved",
		slog.String("hazard_id", hazardID.String()),
		slog.String("user_id", caller.UserID.String()),
	)
	return h, nil
}
