package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type PublicHazardService interface {
	Report(ctx context.Context, caller domain.Identity, req domain.CreateHazardRequest) (*domain.Hazard, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	Active(ctx context.Context) ([]domain.Hazard, error)
	Nearby(ctx context.Context, req domain.NearbyHazardsRequest) ([]domain.Hazard, error)
	Vote(ctx context.Context, caller domain.Identity, hazardID uuid.UUID, req domain.VoteRequest) (*domain.Hazard, error)
	Resolve(ctx context.Context, caller domain.Identity, hazardID uuid.UUID) (*domain.Hazard, error)
}

type AdminHazardService interface {
	List(ctx context.Context, req domain.ListHazardsRequest) ([]domain.Hazard, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	Reject(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SOSHistory(ctx context.Context, userID *uuid.UUID, limit int) ([]domain.SOSLog, error)
}

type RouteService interface {
	SafeRoute(ctx context.Context, req domain.RouteRequest) (*domain.RouteResult, error)
}

type AlertService interface {
	SendSOS(ctx context.Context, caller domain.Identity, req domain.SOSRequest) (*domain.SOSAck, error)
}

// HazardStore is the in-memory source of truth for hazard state.
type HazardStore interface {
	Create(reporterID uuid.UUID, req domain.CreateHazardRequest) (*domain.Hazard, error)
	Get(id uuid.UUID) (*domain.Hazard, error)
	Vote(hazardID, voterID uuid.UUID, isTruthful bool) (*domain.Hazard, error)
	Resolve(id uuid.UUID, caller domain.Identity) (*domain.Hazard, error)
	Approve(id uuid.UUID) (*domain.Hazard, error)
	Reject(id uuid.UUID) (*domain.Hazard, error)
	Delete(id uuid.UUID) error
	Nearby(lat, lng, radiusM float64) []*domain.Hazard
	List(status domain.HazardStatus) []*domain.Hazard
}

type HazardCacheService interface {
	GetActive(ctx context.Context) ([]domain.Hazard, error)
	SetActive(ctx context.Context, hazards []domain.Hazard, ttl time.Duration) error
}

type RoutePlanner interface {
	Plan(req domain.RouteRequest) (*domain.RouteResult, error)
}

type AlertDispatcher interface {
	Dispatch(senderID uuid.UUID, lat, lng float64) (int, error)
}

type SOSLogRepository interface {
	Insert(ctx context.Context, log domain.SOSLog) error
	ListAll(ctx context.Context, limit int) ([]domain.SOSLog, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SOSLog, error)
}

type NotifyQueue interface {
	Enqueue(ctx context.Context, payload domain.NotificationPayload) error
}

type Service struct {
	PublicHazardService PublicHazardService
	AdminHazardService  AdminHazardService
	RouteService        RouteService
	AlertService        AlertService
}

func NewService(
	publicHazardService PublicHazardService,
	adminHazardService AdminHazardService,
	routeService RouteService,
	alertService AlertService,
) *Service {
	return &Service{
		PublicHazardService: publicHazardService,
		AdminHazardService:  adminHazardService,
		RouteService:        routeService,
		AlertService:        alertService,
	}
}
