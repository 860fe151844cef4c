package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
	"github.com/hilexa-hlxa/SafeRoute/pkg/e"
	"github.com/hilexa-hlxa/SafeRoute/pkg/validator"
)

const defaultHistoryLimit = 100

type adminHazardService struct {
	store  HazardStore
	sosLog SOSLogRepository
	logger *slog.Logger
}

func NewAdminHazardService(store HazardStore, sosLog SOSLogRepository, log *slog.Logger) AdminHazardService {
	return &adminHazardService{store: store, sosLog: sosLog, logger: log}
}

func (s *adminHazardService) List(ctx context.Context, req domain.ListHazardsRequest) ([]domain.Hazard, error) {
	const op = "service.admin.List"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidInput)
	}

	found := s.store.List(req.Status)
	out := make([]domain.Hazard, 0, len(found))
	for _, h := range found {
		out = append(out, *h)
	}
	return out, nil
}

func (s *adminHazardService) Approve(ctx context.Context, id uuid.UUID) (*domain.Hazard, error) {
	const op = "service.admin.Approve"

	h, err := s.store.Approve(id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	s.logger.Info("hazard approved", slog.String("hazard_id", id.String()))
	return h, nil
}

func (s *adminHazardService) Reject(ctx context.Context, id uuid.UUID) (*domain.Hazard, error) {
	const op = "service.admin.Reject"

	h, err := s.store.Reject(id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	s.logger.Info("hazard rejected", slog.String("hazard_id", id.String()))
	return h, nil
}

func (s *adminHazardService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "service.admin.Delete"

	if err := s.store.Delete(id); err != nil {
		return e.Wrap(op, err)
	}
	s.logger.Info("hazard deleted", slog.String("hazard_id", id.String()))
	return nil
}

func (s *adminHazardService) SOSHistory(ctx context.Context, userID *uuid.UUID, limit int) ([]domain.SOSLog, error) {
	const op = "service.admin.SOSHistory"

	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var (
		logs []domain.SOSLog
		err  error
	)
	if userID != nil {
		logs, err = s.sosLog.ListByUser(ctx, *userID, limit)
	} else {
		logs, err = s.sosLog.ListAll(ctx, limit)
	}
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return logs, nil
}
