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
)

type alertService struct {
	dispatcher AlertDispatcher
	sosLog     SOSLogRepository
	queue      NotifyQueue
	logger     *slog.Logger
}

func NewAlertService(dispatcher AlertDispatcher, sosLog SOSLogRepository, queue NotifyQueue, log *slog.Logger) AlertService {
	return &alertService{
		dispatcher: dispatcher,
		sosLog:     sosLog,
		queue:      queue,
		logger:     log,
	}
}

func (s *alertService) SendSOS(ctx context.Context, caller domain.Identity, req domain.SOSRequest) (*domain.SOSAck, error) {
	const op = "service.alert.SendSOS"

	if caller.UserID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	delivered, err := s.dispatcher.Dispatch(caller.UserID, req.Lat, req.Lng)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	now := time.Now().UTC()
	ack := &domain.SOSAck{
		ID:         uuid.New(),
		Lat:        req.Lat,
		Lng:        req.Lng,
		Recipients: delivered,
		Timestamp:  now,
	}

	// The signal is already out; audit and push are best effort.
	if s.sosLog != nil {
		logEntry := domain.SOSLog{
			ID:        ack.ID,
			UserID:    caller.UserID,
			Lat:       req.Lat,
			Lng:       req.Lng,
			Timestamp: now,
		}
		if err := s.sosLog.Insert(ctx, logEntry); err != nil {
			s.logger.Error("sos audit insert failed", logger.Err(err),
				slog.String("user_id", caller.UserID.String()))
		}
	}

	if s.queue != nil {
		payload := domain.NotificationPayload{
			Kind:       domain.NotifySOS,
			UserID:     caller.UserID,
			Lat:        req.Lat,
			Lng:        req.Lng,
			OccurredAt: now,
		}
		if err := s.queue.Enqueue(ctx, payload); err != nil {
			s.logger.Warn("sos notification enqueue failed", logger.Err(err))
		}
	}

	s.logger.Info("sos dispatched",
		slog.String("user_id", caller.UserID.String()),
		slog.Int("recipients", delivered),
	)
	return ack, nil
}
