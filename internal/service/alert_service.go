package service

import (
	"context"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
)

func (s *Service) SendSOS(ctx context.Context, caller domain.Identity, req domain.SOSRequest) (*domain.SOSAck, error) {
	return s.AlertService.SendSOS(ctx, caller, req)
}
