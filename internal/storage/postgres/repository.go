package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
)

// HazardArchiveRepository is the durability collaborator behind the
// in-memory hazard store: every mutation is written through so the store
// can be rebuilt at boot.
type HazardArchiveRepository interface {
	UpsertHazard(ctx context.Context, h domain.Hazard) error
	InsertVote(ctx context.Context, v domain.Vote) error
	DeleteHazard(ctx context.Context, id uuid.UUID) error
	LoadHazards(ctx context.Context) ([]domain.Hazard, error)
	LoadVotes(ctx context.Context) ([]domain.Vote, error)
}

// SOSLogRepository keeps the SOS audit trail.
type SOSLogRepository interface {
	Insert(ctx context.Context, log domain.SOSLog) error
	ListAll(ctx context.Context, limit int) ([]domain.SOSLog, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SOSLog, error)
}

func (p *Postgres) HazardArchive() HazardArchiveRepository { return p.Hazards }
func (p *Postgres) SOSLogs() SOSLogRepository              { return p.SOS }
