package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
	"github.com/hilexa-hlxa/SafeRoute/pkg/e"
)

type HazardArchive struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewHazardArchive(pool *pgxpool.Pool, logger *slog.Logger) *HazardArchive {
	return &HazardArchive{pool: pool, logger: logger}
}

func (p *HazardArchive) UpsertHazard(ctx context.Context, h domain.Hazard) error {
	const op = "postgres.HazardArchive.UpsertHazard"

	if h.ID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if h.Lat < -90 || h.Lat > 90 || h.Lng < -180 || h.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
INSERT INTO hazards (id, reporter_id, type, description, lat, lng, status,
                     confirm_count, reject_count, created_at, resolved_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
    status        = EXCLUDED.status,
    confirm_count = EXCLUDED.confirm_count,
    reject_count  = EXCLUDED.reject_count,
    resolved_at   = EXCLUDED.resolved_at
`

	_, err := p.pool.Exec(ctx, query,
		h.ID,
		h.ReporterID,
		h.Type,
		h.Description,
		h.Lat,
		h.Lng,
		h.Status,
		h.ConfirmCount,
		h.RejectCount,
		h.CreatedAt,
		h.ResolvedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *HazardArchive) InsertVote(ctx context.Context, v domain.Vote) error {
	const op = "postgres.HazardArchive.InsertVote"

	const query = `
INSERT INTO votes (id, hazard_id, user_id, is_truthful, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (hazard_id, user_id) DO NOTHING
`

	_, err := p.pool.Exec(ctx, query, v.ID, v.HazardID, v.VoterID, v.IsTruthful, v.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *HazardArchive) DeleteHazard(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.HazardArchive.DeleteHazard"

	const query = `DELETE FROM hazards WHERE id = $1`

	if _, err := p.pool.Exec(ctx, query, id); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	// Votes cascade via FK; nothing else to clean up.
	return nil
}

func (p *HazardArchive) LoadHazards(ctx context.Context) ([]domain.Hazard, error) {
	const op = "postgres.HazardArchive.LoadHazards"

	const query = `
SELECT id, reporter_id, type, description, lat, lng, status,
       confirm_count, reject_count, created_at, resolved_at
FROM hazards
ORDER BY created_at
`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var out []domain.Hazard
	for rows.Next() {
		var h domain.Hazard
		if err := rows.Scan(
			&h.ID, &h.ReporterID, &h.Type, &h.Description, &h.Lat, &h.Lng,
			&h.Status, &h.ConfirmCount, &h.RejectCount, &h.CreatedAt, &h.ResolvedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

func (p *HazardArchive) LoadVotes(ctx context.Context) ([]domain.Vote, error) {
	const op = "postgres.HazardArchive.LoadVotes"

	const query = `
SELECT id, hazard_id, user_id, is_truthful, created_at
FROM votes
`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var out []domain.Vote
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.ID, &v.HazardID, &v.VoterID, &v.IsTruthful, &v.CreatedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}
