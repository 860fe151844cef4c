package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
	"github.com/hilexa-hlxa/SafeRoute/pkg/e"
)

type SOSLogStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSOSLog(pool *pgxpool.Pool, logger *slog.Logger) *SOSLogStore {
	return &SOSLogStore{pool: pool, logger: logger}
}

func (p *SOSLogStore) Insert(ctx context.Context, log domain.SOSLog) error {
	const op = "postgres.SOSLog.Insert"

	if log.UserID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if log.Lat < -90 || log.Lat > 90 || log.Lng < -180 || log.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}

	const query = `
INSERT INTO sos_logs (id, user_id, lat, lng, created_at)
VALUES ($1, $2, $3, $4, $5)
`

	_, err := p.pool.Exec(ctx, query, log.ID, log.UserID, log.Lat, log.Lng, log.Timestamp)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("user_id", log.UserID.String()),
		)
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *SOSLogStore) ListAll(ctx context.Context, limit int) ([]domain.SOSLog, error) {
	const op = "postgres.SOSLog.ListAll"

	const query = `
SELECT id, user_id, lat, lng, created_at
FROM sos_logs
ORDER BY created_at DESC
LIMIT $1
`
	return p.list(ctx, op, query, limit)
}

func (p *SOSLogStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SOSLog, error) {
	const op = "postgres.SOSLog.ListByUser"

	const query = `
SELECT id, user_id, lat, lng, created_at
FROM sos_logs
WHERE user_id = $2
ORDER BY created_at DESC
LIMIT $1
`
	return p.list(ctx, op, query, limit, userID)
}

func (p *SOSLogStore) list(ctx context.Context, op, query string, args ...any) ([]domain.SOSLog, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SOSLog, error) {
		var l domain.SOSLog
		err := row.Scan(&l.ID, &l.UserID, &l.Lat, &l.Lng, &l.Timestamp)
		return l, err
	})
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return logs, nil
}
