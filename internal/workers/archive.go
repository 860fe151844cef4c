package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
	"github.com/hilexa-hlxa/SafeRoute/pkg/logger"
)

type NotifyQueueService interface {
	Enqueue(ctx context.Context, payload domain.NotificationPayload) error
}

type HazardCacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

const archiveBuffer = 256

// Archiver drains hazard store events into Postgres and the
// notification queue. It satisfies the store's Publisher contract:
// Publish never blocks the caller, a full buffer drops the event and
// the archive catches up from the store on next boot.
type Archiver struct {
	logger   *slog.Logger
	archive  ArchiveSink
	queue    NotifyQueueService
	cache    HazardCacheInvalidator
	events   chan domain.HazardEvent
	poolSize int
}

// ArchiveSink mirrors the Postgres hazard repository.
type ArchiveSink interface {
	UpsertHazard(ctx context.Context, h domain.Hazard) error
	InsertVote(ctx context.Context, v domain.Vote) error
	DeleteHazard(ctx context.Context, id uuid.UUID) error
}

func NewArchiver(log *slog.Logger, archive ArchiveSink, queue NotifyQueueService, cache HazardCacheInvalidator, poolSize int) *Archiver {
	if poolSize < 1 {
		poolSize = 1
	}
	return &Archiver{
		logger:   log,
		archive:  archive,
		queue:    queue,
		cache:    cache,
		events:   make(chan domain.HazardEvent, archiveBuffer),
		poolSize: poolSize,
	}
}

// Publish hands an event to the archive pipeline without blocking.
func (w *Archiver) Publish(event domain.HazardEvent) {
	select {
	case w.events <- event:
	default:
		w.logger.Warn("archive buffer full, event dropped",
			slog.String("kind", string(event.Kind)),
			slog.String("hazard_id", event.Hazard.ID.String()),
		)
	}
}

func (w *Archiver) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.worker(ctx)
		}()
	}
	wg.Wait()
}

func (w *Archiver) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-w.events:
			w.processEvent(ctx, event)
		}
	}
}

func (w *Archiver) processEvent(ctx context.Context, event domain.HazardEvent) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	switch event.Kind {
	case domain.HazardCreated:
		if err := w.archive.UpsertHazard(ctx, event.Hazard); err != nil {
			w.logger.Error("archive upsert failed", logger.Err(err),
				slog.String("hazard_id", event.Hazard.ID.String()))
		}

	case domain.HazardVoted:
		if event.Vote != nil {
			if err := w.archive.InsertVote(ctx, *event.Vote); err != nil {
				w.logger.Error("archive vote insert failed", logger.Err(err),
					slog.String("hazard_id", event.Hazard.ID.String()))
			}
		}
		if err := w.archive.UpsertHazard(ctx, event.Hazard); err != nil {
			w.logger.Error("archive upsert failed", logger.Err(err),
				slog.String("hazard_id", event.Hazard.ID.String()))
		}

	case domain.HazardStatusChanged:
		if err := w.archive.UpsertHazard(ctx, event.Hazard); err != nil {
			w.logger.Error("archive upsert failed", logger.Err(err),
				slog.String("hazard_id", event.Hazard.ID.String()))
		}
		w.invalidateCache(ctx)
		w.notifyStatusChange(ctx, event)

	case domain.HazardDeleted:
		if err := w.archive.DeleteHazard(ctx, event.Hazard.ID); err != nil {
			w.logger.Error("archive delete failed", logger.Err(err),
				slog.String("hazard_id", event.Hazard.ID.String()))
		}
		w.invalidateCache(ctx)
	}
}

func (w *Archiver) invalidateCache(ctx context.Context) {
	if w.cache == nil {
		return
	}
	if err := w.cache.Invalidate(ctx); err != nil {
		w.logger.Warn("hazard cache invalidate failed", logger.Err(err))
	}
}

func (w *Archiver) notifyStatusChange(ctx context.Context, event domain.HazardEvent) {
	if w.queue == nil {
		return
	}

	var kind domain.NotificationKind
	switch event.Hazard.Status {
	case domain.HazardActive:
		kind = domain.NotifyHazardConfirmed
	case domain.HazardRejected:
		kind = domain.NotifyHazardRejected
	case domain.HazardResolved:
		kind = domain.NotifyHazardResolved
	default:
		return
	}

	payload := domain.NotificationPayload{
		Kind:       kind,
		HazardID:   event.Hazard.ID,
		UserID:     event.Hazard.ReporterID,
		Lat:        event.Hazard.Lat,
		Lng:        event.Hazard.Lng,
		Status:     event.Hazard.Status,
		OccurredAt: event.OccurredAt,
	}
	if err := w.queue.Enqueue(ctx, payload); err != nil {
		w.logger.Warn("notification enqueue failed", logger.Err(err),
			slog.String("hazard_id", event.Hazard.ID.String()))
	}
}
