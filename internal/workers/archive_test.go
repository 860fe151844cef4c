package workers

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
)

type fakeSink struct {
	mu      sync.Mutex
	upserts []domain.Hazard
	votes   []domain.Vote
	deletes []uuid.UUID
}

func (s *fakeSink) UpsertHazard(_ context.Context, h domain.Hazard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts = append(s.upserts, h)
	return nil
}

func (s *fakeSink) InsertVote(_ context.Context, v domain.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes = append(s.votes, v)
	return nil
}

func (s *fakeSink) DeleteHazard(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, id)
	return nil
}

func (s *fakeSink) counts() (int, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.upserts), len(s.votes), len(s.deletes)
}

type fakeQueue struct {
	mu       sync.Mutex
	payloads []domain.NotificationPayload
}

func (q *fakeQueue) Enqueue(_ context.Context, p domain.NotificationPayload) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.payloads = append(q.payloads, p)
	return nil
}

func (q *fakeQueue) all() []domain.NotificationPayload {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]domain.NotificationPayload, len(q.payloads))
	copy(out, q.payloads)
	return out
}

type fakeCache struct {
	mu    sync.Mutex
	calls int
}

func (c *fakeCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return nil
}

func (c *fakeCache) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not reached in time")
}

func TestArchiver_PersistsCreatedAndVoted(t *testing.T) {
	sink := &fakeSink{}
	queue := &fakeQueue{}
	cache := &fakeCache{}

	w := NewArchiver(discardLogger(), sink, queue, cache, 2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	h := domain.Hazard{ID: uuid.New(), ReporterID: uuid.New(), Status: domain.HazardPending}
	w.Publish(domain.HazardEvent{Kind: domain.HazardCreated, Hazard: h, OccurredAt: time.Now()})

	v := domain.Vote{ID: uuid.New(), HazardID: h.ID, VoterID: uuid.New(), IsTruthful: true}
	h.ConfirmCount = 1
	w.Publish(domain.HazardEvent{Kind: domain.HazardVoted, Hazard: h, Vote: &v, OccurredAt: time.Now()})

	waitFor(t, func() bool {
		up, votes, _ := sink.counts()
		return up == 2 && votes == 1
	})

	if cache.count() != 0 {
		t.Fatalf("votes must not invalidate the cache")
	}
	if len(queue.all()) != 0 {
		t.Fatalf("votes must not enqueue notifications")
	}

	cancel()
	<-done
}

func TestArchiver_StatusChangeNotifiesAndInvalidates(t *testing.T) {
	sink := &fakeSink{}
	queue := &fakeQueue{}
	cache := &fakeCache{}

	w := NewArchiver(discardLogger(), sink, queue, cache, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	h := domain.Hazard{
		ID: uuid.New(), ReporterID: uuid.New(),
		Lat: 40.71, Lng: -74.0,
		Status: domain.HazardActive, ConfirmCount: 3,
	}
	w.Publish(domain.HazardEvent{Kind: domain.HazardStatusChanged, Hazard: h, OccurredAt: time.Now()})

	waitFor(t, func() bool { return len(queue.all()) == 1 })

	got := queue.all()[0]
	if got.Kind != domain.NotifyHazardConfirmed {
		t.Fatalf("expected hazard_confirmed, got %s", got.Kind)
	}
	if got.HazardID != h.ID || got.Status != domain.HazardActive {
		t.Fatalf("unexpected payload: %+v", got)
	}

	waitFor(t, func() bool { return cache.count() == 1 })
}

func TestArchiver_DeleteRemovesRow(t *testing.T) {
	sink := &fakeSink{}

	w := NewArchiver(discardLogger(), sink, nil, nil, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	id := uuid.New()
	w.Publish(domain.HazardEvent{Kind: domain.HazardDeleted, Hazard: domain.Hazard{ID: id}, OccurredAt: time.Now()})

	waitFor(t, func() bool {
		_, _, dels := sink.counts()
		return dels == 1
	})

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if sink.deletes[0] != id {
		t.Fatalf("wrong id deleted: %s", sink.deletes[0])
	}
}

func TestArchiver_PublishNeverBlocks(t *testing.T) {
	// No worker running: the buffer fills up and extra events are dropped.
	w := NewArchiver(discardLogger(), &fakeSink{}, nil, nil, 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < archiveBuffer*2; i++ {
			w.Publish(domain.HazardEvent{Kind: domain.HazardCreated, Hazard: domain.Hazard{ID: uuid.New()}})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Publish blocked on full buffer")
	}
}
