package hazard

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
	"github.com/hilexa-hlxa/SafeRoute/internal/geo"
	"github.com/hilexa-hlxa/SafeRoute/pkg/e"
)

// DefaultConfirmThreshold is the net confirm margin that flips a pending
// hazard to active (or, negated, to rejected).
const DefaultConfirmThreshold = 3

// Publisher receives store mutations for the archive/notification pipeline.
// Implementations must not block.
type Publisher interface {
	Publish(event domain.HazardEvent)
}

type record struct {
	mu      sync.Mutex
	hazard  domain.Hazard
	voters  map[uuid.UUID]bool // voter id -> is_truthful
	deleted bool
}

// Store owns hazard records and their vote ledger. The outer map is guarded
// by mu; vote application and the resulting status transition are serialized
// per hazard by each record's own mutex, so votes on different hazards never
// contend.
type Store struct {
	logger           *slog.Logger
	index            *geo.SpatialIndex
	pub              Publisher
	confirmThreshold int

	mu      sync.RWMutex
	hazards map[uuid.UUID]*record
}

func NewStore(logger *slog.Logger, index *geo.SpatialIndex, pub Publisher, confirmThreshold int) *Store {
	if confirmThreshold <= 0 {
		confirmThreshold = DefaultConfirmThreshold
	}
	return &Store{
		logger:           logger,
		index:            index,
		pub:              pub,
		confirmThreshold: confirmThreshold,
		hazards:          make(map[uuid.UUID]*record),
	}
}

// Create registers a new pending hazard and publishes it into the spatial
// index.
func (s *Store) Create(reporterID uuid.UUID, req domain.CreateHazardRequest) (*domain.Hazard, error) {
	const op = "hazard.Store.Create"

	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	h := domain.Hazard{
		ID:          uuid.New(),
		ReporterID:  reporterID,
		Type:        req.Type,
		Description: req.Description,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Status:      domain.HazardPending,
		CreatedAt:   time.Now().UTC(),
	}

	rec := &record{hazard: h, voters: make(map[uuid.UUID]bool)}

	s.mu.Lock()
	s.hazards[h.ID] = rec
	s.mu.Unlock()

	s.index.Upsert(h.ID, h.Lat, h.Lng, true)
	s.publish(domain.HazardCreated, h, nil)

	s.logger.Info("hazard created",
		slog.String("id", h.ID.String()),
		slog.String("type", string(h.Type)),
		slog.Float64("lat", h.Lat),
		slog.Float64("lng", h.Lng),
	)
	return &h, nil
}

// Get returns a copy of the hazard.
func (s *Store) Get(id uuid.UUID) (*domain.Hazard, error) {
	const op = "hazard.Store.Get"

	rec, err := s.record(op, id)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.deleted {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	h := rec.hazard
	return &h, nil
}

// Vote applies one vote and evaluates the threshold transition atomically
// under the hazard's lock: two concurrent voters cannot both observe the
// pre-threshold state without one of them performing the transition.
func (s *Store) Vote(hazardID, voterID uuid.UUID, isTruthful bool) (*domain.Hazard, error) {
	const op = "hazard.Store.Vote"

	rec, err := s.record(op, hazardID)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.deleted {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	if !rec.hazard.Status.Queryable() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidState)
	}
	if rec.hazard.ReporterID == voterID {
		return nil, fmt.Errorf("%s: %w", op, e.ErrSelfVote)
	}
	if _, voted := rec.voters[voterID]; voted {
		return nil, fmt.Errorf("%s: %w", op, e.ErrDuplicateVote)
	}

	rec.voters[voterID] = isTruthful
	if isTruthful {
		rec.hazard.ConfirmCount++
	} else {
		rec.hazard.RejectCount++
	}

	vote := &domain.Vote{
		ID:         uuid.New(),
		HazardID:   hazardID,
		VoterID:    voterID,
		IsTruthful: isTruthful,
		CreatedAt:  time.Now().UTC(),
	}
	s.publish(domain.HazardVoted, rec.hazard, vote)

	if rec.hazard.Status == domain.HazardPending {
		net := rec.hazard.ConfirmCount - rec.hazard.RejectCount
		switch {
		case net >= s.confirmThreshold:
			s.transitionLocked(rec, domain.HazardActive)
		case net <= -s.confirmThreshold:
			s.transitionLocked(rec, domain.HazardRejected)
		}
	}

	h := rec.hazard
	return &h, nil
}

// Resolve marks an active hazard resolved. Permitted only for the original
// reporter or an admin caller; authorization itself happened upstream.
func (s *Store) Resolve(id uuid.UUID, caller domain.Identity) (*domain.Hazard, error) {
	const op = "hazard.Store.Resolve"

	rec, err := s.record(op, id)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.deleted {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	if !caller.IsAdmin && rec.hazard.ReporterID != caller.UserID {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	if rec.hazard.Status != domain.HazardActive {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidState)
	}

	now := time.Now().UTC()
	rec.hazard.ResolvedAt = &now
	s.transitionLocked(rec, domain.HazardResolved)

	h := rec.hazard
	return &h, nil
}

// Approve applies the admin pending -> active transition.
func (s *Store) Approve(id uuid.UUID) (*domain.Hazard, error) {
	return s.adminTransition("hazard.Store.Approve", id, domain.HazardActive)
}

// Reject applies the admin pending -> rejected transition.
func (s *Store) Reject(id uuid.UUID) (*domain.Hazard, error) {
	return s.adminTransition("hazard.Store.Reject", id, domain.HazardRejected)
}

func (s *Store) adminTransition(op string, id uuid.UUID, to domain.HazardStatus) (*domain.Hazard, error) {
	rec, err := s.record(op, id)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.deleted {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	if rec.hazard.Status != domain.HazardPending {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidState)
	}

	s.transitionLocked(rec, to)
	h := rec.hazard
	return &h, nil
}

// Delete removes the hazard entirely, including its index entry.
func (s *Store) Delete(id uuid.UUID) error {
	const op = "hazard.Store.Delete"

	s.mu.Lock()
	rec, ok := s.hazards[id]
	if ok {
		delete(s.hazards, id)
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	rec.mu.Lock()
	rec.deleted = true
	h := rec.hazard
	rec.mu.Unlock()

	s.index.Remove(id)
	s.publish(domain.HazardDeleted, h, nil)

	s.logger.Info("hazard deleted", slog.String("id", id.String()))
	return nil
}

// Nearby returns active and pending hazards within radiusM of the center,
// newest first.
func (s *Store) Nearby(lat, lng, radiusM float64) []*domain.Hazard {
	ids := s.index.QueryRadius(lat, lng, radiusM)
	out := s.collect(ids)
	sortNewestFirst(out)
	return out
}

// Snapshot returns copies of the queryable hazards inside the envelope. The
// route planner computes entirely off this snapshot without holding locks.
func (s *Store) Snapshot(env geo.Envelope) []domain.Hazard {
	ids := s.index.QueryEnvelope(env)
	recs := s.collect(ids)
	out := make([]domain.Hazard, 0, len(recs))
	for _, h := range recs {
		out = append(out, *h)
	}
	return out
}

// List returns hazards in any state, optionally filtered by status, newest
// first. Terminal hazards stay listable for audit.
func (s *Store) List(status domain.HazardStatus) []*domain.Hazard {
	s.mu.RLock()
	recs := make([]*record, 0, len(s.hazards))
	for _, rec := range s.hazards {
		recs = append(recs, rec)
	}
	s.mu.RUnlock()

	out := make([]*domain.Hazard, 0, len(recs))
	for _, rec := range recs {
		rec.mu.Lock()
		h := rec.hazard
		deleted := rec.deleted
		rec.mu.Unlock()
		if deleted {
			continue
		}
		if status != "" && h.Status != status {
			continue
		}
		out = append(out, &h)
	}
	sortNewestFirst(out)
	return out
}

// Restore seeds the store from archived hazards and their votes at boot.
// No events are published for restored state.
func (s *Store) Restore(hazards []domain.Hazard, votes []domain.Vote) {
	votersByHazard := make(map[uuid.UUID]map[uuid.UUID]bool)
	for _, v := range votes {
		m, ok := votersByHazard[v.HazardID]
		if !ok {
			m = make(map[uuid.UUID]bool)
			votersByHazard[v.HazardID] = m
		}
		m[v.VoterID] = v.IsTruthful
	}

	s.mu.Lock()
	for _, h := range hazards {
		voters := votersByHazard[h.ID]
		if voters == nil {
			voters = make(map[uuid.UUID]bool)
		}
		s.hazards[h.ID] = &record{hazard: h, voters: voters}
	}
	s.mu.Unlock()

	for _, h := range hazards {
		s.index.Upsert(h.ID, h.Lat, h.Lng, h.Status.Queryable())
	}

	s.logger.Info("hazard store restored",
		slog.Int("hazards", len(hazards)),
		slog.Int("votes", len(votes)),
	)
}

func (s *Store) record(op string, id uuid.UUID) (*record, error) {
	s.mu.RLock()
	rec, ok := s.hazards[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return rec, nil
}

// transitionLocked flips the status and republishes the index entry.
// Caller holds rec.mu.
func (s *Store) transitionLocked(rec *record, to domain.HazardStatus) {
	from := rec.hazard.Status
	rec.hazard.Status = to

	s.index.Upsert(rec.hazard.ID, rec.hazard.Lat, rec.hazard.Lng, to.Queryable())
	s.publish(domain.HazardStatusChanged, rec.hazard, nil)

	s.logger.Info("hazard status changed",
		slog.String("id", rec.hazard.ID.String()),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
	)
}

func (s *Store) publish(kind domain.HazardEventKind, h domain.Hazard, vote *domain.Vote) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(domain.HazardEvent{
		Kind:       kind,
		Hazard:     h,
		Vote:       vote,
		OccurredAt: time.Now().UTC(),
	})
}

func (s *Store) collect(ids []uuid.UUID) []*domain.Hazard {
	out := make([]*domain.Hazard, 0, len(ids))
	s.mu.RLock()
	recs := make([]*record, 0, len(ids))
	for _, id := range ids {
		if rec, ok := s.hazards[id]; ok {
			recs = append(recs, rec)
		}
	}
	s.mu.RUnlock()

	for _, rec := range recs {
		rec.mu.Lock()
		h := rec.hazard
		deleted := rec.deleted
		rec.mu.Unlock()
		if !deleted {
			out = append(out, &h)
		}
	}
	return out
}

func sortNewestFirst(hs []*domain.Hazard) {
	sort.Slice(hs, func(i, j int) bool {
		if hs[i].CreatedAt.Equal(hs[j].CreatedAt) {
			return hs[i].ID.String() < hs[j].ID.String()
		}
		return hs[i].CreatedAt.After(hs[j].CreatedAt)
	})
}
