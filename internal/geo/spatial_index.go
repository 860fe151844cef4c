package geo

import (
	"sync"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/google/uuid"
)

// bucketLevel 13 gives cells roughly 1.2 km across: small enough that a
// radius query touches few buckets, large enough that city-scale coverings
// stay cheap.
const bucketLevel = 13

// covererMaxCells bounds the covering size for the largest supported radii
// (~10 km caps need a few hundred level-13 cells).
const covererMaxCells = 1024

type point struct {
	lat, lng  float64
	queryable bool
	cell      s2.CellID
}

// SpatialIndex is an S2-cell-bucketed point index answering radius and
// envelope queries. Mutations take the write lock briefly; queries share
// the read lock, so readers never observe a torn bucket.
type SpatialIndex struct {
	mu      sync.RWMutex
	points  map[uuid.UUID]point
	buckets map[s2.CellID]map[uuid.UUID]struct{}
}

func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{
		points:  make(map[uuid.UUID]point),
		buckets: make(map[s2.CellID]map[uuid.UUID]struct{}),
	}
}

// Upsert inserts or relocates a point. Non-queryable points are retained
// (so a later status flip is an upsert, not a re-insert) but never returned
// from queries.
func (idx *SpatialIndex) Upsert(id uuid.UUID, lat, lng float64, queryable bool) {
	cell := s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lng)).Parent(bucketLevel)

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if old, ok := idx.points[id]; ok && old.cell != cell {
		idx.removeFromBucket(old.cell, id)
	}
	idx.points[id] = point{lat: lat, lng: lng, queryable: queryable, cell: cell}

	b, ok := idx.buckets[cell]
	if !ok {
		b = make(map[uuid.UUID]struct{})
		idx.buckets[cell] = b
	}
	b[id] = struct{}{}
}

func (idx *SpatialIndex) Remove(id uuid.UUID) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	p, ok := idx.points[id]
	if !ok {
		return
	}
	delete(idx.points, id)
	idx.removeFromBucket(p.cell, id)
}

func (idx *SpatialIndex) removeFromBucket(cell s2.CellID, id uuid.UUID) {
	b, ok := idx.buckets[cell]
	if !ok {
		return
	}
	delete(b, id)
	if len(b) == 0 {
		delete(idx.buckets, cell)
	}
}

// QueryRadius returns the ids of all queryable points within radiusM meters
// of the center. The spherical cap covering visits every bucket the circle
// touches, including neighbors of the center cell, so boundary points are
// never missed; candidates are then filtered by exact haversine distance.
func (idx *SpatialIndex) QueryRadius(lat, lng, radiusM float64) []uuid.UUID {
	if radiusM < 0 {
		return nil
	}

	center := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng))
	circle := s2.CapFromCenterAngle(center, s1.Angle(radiusM/EarthRadiusM))

	coverer := s2.RegionCoverer{
		MinLevel: bucketLevel,
		MaxLevel: bucketLevel,
		MaxCells: covererMaxCells,
	}
	covering := coverer.Covering(circle)

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var out []uuid.UUID
	for _, cell := range covering {
		for id := range idx.buckets[cell] {
			p := idx.points[id]
			if !p.queryable {
				continue
			}
			if HaversineM(lat, lng, p.lat, p.lng) <= radiusM {
				out = append(out, id)
			}
		}
	}
	return out
}

// QueryEnvelope returns queryable points inside a lat/lng box. Used by the
// route planner to fetch every hazard relevant to a start-end corridor in
// one pass.
func (idx *SpatialIndex) QueryEnvelope(env Envelope) []uuid.UUID {
	rect := s2.RectFromLatLng(s2.LatLngFromDegrees(env.MinLat, env.MinLng)).
		AddPoint(s2.LatLngFromDegrees(env.MaxLat, env.MaxLng))

	coverer := s2.RegionCoverer{
		MinLevel: bucketLevel,
		MaxLevel: bucketLevel,
		MaxCells: covererMaxCells,
	}
	covering := coverer.Covering(rect)

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var out []uuid.UUID
	for _, cell := range covering {
		for id := range idx.buckets[cell] {
			p := idx.points[id]
			if !p.queryable {
				continue
			}
			if env.Contains(p.lat, p.lng) {
				out = append(out, id)
			}
		}
	}
	return out
}

// Location returns the stored coordinates for id.
func (idx *SpatialIndex) Location(id uuid.UUID) (lat, lng float64, ok bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	p, found := idx.points[id]
	if !found {
		return 0, 0, false
	}
	return p.lat, p.lng, true
}

func (idx *SpatialIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.points)
}
