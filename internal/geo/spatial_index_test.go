package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

func TestHaversineM_KnownDistance(t *testing.T) {
	t.Parallel()

	// Times Square to Empire State Building, roughly 1.1 km.
	d := HaversineM(40.7580, -73.9855, 40.7484, -73.9857)
	if d < 1000 || d > 1200 {
		t.Fatalf("unexpected distance: %f", d)
	}

	if d := HaversineM(40.71, -74.00, 40.71, -74.00); d != 0 {
		t.Fatalf("zero distance expected, got %f", d)
	}
}

func TestSpatialIndex_QueryRadius_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	idx := NewSpatialIndex()

	type pt struct {
		id       uuid.UUID
		lat, lng float64
	}

	// Random cloud around lower Manhattan, wide enough to span many buckets.
	pts := make([]pt, 0, 500)
	for i := 0; i < 500; i++ {
		p := pt{
			id:  uuid.New(),
			lat: 40.70 + rng.Float64()*0.10,
			lng: -74.02 + rng.Float64()*0.10,
		}
		pts = append(pts, p)
		idx.Upsert(p.id, p.lat, p.lng, true)
	}

	queries := []struct {
		lat, lng, radius float64
	}{
		{40.75, -73.97, 500},
		{40.72, -74.00, 2000},
		{40.70, -74.02, 100},
		{40.75, -73.95, 8000},
	}

	for _, q := range queries {
		want := make(map[uuid.UUID]bool)
		for _, p := range pts {
			if HaversineM(q.lat, q.lng, p.lat, p.lng) <= q.radius {
				want[p.id] = true
			}
		}

		got := idx.QueryRadius(q.lat, q.lng, q.radius)
		if len(got) != len(want) {
			t.Fatalf("radius=%f: got %d ids, want %d", q.radius, len(got), len(want))
		}
		for _, id := range got {
			if !want[id] {
				t.Fatalf("radius=%f: unexpected id %s", q.radius, id)
			}
		}
	}
}

func TestSpatialIndex_NonQueryableExcluded(t *testing.T) {
	t.Parallel()

	idx := NewSpatialIndex()
	visible := uuid.New()
	hidden := uuid.New()

	idx.Upsert(visible, 40.71, -74.00, true)
	idx.Upsert(hidden, 40.7101, -74.0001, false)

	got := idx.QueryRadius(40.71, -74.00, 500)
	if len(got) != 1 || got[0] != visible {
		t.Fatalf("expected only the queryable point, got %v", got)
	}

	// Flipping queryable republishes the point.
	idx.Upsert(hidden, 40.7101, -74.0001, true)
	if got := idx.QueryRadius(40.71, -74.00, 500); len(got) != 2 {
		t.Fatalf("expected 2 points after flip, got %d", len(got))
	}
}

func TestSpatialIndex_UpsertRelocates(t *testing.T) {
	t.Parallel()

	idx := NewSpatialIndex()
	id := uuid.New()

	idx.Upsert(id, 40.71, -74.00, true)
	// Move far enough to land in a different bucket.
	idx.Upsert(id, 40.90, -73.80, true)

	if got := idx.QueryRadius(40.71, -74.00, 1000); len(got) != 0 {
		t.Fatalf("stale location still indexed: %v", got)
	}
	if got := idx.QueryRadius(40.90, -73.80, 1000); len(got) != 1 {
		t.Fatalf("new location not indexed: %v", got)
	}
	if idx.Len() != 1 {
		t.Fatalf("expected 1 point, got %d", idx.Len())
	}
}

func TestSpatialIndex_Remove(t *testing.T) {
	t.Parallel()

	idx := NewSpatialIndex()
	id := uuid.New()
	idx.Upsert(id, 40.71, -74.00, true)
	idx.Remove(id)
	idx.Remove(id) // second remove is a no-op

	if got := idx.QueryRadius(40.71, -74.00, 1000); len(got) != 0 {
		t.Fatalf("removed point returned: %v", got)
	}
	if _, _, ok := idx.Location(id); ok {
		t.Fatal("location should be gone after remove")
	}
}

func TestSpatialIndex_QueryEnvelope(t *testing.T) {
	t.Parallel()

	idx := NewSpatialIndex()
	inside := uuid.New()
	outside := uuid.New()
	idx.Upsert(inside, 40.712, -74.005, true)
	idx.Upsert(outside, 40.80, -73.90, true)

	env := NewEnvelope(40.7000, -74.0100, 40.7250, -74.0020, 100)
	got := idx.QueryEnvelope(env)
	if len(got) != 1 || got[0] != inside {
		t.Fatalf("envelope query mismatch: %v", got)
	}
}

func TestNewEnvelope_MarginExpands(t *testing.T) {
	t.Parallel()

	base := NewEnvelope(40.70, -74.01, 40.72, -74.00, 0)
	expanded := NewEnvelope(40.70, -74.01, 40.72, -74.00, 500)

	if expanded.MinLat >= base.MinLat || expanded.MaxLat <= base.MaxLat {
		t.Fatal("latitude margin not applied")
	}
	if expanded.MinLng >= base.MinLng || expanded.MaxLng <= base.MaxLng {
		t.Fatal("longitude margin not applied")
	}

	// ~500 m of latitude is ~0.0045 degrees.
	gotMargin := base.MinLat - expanded.MinLat
	if math.Abs(gotMargin-0.0045) > 0.001 {
		t.Fatalf("latitude margin off: %f", gotMargin)
	}
}

func TestPointToSegmentM(t *testing.T) {
	t.Parallel()

	// Point due east of a north-south segment through (40.71, -74.00).
	d := PointToSegmentM(40.715, -73.99, 40.70, -74.00, 40.73, -74.00)
	want := HaversineM(40.715, -73.99, 40.715, -74.00)
	if math.Abs(d-want) > want*0.01 {
		t.Fatalf("segment distance %f, want about %f", d, want)
	}

	// Beyond the segment end, distance is to the endpoint.
	d = PointToSegmentM(40.75, -74.00, 40.70, -74.00, 40.73, -74.00)
	want = HaversineM(40.75, -74.00, 40.73, -74.00)
	if math.Abs(d-want) > want*0.01 {
		t.Fatalf("endpoint distance %f, want about %f", d, want)
	}
}
