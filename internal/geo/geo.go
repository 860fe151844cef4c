package geo

import "math"

// EarthRadiusM matches the constant used across the API surface so distance
// filters and route heuristics agree with each other.
const EarthRadiusM = 6371000.0

// HaversineM returns the great-circle distance between two points in meters.
// Accurate to well under 0.5% at city scale.
func HaversineM(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusM * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Envelope is a lat/lng bounding box used to pre-filter hazards for a
// route corridor before exact distance checks.
type Envelope struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// NewEnvelope builds the box spanning two points, expanded by marginM meters
// on every side.
func NewEnvelope(lat1, lng1, lat2, lng2, marginM float64) Envelope {
	env := Envelope{
		MinLat: math.Min(lat1, lat2),
		MaxLat: math.Max(lat1, lat2),
		MinLng: math.Min(lng1, lng2),
		MaxLng: math.Max(lng1, lng2),
	}
	if marginM <= 0 {
		return env
	}

	dLat := rad2deg(marginM / EarthRadiusM)
	// Longitude degrees shrink with latitude; scale by the widest parallel
	// inside the box.
	absLat := math.Max(math.Abs(env.MinLat), math.Abs(env.MaxLat))
	cosLat := math.Cos(deg2rad(absLat))
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	dLng := rad2deg(marginM / (EarthRadiusM * cosLat))

	env.MinLat -= dLat
	env.MaxLat += dLat
	env.MinLng -= dLng
	env.MaxLng += dLng
	return env
}

func (e Envelope) Contains(lat, lng float64) bool {
	return lat >= e.MinLat && lat <= e.MaxLat && lng >= e.MinLng && lng <= e.MaxLng
}

func rad2deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// PointToSegmentM returns the minimum distance in meters from point p to the
// segment (a, b). Uses an equirectangular projection around the segment,
// which is accurate enough for edge lengths at city scale.
func PointToSegmentM(pLat, pLng, aLat, aLng, bLat, bLng float64) float64 {
	refLat := deg2rad((aLat + bLat) / 2)
	cosRef := math.Cos(refLat)

	ax := deg2rad(aLng) * cosRef * EarthRadiusM
	ay := deg2rad(aLat) * EarthRadiusM
	bx := deg2rad(bLng) * cosRef * EarthRadiusM
	by := deg2rad(bLat) * EarthRadiusM
	px := deg2rad(pLng) * cosRef * EarthRadiusM
	py := deg2rad(pLat) * EarthRadiusM

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}

	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	cx := ax + t*dx
	cy := ay + t*dy
	return math.Hypot(px-cx, py-cy)
}
