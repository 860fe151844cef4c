package domain

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RouteRequest struct {
	StartLat    float64 `json:"start_lat" validate:"lat"`
	StartLng    float64 `json:"start_lng" validate:"lng"`
	EndLat      float64 `json:"end_lat" validate:"lat"`
	EndLng      float64 `json:"end_lng" validate:"lng"`
	AvoidRadius float64 `json:"avoid_radius" validate:"radius_m"`

	// HardExclude removes hazard-adjacent edges from the search instead of
	// penalizing them. When exclusion disconnects the endpoints the planner
	// falls back to the penalized search and marks the result degraded.
	HardExclude bool `json:"hard_exclude,omitempty"`
}

type RouteResult struct {
	Geometry         []LatLng `json:"geometry"`
	DistanceM        float64  `json:"distance"`
	DurationS        float64  `json:"duration"`
	IncidentsAvoided int      `json:"incidents_avoided"`
	Degraded         bool     `json:"degraded,omitempty"`
}
