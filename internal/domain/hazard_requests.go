package domain

import "github.com/google/uuid"

type CreateHazardRequest struct {
	Lat         float64    `json:"lat" validate:"lat"`
	Lng         float64    `json:"lng" validate:"lng"`
	Type        HazardType `json:"type" validate:"required,oneof=no_light aggressive_animal harassment ice other"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
}

type NearbyHazardsRequest struct {
	Lat     float64 `json:"lat" validate:"lat"`
	Lng     float64 `json:"lng" validate:"lng"`
	RadiusM float64 `json:"radius" validate:"radius_m"`
}

type VoteRequest struct {
	IsTruthful bool `json:"is_truthful"`
}

type ListHazardsRequest struct {
	Status HazardStatus `json:"status" validate:"omitempty,oneof=pending active rejected resolved"`
}

// Identity is the pre-authorized caller identity the gateway attaches to
// each request. Token validation happens upstream.
type Identity struct {
	UserID  uuid.UUID
	IsAdmin bool
}
