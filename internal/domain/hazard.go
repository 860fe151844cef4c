package domain

import (
	"time"

	"github.com/google/uuid"
)

type HazardStatus string

const (
	HazardPending  HazardStatus = "pending"
	HazardActive   HazardStatus = "active"
	HazardRejected HazardStatus = "rejected"
	HazardResolved HazardStatus = "resolved"
)

// Terminal reports whether no further transition is possible.
func (s HazardStatus) Terminal() bool {
	return s == HazardRejected || s == HazardResolved
}

// Queryable reports whether the hazard participates in proximity queries
// and route avoidance.
func (s HazardStatus) Queryable() bool {
	return s == HazardPending || s == HazardActive
}

type HazardType string

const (
	HazardNoLight          HazardType = "no_light"
	HazardAggressiveAnimal HazardType = "aggressive_animal"
	HazardHarassment       HazardType = "harassment"
	HazardIce              HazardType = "ice"
	HazardOther            HazardType = "other"
)

type Hazard struct {
	ID           uuid.UUID    `json:"id"`
	ReporterID   uuid.UUID    `json:"user_id"`
	Type         HazardType   `json:"type"`
	Description  string       `json:"description,omitempty"`
	Lat          float64      `json:"lat"`
	Lng          float64      `json:"lng"`
	Status       HazardStatus `json:"status"`
	ConfirmCount int          `json:"confirm_count"`
	RejectCount  int          `json:"reject_count"`
	CreatedAt    time.Time    `json:"created_at"`
	ResolvedAt   *time.Time   `json:"resolved_at,omitempty"`
}

type Vote struct {
	ID         uuid.UUID `json:"id"`
	HazardID   uuid.UUID `json:"incident_id"`
	VoterID    uuid.UUID `json:"user_id"`
	IsTruthful bool      `json:"is_truthful"`
	CreatedAt  time.Time `json:"created_at"`
}

// HazardEventKind classifies store mutations handed to the archive pipeline.
type HazardEventKind string

const (
	HazardCreated       HazardEventKind = "created"
	HazardVoted         HazardEventKind = "voted"
	HazardStatusChanged HazardEventKind = "status_changed"
	HazardDeleted       HazardEventKind = "deleted"
)

type HazardEvent struct {
	Kind       HazardEventKind `json:"kind"`
	Hazard     Hazard          `json:"hazard"`
	Vote       *Vote           `json:"vote,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
