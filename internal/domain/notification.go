package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotifyHazardConfirmed NotificationKind = "hazard_confirmed"
	NotifyHazardRejected  NotificationKind = "hazard_rejected"
	NotifyHazardResolved  NotificationKind = "hazard_resolved"
	NotifySOS             NotificationKind = "sos"
)

// NotificationPayload is what gets handed to the push-notification
// pipeline. Delivery to devices is someone else's job; we only enqueue.
type NotificationPayload struct {
	Kind       NotificationKind `json:"kind"`
	HazardID   uuid.UUID        `json:"hazard_id,omitempty"`
	UserID     uuid.UUID        `json:"user_id"`
	Lat        float64          `json:"lat"`
	Lng        float64          `json:"lng"`
	Status     HazardStatus     `json:"status,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
