package domain

import (
	"time"

	"github.com/google/uuid"
)

type SOSRequest struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

// AlertEvent is the emergency_alert payload pushed to clients inside the
// geofence. Ephemeral: computed at dispatch time, never stored.
type AlertEvent struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	UserID    uuid.UUID `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

type SOSAck struct {
	ID         uuid.UUID `json:"id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Recipients int       `json:"recipients"`
	Timestamp  time.Time `json:"timestamp"`
}

// SOSLog is the durable audit record, the only thing an SOS leaves behind.
type SOSLog struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}
