package alert

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
	"github.com/hilexa-hlxa/SafeRoute/internal/geo"
	"github.com/hilexa-hlxa/SafeRoute/pkg/e"
)

// DefaultGeofenceM is the default SOS fan-out radius.
const DefaultGeofenceM = 2000

// sendBuffer sizes each connection's outbound channel. A reader that falls
// this far behind starts losing alerts; delivery is best-effort.
const sendBuffer = 8

type connection struct {
	id          uuid.UUID
	userID      uuid.UUID
	send        chan domain.AlertEvent
	hasLocation bool
}

// Dispatcher tracks live client connections and fans out SOS alerts to
// everyone inside the geofence. Connection locations live in the same
// S2-bucketed index the hazard store uses, keyed by connection id.
type Dispatcher struct {
	logger    *slog.Logger
	geofenceM float64
	index     *geo.SpatialIndex

	mu    sync.RWMutex
	conns map[uuid.UUID]*connection
}

func NewDispatcher(logger *slog.Logger, geofenceM float64) *Dispatcher {
	if geofenceM <= 0 {
		geofenceM = DefaultGeofenceM
	}
	return &Dispatcher{
		logger:    logger,
		geofenceM: geofenceM,
		index:     geo.NewSpatialIndex(),
		conns:     make(map[uuid.UUID]*connection),
	}
}

// Register adds a live connection for userID and returns its id and the
// channel alerts arrive on. The channel is never closed; readers stop by
// abandoning it on disconnect.
func (d *Dispatcher) Register(userID uuid.UUID) (uuid.UUID, <-chan domain.AlertEvent) {
	conn := &connection{
		id:     uuid.New(),
		userID: userID,
		send:   make(chan domain.AlertEvent, sendBuffer),
	}

	d.mu.Lock()
	d.conns[conn.id] = conn
	d.mu.Unlock()

	d.logger.Debug("connection registered",
		slog.String("conn_id", conn.id.String()),
		slog.String("user_id", userID.String()),
	)
	return conn.id, conn.send
}

func (d *Dispatcher) Unregister(connID uuid.UUID) {
	d.mu.Lock()
	conn, ok := d.conns[connID]
	delete(d.conns, connID)
	if ok && conn.hasLocation {
		d.index.Remove(connID)
	}
	d.mu.Unlock()

	if ok {
		d.logger.Debug("connection unregistered", slog.String("conn_id", connID.String()))
	}
}

// UpdateLocation records a connection's last known position so it can be
// found by geofence queries. Index membership changes only under d.mu:
// an Unregister can never interleave between the registry check and the
// upsert and leave an orphaned index point behind.
func (d *Dispatcher) UpdateLocation(connID uuid.UUID, lat, lng float64) error {
	const op = "alert.Dispatcher.UpdateLocation"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidLocation)
	}

	d.mu.Lock()
	conn, ok := d.conns[connID]
	if ok {
		conn.hasLocation = true
		d.index.Upsert(connID, lat, lng, true)
	}
	d.mu.Unlock()

	if !ok {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

// Dispatch pushes an emergency alert to every connection inside the
// geofence around (lat, lng), excluding all of the sender's own
// connections. Delivery is at-most-once per connection: a slow or gone
// recipient just misses the alert.
func (d *Dispatcher) Dispatch(senderID uuid.UUID, lat, lng float64) (int, error) {
	const op = "alert.Dispatcher.Dispatch"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidLocation)
	}

	event := domain.AlertEvent{
		Lat:       lat,
		Lng:       lng,
		UserID:    senderID,
		Timestamp: time.Now().UTC(),
	}

	ids := d.index.QueryRadius(lat, lng, d.geofenceM)

	d.mu.RLock()
	recipients := make([]*connection, 0, len(ids))
	for _, id := range ids {
		conn, ok := d.conns[id]
		if !ok || conn.userID == senderID {
			continue
		}
		recipients = append(recipients, conn)
	}
	d.mu.RUnlock()

	delivered := 0
	for _, conn := range recipients {
		select {
		case conn.send <- event:
			delivered++
		default:
			// Best-effort: never block the fan-out on one slow reader.
			d.logger.Warn("alert dropped, send buffer full",
				slog.String("conn_id", conn.id.String()))
		}
	}

	d.logger.Info("sos dispatched",
		slog.String("sender", senderID.String()),
		slog.Int("in_geofence", len(recipients)),
		slog.Int("delivered", delivered),
	)
	return delivered, nil
}

// Connections returns the number of live connections.
func (d *Dispatcher) Connections() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.conns)
}
