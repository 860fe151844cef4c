package alert

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestDispatcher_GeofenceFanout(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(newTestLogger(), DefaultGeofenceM)

	nearUser := uuid.New()
	farUser := uuid.New()
	sender := uuid.New()

	nearConn, nearCh := d.Register(nearUser)
	farConn, farCh := d.Register(farUser)

	// (40.711, -74.001) is ~140m from the SOS point; (41.0, -75.0) is ~90km.
	if err := d.UpdateLocation(nearConn, 40.711, -74.001); err != nil {
		t.Fatalf("update near: %v", err)
	}
	if err := d.UpdateLocation(farConn, 41.0, -75.0); err != nil {
		t.Fatalf("update far: %v", err)
	}

	delivered, err := d.Dispatch(sender, 40.71, -74.00)
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if delivered != 1 {
		t.Fatalf("delivered=%d, want 1", delivered)
	}

	select {
	case ev := <-nearCh:
		if ev.UserID != sender || ev.Lat != 40.71 || ev.Lng != -74.00 {
			t.Fatalf("bad alert payload: %+v", ev)
		}
		if ev.Timestamp.IsZero() {
			t.Fatal("alert missing timestamp")
		}
	default:
		t.Fatal("near client did not receive the alert")
	}

	select {
	case ev := <-farCh:
		t.Fatalf("far client received alert: %+v", ev)
	default:
	}
}

func TestDispatcher_SenderExcluded(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(newTestLogger(), DefaultGeofenceM)
	sender := uuid.New()

	connID, ch := d.Register(sender)
	if err := d.UpdateLocation(connID, 40.71, -74.00); err != nil {
		t.Fatalf("update: %v", err)
	}

	delivered, err := d.Dispatch(sender, 40.71, -74.00)
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if delivered != 0 {
		t.Fatalf("sender received its own alert, delivered=%d", delivered)
	}
	select {
	case ev := <-ch:
		t.Fatalf("sender received its own alert: %+v", ev)
	default:
	}
}

func TestDispatcher_InvalidLocation(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(newTestLogger(), DefaultGeofenceM)
	recipient, ch := d.Register(uuid.New())
	if err := d.UpdateLocation(recipient, 40.71, -74.00); err != nil {
		t.Fatalf("update: %v", err)
	}

	// Malformed sender location fails before any dispatch attempt.
	if _, err := d.Dispatch(uuid.New(), 91, -74.00); !errors.Is(err, e.ErrInvalidLocation) {
		t.Fatalf("expected ErrInvalidLocation, got %v", err)
	}
	select {
	case ev := <-ch:
		t.Fatalf("alert broadcast despite invalid location: %+v", ev)
	default:
	}

	if err := d.UpdateLocation(recipient, 40.71, -181); !errors.Is(err, e.ErrInvalidLocation) {
		t.Fatalf("expected ErrInvalidLocation, got %v", err)
	}
}

func TestDispatcher_NoLocationNoAlert(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(newTestLogger(), DefaultGeofenceM)
	// Registered but never reported a location: invisible to the geofence.
	_, ch := d.Register(uuid.New())

	delivered, err := d.Dispatch(uuid.New(), 40.71, -74.00)
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if delivered != 0 {
		t.Fatalf("delivered=%d, want 0", delivered)
	}
	select {
	case <-ch:
		t.Fatal("locationless client received alert")
	default:
	}
}

func TestDispatcher_Unregister(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(newTestLogger(), DefaultGeofenceM)
	connID, _ := d.Register(uuid.New())
	if err := d.UpdateLocation(connID, 40.71, -74.00); err != nil {
		t.Fatalf("update: %v", err)
	}

	d.Unregister(connID)
	d.Unregister(connID) // idempotent

	if d.Connections() != 0 {
		t.Fatalf("connections=%d after unregister", d.Connections())
	}
	delivered, err := d.Dispatch(uuid.New(), 40.71, -74.00)
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if delivered != 0 {
		t.Fatalf("delivered=%d to a gone connection", delivered)
	}

	if err := d.UpdateLocation(connID, 40.71, -74.00); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDispatcher_SlowReaderDropsNotBlocks(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(newTestLogger(), DefaultGeofenceM)
	sender := uuid.New()

	slowConn, slowCh := d.Register(uuid.New())
	okConn, okCh := d.Register(uuid.New())
	if err := d.UpdateLocation(slowConn, 40.711, -74.001); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := d.UpdateLocation(okConn, 40.712, -74.002); err != nil {
		t.Fatalf("update: %v", err)
	}

	// Saturate both buffers, then drain only the healthy reader.
	for i := 0; i < sendBuffer; i++ {
		if _, err := d.Dispatch(sender, 40.71, -74.00); err != nil {
			t.Fatalf("dispatch %d: %v", i, err)
		}
	}
	for i := 0; i < sendBuffer; i++ {
		<-okCh
	}

	// The healthy reader still gets the next alert; the saturated one is
	// skipped without blocking the fan-out.
	delivered, err := d.Dispatch(sender, 40.71, -74.00)
	if err != nil {
		t.Fatalf("final dispatch: %v", err)
	}
	if delivered != 1 {
		t.Fatalf("delivered=%d, want 1", delivered)
	}
	select {
	case <-okCh:
	default:
		t.Fatal("healthy reader missed the alert")
	}
	if len(slowCh) != sendBuffer {
		t.Fatalf("slow reader buffer %d, want full %d", len(slowCh), sendBuffer)
	}
}

func TestDispatcher_UnregisterLeavesNoIndexPoint(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(newTestLogger(), DefaultGeofenceM)

	// Location updates racing an unregister must never strand a point in
	// the index: membership changes happen under the registry lock.
	for i := 0; i < 200; i++ {
		connID, _ := d.Register(uuid.New())

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = d.UpdateLocation(connID, 40.71, -74.00)
		}()
		go func() {
			defer wg.Done()
			d.Unregister(connID)
		}()
		wg.Wait()

		// Either order is fine: update-then-unregister removes the point,
		// unregister-then-update rejects the update. Never an orphan.
		if n := d.index.Len(); n != 0 {
			t.Fatalf("iteration %d: %d orphaned index points", i, n)
		}
	}

	if d.Connections() != 0 {
		t.Fatalf("connections=%d, want 0", d.Connections())
	}
}
