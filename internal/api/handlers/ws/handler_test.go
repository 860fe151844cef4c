package ws_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/hilexa-hlxa/SafeRoute/internal/alert"
	"github.com/hilexa-hlxa/SafeRoute/internal/api/handlers/ws"
	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
	"github.com/hilexa-hlxa/SafeRoute/internal/middleware"
)

type stubAlertService struct {
	dispatcher *alert.Dispatcher
}

func (s *stubAlertService) SendSOS(_ context.Context, caller domain.Identity, req domain.SOSRequest) (*domain.SOSAck, error) {
	n, err := s.dispatcher.Dispatch(caller.UserID, req.Lat, req.Lng)
	if err != nil {
		return nil, err
	}
	return &domain.SOSAck{
		ID:         uuid.New(),
		Lat:        req.Lat,
		Lng:        req.Lng,
		Recipients: n,
		Timestamp:  time.Now().UTC(),
	}, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *alert.Dispatcher) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatcher := alert.NewDispatcher(log, 2000)
	handler := ws.NewHandler(log, dispatcher, &stubAlertService{dispatcher: dispatcher})

	mux := http.NewServeMux()
	mux.Handle("/ws", middleware.WithIdentity(http.HandlerFunc(handler.Serve)))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, dispatcher
}

func dial(t *testing.T, srv *httptest.Server, userID uuid.UUID) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	header := http.Header{}
	header.Set("X-User-ID", userID.String())

	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func sendFrame(t *testing.T, conn *websocket.Conn, frameType string, payload any) {
	t.Helper()
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := conn.WriteJSON(ws.Frame{Type: frameType, Payload: b}); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func readFrame(t *testing.T, conn *websocket.Conn, timeout time.Duration) ws.Frame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(timeout))
	var frame ws.Frame
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read: %v", err)
	}
	return frame
}

func TestServe_RequiresIdentity(t *testing.T) {
	srv, _ := newTestServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatalf("expected handshake failure")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 handshake response, got %+v", resp)
	}
}

func TestServe_SOSReachesNearbyConnection(t *testing.T) {
	srv, _ := newTestServer(t)

	listenerID := uuid.New()
	senderID := uuid.New()

	listener := dial(t, srv, listenerID)
	sender := dial(t, srv, senderID)

	// Listener sits well inside the 2km geofence.
	sendFrame(t, listener, "location_update", map[string]float64{"lat": 40.711, "lng": -74.001})

	// The location update has no ack, so retry the SOS until the listener
	// becomes visible to the dispatcher.
	var ack domain.SOSAck
	deadline := time.Now().Add(3 * time.Second)
	for {
		sendFrame(t, sender, "sos_signal", map[string]float64{"lat": 40.710, "lng": -74.000})
		frame := readFrame(t, sender, 2*time.Second)
		if frame.Type != "sos_ack" {
			t.Fatalf("expected sos_ack, got %s", frame.Type)
		}
		if err := json.Unmarshal(frame.Payload, &ack); err != nil {
			t.Fatalf("bad ack payload: %v", err)
		}
		if ack.Recipients == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("listener never became reachable, last ack: %+v", ack)
		}
		time.Sleep(20 * time.Millisecond)
	}

	frame := readFrame(t, listener, 2*time.Second)
	if frame.Type != "emergency_alert" {
		t.Fatalf("expected emergency_alert, got %s", frame.Type)
	}
	var event domain.AlertEvent
	if err := json.Unmarshal(frame.Payload, &event); err != nil {
		t.Fatalf("bad alert payload: %v", err)
	}
	if event.UserID != senderID {
		t.Fatalf("alert attributed to wrong user: %s", event.UserID)
	}
	if event.Lat != 40.710 || event.Lng != -74.000 {
		t.Fatalf("wrong alert location: %+v", event)
	}
}

func TestServe_InvalidLocationGetsErrorFrame(t *testing.T) {
	srv, _ := newTestServer(t)

	conn := dial(t, srv, uuid.New())

	sendFrame(t, conn, "location_update", map[string]float64{"lat": 91, "lng": 0})

	frame := readFrame(t, conn, 2*time.Second)
	if frame.Type != "error" {
		t.Fatalf("expected error frame, got %s", frame.Type)
	}
}

func TestServe_UnknownFrameType(t *testing.T) {
	srv, _ := newTestServer(t)

	conn := dial(t, srv, uuid.New())

	sendFrame(t, conn, "bogus", map[string]string{})

	frame := readFrame(t, conn, 2*time.Second)
	if frame.Type != "error" {
		t.Fatalf("expected error frame, got %s", frame.Type)
	}
}

func TestServe_SenderDoesNotAlertSelf(t *testing.T) {
	srv, _ := newTestServer(t)

	senderID := uuid.New()
	conn := dial(t, srv, senderID)

	sendFrame(t, conn, "location_update", map[string]float64{"lat": 40.711, "lng": -74.001})

	// Give the read loop a moment to process the location.
	time.Sleep(50 * time.Millisecond)

	sendFrame(t, conn, "sos_signal", map[string]float64{"lat": 40.711, "lng": -74.001})

	frame := readFrame(t, conn, 2*time.Second)
	if frame.Type != "sos_ack" {
		t.Fatalf("expected sos_ack, got %s", frame.Type)
	}
	var ack domain.SOSAck
	if err := json.Unmarshal(frame.Payload, &ack); err != nil {
		t.Fatalf("bad ack payload: %v", err)
	}
	if ack.Recipients != 0 {
		t.Fatalf("sender must not receive their own alert, got %d recipients", ack.Recipients)
	}
}
