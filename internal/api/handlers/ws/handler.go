package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
	"github.com/hilexa-hlxa/SafeRoute/internal/middleware"
	"github.com/hilexa-hlxa/SafeRoute/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second

	maxFrameBytes = 4096
	outBuffer     = 16
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go
type Dispatcher interface {
	Register(userID uuid.UUID) (uuid.UUID, <-chan domain.AlertEvent)
	Unregister(connID uuid.UUID)
	UpdateLocation(connID uuid.UUID, lat, lng float64) error
}

type SOSSender interface {
	SendSOS(ctx context.Context, caller domain.Identity, req domain.SOSRequest) (*domain.SOSAck, error)
}

// Frame is the envelope for every message on the socket, both directions.
type Frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

const (
	frameLocationUpdate = "location_update"
	frameSOSSignal      = "sos_signal"
	frameSOSAck         = "sos_ack"
	frameEmergencyAlert = "emergency_alert"
	frameError          = "error"
)

type locationPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Handler struct {
	logger     *slog.Logger
	dispatcher Dispatcher
	alerts     SOSSender
	upgrader   websocket.Upgrader
}

func NewHandler(log *slog.Logger, dispatcher Dispatcher, alerts SOSSender) *Handler {
	return &Handler{
		logger:     log,
		dispatcher: dispatcher,
		alerts:     alerts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin checks belong to the gateway in front of us.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve upgrades the connection and runs the read/write pumps until the
// client goes away. The write pump is the only goroutine touching the
// connection for writes; everything outbound goes through the out channel.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.Identity(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", logger.Err(err))
		return
	}

	connID, alerts := h.dispatcher.Register(caller.UserID)
	l := h.logger.With(
		slog.String("conn_id", connID.String()),
		slog.String("user_id", caller.UserID.String()),
	)
	l.Info("websocket connected")

	out := make(chan Frame, outBuffer)
	done := make(chan struct{})
	go h.writePump(conn, alerts, out, done, l)

	h.readPump(conn, caller, connID, out, l)

	close(done)
	h.dispatcher.Unregister(connID)
	_ = conn.Close()
	l.Info("websocket disconnected")
}

func (h *Handler) readPump(conn *websocket.Conn, caller domain.Identity, connID uuid.UUID, out chan<- Frame, l *slog.Logger) {
	conn.SetReadLimit(maxFrameBytes)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				l.Warn("websocket read failed", logger.Err(err))
			}
			return
		}

		var frame Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			h.send(out, frameError, map[string]string{"error": "invalid frame"})
			continue
		}

		switch frame.Type {
		case frameLocationUpdate:
			h.handleLocation(connID, frame.Payload, out, l)
		case frameSOSSignal:
			h.handleSOS(caller, frame.Payload, out, l)
		default:
			h.send(out, frameError, map[string]string{"error": "unknown frame type"})
		}
	}
}

func (h *Handler) handleLocation(connID uuid.UUID, payload json.RawMessage, out chan<- Frame, l *slog.Logger) {
	var loc locationPayload
	if err := json.Unmarshal(payload, &loc); err != nil {
		h.send(out, frameError, map[string]string{"error": "invalid location payload"})
		return
	}

	if err := h.dispatcher.UpdateLocation(connID, loc.Lat, loc.Lng); err != nil {
		l.Warn("location update rejected", logger.Err(err))
		h.send(out, frameError, map[string]string{"error": "invalid location"})
	}
}

func (h *Handler) handleSOS(caller domain.Identity, payload json.RawMessage, out chan<- Frame, l *slog.Logger) {
	var loc locationPayload
	if err := json.Unmarshal(payload, &loc); err != nil {
		h.send(out, frameError, map[string]string{"error": "invalid sos payload"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ack, err := h.alerts.SendSOS(ctx, caller, domain.SOSRequest{Lat: loc.Lat, Lng: loc.Lng})
	if err != nil {
		l.Warn("sos rejected", logger.Err(err))
		h.send(out, frameError, map[string]string{"error": "sos rejected"})
		return
	}

	h.send(out, frameSOSAck, ack)
}

// send marshals the payload and hands the frame to the write pump. A full
// out buffer drops the frame; the client is not keeping up anyway.
func (h *Handler) send(out chan<- Frame, frameType string, payload any) {
	b, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("frame marshal failed", logger.Err(err))
		return
	}
	select {
	case out <- Frame{Type: frameType, Payload: b}:
	default:
		h.logger.Warn("outbound frame dropped", slog.String("type", frameType))
	}
}

func (h *Handler) writePump(conn *websocket.Conn, alerts <-chan domain.AlertEvent, out <-chan Frame, done <-chan struct{}, l *slog.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case event := <-alerts:
			b, err := json.Marshal(event)
			if err != nil {
				l.Error("alert marshal failed", logger.Err(err))
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(Frame{Type: frameEmergencyAlert, Payload: b}); err != nil {
				l.Warn("alert write failed", logger.Err(err))
				return
			}
		case frame := <-out:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(frame); err != nil {
				l.Warn("frame write failed", logger.Err(err))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
