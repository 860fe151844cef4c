package system_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/hilexa-hlxa/SafeRoute/internal/api/handlers/http/system"
	"github.com/hilexa-hlxa/SafeRoute/internal/routing"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func buildGraph(t *testing.T) *routing.Graph {
	t.Helper()
	g := routing.NewGraph()
	g.AddNode(routing.Node{ID: 1, Lat: 40.70, Lng: -74.01})
	g.AddNode(routing.Node{ID: 2, Lat: 40.71, Lng: -74.00})
	if err := g.AddEdge(routing.Edge{From: 1, To: 2}); err != nil {
		t.Fatalf("add edge: %v", err)
	}
	return g
}

func TestSystemHealth_OK(t *testing.T) {
	t.Parallel()

	h := system.NewHandler(newTestLogger(), routing.NewHolder(buildGraph(t)))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.SystemHealth(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected status: %v", body["status"])
	}
	if body["graph_nodes"].(float64) != 2 {
		t.Fatalf("unexpected graph_nodes: %v", body["graph_nodes"])
	}
}

func TestSystemHealth_EmptyGraphDegraded(t *testing.T) {
	t.Parallel()

	h := system.NewHandler(newTestLogger(), routing.NewHolder(routing.NewGraph()))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.SystemHealth(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["status"] != "degraded" {
		t.Fatalf("unexpected status: %v", body["status"])
	}
}
