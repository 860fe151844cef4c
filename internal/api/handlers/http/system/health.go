package system

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/hilexa-hlxa/SafeRoute/internal/routing"
)

type Handler struct {
	logger *slog.Logger
	graphs *routing.Holder
}

func NewHandler(logger *slog.Logger, graphs *routing.Holder) *Handler {
	return &Handler{logger: logger, graphs: graphs}
}

// SystemHealth reports liveness plus road-graph readiness. A process
// without a usable graph cannot serve routes, so it fails the check and
// lets the orchestrator recycle it.
func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	g := h.graphs.Graph()
	if g == nil || g.NumNodes() == 0 {
		h.logger.Warn("health check failed, road graph empty")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "degraded"})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":      "ok",
		"graph_nodes": g.NumNodes(),
		"graph_edges": g.NumEdges(),
	})
}
