package public

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
	"github.com/hilexa-hlxa/SafeRoute/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PublicHazards interface {
	Report(ctx context.Context, caller domain.Identity, req domain.CreateHazardRequest) (*domain.Hazard, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	Active(ctx context.Context) ([]domain.Hazard, error)
	Nearby(ctx context.Context, req domain.NearbyHazardsRequest) ([]domain.Hazard, error)
	Vote(ctx context.Context, caller domain.Identity, hazardID uuid.UUID, req domain.VoteRequest) (*domain.Hazard, error)
	Resolve(ctx context.Context, caller domain.Identity, hazardID uuid.UUID) (*domain.Hazard, error)
}

type Router interface {
	SafeRoute(ctx context.Context, req domain.RouteRequest) (*domain.RouteResult, error)
}

type SOSSender interface {
	SendSOS(ctx context.Context, caller domain.Identity, req domain.SOSRequest) (*domain.SOSAck, error)
}

type SOSHistorian interface {
	SOSHistory(ctx context.Context, userID *uuid.UUID, limit int) ([]domain.SOSLog, error)
}

type Handler struct {
	logger  *slog.Logger
	Hazards PublicHazards
	Routes  Router
	Alerts  SOSSender
	History SOSHistorian
}

func NewHandler(logger *slog.Logger, hazards PublicHazards, routes Router, alerts SOSSender, history SOSHistorian) *Handler {
	return &Handler{
		logger:  logger,
		Hazards: hazards,
		Routes:  routes,
		Alerts:  alerts,
		History: history,
	}
}

func (h *Handler) HazardCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	caller, ok := middleware.Identity(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	var req domain.CreateHazardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	hazard, err := h.Hazards.Report(r.Context(), caller, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("hazard created", slog.String("id", hazard.ID.String()))
	h.writeJSON(w, http.StatusCreated, hazard)
}

func (h *Handler) HazardList(w http.ResponseWriter, r *http.Request) {
	// With coordinates present this is a proximity query, not a listing.
	if q := r.URL.Query(); q.Has("lat") || q.Has("lng") {
		h.HazardNearby(w, r)
		return
	}

	hazards, err := h.Hazards.Active(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"hazards": hazards,
		"count":   len(hazards),
	})
}

func (h *Handler) HazardNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		l.Warn("invalid nearby query", slog.String("query", r.URL.RawQuery))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng are required"})
		return
	}

	var radius float64
	if s := q.Get("radius"); s != "" {
		var err error
		radius, err = strconv.ParseFloat(s, 64)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid radius"})
			return
		}
	}

	hazards, err := h.Hazards.Nearby(r.Context(), domain.NearbyHazardsRequest{
		Lat:     lat,
		Lng:     lng,
		RadiusM: radius,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"hazards": hazards,
		"count":   len(hazards),
	})
}

func (h *Handler) HazardGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	hazard, err := h.Hazards.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, hazard)
}

func (h *Handler) HazardVote(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	caller, ok := middleware.Identity(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	hazard, err := h.Hazards.Vote(r.Context(), caller, id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("vote recorded",
		slog.String("hazard_id", id.String()),
		slog.String("status", string(hazard.Status)),
	)
	h.writeJSON(w, http.StatusOK, hazard)
}

func (h *Handler) HazardResolve(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.Identity(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	hazard, err := h.Hazards.Resolve(r.Context(), caller, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, hazard)
}

func (h *Handler) SafeRoute(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	route, err := h.Routes.SafeRoute(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, route)
}

func (h *Handler) SOS(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	caller, ok := middleware.Identity(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	var req domain.SOSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	ack, err := h.Alerts.SendSOS(r.Context(), caller, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("sos accepted", slog.Int("recipients", ack.Recipients))
	h.writeJSON(w, http.StatusAccepted, ack)
}

// SOSHistory returns the caller's own SOS signals; admins see everyone's.
func (h *Handler) SOSHistory(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.Identity(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing identity"})
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		var err error
		limit, err = strconv.Atoi(s)
		if err != nil || limit < 0 {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
	}

	var userID *uuid.UUID
	if !caller.IsAdmin {
		userID = &caller.UserID
	}

	signals, err := h.History.SOSHistory(r.Context(), userID, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"signals": signals,
		"count":   len(signals),
	})
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
