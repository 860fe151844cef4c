package admin

import (
	"context"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AdminHazards interface {
	List(ctx context.Context, req domain.ListHazardsRequest) ([]domain.Hazard, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	Reject(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SOSHistory(ctx context.Context, userID *uuid.UUID, limit int) ([]domain.SOSLog, error)
}

type Handler struct {
	logger *slog.Logger
	Admin  AdminHazards
}

func NewHandler(logger *slog.Logger, admin AdminHazards) *Handler {
	return &Handler{logger: logger, Admin: admin}
}

func (h *Handler) AdminHazardList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminHazardList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	req := domain.ListHazardsRequest{
		Status: domain.HazardStatus(r.URL.Query().Get("status")),
	}

	hazards, err := h.Admin.List(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("hazards listed", slog.Int("count", len(hazards)))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"hazards": hazards,
		"count":   len(hazards),
	})
}

func (h *Handler) AdminHazardApprove(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	hazard, err := h.Admin.Approve(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("hazard approved", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, hazard)
}

func (h *Handler) AdminHazardReject(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	hazard, err := h.Admin.Reject(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("hazard rejected", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, hazard)
}

func (h *Handler) AdminHazardDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Admin.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("hazard deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminSOSHistory(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminSOSHistory", slog.String("query", r.URL.RawQuery))

	q := r.URL.Query()

	var userID *uuid.UUID
	if s := q.Get("user_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user_id"})
			return
		}
		userID = &id
	}

	limit := 100
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > 1000 {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be 1-1000"})
			return
		}
		limit = n
	}

	logs, err := h.Admin.SOSHistory(r.Context(), userID, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"signals": logs,
		"count":   len(logs),
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
