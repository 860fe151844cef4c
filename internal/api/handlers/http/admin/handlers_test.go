package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/hilexa-hlxa/SafeRoute/internal/api/handlers/http/admin"
	mock_admin "github.com/hilexa-hlxa/SafeRoute/internal/api/handlers/http/admin/mocks"
	"github.com/hilexa-hlxa/SafeRoute/internal/domain"
	"github.com/hilexa-hlxa/SafeRoute/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestRouter(ctrl *gomock.Controller) (*chi.Mux, *mock_admin.MockAdminHazards) {
	svc := mock_admin.NewMockAdminHazards(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	r := chi.NewRouter()
	r.Get("/admin/incidents", h.AdminHazardList)
	r.Patch("/admin/incidents/{id}/approve", h.AdminHazardApprove)
	r.Patch("/admin/incidents/{id}/reject", h.AdminHazardReject)
	r.Delete("/admin/incidents/{id}", h.AdminHazardDelete)
	r.Get("/admin/sos", h.AdminSOSHistory)
	return r, svc
}

func TestAdminHazardList_StatusFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svc := newTestRouter(ctrl)

	want := []domain.Hazard{{ID: uuid.New(), Status: domain.HazardPending}}
	svc.EXPECT().
		List(gomock.Any(), domain.ListHazardsRequest{Status: domain.HazardPending}).
		Return(want, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/admin/incidents?status=pending", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Hazards []domain.Hazard `json:"hazards"`
		Count   int             `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 1 || resp.Hazards[0].ID != want[0].ID {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAdminHazardApprove_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svc := newTestRouter(ctrl)

	id := uuid.New()
	svc.EXPECT().
		Approve(gomock.Any(), id).
		Return(&domain.Hazard{ID: id, Status: domain.HazardActive}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPatch, "/admin/incidents/"+id.String()+"/approve", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}

func TestAdminHazardApprove_NotPending_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svc := newTestRouter(ctrl)

	id := uuid.New()
	svc.EXPECT().
		Approve(gomock.Any(), id).
		Return(nil, e.ErrInvalidState).
		Times(1)

	req := httptest.NewRequest(http.MethodPatch, "/admin/incidents/"+id.String()+"/approve", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rr.Code)
	}
}

func TestAdminHazardReject_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svc := newTestRouter(ctrl)

	id := uuid.New()
	svc.EXPECT().
		Reject(gomock.Any(), id).
		Return(nil, e.ErrNotFound).
		Times(1)

	req := httptest.NewRequest(http.MethodPatch, "/admin/incidents/"+id.String()+"/reject", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestAdminHazardDelete_NoContent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svc := newTestRouter(ctrl)

	id := uuid.New()
	svc.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/admin/incidents/"+id.String(), nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rr.Code)
	}
}

func TestAdminHazardDelete_BadID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(ctrl)

	req := httptest.NewRequest(http.MethodDelete, "/admin/incidents/nope", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestAdminSOSHistory_ByUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svc := newTestRouter(ctrl)

	userID := uuid.New()
	svc.EXPECT().
		SOSHistory(gomock.Any(), gomock.Any(), 10).
		DoAndReturn(func(_ context.Context, got *uuid.UUID, _ int) ([]domain.SOSLog, error) {
			if got == nil || *got != userID {
				t.Fatalf("wrong user filter: %v", got)
			}
			return []domain.SOSLog{{ID: uuid.New(), UserID: userID}}, nil
		}).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/admin/sos?user_id="+userID.String()+"&limit=10", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminSOSHistory_BadLimit_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/admin/sos?limit=100000", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}
