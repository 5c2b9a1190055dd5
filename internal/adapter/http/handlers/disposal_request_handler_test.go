package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"ecotech/internal/adapter/http/handlers/mocks"
	"ecotech/internal/domain/entities"
	"ecotech/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleRequest(t *testing.T) *entities.DisposalRequest {
	t.Helper()
	user, err := entities.NewUser("citizen", entities.UserParams{ID: "u-1", Name: "Maria", Email: "maria@x.io", CPF: "12345678901"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req, err := entities.NewDisposalRequest(user, nil, time.Now().UTC())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return req
}

func newRequestRouter(uc *mocks.MockIDisposalRequestUseCase) *gin.Engine {
	h := NewDisposalRequestHandler(uc, usecase.NewCatalogUseCase())
	r := gin.New()
	g := r.Group("/v1/requests")
	g.POST("", h.CreateRequest)
	g.GET("", h.ListRequests)
	g.GET("/:id", h.GetRequest)
	g.POST("/:id/items", h.AddItem)
	g.DELETE("/:id/items/:item_id", h.RemoveItem)
	g.PATCH("/:id/items/:item_id", h.SetItemQuantity)
	g.PATCH("/:id/point", h.AssignPoint)
	g.PATCH("/:id/treatment", h.AssignTreatment)
	g.PATCH("/:id/schedule", h.SchedulePickup)
	g.PATCH("/:id/advance", h.Advance)
	g.PATCH("/:id/cancel", h.Cancel)
	g.GET("/:id/cost", h.TreatmentCost)
	return r
}

func TestDisposalRequestHandler_CreateRequest(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRequestRouter(mocks.NewMockIDisposalRequestUseCase(ctrl))

		if w := serve(r, http.MethodPost, "/v1/requests", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quota exceeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisposalRequestUseCase(ctrl)
		r := newRequestRouter(uc)

		uc.EXPECT().CreateRequest(gomock.Any(), "u-1", "").Return(nil, fmt.Errorf("%w: limit", entities.ErrQuotaExceeded))

		if w := serve(r, http.MethodPost, "/v1/requests", `{"user_id":"u-1"}`); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisposalRequestUseCase(ctrl)
		r := newRequestRouter(uc)

		req := sampleRequest(t)
		uc.EXPECT().CreateRequest(gomock.Any(), "u-1", "p-1").Return(req, nil)

		w := serve(r, http.MethodPost, "/v1/requests", `{"user_id":"u-1","point_id":"p-1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decode(t, w)
		if body["id"] != req.ID() || body["status"] != "requested" || body["user_id"] != "u-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDisposalRequestHandler_ListRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDisposalRequestUseCase(ctrl)
	r := newRequestRouter(uc)

	open := sampleRequest(t)
	closed := sampleRequest(t)
	if err := closed.Cancel("", time.Now().UTC()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc.EXPECT().ListRequests(gomock.Any()).Return([]*entities.DisposalRequest{open, closed}, nil)

	w := serve(r, http.MethodGet, "/v1/requests?status=Cancelled", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if want := fmt.Sprintf(`"id":%q`, closed.ID()); !contains(w.Body.String(), want) || contains(w.Body.String(), open.ID()) {
		t.Fatalf("expected only the cancelled request, got %s", w.Body.String())
	}

	if w := serve(r, http.MethodGet, "/v1/requests?status=lost", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}
}

func TestDisposalRequestHandler_Items(t *testing.T) {
	t.Run("unknown category never reaches the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRequestRouter(mocks.NewMockIDisposalRequestUseCase(ctrl))

		w := serve(r, http.MethodPost, "/v1/requests/r-1/items", `{"device":{"category":"toaster","name":"T","weight_kg":1}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("add item with default quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisposalRequestUseCase(ctrl)
		r := newRequestRouter(uc)

		uc.EXPECT().AddItem(gomock.Any(), "r-1", gomock.AssignableToTypeOf(entities.Device{}), 1, "").DoAndReturn(
			func(_ context.Context, _ string, d entities.Device, q int, notes string) (*entities.LineItem, error) {
				if d.Category() != entities.CategoryPhone || d.WeightKg() != 0.2 {
					t.Fatalf("unexpected device %v", d)
				}
				return entities.NewLineItem(d, q, notes)
			},
		)

		w := serve(r, http.MethodPost, "/v1/requests/r-1/items", `{"device":{"category":"phone","name":"Moto","weight_kg":0.2}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if body := decode(t, w); body["quantity"] != 1.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("remove missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisposalRequestUseCase(ctrl)
		r := newRequestRouter(uc)

		uc.EXPECT().RemoveItem(gomock.Any(), "r-1", "i-9").Return(usecase.ErrItemNotFound)
		if w := serve(r, http.MethodDelete, "/v1/requests/r-1/items/i-9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}

		uc.EXPECT().RemoveItem(gomock.Any(), "r-1", "i-1").Return(nil)
		if w := serve(r, http.MethodDelete, "/v1/requests/r-1/items/i-1", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("set quantity after collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisposalRequestUseCase(ctrl)
		r := newRequestRouter(uc)

		uc.EXPECT().SetItemQuantity(gomock.Any(), "r-1", "i-1", 4).Return(nil, fmt.Errorf("%w: collected", entities.ErrIllegalTransition))
		if w := serve(r, http.MethodPatch, "/v1/requests/r-1/items/i-1", `{"quantity":4}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestDisposalRequestHandler_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDisposalRequestUseCase(ctrl)
	r := newRequestRouter(uc)
	req := sampleRequest(t)

	uc.EXPECT().AssignPoint(gomock.Any(), "r-1", "p-1").Return(nil, fmt.Errorf("%w: full", entities.ErrCapacityExceeded))
	if w := serve(r, http.MethodPatch, "/v1/requests/r-1/point", `{"point_id":"p-1"}`); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	uc.EXPECT().AssignTreatment(gomock.Any(), "r-1", "reuse").Return(req, nil)
	if w := serve(r, http.MethodPatch, "/v1/requests/r-1/treatment", `{"treatment":"reuse"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	at := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)
	uc.EXPECT().SchedulePickup(gomock.Any(), "r-1", at).Return(req, nil)
	if w := serve(r, http.MethodPatch, "/v1/requests/r-1/schedule", `{"at":"2030-01-02T10:00:00Z"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := serve(r, http.MethodPatch, "/v1/requests/r-1/schedule", `{"at":"tomorrow"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().Advance(gomock.Any(), "r-1").Return(nil, fmt.Errorf("%w: cannot advance from cancelled", entities.ErrIllegalTransition))
	if w := serve(r, http.MethodPatch, "/v1/requests/r-1/advance", ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	uc.EXPECT().Cancel(gomock.Any(), "r-1", "").Return(req, nil)
	if w := serve(r, http.MethodPatch, "/v1/requests/r-1/cancel", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200 without body, got %d", w.Code)
	}
	uc.EXPECT().Cancel(gomock.Any(), "r-1", "moved").Return(req, nil)
	if w := serve(r, http.MethodPatch, "/v1/requests/r-1/cancel", `{"reason":"moved"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestDisposalRequestHandler_GetAndCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDisposalRequestUseCase(ctrl)
	r := newRequestRouter(uc)

	uc.EXPECT().GetRequest(gomock.Any(), "missing").Return(nil, usecase.ErrRequestNotFound)
	if w := serve(r, http.MethodGet, "/v1/requests/missing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().TreatmentCost(gomock.Any(), "r-1").Return(usecase.RequestCost{}, usecase.ErrTreatmentNotAssigned)
	if w := serve(r, http.MethodGet, "/v1/requests/r-1/cost", ""); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	uc.EXPECT().TreatmentCost(gomock.Any(), "r-2").Return(usecase.RequestCost{RequestID: "r-2", Treatment: "Recycling", Policy: entities.CostPolicyFlat, Amount: 90, ResidualImpact: 22.5}, nil)
	w := serve(r, http.MethodGet, "/v1/requests/r-2/cost", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := decode(t, w); body["amount"] != 90.0 || body["residual_impact"] != 22.5 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	uc.EXPECT().GetRequest(gomock.Any(), "r-3").Return(nil, errors.New("db"))
	if w := serve(r, http.MethodGet, "/v1/requests/r-3", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
