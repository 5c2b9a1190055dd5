package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"ecotech/internal/adapter/http/handlers/mocks"
	"ecotech/internal/domain/entities"
	"ecotech/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPointRouter(uc *mocks.MockICollectionPointUseCase) *gin.Engine {
	h := NewPointHandler(uc)
	r := gin.New()
	r.POST("/v1/points", h.CreatePoint)
	r.GET("/v1/points", h.ListPoints)
	r.GET("/v1/points/:id", h.FindPoint)
	r.PATCH("/v1/points/:id/active", h.SetActive)
	return r
}

func TestPointHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICollectionPointUseCase(ctrl)
	r := newPointRouter(uc)

	if w := serve(r, http.MethodPost, "/v1/points", `{"name":"EcoPonto"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().CreatePoint(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: capacity must be positive", entities.ErrInvalidParameter))
	if w := serve(r, http.MethodPost, "/v1/points", `{"name":"EcoPonto","address":"Rua A","capacity_kg":-1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	capacity := 300.0
	p, _ := entities.NewCollectionPoint(entities.CollectionPointParams{ID: "p-1", Name: "EcoPonto", Address: "Rua A", CapacityKg: &capacity})
	_ = p.Admit(100)
	uc.EXPECT().CreatePoint(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params entities.CollectionPointParams) (*entities.CollectionPoint, error) {
			if params.CapacityKg == nil || *params.CapacityKg != 300 {
				t.Fatalf("capacity not forwarded: %+v", params)
			}
			return p, nil
		},
	)
	w := serve(r, http.MethodPost, "/v1/points", `{"name":"EcoPonto","address":"Rua A","capacity_kg":300}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	body := decode(t, w)
	if body["occupancy_kg"] != 100.0 || body["availability_percent"] != 66.7 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	uc.EXPECT().FindPoint(gomock.Any(), "p-9").Return(nil, usecase.ErrPointNotFound)
	if w := serve(r, http.MethodGet, "/v1/points/p-9", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().ListPoints(gomock.Any()).Return([]*entities.CollectionPoint{p}, nil)
	if w := serve(r, http.MethodGet, "/v1/points", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().SetActive(gomock.Any(), "p-1", true).Return(p, nil)
	if w := serve(r, http.MethodPatch, "/v1/points/p-1/active", `{"active":true}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
