package usecase

import (
	"context"
	"errors"
	"testing"

	"ecotech/internal/domain/entities"
	mock_interfaces "ecotech/internal/usecase/interfaces/mocks"
	"ecotech/pkg/logger"

	"go.uber.org/mock/gomock"
)

func TestCollectionPointUseCase_CreateFindList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.points.CreatePoint(ctx, entities.CollectionPointParams{Name: "", Address: "Rua B"}); !errors.Is(err, entities.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}

	def, err := f.points.CreatePoint(ctx, entities.CollectionPointParams{Name: "Central", Address: "Rua B, 2"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if def.CapacityKg != entities.DefaultPointCapacityKg {
		t.Fatalf("expected default capacity, got %v", def.CapacityKg)
	}

	p := f.point(t, 50)
	got, err := f.points.FindPoint(ctx, p.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got.AvailabilityPercent() != 100 || !got.Active() {
		t.Fatalf("unexpected point %+v", got)
	}
	if _, err := f.points.FindPoint(ctx, "nope"); !errors.Is(err, ErrPointNotFound) {
		t.Fatalf("expected ErrPointNotFound, got %v", err)
	}

	list, err := f.points.ListPoints(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("expected 2 points, got %d (%v)", len(list), err)
	}
}

func TestCollectionPointUseCase_DeactivatedPointRefusesRequests(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.citizen(t)
	p := f.point(t, 100)

	closed, err := f.points.SetActive(ctx, p.ID, false)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if closed.Active() {
		t.Fatalf("expected point closed")
	}
	if _, err := f.requests.CreateRequest(ctx, u.ID, p.ID); !errors.Is(err, entities.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	if _, err := f.points.SetActive(ctx, p.ID, true); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := f.requests.CreateRequest(ctx, u.ID, p.ID); err != nil {
		t.Fatalf("expected reopened point to accept, got %v", err)
	}
}

func TestCollectionPointUseCase_RepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICollectionPointRepository(ctrl)
	uc := NewCollectionPointUseCase(repo, nil, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(nil, nil)
	if _, err := uc.SetActive(ctx, "p-1", false); !errors.Is(err, ErrPointNotFound) {
		t.Fatalf("expected ErrPointNotFound, got %v", err)
	}

	capacity := 10.0
	point, _ := entities.NewCollectionPoint(entities.CollectionPointParams{ID: "p-2", Name: "Norte", Address: "Rua C", CapacityKg: &capacity})
	repo.EXPECT().GetByID(gomock.Any(), "p-2").Return(point, nil)
	repo.EXPECT().Save(gomock.Any(), point).Return(errors.New("db-save"))
	if _, err := uc.SetActive(ctx, "p-2", false); err == nil || err.Error() != "db-save" {
		t.Fatalf("expected db-save, got %v", err)
	}
}
