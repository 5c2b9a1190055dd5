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

func TestUserUseCase_CreateAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.users.CreateUser(ctx, "robot", entities.UserParams{Name: "Bob", Email: "bob@x.io"}); !errors.Is(err, entities.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := f.users.CreateUser(ctx, "citizen", entities.UserParams{Name: "Bob", Email: "bob@x.io", CPF: "123"}); !errors.Is(err, entities.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}

	u := f.citizen(t)
	got, err := f.users.GetUser(ctx, " "+u.ID+" ")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got.Email != "maria@example.com" || !got.Active() {
		t.Fatalf("unexpected user %+v", got)
	}
	if _, err := f.users.GetUser(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := f.users.GetUser(ctx, ""); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}

	f.company(t)
	list, err := f.users.ListUsers(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("expected 2 users, got %d (%v)", len(list), err)
	}
	if list[0].ID != u.ID {
		t.Fatalf("expected insertion order")
	}
}

func TestUserUseCase_SetActiveBlocksRequests(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.citizen(t)

	off, err := f.users.SetActive(ctx, u.ID, false)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if off.Active() || off.CanRequestDisposal() {
		t.Fatalf("deactivated user must not request disposals")
	}
	if _, err := f.requests.CreateRequest(ctx, u.ID, ""); !errors.Is(err, entities.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}

	if _, err := f.users.SetActive(ctx, u.ID, true); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := f.requests.CreateRequest(ctx, u.ID, ""); err != nil {
		t.Fatalf("expected reactivated user to request, got %v", err)
	}
}

func TestUserUseCase_ResetMonthlyQuota(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.company(t)
	p := f.point(t, 5000)

	req, err := f.requests.CreateRequest(ctx, c.ID, "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := f.requests.AddItem(ctx, req.ID(), device(t, "appliance", 600), 1, ""); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := f.requests.AssignPoint(ctx, req.ID(), p.ID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got, _ := f.users.GetUser(ctx, c.ID)
	if got.MonthlyDisposedKg() != 600 {
		t.Fatalf("expected 600kg recorded, got %v", got.MonthlyDisposedKg())
	}

	reset, err := f.users.ResetMonthlyQuota(ctx, c.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if reset.MonthlyDisposedKg() != 0 {
		t.Fatalf("expected counter cleared, got %v", reset.MonthlyDisposedKg())
	}
}

func TestUserUseCase_RepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewUserUseCase(repo, nil, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db-save"))
	if _, err := uc.CreateUser(ctx, "admin", entities.UserParams{Name: "Root", Email: "root@x.io"}); err == nil || err.Error() != "db-save" {
		t.Fatalf("expected db-save, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(nil, errors.New("db-get"))
	if _, err := uc.Notifications(ctx, "u-1"); err == nil || err.Error() != "db-get" {
		t.Fatalf("expected db-get, got %v", err)
	}

	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db-list"))
	if _, err := uc.ListUsers(ctx); err == nil || err.Error() != "db-list" {
		t.Fatalf("expected db-list, got %v", err)
	}
}
