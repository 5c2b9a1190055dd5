package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecotech/internal/adapter/persistence/memory"
	"ecotech/internal/domain/entities"
	mock_interfaces "ecotech/internal/usecase/interfaces/mocks"
	"ecotech/pkg/logger"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase_BuildSelectedRequests(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	at := time.Date(2024, 3, 31, 18, 0, 0, 0, time.UTC)
	f.reports.clock = func() time.Time { return at }
	user := f.citizen(t)

	recycled, err := f.requests.CreateRequest(ctx, user.ID, "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := f.requests.AddItem(ctx, recycled.ID(), device(t, "phone", 0.2), 1, ""); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := f.requests.AssignTreatment(ctx, recycled.ID(), "recycling"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := f.requests.Advance(ctx, recycled.ID()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}

	cancelled, err := f.requests.CreateRequest(ctx, user.ID, "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := f.requests.Cancel(ctx, cancelled.ID(), "changed my mind"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	report, err := f.reports.BuildReport(ctx, "  March  ", []string{recycled.ID(), cancelled.ID(), recycled.ID()})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if report.Title != "March" || report.RequestCount != 2 || !report.GeneratedAt.Equal(at) {
		t.Fatalf("unexpected report %+v", report)
	}
	if report.WeightRecycledKg != 0.2 || report.WeightReusedKg != 0 || report.WeightDisposedKg != 0 {
		t.Fatalf("unexpected weights %+v", report)
	}
	if report.ImpactAvoided != 0.8 {
		t.Fatalf("expected 0.8 impact avoided, got %v", report.ImpactAvoided)
	}

	got, err := f.reports.GetReport(ctx, report.ID)
	if err != nil || got.ID != report.ID {
		t.Fatalf("expected archived report, got %+v (%v)", got, err)
	}
	list, err := f.reports.ListReports(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one archived report, got %d (%v)", len(list), err)
	}
}

func TestReportUseCase_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.reports.BuildReport(ctx, " ", nil); !errors.Is(err, entities.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if _, err := f.reports.BuildReport(ctx, "Q2", []string{"missing"}); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
	if _, err := f.reports.GetReport(ctx, "missing"); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
	if _, err := f.reports.GetReport(ctx, ""); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}

	empty, err := f.reports.BuildReport(ctx, "Empty", nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if empty.RequestCount != 0 || empty.ImpactAvoided != 0 {
		t.Fatalf("expected an empty report, got %+v", empty)
	}
}

func TestReportUseCase_RepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	reports := mock_interfaces.NewMockIReportRepository(ctrl)
	uc := NewReportUseCase(memory.NewRequestRepository(), reports, nil, logger.Nop())
	ctx := context.Background()

	reports.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Report{})).Return(entities.Report{}, errors.New("db-create"))
	if _, err := uc.BuildReport(ctx, "Q3", nil); err == nil || err.Error() != "db-create" {
		t.Fatalf("expected db-create, got %v", err)
	}

	reports.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Report{}, errors.New("db-get"))
	if _, err := uc.GetReport(ctx, "r-1"); err == nil || err.Error() != "db-get" {
		t.Fatalf("expected db-get, got %v", err)
	}
}
