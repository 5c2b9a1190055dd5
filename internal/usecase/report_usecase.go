package usecase

import (
	"context"
	"errors"
	"time"

	"ecotech/internal/domain/entities"
	"ecotech/internal/infrastructure/metrics"
	"ecotech/internal/usecase/interfaces"
	"ecotech/pkg/logger"
)

var ErrReportNotFound = errors.New("report not found")

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/report_usecase.go -package=mocks

// IReportUseCase builds and archives summary reports.
type IReportUseCase interface {
	// BuildReport summarises the given requests, or every request when ids
	// is empty, and archives the result.
	BuildReport(ctx context.Context, title string, ids []string) (entities.Report, error)
	GetReport(ctx context.Context, id string) (entities.Report, error)
	ListReports(ctx context.Context) ([]entities.Report, error)
}

type ReportUseCase struct {
	requests interfaces.IRequestRepository
	reports  interfaces.IReportRepository
	guard    *Guard
	log      logger.Logger
	clock    func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(requests interfaces.IRequestRepository, reports interfaces.IReportRepository, guard *Guard, log logger.Logger) *ReportUseCase {
	return &ReportUseCase{
		requests: requests,
		reports:  reports,
		guard:    guardOrNew(guard),
		log:      log,
		clock:    utcNow,
	}
}

func (u *ReportUseCase) BuildReport(ctx context.Context, title string, ids []string) (entities.Report, error) {
	start := time.Now()
	report, err := u.build(ctx, title, ids)
	metrics.ObserveReport(err, time.Since(start))
	if err != nil {
		return entities.Report{}, err
	}

	created, err := u.reports.Create(ctx, report)
	if err != nil {
		return entities.Report{}, err
	}

	l := u.log.WithContext(ctx)
	l.Info().
		Str("report_id", created.ID).
		Int("request_count", created.RequestCount).
		Float64("impact_avoided", created.ImpactAvoided).
		Msg("report generated")
	return created, nil
}

func (u *ReportUseCase) build(ctx context.Context, title string, ids []string) (entities.Report, error) {
	u.guard.mu.RLock()
	defer u.guard.mu.RUnlock()

	var selected []*entities.DisposalRequest
	if len(ids) == 0 {
		all, err := u.requests.List(ctx)
		if err != nil {
			return entities.Report{}, err
		}
		selected = all
	} else {
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			req, err := loadRequest(ctx, u.requests, id)
			if err != nil {
				return entities.Report{}, err
			}
			if _, dup := seen[req.ID()]; dup {
				continue
			}
			seen[req.ID()] = struct{}{}
			selected = append(selected, req)
		}
	}
	return entities.BuildReport(title, selected, u.clock())
}

func (u *ReportUseCase) GetReport(ctx context.Context, id string) (entities.Report, error) {
	id, err := normalizeID(id)
	if err != nil {
		return entities.Report{}, err
	}
	r, err := u.reports.GetByID(ctx, id)
	if err != nil {
		return entities.Report{}, err
	}
	if r.ID == "" {
		return entities.Report{}, ErrReportNotFound
	}
	return r, nil
}

func (u *ReportUseCase) ListReports(ctx context.Context) ([]entities.Report, error) {
	return u.reports.List(ctx)
}
