package interfaces

import (
	"context"

	"ecotech/internal/domain/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mock_interfaces

// IReportRepository archives generated reports. GetByID returns a zero
// Report when the id is unknown.
type IReportRepository interface {
	Create(ctx context.Context, r entities.Report) (entities.Report, error)
	GetByID(ctx context.Context, id string) (entities.Report, error)
	List(ctx context.Context) ([]entities.Report, error)
}
