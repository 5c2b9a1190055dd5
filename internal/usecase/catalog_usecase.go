package usecase

import (
	"ecotech/internal/domain/entities"
)

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/catalog_usecase.go -package=mocks

// ICatalogUseCase exposes the device and treatment factories.
type ICatalogUseCase interface {
	CreateDevice(category string, p entities.DeviceParams) (entities.Device, error)
	CreateTreatment(kind string) (entities.TreatmentMethod, error)
	ListCategories() []entities.Category
	ListTreatments() []entities.TreatmentMethod
}

type CatalogUseCase struct{}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{}
}

func (u *CatalogUseCase) CreateDevice(category string, p entities.DeviceParams) (entities.Device, error) {
	return entities.NewDevice(category, p)
}

func (u *CatalogUseCase) CreateTreatment(kind string) (entities.TreatmentMethod, error) {
	return entities.NewTreatmentMethod(kind)
}

func (u *CatalogUseCase) ListCategories() []entities.Category {
	return entities.Categories()
}

func (u *CatalogUseCase) ListTreatments() []entities.TreatmentMethod {
	return entities.TreatmentMethods()
}
