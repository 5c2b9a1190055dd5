package usecase

import (
	"errors"
	"testing"

	"ecotech/internal/domain/entities"
)

func TestCatalogUseCase(t *testing.T) {
	uc := NewCatalogUseCase()

	if got := uc.ListCategories(); len(got) != 3 {
		t.Fatalf("expected 3 categories, got %v", got)
	}
	if got := uc.ListTreatments(); len(got) != 3 || got[0].Kind() != entities.TreatmentRecycling {
		t.Fatalf("unexpected treatments %v", got)
	}

	if _, err := uc.CreateDevice("toaster", entities.DeviceParams{Name: "T", WeightKg: 1}); !errors.Is(err, entities.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	d, err := uc.CreateDevice("computer", entities.DeviceParams{Name: "Laptop", WeightKg: 2.5})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if d.Category() != entities.CategoryComputer || d.WeightKg() != 2.5 {
		t.Fatalf("unexpected device %v", d)
	}

	m, err := uc.CreateTreatment("Descarte_Controlado")
	if err != nil || m.Kind() != entities.TreatmentControlledDisposal {
		t.Fatalf("unexpected treatment %v (%v)", m, err)
	}
	if _, err := uc.CreateTreatment("burn"); !errors.Is(err, entities.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
