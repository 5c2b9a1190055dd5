package response

import (
	"testing"
	"time"

	"ecotech/internal/domain/entities"
	"ecotech/internal/usecase"
)

func TestFromDisposalRequest(t *testing.T) {
	user, err := entities.NewUser("citizen", entities.UserParams{ID: "u-1", Name: "Maria", Email: "maria@x.io", CPF: "12345678901"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	capacity := 100.0
	point, err := entities.NewCollectionPoint(entities.CollectionPointParams{ID: "p-1", Name: "EcoPonto", Address: "Rua A", CapacityKg: &capacity})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	req, err := entities.NewDisposalRequest(user, point, created)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	phone, _ := entities.NewDevice("phone", entities.DeviceParams{Name: "Phone", WeightKg: 0.1})
	if _, err := req.AddItem(phone, 3, "box"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, _ := entities.NewTreatmentMethod("recycling")
	_ = req.AssignTreatment(m)

	res := FromDisposalRequest(req)
	if res.UserID != "u-1" || res.PointID != "p-1" || res.Treatment != "recycling" || res.Status != "requested" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Quantity != 3 || res.Items[0].Notes != "box" {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.TotalWeight != 0.3 {
		t.Fatalf("expected rounded weight 0.3, got %v", res.TotalWeight)
	}
	if len(res.History) != 1 || !res.History[0].EnteredAt.Equal(created) {
		t.Fatalf("unexpected history: %+v", res.History)
	}
	if res.ScheduledAt != nil {
		t.Fatalf("unscheduled request must not carry a pickup time")
	}
}

func TestFromRequestCost(t *testing.T) {
	res := FromRequestCost(usecase.RequestCost{RequestID: "r", Treatment: "Reuse", Policy: entities.CostPolicySurcharge, Amount: 12.5})
	if res.Policy != "surcharge" || res.Amount != 12.5 || res.Treatment != "Reuse" {
		t.Fatalf("unexpected cost: %+v", res)
	}
}

func TestFromTreatmentPayment(t *testing.T) {
	now := time.Now().UTC()
	res := FromTreatmentPayment(entities.TreatmentPayment{
		ID: "pay-1", RequestID: "req-1", Amount: 30, Date: now,
		Status: entities.PaymentStatusApproved, MPPayloadRaw: []byte(`{"id":1}`),
	})
	if res.PaymentID != "pay-1" || res.RequestID != "req-1" || res.Status != "approved" {
		t.Fatalf("unexpected payment: %+v", res)
	}
	if res.MPPayloadRaw != `{"id":1}` || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected payload fields: %+v", res)
	}
}

func TestFromCatalog(t *testing.T) {
	cats := FromCategories(entities.Categories())
	if len(cats) != 3 || cats[0].Category != "phone" || cats[0].Label == "" {
		t.Fatalf("unexpected categories: %+v", cats)
	}
	ts := FromTreatments(entities.TreatmentMethods())
	if len(ts) != 3 || ts[0].CostPerKg != 15 || ts[0].ReductionPercent != 80 {
		t.Fatalf("unexpected treatments: %+v", ts)
	}
}
