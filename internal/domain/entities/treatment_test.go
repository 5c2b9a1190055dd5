package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTreatmentMethod(t *testing.T) {
	tests := []struct {
		kind      string
		want      TreatmentKind
		reduction float64
	}{
		{kind: "recycling", want: TreatmentRecycling, reduction: 80},
		{kind: "REUSO", want: TreatmentReuse, reduction: 95},
		{kind: " descarte_controlado ", want: TreatmentControlledDisposal, reduction: 40},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			m, err := NewTreatmentMethod(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Kind())
			assert.Equal(t, tt.reduction, m.ReductionPercent())
		})
	}

	_, err := NewTreatmentMethod("incineration")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestTreatmentMethod_CostAndImpact(t *testing.T) {
	phone := mustDevice(t, "phone", DeviceParams{Name: "X", WeightKg: 0.2})
	fridge := mustDevice(t, "appliance", DeviceParams{Name: "F", WeightKg: 40, Subcategory: "refrigeration"})
	devices := []Device{phone, fridge}
	raw := phone.Impact() + fridge.Impact()

	for _, m := range TreatmentMethods() {
		t.Run(m.Name(), func(t *testing.T) {
			assert.Equal(t, 0.0, m.Cost(nil))
			assert.Equal(t, 0.0, m.Impact(nil))
			assert.GreaterOrEqual(t, m.Cost(devices), 0.0)
			assert.Less(t, m.Impact(devices), raw)
		})
	}

	recycling, err := NewTreatmentMethod("recycling")
	require.NoError(t, err)
	assert.Equal(t, 603.0, recycling.Cost(devices))
	// the phone carries a 1.3 surcharge under the alternate policy
	assert.Equal(t, 603.9, recycling.CostWith(CostPolicySurcharge, devices))

	disposal, err := NewTreatmentMethod("controlled_disposal")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, disposal.CostWith(CostPolicyFlat, []Device{fridge}))
	assert.Equal(t, 1600.0, disposal.CostWith(CostPolicySurcharge, []Device{fridge}))
}

func TestParseCostPolicy(t *testing.T) {
	p, err := ParseCostPolicy("")
	require.NoError(t, err)
	assert.Equal(t, CostPolicyFlat, p)

	p, err = ParseCostPolicy("Surcharge")
	require.NoError(t, err)
	assert.Equal(t, CostPolicySurcharge, p)

	_, err = ParseCostPolicy("dynamic")
	require.ErrorIs(t, err, ErrUnknownKind)
}
