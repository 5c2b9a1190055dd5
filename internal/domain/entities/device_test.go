package entities

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func mustDevice(t *testing.T, category string, p DeviceParams) Device {
	t.Helper()
	d, err := newDeviceAt(category, p, fixedNow)
	require.NoError(t, err)
	return d
}

func TestNewDevice_Validation(t *testing.T) {
	tests := []struct {
		name     string
		category string
		params   DeviceParams
		wantErr  error
	}{
		{name: "valid phone", category: "phone", params: DeviceParams{Name: "X", WeightKg: 0.2}},
		{name: "portuguese alias", category: "Celular", params: DeviceParams{Name: "X", WeightKg: 0.2}},
		{name: "unknown category", category: "toaster", params: DeviceParams{Name: "X", WeightKg: 1}, wantErr: ErrUnknownKind},
		{name: "zero weight", category: "phone", params: DeviceParams{Name: "X"}, wantErr: ErrInvalidParameter},
		{name: "negative weight", category: "phone", params: DeviceParams{Name: "X", WeightKg: -1}, wantErr: ErrInvalidParameter},
		{name: "NaN weight", category: "phone", params: DeviceParams{Name: "X", WeightKg: math.NaN()}, wantErr: ErrInvalidParameter},
		{name: "infinite weight", category: "phone", params: DeviceParams{Name: "X", WeightKg: math.Inf(1)}, wantErr: ErrInvalidParameter},
		{name: "blank name", category: "phone", params: DeviceParams{Name: "  ", WeightKg: 1}, wantErr: ErrInvalidParameter},
		{name: "year too old", category: "computer", params: DeviceParams{Name: "X", WeightKg: 1, ManufactureYear: 1969}, wantErr: ErrInvalidParameter},
		{name: "year in the future", category: "computer", params: DeviceParams{Name: "X", WeightKg: 1, ManufactureYear: 2025}, wantErr: ErrInvalidParameter},
		{name: "blank brand", category: "appliance", params: DeviceParams{Name: "X", WeightKg: 1, Brand: "   "}, wantErr: ErrInvalidParameter},
		{name: "oversized model", category: "appliance", params: DeviceParams{Name: "X", WeightKg: 1, Model: strings.Repeat("m", 101)}, wantErr: ErrInvalidParameter},
		{name: "unknown subcategory", category: "appliance", params: DeviceParams{Name: "X", WeightKg: 1, Subcategory: "rocket"}, wantErr: ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := newDeviceAt(tt.category, tt.params, fixedNow)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, d.ID())
			assert.Equal(t, CategoryPhone, d.Category())
			assert.Equal(t, "smartphone", d.Subcategory())
		})
	}
}

func TestDevice_Impact(t *testing.T) {
	t.Run("phone of unknown age", func(t *testing.T) {
		d := mustDevice(t, "phone", DeviceParams{Name: "X", WeightKg: 0.2})
		assert.Equal(t, 1.0, d.Impact())
		assert.Equal(t, HazardLow, d.HazardTier())
	})

	t.Run("old desktop", func(t *testing.T) {
		d := mustDevice(t, "computer", DeviceParams{Name: "PC", WeightKg: 10, ManufactureYear: 2012, Subcategory: "Desktop"})
		// 10 * 15 * 1.2 * 1.25 * 1.25
		assert.Equal(t, 281.25, d.Impact())
		assert.Equal(t, 12, d.Age())
	})

	t.Run("linear in weight", func(t *testing.T) {
		for _, c := range Categories() {
			one := mustDevice(t, string(c), DeviceParams{Name: "a", WeightKg: 1, ManufactureYear: 2020})
			two := mustDevice(t, string(c), DeviceParams{Name: "a", WeightKg: 2, ManufactureYear: 2020})
			assert.Greater(t, one.Impact(), 0.0, c)
			assert.Greater(t, one.ResaleValue(), 0.0, c)
			assert.InDelta(t, 2*one.Impact(), two.Impact(), 1e-9, c)
			assert.InDelta(t, 2*one.ResaleValue(), two.ResaleValue(), 1e-9, c)
		}
	})
}

func TestDevice_ResaleValue(t *testing.T) {
	fresh := mustDevice(t, "phone", DeviceParams{Name: "X", WeightKg: 0.5})
	assert.Equal(t, 60.0, fresh.ResaleValue())

	fourYears := mustDevice(t, "phone", DeviceParams{Name: "X", WeightKg: 0.5, ManufactureYear: 2020})
	assert.Equal(t, 36.0, fourYears.ResaleValue())

	ancient := mustDevice(t, "phone", DeviceParams{Name: "X", WeightKg: 0.5, ManufactureYear: 1990})
	assert.Equal(t, 6.0, ancient.ResaleValue())
}
