package entities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capacity(v float64) *float64 { return &v }

func mustPoint(t *testing.T, capacityKg float64) *CollectionPoint {
	t.Helper()
	p, err := NewCollectionPoint(CollectionPointParams{
		Name:       "EcoPonto Centro",
		Address:    "Rua A, 100",
		Latitude:   -23.55,
		Longitude:  -46.63,
		CapacityKg: capacity(capacityKg),
	})
	require.NoError(t, err)
	return p
}

func TestNewCollectionPoint(t *testing.T) {
	t.Run("default capacity", func(t *testing.T) {
		p, err := NewCollectionPoint(CollectionPointParams{Name: "P", Address: "A"})
		require.NoError(t, err)
		assert.Equal(t, DefaultPointCapacityKg, p.CapacityKg)
		assert.True(t, p.Active())
		assert.Equal(t, 100.0, p.AvailabilityPercent())
	})

	invalid := map[string]CollectionPointParams{
		"blank name":        {Name: " ", Address: "A"},
		"blank address":     {Name: "P", Address: ""},
		"latitude":          {Name: "P", Address: "A", Latitude: 91},
		"longitude":         {Name: "P", Address: "A", Longitude: -181},
		"negative capacity": {Name: "P", Address: "A", CapacityKg: capacity(-1)},
		"NaN capacity":      {Name: "P", Address: "A", CapacityKg: capacity(math.NaN())},
		"infinite capacity": {Name: "P", Address: "A", CapacityKg: capacity(math.Inf(1))},
		"NaN latitude":      {Name: "P", Address: "A", Latitude: math.NaN()},
	}
	for name, params := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := NewCollectionPoint(params)
			require.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestCollectionPoint_Admit(t *testing.T) {
	p := mustPoint(t, 10)

	weights := []float64{3, 4, 2.5, 1, 0.5, 0.1}
	for _, w := range weights {
		predicted := p.CanAccept(w)
		err := p.Admit(w)
		if predicted {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, ErrCapacityExceeded)
		}
		assert.LessOrEqual(t, p.OccupancyKg(), p.CapacityKg)
	}
	assert.Equal(t, 10.0, p.OccupancyKg())
	assert.Equal(t, 0.0, p.AvailabilityPercent())
}

func TestCollectionPoint_AdmitRejectsInvalidWeight(t *testing.T) {
	p := mustPoint(t, 10)
	require.NoError(t, p.Admit(4))

	for _, w := range []float64{-50, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.False(t, p.CanAccept(w), "weight %v", w)
		require.ErrorIs(t, p.Admit(w), ErrInvalidParameter)
		assert.Equal(t, 4.0, p.OccupancyKg())
	}
}

func TestCollectionPoint_AvailabilityPercent(t *testing.T) {
	p := mustPoint(t, 3)
	require.NoError(t, p.Admit(1))
	assert.Equal(t, 66.7, p.AvailabilityPercent())

	empty := mustPoint(t, 0)
	assert.Equal(t, 0.0, empty.AvailabilityPercent())
	assert.True(t, empty.CanAccept(0))
	assert.False(t, empty.CanAccept(0.1))
}

func TestCollectionPoint_Inactive(t *testing.T) {
	p := mustPoint(t, 100)
	p.Deactivate()
	assert.False(t, p.CanAccept(1))
	require.ErrorIs(t, p.Admit(1), ErrCapacityExceeded)
	assert.Equal(t, 0.0, p.OccupancyKg())

	p.Activate()
	require.NoError(t, p.Admit(1))
}
