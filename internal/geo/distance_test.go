package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(-23.5505, -46.6333, -23.5505, -46.6333))
}

func TestDistanceKm_KnownPair(t *testing.T) {
	// Praça da Sé to Avenida Paulista, about 2.7 km apart.
	got := DistanceKm(-23.5505, -46.6333, -23.5618, -46.6565)
	assert.InDelta(t, 2.68, got, 0.1)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := DistanceKm(-23.5505, -46.6333, -22.9068, -43.1729)
	b := DistanceKm(-22.9068, -43.1729, -23.5505, -46.6333)
	assert.Equal(t, a, b)
}

func TestDistanceKm_RoundedToTwoDecimals(t *testing.T) {
	got := DistanceKm(-23.5505, -46.6333, -22.9068, -43.1729)
	assert.Equal(t, math.Round(got*100)/100, got)

	// São Paulo to Rio de Janeiro is roughly 360 km.
	assert.InDelta(t, 360, got, 10)
}
