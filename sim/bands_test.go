package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	t.Parallel()

	sorted := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty", nil, 0.5, 1.0},
		{"single", []float64{0.7}, 0.95, 0.7},
		{"median", sorted, 0.5, 3},
		{"exact rank", sorted, 0.25, 2},
		{"interpolated", sorted, 0.1, 1.4},
		{"p95", sorted, 0.95, 4.8},
		{"min", sorted, 0, 1},
		{"max", sorted, 1, 5},
		{"even count", []float64{1, 2, 3, 4}, 0.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Percentile(tt.sorted, tt.p), 1e-12)
		})
	}
}

func TestBuildBandsOrdered(t *testing.T) {
	t.Parallel()

	matrix := [][]float64{
		{1, 1, 1, 1},
		{1.2, 0.9, 1.05, 0.8},
		{0.5, 1.5, 1.1, 0.95},
	}
	b := buildBands(matrix)

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 1.0, b.P05[0])
	assert.Equal(t, 1.0, b.P95[0])
	for i := 0; i < b.Len(); i++ {
		assert.LessOrEqual(t, b.P05[i], b.P25[i])
		assert.LessOrEqual(t, b.P25[i], b.P50[i])
		assert.LessOrEqual(t, b.P50[i], b.P75[i])
		assert.LessOrEqual(t, b.P75[i], b.P95[i])
	}
	assert.InDelta(t, 1.0, b.P50[1], 1e-12)
}
