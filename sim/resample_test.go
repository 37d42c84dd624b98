package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResampleDegenerate(t *testing.T) {
	t.Parallel()

	empty := Resample(nil, DefaultResamplePoints)
	require.Len(t, empty, DefaultResamplePoints)
	for _, v := range empty {
		assert.Equal(t, 1.0, v)
	}

	single := Resample([]float64{0.73}, DefaultResamplePoints)
	require.Len(t, single, DefaultResamplePoints)
	for _, v := range single {
		assert.Equal(t, 0.73, v)
	}

	assert.Empty(t, Resample([]float64{1, 2}, 0))
	assert.Equal(t, []float64{4}, Resample([]float64{4, 9}, 1))
}

func TestResampleLinear(t *testing.T) {
	t.Parallel()

	series := make([]float64, 11)
	for i := range series {
		series[i] = float64(i)
	}

	out := Resample(series, 21)
	require.Len(t, out, 21)
	for i, v := range out {
		assert.InDelta(t, float64(i)*0.5, v, 1e-9)
	}
}

func TestResampleKeepsEndpoints(t *testing.T) {
	t.Parallel()

	series := []float64{1, 1.013, 0.97, 1.2, 1.31, 0.88, 1.41}
	for _, n := range []int{2, 3, 7, 50, 121, 500} {
		out := Resample(series, n)
		require.Len(t, out, n)
		assert.Equal(t, series[0], out[0])
		assert.Equal(t, series[len(series)-1], out[n-1])
	}
}

func TestResampleIdentity(t *testing.T) {
	t.Parallel()

	series := []float64{1, 1.1, 0.9, 1.3}
	assert.InDeltaSlice(t, series, Resample(series, len(series)), 1e-12)
}
