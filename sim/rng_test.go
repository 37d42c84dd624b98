package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceDeterministic(t *testing.T) {
	t.Parallel()

	a := NewSource(42)
	b := NewSource(42)
	c := NewSource(43)

	same := true
	for i := 0; i < 1000; i++ {
		x, y, z := a.Float64(), b.Float64(), c.Float64()
		assert.Equal(t, x, y)
		if x != z {
			same = false
		}
	}
	assert.False(t, same, "different seeds produced identical sequences")
}

func TestSourceRangeAndMean(t *testing.T) {
	t.Parallel()

	src := NewSource(7)
	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		u := src.Float64()
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
		sum += u
	}
	assert.InDelta(t, 0.5, sum/n, 0.01)
}

func TestNormalMoments(t *testing.T) {
	t.Parallel()

	src := NewSource(2024)
	const n = 200000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		z := Normal(src.Float64)
		require.False(t, math.IsNaN(z) || math.IsInf(z, 0))
		sum += z
		sumSq += z * z
	}
	mean := sum / n
	std := math.Sqrt(sumSq/n - mean*mean)

	assert.InDelta(t, 0.0, mean, 0.02)
	assert.InDelta(t, 1.0, std, 0.02)
}

func TestNormalRedrawsZero(t *testing.T) {
	t.Parallel()

	draws := []float64{0, 0.5, 0}
	calls := 0
	draw := func() float64 {
		v := draws[calls]
		calls++
		return v
	}

	z := Normal(draw)
	assert.Equal(t, 3, calls)
	assert.InDelta(t, math.Sqrt(-2*math.Log(0.5)), z, 1e-12)
}

func TestDeriveSeed(t *testing.T) {
	t.Parallel()

	in := Inputs{RiskPerTrade: 0.01, WinRate: 0.52, AvgR: 1.15, VolLevel: VolMed, Paths: 2000}
	assert.Equal(t, DeriveSeed(in), DeriveSeed(in))

	more := in
	more.Paths = 2001
	assert.NotEqual(t, DeriveSeed(in), DeriveSeed(more))

	wilder := in
	wilder.VolLevel = VolHigh
	assert.NotEqual(t, DeriveSeed(in), DeriveSeed(wilder))
}

func TestPathSeedsDistinct(t *testing.T) {
	t.Parallel()

	seen := make(map[uint32]bool)
	for i := 0; i < MaxPaths; i++ {
		s := pathSeed(12345, i)
		require.False(t, seen[s], "seed collision at path %d", i)
		seen[s] = true
	}
}
