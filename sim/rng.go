package sim

import "math"

// Source is a Mulberry32 generator. It is tiny, fast and yields the same
// sequence for a given seed on every platform since it only uses uint32
// arithmetic. A Source is not safe for concurrent use; give each path its own.
type Source struct {
	state uint32
}

func NewSource(seed uint32) *Source {
	return &Source{state: seed}
}

// Float64 returns a uniform draw in [0,1).
func (s *Source) Float64() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	t ^= t >> 14
	return float64(t) / 4294967296.0
}

// Normal draws one standard normal variate with the Box-Muller transform.
// A zero first draw is redrawn so the log stays finite.
func Normal(draw func() float64) float64 {
	u1 := draw()
	for u1 == 0 {
		u1 = draw()
	}
	u2 := draw()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

const pathSeedStride uint32 = 0x9E3779B1

// DeriveSeed mixes the clamped inputs into the base seed for a run.
func DeriveSeed(in Inputs) uint32 {
	r := uint32(math.Round(in.RiskPerTrade * 1e6))
	w := uint32(math.Round(in.WinRate * 1e4))
	a := uint32(math.Round(in.AvgR * 1e3))

	h := r*73856093 ^ w*19349663 ^ a*83492791 ^ uint32(in.VolLevel)*2654435761
	return h + uint32(in.Paths)
}

// pathSeed wraps on overflow, which is intended.
func pathSeed(base uint32, i int) uint32 {
	return base + uint32(i)*pathSeedStride
}
