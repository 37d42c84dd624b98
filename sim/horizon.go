package sim

import "math"

const (
	baseHorizon = 220
	minHorizon  = 40
	maxHorizon  = 260
)

// Horizon is the number of trades simulated per path. It shrinks as risk
// per trade or volatility grows and is clamped to [40, 260].
func Horizon(riskPerTrade float64, lvl VolLevel) int {
	volFactor := 1 / (1 + 0.9*(lvl.Dispersion()-0.55))
	riskFactor := 1 / (1 + 18*riskPerTrade)

	h := int(math.Round(baseHorizon * volFactor * riskFactor))
	return clampi(h, minHorizon, maxHorizon)
}
