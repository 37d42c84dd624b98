package sim

import (
	"fmt"
	"math"
)

// Bounds applied to every run regardless of what the caller validated.
const (
	MinRiskPerTrade = 0.0005
	MaxRiskPerTrade = 0.10
	MinWinRate      = 0.01
	MaxWinRate      = 0.99
	MinAvgR         = 0.1
	MaxAvgR         = 10
	MinPaths        = 250
	MaxPaths        = 10000

	DefaultRiskPerTrade = 0.01
	DefaultWinRate      = 0.5
	DefaultAvgR         = 1.0
	DefaultPaths        = 2000
)

// Inputs are the position-sizing assumptions for one run.
type Inputs struct {
	RiskPerTrade float64  `json:"riskPerTrade" yaml:"risk_per_trade"`
	WinRate      float64  `json:"winRate" yaml:"win_rate"`
	AvgR         float64  `json:"avgR" yaml:"avg_r"`
	VolLevel     VolLevel `json:"volLevel" yaml:"vol_level"`
	Paths        int      `json:"paths" yaml:"paths"`
}

// Clamp returns a copy with every numeric field forced into range. NaN takes
// the field default. VolLevel is left untouched; see Validate.
func (in Inputs) Clamp() Inputs {
	out := in
	out.RiskPerTrade = clampf(in.RiskPerTrade, MinRiskPerTrade, MaxRiskPerTrade, DefaultRiskPerTrade)
	out.WinRate = clampf(in.WinRate, MinWinRate, MaxWinRate, DefaultWinRate)
	out.AvgR = clampf(in.AvgR, MinAvgR, MaxAvgR, DefaultAvgR)
	out.Paths = clampi(in.Paths, MinPaths, MaxPaths)
	return out
}

// Validate reports the one input error that is not clamped away: an
// unrecognised regime.
func (in Inputs) Validate() error {
	if !in.VolLevel.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownVolLevel, in.VolLevel)
	}
	return nil
}

func clampf(x, lo, hi, def float64) float64 {
	if math.IsNaN(x) {
		x = def
	}
	return math.Min(hi, math.Max(lo, x))
}

func clampi(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
