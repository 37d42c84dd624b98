package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHorizonReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		risk float64
		lvl  VolLevel
		want int
	}{
		{"low 1%", 0.01, VolLow, 186},
		{"med 1%", 0.01, VolMed, 147},
		{"high 1%", 0.01, VolHigh, 121},
		{"extreme 1%", 0.01, VolExtreme, 98},
		{"low min risk", MinRiskPerTrade, VolLow, 218},
		{"extreme max risk", MaxRiskPerTrade, VolExtreme, 41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Horizon(tt.risk, tt.lvl))
		})
	}
}

func TestHorizonMonotoneInRisk(t *testing.T) {
	t.Parallel()

	for _, lvl := range VolLevels {
		prev := Horizon(MinRiskPerTrade, lvl)
		for risk := MinRiskPerTrade; risk <= MaxRiskPerTrade; risk += 0.0005 {
			h := Horizon(risk, lvl)
			assert.LessOrEqual(t, h, prev, "%s risk=%.4f", lvl, risk)
			assert.GreaterOrEqual(t, h, minHorizon)
			assert.LessOrEqual(t, h, maxHorizon)
			prev = h
		}
	}
}

func TestHorizonMonotoneInVolatility(t *testing.T) {
	t.Parallel()

	for _, risk := range []float64{0.0005, 0.005, 0.01, 0.02, 0.05, 0.1} {
		prev := maxHorizon
		for _, lvl := range VolLevels {
			h := Horizon(risk, lvl)
			assert.LessOrEqual(t, h, prev, "%s risk=%.4f", lvl, risk)
			prev = h
		}
	}
}
