package journal

import (
	"time"

	"github.com/rustyeddy/survival/sim"
)

func sampleRecord(runID string, created time.Time) RunRecord {
	res := sim.Result{
		Inputs:        sim.Inputs{RiskPerTrade: 0.01, WinRate: 0.52, AvgR: 1.15, VolLevel: sim.VolMed, Paths: 2000},
		DD50Risk:      0.0125,
		HorizonTrades: 147,
		Bands: sim.Bands{
			P05: []float64{1, 0.9, 0.8},
			P25: []float64{1, 0.97, 0.95},
			P50: []float64{1, 1.02, 1.05},
			P75: []float64{1, 1.08, 1.16},
			P95: []float64{1, 1.15, 1.3},
		},
	}
	return NewRunRecord(runID, created, res)
}
