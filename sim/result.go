package sim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Result is the outcome of one run. Nothing in it is shared with the engine
// once Run returns.
type Result struct {
	// Inputs holds the clamped values actually simulated.
	Inputs        Inputs   `json:"inputs"`
	DD50Risk      float64  `json:"dd50Risk"`
	HorizonTrades int      `json:"horizonTrades"`
	Bands         Bands    `json:"bands"`
	Terminal      Terminal `json:"terminal"`
}

// Terminal describes raw final equity across all paths.
type Terminal struct {
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"stdDev"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	ProbProfit float64 `json:"probProfit"`
}

func summarize(final []float64) Terminal {
	if len(final) == 0 {
		return Terminal{Mean: 1, Min: 1, Max: 1}
	}
	mean, std := stat.MeanStdDev(final, nil)
	if len(final) == 1 {
		std = 0
	}

	profitable := 0
	for _, eq := range final {
		if eq > 1 {
			profitable++
		}
	}

	return Terminal{
		Mean:       mean,
		StdDev:     std,
		Min:        floats.Min(final),
		Max:        floats.Max(final),
		ProbProfit: float64(profitable) / float64(len(final)),
	}
}
