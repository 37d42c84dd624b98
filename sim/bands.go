package sim

import "sort"

// Bands are equity percentiles over simulated time, all the same length.
type Bands struct {
	P05 []float64 `json:"p05"`
	P25 []float64 `json:"p25"`
	P50 []float64 `json:"p50"`
	P75 []float64 `json:"p75"`
	P95 []float64 `json:"p95"`
}

// Len returns the shared series length.
func (b Bands) Len() int { return len(b.P50) }

// Percentile interpolates linearly between the two order statistics
// around (n-1)*p. sorted must be ascending. An empty sample yields 1.0,
// the starting equity.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 1.0
	}
	if n == 1 || p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	idx := p * float64(n-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= n {
		return sorted[n-1]
	}
	frac := idx - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// buildBands sorts each timestep row of the equity matrix in place and
// extracts the five percentile series.
func buildBands(matrix [][]float64) Bands {
	n := len(matrix)
	b := Bands{
		P05: make([]float64, n),
		P25: make([]float64, n),
		P50: make([]float64, n),
		P75: make([]float64, n),
		P95: make([]float64, n),
	}
	for t, row := range matrix {
		sort.Float64s(row)
		b.P05[t] = Percentile(row, 0.05)
		b.P25[t] = Percentile(row, 0.25)
		b.P50[t] = Percentile(row, 0.50)
		b.P75[t] = Percentile(row, 0.75)
		b.P95[t] = Percentile(row, 0.95)
	}
	return b
}

// Resampled returns a copy of b with every series resampled to n points.
func (b Bands) Resampled(n int) Bands {
	return Bands{
		P05: Resample(b.P05, n),
		P25: Resample(b.P25, n),
		P50: Resample(b.P50, n),
		P75: Resample(b.P75, n),
		P95: Resample(b.P95, n),
	}
}
