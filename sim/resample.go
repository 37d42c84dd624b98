package sim

// DefaultResamplePoints is the fixed band length handed to renderers.
const DefaultResamplePoints = 121

// Resample linearly resamples series to exactly n points, keeping the first
// and last values. An empty series becomes n copies of 1.0 and a single
// value is repeated n times.
func Resample(series []float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)

	switch len(series) {
	case 0:
		for i := range out {
			out[i] = 1.0
		}
		return out
	case 1:
		for i := range out {
			out[i] = series[0]
		}
		return out
	}

	if n == 1 {
		out[0] = series[0]
		return out
	}

	last := len(series) - 1
	for i := range out {
		pos := float64(i) / float64(n-1) * float64(last)
		lo := int(pos)
		if lo >= last {
			out[i] = series[last]
			continue
		}
		frac := pos - float64(lo)
		out[i] = series[lo] + frac*(series[lo+1]-series[lo])
	}
	out[0] = series[0]
	out[n-1] = series[last]
	return out
}
