package sim

const (
	equityFloor     = 0.02
	ruinDrawdown    = 0.5
	noiseScale      = 0.35
	lossNoiseFactor = 0.6
)

// pathParams are the per-run constants every path shares read-only.
type pathParams struct {
	risk       float64
	winRate    float64
	avgR       float64
	dispersion float64
	horizon    int
}

// runPath walks one equity path, handing equity at every step t in
// 0..horizon to record. It reports whether the path ever fell 50% from its
// own running peak; once set the flag stays set.
func runPath(p pathParams, src *Source, record func(t int, equity float64)) bool {
	equity, peak := 1.0, 1.0
	hit := false
	record(0, equity)

	for t := 1; t <= p.horizon; t++ {
		win := src.Float64() < p.winRate
		noise := Normal(src.Float64) * noiseScale * p.dispersion

		var r float64
		if win {
			r = max(0, p.avgR+noise)
		} else {
			r = -max(0, 1+noise*lossNoiseFactor)
		}

		equity *= 1 + p.risk*r
		if equity < equityFloor {
			equity = equityFloor
		}
		if equity > peak {
			peak = equity
		}
		if !hit && 1-equity/peak >= ruinDrawdown {
			hit = true
		}
		record(t, equity)
	}
	return hit
}
