package sim

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configure an Engine. Zero values pick defaults.
type Options struct {
	// ResamplePoints is the length of every output band.
	ResamplePoints int
	// Workers bounds how many goroutines share the path loop of a single
	// run. Results do not depend on it.
	Workers int
	Logger  *zap.Logger
}

// Engine runs drawdown simulations. It holds configuration only, so one
// Engine may serve concurrent runs.
type Engine struct {
	resample int
	workers  int
	log      *zap.Logger
}

func NewEngine(opts Options) *Engine {
	e := &Engine{
		resample: opts.ResamplePoints,
		workers:  opts.Workers,
		log:      opts.Logger,
	}
	if e.resample <= 0 {
		e.resample = DefaultResamplePoints
	}
	if e.workers <= 0 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	return e
}

// ResamplePoints reports the band length this engine produces.
func (e *Engine) ResamplePoints() int { return e.resample }

// Run simulates in.Paths equity paths and summarizes them. Numeric inputs
// are clamped; an unknown regime is an error. Cancellation is checked
// between paths.
func (e *Engine) Run(ctx context.Context, in Inputs) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, fmt.Errorf("simulate: %w", err)
	}
	in = in.Clamp()
	start := time.Now()

	horizon := Horizon(in.RiskPerTrade, in.VolLevel)
	params := pathParams{
		risk:       in.RiskPerTrade,
		winRate:    in.WinRate,
		avgR:       in.AvgR,
		dispersion: in.VolLevel.Dispersion(),
		horizon:    horizon,
	}
	base := DeriveSeed(in)

	// matrix[t][i] is equity of path i after t trades.
	matrix := make([][]float64, horizon+1)
	for t := range matrix {
		matrix[t] = make([]float64, in.Paths)
	}
	hits := make([]bool, in.Paths)

	workers := min(e.workers, in.Paths)
	shard := (in.Paths + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < in.Paths; lo += shard {
		hi := min(lo+shard, in.Paths)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				src := NewSource(pathSeed(base, i))
				hits[i] = runPath(params, src, func(t int, equity float64) {
					matrix[t][i] = equity
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("simulate: %w", err)
	}

	hitCount := 0
	for _, h := range hits {
		if h {
			hitCount++
		}
	}

	terminal := summarize(matrix[horizon])
	bands := buildBands(matrix).Resampled(e.resample)

	res := Result{
		Inputs:        in,
		DD50Risk:      float64(hitCount) / float64(in.Paths),
		HorizonTrades: horizon,
		Bands:         bands,
		Terminal:      terminal,
	}

	e.log.Debug("simulation complete",
		zap.Float64("risk_per_trade", in.RiskPerTrade),
		zap.Float64("win_rate", in.WinRate),
		zap.Float64("avg_r", in.AvgR),
		zap.Stringer("vol_level", in.VolLevel),
		zap.Int("paths", in.Paths),
		zap.Int("horizon", horizon),
		zap.Float64("dd50_risk", res.DD50Risk),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}
