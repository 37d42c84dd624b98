package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rustyeddy/survival/journal"
	"github.com/rustyeddy/survival/risk"
	"github.com/rustyeddy/survival/sim"
	"github.com/rustyeddy/survival/worker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Estimate drawdown risk for one set of sizing assumptions",
	Long: `Run the Monte Carlo once and print the 50% drawdown probability, the
horizon used and the equity percentile bands.

Inputs not given on the command line come from the config defaults. The
reward multiple can be derived from prices with --entry/--stop/--target,
and risk per trade from account money with --equity plus --risk-usd or
--units.

Examples:
  survival simulate --risk 0.02 --win-rate 0.45 --avg-r 1.8 --vol HIGH
  survival simulate --entry 1.0850 --stop 1.0820 --target 1.0910 --equity 10000 --risk-usd 75
  survival simulate --vol extreme --json`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

type simulateFlags struct {
	risk    float64
	winRate float64
	avgR    float64
	vol     sim.VolLevel
	paths   int

	entry     float64
	stop      float64
	target    float64
	equity    float64
	riskUSD   float64
	units     float64
	quoteRate float64

	json   bool
	record bool
}

var simFlags = simulateFlags{vol: sim.VolMed}

func init() {
	rootCmd.AddCommand(simulateCmd)

	f := simulateCmd.Flags()
	f.Float64Var(&simFlags.risk, "risk", 0, "risk per trade as a fraction of equity (0.0005-0.10)")
	f.Float64Var(&simFlags.winRate, "win-rate", 0, "probability a trade wins (0.01-0.99)")
	f.Float64Var(&simFlags.avgR, "avg-r", 0, "average win as a multiple of the risked amount (0.1-10)")
	f.Var(&simFlags.vol, "vol", "volatility regime")
	f.IntVar(&simFlags.paths, "paths", 0, "number of simulated paths (250-10000)")

	f.Float64Var(&simFlags.entry, "entry", 0, "entry price, with --stop and --target derives --avg-r")
	f.Float64Var(&simFlags.stop, "stop", 0, "stop-loss price")
	f.Float64Var(&simFlags.target, "target", 0, "take-profit price")
	f.Float64Var(&simFlags.equity, "equity", 0, "account equity, with --risk-usd or --units derives --risk")
	f.Float64Var(&simFlags.riskUSD, "risk-usd", 0, "money lost if the stop is hit")
	f.Float64Var(&simFlags.units, "units", 0, "position size, used with --entry/--stop when --risk-usd is not set")
	f.Float64Var(&simFlags.quoteRate, "quote-rate", 1, "quote-to-account currency rate for --units")

	f.BoolVar(&simFlags.json, "json", false, "print the response envelope as JSON")
	f.BoolVar(&simFlags.record, "record", false, "write the run to the configured journal")
}

// inputs overlays the flags the user actually set onto def.
func (f simulateFlags) inputs(def sim.Inputs, changed func(string) bool) (sim.Inputs, error) {
	in := def
	if changed("risk") {
		in.RiskPerTrade = f.risk
	}
	if changed("win-rate") {
		in.WinRate = f.winRate
	}
	if changed("avg-r") {
		in.AvgR = f.avgR
	}
	if changed("vol") {
		in.VolLevel = f.vol
	}
	if changed("paths") {
		in.Paths = f.paths
	}

	plan := risk.Plan{
		Entry:          f.entry,
		Stop:           f.stop,
		TakeProfit:     f.target,
		Units:          f.units,
		QuoteToAccount: f.quoteRate,
		RiskUSD:        f.riskUSD,
		Equity:         f.equity,
	}

	if changed("target") {
		if changed("avg-r") {
			return sim.Inputs{}, errors.New("--avg-r and --target are mutually exclusive")
		}
		if !changed("entry") || !changed("stop") {
			return sim.Inputs{}, errors.New("--target needs --entry and --stop")
		}
		r, err := plan.AvgR()
		if err != nil {
			return sim.Inputs{}, fmt.Errorf("derive avg-r: %w", err)
		}
		in.AvgR = r
	}

	if changed("equity") {
		if changed("risk") {
			return sim.Inputs{}, errors.New("--risk and --equity are mutually exclusive")
		}
		pct, err := plan.RiskPerTrade()
		if err != nil {
			return sim.Inputs{}, fmt.Errorf("derive risk: %w", err)
		}
		in.RiskPerTrade = pct
	}

	return in, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	in, err := simFlags.inputs(cfg.Defaults, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	engine := sim.NewEngine(sim.Options{
		ResamplePoints: cfg.Engine.ResamplePoints,
		Workers:        cfg.Engine.Workers,
		Logger:         logger,
	})

	w := worker.New(engine, worker.Options{Logger: logger})
	go func() { _ = w.Run(ctx) }()

	resp := worker.NewClient(w, nil).Simulate(ctx, in)

	if simFlags.json {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
		fmt.Println(string(data))
	} else if resp.OK {
		printSummary(os.Stdout, resp)
	}

	if !resp.OK {
		return fmt.Errorf("simulation %s failed: %s", resp.ID, resp.Error)
	}

	if simFlags.record {
		if err := recordRun(resp); err != nil {
			return err
		}
	}
	return nil
}

func recordRun(resp worker.Response) error {
	j, err := journal.Open(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	if err := j.RecordRun(journal.NewRunRecord(resp.ID, time.Now(), *resp.Result)); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	logger.Info("run recorded", zap.String("id", resp.ID), zap.String("journal", cfg.Journal.Type))
	return nil
}

// summaryRows is how many band rows the text summary prints.
const summaryRows = 7

func printSummary(w io.Writer, resp worker.Response) {
	r := resp.Result
	in := r.Inputs

	fmt.Fprintf(w, "Run %s\n", resp.ID)
	fmt.Fprintf(w, "  Risk/trade: %.2f%%  Win rate: %.1f%%  Avg R: %.2f  Vol: %s  Paths: %d\n",
		in.RiskPerTrade*100, in.WinRate*100, in.AvgR, in.VolLevel, in.Paths)
	fmt.Fprintf(w, "  Horizon: %d trades\n", r.HorizonTrades)
	fmt.Fprintf(w, "  P(50%% drawdown): %.2f%%\n", r.DD50Risk*100)
	fmt.Fprintln(w)

	n := r.Bands.Len()
	fmt.Fprintf(w, "  %6s  %8s  %8s  %8s  %8s  %8s\n", "trade", "P05", "P25", "P50", "P75", "P95")
	if n > 0 {
		for k := 0; k < summaryRows; k++ {
			i := k * (n - 1) / (summaryRows - 1)
			trade := 0
			if n > 1 {
				trade = i * r.HorizonTrades / (n - 1)
			}
			fmt.Fprintf(w, "  %6d  %8.4f  %8.4f  %8.4f  %8.4f  %8.4f\n", trade,
				r.Bands.P05[i], r.Bands.P25[i], r.Bands.P50[i], r.Bands.P75[i], r.Bands.P95[i])
		}
	}
	fmt.Fprintln(w)

	t := r.Terminal
	fmt.Fprintf(w, "  Final equity: mean %.4f  sd %.4f  min %.4f  max %.4f  P(profit) %.1f%%\n",
		t.Mean, t.StdDev, t.Min, t.Max, t.ProbProfit*100)
}
