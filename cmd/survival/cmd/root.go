package cmd

import (
	"fmt"

	"github.com/rustyeddy/survival/config"
	"github.com/rustyeddy/survival/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	logLevel string

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "survival",
	Short: "Drawdown-risk Monte Carlo for position sizing",
	Long: `Survival estimates how likely a trading plan is to suffer a 50% drawdown.

Given risk per trade, win rate, average reward multiple and a volatility
regime it simulates many equity paths over a horizon that shrinks with
risk and turbulence, then reports:
  - the probability of a 50% drawdown
  - percentile bands (P05..P95) of equity over the horizon
  - final-equity statistics

Results are deterministic: the same inputs always give the same numbers.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON); built-in defaults when empty")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log.level from the config")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		cfg = config.Default()
	} else {
		c, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	l, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	logger = l
	return nil
}
