package cmd

import (
	"fmt"

	"github.com/rustyeddy/survival/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `A config file sets the default sizing assumptions used when a flag or
HTTP field is omitted, the band resolution, the serve address and worker
count, the run journal and the log level.

.yaml and .yml files are YAML; any other extension is JSON. The defaults
block is spelled risk_per_trade/win_rate/avg_r/vol_level in YAML and
riskPerTrade/winRate/avgR/volLevel in JSON.

Examples:
  survival config init -o survival.yaml
  survival config validate -f survival.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	Long: `Write the built-in defaults (1% risk, 52% win rate, 1.15R, MED
volatility, 2000 paths, SQLite journal) to a file for editing.

Example:
  survival config init -o survival.yaml`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Load a config file and check it: the defaults must name a known
volatility regime and a path count in range, the journal settings must
match its type, and the server timeout must parse.

Example:
  survival config validate -f survival.yaml`,
	RunE: runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "survival.yaml", "output config file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file (required)")
	_ = configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	c := config.Default()
	if err := c.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("✓ Created default configuration: %s\n", configInitOutput)
	fmt.Println("\nEdit the file and run with:")
	fmt.Printf("  survival simulate -c %s\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	c, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	d := c.Defaults
	fmt.Printf("✓ Configuration valid: %s\n", configValidatePath)
	fmt.Printf("  Defaults: %.2f%% risk, %.0f%% win rate, %.2fR, %s, %d paths\n",
		d.RiskPerTrade*100, d.WinRate*100, d.AvgR, d.VolLevel, d.Paths)
	fmt.Printf("  Engine: %d resample points\n", c.Engine.ResamplePoints)
	fmt.Printf("  Server: %s (%d workers)\n", c.Server.Addr, c.Server.Workers)
	fmt.Printf("  Journal: %s\n", c.Journal.Type)
	return nil
}
