package cmd

import (
	"fmt"

	"github.com/rustyeddy/survival/sim"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the CLI version and the fixed engine parameters that results depend on.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("survival version %s\n", version)
		fmt.Printf("  bands: %d points, P05/P25/P50/P75/P95\n", sim.DefaultResamplePoints)
		fmt.Printf("  paths: %d-%d (default %d)\n", sim.MinPaths, sim.MaxPaths, sim.DefaultPaths)
		fmt.Println("https://github.com/rustyeddy/survival")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
