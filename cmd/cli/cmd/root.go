// Package cmd provides the CLI commands for shopcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shopcost/internal/config"
	"shopcost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shopcost",
	Short: "Price bills of materials for custom door and window assemblies",
	Long: `shopcost prices the bill of materials an order generates, part by part.

It resolves stock lengths from dimension-bounded rules, optimizes cuts
into stock pieces, applies finish surcharges, and rolls everything up
into a priced BOM and a shop cut list.

Examples:
  shopcost price order.json --catalog ./catalog
  shopcost price --format json --method HYBRID order.json
  shopcost pack --lengths 40,40,40 --stock 96`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.shopcost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(cutlistCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("shopcost version " + toolVersion)
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

const toolVersion = "0.1.0"
