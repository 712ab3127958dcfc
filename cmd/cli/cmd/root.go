// Package cmd provides the CLI commands for cargo-market.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cargo-market/core/dataset"
	"cargo-market/internal/config"
	"cargo-market/internal/logging"
)

// Version is the CLI version
const Version = "0.1.0"

var (
	cfgFile string
	dataDir string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cargo-market",
	Short: "Generate cargo offers for trading settlements",
	Long: `cargo-market generates the cargo a settlement has for sale in a season.

For every producer slot it picks a cargo, balances supply against demand,
rolls quantity, quality, contraband and merchant presence, and prices the
offer. Runs with the same seed are reproducible.

Examples:
  cargo-market generate Altdorf --season winter
  cargo-market generate Ubersreik --seed 42 --format json
  cargo-market settlements --region Reikland`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cargo-market.json)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "dataset directory (default is the built-in dataset)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(settlementsCmd)
	rootCmd.AddCommand(cargoCmd)
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

// openDataset loads --data, else the configured path, else the built-in set
func openDataset() (*dataset.Source, error) {
	path := dataDir
	if path == "" {
		path = config.Get().Dataset.Path
	}

	opt := dataset.WithLogger(logging.Named("dataset"))
	if path == "" {
		return dataset.Builtin(opt)
	}
	return dataset.Open(path, opt)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cargo-market version %s\n", Version)
	},
}
