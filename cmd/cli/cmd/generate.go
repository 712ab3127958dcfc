package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cargo-market/core/engine"
	"cargo-market/core/output"
	"cargo-market/core/random"
	"cargo-market/core/types"
	"cargo-market/internal/config"
	"cargo-market/internal/logging"
)

var (
	season          string
	seed            uint64
	outputFormat    string
	showHistory     bool
	showUnavailable bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <settlement>",
	Short: "Generate the cargo offers of a settlement",
	Long: `Generate runs the cargo pipeline for one settlement and season.

Each producer slot draws a cargo, computes the market balance and rolls
for quantity, quality, contraband and a merchant. Without a merchant a
stressed market may still yield a desperate seller.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&season, "season", "s", "", "season: spring, summer, autumn, winter")
	generateCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for a reproducible run (0 picks one)")
	generateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: text, json")
	generateCmd.Flags().BoolVar(&showHistory, "history", false, "show balance transfers and price steps")
	generateCmd.Flags().BoolVar(&showUnavailable, "all", false, "include slots without a seller")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	rawSeason := season
	if rawSeason == "" {
		rawSeason = cfg.Generation.DefaultSeason
	}
	s, err := types.ParseSeason(rawSeason)
	if err != nil {
		return err
	}

	rawFormat := outputFormat
	if rawFormat == "" {
		rawFormat = cfg.Output.DefaultFormat
	}
	format, err := output.ParseFormat(rawFormat)
	if err != nil {
		return err
	}
	formatter, err := output.New(format, output.Options{
		ShowHistory:     showHistory || cfg.Output.ShowHistory,
		ShowUnavailable: showUnavailable,
	})
	if err != nil {
		return err
	}

	source, err := openDataset()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	pipeline, err := engine.New(source, engine.WithLogger(logging.Named("engine")))
	if err != nil {
		return err
	}

	runSeed := seed
	if runSeed == 0 {
		runSeed = cfg.Generation.Seed
	}
	var src random.Source = random.NewUnseeded()
	if runSeed != 0 {
		src = random.NewSeeded(runSeed)
	}

	result, err := pipeline.Run(cmd.Context(), engine.RunRequest{
		Settlement: args[0],
		Season:     s,
		Random:     src,
	})
	if err != nil {
		return err
	}

	return formatter.Render(cmd.OutOrStdout(), result)
}
