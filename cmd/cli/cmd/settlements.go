package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"cargo-market/core/types"
)

var region string

var settlementsCmd = &cobra.Command{
	Use:   "settlements",
	Short: "List the settlements in the dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := openDataset()
		if err != nil {
			return fmt.Errorf("failed to load dataset: %w", err)
		}

		list := source.Settlements(region)
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No settlements found")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tREGION\tSIZE\tWEALTH\tPOPULATION\tFLAGS")
		for _, s := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d (%s)\t%s\t%s\n",
				s.Name, s.Region, s.Size, s.WealthRating, s.WealthDescription,
				humanize.Comma(int64(s.Population)), strings.Join(s.Flags, ", "))
		}
		return tw.Flush()
	},
}

var cargoSeason string

var cargoCmd = &cobra.Command{
	Use:   "cargo",
	Short: "List cargo types with their seasonal price",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := types.ParseSeason(cargoSeason)
		if err != nil {
			return err
		}

		source, err := openDataset()
		if err != nil {
			return fmt.Errorf("failed to load dataset: %w", err)
		}
		cargo, err := source.CargoTypes(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "NAME\tCATEGORY\tEP/UNIT\tPRICE (%s)\n", strings.ToUpper(s.String()))
		for _, c := range cargo {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", c.Name, c.Category, c.Encumbrance(), source.SeasonalPrice(c, s).StringFixed(2))
		}
		return tw.Flush()
	},
}

func init() {
	settlementsCmd.Flags().StringVarP(&region, "region", "r", "", "only list settlements in this region")
	cargoCmd.Flags().StringVarP(&cargoSeason, "season", "s", "spring", "season to price cargo in")
}
