package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCountriesCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List the sourcing countries in the active table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			countries := e.analyzer.Countries()
			if e.format == outputJSON {
				return writeJSON(e.out, countries)
			}

			tw := newTable(e.out)
			fmt.Fprintln(tw, "KEY\tLABEL\tCOST MULT\tTARIFF\tSHIPPING\tRISK\t")
			for _, c := range countries {
				fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.1f%%\t%.2f\t%s\t\n",
					c.Key, c.Label, c.CostMultiplier, c.TariffRate*100, c.ShippingFactor,
					strings.Join(e.table.RiskTagsFor(c.Key), ", "))
			}
			return tw.Flush()
		},
	}
}
