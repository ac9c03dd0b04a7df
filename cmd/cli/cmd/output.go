package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"github.com/guttosm/sourcing-lens/internal/service"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

func percent(p *float64) string {
	if p == nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.2f%%", *p)
}

func writeLanes(w io.Writer, lanes []model.CostBreakdown) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "LANE\tUNIT\tTARIFF\tSHIPPING\tLANDED\tANNUAL\tVS CURRENT\t")
	for _, l := range lanes {
		label := l.Label
		if l.IsCurrent {
			label += " *"
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t%s\t\n",
			label, l.BaseCost, l.TariffAmount, l.ShippingAmount, l.LandedUnitCost,
			service.FormatUSD(l.AnnualCost), percent(l.PercentVsCurrent))
	}
	return tw.Flush()
}
