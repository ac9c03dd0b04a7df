package cmd

import (
	"fmt"
	"strings"

	"github.com/guttosm/sourcing-lens/internal/domain/dto"
	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"github.com/guttosm/sourcing-lens/internal/service"
	"github.com/spf13/cobra"
)

func newCompareCommand(e *env) *cobra.Command {
	var in service.CompareInput

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the current lane with one alternative",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.CurrentCountry = strings.ToLower(strings.TrimSpace(in.CurrentCountry))
			in.CompareCountry = strings.ToLower(strings.TrimSpace(in.CompareCountry))
			req := dto.CompareRequest{
				UnitCost:       in.UnitCost,
				AnnualVolume:   in.AnnualVolume,
				CurrentCountry: in.CurrentCountry,
				CompareCountry: in.CompareCountry,
			}
			if err := req.Validate(); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			result, err := e.analyzer.Compare(cmd.Context(), in)
			if err != nil {
				return err
			}
			if e.format == outputJSON {
				return writeJSON(e.out, result)
			}

			if err := writeLanes(e.out, []model.CostBreakdown{result.Current, result.Alternative}); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "\nDelta: %s (%s)\n%s\n", service.FormatUSD(result.Delta), percent(result.PercentDelta), result.Verdict)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&in.UnitCost, "unit-cost", 0, "ex-works unit cost in USD")
	flags.IntVar(&in.AnnualVolume, "volume", 0, "annual units")
	flags.StringVar(&in.CurrentCountry, "current", "", "current sourcing country key")
	flags.StringVar(&in.CompareCountry, "with", "", "alternative country key")
	for _, name := range []string{"unit-cost", "volume", "current", "with"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
