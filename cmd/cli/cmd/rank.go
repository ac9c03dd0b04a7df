package cmd

import (
	"fmt"
	"strings"

	"github.com/guttosm/sourcing-lens/internal/domain/dto"
	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"github.com/guttosm/sourcing-lens/internal/service"
	"github.com/spf13/cobra"
)

func newRankCommand(e *env) *cobra.Command {
	var (
		in       service.SKUInput
		priority string
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank every sourcing lane for one SKU",
		Long: `Rank computes the landed cost of one SKU in every country of the table
and orders the lanes by priority: cost, nearshore, us or balance.

Examples:
  sourcinglens rank --unit-cost 10 --volume 1000 --current china
  sourcinglens rank --name "Insulated bottle" --unit-cost 8.5 --volume 5000 --current vietnam --priority balance`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.CurrentCountry = strings.ToLower(strings.TrimSpace(in.CurrentCountry))
			in.Priority = model.Priority(strings.ToLower(priority)).Normalize()
			if err := dto.ValidateLane(in.UnitCost, in.AnnualVolume, in.CurrentCountry); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			result, err := e.analyzer.AnalyzeSKU(cmd.Context(), in)
			if err != nil {
				return err
			}
			if e.format == outputJSON {
				return writeJSON(e.out, result)
			}

			fmt.Fprintf(e.out, "Priority: %s\n", result.Ranking.Priority)
			if result.HSCode != "" {
				fmt.Fprintf(e.out, "HS code: %s (%s)\n", result.HSCode, result.HSStatus)
			}
			fmt.Fprintln(e.out)
			if err := writeLanes(e.out, result.Ranking.Lanes); err != nil {
				return err
			}
			fmt.Fprintf(e.out, "\n%s\n", result.Summary)
			if result.Ranking.Savings > 0 {
				fmt.Fprintf(e.out, "Estimated annual savings: %s\n", service.FormatUSD(result.Ranking.Savings))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&in.ProductName, "name", "", "product name")
	flags.StringVar(&in.Description, "description", "", "product description used for HS lookup")
	flags.StringVar(&in.HSCode, "hs-code", "", "known HS code; skips lookup")
	flags.Float64Var(&in.UnitCost, "unit-cost", 0, "ex-works unit cost in USD")
	flags.IntVar(&in.AnnualVolume, "volume", 0, "annual units")
	flags.StringVar(&in.CurrentCountry, "current", "", "current sourcing country key")
	flags.StringVar(&priority, "priority", string(model.PriorityCost), "cost, nearshore, us or balance")
	_ = cmd.MarkFlagRequired("unit-cost")
	_ = cmd.MarkFlagRequired("volume")
	_ = cmd.MarkFlagRequired("current")
	return cmd
}
