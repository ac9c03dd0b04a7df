package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/guttosm/sourcing-lens/internal/domain/dto"
	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"github.com/guttosm/sourcing-lens/internal/service"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// portfolioFile is the on-disk portfolio, in YAML or JSON.
type portfolioFile struct {
	Priority string                `json:"priority" yaml:"priority"`
	Items    []model.PortfolioItem `json:"items" yaml:"items"`
}

func loadPortfolio(path string) (*portfolioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read portfolio: %w", err)
	}

	var pf portfolioFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &pf)
	} else {
		err = yaml.Unmarshal(data, &pf)
	}
	if err != nil {
		return nil, fmt.Errorf("parse portfolio %s: %w", path, err)
	}

	for i := range pf.Items {
		item := &pf.Items[i]
		item.CurrentCountryKey = strings.ToLower(strings.TrimSpace(item.CurrentCountryKey))
		if err := dto.ValidateLane(item.UnitCost, item.AnnualVolume, item.CurrentCountryKey); err != nil {
			return nil, fmt.Errorf("portfolio %s: item %d: %w", path, i+1, err)
		}
	}
	return &pf, nil
}

func newPortfolioCommand(e *env) *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "portfolio <file>",
		Short: "Analyze a multi-SKU portfolio from a YAML or JSON file",
		Long: `Portfolio ranks every SKU in the file, sums the positive savings and
prints the report with narrative, risk summary and next steps.

File format (YAML; JSON uses the same keys):
  priority: cost
  items:
    - label: Bottle 24oz Black
      unit_cost: 10
      annual_volume: 1000
      current_country: china`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pf, err := loadPortfolio(args[0])
			if err != nil {
				return err
			}
			if priority != "" {
				pf.Priority = priority
			}

			report, err := e.analyzer.AnalyzePortfolio(cmd.Context(), pf.Items,
				model.Priority(strings.ToLower(strings.TrimSpace(pf.Priority))).Normalize())
			if err != nil {
				return err
			}
			if e.format == outputJSON {
				return writeJSON(e.out, report)
			}
			return writeReport(e, report)
		},
	}

	cmd.Flags().StringVar(&priority, "priority", "", "override the file's priority (cost, nearshore, us, balance)")
	return cmd
}

func writeReport(e *env, report *model.PortfolioReport) error {
	tw := newTable(e.out)
	fmt.Fprintln(tw, "SKU\tCURRENT\tSUGGESTED\tCURRENT ANNUAL\tSUGGESTED ANNUAL\tSAVINGS\tHS\t")
	for _, r := range report.Rows {
		hs := r.HSCode
		if hs == "" {
			hs = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.SKULabel, r.CurrentLane, r.SuggestedLane,
			service.FormatUSD(r.CurrentAnnual), service.FormatUSD(r.SuggestedAnnual),
			service.FormatUSD(r.AnnualSavings), hs)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, re := range report.Errors {
		fmt.Fprintf(e.out, "! %s (row %d): %s\n", re.SKULabel, re.Index+1, re.Error)
	}

	fmt.Fprintf(e.out, "\nTotal estimated savings: %s\n\n%s\n\nRisk: %s\n\nNext steps:\n",
		service.FormatUSD(report.TotalSavings), report.Narrative, report.RiskSummary)
	for _, step := range report.NextSteps {
		fmt.Fprintf(e.out, "  - %s\n", step)
	}
	return nil
}
