// Package cmd provides the CLI commands for sourcinglens.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guttosm/sourcing-lens/internal/hscode"
	"github.com/guttosm/sourcing-lens/internal/logger"
	"github.com/guttosm/sourcing-lens/internal/service"
	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

type options struct {
	countriesFile string
	output        string
	hsURL         string
	maxItems      int
	verbose       bool
}

// env is built once per invocation from the root flags.
type env struct {
	out      io.Writer
	format   string
	table    *service.CountryTable
	analyzer *service.AnalysisService
}

// NewRootCommand builds the command tree. Output goes to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}
	e := &env{out: out}

	root := &cobra.Command{
		Use:   "sourcinglens",
		Short: "Directional landed-cost comparisons across sourcing countries",
		Long: `sourcinglens estimates the annual landed cost of a SKU in each sourcing
country and ranks the lanes by priority.

Examples:
  sourcinglens countries
  sourcinglens rank --unit-cost 10 --volume 1000 --current china --priority nearshore
  sourcinglens compare --unit-cost 10 --volume 1000 --current china --with mexico
  sourcinglens portfolio skus.yaml --output json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(opts)
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.countriesFile, "countries", "", "YAML country table (default is the built-in five-lane table)")
	flags.StringVarP(&opts.output, "output", "o", outputTable, "output format (table, json)")
	flags.StringVar(&opts.hsURL, "hs-url", os.Getenv("HS_LOOKUP_URL"), "HS-code inference endpoint; empty disables lookups")
	flags.IntVar(&opts.maxItems, "max-items", service.DefaultMaxPortfolioItems, "maximum SKUs per portfolio")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCountriesCommand(e),
		newRankCommand(e),
		newCompareCommand(e),
		newPortfolioCommand(e),
	)
	return root
}

// Execute runs the CLI against stdout.
func Execute() error {
	return NewRootCommand(os.Stdout).Execute()
}

func (e *env) init(opts *options) error {
	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	logger.Init(logger.Options{Level: level, Pretty: true})

	format := strings.ToLower(opts.output)
	if format != outputTable && format != outputJSON {
		return fmt.Errorf("unknown output format %q (want table or json)", opts.output)
	}
	e.format = format

	e.table = service.DefaultCountryTable()
	if opts.countriesFile != "" {
		table, err := service.LoadCountryTable(opts.countriesFile)
		if err != nil {
			return err
		}
		e.table = table
	}

	analysisOpts := []service.AnalysisOption{service.WithMaxPortfolioItems(opts.maxItems)}
	if opts.hsURL != "" {
		analysisOpts = append(analysisOpts, service.WithHSInferrer(hscode.NewClient(hscode.Config{URL: opts.hsURL})))
	}
	e.analyzer = service.NewAnalysisService(
		service.NewEngine(service.WithCountryPolicy(e.table)),
		e.table,
		analysisOpts...,
	)
	return nil
}
