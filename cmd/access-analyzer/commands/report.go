package commands

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezangit/building-access-analyzer/internal/accesslog/csvload"
	"github.com/rezangit/building-access-analyzer/internal/accesslog/report"
	"github.com/rezangit/building-access-analyzer/internal/accesslog/sink"
	"github.com/rezangit/building-access-analyzer/internal/config"
)

// Console format modes.
const (
	FormatCSV   = "csv"
	FormatTable = "table"
)

const version = "1.1.0"

// ReportCommand holds the flags for the default report run.
type ReportCommand struct {
	reportsDir string
	format     string
}

// NewRootCommand builds the root command.  A bare invocation (with an
// optional input path) runs the report flow, mirroring how the tool is
// used day to day; archive management lives in subcommands.
func NewRootCommand() *cobra.Command {
	cmd := &ReportCommand{}

	rootCmd := &cobra.Command{
		Use:   "access-analyzer [input.csv]",
		Short: "Building access-control log reports",
		Long: `access-analyzer reads building access-control logs and generates
unit-to-fob and busiest-hour reports.

Given an input CSV (default sampleData.csv), both reports are written to
the reports directory with run-timestamped filenames and the fob report
is printed to the console.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          cmd.Run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&cmd.reportsDir, "reports-dir", "d", "", "directory for report files (default \"reports\")")
	rootCmd.Flags().StringVarP(&cmd.format, "format", "f", FormatCSV, "console output format: csv or table")

	rootCmd.AddCommand(NewImportCommand())
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewPruneCommand())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// Run loads the input, writes both reports to timestamped files, and
// prints the fob report to the console.  A load failure is reported and
// processing continues over the empty sequence; header-only reports are
// still produced.
func (c *ReportCommand) Run(cmd *cobra.Command, args []string) error {
	cfg := config.FromEnv()
	if c.reportsDir != "" {
		cfg.ReportsDir = c.reportsDir
	}

	input := cfg.DataFile
	if len(args) == 1 {
		input = args[0]
	}

	logger := log.New(cmd.ErrOrStderr(), "access-analyzer ", log.LstdFlags)

	records, err := csvload.Load(input)
	if err != nil {
		logger.Printf("error loading data: %v", err)
	} else {
		logger.Printf("loaded %d records from %s", len(records), input)
	}

	fob := report.UnitFobs(records)
	busy := report.BusyHours(records)

	now := time.Now()
	saves := []struct {
		prefix string
		rep    report.Report
	}{
		{"unit_fob", fob},
		{"busy_time", busy},
	}
	for _, s := range saves {
		path := sink.TimestampedPath(cfg.ReportsDir, s.prefix, now)
		if err := sink.WriteFile(path, s.rep.Render()); err != nil {
			logger.Printf("error saving report: %v", err)
			continue
		}
		logger.Printf("report saved to %s", path)
	}

	out := cmd.OutOrStdout()
	switch c.format {
	case FormatTable:
		fmt.Fprintln(out, fob.Table())
	default:
		fmt.Fprintln(out, fob.Render())
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "access-analyzer %s\n", version)
		},
	}
}
