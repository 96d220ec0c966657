package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kvartal/regreport"
	"github.com/kvartal/regreport/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	date string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "build and persist the quarterly report" }
func (*reportCmd) Usage() string {
	return `qrr report [-d <date>]

  Builds the quarterly report for the given report date. When the mapping
  tables do not cover every fact key, the gap tables are persisted instead
  and the command fails.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date (defaults to the most recent completed quarter end)")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseReportDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	res, err := newPipeline(store).Run(ctx, on)

	var gapErr *regreport.MappingGapError
	if errors.As(err, &gapErr) {
		if werr := newWriter().Write(res.Gaps); werr != nil {
			fmt.Fprintf(os.Stderr, "Error writing gap tables: %v\n", werr)
		}
		printMarkdown(renderer.ArtifactMarkdown(res.Gaps))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := newWriter().Write(res.Report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ArtifactMarkdown(res.Report))
	return subcommands.ExitSuccess
}
