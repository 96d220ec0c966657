package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kvartal/regreport/renderer"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	date string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verify mapping coverage without building the report" }
func (*checkCmd) Usage() string {
	return `qrr check [-d <date>]

  Loads the fact and mapping tables and runs only the reconciliation stage.
  Nothing is persisted; gap tables, when any, are printed.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date (defaults to the most recent completed quarter end)")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	res, err := newPipeline(store).Check(ctx, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if res.Gaps != nil {
		printMarkdown(renderer.ArtifactMarkdown(res.Gaps))
		return subcommands.ExitFailure
	}
	fmt.Printf("All fact keys for %s are covered by the mapping tables.\n", res.Dates.Report)
	return subcommands.ExitSuccess
}
