package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kvartal/regreport"
)

// windowsCmd holds the flags for the 'windows' subcommand.
type windowsCmd struct {
	date string
}

func (*windowsCmd) Name() string     { return "windows" }
func (*windowsCmd) Synopsis() string { return "show the temporal windows of a report date" }
func (*windowsCmd) Usage() string {
	return `qrr windows [-d <date>]

  Prints the window boundaries a run for the given report date would use,
  without touching the warehouse.
`
}

func (c *windowsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date (defaults to the most recent completed quarter end)")
}

func (c *windowsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseReportDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	d := regreport.NewDates(on)
	fmt.Printf("report date:            %s\n", d.Report)
	fmt.Printf("status window:          .. %s\n", d.PrevQuarterEnd)
	fmt.Printf("change window:          %s .. %s\n", d.QuarterStart, d.Report)
	fmt.Printf("realized window:        %s .. %s\n", d.YearStart, d.Report)
	return subcommands.ExitSuccess
}
