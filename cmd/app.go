// Package cmd implements the CLI application to build the quarterly
// regulatory investment report.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/kvartal/regreport"
	"github.com/kvartal/regreport/date"
	"github.com/kvartal/regreport/warehouse"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&reportCmd{},
	&checkCmd{},
	&windowsCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var envFile = flag.String("env-file", ".env", "Path to the env file read when -dsn is not given")
var dsn = flag.String("dsn", "", "Warehouse connection string. Defaults to $REGREPORT_DSN.")
var baseCurrency = flag.String("currency", "EUR", "Base reporting currency")
var artifactRoots = flag.String("out", "out", "Comma-separated artifact root directories, tried in order")

// openStore opens the warehouse from the flags, falling back to the env file
// and then the environment for the DSN.
func openStore() (*warehouse.Store, error) {
	if *dsn == "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Printf("warning, could not load %s: %v", *envFile, err)
		}
		*dsn = os.Getenv("REGREPORT_DSN")
	}
	if *dsn == "" {
		return nil, fmt.Errorf("no warehouse DSN: set -dsn or REGREPORT_DSN")
	}
	return warehouse.Open(*dsn, *baseCurrency)
}

// newPipeline wires one warehouse connection as both sources.
func newPipeline(store *warehouse.Store) *regreport.Pipeline {
	return &regreport.Pipeline{Facts: store, Mappings: store, BaseCurrency: *baseCurrency}
}

// newWriter builds the artifact writer from the -out flag.
func newWriter() regreport.ArtifactWriter {
	return &regreport.CSVWriter{Roots: strings.Split(*artifactRoots, ",")}
}

// parseReportDate parses the -d flag. Empty means the most recent completed
// quarter, the date the regulator expects the next filing for.
func parseReportDate(s string) (date.Date, error) {
	if s == "" {
		return date.Today().StartOf(date.Quarterly).Add(-1), nil
	}
	return date.Parse(s)
}
