package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"oss.indeed.com/go/go-grade/internal/cmd"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(cmd.SummaryCmd(), "")
	subcommands.Register(cmd.MarkersCmd(), "")

	flag.Parse()
	// Running without a subcommand runs the whole grading pipeline.
	if flag.NArg() == 0 {
		_ = flag.CommandLine.Parse([]string{"summary"})
	}
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
