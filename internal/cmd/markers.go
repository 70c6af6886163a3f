package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"oss.indeed.com/go/go-grade/internal/markers"
	"oss.indeed.com/go/go-grade/internal/printing"
)

// exitReadError is returned by the "markers" subcommand when a test source
// cannot be read.
const exitReadError subcommands.ExitStatus = 3

// MarkersCmd returns a subcommand that checks the test sources for the
// required pytest markers.
func MarkersCmd() subcommands.Command {
	return &markersCmd{out: os.Stdout}
}

type markersCmd struct {
	out io.Writer

	// dir is the directory the test sources are relative to. Empty means
	// the current working directory.
	dir string
}

func (*markersCmd) Name() string {
	return "markers"
}

func (*markersCmd) Synopsis() string {
	return "check that the test sources carry the required pytest markers"
}

func (*markersCmd) Usage() string {
	return `markers:
  Check that the test sources carry the required pytest markers.
  Exits 0 if every marker is present, 1 if any is missing and 3 if a
  test source cannot be read.
`
}

func (*markersCmd) SetFlags(*flag.FlagSet) {}

//revive:disable:unused-parameter
func (m *markersCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if !ensureNoArgs(f) {
		return subcommands.ExitUsageError
	}
	switch err := m.impl(); {
	case err == nil:
		return subcommands.ExitSuccess
	case errors.Is(err, errMarkersMissing):
		return subcommands.ExitFailure
	default:
		_, _ = fmt.Fprintln(f.Output(), err)
		return exitReadError
	}
}

func (m *markersCmd) impl() error {
	log := printing.NewLogWriter(m.out)
	ok, err := markers.Check(m.dir, markers.DefaultFiles, markers.DefaultTokens)
	if err != nil {
		return err
	}
	if !ok {
		log.Failf("ERROR: %v", errMarkersMissing)
		return errMarkersMissing
	}
	log.Okf("OK: markers found")
	return nil
}
