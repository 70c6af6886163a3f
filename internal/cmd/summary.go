package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"oss.indeed.com/go/go-grade/internal/grading"
	"oss.indeed.com/go/go-grade/internal/markers"
	"oss.indeed.com/go/go-grade/internal/printing"
	"oss.indeed.com/go/go-grade/internal/pytest"
	"oss.indeed.com/go/go-grade/internal/run"
	"oss.indeed.com/go/go-grade/internal/summary"
)

const (
	logFileName    = "pytest_output.log"
	reportFileName = "SUMMARY.md"
)

// SummaryCmd returns a subcommand that runs the tests, grades them and
// publishes the report.
func SummaryCmd() subcommands.Command {
	return &summaryCmd{
		out:           os.Stdout,
		dir:           ".",
		python:        pytest.DefaultPython,
		stepSummary:   os.Getenv(summary.StepSummaryEnv),
		markerCommand: selfCommand("markers"),
	}
}

type summaryCmd struct {
	out io.Writer

	dir         string
	python      string
	assignments string
	stepSummary string
	html        string

	// markerCommand is run (in dir) to check the markers. A zero exit
	// code means the markers are present.
	markerCommand []string
}

func (*summaryCmd) Name() string {
	return "summary"
}

func (*summaryCmd) Synopsis() string {
	return "run pytest, grade the assignments and publish a summary"
}

func (*summaryCmd) Usage() string {
	return `summary [-dir <path>] [-python <path>] [-assignments <path>] [-step-summary <path>] [-html <path>]:
  Run pytest, grade the assignments and publish a summary.
  The summary is appended to $` + summary.StepSummaryEnv + ` when it is set, and
  written to ` + reportFileName + ` otherwise.
`
}

func (s *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.dir, "dir", s.dir, "directory containing the tests")
	f.StringVar(&s.python, "python", s.python, "python interpreter used to run pytest")
	f.StringVar(&s.assignments, "assignments", "", "read assignments from this YAML file instead of the built-in ones")
	f.StringVar(&s.stepSummary, "step-summary", s.stepSummary, "append the summary to this file instead of writing "+reportFileName)
	f.StringVar(&s.html, "html", "", "also write the summary as HTML")
}

//revive:disable:unused-parameter
func (s *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return executeNoArgs(f, s.impl)
}

func (s *summaryCmd) impl() error {
	log := printing.NewLogWriter(s.out)

	assignments := grading.DefaultAssignments()
	if s.assignments != "" {
		var err error
		if assignments, err = grading.LoadAssignments(s.assignments); err != nil {
			return fmt.Errorf("failed to load assignments: %w", err)
		}
	}

	log.Headingf("🔍 Running tests...")
	testOut, err := pytest.Run(pytest.Python(s.python), pytest.Dir(s.dir), pytest.Log(log))
	if err != nil {
		return err
	}
	if err := testOut.WriteLog(filepath.Join(s.dir, logFileName)); err != nil {
		return fmt.Errorf("failed to write %s: %w", logFileName, err)
	}
	results := pytest.ParseResults(testOut.Stdout)
	for _, a := range assignments {
		for _, id := range results.Missing(a.Tests) {
			log.Warnf("%s was not found in the pytest output", id)
		}
	}

	log.Headingf("🔍 Checking markers...")
	markersOK, err := s.checkMarkers(log)
	if err != nil {
		return err
	}

	doc := summary.Document{
		Report:       grading.Evaluate(results, assignments),
		MarkersOK:    markersOK,
		MarkerTokens: markers.DefaultTokens,
		Files:        summary.CheckFiles(s.dir, summary.DefaultRequiredFiles),
	}
	text := doc.Render()

	var errs []error
	dest := summary.Destination{
		StepSummaryPath: s.stepSummary,
		ReportPath:      filepath.Join(s.dir, reportFileName),
	}
	if err := summary.Publish(text, s.out, dest); err != nil {
		errs = append(errs, err)
	}
	if s.html != "" {
		if err := summary.WriteHTML(text, s.html); err != nil {
			errs = append(errs, fmt.Errorf("failed to write HTML summary: %w", err))
		}
	}
	return CombineErrors(errs)
}

// checkMarkers runs the marker command. Any non-zero exit code means the
// markers are missing (or could not be checked); failing to start the
// command is an error. The command's output is copied to log with each
// line prefixed, but does not affect the result.
func (s *summaryCmd) checkMarkers(log io.Writer) (bool, error) {
	if len(s.markerCommand) == 0 {
		return false, fmt.Errorf("no marker command configured")
	}
	_, _, err := run.Cmd(
		s.markerCommand[0],
		s.markerCommand[1:],
		run.Dir(s.dir),
		run.Log(log),
	)
	code, err := run.ExitCode(err)
	if err != nil {
		return false, fmt.Errorf("failed to run marker check: %w", err)
	}
	return code == 0, nil
}
