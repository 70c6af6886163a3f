package pytest

import (
	"fmt"
	"io"
	"os"
	"strings"

	"oss.indeed.com/go/go-grade/internal/run"
)

// DefaultPython is the interpreter used to run pytest when Python is not
// provided.
const DefaultPython = "python3"

// Option can be passed to Run to change how it behaves (e.g. use a
// different interpreter, or run in another directory).
type Option func(o *options) error

type options struct {
	python string
	dir    string
	log    io.Writer
}

// Python runs pytest as "<python> -m pytest".
func Python(python string) Option {
	return func(o *options) error {
		if python == "" {
			return fmt.Errorf("pytest: invalid option python: %q", python)
		}
		o.python = python
		return nil
	}
}

// Dir runs pytest in the provided directory.
func Dir(dir string) Option {
	return func(o *options) error {
		o.dir = dir
		return nil
	}
}

// Log writes information about the pytest invocation (but not its
// output) to the provided writer.
func Log(to io.Writer) Option {
	return func(o *options) error {
		o.log = to
		return nil
	}
}

// Output is the buffered result of a single pytest run.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Combined returns the trimmed stdout followed by a newline and the
// trimmed stderr. This is what WriteLog writes.
func (o *Output) Combined() string {
	return strings.TrimSpace(o.Stdout) + "\n" + strings.TrimSpace(o.Stderr)
}

// WriteLog writes the combined output to path, replacing any existing
// content.
func (o *Output) WriteLog(path string) error {
	return os.WriteFile(path, []byte(o.Combined()), 0666) //nolint:gosec
}

// Run runs pytest and waits for it to finish. A non-zero pytest exit code
// is not an error; it is reported in Output.ExitCode. An error is returned
// only if pytest could not be run at all.
func Run(opts ...Option) (*Output, error) {
	o := options{
		python: DefaultPython,
		log:    io.Discard,
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	runOpts := []run.Option{
		// Colored output would hide the result lines from ParseResults.
		run.Env("PY_COLORS=0"),
		run.Log(o.log),
		run.SuppressStdout(),
		run.SuppressStderr(),
	}
	if o.dir != "" {
		runOpts = append(runOpts, run.Dir(o.dir))
	}
	stdout, stderr, err := run.Cmd(o.python, run.Args("-m", "pytest", "-v", "--tb=short"), runOpts...)
	code, err := run.ExitCode(err)
	if err != nil {
		return nil, fmt.Errorf("failed to run pytest: %w", err)
	}
	return &Output{Stdout: stdout, Stderr: stderr, ExitCode: code}, nil
}
