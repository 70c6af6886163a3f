package printing

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.Bold, color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	okColor      = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed)
)

func NewLogWriter(to io.Writer) *LogWriter {
	return &LogWriter{out: to}
}

// LogWriter wraps an io.Writer and ignores errors when writing. It also
// provides a Logf method similar to log.Printf, plus colored variants for
// progress headings, warnings and pass/fail messages. Colors are dropped
// automatically when the process is not attached to a terminal or when
// NO_COLOR is set.
type LogWriter struct {
	out io.Writer
	mu  sync.Mutex
}

var _ io.Writer = (*LogWriter)(nil)

// Write to the underlying io.Writer. Errors are silently ignored. Always
// returns len(p) and a nil error.
func (lw *LogWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	_, _ = lw.out.Write(p)
	return len(p), nil
}

// Logf will write a log line to the underlying io.Writer. A newline is
// automatically appended.
func (lw *LogWriter) Logf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(lw, format+"\n", a...)
}

// Headingf is Logf in bold cyan.
func (lw *LogWriter) Headingf(format string, a ...interface{}) {
	lw.colorf(headingColor, format, a...)
}

// Warnf is Logf in yellow, with a "WARNING: " prefix.
func (lw *LogWriter) Warnf(format string, a ...interface{}) {
	lw.colorf(warnColor, "WARNING: "+format, a...)
}

// Okf is Logf in green.
func (lw *LogWriter) Okf(format string, a ...interface{}) {
	lw.colorf(okColor, format, a...)
}

// Failf is Logf in red.
func (lw *LogWriter) Failf(format string, a ...interface{}) {
	lw.colorf(failColor, format, a...)
}

func (lw *LogWriter) colorf(c *color.Color, format string, a ...interface{}) {
	_, _ = c.Fprintf(lw, format+"\n", a...)
}
