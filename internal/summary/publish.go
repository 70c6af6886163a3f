package summary

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gofrs/flock"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// StepSummaryEnv names the file GitHub Actions renders as the job summary.
const StepSummaryEnv = "GITHUB_STEP_SUMMARY"

// Destination says where Publish writes the report in addition to the
// console.
type Destination struct {
	// StepSummaryPath, if not empty, receives the report appended to its
	// existing content. ReportPath is then left alone.
	StepSummaryPath string

	// ReportPath is overwritten with the report when StepSummaryPath is
	// empty.
	ReportPath string
}

// Publish prints text to console and then writes it to exactly one of the
// files in dest.
func Publish(text string, console io.Writer, dest Destination) error {
	if _, err := fmt.Fprintln(console, text); err != nil {
		return err
	}
	if dest.StepSummaryPath != "" {
		if err := appendLocked(dest.StepSummaryPath, text); err != nil {
			return fmt.Errorf("failed to append to step summary: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(dest.ReportPath, []byte(text), 0666); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// appendLocked appends text to path while holding an exclusive lock on
// path + ".lock", so reports from concurrent steps sharing the file do not
// interleave.
func appendLocked(path, text string) error {
	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", lockPath, err)
	}
	defer lock.Unlock() //nolint:errcheck

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666) //nolint:gosec
	if err != nil {
		return err
	}
	_, err = f.WriteString(text)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Grading report</title>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// HTML converts the Markdown report to a standalone HTML page.
func HTML(text string) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	buf.WriteString(htmlHeader)
	if err := md.Convert([]byte(text), &buf); err != nil {
		return nil, err
	}
	buf.WriteString(htmlFooter)
	return buf.Bytes(), nil
}

// WriteHTML writes HTML(text) to path.
func WriteHTML(text, path string) error {
	page, err := HTML(text)
	if err != nil {
		return err
	}
	return os.WriteFile(path, page, 0666) //nolint:gosec
}
