// Package summary renders the grading report and publishes it.
package summary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"oss.indeed.com/go/go-grade/internal/grading"
)

// DefaultRequiredFiles are the files whose presence is reported, relative
// to the working directory.
var DefaultRequiredFiles = []string{
	"tests/test_calculator.py",
	"tests/test_string_utils.py",
	"README.md",
}

// FileCheck records whether a file exists.
type FileCheck struct {
	Path   string
	Exists bool
}

// CheckFiles checks each path (relative to dir) independently.
func CheckFiles(dir string, paths []string) []FileCheck {
	checks := make([]FileCheck, 0, len(paths))
	for _, p := range paths {
		_, err := os.Stat(filepath.Join(dir, p))
		checks = append(checks, FileCheck{Path: p, Exists: err == nil})
	}
	return checks
}

// Document holds everything shown in the report.
type Document struct {
	Report       grading.Report
	MarkersOK    bool
	MarkerTokens []string
	Files        []FileCheck
}

// Passed reports whether every assignment has a full score and the
// marker check succeeded.
func (d *Document) Passed() bool {
	return d.Report.Perfect() && d.MarkersOK
}

// Render returns the report as Markdown. The output depends only on the
// Document, so rendering the same inputs twice gives identical text.
func (d *Document) Render() string {
	var lines []string
	add := func(format string, a ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, a...))
	}

	add("## 📊 FINAL REPORT FOR ALL ASSIGNMENTS")
	add("")
	add("### 📈 Summary table")
	add("| Assignment | Points | Max | Status |")
	add("|------------|--------|-----|--------|")
	for _, s := range d.Report.Scores {
		add("| %s | %d | %d | %s |", s.Assignment.Title, s.Points, s.Max, s.Status())
	}
	add("| **TOTAL** | **%d** | **%d** | **%d%%** |", d.Report.Total(), d.Report.Max(), d.Report.Percentage())
	add("")

	add("### 🔍 Test details")
	for i, s := range d.Report.Scores {
		if i > 0 {
			add("")
		}
		add("**%s**", s.Assignment.Title)
		for _, ts := range s.Tests {
			add("- `%s` → %s", ts.Name(), ts.Outcome)
		}
	}
	add("")

	add("### 🏷️ Marker check (@pytest.mark)")
	if d.MarkersOK {
		quoted := make([]string, len(d.MarkerTokens))
		for i, token := range d.MarkerTokens {
			quoted[i] = "`" + token + "`"
		}
		add("✅ Markers found: %s", strings.Join(quoted, ", "))
	} else {
		add("❌ Markers missing or incorrect")
	}
	add("")

	add("### 📁 Files found:")
	for _, f := range d.Files {
		if f.Exists {
			add("✅ `%s`: found", f.Path)
		} else {
			add("❌ `%s`: missing", f.Path)
		}
	}
	add("")

	add("### 🏆 Final score: **%d / %d**", d.Report.Total(), d.Report.Max())
	if d.Passed() {
		add("\n🎉 **CONGRATULATIONS! All tasks completed correctly!**")
	} else {
		add("\n💡 **Recommendation**: check the markers and the behaviour of the intentionally failing test.")
	}

	return strings.Join(lines, "\n")
}
