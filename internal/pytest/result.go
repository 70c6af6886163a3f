package pytest

import (
	"bufio"
	"regexp"
	"strings"
)

// Status is the outcome word pytest prints after each test in verbose mode.
type Status string

const (
	StatusPassed  Status = "PASSED"
	StatusFailed  Status = "FAILED"
	StatusError   Status = "ERROR"
	StatusSkipped Status = "SKIPPED"
)

// resultLineRegexp matches a single verbose result line such as
// "tests/test_calculator.py::test_add PASSED". The whole line must match.
// Test names may contain any Unicode letter or digit.
var resultLineRegexp = regexp.MustCompile(`^(tests/[^:]+::[\p{L}\p{N}_]+)\s+(PASSED|FAILED|ERROR|SKIPPED)$`)

// Results maps a test identifier ("<path>::<name>") to whether the test
// passed. Only StatusPassed counts as passed.
type Results map[string]bool

// ParseResults extracts results from verbose pytest stdout. Lines that are
// not result lines are ignored. If the same test is reported more than
// once the last report wins.
func ParseResults(stdout string) Results {
	results := make(Results)
	scanner := bufio.NewScanner(strings.NewReader(stdout))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		match := resultLineRegexp.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		results[match[1]] = Status(match[2]) == StatusPassed
	}
	return results
}

// Lookup returns whether the test passed and whether it was reported at
// all.
func (r Results) Lookup(id string) (passed, found bool) {
	passed, found = r[id]
	return passed, found
}

// Missing returns the ids (in the order provided) that were never
// reported.
func (r Results) Missing(ids []string) []string {
	var missing []string
	for _, id := range ids {
		if _, ok := r[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
