package grading

import (
	"math"
	"strings"

	"oss.indeed.com/go/go-grade/internal/pytest"
)

// Outcome is how a single test was scored.
type Outcome int

const (
	// NotFound means the test never appeared in the pytest output.
	NotFound Outcome = iota
	Passed
	Failed
	// FailedAsExpected is an expect-fail test that failed.
	FailedAsExpected
	// DidNotFail is an expect-fail test that passed.
	DidNotFail
)

// String returns the annotation shown next to the test in the report.
func (o Outcome) String() string {
	switch o {
	case Passed:
		return "✅"
	case Failed:
		return "❌"
	case FailedAsExpected:
		return "✅ failed (as expected)"
	case DidNotFail:
		return "⚠️ did not fail (it should have!)"
	default:
		return "❌ test not found"
	}
}

// TestScore is the scoring of one test within an assignment.
type TestScore struct {
	ID      string
	Outcome Outcome
	Points  int
}

// Name is the second "::"-separated segment of the id, e.g. "test_add"
// for "tests/test_calculator.py::test_add" and "TestX" for
// "tests/a.py::TestX::test_y".
func (ts TestScore) Name() string {
	parts := strings.SplitN(ts.ID, "::", 3)
	if len(parts) < 2 {
		return ts.ID
	}
	return parts[1]
}

// Score is the scoring of one assignment.
type Score struct {
	Assignment Assignment
	Points     int
	Max        int
	Tests      []TestScore
}

// Status returns ✅ for a full score, ⚠️ for a partial score and ❌ for
// no points.
func (s Score) Status() string {
	switch {
	case s.Points == s.Max:
		return "✅"
	case s.Points > 0:
		return "⚠️"
	default:
		return "❌"
	}
}

// Report is the scoring of all assignments, in order.
type Report struct {
	Scores []Score
}

// Total is the sum of the points of every assignment.
func (r Report) Total() int {
	total := 0
	for _, s := range r.Scores {
		total += s.Points
	}
	return total
}

// Max is the sum of the maximum points of every assignment.
func (r Report) Max() int {
	maxPoints := 0
	for _, s := range r.Scores {
		maxPoints += s.Max
	}
	return maxPoints
}

// Percentage is Total over Max as an integer percentage, rounded half to
// even. It is 0 when Max is 0.
func (r Report) Percentage() int {
	maxPoints := r.Max()
	if maxPoints == 0 {
		return 0
	}
	return int(math.RoundToEven(float64(r.Total()) / float64(maxPoints) * 100))
}

// Perfect reports whether every assignment got its maximum score.
func (r Report) Perfect() bool {
	for _, s := range r.Scores {
		if s.Points != s.Max {
			return false
		}
	}
	return true
}

// Evaluate scores each assignment against the results.
func Evaluate(results pytest.Results, assignments []Assignment) Report {
	scores := make([]Score, 0, len(assignments))
	for _, a := range assignments {
		scores = append(scores, evaluate(results, a))
	}
	return Report{Scores: scores}
}

func evaluate(results pytest.Results, a Assignment) Score {
	score := Score{
		Assignment: a,
		Max:        a.MaxPoints(),
		Tests:      make([]TestScore, 0, len(a.Tests)),
	}
	last := len(a.Tests) - 1
	for i, id := range a.Tests {
		ts := TestScore{ID: id, Outcome: outcome(results, id, a.ExpectFailLast && i == last)}
		if ts.Outcome == Passed || ts.Outcome == FailedAsExpected {
			ts.Points = PointsPerTest
		}
		score.Points += ts.Points
		score.Tests = append(score.Tests, ts)
	}
	return score
}

func outcome(results pytest.Results, id string, expectFail bool) Outcome {
	passed, found := results.Lookup(id)
	switch {
	case !found:
		return NotFound
	case expectFail && passed:
		return DidNotFail
	case expectFail:
		return FailedAsExpected
	case passed:
		return Passed
	default:
		return Failed
	}
}
