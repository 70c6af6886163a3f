// Package grading scores pytest results against assignment definitions.
package grading

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PointsPerTest is the number of points each test in an assignment is
// worth.
const PointsPerTest = 10

//go:embed assignments.yaml
var defaultAssignmentsYAML []byte

// Assignment is an ordered group of tests scored together.
type Assignment struct {
	// Title is shown in the report, e.g. "Assignment 1: Calculator and tests".
	Title string `yaml:"title"`

	// Tests are pytest test ids ("<path>::<name>").
	Tests []string `yaml:"tests"`

	// ExpectFailLast inverts the scoring of the last test only: it earns
	// points by failing.
	ExpectFailLast bool `yaml:"expect_fail_last"`
}

// MaxPoints is the score of an assignment where every test earns points.
func (a Assignment) MaxPoints() int {
	return len(a.Tests) * PointsPerTest
}

type assignmentsFile struct {
	Assignments []Assignment `yaml:"assignments"`
}

// DefaultAssignments returns the built-in assignments.
func DefaultAssignments() []Assignment {
	assignments, err := ParseAssignments(bytes.NewReader(defaultAssignmentsYAML))
	if err != nil {
		panic(fmt.Sprintf("grading: invalid embedded assignments: %v", err))
	}
	return assignments
}

// LoadAssignments reads assignments from a YAML file.
func LoadAssignments(path string) ([]Assignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // ignore close error (we are not writing)
	assignments, err := ParseAssignments(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return assignments, nil
}

// ParseAssignments decodes and validates an assignments YAML document.
// Unknown fields are rejected.
func ParseAssignments(r io.Reader) ([]Assignment, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file assignmentsFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no assignments defined")
		}
		return nil, fmt.Errorf("failed to decode assignments: %w", err)
	}
	if err := validate(file.Assignments); err != nil {
		return nil, err
	}
	return file.Assignments, nil
}

func validate(assignments []Assignment) error {
	if len(assignments) == 0 {
		return errors.New("no assignments defined")
	}
	for i, a := range assignments {
		if strings.TrimSpace(a.Title) == "" {
			return fmt.Errorf("assignment %d: missing title", i+1)
		}
		if a.ExpectFailLast && len(a.Tests) == 0 {
			return fmt.Errorf("assignment %q: expect_fail_last requires at least one test", a.Title)
		}
		for _, id := range a.Tests {
			if !strings.Contains(id, "::") {
				return fmt.Errorf("assignment %q: test id %q is not of the form <path>::<name>", a.Title, id)
			}
		}
	}
	return nil
}
