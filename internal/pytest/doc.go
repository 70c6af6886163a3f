// Package pytest runs "python -m pytest -v --tb=short" and interprets the
// result.
//
// Unlike "go test -json" there is no structured output to consume here.
// Results are recovered from the verbose text output, one line per test:
//
//	tests/test_calculator.py::test_add PASSED
//
// Lines of any other shape are ignored, so a runner that decorates its
// result lines differently (progress percentages, colors) will produce no
// results at all. Use Results.Missing to find tests that were expected but
// never reported.
//
// Example:
//
//	out, err := pytest.Run(pytest.Dir(workDir), pytest.Log(os.Stdout))
//	if err != nil {
//	    return err // pytest could not be started
//	}
//	results := pytest.ParseResults(out.Stdout)
package pytest
