package pytest

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseResults(t *testing.T) {
	out, err := os.ReadFile("testdata/verbose_output.txt")
	require.NoError(t, err)
	results := ParseResults(string(out))
	require.Equal(
		t,
		Results{
			"tests/test_calculator.py::test_add":                true,
			"tests/test_calculator.py::test_subtract":           true,
			"tests/test_calculator.py::test_multiply":           false,
			"tests/test_calculator.py::test_fail_intentionally": false,
			"tests/test_string_utils.py::test_uppercase":        true,
			"tests/test_string_utils.py::test_reverse":          true,
		},
		results,
	)
}

func Test_ParseResults_statuses(t *testing.T) {
	results := ParseResults("tests/a.py::test_p PASSED\n" +
		"tests/a.py::test_f FAILED\n" +
		"tests/a.py::test_e ERROR\n" +
		"tests/a.py::test_s SKIPPED\n" +
		"tests/test_calculator.py::test_сложение PASSED\n" +
		"tests/test_calculator.py::test_деление_2 FAILED\n")
	require.Equal(
		t,
		Results{
			"tests/a.py::test_p":                       true,
			"tests/a.py::test_f":                       false,
			"tests/a.py::test_e":                       false,
			"tests/a.py::test_s":                       false,
			"tests/test_calculator.py::test_сложение":  true,
			"tests/test_calculator.py::test_деление_2": false,
		},
		results,
	)
}

func Test_ParseResults_ignoresOtherShapes(t *testing.T) {
	results := ParseResults("" +
		"tests/a.py::test_progress PASSED                                  [ 50%]\n" +
		"src/a.py::test_outside PASSED\n" +
		"tests/a.py::test_lower passed\n" +
		"FAILED tests/a.py::test_summary - assert False\n" +
		"tests/a.py::TestClass::test_method PASSED\n" +
		"  tests/a.py::test_indented PASSED\n" +
		"tests/a.py::test_xfail XFAIL\n")
	require.Empty(t, results)
}

func Test_ParseResults_crlfAndWhitespace(t *testing.T) {
	results := ParseResults("tests/a.py::test_one \t PASSED\r\ntests/a.py::test_two FAILED\r\n")
	require.Equal(t, Results{"tests/a.py::test_one": true, "tests/a.py::test_two": false}, results)
}

func Test_ParseResults_lastReportWins(t *testing.T) {
	results := ParseResults("tests/a.py::test_flaky FAILED\ntests/a.py::test_flaky PASSED\n")
	require.Equal(t, Results{"tests/a.py::test_flaky": true}, results)
}

func Test_ParseResults_empty(t *testing.T) {
	require.Empty(t, ParseResults(""))
}

func Test_Results_Lookup(t *testing.T) {
	results := Results{"tests/a.py::test_p": true, "tests/a.py::test_f": false}

	passed, found := results.Lookup("tests/a.py::test_p")
	require.True(t, found)
	require.True(t, passed)

	passed, found = results.Lookup("tests/a.py::test_f")
	require.True(t, found)
	require.False(t, passed)

	passed, found = results.Lookup("tests/a.py::test_nope")
	require.False(t, found)
	require.False(t, passed)
}

func Test_Results_Missing(t *testing.T) {
	results := Results{"tests/a.py::test_b": false}
	missing := results.Missing([]string{"tests/a.py::test_c", "tests/a.py::test_b", "tests/a.py::test_a"})
	require.Equal(t, []string{"tests/a.py::test_c", "tests/a.py::test_a"}, missing)
	require.Empty(t, results.Missing([]string{"tests/a.py::test_b"}))
}

func Test_ParseResults_unicodeNames(t *testing.T) {
	results := ParseResults("tests/test_calculator.py::test_сложение PASSED\n")
	require.Equal(t, Results{"tests/test_calculator.py::test_сложение": true}, results)
}
