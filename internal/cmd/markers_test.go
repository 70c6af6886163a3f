package cmd

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

func markersFlagSet(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()
	f := flag.NewFlagSet("markers", flag.ContinueOnError)
	f.SetOutput(io.Discard)
	require.NoError(t, f.Parse(args))
	return f
}

func Test_markersCmd_Execute(t *testing.T) {
	dir := writeProject(t, true)
	var out bytes.Buffer
	tested := markersCmd{out: &out, dir: dir}
	require.Equal(t, subcommands.ExitSuccess, tested.Execute(context.Background(), markersFlagSet(t)))
	require.Contains(t, out.String(), "OK: markers found")
}

func Test_markersCmd_Execute_missing(t *testing.T) {
	dir := writeProject(t, false)
	var out bytes.Buffer
	tested := markersCmd{out: &out, dir: dir}
	require.Equal(t, subcommands.ExitFailure, tested.Execute(context.Background(), markersFlagSet(t)))
	require.Contains(t, out.String(), "ERROR: missing markers")
}

func Test_markersCmd_Execute_unreadable(t *testing.T) {
	dir := writeProject(t, true)
	require.NoError(t, os.Remove(filepath.Join(dir, "tests", "test_string_utils.py")))
	tested := markersCmd{out: io.Discard, dir: dir}
	status := tested.Execute(context.Background(), markersFlagSet(t))
	require.Equal(t, exitReadError, status)
	require.NotEqual(t, subcommands.ExitFailure, status)
}

func Test_markersCmd_Execute_argsProvided(t *testing.T) {
	tested := markersCmd{out: io.Discard, dir: writeProject(t, true)}
	require.Equal(t, subcommands.ExitUsageError, tested.Execute(context.Background(), markersFlagSet(t, "extra")))
}
