package cmd

import (
	"errors"
	"flag"
	"testing"

	"github.com/google/subcommands"

	"github.com/stretchr/testify/require"
)

func Test_executeNoArgs(t *testing.T) {
	f := flag.NewFlagSet("foo", flag.ContinueOnError)
	err := f.Parse(nil)
	require.NoError(t, err)
	called := false
	exitStatus := executeNoArgs(f, func() error { called = true; return nil })
	require.True(t, called)
	require.Equal(t, subcommands.ExitSuccess, exitStatus)
}

func Test_executeNoArgs_argsProvided(t *testing.T) {
	f := flag.NewFlagSet("foo", flag.ContinueOnError)
	err := f.Parse([]string{"somearg"})
	require.NoError(t, err)
	called := false
	exitStatus := executeNoArgs(f, func() error { called = true; return nil })
	require.False(t, called)
	require.Equal(t, subcommands.ExitUsageError, exitStatus)
}

func Test_executeNoArgs_implReturnsError(t *testing.T) {
	f := flag.NewFlagSet("foo", flag.ContinueOnError)
	err := f.Parse(nil)
	require.NoError(t, err)
	called := false
	exitStatus := executeNoArgs(f, func() error { called = true; return errors.New("i'm broken") })
	require.True(t, called)
	require.Equal(t, subcommands.ExitFailure, exitStatus)
}

func Test_selfCommand(t *testing.T) {
	command := selfCommand("markers")
	require.Len(t, command, 2)
	require.NotEmpty(t, command[0])
	require.Equal(t, "markers", command[1])
}

func Test_CombineErrors(t *testing.T) {
	require.NoError(t, CombineErrors(nil))
	single := errors.New("one")
	require.Equal(t, single, CombineErrors([]error{single}))
	combined := CombineErrors([]error{single, errors.New("two")})
	require.Equal(t, "multiple errors occurred:\n  * one\n  * two\n", combined.Error())
}
