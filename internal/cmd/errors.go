package cmd

import (
	"errors"
	"strings"
)

var (
	// errMarkersMissing is returned by the "markers" subcommand when at
	// least one marker is not present in the test sources.
	errMarkersMissing = errors.New("missing markers")
)

func CombineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var sb strings.Builder
	sb.WriteString("multiple errors occurred:\n")
	for _, err := range errs {
		sb.WriteString("  * " + err.Error() + "\n")
	}
	return errors.New(sb.String())
}
