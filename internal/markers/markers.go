// Package markers checks that test sources carry the pytest markers used
// to categorize them.
package markers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// DefaultFiles are the test sources searched by default, relative to
	// the working directory. They are concatenated in this order.
	DefaultFiles = []string{
		"tests/test_calculator.py",
		"tests/test_string_utils.py",
	}

	// DefaultTokens must all appear somewhere in DefaultFiles.
	DefaultTokens = []string{
		"@pytest.mark.math",
		"@pytest.mark.string",
	}
)

// Check reads files (relative to dir unless absolute) and reports whether
// every token occurs in their concatenated content. Tokens may appear in
// any file, in any order. An error is returned if any file cannot be read;
// in that case the returned bool is meaningless.
func Check(dir string, files, tokens []string) (bool, error) {
	var content strings.Builder
	for _, file := range files {
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return false, fmt.Errorf("failed to read %s: %w", file, err)
		}
		content.Write(b)
	}
	text := content.String()
	for _, token := range tokens {
		if !strings.Contains(text, token) {
			return false, nil
		}
	}
	return true, nil
}
