// Package output writes generated username sets.
package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Write joins the usernames with newlines and writes them to w, followed by
// a single trailing newline. An empty set writes nothing at all. When
// sorted is set, usernames are emitted in lexicographic order; otherwise
// the order is unspecified.
func Write(w io.Writer, usernames map[string]struct{}, sorted bool) error {
	if len(usernames) == 0 {
		return nil
	}

	lines := make([]string, 0, len(usernames))
	for username := range usernames {
		lines = append(lines, username)
	}
	if sorted {
		sort.Strings(lines)
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write usernames: %w", err)
	}

	return nil
}

// WriteFile writes the username set to path, or to stdout when path is empty.
func WriteFile(path string, usernames map[string]struct{}, sorted bool) error {
	if path == "" {
		return Write(os.Stdout, usernames, sorted)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open output file %s: %w", path, err)
	}

	if err := Write(f, usernames, sorted); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return nil
}
