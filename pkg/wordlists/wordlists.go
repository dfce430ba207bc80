// Package wordlists bundles the default first and last name lists used
// when the caller supplies none.
package wordlists

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed firstnames.txt lastnames.txt
var wordlistsFS embed.FS

// FirstNames returns the bundled first names, one list entry per line in
// the source file, trimmed and deduplicated.
func FirstNames() ([]string, error) {
	return load("firstnames.txt")
}

// LastNames returns the bundled last names.
func LastNames() ([]string, error) {
	return load("lastnames.txt")
}

func load(name string) ([]string, error) {
	f, err := wordlistsFS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundled wordlist %s: %w", name, err)
	}
	defer f.Close()

	seen := make(map[string]struct{})
	var names []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bundled wordlist %s: %w", name, err)
	}

	return names, nil
}
