// Package namelist accumulates names from inline values and files into
// deduplicated collections.
package namelist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Collection is a named, deduplicated set of names. Values are trimmed on
// ingest and empty strings are dropped, whichever source they came from.
type Collection struct {
	name  string
	names map[string]struct{}
}

// New creates an empty collection. The name is only used in error messages.
func New(name string) *Collection {
	return &Collection{
		name:  name,
		names: make(map[string]struct{}),
	}
}

// Add inserts inline values into the collection.
func (c *Collection) Add(values ...string) {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			c.names[v] = struct{}{}
		}
	}
}

// AddFile reads one name per line from path and inserts them.
func (c *Collection) AddFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read %s file %s: %w", c.name, path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		c.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s file %s: %w", c.name, path, err)
	}

	return nil
}

// AddFiles reads every path in turn, stopping at the first failure.
func (c *Collection) AddFiles(paths []string) error {
	for _, path := range paths {
		if err := c.AddFile(path); err != nil {
			return err
		}
	}
	return nil
}

// Values returns a snapshot of the collection. Order is unspecified.
func (c *Collection) Values() []string {
	values := make([]string, 0, len(c.names))
	for v := range c.names {
		values = append(values, v)
	}
	return values
}

// Len returns the number of distinct names in the collection.
func (c *Collection) Len() int {
	return len(c.names)
}
