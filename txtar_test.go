package bigint

import (
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/txtar"
)

// loadFile returns the named file's contents from testdata/vectors.txtar.
func loadFile(t *testing.T, name string) string {
	t.Helper()
	ar, err := txtar.ParseFile("testdata/vectors.txtar")
	if err != nil {
		t.Fatalf("txtar.ParseFile: %v", err)
	}
	for _, f := range ar.Files {
		if f.Name == name {
			return string(f.Data)
		}
	}
	t.Fatalf("no file %q in testdata/vectors.txtar", name)
	return ""
}

// loadLines splits a fixture file into non-empty, non-comment lines.
func loadLines(t *testing.T, name string) []string {
	t.Helper()
	var lines []string
	for _, line := range strings.Split(loadFile(t, name), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// loadTriples parses whitespace-separated fields per line into fixed-
// size tuples (e.g. [x, y, result] for add/mul fixtures).
func loadTriples(t *testing.T, name string) [][]string {
	t.Helper()
	var out [][]string
	for _, line := range loadLines(t, name) {
		out = append(out, strings.Fields(line))
	}
	return out
}
