package wordlist

import (
	"fmt"
	"os"
	"strings"

	"github.com/baditaflorin/go_password_strength/internal/ports"
)

// source is the shared Source implementation for both variants.
type source struct {
	name    string
	entries []string
}

func (s *source) Name() string { return s.name }

func (s *source) Entries() []string { return s.entries }

// Resolve returns the wordlist source for the given path. An empty path
// resolves to the embedded default list. A path that cannot be read returns
// the error to the caller; it is the collision rule's job to surface it as
// that rule's own failure.
func Resolve(path string) (ports.Source, error) {
	if path == "" {
		return Embedded(), nil
	}
	return FromFile(path)
}

// FromFile loads a wordlist from the file at path.
func FromFile(path string) (ports.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wordlist %s: %w", path, err)
	}
	return &source{
		name:    path,
		entries: splitLines(string(data)),
	}, nil
}

// FromString builds a wordlist from raw text, one entry per line.
func FromString(name, data string) ports.Source {
	return &source{
		name:    name,
		entries: splitLines(data),
	}
}

// splitLines splits raw wordlist text into entries. Lines are split on
// newline boundaries with trailing carriage returns stripped; entries are
// otherwise used verbatim. A final newline does not produce an empty entry.
func splitLines(data string) []string {
	data = strings.TrimSuffix(data, "\n")
	if data == "" {
		return nil
	}
	lines := strings.Split(data, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
