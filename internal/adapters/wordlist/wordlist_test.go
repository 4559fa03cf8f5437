package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromStringSplitsLines(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		entries []string
	}{
		{
			name:    "Plain newlines",
			data:    "password\nqwerty\nletmein",
			entries: []string{"password", "qwerty", "letmein"},
		},
		{
			name:    "Trailing newline does not add an entry",
			data:    "password\nqwerty\n",
			entries: []string{"password", "qwerty"},
		},
		{
			name:    "Carriage returns stripped",
			data:    "password\r\nqwerty\r\n",
			entries: []string{"password", "qwerty"},
		},
		{
			// Entries are otherwise verbatim: no trimming, no case folding.
			name:    "Whitespace and case preserved",
			data:    " Password \nQWERTY",
			entries: []string{" Password ", "QWERTY"},
		},
		{
			name:    "Interior empty lines preserved",
			data:    "password\n\nqwerty",
			entries: []string{"password", "", "qwerty"},
		},
		{
			name:    "Empty input",
			data:    "",
			entries: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := FromString("test", tc.data)
			got := src.Entries()
			if len(got) != len(tc.entries) {
				t.Fatalf("got %d entries %q, want %d", len(got), got, len(tc.entries))
			}
			for i := range tc.entries {
				if got[i] != tc.entries[i] {
					t.Errorf("entry[%d] = %q, want %q", i, got[i], tc.entries[i])
				}
			}
		})
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("password\r\nqwerty\n"), 0644); err != nil {
		t.Fatalf("failed to write test wordlist: %v", err)
	}

	src, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if src.Name() != path {
		t.Errorf("Name() = %q, want %q", src.Name(), path)
	}
	entries := src.Entries()
	if len(entries) != 2 || entries[0] != "password" || entries[1] != "qwerty" {
		t.Errorf("Entries() = %q", entries)
	}
}

func TestFromFileUnreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := FromFile(path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	// The error must name the unreadable path; it becomes the collision
	// rule's failure detail.
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the path", err)
	}
}

func TestResolve(t *testing.T) {
	src, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve(\"\") error = %v", err)
	}
	if src.Name() != EmbeddedName {
		t.Errorf("Name() = %q, want %q", src.Name(), EmbeddedName)
	}

	if _, err := Resolve(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for unreadable path")
	}
}

func TestEmbeddedSingleton(t *testing.T) {
	first := Embedded()
	second := Embedded()
	if first != second {
		t.Error("Embedded() must return the same instance")
	}

	entries := first.Entries()
	if len(entries) != 10000 {
		t.Fatalf("embedded wordlist has %d entries, want 10000", len(entries))
	}
	for _, entry := range entries {
		if entry == "" {
			t.Error("embedded wordlist contains an empty entry")
			break
		}
	}

	// The default list carries the classics.
	found := map[string]bool{}
	for _, entry := range entries {
		found[entry] = true
	}
	for _, classic := range []string{"password", "qwerty", "123456"} {
		if !found[classic] {
			t.Errorf("embedded wordlist misses %q", classic)
		}
	}
}
