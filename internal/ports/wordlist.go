package ports

// Source defines the read-only iteration contract for a wordlist.
// Entries returns the full ordered sequence of wordlist entries; the
// returned slice must not be mutated by callers.
type Source interface {
	// Name identifies the source for logging and rule details.
	Name() string
	Entries() []string
}
