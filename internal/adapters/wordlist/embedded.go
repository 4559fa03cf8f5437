package wordlist

import (
	_ "embed"
	"sync"

	"github.com/baditaflorin/go_password_strength/internal/ports"
)

// EmbeddedName is the source name reported for the built-in list.
const EmbeddedName = "internal"

//go:embed data/wordlist.txt
var embeddedData string

var (
	embeddedOnce sync.Once
	embedded     *source
)

// Embedded returns the built-in list of known weak passwords, baked in at
// build time. The list is parsed once and shared read-only for the process
// lifetime.
func Embedded() ports.Source {
	embeddedOnce.Do(func() {
		embedded = &source{
			name:    EmbeddedName,
			entries: splitLines(embeddedData),
		}
	})
	return embedded
}
