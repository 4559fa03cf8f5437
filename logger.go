// logger.go
// Shared logging helpers for the passcheck package.
package passcheck

import (
	"os"

	"github.com/baditaflorin/go_password_strength/internal/adapters/logger"
	"github.com/baditaflorin/go_password_strength/internal/ports"
	"github.com/baditaflorin/l"
)

// createDefaultLogger creates and returns a default logger instance.
func createDefaultLogger() (ports.Logger, error) {
	return logger.NewCustomStdLogger(l.Config{
		Output:      os.Stderr,
		JsonFormat:  false,
		AsyncWrite:  false,
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   false,
	})
}
