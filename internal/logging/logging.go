// Package logging writes subsystem-prefixed log lines to a file in the data
// directory. Logging to stderr would corrupt the TUI, so stderr is only used
// until Init has been called.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var debugEnabled = os.Getenv("FORGE_DEBUG") == "true"

// Init redirects log output to forge.log inside dir.
func Init(dir string) error {
	f, err := os.OpenFile(filepath.Join(dir, "forge.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return nil
}

// Info logs an informational message (always written).
func Info(subsystem, format string, args ...any) {
	log.Printf("[%s] "+format, append([]any{subsystem}, args...)...)
}

// Error logs a failure.
func Error(subsystem, format string, args ...any) {
	log.Printf("[%s] ERROR "+format, append([]any{subsystem}, args...)...)
}

// Debug logs a debug message (only written if FORGE_DEBUG=true).
func Debug(subsystem, format string, args ...any) {
	if debugEnabled {
		log.Printf("[%s] "+format, append([]any{subsystem}, args...)...)
	}
}
