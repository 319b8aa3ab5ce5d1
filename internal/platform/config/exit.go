package config

import (
	"fmt"
	"io"
	"os"
)

// exit is swapped in tests that cannot afford a real process exit.
var exit = os.Exit

// Exitf writes a formatted error message to stderr and exits with code 1.
// It provides a consistent fatal-exit pattern for CLI entry points.
func Exitf(format string, args ...any) {
	ExitfTo(os.Stderr, format, args...)
}

// ExitfTo is Exitf with an explicit destination for the message.
func ExitfTo(w io.Writer, format string, args ...any) {
	if w == nil {
		w = io.Discard
	}
	fmt.Fprintf(w, format+"\n", args...)
	exit(1)
}
