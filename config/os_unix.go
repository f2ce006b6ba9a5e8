//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

// characters which cannot appear in file name in addition to separators
const reservedChars = ""

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
